package stress

import "sync/atomic"

// stopFlag tells producers to stop sending.
//
// Producers poll Done once per message, so this is a single atomic load
// rather than a select on a context's Done channel.
type stopFlag struct {
	done atomic.Bool
}

// Done returns true once Stop has been called.
func (s *stopFlag) Done() bool {
	return s.done.Load()
}

// Stop sets the flag. Safe to call multiple times.
func (s *stopFlag) Stop() {
	s.done.Store(true)
}
