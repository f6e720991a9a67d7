package mpsc

// Sender is a producer handle. It is safe for concurrent use.
type Sender[T any] struct {
	shared *shared[T]
	closed bool // guarded by shared.mu
}

// Send enqueues v and wakes the receiver if it is waiting.
//
// Send does not report whether the value will be received. If the Receiver
// has been closed, v is discarded.
//
// Panics with ErrSenderClosed if this handle has been closed.
func (s *Sender[T]) Send(v T) {
	sh := s.shared
	sh.mu.Lock()
	if s.closed {
		sh.mu.Unlock()
		panic(ErrSenderClosed)
	}
	if !sh.receiverGone {
		sh.queue.PushBack(v)
	}
	sh.mu.Unlock()

	sh.available.Signal()
}

// Clone returns a new Sender for the same channel. The channel stays open
// until every clone, and the original, has been closed.
//
// Panics with ErrSenderClosed if this handle has been closed.
func (s *Sender[T]) Clone() *Sender[T] {
	sh := s.shared
	sh.mu.Lock()
	if s.closed {
		sh.mu.Unlock()
		panic(ErrSenderClosed)
	}
	sh.senders++
	sh.mu.Unlock()

	return &Sender[T]{shared: sh}
}

// Close releases this handle. When the last handle is closed, a blocked
// Receive returns and reports the channel as closed once it is drained.
//
// Safe to call multiple times; subsequent calls are no-ops.
func (s *Sender[T]) Close() {
	sh := s.shared
	sh.mu.Lock()
	if s.closed {
		sh.mu.Unlock()
		return
	}
	s.closed = true
	sh.senders--
	last := sh.senders == 0
	sh.mu.Unlock()

	if last {
		sh.available.Signal()
	}
}
