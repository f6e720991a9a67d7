// Package mpsc provides an unbounded multi-producer single-consumer channel.
//
// New returns one Sender and one Receiver bound to the same shared state:
// a FIFO queue, a count of live senders, and a condition variable, all
// guarded by a single mutex.
//
//	tx, rx := mpsc.New[int]()
//	go func() {
//		defer tx.Close()
//		tx.Send(42)
//	}()
//	for v := range rx.All() {
//		fmt.Println(v)
//	}
//
// # Senders
//
// Senders never block beyond a brief lock acquisition. Clone creates an
// additional handle; every handle, including the one returned by New, must
// be closed exactly once (further Close calls on the same handle are no-ops).
// The channel is closed once the last sender handle is closed.
//
// # Receiver (IMPORTANT)
//
// There is exactly one Receiver per channel, and it is NOT safe for multiple
// goroutines to call Receive concurrently. The implementation includes a
// runtime guard that panics on concurrent use.
//
// Receive blocks until a value is available or the channel is closed. There
// is no timeout or cancellation: a blocked Receive is released only by a
// Send or by the last Sender's Close.
//
// When Receive takes a value from the shared queue and more values remain,
// it moves the whole remainder into a receiver-local buffer in one swap, so
// the following receives are served without touching the lock.
package mpsc
