package mpsc

import (
	"iter"
	"sync/atomic"

	"github.com/randomizedcoder/go-mpsc/internal/queue"
)

// Receiver is the consumer handle of a channel.
//
// SINGLE-CONSUMER CONTRACT: only ONE goroutine at a time may call Receive,
// All, or Close.
type Receiver[T any] struct {
	shared *shared[T]

	// buffer holds values already taken from the shared queue.
	// Owned by the consuming goroutine; never touched under the lock
	// except when it is swapped with the (locked) shared queue.
	buffer queue.Deque[T]
	closed bool

	// guard: detects concurrent misuse
	active atomic.Uint32
}

func (r *Receiver[T]) enter() {
	if !r.active.CompareAndSwap(0, 1) {
		panic(ErrConcurrentReceive)
	}
}

func (r *Receiver[T]) exit() {
	r.active.Store(0)
}

// Receive returns the next value, blocking until one is available.
// Returns false once every Sender is closed and all sent values have been
// received; every later call returns false as well.
func (r *Receiver[T]) Receive() (T, bool) {
	r.enter()
	defer r.exit()

	return r.receive()
}

func (r *Receiver[T]) receive() (T, bool) {
	if v, ok := r.buffer.PopFront(); ok {
		return v, true
	}

	var zero T
	if r.closed {
		return zero, false
	}

	sh := r.shared
	sh.mu.Lock()
	defer sh.mu.Unlock()

	for {
		if v, ok := sh.queue.PopFront(); ok {
			if sh.queue.Len() > 0 {
				// buffer is empty here: take the rest in one go and hand
				// the (empty) buffer storage back to the shared queue
				r.buffer.Swap(&sh.queue)
			}
			return v, true
		}

		if sh.senders == 0 {
			return zero, false
		}

		// releases mu while waiting; re-check on wake
		sh.available.Wait()
	}
}

// All returns an iterator over received values. Iteration ends when the
// channel is closed and drained, or when the loop body breaks; values not
// yet received stay in the channel.
//
// The sequence is not restartable: once exhausted, ranging over it again
// yields nothing.
func (r *Receiver[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := r.Receive()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Close discards every pending value and marks the receiver as gone.
// Values sent afterwards are dropped by the senders. Receive reports the
// channel as closed from then on.
//
// Close does not notify senders, which never block. Safe to call multiple
// times; subsequent calls are no-ops.
func (r *Receiver[T]) Close() {
	r.enter()
	defer r.exit()

	if r.closed {
		return
	}
	r.closed = true
	r.buffer.Clear()

	sh := r.shared
	sh.mu.Lock()
	sh.receiverGone = true
	sh.queue.Clear()
	sh.mu.Unlock()
}
