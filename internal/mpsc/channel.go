package mpsc

import (
	"errors"
	"sync"

	"github.com/randomizedcoder/go-mpsc/internal/queue"
)

var (
	// ErrSenderClosed is the panic value for Send or Clone on a Sender that
	// has already been closed.
	ErrSenderClosed = errors.New("mpsc: use of closed Sender")

	// ErrConcurrentReceive is the panic value raised when more than one
	// goroutine uses the Receiver at the same time.
	ErrConcurrentReceive = errors.New("mpsc: concurrent use of single-consumer Receiver")
)

// shared is the state referenced by every Sender and the Receiver.
// All fields except available are guarded by mu.
type shared[T any] struct {
	mu        sync.Mutex
	available sync.Cond // L is &mu

	queue        queue.Deque[T]
	senders      int
	receiverGone bool
}

// New creates a channel and returns its first Sender and its only Receiver.
func New[T any]() (*Sender[T], *Receiver[T]) {
	s := &shared[T]{senders: 1}
	s.available.L = &s.mu
	return &Sender[T]{shared: s}, &Receiver[T]{shared: s}
}
