// Package stress drives an mpsc channel with many producers and checks
// what the single consumer observes.
//
// Every producer owns a cloned Sender and sends sequence-numbered messages.
// The consumer verifies two properties while draining:
//   - No loss: each producer's received count equals its sent count
//   - Per-sender FIFO: each producer's sequence numbers arrive in order
//
// A run ends after a fixed number of messages per producer, after a
// duration, or when the context is canceled, whichever comes first.
package stress
