// Package queue provides the FIFO storage used by the mpsc channel.
//
// Deque is an unbounded ring buffer: capacity is always a power of two, so
// positions are computed with a mask instead of a modulo, and the buffer
// doubles when a push finds it full.
//
// # Deque Safety (IMPORTANT)
//
// Deque is NOT safe for concurrent use. The mpsc channel only touches its
// shared Deque while holding the channel lock, and the receiver-local Deque
// is owned by the single consumer.
package queue
