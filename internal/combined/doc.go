// Package combined provides comparison benchmarks for the mpsc channel.
//
// These benchmarks run real producer and consumer goroutines, so they
// capture lock contention and wakeup costs that single-goroutine
// micro-benchmarks miss. Each scenario is measured for:
//   - Channel: a buffered Go channel shared by all producers
//   - MPSC: the mutex/condition-variable channel with a cloned Sender per producer
//   - ShardedRing: go-lock-free-ring, one shard per producer
package combined
