// Command channel benchmarks the mpsc channel against a buffered Go
// channel and go-lock-free-ring.
//
// Usage:
//
//	go run ./cmd/channel -n 10000000 -size 1024 -burst 64
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/randomizedcoder/go-mpsc/internal/mpsc"
)

type result struct {
	name string
	dur  time.Duration
}

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	size := flag.Int("size", 1024, "buffer size for the Go channel and ring")
	burst := flag.Int("burst", 64, "values sent per iteration before draining")
	flag.Parse()

	if *iterations < 1 || *size < 1 || *burst < 1 || *burst > *size {
		fmt.Fprintln(os.Stderr, "channel: -n, -size and -burst must be positive, and -burst <= -size")
		os.Exit(2)
	}

	fmt.Printf("Benchmarking single-goroutine send/receive (%d iterations, size=%d, burst=%d)\n",
		*iterations, *size, *burst)
	fmt.Println("─────────────────────────────────────────────────")

	rounds := *iterations / *burst
	ops := rounds * *burst

	// Benchmark buffered Go channel
	ch := make(chan int, *size)
	start := time.Now()
	for i := 0; i < rounds; i++ {
		for j := 0; j < *burst; j++ {
			ch <- j
		}
		for j := 0; j < *burst; j++ {
			<-ch
		}
	}
	chDur := time.Since(start)

	// Benchmark mpsc channel
	tx, rx := mpsc.New[int]()
	start = time.Now()
	for i := 0; i < rounds; i++ {
		for j := 0; j < *burst; j++ {
			tx.Send(j)
		}
		for j := 0; j < *burst; j++ {
			rx.Receive()
		}
	}
	mpscDur := time.Since(start)
	tx.Close()

	results := []result{
		{"Channel", chDur},
		{"MPSC", mpscDur},
	}

	// Benchmark go-lock-free-ring (1 shard)
	r, err := ring.NewShardedRing(uint64(*size), 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "channel: go-lock-free-ring: %v\n", err)
	} else {
		start = time.Now()
		for i := 0; i < rounds; i++ {
			for j := 0; j < *burst; j++ {
				r.Write(0, j)
			}
			for j := 0; j < *burst; j++ {
				r.TryRead()
			}
		}
		results = append(results, result{"ShardedRing", time.Since(start)})
	}

	// Results
	fmt.Printf("\nResults (send + receive per value):\n")
	for _, res := range results {
		perOp := float64(res.dur.Nanoseconds()) / float64(ops)
		fmt.Printf("  %-12s %v (%.2f ns/op)\n", res.name+":", res.dur, perOp)
	}

	chPerOp := float64(chDur.Nanoseconds()) / float64(ops)
	mpscPerOp := float64(mpscDur.Nanoseconds()) / float64(ops)
	if mpscPerOp < chPerOp {
		fmt.Printf("\n  Speedup:  %.2fx (MPSC faster than Channel)\n", chPerOp/mpscPerOp)
	} else {
		fmt.Printf("\n  Speedup:  %.2fx (Channel faster than MPSC)\n", mpscPerOp/chPerOp)
	}

	// Extrapolate to ops/second
	fmt.Printf("\nThroughput (theoretical max):\n")
	for _, res := range results {
		perOp := float64(res.dur.Nanoseconds()) / float64(ops)
		fmt.Printf("  %-12s %.2f M ops/sec\n", res.name+":", 1000/perOp)
	}
}
