// Command mpsc-stress runs many producers against one mpsc consumer and
// verifies that nothing is lost or reordered per producer.
//
// Usage:
//
//	go run ./cmd/mpsc-stress -p 8 -n 1000000
//	go run ./cmd/mpsc-stress -p 16 -n 0 -d 10s --log-format json
//
// Every flag can also be set through the environment, e.g.
// MPSC_STRESS_PRODUCERS=16 or MPSC_STRESS_LOG_LEVEL=debug.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/randomizedcoder/go-mpsc/internal/stress"
)

func main() {
	opts, err := loadOptions(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mpsc-stress: %v\n", err)
		os.Exit(2)
	}

	log := newLogger(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := stress.Run(ctx, opts.stress, log)
	if err != nil {
		log.WithError(err).Error("mpsc-stress failed")
		stop()
		os.Exit(1)
	}

	for p, n := range res.PerProducer {
		log.WithField("producer", p).WithField("received", n).Debug("producer total")
	}
}
