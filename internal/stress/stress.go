package stress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/go-mpsc/internal/mpsc"
)

var (
	// ErrOutOfOrder is returned when a producer's messages arrive out of
	// sequence.
	ErrOutOfOrder = errors.New("stress: messages out of order")

	// ErrLostMessages is returned when fewer messages arrive than were sent.
	ErrLostMessages = errors.New("stress: messages lost")
)

// Message is the payload sent by producers.
type Message struct {
	Producer int
	Seq      int
}

// Result summarizes a completed run.
type Result struct {
	Received    int
	PerProducer []int
	Elapsed     time.Duration
}

// Rate returns received messages per second.
func (r Result) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Received) / r.Elapsed.Seconds()
}

// Run executes a stress run and returns once every producer has finished
// and the channel has been drained.
//
// Canceling ctx stops the producers early; if a producer had not reached
// cfg.Messages, the context error is returned along with the partial result.
// A nil log discards all output.
func Run(ctx context.Context, cfg Config, log logrus.FieldLogger) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	log.WithFields(logrus.Fields{
		"producers": cfg.Producers,
		"messages":  cfg.Messages,
		"duration":  cfg.Duration,
	}).Info("starting stress run")

	tx, rx := mpsc.New[Message]()
	var stop stopFlag
	g, gctx := errgroup.WithContext(ctx)
	sent := make([]int, cfg.Producers)

	start := time.Now()
	watchDone := make(chan struct{})
	defer close(watchDone)
	go watch(gctx, cfg.Duration, &stop, watchDone)

	for p := 0; p < cfg.Producers; p++ {
		clone := tx.Clone()
		g.Go(func() error {
			defer clone.Close()
			n, err := produce(gctx, clone, p, cfg.Messages, &stop)
			sent[p] = n
			return err
		})
	}
	// producers hold the only remaining handles
	tx.Close()

	res := Result{PerProducer: make([]int, cfg.Producers)}
	var orderErr error
	prog := newProgressTicker(cfg.ReportInterval, cfg.ReportEvery)

	for msg := range rx.All() {
		res.Received++
		if orderErr == nil && msg.Seq != res.PerProducer[msg.Producer] {
			orderErr = fmt.Errorf("%w: producer %d sent seq %d, expected %d",
				ErrOutOfOrder, msg.Producer, msg.Seq, res.PerProducer[msg.Producer])
			// keep draining so producers can finish
			stop.Stop()
		}
		res.PerProducer[msg.Producer]++

		if prog.Tick() {
			elapsed := time.Since(start)
			log.WithFields(logrus.Fields{
				"received": res.Received,
				"elapsed":  elapsed.Round(time.Millisecond),
				"rate":     fmt.Sprintf("%.0f/s", float64(res.Received)/elapsed.Seconds()),
			}).Info("progress")
		}
	}
	res.Elapsed = time.Since(start)

	prodErr := g.Wait()

	fields := logrus.Fields{
		"received": res.Received,
		"elapsed":  res.Elapsed.Round(time.Millisecond),
		"rate":     fmt.Sprintf("%.0f/s", res.Rate()),
	}

	if orderErr != nil {
		log.WithFields(fields).WithError(orderErr).Error("stress run failed")
		return res, orderErr
	}
	for p, n := range sent {
		if res.PerProducer[p] != n {
			err := fmt.Errorf("%w: producer %d sent %d, received %d",
				ErrLostMessages, p, n, res.PerProducer[p])
			log.WithFields(fields).WithError(err).Error("stress run failed")
			return res, err
		}
	}
	if prodErr != nil {
		log.WithFields(fields).WithError(prodErr).Warn("stress run interrupted")
		return res, prodErr
	}

	log.WithFields(fields).Info("stress run complete")
	return res, nil
}

// produce sends up to limit messages (unlimited if limit is 0) until the
// stop flag is set. It returns how many messages were sent.
func produce(ctx context.Context, tx *mpsc.Sender[Message], id, limit int, stop *stopFlag) (int, error) {
	seq := 0
	for limit == 0 || seq < limit {
		if stop.Done() {
			break
		}
		tx.Send(Message{Producer: id, Seq: seq})
		seq++
	}

	if limit > 0 && seq < limit {
		if err := ctx.Err(); err != nil {
			return seq, fmt.Errorf("producer %d stopped after %d of %d messages: %w", id, seq, limit, err)
		}
	}
	return seq, nil
}

// watch sets the stop flag when the duration elapses or ctx is done.
func watch(ctx context.Context, d time.Duration, stop *stopFlag, done <-chan struct{}) {
	var deadline <-chan time.Time
	if d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		deadline = timer.C
	}

	select {
	case <-ctx.Done():
	case <-deadline:
	case <-done:
		return
	}
	stop.Stop()
}
