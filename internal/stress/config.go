package stress

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("stress: invalid config")

// Config controls a stress run.
type Config struct {
	// Producers is the number of producer goroutines, each with its own
	// cloned Sender.
	Producers int

	// Messages is the number of messages each producer sends. Zero means
	// unlimited, in which case Duration must be set.
	Messages int

	// Duration stops the producers once elapsed. Zero means no limit, in
	// which case Messages must be set.
	Duration time.Duration

	// ReportEvery is how many receives pass between progress clock checks.
	ReportEvery int

	// ReportInterval is the minimum time between progress log lines.
	ReportInterval time.Duration
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Producers:      4,
		Messages:       100_000,
		ReportEvery:    1024,
		ReportInterval: time.Second,
	}
}

// Validate reports whether the configuration can be run.
func (c Config) Validate() error {
	switch {
	case c.Producers < 1:
		return fmt.Errorf("%w: producers must be at least 1, got %d", ErrInvalidConfig, c.Producers)
	case c.Messages < 0:
		return fmt.Errorf("%w: messages must not be negative, got %d", ErrInvalidConfig, c.Messages)
	case c.Duration < 0:
		return fmt.Errorf("%w: duration must not be negative, got %v", ErrInvalidConfig, c.Duration)
	case c.Messages == 0 && c.Duration == 0:
		return fmt.Errorf("%w: one of messages or duration must be set", ErrInvalidConfig)
	case c.ReportEvery < 1:
		return fmt.Errorf("%w: report-every must be at least 1, got %d", ErrInvalidConfig, c.ReportEvery)
	case c.ReportInterval <= 0:
		return fmt.Errorf("%w: report-interval must be positive, got %v", ErrInvalidConfig, c.ReportInterval)
	}
	return nil
}
