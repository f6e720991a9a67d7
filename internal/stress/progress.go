package stress

import "time"

// progressTicker decides when the consumer should log progress.
//
// The clock is read only every N calls to Tick, so the check costs an
// integer increment on most receives.
type progressTicker struct {
	interval time.Duration
	every    int
	count    int
	lastTick time.Time
}

func newProgressTicker(interval time.Duration, every int) *progressTicker {
	if every < 1 {
		every = 1
	}
	return &progressTicker{
		interval: interval,
		every:    every,
		lastTick: time.Now(),
	}
}

// Tick returns true if the interval has elapsed since the last tick.
// Only every Nth call looks at the clock.
func (p *progressTicker) Tick() bool {
	p.count++
	if p.count%p.every != 0 {
		return false
	}

	now := time.Now()
	if now.Sub(p.lastTick) >= p.interval {
		p.lastTick = now
		return true
	}
	return false
}
