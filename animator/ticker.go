package animator

import (
	"time"
)

const DefaultInterval = 2000 * time.Millisecond

// Ticker delivers interval ticks to a frame loop without blocking it.
type Ticker struct {
	ticker   *time.Ticker
	C        <-chan time.Time
	interval time.Duration
}

// NewTicker starts a wall-clock ticker. Non-positive intervals use DefaultInterval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := time.NewTicker(interval)
	return &Ticker{ticker: t, C: t.C, interval: interval}
}

// NewManualTicker wraps an existing channel; Reset and Stop only record the interval.
func NewManualTicker(c <-chan time.Time, interval time.Duration) *Ticker {
	return &Ticker{C: c, interval: interval}
}

// Poll reports whether at least one tick is pending, draining any backlog so
// a slow frame never triggers back-to-back selections.
func (t *Ticker) Poll() bool {
	if t == nil || t.C == nil {
		return false
	}
	fired := false
	for {
		select {
		case <-t.C:
			fired = true
		default:
			return fired
		}
	}
}

func (t *Ticker) Interval() time.Duration {
	if t == nil {
		return 0
	}
	return t.interval
}

// Reset changes the period. The next tick arrives one full period from now.
func (t *Ticker) Reset(interval time.Duration) {
	if t == nil || interval <= 0 {
		return
	}
	t.interval = interval
	if t.ticker != nil {
		t.ticker.Reset(interval)
	}
}

func (t *Ticker) Stop() {
	if t == nil || t.ticker == nil {
		return
	}
	t.ticker.Stop()
}
