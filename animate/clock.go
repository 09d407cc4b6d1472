package animate

import (
	"context"
	"time"
)

// Clock suspends the calling flow for a duration.
type Clock interface {
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the
	// latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock sleeps on a runtime timer.
type RealClock struct{}

// Sleep implements Clock.
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Instant never blocks; it only reports cancellation. It records the total
// time it was asked to sleep.
type Instant struct {
	Slept time.Duration
	Calls int
}

// Sleep implements Clock.
func (c *Instant) Sleep(ctx context.Context, d time.Duration) error {
	c.Calls++
	c.Slept += d
	return ctx.Err()
}
