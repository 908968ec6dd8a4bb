package torrentapi

import (
	"context"
	"time"
)

// DefaultRequestInterval is the delay observed before every request.
// The API allows one request every two seconds per app.
const DefaultRequestInterval = 5 * time.Second

// Pacer delays outbound requests
type Pacer interface {
	// Wait blocks until a request may be sent or ctx is done
	Wait(ctx context.Context) error
}

// FixedPacer sleeps a fixed interval before every request. There is no burst
// allowance. Waits are serialized, so clients sharing one FixedPacer never
// start two requests less than an interval apart.
type FixedPacer struct {
	interval time.Duration
	turn     chan struct{}
}

// NewFixedPacer creates a pacer with the given interval. Zero or negative disables pacing.
func NewFixedPacer(interval time.Duration) *FixedPacer {
	if interval < 0 {
		interval = 0
	}
	return &FixedPacer{interval: interval, turn: make(chan struct{}, 1)}
}

// Interval returns the configured delay
func (p *FixedPacer) Interval() time.Duration {
	return p.interval
}

// Wait implements Pacer
func (p *FixedPacer) Wait(ctx context.Context) error {
	if p.interval == 0 {
		return ctx.Err()
	}

	select {
	case p.turn <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-p.turn }()

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
