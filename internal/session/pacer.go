package session

import (
	"context"
	"time"
)

// #region pacer
// Pacer inserts the cosmetic pauses between story beats.
type Pacer interface {
	Pause(ctx context.Context) error
}

// DelayPacer sleeps for Delay, returning early if ctx is cancelled.
type DelayPacer struct {
	Delay time.Duration
}

// Pause implements Pacer.
func (p DelayPacer) Pause(ctx context.Context) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoPacer never waits. Used by replays and tests.
type NoPacer struct{}

// Pause implements Pacer.
func (NoPacer) Pause(ctx context.Context) error {
	return ctx.Err()
}

// #endregion pacer
