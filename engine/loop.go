package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Loop runs frames at a fixed interval and forwards terminal events between them
// Both callbacks run on the goroutine calling Run, so game state needs no locking
type Loop struct {
	interval time.Duration
	frames   *FrameTimer
}

// NewLoop creates a loop ticking every interval; simulated deltas are clamped to maxDelta
func NewLoop(interval time.Duration, provider TimeProvider, maxDelta time.Duration) *Loop {
	return &Loop{
		interval: interval,
		frames:   NewFrameTimer(provider, maxDelta),
	}
}

// Run blocks until ctx is cancelled, events is closed, or onEvent returns false
func (l *Loop) Run(ctx context.Context, events <-chan tcell.Event, onEvent func(tcell.Event) bool, onFrame func(now time.Time, dt time.Duration)) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !onEvent(ev) {
				return nil
			}

		case <-ticker.C:
			now, dt := l.frames.Tick()
			onFrame(now, dt)
		}
	}
}
