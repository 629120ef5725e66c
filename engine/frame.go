package engine

import "time"

// FrameTimer converts wall-clock frame instants into bounded simulation deltas
type FrameTimer struct {
	provider TimeProvider
	last     time.Time
	maxDelta time.Duration
}

// NewFrameTimer starts measuring from the provider's current time
// Deltas above maxDelta are clamped so a stalled terminal does not teleport actors
func NewFrameTimer(provider TimeProvider, maxDelta time.Duration) *FrameTimer {
	return &FrameTimer{
		provider: provider,
		last:     provider.Now(),
		maxDelta: maxDelta,
	}
}

// Tick returns the current time and the clamped delta since the previous Tick
func (f *FrameTimer) Tick() (time.Time, time.Duration) {
	now := f.provider.Now()
	dt := now.Sub(f.last)
	f.last = now
	if dt < 0 {
		dt = 0
	}
	if f.maxDelta > 0 && dt > f.maxDelta {
		dt = f.maxDelta
	}
	return now, dt
}
