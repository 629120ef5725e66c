package engine

import "time"

// GameClock is simulated time: the sum of tick deltas since creation
// It only moves when the loop ticks, so pauses and stalls never fire timers early
type GameClock struct {
	elapsed time.Duration
}

// NewGameClock creates a clock at zero
func NewGameClock() *GameClock {
	return &GameClock{}
}

// Advance moves the clock forward by dt and returns the new time; negative deltas are ignored
func (c *GameClock) Advance(dt time.Duration) time.Duration {
	if dt > 0 {
		c.elapsed += dt
	}
	return c.elapsed
}

// Now returns elapsed game time
func (c *GameClock) Now() time.Duration {
	return c.elapsed
}
