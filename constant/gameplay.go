package constant

import "time"

// Match
const (
	StartingLives = 3
	OrbReward     = 10
)

// Orb waves: count = OrbBaseCount + OrbCountStep*(wave-1), speed = OrbBaseSpeed + OrbSpeedStep*(wave-1)
const (
	OrbBaseCount = 12
	OrbCountStep = 2
	OrbBaseSpeed = 120
	OrbSpeedStep = 25
)

// Bombs
const (
	BombInitialCount = 3
	BombBaseSpeed    = 180
	BombSpeedStep    = 25

	// BombAcceleration multiplies every bomb velocity on wave advance
	BombAcceleration = 1.15
)

// Simplified build
const (
	SimpleBombInitialCount = 4
	SimpleBombSpeed        = 220
)

// Player
const (
	PlayerSpeed = 220

	// KnockbackScale multiplies the bomb-to-player vector into a velocity impulse
	KnockbackScale = 6.0
)

// Timers
const (
	InvincibilityDuration = 1000 * time.Millisecond
	WaveMessageDuration   = 700 * time.Millisecond
)

// Camera shake on hit
const (
	ShakeDuration  = 140 * time.Millisecond
	ShakeIntensity = 0.01
)
