package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame interval of the main loop (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the simulated step after a stall (terminal suspend, slow draw)
	MaxFrameDelta = 50 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller and the main loop
	EventChannelSize = 256
)

// Input
const (
	// InputInitialHoldWindow is how long a fresh key press counts as held
	// Covers the typical 500ms OS delay before auto-repeat begins
	InputInitialHoldWindow = 550 * time.Millisecond

	// InputHoldWindow is how long a key counts as held after an auto-repeat
	InputHoldWindow = 180 * time.Millisecond
)
