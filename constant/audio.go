package constant

import "time"

// Collect Sound Timing
const (
	CollectSoundDuration           = 250 * time.Millisecond
	CollectSoundAttack             = 5 * time.Millisecond
	CollectSoundFundamentalRelease = 220 * time.Millisecond
	CollectSoundOvertoneRelease    = 120 * time.Millisecond
)

// Hit Sound Timing
const (
	HitSoundDuration = 180 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 90 * time.Millisecond
)

// Wave Sound Timing
const (
	WaveSoundStepDuration  = 70 * time.Millisecond
	WaveSoundFinalDuration = 280 * time.Millisecond
	WaveSoundAttack        = 4 * time.Millisecond
	WaveSoundStepRelease   = 30 * time.Millisecond
	WaveSoundFinalRelease  = 200 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverNoteDuration = 220 * time.Millisecond
	GameOverSoundAttack  = 10 * time.Millisecond
	GameOverSoundRelease = 150 * time.Millisecond
)

// Speaker
const (
	// SpeakerBufferDuration is the beep speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond
)
