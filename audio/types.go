package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundCollect  SoundType = iota // Orb collected
	SoundHit                       // Bomb contact, life lost
	SoundWave                      // Wave advanced
	SoundGameOver                  // Last life lost
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"collect", "hit", "wave", "gameover"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioUnavailable = errors.New("audio device unavailable")
	ErrAudioDisabled    = errors.New("audio disabled by configuration")
)

// ParseSoundType resolves a name produced by SoundType.String
func ParseSoundType(name string) (SoundType, bool) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		if soundNames[st] == name {
			return st, true
		}
	}
	return 0, false
}
