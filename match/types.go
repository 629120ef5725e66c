package match

import (
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/orb-arena/audio"
	"github.com/lixenwraith/orb-arena/engine/fsm"
	"github.com/lixenwraith/orb-arena/render"
)

// Lifecycle events
const (
	EventStart    fsm.Event = "start"
	EventLivesOut fsm.Event = "lives_out"
	EventRestart  fsm.Event = "restart"
)

// GameOverText is shown in the message channel once lives run out
const GameOverText = "GAME OVER\nPRESS R TO RESTART"

// StartText is shown before the first move of a match
const StartText = "START"

// Phase is the active lifecycle state
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
)

var phaseNames = [...]string{"NotStarted", "Playing", "GameOver"}

func (p Phase) String() string {
	if int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Match is the mutable state of one play-through
type Match struct {
	ID uuid.UUID

	Score int
	Lives int
	Wave  int

	Started    bool
	GameOver   bool
	Invincible bool
}

// Display receives text and camera commands
type Display interface {
	SetText(ch render.Channel, text string)
	Shake(d time.Duration, intensity float64)
}

// Sounder receives audio cues
type Sounder interface {
	Play(st audio.SoundType)
}

type silent struct{}

func (silent) Play(audio.SoundType) {}
