package match

import (
	_ "embed"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/orb-arena/audio"
	"github.com/lixenwraith/orb-arena/config"
	"github.com/lixenwraith/orb-arena/engine"
	"github.com/lixenwraith/orb-arena/engine/fsm"
	"github.com/lixenwraith/orb-arena/input"
	"github.com/lixenwraith/orb-arena/physics"
	"github.com/lixenwraith/orb-arena/render"
	"github.com/lixenwraith/orb-arena/vmath"
)

//go:embed match_fsm.yaml
var lifecycleGraph []byte

// Controller owns the match state and reacts to ticks, input and overlaps
// Not safe for concurrent use; the game loop is the only caller
type Controller struct {
	tuning  config.Tuning
	world   *physics.World
	display Display
	sound   Sounder
	rng     *vmath.FastRand

	machine *fsm.Machine[*Controller]
	phases  map[fsm.StateID]Phase

	clock  *engine.GameClock
	timers *engine.Scheduler

	match   Match
	player  *physics.Body
	message string

	// messageTimer clears a transient message; zero when none is pending
	messageTimer engine.TimerID
}

// NewController wires overlap handlers into world and enters NotStarted
// A nil sound discards cues
func NewController(tuning *config.Tuning, world *physics.World, display Display, sound Sounder, rng *vmath.FastRand) (*Controller, error) {
	if tuning == nil {
		t := config.Classic()
		tuning = &t
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if sound == nil {
		sound = silent{}
	}

	clock := engine.NewGameClock()
	c := &Controller{
		tuning:  *tuning,
		world:   world,
		display: display,
		sound:   sound,
		rng:     rng,
		clock:   clock,
		timers:  engine.NewScheduler(clock),
	}

	world.SetImpulseDecay(c.tuning.KnockbackDecay)
	world.OnOverlap(physics.KindPlayer, physics.KindOrb, c.collectOrb)
	world.OnOverlap(physics.KindPlayer, physics.KindBomb, c.hitBomb)

	if err := c.buildMachine(); err != nil {
		return nil, err
	}
	if err := c.machine.Init(c); err != nil {
		return nil, fmt.Errorf("enter initial state: %w", err)
	}
	return c, nil
}

func (c *Controller) buildMachine() error {
	m := fsm.NewMachine[*Controller]()

	m.RegisterAction("ResetMatch", func(c *Controller, _ map[string]any) { c.resetMatch() })
	m.RegisterAction("BeginPlay", func(c *Controller, _ map[string]any) { c.beginPlay() })
	m.RegisterAction("EndMatch", func(c *Controller, _ map[string]any) { c.endMatch() })
	m.RegisterAction("ShowMessage", func(c *Controller, args map[string]any) {
		text, _ := args["text"].(string)
		c.setMessage(text)
	})
	m.RegisterAction("PlayCue", func(c *Controller, args map[string]any) {
		name, _ := args["cue"].(string)
		if st, ok := audio.ParseSoundType(name); ok {
			c.sound.Play(st)
		}
	})
	m.RegisterGuard("LivesDepleted", func(c *Controller) bool { return c.match.Lives <= 0 })

	if err := m.LoadConfig(lifecycleGraph); err != nil {
		return fmt.Errorf("load match lifecycle: %w", err)
	}

	c.phases = make(map[fsm.StateID]Phase, len(phaseNames))
	for i, name := range phaseNames {
		id, ok := m.StateIDOf(name)
		if !ok {
			return fmt.Errorf("match lifecycle missing state %q: %w", name, fsm.ErrUnknownState)
		}
		c.phases[id] = Phase(i)
	}
	c.machine = m
	return nil
}

// Tick advances the match by dt using one input snapshot
// Order: game clock and timers, lifecycle input, player velocity, physics step (which dispatches overlaps)
func (c *Controller) Tick(in input.Snapshot, dt time.Duration) {
	now := c.clock.Advance(dt)
	c.timers.Advance(now)

	switch c.State() {
	case PhaseGameOver:
		if in.Pressed(input.ActionRestart) {
			c.machine.HandleEvent(c, EventRestart)
		}
		return
	case PhaseNotStarted:
		if in.Pressed(input.ActionStart) {
			c.machine.HandleEvent(c, EventStart)
		}
		return
	}

	c.applyMovement(in)
	c.world.Step(dt)
}

// applyMovement resets the player velocity and applies held directions; later writes win per axis
func (c *Controller) applyMovement(in input.Snapshot) {
	speed := c.tuning.PlayerSpeed
	var v vmath.Vec2F
	if in.Held(input.ActionLeft) {
		v.X = -speed
	}
	if in.Held(input.ActionRight) {
		v.X = speed
	}
	if in.Held(input.ActionUp) {
		v.Y = -speed
	}
	if in.Held(input.ActionDown) {
		v.Y = speed
	}
	c.player.Vel = v
}

// resetMatch rebuilds every actor and drops pending timers; physics stays paused until start
func (c *Controller) resetMatch() {
	c.timers.Reset()
	c.messageTimer = 0
	c.world.Clear()
	c.world.Pause()

	c.match = Match{
		ID:    uuid.New(),
		Lives: c.tuning.StartingLives,
		Wave:  1,
	}

	c.player = c.world.Spawn(physics.KindPlayer,
		vmath.Vec2F{X: c.world.Width / 2, Y: c.world.Height / 2}, vmath.Vec2F{})
	for i := 0; i < c.tuning.BombInitialCount; i++ {
		c.spawnBomb(c.match.Wave)
	}
	c.spawnOrbs(c.match.Wave)

	c.display.SetText(render.ChannelScore, c.scoreText())
	c.display.SetText(render.ChannelLives, c.livesText())
	log.Printf("match %s: ready, %d orbs, %d bombs", c.match.ID, c.world.CountActive(physics.KindOrb), c.world.CountActive(physics.KindBomb))
}

func (c *Controller) beginPlay() {
	c.match.Started = true
	c.world.Resume()
	log.Printf("match %s: started", c.match.ID)
}

// endMatch freezes all motion; the hit tint stays on the player
func (c *Controller) endMatch() {
	c.match.GameOver = true
	c.world.Pause()
	c.player.Vel = vmath.Vec2F{}
	physics.SetImpulse(c.player, vmath.Vec2F{})
	log.Printf("match %s: game over, score %d, wave %d", c.match.ID, c.match.Score, c.match.Wave)
}

// setMessage replaces the message channel text and drops any pending clear
func (c *Controller) setMessage(text string) {
	if c.messageTimer != 0 {
		c.timers.Cancel(c.messageTimer)
		c.messageTimer = 0
	}
	c.message = text
	c.display.SetText(render.ChannelMessage, text)
}

func (c *Controller) scoreText() string { return fmt.Sprintf("Score: %d", c.match.Score) }
func (c *Controller) livesText() string { return fmt.Sprintf("Lives: %d", c.match.Lives) }

// State returns the active lifecycle phase
func (c *Controller) State() Phase {
	return c.phases[c.machine.State()]
}

// Match returns a copy of the current match state
func (c *Controller) Match() Match {
	return c.match
}

// Message returns the text last sent to the message channel
func (c *Controller) Message() string {
	return c.message
}

// World returns the physics world the controller drives
func (c *Controller) World() *physics.World {
	return c.world
}

// Player returns the player body of the current match
func (c *Controller) Player() *physics.Body {
	return c.player
}

// PendingTimers returns the number of scheduled timers
func (c *Controller) PendingTimers() int {
	return c.timers.Pending()
}
