package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orb-arena/audio"
	"github.com/lixenwraith/orb-arena/config"
	"github.com/lixenwraith/orb-arena/constant"
	"github.com/lixenwraith/orb-arena/engine"
	"github.com/lixenwraith/orb-arena/input"
	"github.com/lixenwraith/orb-arena/match"
	"github.com/lixenwraith/orb-arena/physics"
	"github.com/lixenwraith/orb-arena/render"
	"github.com/lixenwraith/orb-arena/vmath"
)

var (
	configPath = flag.String("config", "", "Tuning file (YAML), overlays the preset")
	presetName = flag.String("preset", config.PresetClassic, "Tuning preset: classic, simple")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for time based")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/orb-arena.log")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	tuning, err := config.Load(*configPath, *presetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
		os.Exit(1)
	}
	seed := config.Seed(*seedFlag, uint64(time.Now().UnixNano()))
	log.Printf("starting: seed %d, preset %q, config %q", seed, *presetName, *configPath)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mORB-ARENA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()
	screen.EnableFocus()

	// Audio is optional
	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(*muteFlag)

	display := render.NewScreen(screen, seed)
	world := physics.NewWorld(constant.ArenaWidth, constant.ArenaHeight)
	controller, err := match.NewController(tuning, world, display, sound, vmath.NewFastRand(seed))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create match: %v\n", err)
		os.Exit(1)
	}

	keys := input.DefaultKeyTable()
	tracker := input.NewTracker(constant.InputInitialHoldWindow, constant.InputHoldWindow)
	provider := engine.NewMonotonicTimeProvider()

	eventChan := make(chan tcell.Event, constant.EventChannelSize)
	go pollEvents(screen, eventChan)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	onEvent := func(ev tcell.Event) bool {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			action, ok := keys.Lookup(ev)
			if !ok {
				return true
			}
			switch action {
			case input.ActionQuit:
				return false
			case input.ActionMute:
				log.Printf("audio muted: %v", sound.ToggleMute())
			default:
				tracker.Press(action, provider.Now())
			}
		case *tcell.EventFocus:
			if !ev.Focused {
				tracker.ReleaseAll()
			}
		case *tcell.EventResize:
			screen.Sync()
			display.Resize()
		}
		return true
	}

	onFrame := func(now time.Time, dt time.Duration) {
		controller.Tick(tracker.Snapshot(now), dt)
		display.Draw(world, dt)
	}

	loop := engine.NewLoop(constant.FrameUpdateInterval, provider, constant.MaxFrameDelta)
	if err := loop.Run(ctx, eventChan, onEvent, onFrame); err != nil {
		log.Printf("loop stopped: %v", err)
	}
	m := controller.Match()
	log.Printf("exit: match %s, score %d, wave %d", m.ID, m.Score, m.Wave)
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer close(out)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		out <- ev
	}
}
