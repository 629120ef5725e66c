package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orb-arena/constant"
	"github.com/lixenwraith/orb-arena/physics"
	"github.com/lixenwraith/orb-arena/vmath"
)

func newTestScreen(t *testing.T, w, h int) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(w, h)
	return sim, NewScreen(sim, 7)
}

func rowText(s tcell.Screen, y, from, to int) string {
	out := make([]rune, 0, to-from)
	for x := from; x < to; x++ {
		r, _, _, _ := s.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func findRune(s tcell.Screen, want rune) (int, int, tcell.Style, bool) {
	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, style, _ := s.GetContent(x, y)
			if r == want {
				return x, y, style, true
			}
		}
	}
	return 0, 0, tcell.StyleDefault, false
}

func TestDrawHUD(t *testing.T) {
	sim, scr := newTestScreen(t, 80, 24)
	scr.SetText(ChannelScore, "Score: 30")
	scr.SetText(ChannelLives, "Lives: 2")

	scr.Draw(nil, constant.FrameUpdateInterval)

	if got := rowText(sim, 0, 0, 9); got != "Score: 30" {
		t.Errorf("Expected score row 'Score: 30', got %q", got)
	}
	if got := rowText(sim, 1, 0, 8); got != "Lives: 2" {
		t.Errorf("Expected lives row 'Lives: 2', got %q", got)
	}
}

func TestDrawBorder(t *testing.T) {
	sim, scr := newTestScreen(t, 40, 20)
	scr.Draw(nil, 0)

	corners := []struct {
		x, y int
		want rune
	}{
		{0, constant.HUDRows, '┌'},
		{39, constant.HUDRows, '┐'},
		{0, 19, '└'},
		{39, 19, '┘'},
	}
	for _, c := range corners {
		if r, _, _, _ := sim.GetContent(c.x, c.y); r != c.want {
			t.Errorf("Expected %q at (%d,%d), got %q", c.want, c.x, c.y, r)
		}
	}
}

func TestDrawActors(t *testing.T) {
	sim, scr := newTestScreen(t, 92, 30)
	world := physics.NewWorld(constant.ArenaWidth, constant.ArenaHeight)
	world.Spawn(physics.KindPlayer, vmath.Vec2F{X: 450, Y: 270}, vmath.Vec2F{})
	world.Spawn(physics.KindOrb, vmath.Vec2F{X: 100, Y: 100}, vmath.Vec2F{})
	world.Spawn(physics.KindBomb, vmath.Vec2F{X: 800, Y: 400}, vmath.Vec2F{})

	scr.Draw(world, 0)

	_, _, orbStyle, ok := findRune(sim, constant.GlyphOrb)
	if !ok {
		t.Fatal("Expected orb glyph on screen")
	}
	if fg, _, _ := orbStyle.Decompose(); fg != tcell.NewHexColor(constant.ColorOrb) {
		t.Errorf("Expected orb color %06x, got %v", constant.ColorOrb, fg)
	}

	bx, by, _, ok := findRune(sim, constant.GlyphBomb)
	if !ok {
		t.Fatal("Expected bomb glyph on screen")
	}
	px, py, playerStyle, ok := findRune(sim, constant.GlyphPlayer)
	if !ok {
		t.Fatal("Expected player glyph on screen")
	}
	if fg, _, _ := playerStyle.Decompose(); fg != tcell.NewHexColor(constant.ColorPlayer) {
		t.Errorf("Expected player color %06x, got %v", constant.ColorPlayer, fg)
	}
	if bx <= px || by <= py {
		t.Errorf("Expected bomb right of and below player, bomb=(%d,%d) player=(%d,%d)", bx, by, px, py)
	}
}

func TestDrawSkipsInactive(t *testing.T) {
	sim, scr := newTestScreen(t, 80, 24)
	world := physics.NewWorld(constant.ArenaWidth, constant.ArenaHeight)
	orb := world.Spawn(physics.KindOrb, vmath.Vec2F{X: 100, Y: 100}, vmath.Vec2F{})
	world.Deactivate(orb)

	scr.Draw(world, 0)

	if _, _, _, ok := findRune(sim, constant.GlyphOrb); ok {
		t.Error("Expected collected orb to be hidden")
	}
}

func TestDrawPlayerTint(t *testing.T) {
	sim, scr := newTestScreen(t, 80, 24)
	world := physics.NewWorld(constant.ArenaWidth, constant.ArenaHeight)
	player := world.Spawn(physics.KindPlayer, vmath.Vec2F{X: 450, Y: 270}, vmath.Vec2F{})
	player.ApplyTint(constant.ColorHitTint)

	scr.Draw(world, 0)

	_, _, style, ok := findRune(sim, constant.GlyphPlayer)
	if !ok {
		t.Fatal("Expected player glyph on screen")
	}
	if fg, _, _ := style.Decompose(); fg != tcell.NewHexColor(constant.ColorHitTint) {
		t.Errorf("Expected tint %06x, got %v", constant.ColorHitTint, fg)
	}
}

func TestDrawMultilineMessage(t *testing.T) {
	sim, scr := newTestScreen(t, 80, 24)
	scr.SetText(ChannelMessage, "GAME OVER\nPRESS R TO RESTART")
	scr.Draw(nil, 0)

	x1, y1, _, ok := findRune(sim, 'G')
	if !ok {
		t.Fatal("Expected first message line")
	}
	if got := rowText(sim, y1, x1, x1+9); got != "GAME OVER" {
		t.Errorf("Expected 'GAME OVER', got %q", got)
	}

	line2 := "PRESS R TO RESTART"
	x2 := 1 + 78/2 - len(line2)/2
	if got := rowText(sim, y1+1, x2, x2+len(line2)); got != line2 {
		t.Errorf("Expected %q on next row, got %q", line2, got)
	}
}

func TestMessageClearedWhenEmpty(t *testing.T) {
	sim, scr := newTestScreen(t, 80, 24)
	scr.SetText(ChannelMessage, "WAVE 2")
	scr.Draw(nil, 0)
	if _, _, _, ok := findRune(sim, 'W'); !ok {
		t.Fatal("Expected wave message")
	}

	scr.SetText(ChannelMessage, "")
	scr.Draw(nil, 0)
	if _, _, _, ok := findRune(sim, 'W'); ok {
		t.Error("Expected message to be gone after clearing")
	}
}

func TestShakeExpires(t *testing.T) {
	_, scr := newTestScreen(t, 80, 24)
	scr.Shake(constant.ShakeDuration, constant.ShakeIntensity)
	if !scr.Shaking() {
		t.Fatal("Expected shake to be active")
	}

	for elapsed := time.Duration(0); elapsed < constant.ShakeDuration; elapsed += constant.FrameUpdateInterval {
		scr.Draw(nil, constant.FrameUpdateInterval)
		if scr.offsetX < -1 || scr.offsetX > 1 || scr.offsetY < -1 || scr.offsetY > 1 {
			t.Fatalf("Expected offset within one cell, got (%d,%d)", scr.offsetX, scr.offsetY)
		}
	}
	if scr.Shaking() {
		t.Error("Expected shake to end after its duration")
	}

	scr.Draw(nil, constant.FrameUpdateInterval)
	if scr.offsetX != 0 || scr.offsetY != 0 {
		t.Errorf("Expected zero offset after shake, got (%d,%d)", scr.offsetX, scr.offsetY)
	}
}

func TestResizeTooSmall(t *testing.T) {
	sim, scr := newTestScreen(t, 80, 24)
	sim.SetSize(8, 4)
	scr.Resize()

	world := physics.NewWorld(constant.ArenaWidth, constant.ArenaHeight)
	world.Spawn(physics.KindPlayer, vmath.Vec2F{X: 450, Y: 270}, vmath.Vec2F{})
	scr.Draw(world, 0)

	if _, _, _, ok := findRune(sim, constant.GlyphPlayer); ok {
		t.Error("Expected arena hidden on tiny terminal")
	}
}

func TestChannelText(t *testing.T) {
	_, scr := newTestScreen(t, 80, 24)
	scr.SetText(ChannelMessage, "START")
	if scr.Text(ChannelMessage) != "START" {
		t.Errorf("Expected START, got %q", scr.Text(ChannelMessage))
	}
	scr.SetText(Channel(9), "ignored")
	if scr.Text(Channel(9)) != "" {
		t.Error("Expected unknown channel to be empty")
	}
	if ChannelLives.String() != "lives" {
		t.Errorf("Expected lives, got %s", ChannelLives.String())
	}
}
