package render

import (
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orb-arena/constant"
	"github.com/lixenwraith/orb-arena/physics"
	"github.com/lixenwraith/orb-arena/vmath"
)

// Screen draws the HUD, the arena and its actors onto a tcell screen
type Screen struct {
	screen tcell.Screen
	layout layout
	text   [channelCount]string

	shakeLeft      time.Duration
	shakeIntensity float64
	offsetX        int
	offsetY        int
	rng            *vmath.FastRand

	bg     tcell.Style
	border tcell.Style
	label  tcell.Style
	kinds  map[physics.Kind]tcell.Style
}

// NewScreen wraps an initialized tcell screen
func NewScreen(s tcell.Screen, seed uint64) *Screen {
	bg := tcell.StyleDefault.Background(tcell.NewHexColor(constant.ColorBackground))
	r := &Screen{
		screen: s,
		rng:    vmath.NewFastRand(seed),
		bg:     bg,
		border: bg.Foreground(tcell.NewHexColor(constant.ColorBorder)),
		label:  bg.Foreground(tcell.NewHexColor(constant.ColorText)).Bold(true),
		kinds: map[physics.Kind]tcell.Style{
			physics.KindPlayer: bg.Foreground(tcell.NewHexColor(constant.ColorPlayer)),
			physics.KindOrb:    bg.Foreground(tcell.NewHexColor(constant.ColorOrb)),
			physics.KindBomb:   bg.Foreground(tcell.NewHexColor(constant.ColorBomb)),
		},
	}
	r.Resize()
	return r
}

// SetText replaces the contents of a text channel
func (r *Screen) SetText(ch Channel, text string) {
	if ch >= channelCount {
		return
	}
	r.text[ch] = text
}

// Text returns the current contents of a text channel
func (r *Screen) Text(ch Channel) string {
	if ch >= channelCount {
		return ""
	}
	return r.text[ch]
}

// Shake jitters the arena contents for d; intensity is a fraction of the arena size
func (r *Screen) Shake(d time.Duration, intensity float64) {
	if d <= 0 || intensity <= 0 {
		return
	}
	r.shakeLeft = d
	r.shakeIntensity = intensity
}

// Shaking reports whether a shake is still running
func (r *Screen) Shaking() bool {
	return r.shakeLeft > 0
}

// Resize recomputes the arena layout from the current terminal size
func (r *Screen) Resize() {
	w, h := r.screen.Size()
	r.layout = newLayout(w, h, constant.ArenaWidth, constant.ArenaHeight)
}

// Draw renders one frame and advances the shake by dt
func (r *Screen) Draw(world *physics.World, dt time.Duration) {
	r.updateShake(dt)

	r.screen.SetStyle(r.bg)
	r.screen.Fill(' ', r.bg)

	r.drawString(0, 0, r.text[ChannelScore], r.label)
	r.drawString(0, 1, r.text[ChannelLives], r.label)

	if r.layout.drawable() {
		r.drawBorder()
		if world != nil {
			r.drawBodies(world, physics.KindOrb)
			r.drawBodies(world, physics.KindBomb)
			r.drawBodies(world, physics.KindPlayer)
		}
	}
	r.drawMessage()

	r.screen.Show()
}

func (r *Screen) updateShake(dt time.Duration) {
	r.offsetX, r.offsetY = 0, 0
	if r.shakeLeft <= 0 {
		return
	}
	r.shakeLeft -= dt

	// At least one cell so the effect is visible on small terminals
	maxX := int(math.Ceil(r.shakeIntensity * float64(r.layout.cols)))
	maxY := int(math.Ceil(r.shakeIntensity * float64(r.layout.rows)))
	r.offsetX = r.rng.Between(-maxX, maxX)
	r.offsetY = r.rng.Between(-maxY, maxY)
}

func (r *Screen) drawBorder() {
	l := r.layout
	left, top := l.originX-1, l.originY-1
	right, bottom := l.originX+l.cols, l.originY+l.rows

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, r.border)
		r.screen.SetContent(x, bottom, '─', nil, r.border)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, r.border)
		r.screen.SetContent(right, y, '│', nil, r.border)
	}
	r.screen.SetContent(left, top, '┌', nil, r.border)
	r.screen.SetContent(right, top, '┐', nil, r.border)
	r.screen.SetContent(left, bottom, '└', nil, r.border)
	r.screen.SetContent(right, bottom, '┘', nil, r.border)
}

func (r *Screen) drawBodies(world *physics.World, kind physics.Kind) {
	for _, b := range world.Bodies(kind) {
		if !b.Active {
			continue
		}
		style := r.kinds[kind]
		if b.Tint != 0 {
			style = r.bg.Foreground(tcell.NewHexColor(b.Tint))
		}

		switch kind {
		case physics.KindPlayer:
			m := b.Min()
			x0, x1 := span(m.X, m.X+b.W-1, r.layout.cellX)
			y0, y1 := span(m.Y, m.Y+b.H-1, r.layout.cellY)
			for y := y0; y <= y1; y++ {
				for x := x0; x <= x1; x++ {
					r.setArenaCell(x, y, constant.GlyphPlayer, style)
				}
			}
		case physics.KindOrb:
			r.setArenaCell(r.layout.cellX(b.Pos.X), r.layout.cellY(b.Pos.Y), constant.GlyphOrb, style)
		case physics.KindBomb:
			r.setArenaCell(r.layout.cellX(b.Pos.X), r.layout.cellY(b.Pos.Y), constant.GlyphBomb, style)
		}
	}
}

// setArenaCell draws at interior coordinates with the shake offset, clipped to the interior
func (r *Screen) setArenaCell(cx, cy int, ch rune, style tcell.Style) {
	cx += r.offsetX
	cy += r.offsetY
	if cx < 0 || cy < 0 || cx >= r.layout.cols || cy >= r.layout.rows {
		return
	}
	r.screen.SetContent(r.layout.originX+cx, r.layout.originY+cy, ch, nil, style)
}

func (r *Screen) drawMessage() {
	msg := r.text[ChannelMessage]
	if msg == "" {
		return
	}
	lines := strings.Split(msg, "\n")

	w, h := r.screen.Size()
	centerX, centerY := w/2, h/2
	if r.layout.drawable() {
		centerX = r.layout.originX + r.layout.cols/2
		centerY = r.layout.originY + r.layout.rows/2
	}

	top := centerY - len(lines)/2
	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		r.drawString(x, top+i, line, r.label)
	}
}

func (r *Screen) drawString(x, y int, s string, style tcell.Style) {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}
