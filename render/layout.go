package render

import (
	"github.com/lixenwraith/orb-arena/constant"
	"github.com/lixenwraith/orb-arena/vmath"
)

// layout maps arena coordinates onto the terminal grid
// The arena interior starts at (originX, originY) and spans cols x rows cells; the border sits one cell outside
type layout struct {
	originX, originY int
	cols, rows       int
	arenaW, arenaH   float64
}

func newLayout(screenW, screenH int, arenaW, arenaH float64) layout {
	l := layout{
		originX: 1,
		originY: constant.HUDRows + 1,
		cols:    screenW - 2,
		rows:    screenH - constant.HUDRows - 2,
		arenaW:  arenaW,
		arenaH:  arenaH,
	}
	if l.cols < 0 {
		l.cols = 0
	}
	if l.rows < 0 {
		l.rows = 0
	}
	return l
}

// drawable reports whether the interior is large enough to show actors
func (l layout) drawable() bool {
	return l.cols >= constant.MinArenaCols && l.rows >= constant.MinArenaRows
}

// cellX converts an arena x to an interior column, clamped
func (l layout) cellX(x float64) int {
	c := int(x / l.arenaW * float64(l.cols))
	return int(vmath.Clamp(float64(c), 0, float64(l.cols-1)))
}

// cellY converts an arena y to an interior row, clamped
func (l layout) cellY(y float64) int {
	r := int(y / l.arenaH * float64(l.rows))
	return int(vmath.Clamp(float64(r), 0, float64(l.rows-1)))
}

// span returns the interior cell range covered by [lo, hi) on one axis, at least one cell wide
func span(lo, hi float64, cell func(float64) int) (int, int) {
	a := cell(lo)
	b := cell(hi)
	if b < a {
		b = a
	}
	return a, b
}
