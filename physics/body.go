package physics

import (
	"github.com/lixenwraith/orb-arena/vmath"
	"github.com/solarlune/resolv"
)

// Kind classifies bodies for pooling and overlap pairing
type Kind uint8

const (
	KindPlayer Kind = iota
	KindOrb
	KindBomb
	kindCount
)

var kindTags = [kindCount]string{"player", "orb", "bomb"}

// Tag returns the resolv tag used for broad phase queries
func (k Kind) Tag() string {
	if k >= kindCount {
		return ""
	}
	return kindTags[k]
}

func (k Kind) String() string {
	return k.Tag()
}

// Body is a moving axis-aligned box; Pos is the box center
type Body struct {
	ID   uint64
	Kind Kind

	Pos     vmath.Vec2F
	Vel     vmath.Vec2F
	Impulse vmath.Vec2F // Decaying velocity added on top of Vel (knockback)

	W, H float64

	// Bounce reflects velocity at arena edges; otherwise the body is clamped
	Bounce bool
	Active bool

	// Tint overrides the draw color when non-zero (0xRRGGBB)
	Tint int32

	obj *resolv.Object
}

// ApplyTint sets a draw color override
func (b *Body) ApplyTint(rgb int32) {
	b.Tint = rgb
}

// ClearTint restores the kind's default color
func (b *Body) ClearTint() {
	b.Tint = 0
}

// Min returns the top-left corner
func (b *Body) Min() vmath.Vec2F {
	return vmath.Vec2F{X: b.Pos.X - b.W/2, Y: b.Pos.Y - b.H/2}
}

// Overlaps reports strict AABB intersection; touching edges do not overlap
func (b *Body) Overlaps(o *Body) bool {
	return b.Pos.X-b.W/2 < o.Pos.X+o.W/2 &&
		o.Pos.X-o.W/2 < b.Pos.X+b.W/2 &&
		b.Pos.Y-b.H/2 < o.Pos.Y+o.H/2 &&
		o.Pos.Y-o.H/2 < b.Pos.Y+b.H/2
}

// syncShape pushes the position into the broad phase object
func (b *Body) syncShape() {
	if b.obj == nil {
		return
	}
	m := b.Min()
	b.obj.X = m.X
	b.obj.Y = m.Y
	b.obj.Update()
}
