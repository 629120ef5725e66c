package physics

import (
	"time"

	"github.com/lixenwraith/orb-arena/vmath"
)

// Integrate advances position by (vel + impulse) * dt and decays the impulse
func Integrate(b *Body, dt time.Duration, decayRate float64) {
	s := dt.Seconds()
	step := vmath.V2FScale(vmath.V2FAdd(b.Vel, b.Impulse), s)
	b.Pos = vmath.V2FAdd(b.Pos, step)

	if b.Impulse != (vmath.Vec2F{}) {
		keep := 1 - decayRate*s
		if keep <= 0 {
			b.Impulse = vmath.Vec2F{}
		} else {
			b.Impulse = vmath.V2FScale(b.Impulse, keep)
		}
	}
}

// SetImpulse overrides the pending impulse (hard redirect)
func SetImpulse(b *Body, v vmath.Vec2F) {
	b.Impulse = v
}

// ReflectBoundsX handles horizontal boundary collision, returns true if reflection occurred
// The box is kept inside [minX, maxX] and the x velocity points back inside
func ReflectBoundsX(b *Body, minX, maxX float64) bool {
	half := b.W / 2
	if b.Pos.X-half < minX {
		b.Pos.X = minX + half
		if b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X
		}
		b.Impulse.X = 0
		return true
	}
	if b.Pos.X+half > maxX {
		b.Pos.X = maxX - half
		if b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X
		}
		b.Impulse.X = 0
		return true
	}
	return false
}

// ReflectBoundsY handles vertical boundary collision, returns true if reflection occurred
func ReflectBoundsY(b *Body, minY, maxY float64) bool {
	half := b.H / 2
	if b.Pos.Y-half < minY {
		b.Pos.Y = minY + half
		if b.Vel.Y < 0 {
			b.Vel.Y = -b.Vel.Y
		}
		b.Impulse.Y = 0
		return true
	}
	if b.Pos.Y+half > maxY {
		b.Pos.Y = maxY - half
		if b.Vel.Y > 0 {
			b.Vel.Y = -b.Vel.Y
		}
		b.Impulse.Y = 0
		return true
	}
	return false
}

// ReflectBounds handles both axis boundary collisions, returns true if any reflection occurred
func ReflectBounds(b *Body, width, height float64) bool {
	rx := ReflectBoundsX(b, 0, width)
	ry := ReflectBoundsY(b, 0, height)
	return rx || ry
}

// ClampBounds keeps the box inside the arena without changing velocity
func ClampBounds(b *Body, width, height float64) {
	b.Pos.X = vmath.Clamp(b.Pos.X, b.W/2, width-b.W/2)
	b.Pos.Y = vmath.Clamp(b.Pos.Y, b.H/2, height-b.H/2)
}
