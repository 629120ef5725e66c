package physics

import (
	"time"

	"github.com/lixenwraith/orb-arena/constant"
	"github.com/lixenwraith/orb-arena/vmath"
	"github.com/solarlune/resolv"
)

// OverlapFunc receives the two bodies of an overlapping pair, ordered as registered
type OverlapFunc func(a, b *Body)

type overlapHandler struct {
	a, b Kind
	fn   OverlapFunc
}

type pair struct {
	a, b *Body
}

// World owns every body in the arena and dispatches overlap callbacks
// Not safe for concurrent use; the game loop is the only caller
type World struct {
	Width, Height float64

	space    *resolv.Space
	bodies   [kindCount][]*Body
	handlers []overlapHandler
	pairs    []pair

	nextID    uint64
	paused    bool
	decayRate float64
}

// NewWorld creates an empty world with the given bounds
func NewWorld(width, height int) *World {
	return &World{
		Width:     float64(width),
		Height:    float64(height),
		space:     resolv.NewSpace(width, height, constant.SpatialCellSize, constant.SpatialCellSize),
		decayRate: constant.ImpulseDecayRate,
	}
}

// SetImpulseDecay overrides the knockback decay rate (fraction per second)
func (w *World) SetImpulseDecay(rate float64) {
	w.decayRate = rate
}

// Spawn creates an active body of the given kind centered at pos
func (w *World) Spawn(kind Kind, pos, vel vmath.Vec2F) *Body {
	size := float64(kindSize(kind))
	w.nextID++
	b := &Body{
		ID:     w.nextID,
		Kind:   kind,
		Pos:    pos,
		Vel:    vel,
		W:      size,
		H:      size,
		Bounce: kind != KindPlayer,
		Active: true,
	}
	m := b.Min()
	b.obj = resolv.NewObject(m.X, m.Y, b.W, b.H, kind.Tag())
	b.obj.Data = b
	w.space.Add(b.obj)
	w.bodies[kind] = append(w.bodies[kind], b)
	return b
}

// Deactivate disables a body; it stays in its pool but no longer moves, overlaps or draws
func (w *World) Deactivate(b *Body) {
	if !b.Active {
		return
	}
	b.Active = false
	b.Vel = vmath.Vec2F{}
	b.Impulse = vmath.Vec2F{}
	if b.obj != nil && b.obj.Space != nil {
		w.space.Remove(b.obj)
	}
}

// RemoveKind deactivates and drops every body of a kind
func (w *World) RemoveKind(kind Kind) {
	for _, b := range w.bodies[kind] {
		w.Deactivate(b)
	}
	w.bodies[kind] = nil
}

// Clear drops all bodies; overlap handlers stay registered
func (w *World) Clear() {
	for k := Kind(0); k < kindCount; k++ {
		w.RemoveKind(k)
	}
	w.pairs = w.pairs[:0]
}

// Bodies returns the pool of a kind, including inactive members
func (w *World) Bodies(kind Kind) []*Body {
	return w.bodies[kind]
}

// CountActive returns the number of active bodies of a kind
func (w *World) CountActive(kind Kind) int {
	n := 0
	for _, b := range w.bodies[kind] {
		if b.Active {
			n++
		}
	}
	return n
}

// OnOverlap registers fn for every overlapping (a, b) pair found during Step
func (w *World) OnOverlap(a, b Kind, fn OverlapFunc) {
	w.handlers = append(w.handlers, overlapHandler{a: a, b: b, fn: fn})
}

func (w *World) Pause()       { w.paused = true }
func (w *World) Resume()      { w.paused = false }
func (w *World) Paused() bool { return w.paused }

// Step integrates all active bodies, resolves arena bounds, then dispatches overlaps
// Each registered handler runs at most once per overlapping pair per step
func (w *World) Step(dt time.Duration) {
	if w.paused || dt <= 0 {
		return
	}

	for k := Kind(0); k < kindCount; k++ {
		for _, b := range w.bodies[k] {
			if !b.Active {
				continue
			}
			Integrate(b, dt, w.decayRate)
			if b.Bounce {
				ReflectBounds(b, w.Width, w.Height)
			} else {
				ClampBounds(b, w.Width, w.Height)
			}
			b.syncShape()
		}
	}

	w.dispatchOverlaps()
}

// dispatchOverlaps collects pairs per handler before invoking it, so callbacks may spawn or
// remove bodies; pairs whose bodies went inactive meanwhile are skipped
func (w *World) dispatchOverlaps() {
	for _, h := range w.handlers {
		w.pairs = w.collectPairs(w.pairs[:0], h.a, h.b)
		for _, p := range w.pairs {
			if !p.a.Active || !p.b.Active {
				continue
			}
			h.fn(p.a, p.b)
		}
	}
	w.pairs = w.pairs[:0]
}

func (w *World) collectPairs(dst []pair, ka, kb Kind) []pair {
	tag := kb.Tag()
	for _, a := range w.bodies[ka] {
		if !a.Active || a.obj == nil {
			continue
		}
		col := a.obj.Check(0, 0, tag)
		if col == nil {
			continue
		}
		for _, o := range col.Objects {
			b, ok := o.Data.(*Body)
			if !ok || !b.Active || b == a {
				continue
			}
			// Same-kind pairs would otherwise be reported from both sides
			if ka == kb && b.ID < a.ID {
				continue
			}
			if a.Overlaps(b) {
				dst = append(dst, pair{a: a, b: b})
			}
		}
	}
	return dst
}

func kindSize(kind Kind) int {
	switch kind {
	case KindPlayer:
		return constant.PlayerSize
	case KindOrb:
		return constant.OrbSize
	case KindBomb:
		return constant.BombSize
	default:
		return 1
	}
}
