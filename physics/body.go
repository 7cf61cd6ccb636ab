package physics

import (
	"github.com/solarlune/resolv"

	"github.com/lixenwraith/brick-breaker/vmath"
)

// BodyKind selects whether the world integrates a body
type BodyKind uint8

const (
	// BodyStatic never moves on its own; it may be repositioned explicitly
	BodyStatic BodyKind = iota
	// BodyDynamic is integrated from its velocity every Step
	BodyDynamic
)

// Collision tags
const (
	TagBall   = "ball"
	TagBrick  = "brick"
	TagPaddle = "paddle"
	TagWall   = "wall"
)

// Body is an axis-aligned box tracked by a World
// Position is the box center in field coordinates
type Body struct {
	id    uint64
	kind  BodyKind
	tag   string
	pos   vmath.Vec2
	vel   vmath.Vec2
	w, h  float64
	obj   *resolv.Object
	world *World

	// Data is an owner back-reference (e.g. *brick.Brick), opaque to physics
	Data any
}

func (b *Body) ID() uint64           { return b.id }
func (b *Body) Kind() BodyKind       { return b.kind }
func (b *Body) Tag() string          { return b.tag }
func (b *Body) Position() vmath.Vec2 { return b.pos }
func (b *Body) Velocity() vmath.Vec2 { return b.vel }

// Size returns width and height
func (b *Body) Size() (float64, float64) { return b.w, b.h }

// Bounds returns the body's box
func (b *Body) Bounds() vmath.Rect {
	return vmath.RectCentered(b.pos, b.w, b.h)
}

// Removed reports whether the body has left its world
func (b *Body) Removed() bool { return b.world == nil }

// SetPosition teleports the body, updating the broadphase
func (b *Body) SetPosition(p vmath.Vec2) {
	b.pos = p
	b.sync()
}

// SetVelocity sets velocity in px/s; ignored by the integrator for static bodies
func (b *Body) SetVelocity(v vmath.Vec2) {
	b.vel = v
}

// Resize recreates the collision footprint with a new size, keeping the center
// The broadphase object is replaced, never scaled in place
func (b *Body) Resize(w, h float64) {
	b.w, b.h = w, h
	if b.world == nil {
		return
	}
	b.world.space.Remove(b.obj)
	b.obj = b.world.newObject(b)
	b.world.space.Add(b.obj)
}

func (b *Body) sync() {
	if b.obj == nil {
		return
	}
	b.obj.X = b.pos.X - b.w/2 + b.world.margin
	b.obj.Y = b.pos.Y - b.h/2 + b.world.margin
	b.obj.Update()
}
