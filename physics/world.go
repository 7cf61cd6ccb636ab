package physics

import (
	"sort"
	"time"

	"github.com/solarlune/resolv"

	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/vmath"
)

// Contact is a collision-start between a dynamic body and another body
// Normal points from Other's surface into Body
type Contact struct {
	Body   *Body
	Other  *Body
	Normal vmath.Vec2
	Depth  float64
}

type pairKey struct{ a, b uint64 }

// World owns bodies and a resolv spatial hash used as the broadphase
// Velocity response is left to the caller: a dynamic body stops at its first contact
// in a Step and is pushed out of penetration, its velocity untouched
type World struct {
	space  *resolv.Space
	margin float64
	width  float64
	height float64

	bodies   map[uint64]*Body
	nextID   uint64
	touching map[pairKey]bool
}

// NewWorld creates a world covering [0,width]×[0,height] plus a margin on every side
func NewWorld(width, height float64) *World {
	margin := float64(parameter.PhysicsMargin)
	cell := parameter.PhysicsCellSize
	return &World{
		space:    resolv.NewSpace(int(width+2*margin), int(height+2*margin), cell, cell),
		margin:   margin,
		width:    width,
		height:   height,
		bodies:   make(map[uint64]*Body),
		touching: make(map[pairKey]bool),
	}
}

// AddStatic places an immovable box centered at c
func (w *World) AddStatic(c vmath.Vec2, width, height float64, tag string, data any) *Body {
	return w.add(BodyStatic, c, width, height, tag, data)
}

// AddDynamic places an integrated box centered at c
func (w *World) AddDynamic(c vmath.Vec2, width, height float64, tag string, data any) *Body {
	return w.add(BodyDynamic, c, width, height, tag, data)
}

// AddWalls places left, right and top walls just outside the field
func (w *World) AddWalls() []*Body {
	t := float64(parameter.WallThickness)
	return []*Body{
		w.AddStatic(vmath.Vec2{X: -t / 2, Y: w.height / 2}, t, w.height+2*t, TagWall, nil),
		w.AddStatic(vmath.Vec2{X: w.width + t/2, Y: w.height / 2}, t, w.height+2*t, TagWall, nil),
		w.AddStatic(vmath.Vec2{X: w.width / 2, Y: -t / 2}, w.width+2*t, t, TagWall, nil),
	}
}

func (w *World) add(kind BodyKind, c vmath.Vec2, width, height float64, tag string, data any) *Body {
	w.nextID++
	b := &Body{
		id:    w.nextID,
		kind:  kind,
		tag:   tag,
		pos:   c,
		w:     width,
		h:     height,
		world: w,
		Data:  data,
	}
	b.obj = w.newObject(b)
	w.space.Add(b.obj)
	w.bodies[b.id] = b
	return b
}

func (w *World) newObject(b *Body) *resolv.Object {
	obj := resolv.NewObject(b.pos.X-b.w/2+w.margin, b.pos.Y-b.h/2+w.margin, b.w, b.h, b.tag)
	obj.Data = b
	return obj
}

// Remove takes b out of the world; removing twice is a no-op
func (w *World) Remove(b *Body) {
	if b == nil || b.world != w {
		return
	}
	w.space.Remove(b.obj)
	delete(w.bodies, b.id)
	for k := range w.touching {
		if k.a == b.id || k.b == b.id {
			delete(w.touching, k)
		}
	}
	b.world = nil
	b.obj = nil
}

// Count returns the number of bodies in the world
func (w *World) Count() int {
	return len(w.bodies)
}

// Step integrates dynamic bodies over dt and returns collision-start contacts
// Velocities are left to the caller; only positions are corrected
func (w *World) Step(dt time.Duration) []Contact {
	secs := dt.Seconds()
	if secs <= 0 {
		return nil
	}

	dynamic := make([]*Body, 0, 4)
	for _, b := range w.bodies {
		if b.kind == BodyDynamic {
			dynamic = append(dynamic, b)
		}
	}
	sort.Slice(dynamic, func(i, j int) bool { return dynamic[i].id < dynamic[j].id })

	var contacts []Contact
	touching := make(map[pairKey]bool, len(w.touching))

	for _, b := range dynamic {
		contacts = w.stepBody(b, secs, touching, contacts)
	}

	w.touching = touching
	return contacts
}

// stepBody moves b along its displacement for the step in pieces no longer than half its smaller side
// A contact pushes b out and mirrors the rest of the path, overshoot included, about the contact normal
func (w *World) stepBody(b *Body, secs float64, touching map[pairKey]bool, contacts []Contact) []Contact {
	remaining := vmath.V2Scale(b.vel, secs)
	if !vmath.V2IsFinite(remaining) {
		return contacts
	}

	stepLen := max(min(b.w, b.h)/2, vmath.V2Mag(remaining)/parameter.PhysicsMaxSubsteps)
	for i := 0; i <= parameter.PhysicsMaxSubsteps; i++ {
		dist := vmath.V2Mag(remaining)
		if dist <= 1e-9 {
			break
		}
		step := remaining
		if dist > stepLen {
			step = vmath.V2Scale(remaining, stepLen/dist)
		}
		remaining = vmath.V2Sub(remaining, step)
		b.pos = vmath.V2Add(b.pos, step)
		b.sync()

		for _, other := range w.overlapping(b) {
			normal, depth, ok := b.Bounds().Penetration(other.Bounds())
			if !ok {
				continue
			}

			b.pos = vmath.V2Add(b.pos, vmath.V2Scale(normal, depth))
			b.sync()
			if vmath.V2Dot(step, normal) < 0 {
				if vmath.V2Dot(remaining, normal) < 0 {
					remaining = vmath.V2Reflect(remaining, normal)
				}
				remaining = vmath.V2Add(remaining, vmath.V2Scale(normal, depth))
			}

			key := pairKey{b.id, other.id}
			if !touching[key] && !w.touching[key] {
				contacts = append(contacts, Contact{Body: b, Other: other, Normal: normal, Depth: depth})
			}
			touching[key] = true
		}
	}
	return contacts
}

// overlapping returns static bodies sharing a broadphase cell with b, ordered by id
func (w *World) overlapping(b *Body) []*Body {
	col := b.obj.Check(0, 0)
	if col == nil {
		return nil
	}

	out := make([]*Body, 0, len(col.Objects))
	for _, obj := range col.Objects {
		other, ok := obj.Data.(*Body)
		if !ok || other.kind != BodyStatic || other.world != w {
			continue
		}
		out = append(out, other)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Bounds returns the field rectangle the world was built for
func (w *World) Bounds() vmath.Rect {
	return vmath.Rect{W: w.width, H: w.height}
}
