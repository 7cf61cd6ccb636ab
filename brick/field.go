package brick

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/physics"
)

var (
	ErrOutOfGrid     = errors.New("brick placement outside grid")
	ErrDuplicateCell = errors.New("brick placement duplicates a cell")
	ErrUnknownType   = errors.New("unknown brick type")
)

// Placement is a level's description of one brick
// Zero Health or Points fall back to the type's defaults
type Placement struct {
	Row, Col int
	Type     Type
	Health   int
	Points   int
}

// HitResult reports the outcome of damaging a brick
type HitResult struct {
	Brick     *Brick
	Destroyed bool
	// Applied is false when the brick was already destroyed
	Applied bool
}

// Field owns the bricks of one level and their static physics bodies
type Field struct {
	world  *physics.World
	bricks []*Brick
	alive  int
}

// NewField creates an empty field in world
func NewField(world *physics.World) *Field {
	return &Field{world: world}
}

// Load replaces the field contents with placements
// On error the field is left empty
func (f *Field) Load(placements []Placement) error {
	f.Clear()

	seen := make(map[[2]int]bool, len(placements))
	for i, p := range placements {
		if p.Row < 0 || p.Row >= parameter.BrickMaxRows || p.Col < 0 || p.Col >= parameter.BrickColumns {
			f.Clear()
			return fmt.Errorf("placement %d (%d,%d): %w", i, p.Row, p.Col, ErrOutOfGrid)
		}
		if p.Type >= typeCount {
			f.Clear()
			return fmt.Errorf("placement %d: %w", i, ErrUnknownType)
		}
		cell := [2]int{p.Row, p.Col}
		if seen[cell] {
			f.Clear()
			return fmt.Errorf("placement %d (%d,%d): %w", i, p.Row, p.Col, ErrDuplicateCell)
		}
		seen[cell] = true

		f.add(p)
	}
	return nil
}

func (f *Field) add(p Placement) {
	beh := BehaviorOf(p.Type)
	health := p.Health
	if health <= 0 {
		health = beh.Health
	}
	points := p.Points
	if points <= 0 {
		points = beh.Points
	}

	pos := LayoutPosition(p.Row, p.Col, f.world.Bounds().W)
	b := &Brick{
		Type:   p.Type,
		Row:    p.Row,
		Col:    p.Col,
		Points: points,
		State: State{
			Health:    health,
			MaxHealth: health,
			TimeScale: 1,
		},
		origin: pos,
		pos:    pos,
		color:  ColorForHealth(p.Type, health),
	}
	b.body = f.world.AddStatic(pos, parameter.BrickWidth, parameter.BrickHeight, physics.TagBrick, b)
	f.bricks = append(f.bricks, b)
	f.alive++
}

// Hit applies damage to b; a destroyed brick leaves the physics world at once
func (f *Field) Hit(b *Brick, damage int) HitResult {
	if b == nil || b.Destroyed {
		return HitResult{Brick: b}
	}

	b.hit(damage)
	if b.Destroyed {
		f.world.Remove(b.body)
		f.alive--
	}
	return HitResult{Brick: b, Destroyed: b.Destroyed, Applied: true}
}

// Update advances moving bricks and keeps their bodies in place
func (f *Field) Update(dt time.Duration) {
	for _, b := range f.bricks {
		if b.advance(dt) {
			b.body.SetPosition(b.pos)
		}
	}
}

// Bricks returns every brick loaded, destroyed ones included
func (f *Field) Bricks() []*Brick {
	return f.bricks
}

// Remaining returns the number of bricks not yet destroyed
func (f *Field) Remaining() int { return f.alive }

// Total returns the number of bricks loaded
func (f *Field) Total() int { return len(f.bricks) }

// DestroyedCount returns how many bricks have been destroyed
func (f *Field) DestroyedCount() int { return len(f.bricks) - f.alive }

// Cleared reports whether a loaded field has no bricks left
func (f *Field) Cleared() bool { return len(f.bricks) > 0 && f.alive == 0 }

// Clear removes every brick and its body
func (f *Field) Clear() {
	for _, b := range f.bricks {
		f.world.Remove(b.body)
	}
	f.bricks = nil
	f.alive = 0
}
