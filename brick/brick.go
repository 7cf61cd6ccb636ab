package brick

import (
	"math"
	"time"

	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/physics"
	"github.com/lixenwraith/brick-breaker/vmath"
)

// Brick is one destructible cell of the field
type Brick struct {
	Type     Type
	Row, Col int
	Points   int
	State

	origin vmath.Vec2
	pos    vmath.Vec2
	phase  float64 // oscillation cycles completed, moving bricks only
	color  uint32
	body   *physics.Body
}

func (b *Brick) Position() vmath.Vec2 { return b.pos }
func (b *Brick) Body() *physics.Body  { return b.body }

// Bounds returns the brick's box
func (b *Brick) Bounds() vmath.Rect {
	return vmath.RectCentered(b.pos, parameter.BrickWidth, parameter.BrickHeight)
}

// Color returns the display color; damaged bricks darken toward their remaining health share
func (b *Brick) Color() uint32 {
	if b.Health >= b.MaxHealth || b.MaxHealth == 0 {
		return b.color
	}
	pct := float64(b.Health) / float64(b.MaxHealth)
	return Darken(b.color, 1-pct*parameter.BrickDamageDarken)
}

// hit applies damage through the type's behavior table
func (b *Brick) hit(damage int) {
	b.State = BehaviorOf(b.Type).OnHit(b.State, damage)
}

// advance moves an oscillating brick along its eased horizontal path
func (b *Brick) advance(dt time.Duration) bool {
	if b.Type != Moving || b.Destroyed {
		return false
	}
	b.phase += dt.Seconds() / parameter.MovingBrickPeriod.Seconds() * b.TimeScale
	b.phase -= math.Floor(b.phase)

	// Sine ease out to origin+range/2 and back over one period
	eased := (1 - math.Cos(2*math.Pi*b.phase)) / 2
	b.pos.X = b.origin.X + eased*parameter.MovingBrickRange/2
	return true
}

// LayoutPosition returns the center of grid cell (row, col) in a field of the given width
func LayoutPosition(row, col int, fieldWidth float64) vmath.Vec2 {
	stride := parameter.BrickWidth + parameter.BrickPadding
	gridWidth := parameter.BrickColumns*stride - parameter.BrickPadding
	startX := (fieldWidth - gridWidth) / 2
	return vmath.Vec2{
		X: startX + float64(col)*stride + parameter.BrickWidth/2,
		Y: parameter.BrickOffsetTop + float64(row)*(parameter.BrickHeight+parameter.BrickPadding) + parameter.BrickHeight/2,
	}
}
