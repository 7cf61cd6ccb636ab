package powerup

import (
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/vmath"
)

// Pickup is a falling power-up capsule
type Pickup struct {
	Type   Type
	Pos    vmath.Vec2
	Active bool
}

// Bounds returns the collection box
func (p *Pickup) Bounds() vmath.Rect {
	return vmath.RectCentered(p.Pos, parameter.PowerUpSize, parameter.PowerUpSize)
}
