package ball

import (
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/physics"
	"github.com/lixenwraith/brick-breaker/vmath"
)

// Rand is the random source used for launch directions
type Rand interface {
	Float64() float64
}

// Ball is a launched or resting ball backed by a dynamic physics body
// Position and velocity live in the body; the ball owns speed bookkeeping
type Ball struct {
	Body   *physics.Body
	Radius float64

	// BaseSpeed is the level speed that expiring speed effects restore
	BaseSpeed float64
	// TargetSpeed is the magnitude velocity is held at while launched
	TargetSpeed float64

	Launched bool
	Stuck    bool
}

// New creates a resting ball at pos in world
func New(world *physics.World, pos vmath.Vec2, baseSpeed float64) *Ball {
	r := parameter.BallRadius
	b := &Ball{
		Radius: r,
	}
	b.Body = world.AddDynamic(pos, 2*r, 2*r, physics.TagBall, b)
	b.BaseSpeed = clampSpeed(baseSpeed)
	b.TargetSpeed = b.BaseSpeed
	return b
}

func clampSpeed(s float64) float64 {
	return vmath.ClampF(s, parameter.BallMinSpeed, parameter.BallMaxSpeed)
}

func (b *Ball) ID() uint64               { return b.Body.ID() }
func (b *Ball) Position() vmath.Vec2     { return b.Body.Position() }
func (b *Ball) Velocity() vmath.Vec2     { return b.Body.Velocity() }
func (b *Ball) SetPosition(p vmath.Vec2) { b.Body.SetPosition(p) }
func (b *Ball) SetVelocity(v vmath.Vec2) { b.Body.SetVelocity(v) }

// Speed returns the actual velocity magnitude
func (b *Ball) Speed() float64 {
	return vmath.V2Mag(b.Velocity())
}

// SetSpeed clamps s into the legal range and makes it the target speed
// A launched ball keeps its direction at the new magnitude
func (b *Ball) SetSpeed(s float64) {
	b.TargetSpeed = clampSpeed(s)
	if !b.Launched {
		return
	}
	if v := b.Velocity(); vmath.V2MagSq(v) > 0 {
		b.SetVelocity(vmath.V2WithMag(v, b.TargetSpeed))
	}
}

// IncreaseSpeed raises the target speed by d, subject to the same clamp
func (b *Ball) IncreaseSpeed(d float64) {
	b.SetSpeed(b.TargetSpeed + d)
}

// ResetSpeed restores the base speed
func (b *Ball) ResetSpeed() {
	b.SetSpeed(b.BaseSpeed)
}

// LaunchAt sends a resting ball off at deg degrees (-90 is straight up)
// Returns false if the ball is already launched
func (b *Ball) LaunchAt(deg float64) bool {
	if b.Launched {
		return false
	}
	b.Launched = true
	b.Stuck = false
	b.SetVelocity(vmath.V2FromAngle(deg, b.TargetSpeed))
	return true
}

// Launch sends a resting ball off in a random direction inside the upward launch cone
func (b *Ball) Launch(rng Rand) bool {
	return b.LaunchAt(RandomLaunchAngle(rng))
}

// RandomLaunchAngle returns a uniform angle in the upward launch cone
func RandomLaunchAngle(rng Rand) float64 {
	return parameter.BallLaunchMinDeg + rng.Float64()*(parameter.BallLaunchMaxDeg-parameter.BallLaunchMinDeg)
}

// Stop zeroes velocity and marks the ball as resting
func (b *Ball) Stop() {
	b.Launched = false
	b.SetVelocity(vmath.Vec2{})
}

// AttachTo parks the ball at p as stuck to the paddle
func (b *Ball) AttachTo(p vmath.Vec2) {
	b.Stop()
	b.Stuck = true
	b.SetPosition(p)
}

// IsOutOfBounds reports whether the ball fell clear of a field of the given height
func (b *Ball) IsOutOfBounds(fieldHeight float64) bool {
	return b.Position().Y > fieldHeight+2*b.Radius
}
