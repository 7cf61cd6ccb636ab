package parameter

import "time"

// Brick grid layout
const (
	BrickWidth     = 40.0
	BrickHeight    = 20.0
	BrickPadding   = 5.0
	BrickOffsetTop = 100.0
	BrickColumns   = 8
	BrickMaxRows   = 8
)

// Brick points per type
const (
	PointsStandard = 10
	PointsStrong   = 20
	PointsMetal    = 50
	PointsMoving   = 30
)

// Brick health per type
const (
	HealthStandard = 1
	HealthStrong   = 2
	HealthMetal    = 3
	HealthMoving   = 1
)

// Moving brick oscillation
const (
	// MovingBrickRange is the full horizontal travel; the brick sweeps half of it from its origin
	MovingBrickRange = 80.0

	// MovingBrickPeriod is one full out-and-back cycle at time scale 1
	MovingBrickPeriod = 2000 * time.Millisecond

	// MovingBrickHitTimeScale multiplies oscillation speed after each hit
	MovingBrickHitTimeScale = 1.2
)

// BrickDamageDarken is the maximum brightness loss of a fully damaged brick
const BrickDamageDarken = 0.3
