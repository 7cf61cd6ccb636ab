package parameter

import "time"

// Power-ups
const (
	// PowerUpDropChance is the probability a destroyed brick drops a pickup
	PowerUpDropChance = 0.10

	// PowerUpFallSpeed is the pickup fall rate in px/s
	PowerUpFallSpeed = 100.0

	// PowerUpSize is the pickup's square collection box edge
	PowerUpSize = 30.0

	// PowerUpDespawnMargin is how far below the field a pickup falls before removal
	PowerUpDespawnMargin = 50.0

	// PowerUpDuration is the lifetime of timed effects
	PowerUpDuration = 10 * time.Second

	PowerUpExtendMultiplier = 1.3
	PowerUpSlowMultiplier   = 0.6
	PowerUpFastMultiplier   = 1.4

	// PowerUpMultiBallSpreadDeg is the angular offset of each extra ball from the source ball
	PowerUpMultiBallSpreadDeg = 30.0
)

// Power-up selection weights, in type order
const (
	WeightMultiBall    = 0.15
	WeightExtendPaddle = 0.25
	WeightSlowBall     = 0.20
	WeightFastBall     = 0.10
	WeightStickyPaddle = 0.15
	WeightExtraLife    = 0.15
)
