package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the fixed simulation step (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single Tick so a stalled host cannot tunnel balls through bricks
	MaxTickDelta = 50 * time.Millisecond

	// MaxCatchUpSteps bounds the fixed steps a host runs after a stall
	MaxCatchUpSteps = 4

	// PhysicsMaxSubsteps bounds the number of sub-steps per physics Step
	PhysicsMaxSubsteps = 8

	// PhysicsCellSize is the spatial hash cell edge in pixels
	PhysicsCellSize = 32

	// PhysicsMargin extends the collision space beyond the play field on every side
	PhysicsMargin = 64

	// WallThickness is the depth of the invisible left, right and top walls
	WallThickness = 32
)

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
