package parameter

import "time"

// Lives
const (
	InitialLives = 3
	MaxLives     = 5
)

// Combo
const (
	// ComboWindow is the longest gap between destroyed bricks that keeps a combo alive
	ComboWindow = 2000 * time.Millisecond

	// ComboStep is the multiplier gained per combo level beyond the first
	ComboStep = 0.1

	// ComboMaxMultiplier caps the score multiplier
	ComboMaxMultiplier = 2.0
)

// Star rating tiers
const (
	ThreeStarBricksPercent = 100.0
	ThreeStarLivesMin      = 3
	ThreeStarPowerUpsMin   = 2

	TwoStarBricksPercent = 80.0
	TwoStarLivesMin      = 2
)

// WorldUnlockStars is the cumulative star total needed per world, indexed by world id - 1
var WorldUnlockStars = [...]int{0, 10, 25, 40}

// Persistence
const (
	// StorageVersion tags the save format; mismatching files are discarded
	StorageVersion = "1.0.0"

	// StorageFileName is the save file inside the storage directory
	StorageFileName = "progress.msgpack"
)
