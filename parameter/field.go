package parameter

// Play field, in logical pixels
const (
	GameWidth  = 375.0
	GameHeight = 667.0
)
