package parameter

// Paddle
const (
	PaddleWidth   = 100.0
	PaddleHeight  = 22.0
	PaddleYOffset = 150.0

	// PaddleMaxExtend caps the width multiplier relative to the level's default width
	PaddleMaxExtend = 1.3

	// PaddleSmoothingPerSensitivity is the fraction of the remaining gap closed per tick per sensitivity step
	PaddleSmoothingPerSensitivity = 0.03

	// PaddleSnapDistance snaps the paddle onto its target once within this many pixels
	PaddleSnapDistance = 1.0

	// PaddleKeyStep is the target shift per keyboard nudge
	PaddleKeyStep = 24.0
)

// Input sensitivity setting bounds
const (
	SensitivityMin     = 1
	SensitivityMax     = 10
	SensitivityDefault = 5
)
