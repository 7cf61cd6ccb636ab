package parameter

// Ball
const (
	// BallRadius is the collision radius in pixels
	BallRadius = 8.0

	// BallBaseSpeed is the fallback speed in px/s when a level does not set one
	BallBaseSpeed = 200.0

	// BallMinSpeed and BallMaxSpeed bound every target speed
	BallMinSpeed = 120.0
	BallMaxSpeed = 900.0

	// BallSpeedIncrement is added to the target speed on every brick hit
	BallSpeedIncrement = 4.0

	// BallSpeedTolerance is the allowed drift between actual and target speed before rescaling
	BallSpeedTolerance = 0.5

	// BallStallSpeed is the actual speed under which a launched ball is relaunched
	BallStallSpeed = 1.0

	// BallMinAngleDeg is the closest a trajectory may get to horizontal
	BallMinAngleDeg = 10.0

	// BallSnapAngleDeg is the angle a too-flat trajectory is snapped to
	BallSnapAngleDeg = 15.0

	// BallLaunchMinDeg and BallLaunchMaxDeg bound the random launch direction (upward cone)
	BallLaunchMinDeg = -120.0
	BallLaunchMaxDeg = -60.0

	// BallAttachOffsetY is how far above the paddle center an attached ball rests
	BallAttachOffsetY = 20.0

	// BallAttachSpacing is the horizontal gap between several balls stuck to the paddle
	BallAttachSpacing = 20.0

	// BallUpwardNormalY marks a contact normal as "surface below the ball"
	BallUpwardNormalY = -0.5
)
