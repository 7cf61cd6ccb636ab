package event

// BrickPayload describes a brick at the moment it was hit
type BrickPayload struct {
	Row, Col  int
	Kind      string
	X, Y      float64
	Health    int
	MaxHealth int
	Points    int
}

// BallPayload identifies a ball and where it was
type BallPayload struct {
	BallID uint64
	X, Y   float64
	Reason string
}

// PowerUpPayload identifies a power-up type and where its pickup was
type PowerUpPayload struct {
	Kind string
	X, Y float64
}

// ScorePayload carries one score award
type ScorePayload struct {
	Base       int
	Awarded    int
	Combo      int
	Multiplier float64
	Total      int
}

// LivesPayload carries the life count after the change
type LivesPayload struct {
	Lives int
}

// LevelResultPayload summarizes a finished level
type LevelResultPayload struct {
	LevelID         int
	Score           int
	Stars           int
	BricksDestroyed int
	TotalBricks     int
	LivesRemaining  int
	PowerUpsUsed    int
	MaxCombo        int
}

// StatePayload carries a state transition by name
type StatePayload struct {
	From, To string
}
