package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved for per-tick FSM transitions and never pushed to the queue
	EventTick EventType = iota

	// === Input / Command Event ===

	// EventLaunchRequest asks to release the ball(s) resting on the paddle
	// Trigger: Host input (tap, space)
	// Consumer: Game FSM | Payload: nil
	EventLaunchRequest

	// EventPauseRequest suspends the simulation
	// Trigger: Host input
	// Consumer: Game FSM | Payload: nil
	EventPauseRequest

	// EventResumeRequest resumes a paused simulation
	// Trigger: Host input
	// Consumer: Game FSM | Payload: nil
	EventResumeRequest

	// EventContinueRequest grants one more life after game over
	// Trigger: Host, once an external reward has been earned
	// Consumer: Game FSM | Payload: nil
	EventContinueRequest

	// === Collision Event ===

	// EventBrickHit signals a brick took damage but survived
	// Trigger: Post-step hit queue
	// Consumer: Audio, host | Payload: *BrickPayload
	EventBrickHit

	// EventBrickDestroyed signals a brick reached zero health
	// Trigger: Post-step hit queue
	// Consumer: Audio, host | Payload: *BrickPayload
	EventBrickDestroyed

	// EventPaddleBounce signals a ball rebounded off the paddle
	// Trigger: Collision pass
	// Consumer: Audio | Payload: *BallPayload
	EventPaddleBounce

	// EventWallBounce signals a ball rebounded off a field wall
	// Trigger: Collision pass
	// Consumer: Audio | Payload: *BallPayload
	EventWallBounce

	// EventBallAttached signals a ball stuck to a sticky paddle
	// Trigger: Collision pass
	// Consumer: Host | Payload: *BallPayload
	EventBallAttached

	// === Ball Event ===

	// EventBallLaunched signals a ball left the paddle
	// Trigger: Launch
	// Consumer: Audio | Payload: *BallPayload
	EventBallLaunched

	// EventBallLost signals a ball fell below the field
	// Trigger: Out-of-bounds check
	// Consumer: Host | Payload: *BallPayload
	EventBallLost

	// EventBallRecovered signals the physics adapter reset a stalled or non-finite ball
	// Trigger: Ball adapter
	// Consumer: Logging, status | Payload: *BallPayload
	EventBallRecovered

	// EventBallsDepleted signals the last ball in play is gone
	// Trigger: Out-of-bounds check
	// Consumer: Game FSM, host | Payload: nil
	EventBallsDepleted

	// === Power-up Event ===

	// EventPowerUpSpawned signals a pickup started falling
	// Trigger: Brick destroyed
	// Consumer: Host | Payload: *PowerUpPayload
	EventPowerUpSpawned

	// EventPowerUpCollected signals the paddle caught a pickup and its effect started
	// Trigger: Power-up engine
	// Consumer: Audio, host | Payload: *PowerUpPayload
	EventPowerUpCollected

	// EventPowerUpExpired signals a timed effect ended or was displaced
	// Trigger: Scheduler timer, conflicting activation
	// Consumer: Host | Payload: *PowerUpPayload
	EventPowerUpExpired

	// === Session Event ===

	// EventScoreChanged signals points were awarded
	// Trigger: Brick destroyed
	// Consumer: Host | Payload: *ScorePayload
	EventScoreChanged

	// EventLifeAdded signals an extra life was granted
	// Trigger: ExtraLife power-up, continue
	// Consumer: Audio, host | Payload: *LivesPayload
	EventLifeAdded

	// EventLifeLost signals a life was consumed
	// Trigger: Balls depleted
	// Consumer: Audio, host | Payload: *LivesPayload
	EventLifeLost

	// EventAllBricksDestroyed signals the field is clear
	// Trigger: Post-step hit queue
	// Consumer: Game FSM, host | Payload: nil
	EventAllBricksDestroyed

	// EventLevelWin signals the level was completed
	// Trigger: FSM enter LevelComplete
	// Consumer: Host, progression | Payload: *LevelResultPayload
	EventLevelWin

	// EventLevelLose signals the session ran out of lives
	// Trigger: FSM enter GameOver
	// Consumer: Host | Payload: *LevelResultPayload
	EventLevelLose

	// EventStateChanged signals a game state transition
	// Trigger: FSM enter actions
	// Consumer: Host | Payload: *StatePayload
	EventStateChanged
)

// GameEvent is a typed notification stamped with the tick it was produced on
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
