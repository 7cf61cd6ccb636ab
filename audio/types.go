package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddle     SoundType = iota // Ball rebounds off the paddle
	SoundWall                        // Ball rebounds off a wall
	SoundBrickHit                    // Brick damaged but standing
	SoundBrickBreak                  // Brick destroyed
	SoundLaunch                      // Ball leaves the paddle
	SoundPowerUp                     // Pickup collected
	SoundLifeUp                      // Extra life granted
	SoundLifeLost                    // Life consumed
	SoundLevelWin                    // Field cleared
	SoundLevelLose                   // Out of lives
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	"paddle", "wall", "brick_hit", "brick_break", "launch",
	"powerup", "life_up", "life_lost", "level_win", "level_lose",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
