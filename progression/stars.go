package progression

import (
	"time"

	"github.com/lixenwraith/brick-breaker/parameter"
)

// Stats is the end-of-level summary stars are rated on
type Stats struct {
	BricksDestroyed int
	TotalBricks     int
	LivesRemaining  int
	PowerUpsUsed    int
	Elapsed         time.Duration
	MaxCombo        int
}

// BrickPercent returns destroyed bricks as a percentage, 0 for an empty level
func (s Stats) BrickPercent() float64 {
	if s.TotalBricks <= 0 {
		return 0
	}
	return float64(s.BricksDestroyed) / float64(s.TotalBricks) * 100
}

// CalculateStars rates a level; the first matching tier wins
func CalculateStars(s Stats) int {
	pct := s.BrickPercent()
	switch {
	case pct >= parameter.ThreeStarBricksPercent &&
		s.LivesRemaining >= parameter.ThreeStarLivesMin &&
		s.PowerUpsUsed >= parameter.ThreeStarPowerUpsMin:
		return 3
	case pct >= parameter.TwoStarBricksPercent && s.LivesRemaining >= parameter.TwoStarLivesMin:
		return 2
	case s.BricksDestroyed > 0:
		return 1
	}
	return 0
}
