package score

import (
	"math"
	"time"

	"github.com/lixenwraith/brick-breaker/parameter"
)

// Award is the outcome of one scoring hit
type Award struct {
	Base       int
	Awarded    int
	Combo      int
	Multiplier float64
}

// Hit is a scoring event at a game-clock timestamp
type Hit struct {
	Points int
	At     time.Duration
}

// Tracker accumulates score with a time-windowed combo multiplier
// Its only state besides totals is the combo count and last hit time, so a hit sequence always replays identically
type Tracker struct {
	total    int
	combo    int
	maxCombo int
	lastHit  time.Duration
	hasHit   bool
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Multiplier returns the score multiplier for a combo count, capped at ComboMaxMultiplier
func Multiplier(combo int) float64 {
	if combo < 1 {
		return 1
	}
	return math.Min(1+float64(combo-1)*parameter.ComboStep, parameter.ComboMaxMultiplier)
}

// Register scores a destroyed brick worth points at game time now
func (t *Tracker) Register(points int, now time.Duration) Award {
	if t.hasHit && now-t.lastHit < parameter.ComboWindow {
		t.combo++
	} else {
		t.combo = 1
	}
	t.lastHit = now
	t.hasHit = true
	t.maxCombo = max(t.maxCombo, t.combo)

	mult := Multiplier(t.combo)
	awarded := int(math.Floor(float64(points) * mult))
	if awarded < 0 {
		awarded = 0
	}
	t.total += awarded

	return Award{
		Base:       points,
		Awarded:    awarded,
		Combo:      t.combo,
		Multiplier: mult,
	}
}

// Total returns the accumulated score
func (t *Tracker) Total() int { return t.total }

// Combo returns the current combo count, 0 before the first hit
func (t *Tracker) Combo() int { return t.combo }

// MaxCombo returns the longest combo reached
func (t *Tracker) MaxCombo() int { return t.maxCombo }

// Reset clears score and combo for a new level
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Replay recomputes a tracker from a hit sequence
func Replay(hits []Hit) *Tracker {
	t := NewTracker()
	for _, h := range hits {
		t.Register(h.Points, h.At)
	}
	return t
}
