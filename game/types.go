package game

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/brick-breaker/level"
	"github.com/lixenwraith/brick-breaker/progression"
	"github.com/lixenwraith/brick-breaker/status"
)

var ErrUnknownLevel = errors.New("unknown level")

// State names a node of the session state graph
type State string

const (
	StateIdle          State = "Idle"
	StatePlaying       State = "Playing"
	StatePaused        State = "Paused"
	StateLevelComplete State = "LevelComplete"
	StateGameOver      State = "GameOver"
)

// Rand is the session's random source for launch angles and drops
type Rand interface {
	Float64() float64
}

// Options wires a Game to its collaborators; every field is optional
type Options struct {
	Catalog *level.Catalog
	// Progress records results when a level is won
	Progress *progression.Service
	Rand     Rand
	Log      logrus.FieldLogger
	Status   *status.Registry

	// UseLevelDropChance makes each level's own drop chance override the default
	UseLevelDropChance bool
	// Sensitivity is the paddle smoothing setting, 1-10
	Sensitivity int
}

// Session is a snapshot of the running level
type Session struct {
	ID           string
	LevelID      int
	LevelName    string
	State        State
	Score        int
	Lives        int
	Combo        int
	PowerUpsUsed int
	Elapsed      time.Duration
}
