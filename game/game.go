package game

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/brick-breaker/ball"
	"github.com/lixenwraith/brick-breaker/brick"
	"github.com/lixenwraith/brick-breaker/engine"
	"github.com/lixenwraith/brick-breaker/engine/fsm"
	"github.com/lixenwraith/brick-breaker/event"
	"github.com/lixenwraith/brick-breaker/level"
	"github.com/lixenwraith/brick-breaker/logger"
	"github.com/lixenwraith/brick-breaker/paddle"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/physics"
	"github.com/lixenwraith/brick-breaker/powerup"
	"github.com/lixenwraith/brick-breaker/progression"
	"github.com/lixenwraith/brick-breaker/score"
	"github.com/lixenwraith/brick-breaker/status"
	"github.com/lixenwraith/brick-breaker/vmath"
)

// Game runs one level session at a time: it owns the world, bricks, paddle, balls and power-ups,
// advances them once per Tick and drives the session state graph
// Not safe for concurrent use; the host calls it from its frame loop
type Game struct {
	catalog  *level.Catalog
	progress *progression.Service
	rng      Rand
	baseLog  logrus.FieldLogger
	log      logrus.FieldLogger
	reg      *status.Registry
	opts     Options

	fsm    *fsm.Machine[*Game]
	events *event.EventQueue

	// Per-level, rebuilt by LoadLevel
	level    level.Config
	session  string
	clock    *engine.TickClock
	sched    *engine.Scheduler
	world    *physics.World
	field    *brick.Field
	paddle   *paddle.Controller
	adapter  *ball.Adapter
	powerups *powerup.Engine
	score    *score.Tracker
	balls    []*ball.Ball
	hits     []hitIntent
	lives    int
	loaded   bool

	statTicks    *atomic.Int64
	statContacts *atomic.Int64
	statHits     *atomic.Int64
}

var _ powerup.Target = (*Game)(nil)

// New creates a game with no level loaded
func New(opts Options) (*Game, error) {
	if opts.Catalog == nil {
		opts.Catalog = level.Builtin()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if opts.Sensitivity == 0 {
		opts.Sensitivity = parameter.SensitivityDefault
	}

	m, err := newMachine()
	if err != nil {
		return nil, err
	}

	log := logger.OrDiscard(opts.Log)
	return &Game{
		catalog:      opts.Catalog,
		progress:     opts.Progress,
		rng:          opts.Rand,
		baseLog:      log,
		log:          log,
		reg:          opts.Status,
		opts:         opts,
		fsm:          m,
		events:       event.NewEventQueue(),
		statTicks:    opts.Status.Counter(status.MetricTicks),
		statContacts: opts.Status.Counter(status.MetricContacts),
		statHits:     opts.Status.Counter(status.MetricBricksHit),
	}, nil
}

// LoadLevel starts a fresh session on level id
// An unknown id returns ErrUnknownLevel and leaves the current session untouched
func (g *Game) LoadLevel(id int) error {
	cfg, ok := g.catalog.Level(id)
	if !ok {
		return fmt.Errorf("level %d: %w", id, ErrUnknownLevel)
	}

	world := physics.NewWorld(parameter.GameWidth, parameter.GameHeight)
	world.AddWalls()
	field := brick.NewField(world)
	if err := field.Load(cfg.Bricks); err != nil {
		return fmt.Errorf("level %d: %w", id, err)
	}

	g.level = cfg
	g.session = uuid.NewString()
	g.log = g.baseLog.WithFields(logrus.Fields{"session": g.session, "level": cfg.ID})

	g.clock = engine.NewTickClock()
	g.sched = engine.NewScheduler(g.clock)
	g.world = world
	g.field = field
	g.paddle = paddle.New(world, cfg.PaddleWidth)
	g.paddle.SetSensitivity(g.opts.Sensitivity)
	g.adapter = ball.NewAdapter(g.rng, vmath.Vec2{X: parameter.GameWidth / 2, Y: parameter.GameHeight / 2}, g.log, g.reg)
	g.score = score.NewTracker()
	g.balls = nil
	g.hits = g.hits[:0]
	g.lives = parameter.InitialLives

	drop := parameter.PowerUpDropChance
	if g.opts.UseLevelDropChance {
		drop = cfg.DropChance
	}
	g.powerups = powerup.NewEngine(powerup.Config{DropChance: drop, FieldHeight: parameter.GameHeight},
		g.rng, g.sched, g, g.push, g.log, g.reg)

	g.loaded = true
	if err := g.fsm.Init(g); err != nil {
		g.loaded = false
		return fmt.Errorf("level %d: %w", id, err)
	}

	g.log.WithFields(logrus.Fields{
		"name":   cfg.Name,
		"bricks": field.Total(),
		"speed":  cfg.BallSpeed,
		"drop":   drop,
	}).Info("level loaded")
	return nil
}

// push queues an event stamped with the current frame
func (g *Game) push(et event.EventType, payload any) {
	var frame int64
	if g.clock != nil {
		frame = g.clock.Frame()
	}
	g.events.Push(event.GameEvent{Type: et, Payload: payload, Frame: frame})
}

// Launch releases resting balls: from Idle it starts play, while playing it frees balls held by a sticky paddle
func (g *Game) Launch() bool {
	if !g.loaded {
		return false
	}
	switch g.State() {
	case StateIdle:
		return g.handle(event.EventLaunchRequest)
	case StatePlaying:
		if len(g.paddle.Attached()) == 0 {
			return false
		}
		g.releaseBalls()
		return true
	}
	return false
}

// Pause suspends play; only a playing session can pause
func (g *Game) Pause() bool {
	return g.loaded && g.handle(event.EventPauseRequest)
}

// Resume continues a paused session
func (g *Game) Resume() bool {
	return g.loaded && g.handle(event.EventResumeRequest)
}

// Continue revives a lost session with one life, back to serving
func (g *Game) Continue() bool {
	return g.loaded && g.handle(event.EventContinueRequest)
}

// SetPaddleTarget steers the paddle toward x
func (g *Game) SetPaddleTarget(x float64) {
	if g.loaded {
		g.paddle.SetTarget(x)
	}
}

// NudgePaddle moves the paddle target by dx
func (g *Game) NudgePaddle(dx float64) {
	if g.loaded {
		g.paddle.Nudge(dx)
	}
}

// SetSensitivity changes paddle smoothing for this and later levels
func (g *Game) SetSensitivity(s int) {
	g.opts.Sensitivity = s
	if g.loaded {
		g.paddle.SetSensitivity(s)
	}
}

// serveBall puts a fresh ball on the paddle when none is in play
func (g *Game) serveBall() {
	if len(g.balls) > 0 {
		return
	}
	b := ball.New(g.world, g.paddle.Position(), g.level.BallSpeed)
	g.balls = append(g.balls, b)
	g.paddle.Attach(b)
}

// releaseBalls launches every ball resting on the paddle
func (g *Game) releaseBalls() {
	for _, b := range g.paddle.Release() {
		if b.Launch(g.rng) {
			p := b.Position()
			g.push(event.EventBallLaunched, &event.BallPayload{BallID: b.ID(), X: p.X, Y: p.Y})
		}
	}
}

// Balls returns the balls in play
func (g *Game) Balls() []*ball.Ball { return g.balls }

// Paddle returns the paddle controller
func (g *Game) Paddle() *paddle.Controller { return g.paddle }

// SpawnBall adds a launched ball at from's position heading deg degrees
// It inherits from's base and current target speed
func (g *Game) SpawnBall(from *ball.Ball, deg float64) *ball.Ball {
	b := ball.New(g.world, from.Position(), from.BaseSpeed)
	b.SetSpeed(from.TargetSpeed)
	b.LaunchAt(deg)
	g.balls = append(g.balls, b)

	p := b.Position()
	g.push(event.EventBallLaunched, &event.BallPayload{BallID: b.ID(), X: p.X, Y: p.Y, Reason: "multi_ball"})
	return b
}

// AddLife grants a life up to MaxLives
func (g *Game) AddLife() bool {
	if g.lives >= parameter.MaxLives {
		return false
	}
	g.lives++
	g.push(event.EventLifeAdded, &event.LivesPayload{Lives: g.lives})
	return true
}

// State returns the session state, empty before the first level loads
func (g *Game) State() State {
	return State(g.fsm.CurrentName())
}

// Events returns the queue the host drains each frame
func (g *Game) Events() *event.EventQueue { return g.events }

// Level returns the loaded level definition
func (g *Game) Level() level.Config { return g.level }

// Field returns the brick field
func (g *Game) Field() *brick.Field { return g.field }

// Pickups returns falling power-up capsules
func (g *Game) Pickups() []*powerup.Pickup {
	if !g.loaded {
		return nil
	}
	return g.powerups.Pickups()
}

// ActivePowerUps returns running timed effects
func (g *Game) ActivePowerUps() []powerup.Type {
	if !g.loaded {
		return nil
	}
	return g.powerups.Active()
}

// Lives returns the remaining lives
func (g *Game) Lives() int { return g.lives }

// Score returns the session score
func (g *Game) Score() int {
	if !g.loaded {
		return 0
	}
	return g.score.Total()
}

// Stats returns the end-of-level summary as of now
func (g *Game) Stats() progression.Stats {
	if !g.loaded {
		return progression.Stats{}
	}
	return progression.Stats{
		BricksDestroyed: g.field.DestroyedCount(),
		TotalBricks:     g.field.Total(),
		LivesRemaining:  g.lives,
		PowerUpsUsed:    g.powerups.UsedCount(),
		Elapsed:         g.clock.Now(),
		MaxCombo:        g.score.MaxCombo(),
	}
}

// Session returns a snapshot of the running level
func (g *Game) Session() Session {
	if !g.loaded {
		return Session{}
	}
	return Session{
		ID:           g.session,
		LevelID:      g.level.ID,
		LevelName:    g.level.Name,
		State:        g.State(),
		Score:        g.score.Total(),
		Lives:        g.lives,
		Combo:        g.score.Combo(),
		PowerUpsUsed: g.powerups.UsedCount(),
		Elapsed:      g.clock.Now(),
	}
}
