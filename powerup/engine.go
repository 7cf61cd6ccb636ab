package powerup

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/brick-breaker/ball"
	"github.com/lixenwraith/brick-breaker/engine"
	"github.com/lixenwraith/brick-breaker/event"
	"github.com/lixenwraith/brick-breaker/logger"
	"github.com/lixenwraith/brick-breaker/paddle"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/status"
	"github.com/lixenwraith/brick-breaker/vmath"
)

// Target is the game state power-up effects act on
type Target interface {
	Balls() []*ball.Ball
	// SpawnBall adds a launched ball at from's position heading deg degrees
	SpawnBall(from *ball.Ball, deg float64) *ball.Ball
	Paddle() *paddle.Controller
	// AddLife grants a life, returning false at the cap
	AddLife() bool
}

// Emitter receives power-up notifications
type Emitter func(et event.EventType, payload any)

// Config holds the engine's tunables; zero fields take package defaults
type Config struct {
	DropChance  float64
	Duration    time.Duration
	FieldHeight float64
}

// Engine spawns falling pickups, collects them against the paddle and runs their effects
// Timed effects expire through the scheduler, so they pause with the game clock
type Engine struct {
	rng    Rand
	sched  *engine.Scheduler
	target Target
	emit   Emitter
	log    logrus.FieldLogger
	cfg    Config

	pickups []*Pickup
	active  map[Type]engine.TimerID
	used    int

	statDrops  *atomic.Int64
	statActive *atomic.Int64
}

// NewEngine creates an engine; emit, log and reg may be nil
func NewEngine(cfg Config, rng Rand, sched *engine.Scheduler, target Target, emit Emitter, log logrus.FieldLogger, reg *status.Registry) *Engine {
	if cfg.DropChance <= 0 {
		cfg.DropChance = parameter.PowerUpDropChance
	}
	if cfg.Duration <= 0 {
		cfg.Duration = parameter.PowerUpDuration
	}
	if cfg.FieldHeight <= 0 {
		cfg.FieldHeight = parameter.GameHeight
	}
	if emit == nil {
		emit = func(event.EventType, any) {}
	}

	return &Engine{
		rng:        rng,
		sched:      sched,
		target:     target,
		emit:       emit,
		log:        logger.OrDiscard(log),
		cfg:        cfg,
		active:     make(map[Type]engine.TimerID),
		statDrops:  reg.Counter(status.MetricPowerUpDrops),
		statActive: reg.Counter(status.MetricPowerUpActive),
	}
}

// SetDropChance overrides the per-brick drop probability
func (e *Engine) SetDropChance(p float64) {
	e.cfg.DropChance = vmath.ClampF(p, 0, 1)
}

// Spawn rolls for a drop at pos and, on success, starts a pickup falling
func (e *Engine) Spawn(pos vmath.Vec2) (*Pickup, bool) {
	if !Roll(e.rng, e.cfg.DropChance) {
		return nil, false
	}
	return e.SpawnType(Pick(e.rng), pos), true
}

// SpawnType starts a pickup of type t falling from pos
func (e *Engine) SpawnType(t Type, pos vmath.Vec2) *Pickup {
	p := &Pickup{Type: t, Pos: pos, Active: true}
	e.pickups = append(e.pickups, p)
	e.statDrops.Add(1)
	e.emit(event.EventPowerUpSpawned, &event.PowerUpPayload{Kind: t.String(), X: pos.X, Y: pos.Y})
	return p
}

// Update moves pickups down by dt and activates the ones overlapping paddle
// Returns the types collected this call, in pickup order
func (e *Engine) Update(dt time.Duration, paddle vmath.Rect) []Type {
	if len(e.pickups) == 0 {
		return nil
	}

	var collected []Type
	fall := parameter.PowerUpFallSpeed * dt.Seconds()
	limit := e.cfg.FieldHeight + parameter.PowerUpDespawnMargin

	kept := e.pickups[:0]
	for _, p := range e.pickups {
		if !p.Active {
			continue
		}
		p.Pos.Y += fall

		switch {
		case p.Bounds().Intersects(paddle):
			p.Active = false
			collected = append(collected, p.Type)
			e.emit(event.EventPowerUpCollected, &event.PowerUpPayload{Kind: p.Type.String(), X: p.Pos.X, Y: p.Pos.Y})
		case p.Pos.Y > limit:
			p.Active = false
		default:
			kept = append(kept, p)
		}
	}
	clear(e.pickups[len(kept):])
	e.pickups = kept

	for _, t := range collected {
		e.Activate(t)
	}
	return collected
}

// Pickups returns the pickups still falling
func (e *Engine) Pickups() []*Pickup {
	return e.pickups
}

// Activate starts t's effect
// Conflicting effects are deactivated first; an already active t is reverted and restarted
func (e *Engine) Activate(t Type) {
	if t >= typeCount {
		return
	}

	for _, c := range conflicts(t) {
		if e.IsActive(c) {
			e.Deactivate(c)
		}
	}
	if e.IsActive(t) {
		e.deactivate(t, false)
	}

	e.apply(t)
	e.used++
	e.statActive.Add(1)
	e.log.WithField("powerup", t.String()).Debug("power-up activated")

	if Timed(t) {
		e.active[t] = e.sched.After(e.cfg.Duration, func() {
			delete(e.active, t)
			e.revert(t)
			e.emit(event.EventPowerUpExpired, &event.PowerUpPayload{Kind: t.String()})
		})
	}
}

// Deactivate ends t early, reverting its effect
func (e *Engine) Deactivate(t Type) {
	e.deactivate(t, true)
}

func (e *Engine) deactivate(t Type, notify bool) {
	id, ok := e.active[t]
	if !ok {
		return
	}
	e.sched.Cancel(id)
	delete(e.active, t)
	e.revert(t)
	if notify {
		e.emit(event.EventPowerUpExpired, &event.PowerUpPayload{Kind: t.String()})
	}
}

func (e *Engine) apply(t Type) {
	switch t {
	case MultiBall:
		e.splitBall()
	case ExtendPaddle:
		e.target.Paddle().Extend(parameter.PowerUpExtendMultiplier)
	case SlowBall:
		e.scaleBalls(parameter.PowerUpSlowMultiplier)
	case FastBall:
		e.scaleBalls(parameter.PowerUpFastMultiplier)
	case StickyPaddle:
		e.target.Paddle().SetSticky(true)
	case ExtraLife:
		if !e.target.AddLife() {
			e.log.Debug("extra life ignored at max lives")
		}
	}
}

func (e *Engine) revert(t Type) {
	switch t {
	case ExtendPaddle:
		e.target.Paddle().Shrink()
	case SlowBall, FastBall:
		for _, b := range e.target.Balls() {
			b.ResetSpeed()
		}
	case StickyPaddle:
		e.target.Paddle().SetSticky(false)
	}
}

// splitBall adds two balls diverging from the first launched ball
func (e *Engine) splitBall() {
	var src *ball.Ball
	for _, b := range e.target.Balls() {
		if b.Launched {
			src = b
			break
		}
	}
	if src == nil {
		return
	}

	dir := vmath.V2Angle(src.Velocity())
	e.target.SpawnBall(src, dir+parameter.PowerUpMultiBallSpreadDeg)
	e.target.SpawnBall(src, dir-parameter.PowerUpMultiBallSpreadDeg)
}

// scaleBalls multiplies each launched ball's current target speed
func (e *Engine) scaleBalls(mult float64) {
	for _, b := range e.target.Balls() {
		if b.Launched {
			b.SetSpeed(b.TargetSpeed * mult)
		}
	}
}

// IsActive reports whether timed effect t is running
func (e *Engine) IsActive(t Type) bool {
	_, ok := e.active[t]
	return ok
}

// Active returns running timed effects in type order
func (e *Engine) Active() []Type {
	out := make([]Type, 0, len(e.active))
	for t := range e.active {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Remaining returns time left on t's effect
func (e *Engine) Remaining(t Type) (time.Duration, bool) {
	id, ok := e.active[t]
	if !ok {
		return 0, false
	}
	return e.sched.Remaining(id)
}

// UsedCount returns the number of activations since the last Reset
func (e *Engine) UsedCount() int {
	return e.used
}

// ClearAll ends every running effect and drops falling pickups
func (e *Engine) ClearAll() {
	for _, t := range e.Active() {
		e.deactivate(t, false)
	}
	e.pickups = nil
}

// Reset forgets all state without reverting effects, for a freshly built level
func (e *Engine) Reset() {
	for _, id := range e.active {
		e.sched.Cancel(id)
	}
	clear(e.active)
	e.pickups = nil
	e.used = 0
}
