package game

import (
	"time"

	"github.com/lixenwraith/brick-breaker/ball"
	"github.com/lixenwraith/brick-breaker/brick"
	"github.com/lixenwraith/brick-breaker/event"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/physics"
)

// hitIntent is a brick hit deferred until the physics step has fully resolved
type hitIntent struct {
	ball  uint64
	brick *brick.Brick
}

// Tick advances the session by dt, capped at MaxTickDelta
// Idle sessions move the paddle, bricks and pickups but not balls; paused and finished sessions do nothing
func (g *Game) Tick(dt time.Duration) {
	if !g.loaded || dt <= 0 {
		return
	}
	dt = min(dt, parameter.MaxTickDelta)

	switch g.State() {
	case StatePlaying:
		g.statTicks.Add(1)
		g.stepPlaying(dt)
	case StateIdle:
		g.statTicks.Add(1)
		g.stepIdle(dt)
	default:
		return
	}
	g.fsm.Update(g, dt)
}

func (g *Game) stepIdle(dt time.Duration) {
	g.clock.Advance(dt)
	g.sched.Update()
	g.paddle.Update()
	g.field.Update(dt)
	g.powerups.Update(dt, g.paddle.Bounds())
}

func (g *Game) stepPlaying(dt time.Duration) {
	g.clock.Advance(dt)
	g.sched.Update()
	g.paddle.Update()
	g.field.Update(dt)

	contacts := g.world.Step(dt)
	g.statContacts.Add(int64(len(contacts)))
	g.resolveContacts(contacts)

	g.applyHits()
	if g.State() != StatePlaying {
		return
	}

	g.powerups.Update(dt, g.paddle.Bounds())

	for _, b := range g.balls {
		c := g.adapter.Update(b)
		if c.Has(ball.CorrectionRecovered) || c.Has(ball.CorrectionRelaunched) {
			p := b.Position()
			reason := "stalled"
			if c.Has(ball.CorrectionRecovered) {
				reason = "non_finite"
			}
			g.push(event.EventBallRecovered, &event.BallPayload{BallID: b.ID(), X: p.X, Y: p.Y, Reason: reason})
		}
	}

	g.removeLostBalls()
	if len(g.balls) == 0 {
		g.loseLife()
	}
}

// resolveContacts applies velocity response and queues brick damage
func (g *Game) resolveContacts(contacts []physics.Contact) {
	for _, c := range contacts {
		b, ok := c.Body.Data.(*ball.Ball)
		if !ok || !b.Launched {
			continue
		}

		switch c.Other.Tag() {
		case physics.TagWall:
			if g.adapter.Bounce(b, c.Normal) {
				p := b.Position()
				g.push(event.EventWallBounce, &event.BallPayload{BallID: b.ID(), X: p.X, Y: p.Y})
			}

		case physics.TagBrick:
			br, ok := c.Other.Data.(*brick.Brick)
			if !ok || br.Destroyed {
				continue
			}
			g.adapter.Bounce(b, c.Normal)
			g.queueHit(b, br)
			b.IncreaseSpeed(parameter.BallSpeedIncrement)

		case physics.TagPaddle:
			p := b.Position()
			if g.paddle.IsSticky() {
				g.paddle.Attach(b)
				g.push(event.EventBallAttached, &event.BallPayload{BallID: b.ID(), X: p.X, Y: p.Y})
				continue
			}
			g.adapter.Bounce(b, c.Normal)
			g.push(event.EventPaddleBounce, &event.BallPayload{BallID: b.ID(), X: p.X, Y: p.Y})
		}
	}
}

func (g *Game) queueHit(b *ball.Ball, br *brick.Brick) {
	intent := hitIntent{ball: b.ID(), brick: br}
	for _, h := range g.hits {
		if h == intent {
			return
		}
	}
	g.hits = append(g.hits, intent)
}

// applyHits damages queued bricks; each destruction spawns a drop, then scores, then checks for a clear
func (g *Game) applyHits() {
	defer func() { g.hits = g.hits[:0] }()

	for _, h := range g.hits {
		res := g.field.Hit(h.brick, 1)
		if !res.Applied {
			continue
		}
		g.statHits.Add(1)

		br := res.Brick
		p := br.Position()
		payload := &event.BrickPayload{
			Row: br.Row, Col: br.Col, Kind: br.Type.String(),
			X: p.X, Y: p.Y,
			Health: br.Health, MaxHealth: br.MaxHealth, Points: br.Points,
		}
		if !res.Destroyed {
			g.push(event.EventBrickHit, payload)
			continue
		}
		g.push(event.EventBrickDestroyed, payload)

		g.powerups.Spawn(p)

		award := g.score.Register(br.Points, g.clock.Now())
		g.push(event.EventScoreChanged, &event.ScorePayload{
			Base:       award.Base,
			Awarded:    award.Awarded,
			Combo:      award.Combo,
			Multiplier: award.Multiplier,
			Total:      g.score.Total(),
		})

		if g.field.Cleared() {
			g.push(event.EventAllBricksDestroyed, nil)
			g.handle(event.EventAllBricksDestroyed)
			return
		}
	}
}

func (g *Game) removeLostBalls() {
	kept := g.balls[:0]
	for _, b := range g.balls {
		if !b.IsOutOfBounds(parameter.GameHeight) {
			kept = append(kept, b)
			continue
		}
		p := b.Position()
		g.world.Remove(b.Body)
		g.push(event.EventBallLost, &event.BallPayload{BallID: b.ID(), X: p.X, Y: p.Y})
	}
	clear(g.balls[len(kept):])
	g.balls = kept
}

// loseLife handles the last ball leaving play
func (g *Game) loseLife() {
	g.lives = max(g.lives-1, 0)
	g.push(event.EventLifeLost, &event.LivesPayload{Lives: g.lives})
	g.log.WithField("lives", g.lives).Info("life lost")
	g.push(event.EventBallsDepleted, nil)
	g.handle(event.EventBallsDepleted)
}
