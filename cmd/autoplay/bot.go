package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/brick-breaker/event"
	"github.com/lixenwraith/brick-breaker/game"
	"github.com/lixenwraith/brick-breaker/parameter"
)

// Outcome is how a bot run of one level ended
type Outcome string

const (
	OutcomeWon     Outcome = "won"
	OutcomeLost    Outcome = "lost"
	OutcomeTimeout Outcome = "timeout"
)

// Result summarizes one level played by the bot
type Result struct {
	LevelID   int
	Outcome   Outcome
	Score     int
	Stars     int
	Ticks     int
	Continues int
	Events    map[string]int
}

// bot drives a game with a paddle that chases the most urgent ball
type bot struct {
	game         *game.Game
	log          logrus.FieldLogger
	maxTicks     int
	maxContinues int
}

// play runs level id until it is won, lost with no continues left, or maxTicks elapse
func (b *bot) play(id int) (Result, error) {
	if err := b.game.LoadLevel(id); err != nil {
		return Result{}, err
	}
	b.game.Events().Consume()

	res := Result{LevelID: id, Outcome: OutcomeTimeout, Events: make(map[string]int)}
	for res.Ticks < b.maxTicks {
		switch b.game.State() {
		case game.StateIdle:
			b.game.Launch()
		case game.StateLevelComplete:
			res.Outcome = OutcomeWon
		case game.StateGameOver:
			if res.Continues >= b.maxContinues {
				res.Outcome = OutcomeLost
				break
			}
			res.Continues++
			b.game.Continue()
		}
		if res.Outcome != OutcomeTimeout {
			break
		}

		b.steer()
		b.game.Tick(parameter.TickInterval)
		res.Ticks++
		b.collect(&res)
	}
	b.collect(&res)
	if res.Outcome == OutcomeTimeout && b.game.State() == game.StateLevelComplete {
		res.Outcome = OutcomeWon
	}
	res.Score = b.game.Score()

	b.log.WithFields(logrus.Fields{
		"level":     id,
		"outcome":   res.Outcome,
		"score":     res.Score,
		"stars":     res.Stars,
		"ticks":     res.Ticks,
		"sim_time":  (time.Duration(res.Ticks) * parameter.TickInterval).String(),
		"continues": res.Continues,
	}).Info("level played")
	return res, nil
}

// steer targets the descending ball closest to the paddle line, else the field center
func (b *bot) steer() {
	paddleY := b.game.Paddle().Position().Y
	target := parameter.GameWidth / 2
	best := -1.0

	for _, bl := range b.game.Balls() {
		v := bl.Velocity()
		if v.Y <= 0 {
			continue
		}
		p := bl.Position()
		if p.Y > best && p.Y < paddleY {
			best = p.Y
			target = p.X
		}
	}
	b.game.SetPaddleTarget(target)
}

// collect tallies drained events and picks up the level result
func (b *bot) collect(res *Result) {
	for _, ev := range b.game.Events().Consume() {
		res.Events[ev.Type.String()]++
		if ev.Type == event.EventLevelWin {
			if p, ok := ev.Payload.(*event.LevelResultPayload); ok {
				res.Stars = p.Stars
			}
		}
	}
}
