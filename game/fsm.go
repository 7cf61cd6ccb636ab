package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/brick-breaker/asset"
	"github.com/lixenwraith/brick-breaker/engine/fsm"
	"github.com/lixenwraith/brick-breaker/event"
	"github.com/lixenwraith/brick-breaker/progression"
)

// newMachine builds the session state graph with the game's guards and actions
func newMachine() (*fsm.Machine[*Game], error) {
	m := fsm.NewMachine[*Game]()

	m.RegisterGuard("HasLives", func(g *Game) bool { return g.lives > 0 })

	m.RegisterAction("ServeBall", func(g *Game, _ fsm.ActionArgs) { g.serveBall() })
	m.RegisterAction("LaunchBalls", func(g *Game, _ fsm.ActionArgs) { g.releaseBalls() })
	m.RegisterAction("PauseClock", func(g *Game, _ fsm.ActionArgs) { g.clock.Pause() })
	m.RegisterAction("ResumeClock", func(g *Game, _ fsm.ActionArgs) { g.clock.Resume() })
	m.RegisterAction("FinishLevel", func(g *Game, args fsm.ActionArgs) { g.finishLevel(args.Event) })
	m.RegisterAction("GrantContinue", func(g *Game, _ fsm.ActionArgs) { g.grantContinue() })

	if err := m.LoadConfig([]byte(asset.GameFSMConfig)); err != nil {
		return nil, fmt.Errorf("load session graph: %w", err)
	}
	return m, nil
}

// handle feeds et to the state graph, announcing any transition
func (g *Game) handle(et event.EventType) bool {
	from := g.fsm.CurrentName()
	if !g.fsm.HandleEvent(g, et) {
		return false
	}
	to := g.fsm.CurrentName()

	g.push(event.EventStateChanged, &event.StatePayload{From: from, To: to})
	g.log.WithFields(logrus.Fields{
		"trigger": et.String(),
		"from":    from,
		"to":      to,
	}).Debug("state changed")
	return true
}

func (g *Game) finishLevel(et event.EventType) {
	stats := g.Stats()
	res := &event.LevelResultPayload{
		LevelID:         g.level.ID,
		Score:           g.score.Total(),
		BricksDestroyed: stats.BricksDestroyed,
		TotalBricks:     stats.TotalBricks,
		LivesRemaining:  stats.LivesRemaining,
		PowerUpsUsed:    stats.PowerUpsUsed,
		MaxCombo:        stats.MaxCombo,
	}

	if et == event.EventLevelWin {
		if g.progress != nil {
			res.Stars = g.progress.CompleteLevel(g.level.ID, res.Score, stats).Stars
		} else {
			res.Stars = progression.CalculateStars(stats)
		}
	}

	g.powerups.ClearAll()
	g.push(et, res)
	g.log.WithFields(logrus.Fields{
		"result":  et.String(),
		"score":   res.Score,
		"stars":   res.Stars,
		"bricks":  fmt.Sprintf("%d/%d", res.BricksDestroyed, res.TotalBricks),
		"elapsed": stats.Elapsed,
	}).Info("level finished")
}

func (g *Game) grantContinue() {
	g.lives = 1
	g.push(event.EventLifeAdded, &event.LivesPayload{Lives: g.lives})
}
