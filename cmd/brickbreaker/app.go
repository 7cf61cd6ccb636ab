package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/brick-breaker/audio"
	"github.com/lixenwraith/brick-breaker/engine"
	"github.com/lixenwraith/brick-breaker/event"
	"github.com/lixenwraith/brick-breaker/game"
	"github.com/lixenwraith/brick-breaker/level"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/progression"
	"github.com/lixenwraith/brick-breaker/render"
	"github.com/lixenwraith/brick-breaker/status"
	"github.com/lixenwraith/brick-breaker/storage"
)

// app binds a game session to a terminal, the speaker and the save file
type app struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *render.Renderer
	sound    *audio.SoundManager
	store    storage.Store
	progress *progression.Service
	catalog  *level.Catalog
	stepper  *engine.FixedStepper
	log      logrus.FieldLogger
	reg      *status.Registry

	overlay  render.Overlay
	unlocked int // world count at level start, to detect unlocks
}

// load starts level id and resets per-level host state
func (a *app) load(id int) error {
	if err := a.game.LoadLevel(id); err != nil {
		return err
	}
	a.overlay = render.Overlay{}
	a.unlocked = len(a.store.UnlockedWorlds())
	a.stepper.Reset()
	return nil
}

// handleEvent applies one terminal event; returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.renderer.Resize()
		a.screen.Sync()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			a.game.NudgePaddle(-parameter.PaddleKeyStep)
		case tcell.KeyRight:
			a.game.NudgePaddle(parameter.PaddleKeyStep)
		case tcell.KeyRune:
			return a.handleRune(ev.Rune())
		}
	}
	return true
}

func (a *app) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'h':
		a.game.NudgePaddle(-parameter.PaddleKeyStep)
	case 'l':
		a.game.NudgePaddle(parameter.PaddleKeyStep)
	case ' ':
		a.game.Launch()
	case 'p':
		if !a.game.Pause() {
			a.game.Resume()
		}
		a.stepper.Reset()
	case 'c':
		a.game.Continue()
	case 'r':
		if a.game.State() == game.StateLevelComplete || a.game.State() == game.StateGameOver {
			a.reload(a.game.Level().ID)
		}
	case 'n':
		a.advance()
	case 'm':
		on := a.sound.ToggleMute()
		enabled := !on
		a.store.UpdateSettings(storage.SettingsPatch{SoundEnabled: &enabled})
	case '+', '=':
		a.adjustSensitivity(1)
	case '-':
		a.adjustSensitivity(-1)
	}
	return true
}

// advance moves to the next level once the current one is won and the next is unlocked
func (a *app) advance() {
	if a.game.State() != game.StateLevelComplete {
		return
	}
	next, ok := a.catalog.NextLevel(a.game.Level().ID)
	if !ok {
		a.overlay.Notice = "all levels complete"
		return
	}
	if !a.progress.IsLevelUnlocked(next) {
		if nw, ok := a.progress.StarsToNextWorld(); ok {
			a.overlay.Notice = fmt.Sprintf("%d more stars for %s", nw.StarsNeeded, nw.World.Name)
		}
		return
	}
	a.reload(next)
}

func (a *app) reload(id int) {
	if err := a.load(id); err != nil {
		a.log.WithError(err).WithField("level", id).Error("level load failed")
	}
}

func (a *app) adjustSensitivity(delta int) {
	s := a.store.Settings().Sensitivity + delta
	s = a.store.UpdateSettings(storage.SettingsPatch{Sensitivity: &s}).Sensitivity
	a.game.SetSensitivity(s)
}

// step runs the simulation steps due since the last call and dispatches their events
func (a *app) step() {
	for n := a.stepper.Steps(); n > 0; n-- {
		a.game.Tick(a.stepper.Step())
	}
	a.drain()
}

// drain feeds queued game events to audio and the result overlay
func (a *app) drain() {
	for _, ev := range a.game.Events().Consume() {
		a.sound.HandleEvent(ev)

		switch ev.Type {
		case event.EventLevelWin:
			if res, ok := ev.Payload.(*event.LevelResultPayload); ok {
				a.overlay.Stars = res.Stars
				a.log.WithFields(logrus.Fields{
					"level": res.LevelID,
					"score": res.Score,
					"stars": res.Stars,
				}).Info("level won")
			}
			if worlds := a.store.UnlockedWorlds(); len(worlds) > a.unlocked {
				a.overlay.Notice = fmt.Sprintf("World %d unlocked", worlds[len(worlds)-1])
				a.unlocked = len(worlds)
			}
		case event.EventLevelLose:
			a.overlay.Stars = 0
			if res, ok := ev.Payload.(*event.LevelResultPayload); ok {
				a.log.WithFields(logrus.Fields{"level": res.LevelID, "score": res.Score}).Info("level lost")
			}
		case event.EventBallRecovered:
			a.log.WithField("frame", ev.Frame).Warn("ball recovered")
		default:
			a.log.WithFields(logrus.Fields{"event": ev.Type.String(), "frame": ev.Frame}).Trace("game event")
		}
	}
}

func (a *app) draw() {
	a.overlay.Sound = a.sound.Enabled()
	a.renderer.Draw(a.game, a.overlay)
}

// run is the host loop: input from a polling goroutine, fixed-step simulation, redraw per frame
func (a *app) run(tickRate int) {
	events := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				a.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\nEVENT POLLER CRASHED: %v\r\nStack Trace:\r\n%s\r\n", r, debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	tick := time.NewTicker(time.Second / time.Duration(tickRate))
	defer tick.Stop()
	frame := time.NewTicker(parameter.FrameInterval)
	defer frame.Stop()

	a.draw()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-tick.C:
			a.step()
		case <-frame.C:
			a.draw()
		}
	}
}
