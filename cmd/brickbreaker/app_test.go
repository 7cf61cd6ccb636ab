package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brick-breaker/audio"
	"github.com/lixenwraith/brick-breaker/brick"
	"github.com/lixenwraith/brick-breaker/engine"
	"github.com/lixenwraith/brick-breaker/game"
	"github.com/lixenwraith/brick-breaker/level"
	"github.com/lixenwraith/brick-breaker/logger"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/progression"
	"github.com/lixenwraith/brick-breaker/render"
	"github.com/lixenwraith/brick-breaker/status"
	"github.com/lixenwraith/brick-breaker/storage"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// testApp wires an app to a simulation screen, an in-memory save and a manual clock
func testApp(t *testing.T) (*app, *engine.MockTimeProvider) {
	t.Helper()

	worlds := []level.World{
		{ID: 1, Name: "First"},
		{ID: 2, Name: "Second", UnlockStars: 2},
	}
	levels := []level.Config{
		{ID: 1, WorldID: 1, Name: "Single", BallSpeed: 300, PaddleWidth: 100,
			Bricks: []brick.Placement{{Row: 0, Col: 3, Type: brick.Standard}}},
		{ID: 2, WorldID: 2, Name: "Next", BallSpeed: 300, PaddleWidth: 100,
			Bricks: []brick.Placement{{Row: 0, Col: 0, Type: brick.Standard}}},
	}
	cat, err := level.NewCatalog(worlds, levels)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	sim.SetSize(75, 40)
	t.Cleanup(sim.Fini)

	log := logger.Discard()
	reg := status.NewRegistry()
	store := storage.NewManager(&storage.MemoryBackend{}, log)
	progress := progression.NewService(store, cat, log)

	g, err := game.New(game.Options{Catalog: cat, Progress: progress, Rand: fixedRand(0.5), Log: log, Status: reg})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	a := &app{
		screen:   sim,
		game:     g,
		renderer: render.NewRenderer(sim),
		sound:    audio.NewSoundManager(log, reg),
		store:    store,
		progress: progress,
		catalog:  cat,
		stepper:  engine.NewFixedStepper(clock, parameter.TickInterval, parameter.MaxCatchUpSteps),
		log:      log,
		reg:      reg,
	}
	if err := a.load(1); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return a, clock
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// advance runs n host ticks of one simulation step each
func advance(a *app, clock *engine.MockTimeProvider, n int) {
	a.step()
	for i := 0; i < n; i++ {
		clock.Advance(parameter.TickInterval)
		a.step()
	}
}

func TestQuitKeys(t *testing.T) {
	a, _ := testApp(t)

	if a.handleEvent(key('q')) {
		t.Error("Expected q to quit")
	}
	if a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected Escape to quit")
	}
	if !a.handleEvent(key('x')) {
		t.Error("Expected unbound key to keep running")
	}
}

func TestLaunchAndPauseKeys(t *testing.T) {
	a, _ := testApp(t)

	a.handleEvent(key(' '))
	if a.game.State() != game.StatePlaying {
		t.Fatalf("Expected Playing after space, got %s", a.game.State())
	}

	a.handleEvent(key('p'))
	if a.game.State() != game.StatePaused {
		t.Errorf("Expected Paused, got %s", a.game.State())
	}

	a.handleEvent(key('p'))
	if a.game.State() != game.StatePlaying {
		t.Errorf("Expected Playing after second p, got %s", a.game.State())
	}
}

func TestArrowKeysMovePaddleTarget(t *testing.T) {
	a, _ := testApp(t)
	start := a.game.Paddle().Target()

	a.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if got := a.game.Paddle().Target(); got != start-parameter.PaddleKeyStep {
		t.Errorf("Expected target %f, got %f", start-parameter.PaddleKeyStep, got)
	}

	a.handleEvent(key('l'))
	a.handleEvent(key('l'))
	if got := a.game.Paddle().Target(); got != start+parameter.PaddleKeyStep {
		t.Errorf("Expected target %f, got %f", start+parameter.PaddleKeyStep, got)
	}
}

func TestMuteAndSensitivityPersist(t *testing.T) {
	a, _ := testApp(t)

	a.handleEvent(key('m'))
	if a.sound.Enabled() {
		t.Error("Expected sound muted")
	}
	if a.store.Settings().SoundEnabled {
		t.Error("Expected muted setting saved")
	}

	a.handleEvent(key('+'))
	if got := a.store.Settings().Sensitivity; got != parameter.SensitivityDefault+1 {
		t.Errorf("Expected sensitivity %d, got %d", parameter.SensitivityDefault+1, got)
	}
	if got := a.game.Paddle().Sensitivity(); got != parameter.SensitivityDefault+1 {
		t.Errorf("Expected paddle sensitivity %d, got %d", parameter.SensitivityDefault+1, got)
	}

	for i := 0; i < 20; i++ {
		a.handleEvent(key('-'))
	}
	if got := a.store.Settings().Sensitivity; got != parameter.SensitivityMin {
		t.Errorf("Expected sensitivity clamped to %d, got %d", parameter.SensitivityMin, got)
	}
}

func TestWinUnlocksAndAdvances(t *testing.T) {
	a, clock := testApp(t)

	a.game.SetPaddleTarget(165)
	advance(a, clock, 60)

	a.handleEvent(key(' '))
	for i := 0; i < 500 && a.game.State() == game.StatePlaying; i++ {
		clock.Advance(parameter.TickInterval)
		a.step()
	}
	if a.game.State() != game.StateLevelComplete {
		t.Fatalf("Expected LevelComplete, got %s", a.game.State())
	}
	if a.overlay.Stars != 2 {
		t.Errorf("Expected 2 stars on overlay, got %d", a.overlay.Stars)
	}
	if a.overlay.Notice != "World 2 unlocked" {
		t.Errorf("Expected unlock notice, got %q", a.overlay.Notice)
	}

	a.draw()
	sim := a.screen.(tcell.SimulationScreen)
	found := false
	for y := 0; y < 40; y++ {
		var b strings.Builder
		for x := 0; x < 75; x++ {
			ch, _, _, _ := sim.GetContent(x, y)
			b.WriteRune(ch)
		}
		if strings.Contains(b.String(), "LEVEL COMPLETE") {
			found = true
		}
	}
	if !found {
		t.Error("Expected result box drawn")
	}

	a.handleEvent(key('n'))
	if got := a.game.Level().ID; got != 2 {
		t.Fatalf("Expected level 2 after n, got %d", got)
	}
	if a.overlay.Notice != "" || a.overlay.Stars != 0 {
		t.Errorf("Expected overlay reset on load, got %+v", a.overlay)
	}
	if a.game.State() != game.StateIdle {
		t.Errorf("Expected Idle on new level, got %s", a.game.State())
	}
}

func TestNextBlockedOutsideLevelComplete(t *testing.T) {
	a, _ := testApp(t)

	a.handleEvent(key('n'))
	if got := a.game.Level().ID; got != 1 {
		t.Errorf("Expected to stay on level 1, got %d", got)
	}
}
