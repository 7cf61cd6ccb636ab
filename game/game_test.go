package game

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/brick-breaker/brick"
	"github.com/lixenwraith/brick-breaker/event"
	"github.com/lixenwraith/brick-breaker/level"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/powerup"
	"github.com/lixenwraith/brick-breaker/progression"
	"github.com/lixenwraith/brick-breaker/storage"
)

const frame = 16 * time.Millisecond

// fixedRand always returns the same draw; 0.5 launches straight up and never drops pickups
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func testCatalog(t *testing.T) *level.Catalog {
	t.Helper()
	worlds := []level.World{{ID: 1, Name: "Test"}}
	levels := []level.Config{
		// Single brick directly above x=165
		{ID: 1, WorldID: 1, Name: "Single", BallSpeed: 300, PaddleWidth: 100, DropChance: 0.1,
			Bricks: []brick.Placement{{Row: 0, Col: 3, Type: brick.Standard}}},
		// Brick in the far left column, out of a centered ball's path
		{ID: 2, WorldID: 1, Name: "Corner", BallSpeed: 400, PaddleWidth: 100, DropChance: 0.1,
			Bricks: []brick.Placement{{Row: 0, Col: 0, Type: brick.Strong}}},
	}
	c, err := level.NewCatalog(worlds, levels)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	return c
}

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Catalog == nil {
		opts.Catalog = testCatalog(t)
	}
	if opts.Rand == nil {
		opts.Rand = fixedRand(0.5)
	}
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func tickN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Tick(frame)
	}
}

// runUntil ticks until cond holds, failing after max ticks
func runUntil(t *testing.T, g *Game, max int, cond func() bool) {
	t.Helper()
	for i := 0; i < max; i++ {
		if cond() {
			return
		}
		g.Tick(frame)
	}
	if !cond() {
		t.Fatalf("Condition not reached after %d ticks (state %s)", max, g.State())
	}
}

func findEvent(events []event.GameEvent, et event.EventType) (event.GameEvent, bool) {
	for _, e := range events {
		if e.Type == et {
			return e, true
		}
	}
	return event.GameEvent{}, false
}

func countEvents(events []event.GameEvent, et event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == et {
			n++
		}
	}
	return n
}

// serveAndMiss launches from the center and pulls the paddle away so the ball is lost
func serveAndMiss(t *testing.T, g *Game) {
	t.Helper()
	g.SetPaddleTarget(parameter.GameWidth / 2)
	tickN(g, 60)
	if !g.Launch() {
		t.Fatalf("Launch refused in state %s", g.State())
	}
	g.SetPaddleTarget(0)
	runUntil(t, g, 1000, func() bool { return g.State() != StatePlaying })
}

func TestLoadLevelServesBall(t *testing.T) {
	g := newTestGame(t, Options{})
	if err := g.LoadLevel(1); err != nil {
		t.Fatalf("LoadLevel failed: %v", err)
	}

	if g.State() != StateIdle {
		t.Errorf("Expected Idle, got %s", g.State())
	}
	if len(g.Balls()) != 1 || len(g.Paddle().Attached()) != 1 {
		t.Fatalf("Expected one ball resting on the paddle, got %d balls", len(g.Balls()))
	}
	if g.Lives() != parameter.InitialLives {
		t.Errorf("Expected %d lives, got %d", parameter.InitialLives, g.Lives())
	}
	if g.Paddle().Width() != 100 {
		t.Errorf("Expected level paddle width 100, got %f", g.Paddle().Width())
	}
	if g.Balls()[0].TargetSpeed != 300 {
		t.Errorf("Expected level ball speed 300, got %f", g.Balls()[0].TargetSpeed)
	}
	if g.Session().ID == "" {
		t.Error("Expected session id")
	}
}

func TestLoadUnknownLevel(t *testing.T) {
	g := newTestGame(t, Options{})
	if err := g.LoadLevel(99); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel, got %v", err)
	}
	if g.Launch() {
		t.Error("Expected launch refused with no level")
	}

	g.LoadLevel(1)
	if err := g.LoadLevel(42); err == nil {
		t.Error("Expected error for level 42")
	}
	if g.Session().LevelID != 1 {
		t.Errorf("Expected session to stay on level 1, got %d", g.Session().LevelID)
	}
}

func TestIdleMovesPaddleWithBall(t *testing.T) {
	g := newTestGame(t, Options{})
	g.LoadLevel(1)

	g.SetPaddleTarget(100)
	tickN(g, 60)

	if g.Paddle().X() != 100 {
		t.Errorf("Expected paddle at 100, got %f", g.Paddle().X())
	}
	if x := g.Balls()[0].Position().X; x != 100 {
		t.Errorf("Expected resting ball to follow to 100, got %f", x)
	}
	if g.Balls()[0].Launched {
		t.Error("Expected ball still resting")
	}
}

func TestWinClearsLevel(t *testing.T) {
	store := storage.NewManager(&storage.MemoryBackend{}, nil)
	cat := testCatalog(t)
	g := newTestGame(t, Options{Catalog: cat, Progress: progression.NewService(store, cat, nil)})
	g.LoadLevel(1)

	g.SetPaddleTarget(165)
	tickN(g, 60)
	g.Events().Consume()

	if !g.Launch() {
		t.Fatal("Expected launch from Idle")
	}
	runUntil(t, g, 500, func() bool { return g.State() != StatePlaying })

	if g.State() != StateLevelComplete {
		t.Fatalf("Expected LevelComplete, got %s", g.State())
	}

	events := g.Events().Consume()
	for _, et := range []event.EventType{event.EventBallLaunched, event.EventBrickDestroyed, event.EventScoreChanged} {
		if _, ok := findEvent(events, et); !ok {
			t.Errorf("Expected %s event", et)
		}
	}

	e, ok := findEvent(events, event.EventLevelWin)
	if !ok {
		t.Fatal("Expected LevelWin event")
	}
	res := e.Payload.(*event.LevelResultPayload)
	if res.Score != parameter.PointsStandard || res.BricksDestroyed != 1 || res.TotalBricks != 1 {
		t.Errorf("Unexpected result %+v", res)
	}
	// Cleared with all lives but no power-ups
	if res.Stars != 2 {
		t.Errorf("Expected 2 stars, got %d", res.Stars)
	}
	if store.LevelStars(1) != 2 || store.CurrentLevel() != 2 {
		t.Errorf("Expected progress saved, got %d stars, current %d", store.LevelStars(1), store.CurrentLevel())
	}

	// Finished sessions no longer simulate
	elapsed := g.Session().Elapsed
	tickN(g, 10)
	if g.Session().Elapsed != elapsed {
		t.Error("Expected clock frozen after level complete")
	}
}

func TestBrickHitSpeedsBall(t *testing.T) {
	g := newTestGame(t, Options{})
	g.LoadLevel(1)
	g.SetPaddleTarget(165)
	tickN(g, 60)
	g.Launch()

	b := g.Balls()[0]
	runUntil(t, g, 500, func() bool { return g.State() != StatePlaying })
	if b.TargetSpeed != 300+parameter.BallSpeedIncrement {
		t.Errorf("Expected speed %f after one brick, got %f", 300+parameter.BallSpeedIncrement, b.TargetSpeed)
	}
}

func TestLifeLossReturnsToIdle(t *testing.T) {
	g := newTestGame(t, Options{})
	g.LoadLevel(2)

	serveAndMiss(t, g)
	if g.State() != StateIdle {
		t.Fatalf("Expected Idle after losing a ball, got %s", g.State())
	}
	if g.Lives() != parameter.InitialLives-1 {
		t.Errorf("Expected %d lives, got %d", parameter.InitialLives-1, g.Lives())
	}
	if len(g.Balls()) != 1 || g.Balls()[0].Launched {
		t.Error("Expected a fresh ball served on the paddle")
	}

	events := g.Events().Consume()
	for _, et := range []event.EventType{event.EventWallBounce, event.EventBallLost, event.EventLifeLost, event.EventBallsDepleted} {
		if _, ok := findEvent(events, et); !ok {
			t.Errorf("Expected %s event", et)
		}
	}
}

func TestGameOverAndContinue(t *testing.T) {
	g := newTestGame(t, Options{})
	g.LoadLevel(2)

	for i := 0; i < parameter.InitialLives; i++ {
		serveAndMiss(t, g)
	}
	if g.State() != StateGameOver {
		t.Fatalf("Expected GameOver, got %s", g.State())
	}
	if g.Lives() != 0 {
		t.Errorf("Expected 0 lives, got %d", g.Lives())
	}

	events := g.Events().Consume()
	e, ok := findEvent(events, event.EventLevelLose)
	if !ok {
		t.Fatal("Expected LevelLose event")
	}
	if res := e.Payload.(*event.LevelResultPayload); res.Stars != 0 || res.LivesRemaining != 0 {
		t.Errorf("Unexpected lose result %+v", res)
	}
	if n := countEvents(events, event.EventLifeLost); n != parameter.InitialLives {
		t.Errorf("Expected %d life lost events, got %d", parameter.InitialLives, n)
	}

	if g.Pause() || g.Launch() {
		t.Error("Expected pause and launch refused after game over")
	}

	if !g.Continue() {
		t.Fatal("Expected continue accepted")
	}
	if g.State() != StateIdle || g.Lives() != 1 {
		t.Errorf("Expected Idle with 1 life, got %s with %d", g.State(), g.Lives())
	}
	if len(g.Balls()) != 1 {
		t.Errorf("Expected a ball served after continue, got %d", len(g.Balls()))
	}
	if g.Continue() {
		t.Error("Expected continue refused outside game over")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, Options{})
	g.LoadLevel(2)

	if g.Pause() {
		t.Error("Expected pause refused while idle")
	}

	g.Launch()
	tickN(g, 5)
	if !g.Pause() {
		t.Fatal("Expected pause accepted while playing")
	}

	b := g.Balls()[0]
	pos, elapsed := b.Position(), g.Session().Elapsed
	tickN(g, 20)
	if b.Position() != pos || g.Session().Elapsed != elapsed {
		t.Error("Expected nothing to move while paused")
	}

	if !g.Resume() {
		t.Fatal("Expected resume accepted")
	}
	tickN(g, 5)
	if b.Position() == pos {
		t.Error("Expected ball moving after resume")
	}
	if g.State() != StatePlaying {
		t.Errorf("Expected Playing, got %s", g.State())
	}
}

func TestTickDeltaCapped(t *testing.T) {
	g := newTestGame(t, Options{})
	g.LoadLevel(1)

	g.Tick(time.Second)
	if got := g.Session().Elapsed; got != parameter.MaxTickDelta {
		t.Errorf("Expected elapsed capped at %v, got %v", parameter.MaxTickDelta, got)
	}
}

func TestStickyPaddleCatchesBall(t *testing.T) {
	g := newTestGame(t, Options{})
	g.LoadLevel(2)
	g.Launch()
	g.powerups.Activate(powerup.StickyPaddle)

	runUntil(t, g, 1000, func() bool { return len(g.Paddle().Attached()) == 1 })
	b := g.Balls()[0]
	if b.Launched || !b.Stuck {
		t.Error("Expected ball held by the paddle")
	}
	if _, ok := findEvent(g.Events().Consume(), event.EventBallAttached); !ok {
		t.Error("Expected BallAttached event")
	}

	if !g.Launch() {
		t.Fatal("Expected launch of the held ball while playing")
	}
	if !b.Launched {
		t.Error("Expected ball relaunched")
	}
	if g.Launch() {
		t.Error("Expected launch refused with nothing held")
	}
}

func TestMultiBallAddsBalls(t *testing.T) {
	g := newTestGame(t, Options{})
	g.LoadLevel(2)
	g.Launch()
	tickN(g, 3)

	g.powerups.Activate(powerup.MultiBall)
	if len(g.Balls()) != 3 {
		t.Fatalf("Expected 3 balls, got %d", len(g.Balls()))
	}
	for _, b := range g.Balls() {
		if !b.Launched {
			t.Error("Expected every ball launched")
		}
	}
	if g.Session().PowerUpsUsed != 1 {
		t.Errorf("Expected 1 power-up used, got %d", g.Session().PowerUpsUsed)
	}
}

func TestAddLifeCapped(t *testing.T) {
	g := newTestGame(t, Options{})
	g.LoadLevel(1)

	g.AddLife()
	g.AddLife()
	if g.AddLife() {
		t.Error("Expected life refused at the cap")
	}
	if g.Lives() != parameter.MaxLives {
		t.Errorf("Expected %d lives, got %d", parameter.MaxLives, g.Lives())
	}
}

func TestStateChangedEvents(t *testing.T) {
	g := newTestGame(t, Options{})
	g.LoadLevel(1)
	g.Events().Consume()

	g.Launch()
	e, ok := findEvent(g.Events().Consume(), event.EventStateChanged)
	if !ok {
		t.Fatal("Expected StateChanged event")
	}
	p := e.Payload.(*event.StatePayload)
	if p.From != string(StateIdle) || p.To != string(StatePlaying) {
		t.Errorf("Expected Idle -> Playing, got %s -> %s", p.From, p.To)
	}
}

func TestLevelDropChanceOption(t *testing.T) {
	// A draw of 0.12 is above the default chance but under level 1's
	g := newTestGame(t, Options{Rand: fixedRand(0.12), UseLevelDropChance: false})
	g.LoadLevel(1)
	if _, ok := g.powerups.Spawn(g.Paddle().Position()); ok {
		t.Error("Expected no drop at the default chance")
	}

	cat := testCatalog(t)
	l, _ := cat.Level(1)
	l.DropChance = 0.15
	cat, _ = level.NewCatalog([]level.World{{ID: 1}}, []level.Config{l})

	g = newTestGame(t, Options{Catalog: cat, Rand: fixedRand(0.12), UseLevelDropChance: true})
	g.LoadLevel(1)
	if _, ok := g.powerups.Spawn(g.Paddle().Position()); !ok {
		t.Error("Expected a drop at the level's chance")
	}
}
