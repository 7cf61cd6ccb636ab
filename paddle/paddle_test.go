package paddle

import (
	"math"
	"testing"

	"github.com/lixenwraith/brick-breaker/ball"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/physics"
	"github.com/lixenwraith/brick-breaker/vmath"
)

func newTestPaddle(t *testing.T, width float64) (*Controller, *physics.World) {
	t.Helper()
	world := physics.NewWorld(parameter.GameWidth, parameter.GameHeight)
	return New(world, width), world
}

func TestUpdateConvergesToTarget(t *testing.T) {
	p, _ := newTestPaddle(t, 100)
	p.SetTarget(300)

	prevGap := math.Abs(300 - p.X())
	for i := 0; i < 200; i++ {
		p.Update()
		gap := math.Abs(300 - p.X())
		if gap > prevGap {
			t.Fatalf("Tick %d: gap grew from %f to %f", i, prevGap, gap)
		}
		prevGap = gap
	}
	if p.X() != 300 {
		t.Errorf("Expected paddle to snap onto 300, got %f", p.X())
	}
}

func TestSensitivityChangesConvergence(t *testing.T) {
	ticksTo := func(sens int) int {
		p, _ := newTestPaddle(t, 100)
		p.SetSensitivity(sens)
		p.SetTarget(60)
		for i := 1; i < 1000; i++ {
			p.Update()
			if p.X() == 60 {
				return i
			}
		}
		return 1000
	}

	slow, fast := ticksTo(2), ticksTo(9)
	if fast >= slow {
		t.Errorf("Expected higher sensitivity to converge faster, got %d vs %d ticks", fast, slow)
	}

	p, _ := newTestPaddle(t, 100)
	p.SetSensitivity(99)
	if p.Sensitivity() != parameter.SensitivityMax {
		t.Errorf("Expected clamp to %d, got %d", parameter.SensitivityMax, p.Sensitivity())
	}
}

func TestClampOnScreen(t *testing.T) {
	p, _ := newTestPaddle(t, 100)
	p.SetTarget(-500)
	for i := 0; i < 200; i++ {
		p.Update()
	}
	if p.Bounds().Left() != 0 {
		t.Errorf("Expected left edge at 0, got %f", p.Bounds().Left())
	}

	// Extending at the right edge pulls the paddle back inside
	p.SetTarget(10000)
	for i := 0; i < 200; i++ {
		p.Update()
	}
	p.Extend(parameter.PowerUpExtendMultiplier)
	if r := p.Bounds().Right(); !vmath.ApproxEqual(r, parameter.GameWidth, 1e-9) {
		t.Errorf("Expected right edge at field width, got %f", r)
	}
}

func TestExtendRebuildsFootprint(t *testing.T) {
	p, _ := newTestPaddle(t, 80)

	p.Extend(5)
	want := 80 * parameter.PaddleMaxExtend
	if !vmath.ApproxEqual(p.Width(), want, 1e-9) {
		t.Errorf("Expected width capped at %f, got %f", want, p.Width())
	}
	if w, _ := p.Body().Size(); !vmath.ApproxEqual(w, want, 1e-9) {
		t.Errorf("Expected collision footprint %f wide, got %f", want, w)
	}

	p.Extend(0.5)
	if p.Width() != 80 {
		t.Errorf("Expected width never below default, got %f", p.Width())
	}

	p.Extend(1.3)
	p.Shrink()
	if w, _ := p.Body().Size(); w != 80 || p.Width() != 80 {
		t.Errorf("Expected shrink to default 80, got paddle %f body %f", p.Width(), w)
	}
}

func TestAttachedBallsSpread(t *testing.T) {
	p, world := newTestPaddle(t, 100)
	balls := []*ball.Ball{
		ball.New(world, vmath.Vec2{}, 200),
		ball.New(world, vmath.Vec2{}, 200),
		ball.New(world, vmath.Vec2{}, 200),
	}
	for _, b := range balls {
		p.Attach(b)
	}
	p.Attach(balls[0])
	if len(p.Attached()) != 3 {
		t.Fatalf("Expected 3 attached, got %d", len(p.Attached()))
	}

	p.SetTarget(200)
	p.Update()

	wantOffsets := []float64{-20, 0, 20}
	for i, b := range balls {
		pos := b.Position()
		if !vmath.ApproxEqual(pos.X-p.X(), wantOffsets[i], 1e-9) {
			t.Errorf("Ball %d: expected offset %f, got %f", i, wantOffsets[i], pos.X-p.X())
		}
		if !vmath.ApproxEqual(pos.Y, p.Position().Y-parameter.BallAttachOffsetY, 1e-9) {
			t.Errorf("Ball %d: expected y %f, got %f", i, p.Position().Y-parameter.BallAttachOffsetY, pos.Y)
		}
		if !b.Stuck || b.Launched {
			t.Errorf("Ball %d: expected stuck and not launched", i)
		}
	}

	released := p.Release()
	if len(released) != 3 || len(p.Attached()) != 0 {
		t.Errorf("Expected 3 released and none left, got %d/%d", len(released), len(p.Attached()))
	}
}

func TestReset(t *testing.T) {
	p, world := newTestPaddle(t, 100)
	p.SetSticky(true)
	p.Extend(1.3)
	p.Attach(ball.New(world, vmath.Vec2{}, 200))
	p.SetTarget(20)
	p.Update()

	p.Reset()
	if p.IsSticky() || p.Width() != 100 || len(p.Attached()) != 0 {
		t.Errorf("Expected clean paddle, got sticky=%v width=%f attached=%d", p.IsSticky(), p.Width(), len(p.Attached()))
	}
	if p.X() != parameter.GameWidth/2 {
		t.Errorf("Expected centered paddle, got %f", p.X())
	}
}
