package paddle

import (
	"math"

	"github.com/lixenwraith/brick-breaker/ball"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/physics"
	"github.com/lixenwraith/brick-breaker/vmath"
)

// Controller moves the paddle toward an input target and owns its width and sticky state
type Controller struct {
	body *physics.Body

	x, y    float64
	targetX float64

	defaultWidth float64
	width        float64
	height       float64
	fieldWidth   float64

	sensitivity int
	sticky      bool
	attached    []*ball.Ball
}

// New creates a paddle of defaultWidth centered horizontally, PaddleYOffset above the field bottom
func New(world *physics.World, defaultWidth float64) *Controller {
	field := world.Bounds()
	if defaultWidth <= 0 {
		defaultWidth = parameter.PaddleWidth
	}

	c := &Controller{
		x:            field.W / 2,
		y:            field.H - parameter.PaddleYOffset,
		defaultWidth: defaultWidth,
		width:        defaultWidth,
		height:       parameter.PaddleHeight,
		fieldWidth:   field.W,
		sensitivity:  parameter.SensitivityDefault,
	}
	c.targetX = c.x
	c.body = world.AddStatic(c.Position(), c.width, c.height, physics.TagPaddle, c)
	return c
}

func (c *Controller) Body() *physics.Body   { return c.body }
func (c *Controller) X() float64            { return c.x }
func (c *Controller) Position() vmath.Vec2  { return vmath.Vec2{X: c.x, Y: c.y} }
func (c *Controller) Width() float64        { return c.width }
func (c *Controller) DefaultWidth() float64 { return c.defaultWidth }
func (c *Controller) IsSticky() bool        { return c.sticky }

// Bounds returns the paddle box at its current width
func (c *Controller) Bounds() vmath.Rect {
	return vmath.RectCentered(c.Position(), c.width, c.height)
}

// SetSensitivity sets input responsiveness, clamped to [SensitivityMin, SensitivityMax]
func (c *Controller) SetSensitivity(s int) {
	c.sensitivity = min(max(s, parameter.SensitivityMin), parameter.SensitivityMax)
}

func (c *Controller) Sensitivity() int { return c.sensitivity }

// SmoothingFactor is the fraction of the remaining gap closed per Update
func (c *Controller) SmoothingFactor() float64 {
	return float64(c.sensitivity) * parameter.PaddleSmoothingPerSensitivity
}

// SetTarget sets the x the paddle eases toward
func (c *Controller) SetTarget(x float64) {
	c.targetX = x
}

// Nudge shifts the target by dx, for keyboard-style input
func (c *Controller) Nudge(dx float64) {
	c.targetX = c.clampX(c.targetX) + dx
}

// Target returns the current input target
func (c *Controller) Target() float64 {
	return c.targetX
}

func (c *Controller) clampX(x float64) float64 {
	half := c.width / 2
	return vmath.ClampF(x, half, c.fieldWidth-half)
}

// Update eases toward the target, keeps the paddle on screen and carries attached balls
func (c *Controller) Update() {
	target := c.clampX(c.targetX)
	gap := target - c.x
	if math.Abs(gap) <= parameter.PaddleSnapDistance {
		c.x = target
	} else {
		c.x += gap * c.SmoothingFactor()
	}
	c.x = c.clampX(c.x)
	c.body.SetPosition(c.Position())
	c.positionAttached()
}

// Extend widens the paddle to the default width times mult, capped at PaddleMaxExtend
// The collision footprint is rebuilt at the new size
func (c *Controller) Extend(mult float64) {
	c.setWidth(c.defaultWidth * vmath.ClampF(mult, 1, parameter.PaddleMaxExtend))
}

// Shrink restores the default width
func (c *Controller) Shrink() {
	c.setWidth(c.defaultWidth)
}

func (c *Controller) setWidth(w float64) {
	if w == c.width {
		return
	}
	c.width = w
	c.x = c.clampX(c.x)
	c.body.SetPosition(c.Position())
	c.body.Resize(c.width, c.height)
	c.positionAttached()
}

// SetSticky toggles whether balls touching the paddle attach to it
func (c *Controller) SetSticky(on bool) {
	c.sticky = on
}

// Attach parks b on the paddle; attaching the same ball twice is a no-op
func (c *Controller) Attach(b *ball.Ball) {
	for _, a := range c.attached {
		if a == b {
			return
		}
	}
	c.attached = append(c.attached, b)
	b.Stop()
	b.Stuck = true
	c.positionAttached()
}

// Release empties the attached list and returns the balls for launching
func (c *Controller) Release() []*ball.Ball {
	out := c.attached
	c.attached = nil
	return out
}

// Attached returns the balls resting on the paddle
func (c *Controller) Attached() []*ball.Ball {
	return c.attached
}

// positionAttached spreads attached balls symmetrically above the paddle center
func (c *Controller) positionAttached() {
	n := len(c.attached)
	for i, b := range c.attached {
		offset := (float64(i) - float64(n-1)/2) * parameter.BallAttachSpacing
		b.AttachTo(vmath.Vec2{X: c.x + offset, Y: c.y - parameter.BallAttachOffsetY})
	}
}

// Reset recenters the paddle at default width, not sticky, nothing attached
func (c *Controller) Reset() {
	c.attached = nil
	c.sticky = false
	c.x = c.fieldWidth / 2
	c.targetX = c.x
	if c.width != c.defaultWidth {
		c.setWidth(c.defaultWidth)
	}
	c.body.SetPosition(c.Position())
}
