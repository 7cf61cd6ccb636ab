package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brick-breaker/ball"
	"github.com/lixenwraith/brick-breaker/brick"
	"github.com/lixenwraith/brick-breaker/game"
	"github.com/lixenwraith/brick-breaker/paddle"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/powerup"
	"github.com/lixenwraith/brick-breaker/vmath"
)

// Scene is the read-only view of a running level the renderer draws
type Scene interface {
	Field() *brick.Field
	Paddle() *paddle.Controller
	Balls() []*ball.Ball
	Pickups() []*powerup.Pickup
	ActivePowerUps() []powerup.Type
	Session() game.Session
}

var _ Scene = (*game.Game)(nil)

// Overlay is host state drawn on top of the field
type Overlay struct {
	// Stars of the last finished level, shown on the result box
	Stars int
	// Notice is a transient line such as "World 2 unlocked"
	Notice string
	Sound  bool
}

// Renderer projects the logical play field onto terminal cells
type Renderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen size, called on tcell resize events
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// fieldRows is the number of terminal rows given to the play field
func (r *Renderer) fieldRows() int {
	return r.height - parameter.TopMargin - parameter.BottomMargin
}

// cell maps a field point to a terminal cell; ok is false outside the field area
func (r *Renderer) cell(p vmath.Vec2) (x, y int, ok bool) {
	rows := r.fieldRows()
	if p.X < 0 || p.Y < 0 || p.X >= parameter.GameWidth || p.Y >= parameter.GameHeight {
		return 0, 0, false
	}
	x = int(p.X / parameter.GameWidth * float64(r.width))
	y = parameter.TopMargin + int(p.Y/parameter.GameHeight*float64(rows))
	return x, y, true
}

// span maps a field rectangle to an inclusive cell range, at least one cell wide and tall
func (r *Renderer) span(rect vmath.Rect) (x0, y0, x1, y1 int, ok bool) {
	left, top := max(rect.Left(), 0), max(rect.Top(), 0)
	right := min(rect.Right(), parameter.GameWidth)
	bottom := min(rect.Bottom(), parameter.GameHeight)
	if left >= right || top >= bottom {
		return 0, 0, 0, 0, false
	}

	w, h := float64(r.width), float64(r.fieldRows())

	x0 = int(left * w / parameter.GameWidth)
	x1 = max(int(math.Ceil(right*w/parameter.GameWidth))-1, x0)
	y0 = parameter.TopMargin + int(top*h/parameter.GameHeight)
	y1 = max(parameter.TopMargin+int(math.Ceil(bottom*h/parameter.GameHeight))-1, y0)
	return x0, y0, x1, y1, true
}

// Draw renders one frame
func (r *Renderer) Draw(s Scene, ov Overlay) {
	r.screen.Clear()

	if r.width < parameter.MinScreenWidth || r.height < parameter.MinScreenHeight {
		r.text(0, 0, "terminal too small", styleHUD)
		r.screen.Show()
		return
	}

	sess := s.Session()
	r.drawField(s)
	r.drawHUD(sess, s.ActivePowerUps(), ov)
	r.drawHints(sess.State)
	r.drawOverlay(sess, ov)
	r.screen.Show()
}

func (r *Renderer) drawField(s Scene) {
	if f := s.Field(); f != nil {
		for _, b := range f.Bricks() {
			if b.Destroyed {
				continue
			}
			r.fill(b.Bounds(), parameter.BrickChar, brickStyle(b))
		}
	}

	if p := s.Paddle(); p != nil {
		style := stylePaddle
		if p.IsSticky() {
			style = styleSticky
		}
		x0, y, x1, _, ok := r.span(p.Bounds())
		if ok {
			for x := x0; x <= x1; x++ {
				r.screen.SetContent(x, y, parameter.PaddleChar, nil, style)
			}
		}
	}

	for _, pu := range s.Pickups() {
		if !pu.Active {
			continue
		}
		if x, y, ok := r.cell(pu.Pos); ok {
			r.screen.SetContent(x, y, pickupGlyph(pu.Type), nil, pickupStyle)
		}
	}

	for _, b := range s.Balls() {
		if x, y, ok := r.cell(b.Position()); ok {
			r.screen.SetContent(x, y, parameter.BallChar, nil, styleBall)
		}
	}
}

// fill paints every cell covered by rect
func (r *Renderer) fill(rect vmath.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1, ok := r.span(rect)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// text writes s from (x, y), clipped to the screen width
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func brickStyle(b *brick.Brick) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(b.Color())).Background(colorBackground)
}

// pickupGlyph is the capsule letter shown for a falling power-up
func pickupGlyph(t powerup.Type) rune {
	switch t {
	case powerup.MultiBall:
		return 'M'
	case powerup.ExtendPaddle:
		return 'E'
	case powerup.SlowBall:
		return 'S'
	case powerup.FastBall:
		return 'F'
	case powerup.StickyPaddle:
		return 'G'
	case powerup.ExtraLife:
		return '+'
	default:
		return '?'
	}
}
