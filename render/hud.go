package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brick-breaker/game"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/powerup"
)

var (
	colorBackground = tcell.NewRGBColor(12, 12, 24)
	colorHUD        = tcell.NewRGBColor(220, 220, 220)
	colorAccent     = tcell.NewRGBColor(255, 200, 60)
	colorLife       = tcell.NewRGBColor(230, 60, 80)

	styleHUD    = tcell.StyleDefault.Foreground(colorHUD).Background(colorBackground)
	styleAccent = tcell.StyleDefault.Foreground(colorAccent).Background(colorBackground).Bold(true)
	styleLife   = tcell.StyleDefault.Foreground(colorLife).Background(colorBackground)
	styleHint   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 120, 140)).Background(colorBackground)
	styleBox    = tcell.StyleDefault.Foreground(colorHUD).Background(tcell.NewRGBColor(40, 40, 70)).Bold(true)

	stylePaddle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 200, 250)).Background(colorBackground)
	styleSticky = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 240, 120)).Background(colorBackground)
	styleBall   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(colorBackground)
	pickupStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(colorAccent).Bold(true)
)

// rgb converts a packed 0xRRGGBB value
func rgb(c uint32) tcell.Color {
	return tcell.NewRGBColor(int32(c>>16&0xFF), int32(c>>8&0xFF), int32(c&0xFF))
}

var powerUpLabels = map[powerup.Type]string{
	powerup.MultiBall:    "MULTI",
	powerup.ExtendPaddle: "WIDE",
	powerup.SlowBall:     "SLOW",
	powerup.FastBall:     "FAST",
	powerup.StickyPaddle: "GLUE",
	powerup.ExtraLife:    "LIFE",
}

func (r *Renderer) drawHUD(sess game.Session, active []powerup.Type, ov Overlay) {
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, styleHUD)
	}

	x := r.text(0, 0, fmt.Sprintf(" L%d %s ", sess.LevelID, sess.LevelName), styleAccent)
	x = r.text(x, 0, fmt.Sprintf(" %d ", sess.Score), styleHUD)
	x = r.text(x, 0, strings.Repeat(string(parameter.HeartChar), max(sess.Lives, 0)), styleLife)
	if sess.Combo > 1 {
		x = r.text(x, 0, fmt.Sprintf(" x%d", sess.Combo), styleAccent)
	}
	for _, t := range active {
		x = r.text(x, 0, " ["+powerUpLabels[t]+"]", styleHUD)
	}
	if ov.Sound {
		r.text(r.width-2, 0, parameter.AudioStr, styleHUD)
	}
}

func (r *Renderer) drawHints(state game.State) {
	var hint string
	switch state {
	case game.StateIdle:
		hint = "←/→ move  space launch  q quit"
	case game.StatePlaying:
		hint = "←/→ move  space release  p pause  m mute  q quit"
	case game.StatePaused:
		hint = "p resume  q quit"
	case game.StateLevelComplete:
		hint = "n next level  r replay  q quit"
	case game.StateGameOver:
		hint = "c continue  r retry  q quit"
	}
	r.text(0, r.height-1, hint, styleHint)
}

// drawOverlay centers a message box for the non-playing states
func (r *Renderer) drawOverlay(sess game.Session, ov Overlay) {
	var lines []string
	switch sess.State {
	case game.StateIdle:
		lines = []string{"READY"}
	case game.StatePaused:
		lines = []string{"PAUSED"}
	case game.StateLevelComplete:
		lines = []string{"LEVEL COMPLETE", starLine(ov.Stars), fmt.Sprintf("score %d", sess.Score)}
	case game.StateGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("score %d", sess.Score)}
	default:
		return
	}
	if ov.Notice != "" {
		lines = append(lines, ov.Notice)
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 2 * parameter.OverlayPaddingX

	top := r.height/2 - len(lines)/2
	left := max((r.width-width)/2, 0)
	for i, l := range lines {
		y := top + i
		for x := left; x < left+width && x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleBox)
		}
		pad := (width - len([]rune(l))) / 2
		r.text(left+pad, y, l, styleBox)
	}
}

func starLine(stars int) string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		if i < stars {
			b.WriteRune(parameter.StarChar)
		} else {
			b.WriteRune(parameter.NoStarChar)
		}
	}
	return b.String()
}
