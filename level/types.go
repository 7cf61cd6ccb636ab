package level

import (
	"errors"

	"github.com/lixenwraith/brick-breaker/brick"
)

var (
	ErrUnknownLevel   = errors.New("unknown level")
	ErrUnknownWorld   = errors.New("unknown world")
	ErrDuplicateLevel = errors.New("duplicate level id")
	ErrDuplicateWorld = errors.New("duplicate world id")
	ErrEmptyLevel     = errors.New("level has no bricks")
	ErrInvalidLevel   = errors.New("invalid level parameters")
)

// Config is a playable level definition
type Config struct {
	ID      int
	WorldID int
	Name    string
	Bricks  []brick.Placement

	// BallSpeed is the starting target speed in px/s
	BallSpeed float64
	// PaddleWidth is the default paddle width in px
	PaddleWidth float64
	// DropChance is the level's own pickup probability, used only when enabled in config
	DropChance float64
}

// World groups levels behind a star threshold
type World struct {
	ID          int
	Name        string
	Levels      []int
	UnlockStars int
	Description string
}

// Grid fills rows×cols cells of one type, starting at rowOffset
func Grid(rowOffset, rows, cols int, t brick.Type, health int) []brick.Placement {
	out := make([]brick.Placement, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, brick.Placement{Row: rowOffset + r, Col: c, Type: t, Health: health})
		}
	}
	return out
}

// Band is a run of rows sharing one brick type
type Band struct {
	Rows   int
	Type   brick.Type
	Health int
}

// Stack lays bands top to bottom, each starting where the previous ended
func Stack(cols int, bands ...Band) []brick.Placement {
	var out []brick.Placement
	row := 0
	for _, b := range bands {
		out = append(out, Grid(row, b.Rows, cols, b.Type, b.Health)...)
		row += b.Rows
	}
	return out
}

// Pattern keeps the cells of a rows×cols area for which keep returns a placement
func Pattern(rows, cols int, keep func(r, c int) (brick.Placement, bool)) []brick.Placement {
	var out []brick.Placement
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if p, ok := keep(r, c); ok {
				p.Row, p.Col = r, c
				out = append(out, p)
			}
		}
	}
	return out
}
