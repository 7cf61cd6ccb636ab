package level

import (
	"github.com/lixenwraith/brick-breaker/brick"
	"github.com/lixenwraith/brick-breaker/parameter"
)

const cols = parameter.BrickColumns

func band(rows int, t brick.Type) Band { return Band{Rows: rows, Type: t} }

// builtinWorlds are the four shipped worlds; unlock thresholds mirror parameter.WorldUnlockStars
var builtinWorlds = []World{
	{ID: 1, Name: "Beginner's Lane", Levels: []int{1, 2, 3, 4, 5}, UnlockStars: parameter.WorldUnlockStars[0],
		Description: "Perfect for starting your journey."},
	{ID: 2, Name: "Intermediate Zone", Levels: []int{6, 7, 8, 9, 10}, UnlockStars: parameter.WorldUnlockStars[1],
		Description: "A bit more challenge, stronger bricks."},
	{ID: 3, Name: "Advanced Arena", Levels: []int{11, 12, 13, 14, 15}, UnlockStars: parameter.WorldUnlockStars[2],
		Description: "Moving targets and metallic defenses."},
	{ID: 4, Name: "Expert Challenge", Levels: []int{16, 17, 18, 19, 20}, UnlockStars: parameter.WorldUnlockStars[3],
		Description: "Only the best can survive these patterns."},
}

func pyramid() []brick.Placement {
	out := Grid(0, 1, cols, brick.Standard, 0)
	for c := 1; c <= 6; c++ {
		out = append(out, brick.Placement{Row: 1, Col: c, Type: brick.Standard})
	}
	return append(out,
		brick.Placement{Row: 2, Col: 3, Type: brick.Standard},
		brick.Placement{Row: 2, Col: 4, Type: brick.Standard},
	)
}

func checkerboard() []brick.Placement {
	return Pattern(5, cols, func(r, c int) (brick.Placement, bool) {
		return brick.Placement{Type: brick.Standard}, (r+c)%2 == 0
	})
}

func tunnel() []brick.Placement {
	return Pattern(6, cols, func(r, c int) (brick.Placement, bool) {
		switch {
		case c == 0 || c == cols-1 || r == 0:
			return brick.Placement{Type: brick.Strong}, true
		case r > 2:
			return brick.Placement{Type: brick.Standard}, true
		}
		return brick.Placement{}, false
	})
}

func builtinLevels() []Config {
	return []Config{
		// Beginner's Lane
		{ID: 1, WorldID: 1, Name: "First Steps", Bricks: Grid(0, 3, cols, brick.Standard, 0),
			BallSpeed: 160, PaddleWidth: 100, DropChance: 0.15},
		{ID: 2, WorldID: 1, Name: "The Pyramid", Bricks: pyramid(),
			BallSpeed: 170, PaddleWidth: 100, DropChance: 0.15},
		{ID: 3, WorldID: 1, Name: "Checkerboard", Bricks: checkerboard(),
			BallSpeed: 180, PaddleWidth: 100, DropChance: 0.15},
		{ID: 4, WorldID: 1, Name: "Double Trouble", Bricks: Grid(0, 4, cols, brick.Standard, 0),
			BallSpeed: 190, PaddleWidth: 90, DropChance: 0.15},
		{ID: 5, WorldID: 1, Name: "Wall of Fate", Bricks: Grid(0, 5, cols, brick.Standard, 0),
			BallSpeed: 200, PaddleWidth: 90, DropChance: 0.15},

		// Intermediate Zone
		{ID: 6, WorldID: 2, Name: "Stone Wall", Bricks: Stack(cols, band(2, brick.Strong), band(2, brick.Standard)),
			BallSpeed: 220, PaddleWidth: 90, DropChance: 0.12},
		{ID: 7, WorldID: 2, Name: "The Tunnel", Bricks: tunnel(),
			BallSpeed: 230, PaddleWidth: 85, DropChance: 0.12},
		{ID: 8, WorldID: 2, Name: "Core Breach", Bricks: Grid(0, 6, cols, brick.Strong, 0),
			BallSpeed: 240, PaddleWidth: 85, DropChance: 0.12},
		{ID: 9, WorldID: 2, Name: "Fortress",
			Bricks: Stack(cols, Band{Rows: 1, Type: brick.Strong, Health: 3}, band(3, brick.Strong), band(2, brick.Standard)),
			BallSpeed: 250, PaddleWidth: 80, DropChance: 0.12},
		{ID: 10, WorldID: 2, Name: "The Gatekeeper", Bricks: Grid(0, 7, cols, brick.Strong, 0),
			BallSpeed: 260, PaddleWidth: 80, DropChance: 0.12},

		// Advanced Arena
		{ID: 11, WorldID: 3, Name: "Metallic Heart",
			Bricks:    Stack(cols, band(2, brick.Metal), band(2, brick.Strong), band(2, brick.Standard)),
			BallSpeed: 280, PaddleWidth: 80, DropChance: 0.10},
		{ID: 12, WorldID: 3, Name: "Moving Target",
			Bricks:    Stack(cols, band(1, brick.Moving), band(2, brick.Strong), band(2, brick.Standard)),
			BallSpeed: 290, PaddleWidth: 75, DropChance: 0.10},
		{ID: 13, WorldID: 3, Name: "Iron Curtain", Bricks: Grid(0, 5, cols, brick.Metal, 0),
			BallSpeed: 300, PaddleWidth: 70, DropChance: 0.10},
		{ID: 14, WorldID: 3, Name: "Oscillation", Bricks: Stack(cols, band(2, brick.Moving), band(3, brick.Metal)),
			BallSpeed: 320, PaddleWidth: 70, DropChance: 0.10},
		{ID: 15, WorldID: 3, Name: "The Gauntlet", Bricks: Grid(0, 6, cols, brick.Metal, 0),
			BallSpeed: 340, PaddleWidth: 65, DropChance: 0.10},

		// Expert Challenge
		{ID: 16, WorldID: 4, Name: "Dark Matter", Bricks: Grid(0, 5, cols, brick.Metal, 0),
			BallSpeed: 380, PaddleWidth: 65, DropChance: 0.08},
		{ID: 17, WorldID: 4, Name: "Hyper Speed", Bricks: Stack(cols, band(2, brick.Moving), band(4, brick.Metal)),
			BallSpeed: 420, PaddleWidth: 60, DropChance: 0.08},
		{ID: 18, WorldID: 4, Name: "Unbreakable", Bricks: Grid(0, 7, cols, brick.Metal, 0),
			BallSpeed: 450, PaddleWidth: 60, DropChance: 0.08},
		{ID: 19, WorldID: 4, Name: "Chaos Theory", Bricks: Stack(cols, band(4, brick.Moving), band(4, brick.Metal)),
			BallSpeed: 480, PaddleWidth: 55, DropChance: 0.08},
		{ID: 20, WorldID: 4, Name: "The Final Stand", Bricks: Grid(0, 8, cols, brick.Metal, 0),
			BallSpeed: 500, PaddleWidth: 50, DropChance: 0.05},
	}
}

// Builtin returns the shipped catalog
func Builtin() *Catalog {
	c, err := NewCatalog(builtinWorlds, builtinLevels())
	if err != nil {
		panic("level: builtin catalog invalid: " + err.Error())
	}
	return c
}
