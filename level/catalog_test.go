package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/brick-breaker/brick"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/physics"
)

func TestBuiltinShape(t *testing.T) {
	c := Builtin()
	if c.Count() != 20 {
		t.Fatalf("Expected 20 levels, got %d", c.Count())
	}

	worlds := c.Worlds()
	if len(worlds) != 4 {
		t.Fatalf("Expected 4 worlds, got %d", len(worlds))
	}
	for i, w := range worlds {
		if w.UnlockStars != parameter.WorldUnlockStars[i] {
			t.Errorf("World %d: expected threshold %d, got %d", w.ID, parameter.WorldUnlockStars[i], w.UnlockStars)
		}
		if len(w.Levels) != 5 || w.Levels[0] != i*5+1 {
			t.Errorf("World %d: expected levels %d-%d, got %v", w.ID, i*5+1, i*5+5, w.Levels)
		}
	}
}

func TestBuiltinLevelsLoadIntoField(t *testing.T) {
	c := Builtin()
	for _, id := range c.LevelIDs() {
		l, _ := c.Level(id)
		world := physics.NewWorld(parameter.GameWidth, parameter.GameHeight)
		f := brick.NewField(world)
		if err := f.Load(l.Bricks); err != nil {
			t.Errorf("Level %d %q: %v", id, l.Name, err)
		}
	}
}

func TestBuiltinBrickCounts(t *testing.T) {
	tests := []struct {
		id    int
		count int
	}{
		{1, 24},
		{2, 16},
		{3, 20},
		{6, 32},
		{7, 36},
		{9, 48},
		{19, 64},
		{20, 64},
	}

	c := Builtin()
	for _, tt := range tests {
		l, ok := c.Level(tt.id)
		if !ok {
			t.Fatalf("Level %d missing", tt.id)
		}
		if len(l.Bricks) != tt.count {
			t.Errorf("Level %d: expected %d bricks, got %d", tt.id, tt.count, len(l.Bricks))
		}
	}
}

func TestStackUsesSuccessiveRows(t *testing.T) {
	l, _ := Builtin().Level(9)

	first, last := l.Bricks[0], l.Bricks[len(l.Bricks)-1]
	if first.Row != 0 || first.Health != 3 {
		t.Errorf("Expected reinforced top row, got row %d health %d", first.Row, first.Health)
	}
	if last.Row != 5 || last.Type != brick.Standard {
		t.Errorf("Expected standard bottom row 5, got row %d %s", last.Row, last.Type)
	}
}

func TestLevelLookupIsolated(t *testing.T) {
	c := Builtin()
	l, _ := c.Level(1)
	l.Bricks[0].Type = brick.Metal

	again, _ := c.Level(1)
	if again.Bricks[0].Type != brick.Standard {
		t.Error("Expected catalog unaffected by caller mutation")
	}
}

func TestUnknownLevel(t *testing.T) {
	c := Builtin()
	if _, ok := c.Level(99); ok {
		t.Error("Expected level 99 missing")
	}
	if _, err := c.MustLevel(99); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel, got %v", err)
	}
}

func TestNavigation(t *testing.T) {
	c := Builtin()

	if next, ok := c.NextLevel(5); !ok || next != 6 {
		t.Errorf("Expected 6 after 5, got %d (%v)", next, ok)
	}
	if _, ok := c.NextLevel(20); ok {
		t.Error("Expected no level after 20")
	}
	if prev, ok := c.PreviousLevel(11); !ok || prev != 10 {
		t.Errorf("Expected 10 before 11, got %d (%v)", prev, ok)
	}
	if _, ok := c.PreviousLevel(1); ok {
		t.Error("Expected no level before 1")
	}

	w, ok := c.WorldOf(12)
	if !ok || w.ID != 3 {
		t.Errorf("Expected level 12 in world 3, got %d", w.ID)
	}
}

func TestNewCatalogRejects(t *testing.T) {
	grid := Grid(0, 1, 2, brick.Standard, 0)
	worlds := []World{{ID: 1, Name: "w"}}

	tests := []struct {
		name   string
		worlds []World
		levels []Config
		want   error
	}{
		{"duplicate level", worlds, []Config{
			{ID: 1, WorldID: 1, Bricks: grid, BallSpeed: 200, PaddleWidth: 100},
			{ID: 1, WorldID: 1, Bricks: grid, BallSpeed: 200, PaddleWidth: 100},
		}, ErrDuplicateLevel},
		{"duplicate world", []World{{ID: 1}, {ID: 1}}, nil, ErrDuplicateWorld},
		{"unknown world", worlds, []Config{
			{ID: 1, WorldID: 7, Bricks: grid, BallSpeed: 200, PaddleWidth: 100},
		}, ErrUnknownWorld},
		{"empty", worlds, []Config{
			{ID: 1, WorldID: 1, BallSpeed: 200, PaddleWidth: 100},
		}, ErrEmptyLevel},
		{"bad drop chance", worlds, []Config{
			{ID: 1, WorldID: 1, Bricks: grid, BallSpeed: 200, PaddleWidth: 100, DropChance: 2},
		}, ErrInvalidLevel},
	}

	for _, tt := range tests {
		if _, err := NewCatalog(tt.worlds, tt.levels); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

const samplePack = `
[[worlds]]
id = 5
name = "Bonus Round"
unlock_stars = 60
description = "Extra levels."

[[levels]]
id = 21
world = 5
name = "Sandwich"
ball_speed = 300.0
paddle_width = 80.0
drop_chance = 0.2

  [[levels.bands]]
  rows = 1
  type = "metal"

  [[levels.bands]]
  rows = 2
  type = "standard"

  [[levels.bricks]]
  row = 4
  col = 3
  type = "STRONG"
  health = 4
  points = 100
`

func TestParsePack(t *testing.T) {
	worlds, levels, err := ParsePack([]byte(samplePack))
	if err != nil {
		t.Fatalf("ParsePack failed: %v", err)
	}
	if len(worlds) != 1 || worlds[0].UnlockStars != 60 {
		t.Fatalf("Expected bonus world at 60 stars, got %+v", worlds)
	}
	if len(levels) != 1 {
		t.Fatalf("Expected 1 level, got %d", len(levels))
	}

	l := levels[0]
	if len(l.Bricks) != 3*parameter.BrickColumns+1 {
		t.Errorf("Expected %d bricks, got %d", 3*parameter.BrickColumns+1, len(l.Bricks))
	}
	if l.Bricks[0].Type != brick.Metal || l.Bricks[parameter.BrickColumns].Row != 1 {
		t.Error("Expected metal top band followed by standard rows")
	}
	extra := l.Bricks[len(l.Bricks)-1]
	if extra.Type != brick.Strong || extra.Health != 4 || extra.Points != 100 {
		t.Errorf("Expected custom strong brick, got %+v", extra)
	}

	merged, err := Builtin().Merge(worlds, levels)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if next, ok := merged.NextLevel(20); !ok || next != 21 {
		t.Errorf("Expected 21 after 20, got %d", next)
	}
}

func TestParsePackRejectsTypos(t *testing.T) {
	_, _, err := ParsePack([]byte("[[levels]]\nid = 1\nbal_speed = 10.0\n"))
	if !errors.Is(err, ErrUndecodedKeys) {
		t.Errorf("Expected ErrUndecodedKeys, got %v", err)
	}

	_, _, err = ParsePack([]byte("[[levels]]\nid = 1\n[[levels.bands]]\nrows = 1\ntype = \"glass\"\n"))
	if !errors.Is(err, brick.ErrUnknownType) {
		t.Errorf("Expected ErrUnknownType, got %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bonus.toml"), []byte(samplePack), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadDir(Builtin(), dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if c.Count() != 21 {
		t.Errorf("Expected 21 levels, got %d", c.Count())
	}

	// Loading the same pack twice collides on ids
	if err := os.WriteFile(filepath.Join(dir, "copy.toml"), []byte(samplePack), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(Builtin(), dir); !errors.Is(err, ErrDuplicateWorld) {
		t.Errorf("Expected ErrDuplicateWorld, got %v", err)
	}
}
