package level

import (
	"fmt"
	"slices"
	"sort"
)

// Catalog indexes worlds and levels by id
type Catalog struct {
	worlds []World
	levels map[int]Config
	order  []int
}

// NewCatalog validates and indexes worlds and levels
// Each world's level list is rebuilt from the levels that name it, in id order
func NewCatalog(worlds []World, levels []Config) (*Catalog, error) {
	c := &Catalog{levels: make(map[int]Config, len(levels))}

	seen := make(map[int]int, len(worlds))
	for _, w := range worlds {
		if _, dup := seen[w.ID]; dup {
			return nil, fmt.Errorf("world %d: %w", w.ID, ErrDuplicateWorld)
		}
		w.Levels = nil
		seen[w.ID] = len(c.worlds)
		c.worlds = append(c.worlds, w)
	}
	sort.SliceStable(c.worlds, func(i, j int) bool { return c.worlds[i].ID < c.worlds[j].ID })
	for i, w := range c.worlds {
		seen[w.ID] = i
	}

	for _, l := range levels {
		if err := validate(l); err != nil {
			return nil, err
		}
		if _, dup := c.levels[l.ID]; dup {
			return nil, fmt.Errorf("level %d: %w", l.ID, ErrDuplicateLevel)
		}
		wi, ok := seen[l.WorldID]
		if !ok {
			return nil, fmt.Errorf("level %d world %d: %w", l.ID, l.WorldID, ErrUnknownWorld)
		}
		l.Bricks = slices.Clone(l.Bricks)
		c.levels[l.ID] = l
		c.order = append(c.order, l.ID)
		c.worlds[wi].Levels = append(c.worlds[wi].Levels, l.ID)
	}

	sort.Ints(c.order)
	for i := range c.worlds {
		sort.Ints(c.worlds[i].Levels)
	}
	return c, nil
}

func validate(l Config) error {
	if l.ID <= 0 {
		return fmt.Errorf("level %d: %w", l.ID, ErrInvalidLevel)
	}
	if len(l.Bricks) == 0 {
		return fmt.Errorf("level %d: %w", l.ID, ErrEmptyLevel)
	}
	if l.BallSpeed <= 0 || l.PaddleWidth <= 0 || l.DropChance < 0 || l.DropChance > 1 {
		return fmt.Errorf("level %d speed %.0f width %.0f drop %.2f: %w",
			l.ID, l.BallSpeed, l.PaddleWidth, l.DropChance, ErrInvalidLevel)
	}
	return nil
}

// Level returns the level with id
func (c *Catalog) Level(id int) (Config, bool) {
	l, ok := c.levels[id]
	if !ok {
		return Config{}, false
	}
	l.Bricks = slices.Clone(l.Bricks)
	return l, true
}

// MustLevel returns the level with id or ErrUnknownLevel
func (c *Catalog) MustLevel(id int) (Config, error) {
	l, ok := c.Level(id)
	if !ok {
		return Config{}, fmt.Errorf("level %d: %w", id, ErrUnknownLevel)
	}
	return l, nil
}

// LevelIDs returns every level id ascending
func (c *Catalog) LevelIDs() []int {
	return slices.Clone(c.order)
}

// Count returns the number of levels
func (c *Catalog) Count() int { return len(c.order) }

// Worlds returns every world ascending by id
func (c *Catalog) Worlds() []World {
	out := make([]World, len(c.worlds))
	for i, w := range c.worlds {
		w.Levels = slices.Clone(w.Levels)
		out[i] = w
	}
	return out
}

// World returns the world with id
func (c *Catalog) World(id int) (World, bool) {
	for _, w := range c.worlds {
		if w.ID == id {
			w.Levels = slices.Clone(w.Levels)
			return w, true
		}
	}
	return World{}, false
}

// WorldOf returns the world containing level id
func (c *Catalog) WorldOf(levelID int) (World, bool) {
	l, ok := c.levels[levelID]
	if !ok {
		return World{}, false
	}
	return c.World(l.WorldID)
}

// NextLevel returns the id following levelID, false at the end of the catalog
func (c *Catalog) NextLevel(levelID int) (int, bool) {
	i := sort.SearchInts(c.order, levelID)
	if i >= len(c.order) || c.order[i] != levelID || i+1 == len(c.order) {
		return 0, false
	}
	return c.order[i+1], true
}

// PreviousLevel returns the id preceding levelID, false for the first level
func (c *Catalog) PreviousLevel(levelID int) (int, bool) {
	i := sort.SearchInts(c.order, levelID)
	if i >= len(c.order) || c.order[i] != levelID || i == 0 {
		return 0, false
	}
	return c.order[i-1], true
}

// Merge returns a catalog holding c's content plus extra worlds and levels
// Ids already in c are rejected
func (c *Catalog) Merge(worlds []World, levels []Config) (*Catalog, error) {
	allWorlds := append(c.Worlds(), worlds...)
	allLevels := make([]Config, 0, len(c.order)+len(levels))
	for _, id := range c.order {
		allLevels = append(allLevels, c.levels[id])
	}
	allLevels = append(allLevels, levels...)
	return NewCatalog(allWorlds, allLevels)
}
