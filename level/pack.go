package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/brick-breaker/brick"
)

var ErrUndecodedKeys = errors.New("unrecognized keys in level pack")

// Pack is the TOML shape of a level pack file
type Pack struct {
	Worlds []PackWorld `toml:"worlds"`
	Levels []PackLevel `toml:"levels"`
}

type PackWorld struct {
	ID          int    `toml:"id"`
	Name        string `toml:"name"`
	UnlockStars int    `toml:"unlock_stars"`
	Description string `toml:"description"`
}

type PackLevel struct {
	ID          int         `toml:"id"`
	World       int         `toml:"world"`
	Name        string      `toml:"name"`
	BallSpeed   float64     `toml:"ball_speed"`
	PaddleWidth float64     `toml:"paddle_width"`
	DropChance  float64     `toml:"drop_chance"`
	Bands       []PackBand  `toml:"bands"`
	Bricks      []PackBrick `toml:"bricks"`
}

// PackBand is a run of full rows, stacked below the previous band
type PackBand struct {
	Rows   int    `toml:"rows"`
	Type   string `toml:"type"`
	Health int    `toml:"health"`
}

type PackBrick struct {
	Row    int    `toml:"row"`
	Col    int    `toml:"col"`
	Type   string `toml:"type"`
	Health int    `toml:"health"`
	Points int    `toml:"points"`
}

// ParsePack decodes a TOML level pack
// Unknown keys are rejected so typos do not silently produce default values
func ParsePack(data []byte) ([]World, []Config, error) {
	var p Pack
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return nil, nil, fmt.Errorf("decode level pack: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return nil, nil, fmt.Errorf("%w: %s", ErrUndecodedKeys, strings.Join(names, ", "))
	}

	worlds := make([]World, len(p.Worlds))
	for i, w := range p.Worlds {
		worlds[i] = World{ID: w.ID, Name: w.Name, UnlockStars: w.UnlockStars, Description: w.Description}
	}

	levels := make([]Config, 0, len(p.Levels))
	for _, pl := range p.Levels {
		l, err := pl.config()
		if err != nil {
			return nil, nil, err
		}
		levels = append(levels, l)
	}
	return worlds, levels, nil
}

func (pl PackLevel) config() (Config, error) {
	l := Config{
		ID:          pl.ID,
		WorldID:     pl.World,
		Name:        pl.Name,
		BallSpeed:   pl.BallSpeed,
		PaddleWidth: pl.PaddleWidth,
		DropChance:  pl.DropChance,
	}

	bands := make([]Band, len(pl.Bands))
	for i, b := range pl.Bands {
		t, ok := brick.ParseType(b.Type)
		if !ok {
			return Config{}, fmt.Errorf("level %d band %d type %q: %w", pl.ID, i, b.Type, brick.ErrUnknownType)
		}
		bands[i] = Band{Rows: b.Rows, Type: t, Health: b.Health}
	}
	l.Bricks = Stack(cols, bands...)

	for i, b := range pl.Bricks {
		t, ok := brick.ParseType(b.Type)
		if !ok {
			return Config{}, fmt.Errorf("level %d brick %d type %q: %w", pl.ID, i, b.Type, brick.ErrUnknownType)
		}
		l.Bricks = append(l.Bricks, brick.Placement{Row: b.Row, Col: b.Col, Type: t, Health: b.Health, Points: b.Points})
	}
	return l, nil
}

// LoadPackFile parses one level pack file
func LoadPackFile(path string) ([]World, []Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read level pack: %w", err)
	}
	w, l, err := ParsePack(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return w, l, nil
}

// LoadDir merges every *.toml pack in dir into base, in file name order
func LoadDir(base *Catalog, dir string) (*Catalog, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("scan level dir: %w", err)
	}
	sort.Strings(paths)

	cat := base
	for _, path := range paths {
		worlds, levels, err := LoadPackFile(path)
		if err != nil {
			return nil, err
		}
		if cat, err = cat.Merge(worlds, levels); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
	}
	return cat, nil
}
