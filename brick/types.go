package brick

import (
	"strings"

	"github.com/lixenwraith/brick-breaker/parameter"
)

// Type tags a brick's behavior
type Type uint8

const (
	Standard Type = iota
	Strong
	Metal
	Moving
	typeCount
)

var typeNames = [typeCount]string{"STANDARD", "STRONG", "METAL", "MOVING"}

func (t Type) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return "UNKNOWN"
}

// ParseType resolves a type name, case-insensitive
func ParseType(s string) (Type, bool) {
	for i, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(i), true
		}
	}
	return 0, false
}

// HitFunc returns the brick state after taking damage
type HitFunc func(s State, damage int) State

// Behavior is the per-type rule set
type Behavior struct {
	Health int
	Points int
	// Colors are RGB values indexed by health-1, last entry repeats
	Colors []uint32
	OnHit  HitFunc
}

// State is the mutable part of a brick that hits act on
type State struct {
	Health    int
	MaxHealth int
	Destroyed bool
	// TimeScale multiplies oscillation speed for moving bricks
	TimeScale float64
}

func damage(s State, d int) State {
	s.Health -= d
	if s.Health <= 0 {
		s.Health = 0
		s.Destroyed = true
	}
	return s
}

func movingHit(s State, d int) State {
	s = damage(s, d)
	s.TimeScale = parameter.MovingBrickHitTimeScale
	return s
}

var behaviors = [typeCount]Behavior{
	Standard: {
		Health: parameter.HealthStandard,
		Points: parameter.PointsStandard,
		Colors: []uint32{0xff6b6b, 0xfeca57, 0x48dbfb, 0xff9ff3, 0x54a0ff},
		OnHit:  damage,
	},
	Strong: {
		Health: parameter.HealthStrong,
		Points: parameter.PointsStrong,
		Colors: []uint32{0xff6348, 0xff4757, 0xd63031},
		OnHit:  damage,
	},
	Metal: {
		Health: parameter.HealthMetal,
		Points: parameter.PointsMetal,
		Colors: []uint32{0x95a5a6, 0x7f8c8d, 0x636e72},
		OnHit:  damage,
	},
	Moving: {
		Health: parameter.HealthMoving,
		Points: parameter.PointsMoving,
		Colors: []uint32{0xf368e0, 0xee5a6f, 0xc44569},
		OnHit:  movingHit,
	},
}

// BehaviorOf returns the rule set for t; unknown types behave as Standard
func BehaviorOf(t Type) Behavior {
	if t >= typeCount {
		return behaviors[Standard]
	}
	return behaviors[t]
}

// ColorForHealth picks the palette entry for a brick built with the given health
func ColorForHealth(t Type, health int) uint32 {
	colors := BehaviorOf(t).Colors
	idx := min(max(health-1, 0), len(colors)-1)
	return colors[idx]
}

// Darken scales each RGB channel of c by factor in [0,1]
func Darken(c uint32, factor float64) uint32 {
	r := uint32(float64((c>>16)&0xff) * factor)
	g := uint32(float64((c>>8)&0xff) * factor)
	b := uint32(float64(c&0xff) * factor)
	return r<<16 | g<<8 | b
}
