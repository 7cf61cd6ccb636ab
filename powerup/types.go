package powerup

import (
	"strings"

	"github.com/lixenwraith/brick-breaker/parameter"
)

// Rand is the random source for drop rolls and type selection
type Rand interface {
	Float64() float64
}

// Type identifies a power-up
type Type uint8

const (
	MultiBall Type = iota
	ExtendPaddle
	SlowBall
	FastBall
	StickyPaddle
	ExtraLife
	typeCount
)

var typeNames = [typeCount]string{
	"MULTI_BALL", "EXTEND_PADDLE", "SLOW_BALL", "FAST_BALL", "STICKY_PADDLE", "EXTRA_LIFE",
}

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

// Types lists every power-up in selection order
func Types() []Type {
	out := make([]Type, typeCount)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// weights are relative selection weights in Types() order
var weights = [typeCount]float64{
	MultiBall:    parameter.WeightMultiBall,
	ExtendPaddle: parameter.WeightExtendPaddle,
	SlowBall:     parameter.WeightSlowBall,
	FastBall:     parameter.WeightFastBall,
	StickyPaddle: parameter.WeightStickyPaddle,
	ExtraLife:    parameter.WeightExtraLife,
}

// Weight returns t's selection weight
func Weight(t Type) float64 {
	if t >= typeCount {
		return 0
	}
	return weights[t]
}

// Timed reports whether t runs for a duration rather than applying once
func Timed(t Type) bool {
	return t != ExtraLife && t != MultiBall
}

// conflicts lists types that cannot be active together with t
func conflicts(t Type) []Type {
	switch t {
	case SlowBall:
		return []Type{FastBall}
	case FastBall:
		return []Type{SlowBall}
	}
	return nil
}

// Roll reports whether a destroyed brick drops a pickup
func Roll(rng Rand, chance float64) bool {
	return rng.Float64() < chance
}

// Pick draws a type proportionally to its weight
// The draw is walked down the weight list in order; the first type to bring it to zero or below wins
func Pick(rng Rand) Type {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return Type(i)
		}
	}
	return ExtendPaddle
}
