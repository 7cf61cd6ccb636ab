package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in screen space (Y grows downward)
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2Normalize returns the unit vector, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Reflect returns v mirrored about a surface with unit normal n
// v' = v - 2 * dot(v, n) * n
func V2Reflect(v, n Vec2) Vec2 {
	d2 := 2 * V2Dot(v, n)
	return Vec2{v.X - d2*n.X, v.Y - d2*n.Y}
}

// V2FromAngle builds a vector of length mag pointing at deg degrees
// 0° is +X, -90° is straight up on screen
func V2FromAngle(deg, mag float64) Vec2 {
	sin, cos := math.Sincos(DegToRad(deg))
	return Vec2{cos * mag, sin * mag}
}

// V2Angle returns the direction of v in degrees, range (-180, 180]
func V2Angle(v Vec2) float64 {
	return RadToDeg(math.Atan2(v.Y, v.X))
}

// V2WithMag returns v rescaled to length mag, zero vector stays zero
func V2WithMag(v Vec2, mag float64) Vec2 {
	return V2Scale(V2Normalize(v), mag)
}

// V2IsFinite reports whether both components are finite numbers
func V2IsFinite(v Vec2) bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}
