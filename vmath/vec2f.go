package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector for ballistic calculations
// X is horizontal distance from the launch point, Y is height (up is positive)
type Vec2F struct {
	X, Y float64
}

func V2F(x, y float64) Vec2F {
	return Vec2F{X: x, Y: y}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FDot(a, b Vec2F) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2FDist returns Euclidean distance between two points
func V2FDist(a, b Vec2F) float64 {
	return V2FMag(V2FSub(a, b))
}

// V2FNear reports whether every component of a and b differs by at most tol
func V2FNear(a, b Vec2F, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// V2FPolar returns the vector of length mag at angle radians from +X
func V2FPolar(angle, mag float64) Vec2F {
	sin, cos := math.Sincos(angle)
	return Vec2F{cos * mag, sin * mag}
}
