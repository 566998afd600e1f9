package vmath

import "math"

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// AllFinite reports whether every value is finite
func AllFinite(vals ...float64) bool {
	for _, v := range vals {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

// V2FFinite reports whether both components are finite
func V2FFinite(v Vec2F) bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}
