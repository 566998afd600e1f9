package physics

import (
	"math"

	"github.com/lixenwraith/intercept/vmath"
)

// Weapon holds projectile launch stats
type Weapon struct {
	Speed   float64 // Muzzle speed of the projectile when fired
	Gravity float64 // Downward acceleration acting on the projectile
}

// Fire simulates a shot at angle radians above horizontal and returns the projectile position t seconds later
func (w Weapon) Fire(angle, t float64) vmath.Vec2F {
	vel := w.Velocity(angle)
	return vmath.Vec2F{
		X: vel.X * t,
		Y: vel.Y*t - 0.5*w.Gravity*t*t,
	}
}

// Velocity returns the launch velocity vector for angle
func (w Weapon) Velocity(angle float64) vmath.Vec2F {
	return vmath.Vec2F{X: math.Cos(angle) * w.Speed, Y: math.Sin(angle) * w.Speed}
}

// MaxRange returns the farthest reachable horizontal distance at launch height (45° shot)
// Non-positive gravity never brings the projectile back down, reported as +Inf
func (w Weapon) MaxRange() float64 {
	if w.Gravity <= 0 {
		return math.Inf(1)
	}
	return w.Speed * w.Speed / w.Gravity
}

// Solve returns the static-point solution for displacement (dx, dy) under policy
func (w Weapon) Solve(dx, dy float64, policy Policy) (Solution, bool) {
	return SolvePoint(dx, dy, w.Speed, w.Gravity, policy)
}
