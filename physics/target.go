package physics

import (
	"math"

	"github.com/lixenwraith/intercept/vmath"
)

// Target is a snapshot of the thing being aimed at
// Values are never mutated after construction, each scenario builds its own
type Target struct {
	Position vmath.Vec2F // Position at evaluation origin
	Velocity vmath.Vec2F // Constant drift per second
	Gravity  float64     // Target's own downward acceleration, independent of the weapon
	Radius   float64     // Periodic offset amplitude, 0 disables
}

// Predict extrapolates the target t seconds into the future under drift, freefall and periodic offset
// The offset phase is t itself in radians: a unit-rate circle of Radius around the drifting center
func (tg Target) Predict(t float64) vmath.Vec2F {
	sin, cos := math.Sincos(t)
	x := tg.Position.X + tg.Velocity.X*t + tg.Radius*cos
	y := tg.Position.Y + tg.Velocity.Y*t - tg.Gravity*t*t*0.5 + tg.Radius*sin
	return vmath.Vec2F{X: x, Y: y}
}

// Static reports whether the target never moves: no drift, no fall, no offset
func (tg Target) Static() bool {
	return tg.Velocity == (vmath.Vec2F{}) && tg.Gravity == 0 && tg.Radius == 0
}
