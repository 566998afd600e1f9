package physics

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/intercept/vmath"
)

// Policy selects which of the two ballistic arcs reaching a point is used
type Policy uint8

const (
	// PolicyDirect is the flattest arc: lower angle, shortest flight time
	PolicyDirect Policy = iota
	// PolicyLob is the arcing shot: higher angle, longest flight time
	PolicyLob
)

// Policies lists every policy in declaration order
var Policies = []Policy{PolicyDirect, PolicyLob}

func (p Policy) String() string {
	switch p {
	case PolicyDirect:
		return "direct"
	case PolicyLob:
		return "lob"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy maps a config name to a Policy, "optimal" is accepted as an alias of direct
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "direct", "optimal":
		return PolicyDirect, nil
	case "lob":
		return PolicyLob, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", name)
	}
}

// Solution is a projectile aiming solution
type Solution struct {
	Angle float64 // Fire at this angle (radians above horizontal)
	Time  float64 // Projectile reaches the aimed point this many seconds after firing
}

// SolvePoint finds the launch angle and flight time reaching a static displacement (dx, dy) from the launch point
// Returns false when the displacement is out of reach at this speed and gravity, when the closed form degenerates
// (dx = 0 or zero gravity), when any input is non-finite, or when it would need negative flight time (dx < 0)
func SolvePoint(dx, dy, speed, gravity float64, policy Policy) (Solution, bool) {
	// Horizontal divisor, zero leaves the tangent undefined
	gx := gravity * dx
	if gx == 0 {
		return Solution{}, false
	}

	disc := speed*speed*speed*speed - gravity*(gravity*dx*dx+2*dy*speed*speed)
	if disc < 0 {
		return Solution{}, false
	}
	root := math.Sqrt(disc)
	v2 := speed * speed

	// Elimination of t from x(t), y(t) is quadratic in tan(angle), the policy picks the root
	var tan float64
	switch policy {
	case PolicyLob:
		tan = (v2 + root) / gx
	default:
		tan = (v2 - root) / gx
	}

	angle := math.Atan(tan)
	t := dx / (math.Cos(angle) * speed)
	if !vmath.IsFinite(angle) || !vmath.IsFinite(t) || t < 0 {
		return Solution{}, false
	}
	return Solution{Angle: angle, Time: t}, true
}
