package intercept

import (
	"fmt"

	"github.com/lixenwraith/intercept/physics"
	"github.com/lixenwraith/intercept/vmath"
)

// Outcome classifies how a sweep ended
type Outcome uint8

const (
	// OutOfRange is the zero value so an unrun sweep never reads as a hit
	OutOfRange Outcome = iota
	HorizonExhausted
	Intercepted
)

func (o Outcome) String() string {
	switch o {
	case Intercepted:
		return "intercepted"
	case OutOfRange:
		return "out_of_range"
	case HorizonExhausted:
		return "horizon_exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Report is the diagnostic result of one sweep
type Report struct {
	Outcome  Outcome
	Solution physics.Solution // Valid only when Outcome is Intercepted
	Aim      vmath.Vec2F      // Predicted target position the solution was computed for

	CandidateTime float64 // Accepted candidate, or the last one examined
	Candidates    int     // Candidate times examined
	Reachable     int     // Candidates with a geometric solution
}

// OK reports whether the sweep produced a solution
func (r Report) OK() bool {
	return r.Outcome == Intercepted
}

// Err maps the outcome onto the sentinel errors, nil on intercept
func (r Report) Err() error {
	switch r.Outcome {
	case Intercepted:
		return nil
	case HorizonExhausted:
		return ErrHorizonExhausted
	default:
		return ErrOutOfRange
	}
}
