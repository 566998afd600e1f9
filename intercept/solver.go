package intercept

//go:generate go tool mockgen -source=solver.go -destination=mocks/mock_motion.go -package=mocks

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/intercept/parameter"
	"github.com/lixenwraith/intercept/physics"
	"github.com/lixenwraith/intercept/vmath"
)

var (
	// ErrInvalidConfig is returned when the search horizon or step cannot drive a finite sweep
	ErrInvalidConfig = errors.New("invalid intercept config")
	// ErrUnreachable is the single failure kind: no consistent intercept under the policy within the horizon
	ErrUnreachable = errors.New("target unreachable")
	// ErrOutOfRange means no examined candidate position was geometrically reachable
	ErrOutOfRange = fmt.Errorf("%w: out of range at every candidate time", ErrUnreachable)
	// ErrHorizonExhausted means some candidates were reachable but none had a consistent flight time
	ErrHorizonExhausted = fmt.Errorf("%w: horizon exhausted", ErrUnreachable)
)

// Motion predicts where the target will be t seconds from now
// physics.Target is the standard implementation
type Motion interface {
	Predict(t float64) vmath.Vec2F
}

// Config bounds the candidate time sweep
type Config struct {
	MaxTime  float64 `toml:"max_time"`  // Horizon in seconds, candidates are strictly below it
	TimeStep float64 `toml:"time_step"` // Sweep resolution in seconds
}

// DefaultConfig returns the stock 5.5s horizon at 10ms resolution
func DefaultConfig() Config {
	return Config{
		MaxTime:  parameter.DefaultMaxTime,
		TimeStep: parameter.DefaultTimeStep,
	}
}

// Validate rejects configs that would sweep forever or not at all in a meaningful way
func (c Config) Validate() error {
	if !vmath.IsFinite(c.MaxTime) || c.MaxTime < 0 {
		return fmt.Errorf("%w: max_time %v must be finite and non-negative", ErrInvalidConfig, c.MaxTime)
	}
	if !vmath.IsFinite(c.TimeStep) || c.TimeStep <= 0 {
		return fmt.Errorf("%w: time_step %v must be finite and positive", ErrInvalidConfig, c.TimeStep)
	}
	if c.MaxTime/c.TimeStep > parameter.MaxCandidates {
		return fmt.Errorf("%w: %v/%v exceeds %d candidates", ErrInvalidConfig, c.MaxTime, c.TimeStep, parameter.MaxCandidates)
	}
	return nil
}

// Solver searches for the first candidate time at which a shot fired now is consistent with the target's motion
// Stateless between calls, safe for concurrent use
type Solver struct {
	weapon physics.Weapon
	motion Motion
	policy physics.Policy
	cfg    Config
}

// New creates a solver for weapon against motion using policy and cfg
func New(weapon physics.Weapon, motion Motion, policy physics.Policy, cfg Config) (*Solver, error) {
	if motion == nil {
		return nil, fmt.Errorf("%w: nil motion", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{
		weapon: weapon,
		motion: motion,
		policy: policy,
		cfg:    cfg,
	}, nil
}

// NewDirect returns a default-config solver preferring the lowest flight time
func NewDirect(weapon physics.Weapon, target physics.Target) *Solver {
	return &Solver{weapon: weapon, motion: target, policy: physics.PolicyDirect, cfg: DefaultConfig()}
}

// NewLob returns a default-config solver preferring the highest flight time
func NewLob(weapon physics.Weapon, target physics.Target) *Solver {
	return &Solver{weapon: weapon, motion: target, policy: physics.PolicyLob, cfg: DefaultConfig()}
}

func (s *Solver) Weapon() physics.Weapon { return s.weapon }
func (s *Solver) Policy() physics.Policy { return s.policy }
func (s *Solver) Config() Config         { return s.cfg }

// Solve returns the firing solution, false when the target cannot be intercepted within the horizon
func (s *Solver) Solve() (physics.Solution, bool) {
	r := s.Diagnose()
	return r.Solution, r.Outcome == Intercepted
}

// Diagnose runs the forward sweep and reports how it ended
// Candidates advance by TimeStep from 0 while below MaxTime; the first one whose required flight time is
// shorter than the candidate itself is accepted as is, with no refinement between steps
func (s *Solver) Diagnose() Report {
	var r Report
	for t := 0.0; t < s.cfg.MaxTime; t += s.cfg.TimeStep {
		r.Candidates++
		r.CandidateTime = t

		pos := s.motion.Predict(t)
		sol, ok := s.weapon.Solve(pos.X, pos.Y, s.policy)
		if !ok {
			// Target may move back into reach later
			continue
		}
		r.Reachable++

		if sol.Time < t {
			r.Outcome = Intercepted
			r.Solution = sol
			r.Aim = pos
			return r
		}
	}

	if r.Reachable == 0 {
		r.Outcome = OutOfRange
	} else {
		r.Outcome = HorizonExhausted
	}
	return r
}
