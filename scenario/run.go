package scenario

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lixenwraith/intercept/intercept"
	"github.com/lixenwraith/intercept/physics"
)

//go:embed default.toml
var defaultPlan []byte

// Default returns the built-in stationary, moving and orbiting scenarios
func Default() *Plan {
	plan, err := Decode(bytes.NewReader(defaultPlan))
	if err != nil {
		panic(fmt.Sprintf("scenario: embedded default plan: %v", err))
	}
	return plan
}

// Result is the outcome of one scenario under one policy
type Result struct {
	ScenarioID uuid.UUID
	Name       string
	Policy     physics.Policy
	Weapon     physics.Weapon
	Report     intercept.Report
}

// Run solves every scenario under each of its policies, results follow plan order then policy order
func Run(ctx context.Context, plan *Plan, workers int) ([]Result, error) {
	var (
		solvers []*intercept.Solver
		results []Result
	)
	for _, sc := range plan.Scenarios {
		for _, policy := range sc.Policies {
			s, err := intercept.New(sc.Weapon, sc.Target, policy, plan.Search)
			if err != nil {
				return nil, fmt.Errorf("scenario %q %s: %w", sc.Name, policy, err)
			}
			solvers = append(solvers, s)
			results = append(results, Result{
				ScenarioID: sc.ID,
				Name:       sc.Name,
				Policy:     policy,
				Weapon:     sc.Weapon,
			})
		}
	}

	reports, err := intercept.SolveBatch(ctx, solvers, workers)
	if err != nil {
		return nil, err
	}

	for i := range results {
		results[i].Report = reports[i]
		r := reports[i]
		slog.DebugContext(ctx, "scenario solved",
			"id", results[i].ScenarioID,
			"name", results[i].Name,
			"policy", results[i].Policy,
			"outcome", r.Outcome,
			"candidates", r.Candidates,
			"reachable", r.Reachable,
		)
	}
	return results, nil
}
