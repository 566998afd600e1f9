package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/lixenwraith/intercept/intercept"
	"github.com/lixenwraith/intercept/physics"
	"github.com/lixenwraith/intercept/vmath"
)

// ErrInvalidPlan wraps every decode and validation failure
var ErrInvalidPlan = errors.New("invalid scenario plan")

// Namespace seeds name-derived scenario IDs so the same name always maps to the same ID
var Namespace = uuid.MustParse("6f1c3e52-4a0b-5d8e-9c71-2b9e0d4f8a13")

// Scenario is one weapon/target pairing solved under each listed policy
type Scenario struct {
	ID       uuid.UUID
	Name     string
	Weapon   physics.Weapon
	Target   physics.Target
	Policies []physics.Policy
}

// Plan is a decoded scenario file
type Plan struct {
	Search    intercept.Config
	Scenarios []Scenario
}

// On-disk layout
type planFile struct {
	Search    searchFile     `toml:"search"`
	Scenarios []scenarioFile `toml:"scenario"`
}

type searchFile struct {
	MaxTime  *float64 `toml:"max_time"`
	TimeStep *float64 `toml:"time_step"`
}

type scenarioFile struct {
	ID       string     `toml:"id"`
	Name     string     `toml:"name"`
	Policies []string   `toml:"policies"`
	Weapon   weaponFile `toml:"weapon"`
	Target   targetFile `toml:"target"`
}

type weaponFile struct {
	Speed   float64 `toml:"speed"`
	Gravity float64 `toml:"gravity"`
}

type targetFile struct {
	Position [2]float64 `toml:"position"`
	Velocity [2]float64 `toml:"velocity"`
	Gravity  float64    `toml:"gravity"`
	Radius   float64    `toml:"radius"`
}

// Load reads and validates a plan file
func Load(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	plan, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

// Decode parses a TOML plan, rejecting unknown keys and invalid values
func Decode(r io.Reader) (*Plan, error) {
	var pf planFile
	md, err := toml.NewDecoder(r).Decode(&pf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidPlan, strings.Join(keys, ", "))
	}
	return pf.build()
}

func (pf *planFile) build() (*Plan, error) {
	plan := &Plan{Search: intercept.DefaultConfig()}
	if pf.Search.MaxTime != nil {
		plan.Search.MaxTime = *pf.Search.MaxTime
	}
	if pf.Search.TimeStep != nil {
		plan.Search.TimeStep = *pf.Search.TimeStep
	}
	if err := plan.Search.Validate(); err != nil {
		return nil, fmt.Errorf("%w: search: %v", ErrInvalidPlan, err)
	}

	if len(pf.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", ErrInvalidPlan)
	}

	seen := make(map[uuid.UUID]string, len(pf.Scenarios))
	for i := range pf.Scenarios {
		sc, err := pf.Scenarios[i].build()
		if err != nil {
			return nil, fmt.Errorf("%w: scenario %d: %v", ErrInvalidPlan, i, err)
		}
		if prev, ok := seen[sc.ID]; ok {
			return nil, fmt.Errorf("%w: scenario %q: id %s already used by %q", ErrInvalidPlan, sc.Name, sc.ID, prev)
		}
		seen[sc.ID] = sc.Name
		plan.Scenarios = append(plan.Scenarios, sc)
	}
	return plan, nil
}

func (sf *scenarioFile) build() (Scenario, error) {
	name := strings.TrimSpace(sf.Name)
	if name == "" {
		return Scenario{}, errors.New("name is required")
	}

	sc := Scenario{
		Name: name,
		Weapon: physics.Weapon{
			Speed:   sf.Weapon.Speed,
			Gravity: sf.Weapon.Gravity,
		},
		Target: physics.Target{
			Position: vmath.V2F(sf.Target.Position[0], sf.Target.Position[1]),
			Velocity: vmath.V2F(sf.Target.Velocity[0], sf.Target.Velocity[1]),
			Gravity:  sf.Target.Gravity,
			Radius:   sf.Target.Radius,
		},
	}

	if sf.ID != "" {
		id, err := uuid.Parse(sf.ID)
		if err != nil {
			return Scenario{}, fmt.Errorf("%q: id: %v", name, err)
		}
		sc.ID = id
	} else {
		sc.ID = uuid.NewSHA1(Namespace, []byte(name))
	}

	if err := validateWeapon(sc.Weapon); err != nil {
		return Scenario{}, fmt.Errorf("%q: weapon: %v", name, err)
	}
	if err := validateTarget(sc.Target); err != nil {
		return Scenario{}, fmt.Errorf("%q: target: %v", name, err)
	}

	if len(sf.Policies) == 0 {
		sc.Policies = append([]physics.Policy(nil), physics.Policies...)
		return sc, nil
	}
	for _, p := range sf.Policies {
		policy, err := physics.ParsePolicy(p)
		if err != nil {
			return Scenario{}, fmt.Errorf("%q: %v", name, err)
		}
		sc.Policies = append(sc.Policies, policy)
	}
	return sc, nil
}

func validateWeapon(w physics.Weapon) error {
	if !vmath.IsFinite(w.Speed) || w.Speed <= 0 {
		return fmt.Errorf("speed %v must be finite and positive", w.Speed)
	}
	if !vmath.IsFinite(w.Gravity) {
		return fmt.Errorf("gravity %v must be finite", w.Gravity)
	}
	return nil
}

func validateTarget(tg physics.Target) error {
	if !vmath.V2FFinite(tg.Position) || !vmath.V2FFinite(tg.Velocity) {
		return errors.New("position and velocity must be finite")
	}
	if !vmath.IsFinite(tg.Gravity) {
		return fmt.Errorf("gravity %v must be finite", tg.Gravity)
	}
	if !vmath.IsFinite(tg.Radius) || tg.Radius < 0 {
		return fmt.Errorf("radius %v must be finite and non-negative", tg.Radius)
	}
	return nil
}
