package parameter

// Intercept search
const (
	// DefaultMaxTime is the search horizon in seconds, target is unreachable beyond it
	DefaultMaxTime = 5.5

	// DefaultTimeStep is the candidate time sweep resolution in seconds
	DefaultTimeStep = 0.01

	// MaxCandidates caps MaxTime/TimeStep so a misconfigured sweep cannot run unbounded
	MaxCandidates = 10_000_000
)

// Batch execution
const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) when passed to batch runners
	DefaultWorkers = 0
)
