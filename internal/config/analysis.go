package config

import "fmt"

// Analysis holds the top-level bounds and feature toggles for a simulation
// run. Construct via DefaultAnalysis or SmallAnalysis rather than the zero
// value.
type Analysis struct {
	MaxAgents   int     // population ceiling; grow() refuses beyond this
	MaxTime     float64 // simulated minutes; run() stops at or after this
	MaxRealTime float64 // wall-clock minutes; run() stops at or after this

	InitialAgents int // agents seeded during post_init, before the event loop starts

	FollowModel  string             // "random", "twitter_suggest", "agent", "preferential_agent", "hashtag", "twitter"
	ModelWeights FollowModelWeights // mixture weights used when FollowModel == "twitter"

	UseBarabasi         bool
	BarabasiConnections int // immediate follow attempts performed when a new agent is grown, Barabási mode only
	BarabasiExponent    float64

	UseFollowback bool

	UseRandomTimeIncrement bool // exponential (true) vs deterministic 1/total (false) time advance

	Threads int // worker count for the concurrent driver; 0 means unset (AutoScaleThreads fills it in; RunConcurrent falls back to 1)
}

// FollowModelWeights is the per-model mixture used by the "twitter" composite
// follow model (model index 0..4).
type FollowModelWeights struct {
	Random            float64
	TwitterSuggest    float64
	Agent             float64
	PreferentialAgent float64
	Hashtag           float64
}

// DefaultAnalysis returns the documented defaults for the analysis.* keys.
func DefaultAnalysis() Analysis {
	return Analysis{
		MaxAgents:   1000,
		MaxTime:     1000,
		MaxRealTime: 1,

		InitialAgents: 0,

		FollowModel: "twitter",
		ModelWeights: FollowModelWeights{
			Random:            1,
			TwitterSuggest:    1,
			Agent:             1,
			PreferentialAgent: 1,
			Hashtag:           1,
		},

		UseBarabasi:         false,
		BarabasiConnections: 1,
		BarabasiExponent:    1.0,

		UseFollowback: false,

		UseRandomTimeIncrement: true,

		Threads: 1,
	}
}

// SmallAnalysis returns a configuration sized for fast, deterministic
// scenarios: a small fixed population, uniform-random follow, no growth,
// deterministic time advance.
func SmallAnalysis() Analysis {
	a := DefaultAnalysis()
	a.MaxAgents = 10
	a.InitialAgents = 10
	a.FollowModel = "random"
	a.UseRandomTimeIncrement = false
	return a
}

// AutoScaleThreads sets Threads to numCPU when Threads is still unset.
func (a *Analysis) AutoScaleThreads(numCPU int) {
	if a.Threads <= 0 {
		a.Threads = numCPU
	}
}

// Validate checks Analysis for internally-inconsistent values.
func (a *Analysis) Validate() error {
	var errs ValidationErrors

	if a.MaxAgents <= 0 {
		errs = append(errs, ValidationError{Field: "MaxAgents", Value: a.MaxAgents, Message: "must be positive"})
	}
	if a.InitialAgents < 0 {
		errs = append(errs, ValidationError{Field: "InitialAgents", Value: a.InitialAgents, Message: "cannot be negative"})
	}
	if a.InitialAgents > a.MaxAgents {
		errs = append(errs, ValidationError{
			Field: "InitialAgents", Value: fmt.Sprintf("InitialAgents=%d, MaxAgents=%d", a.InitialAgents, a.MaxAgents),
			Message: "cannot exceed MaxAgents",
		})
	}
	if a.MaxTime <= 0 {
		errs = append(errs, ValidationError{Field: "MaxTime", Value: a.MaxTime, Message: "must be positive"})
	}
	if a.MaxRealTime <= 0 {
		errs = append(errs, ValidationError{Field: "MaxRealTime", Value: a.MaxRealTime, Message: "must be positive"})
	}
	if a.BarabasiConnections < 0 {
		errs = append(errs, ValidationError{Field: "BarabasiConnections", Value: a.BarabasiConnections, Message: "cannot be negative"})
	}
	if a.Threads < 0 {
		errs = append(errs, ValidationError{Field: "Threads", Value: a.Threads, Message: "cannot be negative"})
	}

	switch a.FollowModel {
	case "random", "twitter_suggest", "agent", "preferential_agent", "hashtag", "twitter":
	default:
		errs = append(errs, ValidationError{Field: "FollowModel", Value: a.FollowModel, Message: "unrecognized follow model"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizeAndValidate clamps correctable fields then validates what remains.
func (a *Analysis) NormalizeAndValidate() error {
	a.normalize()
	if err := a.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func (a *Analysis) normalize() {
	if a.InitialAgents < 0 {
		a.InitialAgents = 0
	}
	if a.InitialAgents > a.MaxAgents {
		a.InitialAgents = a.MaxAgents
	}
	if a.BarabasiConnections < 0 {
		a.BarabasiConnections = 0
	}
	if a.Threads < 0 {
		a.Threads = 0
	}
}

// clamp returns value clamped between lo and hi.
func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
