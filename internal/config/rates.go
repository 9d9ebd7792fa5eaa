package config

// RateFunction names the schedule shape used by a Rate.
type RateFunction string

const (
	RateConstant             RateFunction = "constant"
	RateLinear               RateFunction = "linear"
	RateTwitterFollow        RateFunction = "twitter_follow"
	RateQuarterTwitterFollow RateFunction = "quarter_twitter_follow"
)

// Rate describes a monthly weight schedule: a constant value, a linear
// function of the month index (y_intercept + m*slope), or one of two
// historical twitter-derived step schedules used by AgentType.FollowRate.
// The top-level add-rate schedule only ever uses Constant or Linear.
type Rate struct {
	Function   RateFunction
	Value      float64
	YIntercept float64
	Slope      float64
}

// DefaultAddRate returns the documented rates.add.* defaults.
func DefaultAddRate() Rate {
	return Rate{Function: RateConstant, Value: 1}
}

// FollowRanks configures the preferential-attachment bin layout used by the
// generic (non-Barabási) follow models.
type FollowRanks struct {
	BinSpacing float64
	Min        float64
	Max        float64
	Increment  float64
	Exponent   float64
}

// DefaultFollowRanks returns conservative bin bounds suitable for small
// populations; size Max to the expected maximum in-degree for larger runs.
func DefaultFollowRanks() FollowRanks {
	return FollowRanks{
		BinSpacing: 1,
		Min:        1,
		Max:        100,
		Increment:  1,
		Exponent:   1.0,
	}
}

// Output toggles which dump artifacts a simulation run writes.
type Output struct {
	MainStatistics                  bool
	CategoriesDistro                bool
	DegreeDistributionByFollowModel bool
	AgentStats                      bool
	DegreeDistributions             bool
	Visualize                       bool
	Folder                          string
}

// DefaultOutput returns the documented output.* defaults (all artifacts on).
func DefaultOutput(folder string) Output {
	return Output{
		MainStatistics:                   true,
		CategoriesDistro:                 true,
		DegreeDistributionByFollowModel:  true,
		AgentStats:                       true,
		DegreeDistributions:              true,
		Visualize:                        true,
		Folder:                           folder,
	}
}
