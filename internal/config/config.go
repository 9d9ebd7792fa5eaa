package config

// Config is the fully assembled configuration tree for one simulation run:
// the analysis bounds, the add-rate schedule, the bin layout, the list of
// configured agent types (iterated to discover the repeated "agents"
// entries), and the output toggles.
type Config struct {
	Analysis    Analysis
	AddRate     Rate
	FollowRanks FollowRanks
	AgentTypes  []AgentType
	Output      Output
}

// Default returns a single-type, default-weighted configuration suitable as
// a starting point for a config file or for ad-hoc runs.
func Default(outputFolder string) Config {
	return Config{
		Analysis:    DefaultAnalysis(),
		AddRate:     DefaultAddRate(),
		FollowRanks: DefaultFollowRanks(),
		AgentTypes:  []AgentType{DefaultAgentType("default")},
		Output:      DefaultOutput(outputFolder),
	}
}

// Small returns a configuration close to end-to-end scenario S2: a fixed
// population of 10 agents all seeded up front, a single agent type,
// uniform-random follow, deterministic time advance. Unlike S2 it keeps a
// constant add rate of 1, so add events are still sampled but find the
// network full.
func Small(outputFolder string) Config {
	return Config{
		Analysis:    SmallAnalysis(),
		AddRate:     Rate{Function: RateConstant, Value: 1},
		FollowRanks: DefaultFollowRanks(),
		AgentTypes:  []AgentType{DefaultAgentType("default")},
		Output:      DefaultOutput(outputFolder),
	}
}

// Validate validates every section and joins the errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if err := c.Analysis.Validate(); err != nil {
		if ve, ok := err.(ValidationErrors); ok {
			errs = append(errs, ve...)
		}
	}
	if len(c.AgentTypes) == 0 {
		errs = append(errs, ValidationError{Field: "AgentTypes", Value: 0, Message: "at least one agent type is required"})
	}
	for i := range c.AgentTypes {
		if err := c.AgentTypes[i].Validate(); err != nil {
			if ve, ok := err.(ValidationErrors); ok {
				errs = append(errs, ve...)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizeAndValidate normalizes every section in place, then validates.
func (c *Config) NormalizeAndValidate() error {
	c.Analysis.normalize()
	for i := range c.AgentTypes {
		c.AgentTypes[i].normalize()
	}
	return c.Validate()
}
