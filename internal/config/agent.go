package config

// AgentType is one configured entry from the repeated "agents" configuration
// section: the add/follow weights, the followback probability, the
// hashtag-model opt-in flags, and the per-type follow-rate schedule.
type AgentType struct {
	Name string

	AddWeight    float64 // weights.add
	FollowWeight float64 // weights.follow

	FollowbackProbability float64

	CareAboutRegion   bool
	CareAboutIdeology bool

	FollowRate Rate // rates.follow.*
}

// DefaultAgentType returns a single generic agent type with constant add and
// follow weights of 1, no followback, no hashtag filters.
func DefaultAgentType(name string) AgentType {
	return AgentType{
		Name:         name,
		AddWeight:    1,
		FollowWeight: 1,

		FollowbackProbability: 0,

		CareAboutRegion:   false,
		CareAboutIdeology: false,

		FollowRate: Rate{Function: RateConstant, Value: 1},
	}
}

// FollowbackAgentType returns an agent type with followback always enabled,
// matching end-to-end scenario S4.
func FollowbackAgentType(name string) AgentType {
	at := DefaultAgentType(name)
	at.FollowbackProbability = 1.0
	return at
}

// Validate checks an AgentType for internally-inconsistent values.
func (at *AgentType) Validate() error {
	var errs ValidationErrors

	if at.Name == "" {
		errs = append(errs, ValidationError{Field: "Name", Value: at.Name, Message: "must not be empty"})
	}
	if at.AddWeight < 0 {
		errs = append(errs, ValidationError{Field: "AddWeight", Value: at.AddWeight, Message: "cannot be negative"})
	}
	if at.FollowWeight < 0 {
		errs = append(errs, ValidationError{Field: "FollowWeight", Value: at.FollowWeight, Message: "cannot be negative"})
	}
	if at.FollowbackProbability < 0 || at.FollowbackProbability > 1 {
		errs = append(errs, ValidationError{Field: "FollowbackProbability", Value: at.FollowbackProbability, Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// normalize clamps correctable fields in place.
func (at *AgentType) normalize() {
	at.FollowbackProbability = clamp(at.FollowbackProbability, 0, 1)
	if at.AddWeight < 0 {
		at.AddWeight = 0
	}
	if at.FollowWeight < 0 {
		at.FollowWeight = 0
	}
}

// NormalizeAndValidate clamps correctable fields then validates what remains.
func (at *AgentType) NormalizeAndValidate() error {
	at.normalize()
	return at.Validate()
}
