// Package config provides the configuration structures and validation for
// the simulation: analysis bounds, add/follow rate schedules, bin layout,
// per agent-type parameters, and output toggles. It includes preset
// configurations for common scenarios, plus an optional YAML file loader.
package config
