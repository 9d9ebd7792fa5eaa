package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document mirrors Config's shape. The analysis.* and rates.add.* keys use
// the historical snake_case names (max_agents, use_barabasi, y_intercept,
// ...). The keys under analysis.model_weights, follow_ranks.weights and
// output carry no yaml tags, so they are the lowercased Go field names
// (twittersuggest, preferentialagent, binspacing, mainstatistics, ...), not
// the snake_case names. Each agents[] entry uses flattened keys (weights_add,
// weights_follow, rates_follow_function, rates_follow_value, ...) rather
// than nested weights.* and rates.follow.* sections.
type document struct {
	Analysis struct {
		MaxAgents              int                `yaml:"max_agents"`
		MaxTime                float64            `yaml:"max_time"`
		MaxRealTime            float64            `yaml:"max_real_time"`
		InitialAgents          int                `yaml:"initial_agents"`
		FollowModel            string             `yaml:"follow_model"`
		ModelWeights           FollowModelWeights `yaml:"model_weights"`
		UseBarabasi            bool               `yaml:"use_barabasi"`
		BarabasiConnections    int                `yaml:"barabasi_connections"`
		BarabasiExponent       float64            `yaml:"barabasi_exponent"`
		UseFollowback          bool               `yaml:"use_followback"`
		UseRandomTimeIncrement *bool              `yaml:"use_random_time_increment"`
		Threads                int                `yaml:"threads"`
	} `yaml:"analysis"`

	Rates struct {
		Add struct {
			Function   RateFunction `yaml:"function"`
			Value      float64      `yaml:"value"`
			YIntercept float64      `yaml:"y_intercept"`
			Slope      float64      `yaml:"slope"`
		} `yaml:"add"`
	} `yaml:"rates"`

	FollowRanks struct {
		Weights FollowRanks `yaml:"weights"`
	} `yaml:"follow_ranks"`

	Agents []struct {
		Name                  string       `yaml:"name"`
		WeightsAdd            float64      `yaml:"weights_add"`
		WeightsFollow         float64      `yaml:"weights_follow"`
		FollowbackProbability float64      `yaml:"followback_probability"`
		RatesFollowFunction   RateFunction `yaml:"rates_follow_function"`
		RatesFollowValue      float64      `yaml:"rates_follow_value"`
		RatesFollowYIntercept float64      `yaml:"rates_follow_y_intercept"`
		RatesFollowSlope      float64      `yaml:"rates_follow_slope"`
		HashtagFollowOptions  struct {
			CareAboutRegion   bool `yaml:"care_about_region"`
			CareAboutIdeology bool `yaml:"care_about_ideology"`
		} `yaml:"hashtag_follow_options"`
	} `yaml:"agents"`

	Output Output `yaml:"output"`
}

// Load reads a YAML configuration document from path and merges it over
// Default(outputFolder). Absent (or zero) analysis bounds, follow model,
// model_weights, Barabási connections and exponent,
// use_random_time_increment, and the rates.add and follow_ranks sections
// keep their default value. initial_agents, threads,
// use_barabasi and use_followback take the document's value, zero or false
// when absent. An agents list replaces the default agent type; in each entry,
// weights, followback probability and hashtag options take the entry's
// value (zero or false when absent). An output section with any non-zero
// field replaces all toggles; toggles it omits are false. This is the Go-native
// substitute for the out-of-scope XML
// configuration parser: same role (deliver a parsed configuration tree),
// different wire format.
func Load(path, outputFolder string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: reading config file %q", ErrConfigIO, path)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("%w: parsing config file %q: %v", ErrConfigParse, path, err)
	}

	cfg := Default(outputFolder)

	a := &cfg.Analysis
	if doc.Analysis.MaxAgents > 0 {
		a.MaxAgents = doc.Analysis.MaxAgents
	}
	if doc.Analysis.MaxTime > 0 {
		a.MaxTime = doc.Analysis.MaxTime
	}
	if doc.Analysis.MaxRealTime > 0 {
		a.MaxRealTime = doc.Analysis.MaxRealTime
	}
	a.InitialAgents = doc.Analysis.InitialAgents
	if doc.Analysis.FollowModel != "" {
		a.FollowModel = doc.Analysis.FollowModel
	}
	if (doc.Analysis.ModelWeights != FollowModelWeights{}) {
		a.ModelWeights = doc.Analysis.ModelWeights
	}
	a.UseBarabasi = doc.Analysis.UseBarabasi
	if doc.Analysis.BarabasiConnections > 0 {
		a.BarabasiConnections = doc.Analysis.BarabasiConnections
	}
	if doc.Analysis.BarabasiExponent > 0 {
		a.BarabasiExponent = doc.Analysis.BarabasiExponent
	}
	a.UseFollowback = doc.Analysis.UseFollowback
	if doc.Analysis.UseRandomTimeIncrement != nil {
		a.UseRandomTimeIncrement = *doc.Analysis.UseRandomTimeIncrement
	}
	a.Threads = doc.Analysis.Threads

	if doc.Rates.Add.Function != "" {
		cfg.AddRate = Rate{
			Function:   doc.Rates.Add.Function,
			Value:      doc.Rates.Add.Value,
			YIntercept: doc.Rates.Add.YIntercept,
			Slope:      doc.Rates.Add.Slope,
		}
	}

	if (doc.FollowRanks.Weights != FollowRanks{}) {
		cfg.FollowRanks = doc.FollowRanks.Weights
	}

	if len(doc.Agents) > 0 {
		cfg.AgentTypes = cfg.AgentTypes[:0]
		for _, da := range doc.Agents {
			at := DefaultAgentType(da.Name)
			at.AddWeight = da.WeightsAdd
			at.FollowWeight = da.WeightsFollow
			at.FollowbackProbability = da.FollowbackProbability
			at.CareAboutRegion = da.HashtagFollowOptions.CareAboutRegion
			at.CareAboutIdeology = da.HashtagFollowOptions.CareAboutIdeology
			if da.RatesFollowFunction != "" {
				at.FollowRate = Rate{
					Function:   da.RatesFollowFunction,
					Value:      da.RatesFollowValue,
					YIntercept: da.RatesFollowYIntercept,
					Slope:      da.RatesFollowSlope,
				}
			}
			cfg.AgentTypes = append(cfg.AgentTypes, at)
		}
	}

	if (doc.Output != Output{}) {
		cfg.Output = doc.Output
		cfg.Output.Folder = outputFolder
	}

	if err := cfg.NormalizeAndValidate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
