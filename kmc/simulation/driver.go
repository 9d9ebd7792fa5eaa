// Package simulation hosts the configuration, network, engine, and RNG for a
// single run, and drives the event loop until a simulated-time or
// wall-clock bound is reached. A single-threaded Driver matches the
// reference semantics exactly; RunConcurrent runs a fixed-size worker pool
// draining a one-deep pending-action queue for the same engine.
package simulation

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/arminms/hashkat-v2/internal/config"
	"github.com/arminms/hashkat-v2/internal/random"
	"github.com/arminms/hashkat-v2/kmc/action"
	"github.com/arminms/hashkat-v2/kmc/engine"
	"github.com/arminms/hashkat-v2/kmc/network"
)

// Driver owns the network, engine, and RNG for one simulation run and
// cooperatively stops the event loop at the configured simulated-time or
// wall-clock bound.
type Driver struct {
	cfg config.Config
	rng *random.Source
	net *network.Network
	eng *engine.Engine

	addAgent *action.AddAgent
	follow   *action.Follow

	log zerolog.Logger
}

// New constructs a Driver from cfg and seed, wiring an AddAgent and a Follow
// action per agent type's follow-rate schedule, sharing one Follow instance
// across all types (types differ by their per-type weights, not by needing
// separate actions).
func New(cfg config.Config, seed int64, log zerolog.Logger) *Driver {
	rng := random.New(seed)
	net := network.New(cfg.Analysis.MaxAgents)

	addAgent := action.NewAddAgent(net, cfg.AddRate, cfg.AgentTypes, rng)
	follow := action.NewFollow(net, cfg.Analysis.MaxAgents, cfg.Analysis, cfg.AddRate, cfg.FollowRanks, cfg.AgentTypes, rng)

	eng := engine.New([]action.Action{addAgent, follow}, rng, cfg.Analysis.UseRandomTimeIncrement)
	addAgent.PostInit(cfg.Analysis.InitialAgents, 0)

	return &Driver{cfg: cfg, rng: rng, net: net, eng: eng, addAgent: addAgent, follow: follow, log: log}
}

// Network returns the underlying social graph, for dump code run after Run
// returns.
func (d *Driver) Network() *network.Network { return d.net }

// Engine returns the underlying engine, for dump code that reports per-action
// statistics.
func (d *Driver) Engine() *engine.Engine { return d.eng }

// Follow returns the follow action, for dump code that reports per-model and
// per-bin statistics.
func (d *Driver) Follow() *action.Follow { return d.follow }

// Run executes the single-threaded event loop: while simulated time and
// wall-clock elapsed are both within bounds, sample and invoke one action.
// It returns the number of ticks executed.
func (d *Driver) Run() int64 {
	start := time.Now()
	maxRealTime := time.Duration(d.cfg.Analysis.MaxRealTime * float64(time.Minute))

	var ticks int64
	for d.eng.Time() < d.cfg.Analysis.MaxTime && time.Since(start) < maxRealTime {
		a, ok := d.eng.NextAction()
		if !ok {
			d.log.Warn().Msg("no action has positive weight, stopping early")
			break
		}
		a.Invoke(d.eng.Time())
		ticks++
	}

	d.log.Info().
		Int64("ticks", ticks).
		Float64("simulated_time", d.eng.Time()).
		Int64("events", d.eng.Events()).
		Int("agents", d.net.Size()).
		Msg("run complete")

	return ticks
}

// Reset clears the network and engine back to their post-init state and
// reseeds the population.
func (d *Driver) Reset() {
	d.net.Reset()
	d.eng.Reset()
	d.addAgent.PostInit(d.cfg.Analysis.InitialAgents, 0)
}
