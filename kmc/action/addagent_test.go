package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arminms/hashkat-v2/internal/config"
	"github.com/arminms/hashkat-v2/internal/random"
	"github.com/arminms/hashkat-v2/kmc/network"
)

func TestAddAgentPostInitSeedsInitialPopulation(t *testing.T) {
	net := network.New(5)
	types := []config.AgentType{config.DefaultAgentType("default")}
	rng := random.New(1)

	aa := NewAddAgent(net, config.DefaultAddRate(), types, rng)
	aa.PostInit(3, 0)

	assert.Equal(t, 3, net.Size())
}

func TestAddAgentInvokeGrowsUntilFull(t *testing.T) {
	net := network.New(2)
	types := []config.AgentType{config.DefaultAgentType("default")}
	rng := random.New(1)

	aa := NewAddAgent(net, config.DefaultAddRate(), types, rng)
	aa.PostInit(0, 0)

	var happened, finished int
	aa.OnHappened(func() { happened++ })
	aa.OnFinished(func() { finished++ })

	aa.Invoke(0)
	aa.Invoke(0)
	aa.Invoke(0) // network is now full, this attempt fails

	assert.Equal(t, 3, finished)
	assert.Equal(t, 2, happened)
	assert.Equal(t, int64(2), aa.Rate())
}

func TestAddAgentLinearSchedule(t *testing.T) {
	net := network.New(10)
	types := []config.AgentType{config.DefaultAgentType("default")}
	rng := random.New(1)

	rate := config.Rate{Function: config.RateLinear, YIntercept: 1, Slope: 0.5}
	aa := NewAddAgent(net, rate, types, rng)
	aa.PostInit(0, 0)

	aa.UpdateWeight(0)
	require.InDelta(t, 1.0, aa.Weight(), 1e-9)

	aa.UpdateWeight(float64(ApproxMonth) * 2)
	require.InDelta(t, 2.0, aa.Weight(), 1e-9)
}
