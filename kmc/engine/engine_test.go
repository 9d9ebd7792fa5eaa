package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arminms/hashkat-v2/internal/config"
	"github.com/arminms/hashkat-v2/internal/random"
	"github.com/arminms/hashkat-v2/kmc/action"
	"github.com/arminms/hashkat-v2/kmc/network"
)

func newTestEngine(t *testing.T, maxAgents int, randomTime bool) (*network.Network, *action.AddAgent, *Engine) {
	t.Helper()
	net := network.New(maxAgents)
	types := []config.AgentType{config.DefaultAgentType("default")}
	rng := random.New(11)

	addAgent := action.NewAddAgent(net, config.DefaultAddRate(), types, rng)
	follow := action.NewFollow(net, maxAgents, config.SmallAnalysis(), config.DefaultAddRate(), config.DefaultFollowRanks(), types, rng)

	e := New([]action.Action{addAgent, follow}, rng, randomTime)
	addAgent.PostInit(2, 0)
	return net, addAgent, e
}

func TestEngineNextActionSelectsAmongPositiveWeights(t *testing.T) {
	_, _, e := newTestEngine(t, 10, false)

	a, ok := e.NextAction()
	require.True(t, ok)
	assert.Contains(t, []string{"add_agent", "follow"}, a.Name())
}

func TestEngineNextActionFailsWhenAllWeightsZero(t *testing.T) {
	net := network.New(1)
	types := []config.AgentType{{Name: "a", AddWeight: 0, FollowWeight: 0}}
	rng := random.New(1)
	addAgent := action.NewAddAgent(net, config.Rate{Function: config.RateConstant, Value: 0}, types, rng)
	e := New([]action.Action{addAgent}, rng, false)

	_, ok := e.NextAction()
	assert.False(t, ok)
}

func TestEngineDeterministicTimeAdvanceIsReciprocalOfTotalWeight(t *testing.T) {
	_, _, e := newTestEngine(t, 10, false)

	a, ok := e.NextAction()
	require.True(t, ok)

	var sum float64
	for _, act := range e.Actions() {
		sum += act.Weight()
	}

	a.Invoke(0)

	assert.InDelta(t, 1.0/sum, e.Time(), 1e-9)
	assert.Equal(t, int64(1), e.Steps())
}

func TestEngineRandomTimeAdvanceIsPositive(t *testing.T) {
	_, _, e := newTestEngine(t, 10, true)

	a, ok := e.NextAction()
	require.True(t, ok)
	a.Invoke(0)

	assert.Greater(t, e.Time(), 0.0)
}

func TestEngineEventsCountsOnlyHappened(t *testing.T) {
	net := network.New(1)
	types := []config.AgentType{config.DefaultAgentType("default")}
	rng := random.New(1)
	addAgent := action.NewAddAgent(net, config.DefaultAddRate(), types, rng)
	e := New([]action.Action{addAgent}, rng, false)

	addAgent.Invoke(0) // network empty -> grows to size 1, happened fires
	addAgent.Invoke(0) // network full -> Grow fails, only finished fires

	assert.Equal(t, int64(1), e.Events())
	assert.Equal(t, int64(2), e.Steps())
}

func TestEngineResetClearsClockAndActionCounters(t *testing.T) {
	_, addAgent, e := newTestEngine(t, 10, false)
	a, ok := e.NextAction()
	require.True(t, ok)
	a.Invoke(0)
	require.Greater(t, e.Steps(), int64(0))

	e.Reset()

	assert.Equal(t, 0.0, e.Time())
	assert.Equal(t, int64(0), e.Steps())
	assert.Equal(t, int64(0), e.Events())
	assert.Equal(t, int64(0), addAgent.Rate())
}
