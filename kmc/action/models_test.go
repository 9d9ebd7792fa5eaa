package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arminms/hashkat-v2/internal/config"
	"github.com/arminms/hashkat-v2/internal/random"
	"github.com/arminms/hashkat-v2/kmc/network"
)

func TestRandomModelReturnsIDWithinPopulation(t *testing.T) {
	net := network.New(5)
	net.GrowN(5, 0, 0)
	f := &Follow{net: net, rng: random.New(3)}

	for i := 0; i < 20; i++ {
		id, ok := f.randomModel()
		require.True(t, ok)
		assert.GreaterOrEqual(t, id, 0)
		assert.Less(t, id, 5)
	}
}

func TestRandomModelFailsOnEmptyNetwork(t *testing.T) {
	net := network.New(5)
	f := &Follow{net: net, rng: random.New(1)}
	_, ok := f.randomModel()
	assert.False(t, ok)
}

func TestTwitterSuggestModelGatesOnAgeAndFallsBackToBins(t *testing.T) {
	net := network.New(5)
	net.GrowN(5, 0, 0)
	bins := newBinTable(5, 5, true, 1, 1)
	bins.insertNew(2)
	bins.moveToIndex(2, 3)

	f := &Follow{net: net, rng: random.New(9), globalBins: bins, barabasiExponent: 1.0}

	// A brand-new follower (0 months old) has referral rate 1/(1+0)=1: the
	// gate always passes and the bin is always sampled.
	id, ok := f.twitterSuggestModel(0, 0)
	require.True(t, ok)
	assert.Equal(t, 2, id)
}

func TestBarabasiModelIgnoresAgeGate(t *testing.T) {
	bins := newBinTable(5, 5, true, 1, 1)
	bins.insertNew(4)
	bins.moveToIndex(4, 2)
	f := &Follow{rng: random.New(2), globalBins: bins, barabasiExponent: 1.0}

	id, ok := f.barabasiModel(0)
	require.True(t, ok)
	assert.Equal(t, 4, id)
}

func TestAgentModelSamplesTypeThenMember(t *testing.T) {
	net := network.New(6)
	net.GrowN(3, 0, 0)
	net.GrowN(3, 1, 0)

	types := []config.AgentType{
		{Name: "a", AddWeight: 1, FollowWeight: 0},
		{Name: "b", AddWeight: 1, FollowWeight: 1},
	}
	f := &Follow{net: net, rng: random.New(4), types: types}

	for i := 0; i < 30; i++ {
		id, ok := f.agentModel()
		require.True(t, ok)
		assert.Equal(t, 1, net.AgentType(id), "FollowWeight=0 for type 0 means it should never be chosen")
	}
}

func TestAgentModelFailsWhenAllWeightsZero(t *testing.T) {
	net := network.New(3)
	net.GrowN(3, 0, 0)
	types := []config.AgentType{{Name: "a", FollowWeight: 0}}
	f := &Follow{net: net, rng: random.New(1), types: types}

	_, ok := f.agentModel()
	assert.False(t, ok)
}

func TestPreferentialAgentModelSamplesFromTypeBin(t *testing.T) {
	net := network.New(3)
	net.GrowN(3, 0, 0)
	types := []config.AgentType{{Name: "a", FollowWeight: 1}}
	typeBins := []*binTable{newBinTable(3, 3, true, 1, 1)}
	typeBins[0].insertNew(1)
	typeBins[0].moveToIndex(1, 2)

	f := &Follow{net: net, rng: random.New(5), types: types, typeBins: typeBins, followRanks: config.DefaultFollowRanks()}

	id, ok := f.preferentialAgentModel()
	require.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestTwitterCompositeModelDispatchesHashtagAsFailure(t *testing.T) {
	net := network.New(3)
	net.GrowN(3, 0, 0)
	types := []config.AgentType{{Name: "a", FollowWeight: 1, AddWeight: 1}}
	f := &Follow{
		net:    net,
		rng:    random.New(6),
		types:  types,
		modelWeights: config.FollowModelWeights{
			Random: 0, TwitterSuggest: 0, Agent: 0, PreferentialAgent: 0, Hashtag: 1,
		},
	}

	id, method, ok := f.twitterCompositeModel(0, 0)
	assert.False(t, ok)
	assert.Equal(t, -1, id)
	assert.Equal(t, MethodHashtag, method)
}

func TestTwitterCompositeModelRoutesToBarabasiWhenEnabled(t *testing.T) {
	bins := newBinTable(4, 4, true, 1, 1)
	bins.insertNew(3)
	bins.moveToIndex(3, 1)

	f := &Follow{
		rng:              random.New(8),
		globalBins:       bins,
		barabasiExponent: 1.0,
		useBarabasi:      true,
		modelWeights: config.FollowModelWeights{
			Random: 0, TwitterSuggest: 1, Agent: 0, PreferentialAgent: 0, Hashtag: 0,
		},
	}

	id, method, ok := f.twitterCompositeModel(0, 0)
	require.True(t, ok)
	assert.Equal(t, 3, id)
	assert.Equal(t, MethodTwitterSuggestOrBarabasi, method)
}
