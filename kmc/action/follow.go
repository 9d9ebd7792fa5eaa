package action

import (
	"github.com/arminms/hashkat-v2/internal/config"
	"github.com/arminms/hashkat-v2/internal/random"
	"github.com/arminms/hashkat-v2/kmc/network"
)

// Follow selects a follower then a followee via one of several
// preferential-attachment models, and requests the connection. It owns the
// bin structures, the monthly weight convolution, and the per-type/
// per-method counters that the follow-model mixture depends on.
type Follow struct {
	Base

	net *network.Network
	rng *random.Source

	types       []config.AgentType
	followRanks config.FollowRanks

	useBarabasi         bool
	barabasiConnections int
	barabasiExponent    float64
	useFollowback       bool

	defaultModel string
	modelWeights config.FollowModelWeights

	addRateZero bool

	globalBins *binTable
	typeBins   []*binTable

	monthly  *monthlyCohorts
	methods  *methodCounters
	byType   *typeCounters

	numBins int
}

// NewFollow constructs a Follow action. addRate is the top-level add-rate
// schedule, used only to decide whether the population is stationary
// (addRate.Value == 0 and addRate.Function == constant) for the weight
// update's branch selection.
func NewFollow(net *network.Network, maxAgents int, analysis config.Analysis, addRate config.Rate, ranks config.FollowRanks, types []config.AgentType, rng *random.Source) *Follow {
	numBins := numGenericBins(ranks)
	if analysis.UseBarabasi {
		numBins = maxAgents
	}

	typeBins := make([]*binTable, len(types))
	for i := range types {
		typeBins[i] = newBinTable(numBins, maxAgents, analysis.UseBarabasi, ranks.Min, ranks.Increment)
	}

	rates := make([]config.Rate, len(types))
	for i, t := range types {
		rates[i] = t.FollowRate
	}

	f := &Follow{
		Base: NewBase("follow"),

		net: net,
		rng: rng,

		types:       types,
		followRanks: ranks,

		useBarabasi:         analysis.UseBarabasi,
		barabasiConnections: analysis.BarabasiConnections,
		barabasiExponent:    analysis.BarabasiExponent,
		useFollowback:       analysis.UseFollowback,

		defaultModel: analysis.FollowModel,
		modelWeights: analysis.ModelWeights,

		addRateZero: addRate.Function == config.RateConstant && addRate.Value == 0,

		globalBins: newBinTable(numBins, maxAgents, analysis.UseBarabasi, ranks.Min, ranks.Increment),
		typeBins:   typeBins,

		monthly: newMonthlyCohorts(rates),
		methods: newMethodCounters(maxAgents),
		byType:  newTypeCounters(len(types)),

		numBins: numBins,
	}

	f.wireSlots()
	return f
}

func numGenericBins(r config.FollowRanks) int {
	if r.Increment <= 0 {
		return 1
	}
	n := int((r.Max-r.Min)/r.Increment) + 1
	if n < 1 {
		n = 1
	}
	return n
}

// wireSlots subscribes the bin-maintenance and followback handlers to the
// network's mutation signals, per §4.4.1 and the followback slot of §4.4.4.
func (f *Follow) wireSlots() {
	f.net.OnGrown(f.onGrown)
	f.net.OnConnectionAdded(f.onConnectionAdded)

	if f.useBarabasi {
		f.net.OnGrown(f.onGrownBarabasiBurst)
	}
	if f.useFollowback {
		f.net.OnConnectionAdded(f.onConnectionAddedFollowback)
	}
}

func (f *Follow) onGrown(id, typeIndex int) {
	now := f.net.CreationTime(id)
	f.globalBins.insertNew(id)
	f.typeBins[typeIndex].insertNew(id)
	f.methods.grow()
	f.monthly.recordCreation(typeIndex, MonthIndex(now), id)
}

func (f *Follow) onConnectionAdded(followee, follower int) {
	followersCount := f.net.FollowersSize(followee)
	idx := f.globalBins.index(followersCount)
	f.globalBins.moveToIndex(followee, idx)

	t := f.net.AgentType(followee)
	typeIdx := f.typeBins[t].index(followersCount)
	f.typeBins[t].moveToIndex(followee, typeIdx)
}

// onGrownBarabasiBurst performs barabasiConnections immediate follow
// attempts for a newly grown agent, synchronously from the grown slot, per
// the "burst" Design Note.
func (f *Follow) onGrownBarabasiBurst(id, _ int) {
	if f.net.Size() < 2 {
		return
	}
	for i := 0; i < f.barabasiConnections; i++ {
		followee, ok := f.barabasiModel(id)
		if !ok || followee == id {
			continue
		}
		if f.net.Connect(followee, id) {
			f.byType.incFollow(f.net.AgentType(followee))
			f.methods.recordFollow(followee, id, MethodTwitterSuggestOrBarabasi)
		}
	}
}

func (f *Follow) onConnectionAddedFollowback(followee, follower int) {
	t := f.net.AgentType(followee)
	p := f.types[t].FollowbackProbability
	if p <= 0 {
		return
	}
	if p < 1 && f.rng.Float64() >= p {
		return
	}
	if follower == followee {
		return
	}
	if f.net.Connect(follower, followee) {
		f.byType.incFollow(f.net.AgentType(follower))
		f.methods.recordFollow(follower, followee, MethodFollowback)
	}
}

// UpdateWeight recomputes weight_ per §4.4.2.
func (f *Follow) UpdateWeight(now float64) {
	month := MonthIndex(now)

	var w float64
	if f.addRateZero {
		counts := make([]int64, len(f.types))
		for t := range f.types {
			counts[t] = int64(f.net.Count(t))
		}
		w = f.monthly.stationaryWeight(month, counts)
	} else {
		w = f.monthly.convolutionWeight(month)
	}
	f.setWeight(w)
}

// Invoke selects a follower then a followee and, on success, connects them.
func (f *Follow) Invoke(now float64) {
	follower, ok := f.selectFollower(now)
	if !ok {
		f.emitFinished()
		return
	}

	followee, method, ok := f.selectFollowee(follower, now)
	if !ok {
		f.emitFinished()
		return
	}

	if f.net.Connect(followee, follower) {
		f.byType.incFollow(f.net.AgentType(followee))
		f.methods.recordFollow(followee, follower, method)
		f.incRate()
		f.emitHappened()
	}
	f.emitFinished()
}

// selectFollower implements §4.4.3.
func (f *Follow) selectFollower(now float64) (int, bool) {
	month := MonthIndex(now)

	if f.addRateZero {
		weights := make([]float64, len(f.types))
		for i, t := range f.types {
			weights[i] = float64(f.net.Count(i)) * t.AddWeight
		}
		t := f.rng.DiscreteSample(weights)
		if t < 0 {
			return -1, false
		}
		count := f.net.Count(t)
		if count == 0 {
			return -1, false
		}
		idx := f.rng.Intn(count)
		return f.net.AgentByType(t, idx)
	}

	addWeights := make([]float64, len(f.types))
	for i, t := range f.types {
		addWeights[i] = t.AddWeight
	}
	weights, ids := f.monthly.growingFollowerGrid(month, addWeights)
	cell := f.rng.DiscreteSample(weights)
	if cell < 0 || len(ids[cell]) == 0 {
		return -1, false
	}
	return ids[cell][f.rng.Intn(len(ids[cell]))], true
}

// selectFollowee implements §4.4.4's outer dispatch: run the configured
// model, then reject a self-selection.
func (f *Follow) selectFollowee(follower int, now float64) (int, int, bool) {
	followee, method, ok := f.dispatchModel(f.defaultModel, follower, now)
	if !ok {
		return -1, 0, false
	}
	if followee == follower {
		return -1, 0, false
	}
	return followee, method, true
}

func (f *Follow) dispatchModel(name string, follower int, now float64) (int, int, bool) {
	switch name {
	case "random":
		id, ok := f.randomModel()
		return id, MethodRandom, ok
	case "twitter_suggest":
		id, ok := f.twitterSuggestModel(follower, now)
		return id, MethodTwitterSuggestOrBarabasi, ok
	case "agent":
		id, ok := f.agentModel()
		return id, MethodAgent, ok
	case "preferential_agent":
		id, ok := f.preferentialAgentModel()
		return id, MethodPreferentialAgent, ok
	case "hashtag":
		return -1, MethodHashtag, false
	case "twitter":
		return f.twitterCompositeModel(follower, now)
	default:
		id, ok := f.randomModel()
		return id, MethodRandom, ok
	}
}

// monthsSinceCreation returns how many months old follower is at simulated
// time now.
func (f *Follow) monthsSinceCreation(follower int, now float64) int {
	created := f.net.CreationTime(follower)
	age := now - created
	if age < 0 {
		age = 0
	}
	return int(age / ApproxMonth)
}

// BinPopulations returns a snapshot of the global bin populations, for the
// Categories_Distro.dat dump.
func (f *Follow) BinPopulations() []int {
	return f.globalBins.populations()
}

// MethodCounts returns, for agent id, the seven per-method counters
// accumulated while it acted as a followee and as a follower.
func (f *Follow) MethodCounts(id int) (asFollowee, asFollower [methodCount]int64) {
	for m := 0; m < methodCount; m++ {
		asFollowee[m] = f.methods.followeeCount(id, m)
		asFollower[m] = f.methods.followerCount(id, m)
	}
	return asFollowee, asFollower
}

// TypeFollowCount returns the number of follow edges attributed to typeIndex.
func (f *Follow) TypeFollowCount(typeIndex int) int64 {
	return f.byType.get(typeIndex)
}

// Types returns the configured agent types, for dump code that needs names.
func (f *Follow) Types() []config.AgentType {
	return f.types
}

// Reset clears all mutable state back to its post-init condition.
func (f *Follow) Reset() {
	f.resetCounters()
	f.globalBins.reset()
	for _, tb := range f.typeBins {
		tb.reset()
	}
	f.monthly.reset()
	f.byType.reset()
	f.methods = newMethodCounters(cap(f.methods.asFollowee))
}
