package action

// randomModel implements follow model 0: uniform id in [0, n_agents).
func (f *Follow) randomModel() (int, bool) {
	n := f.net.Size()
	if n == 0 {
		return -1, false
	}
	return f.rng.Intn(n), true
}

// twitterSuggestModel implements follow model 1 (twitter_suggest): with
// probability 1/(1+months_since_creation(follower)), sample a bin weighted
// by pow(min+i*increment,exp)*|B[i]|, then a uniform member of that bin.
// Otherwise fail.
func (f *Follow) twitterSuggestModel(follower int, now float64) (int, bool) {
	months := f.monthsSinceCreation(follower, now)
	referral := 1.0 / float64(1+months)
	if f.rng.Float64() >= referral {
		return -1, false
	}
	return f.globalBins.sampleBin(f.rng, f.barabasiExponent)
}

// barabasiModel implements the Barabási variant of follow model 1: the same
// bin-weighted sampling as twitter_suggest but without the referral-rate
// gate, and with bins indexed by raw in-degree (configured via
// NewFollow's useBarabasi flag, which also governs binTable.index).
func (f *Follow) barabasiModel(_ int) (int, bool) {
	return f.globalBins.sampleBin(f.rng, f.barabasiExponent)
}

// agentModel implements follow model 2: sample a type weighted by
// FollowWeight, then a uniform member of that type.
func (f *Follow) agentModel() (int, bool) {
	weights := make([]float64, len(f.types))
	for i, t := range f.types {
		weights[i] = t.FollowWeight
	}
	t := f.rng.DiscreteSample(weights)
	if t < 0 {
		return -1, false
	}
	count := f.net.Count(t)
	if count == 0 {
		return -1, false
	}
	id, ok := f.net.AgentByType(t, f.rng.Intn(count))
	return id, ok
}

// preferentialAgentModel implements follow model 3: sample a type weighted
// by FollowWeight, then sample a bin from that type's per-type bin
// structure, then a uniform member of that bin.
func (f *Follow) preferentialAgentModel() (int, bool) {
	weights := make([]float64, len(f.types))
	for i, t := range f.types {
		weights[i] = t.FollowWeight
	}
	t := f.rng.DiscreteSample(weights)
	if t < 0 {
		return -1, false
	}
	return f.typeBins[t].sampleBin(f.rng, f.followRanks.Exponent)
}

// twitterCompositeModel implements the "twitter" mixture: sample a model
// index from modelWeights[0..4] and delegate.
func (f *Follow) twitterCompositeModel(follower int, now float64) (int, int, bool) {
	weights := []float64{
		f.modelWeights.Random,
		f.modelWeights.TwitterSuggest,
		f.modelWeights.Agent,
		f.modelWeights.PreferentialAgent,
		f.modelWeights.Hashtag,
	}
	idx := f.rng.DiscreteSample(weights)
	switch idx {
	case 0:
		id, ok := f.randomModel()
		return id, MethodRandom, ok
	case 1:
		if f.useBarabasi {
			id, ok := f.barabasiModel(follower)
			return id, MethodTwitterSuggestOrBarabasi, ok
		}
		id, ok := f.twitterSuggestModel(follower, now)
		return id, MethodTwitterSuggestOrBarabasi, ok
	case 2:
		id, ok := f.agentModel()
		return id, MethodAgent, ok
	case 3:
		id, ok := f.preferentialAgentModel()
		return id, MethodPreferentialAgent, ok
	case 4:
		return -1, MethodHashtag, false
	default:
		id, ok := f.randomModel()
		return id, MethodRandom, ok
	}
}
