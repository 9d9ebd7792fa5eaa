package action

import (
	"github.com/arminms/hashkat-v2/internal/config"
	"github.com/arminms/hashkat-v2/internal/random"
	"github.com/arminms/hashkat-v2/kmc/network"
)

// AddAgent grows the network by one agent of a sampled type per invocation.
// Its own weight varies monthly via a constant or linear schedule; the
// choice of which type to add is driven by each AgentType's AddWeight.
type AddAgent struct {
	Base

	net   *network.Network
	rng   *random.Source
	types []config.AgentType

	rate           config.Rate
	monthlyWeights []float64
}

// NewAddAgent returns an AddAgent action bound to net, sampling among types
// according to each type's AddWeight, with its own weight following rate.
func NewAddAgent(net *network.Network, rate config.Rate, types []config.AgentType, rng *random.Source) *AddAgent {
	return &AddAgent{
		Base:  NewBase("add_agent"),
		net:   net,
		rng:   rng,
		types: types,
		rate:  rate,
	}
}

// PostInit precomputes the monthly weight schedule and seeds initialAgents
// agents sampled from the per-type add-weight distribution.
func (a *AddAgent) PostInit(initialAgents int, now float64) {
	a.monthlyWeights = buildMonthlySchedule(a.rate, MonthIndex(now)+1)

	for i := 0; i < initialAgents; i++ {
		t := a.sampleType()
		if t >= 0 {
			a.net.Grow(t, now)
		}
	}
}

// buildMonthlySchedule precomputes monthlyWeights[0..minMonths-1] from a
// constant or linear rate schedule.
func buildMonthlySchedule(r config.Rate, minMonths int) []float64 {
	if minMonths < 1 {
		minMonths = 1
	}
	weights := make([]float64, minMonths)
	for m := range weights {
		if r.Function == config.RateLinear {
			weights[m] = r.YIntercept + float64(m)*r.Slope
		} else {
			weights[m] = r.Value
		}
	}
	return weights
}

func (a *AddAgent) sampleType() int {
	weights := make([]float64, len(a.types))
	for i, t := range a.types {
		weights[i] = t.AddWeight
	}
	return a.rng.DiscreteSample(weights)
}

// UpdateWeight sets the current weight from the monthly schedule, first
// extending the schedule (same constant or linear formula) when now falls
// past its last precomputed month.
func (a *AddAgent) UpdateWeight(now float64) {
	month := MonthIndex(now)
	a.extendScheduleTo(month)
	if month >= len(a.monthlyWeights) {
		month = len(a.monthlyWeights) - 1
	}
	a.setWeight(a.monthlyWeights[month])
}

func (a *AddAgent) extendScheduleTo(month int) {
	for month >= len(a.monthlyWeights) {
		m := len(a.monthlyWeights)
		var w float64
		if a.rate.Function == config.RateLinear {
			w = a.rate.YIntercept + float64(m)*a.rate.Slope
		} else {
			w = a.rate.Value
		}
		a.monthlyWeights = append(a.monthlyWeights, w)
	}
}

// Invoke samples a type from the add-weight distribution and grows the
// network by one agent of that type.
func (a *AddAgent) Invoke(now float64) {
	t := a.sampleType()
	if t >= 0 {
		if _, ok := a.net.Grow(t, now); ok {
			a.incRate()
			a.emitHappened()
		}
	}
	a.emitFinished()
}

// Reset clears the rate/weight counters back to zero; the monthly schedule
// itself is recomputed on the next PostInit.
func (a *AddAgent) Reset() {
	a.resetCounters()
	a.monthlyWeights = nil
}
