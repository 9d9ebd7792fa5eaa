package action

import (
	"sync"

	"github.com/arminms/hashkat-v2/internal/config"
)

// Historical per-type follow-rate magic constants (twitter_follow /
// quarter_twitter_follow schedules): a higher weight for the first two
// months of a cohort's life, then a steady lower weight thereafter.
const (
	twitterFollowEarly = 7.44 * 0.0008298429200320164
	twitterFollowLate  = 7.44 * 5.5360422914604546e-05
)

// followRateWeight evaluates an AgentType's follow-rate schedule at the
// given month index.
func followRateWeight(r config.Rate, month int) float64 {
	switch r.Function {
	case config.RateLinear:
		return r.YIntercept + float64(month)*r.Slope
	case config.RateTwitterFollow:
		if month < 2 {
			return twitterFollowEarly
		}
		return twitterFollowLate
	case config.RateQuarterTwitterFollow:
		if month < 2 {
			return twitterFollowEarly / 4
		}
		return twitterFollowLate / 4
	default:
		return r.Value
	}
}

// monthlyCohorts tracks, per agent type and per month, which agents were
// created in that cohort and what that type's follow-rate weight is for
// that month. A single mutex guards both the "first crosser wins" month
// extension and every read, trading the original's separate atomics for a
// simpler, still race-free, slightly coarser lock: months are crossed at
// most a few dozen times per run, so this is not a contended path.
type monthlyCohorts struct {
	mu             sync.Mutex
	cohortIDs      [][][]int
	weightsByMonth [][]float64
	rates          []config.Rate
}

func newMonthlyCohorts(rates []config.Rate) *monthlyCohorts {
	n := len(rates)
	return &monthlyCohorts{
		cohortIDs:      make([][][]int, n),
		weightsByMonth: make([][]float64, n),
		rates:          rates,
	}
}

// ensureMonthLocked extends every type's schedule so month is a valid index.
// Caller must hold mc.mu.
func (mc *monthlyCohorts) ensureMonthLocked(month int) {
	for t := range mc.rates {
		for month >= len(mc.weightsByMonth[t]) {
			m := len(mc.weightsByMonth[t])
			mc.weightsByMonth[t] = append(mc.weightsByMonth[t], followRateWeight(mc.rates[t], m))
			mc.cohortIDs[t] = append(mc.cohortIDs[t], nil)
		}
	}
}

// recordCreation appends id to type t's cohort for month.
func (mc *monthlyCohorts) recordCreation(t, month, id int) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.ensureMonthLocked(month)
	mc.cohortIDs[t][month] = append(mc.cohortIDs[t][month], id)
}

// stationaryWeight computes Σ_t counts[t]*weightsByMonth[t][month], the
// add-rate-zero branch of the Follow action's weight update.
func (mc *monthlyCohorts) stationaryWeight(month int, counts []int64) float64 {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.ensureMonthLocked(month)
	var total float64
	for t := range mc.rates {
		total += float64(counts[t]) * mc.weightsByMonth[t][month]
	}
	return total
}

// convolutionWeight computes the growing-population convolution:
// Σ_t Σ_{m=0..month} |cohort[t][month-m]| * weightsByMonth[t][m].
func (mc *monthlyCohorts) convolutionWeight(month int) float64 {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.ensureMonthLocked(month)
	var total float64
	for t := range mc.rates {
		for m := 0; m <= month; m++ {
			cohortMonth := month - m
			if cohortMonth >= len(mc.cohortIDs[t]) {
				continue
			}
			total += float64(len(mc.cohortIDs[t][cohortMonth])) * mc.weightsByMonth[t][m]
		}
	}
	return total
}

// growingFollowerGrid returns, for every (type, month) cell up to month, the
// sampling weight weightsByMonth[t][m]*addWeights[t] and a snapshot of that
// cell's cohort ids, in parallel slices suitable for DiscreteSample.
func (mc *monthlyCohorts) growingFollowerGrid(month int, addWeights []float64) (weights []float64, ids [][]int) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.ensureMonthLocked(month)
	for t := range mc.rates {
		for m := 0; m <= month; m++ {
			w := mc.weightsByMonth[t][m] * addWeights[t]
			weights = append(weights, w)
			cohort := mc.cohortIDs[t][m]
			snapshot := make([]int, len(cohort))
			copy(snapshot, cohort)
			ids = append(ids, snapshot)
		}
	}
	return weights, ids
}

func (mc *monthlyCohorts) reset() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for t := range mc.rates {
		mc.cohortIDs[t] = nil
		mc.weightsByMonth[t] = nil
	}
}
