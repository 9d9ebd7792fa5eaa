package action

import (
	"math"
	"sync"

	"go.uber.org/atomic"

	"github.com/arminms/hashkat-v2/internal/random"
)

// binTable is the incrementally maintained preferential-attachment bin
// partition: a sequence of disjoint sets of agent ids indexed by (a function
// of) follower count, plus a monotone upper bound kmax on any populated
// index. One binTable backs the global bins; one more per agent type backs
// the preferential_agent model's per-type bins.
type binTable struct {
	mu        sync.Mutex
	bins      []map[int]struct{}
	numBins   int
	maxAgents int
	barabasi  bool
	min       float64
	increment float64
	kmax      atomic.Int64
}

// newBinTable builds a binTable whose per-bin weight is pow(min+i*increment,
// exponent). barabasi bins use min=1, increment=1 (weight pow(i+1,exponent)),
// matching the original's raw-degree weighting; generic bins use the
// configured follow_ranks.weights.{min,increment}. kmax starts at 0, the
// same as the original's init_bins: bin 0 is sample-able as soon as the
// first agent has been grown into it, with no prior connection required.
func newBinTable(numBins, maxAgents int, barabasi bool, min, increment float64) *binTable {
	bins := make([]map[int]struct{}, numBins)
	for i := range bins {
		bins[i] = make(map[int]struct{})
	}
	if barabasi {
		min, increment = 1, 1
	}
	if increment <= 0 {
		increment = 1
	}
	bt := &binTable{bins: bins, numBins: numBins, maxAgents: maxAgents, barabasi: barabasi, min: min, increment: increment}
	return bt
}

// index computes the bin index for an agent with the given follower count.
func (bt *binTable) index(followersCount int) int {
	var idx int
	if bt.barabasi {
		idx = followersCount
	} else {
		idx = followersCount * bt.numBins / bt.maxAgents
	}
	if idx >= bt.numBins {
		idx = bt.numBins - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// insertNew places a freshly grown agent into bin 0 and makes bin 0
// sample-able, so a model can draw a followee from a population that has
// never had a single edge (§8 S3's cold-start case).
func (bt *binTable) insertNew(id int) {
	bt.mu.Lock()
	bt.bins[0][id] = struct{}{}
	bt.mu.Unlock()
	bt.updateKmax(0)
}

// moveToIndex relocates id to bin newIdx, taking the bins[newIdx-1] fast
// path first and falling back to a downward search when the spacing has
// collapsed several follower counts into one bin. Updates kmax.
func (bt *binTable) moveToIndex(id, newIdx int) {
	bt.mu.Lock()
	defer bt.mu.Unlock()

	if prev := newIdx - 1; prev >= 0 {
		if _, ok := bt.bins[prev][id]; ok {
			delete(bt.bins[prev], id)
			bt.bins[newIdx][id] = struct{}{}
			bt.updateKmax(newIdx)
			return
		}
	}

	for i := newIdx; i >= 0; i-- {
		if _, ok := bt.bins[i][id]; ok {
			if i != newIdx {
				delete(bt.bins[i], id)
				bt.bins[newIdx][id] = struct{}{}
			}
			bt.updateKmax(newIdx)
			return
		}
	}

	// Not found in any bin at or below newIdx (id was never placed by
	// insertNew): insert fresh.
	bt.bins[newIdx][id] = struct{}{}
	bt.updateKmax(newIdx)
}

// updateKmax advances kmax to idx if it is the new high-water mark. It only
// touches the atomic counter, not bins, so it is safe to call with or
// without bt.mu held.
func (bt *binTable) updateKmax(idx int) {
	for {
		cur := bt.kmax.Load()
		if int64(idx) <= cur {
			return
		}
		if bt.kmax.CAS(cur, int64(idx)) {
			return
		}
	}
}

// sampleBin draws a bin index weighted by pow(min+i*increment, exponent) *
// |bin i|, then a uniform member of that bin. Returns (-1, false) if every
// populated bin is empty, which WeightedIndex reports as a zero-sum weight
// total (possible before any agent has been grown into a bin at all).
func (bt *binTable) sampleBin(rng *random.Source, exponent float64) (int, bool) {
	bt.mu.Lock()
	kmax := int(bt.kmax.Load())
	weights := make([]float64, kmax+1)
	members := make([][]int, kmax+1)
	for i := 0; i <= kmax; i++ {
		n := len(bt.bins[i])
		if n == 0 {
			continue
		}
		ids := make([]int, 0, n)
		for id := range bt.bins[i] {
			ids = append(ids, id)
		}
		members[i] = ids
		weights[i] = math.Pow(bt.min+float64(i)*bt.increment, exponent) * float64(n)
	}
	bt.mu.Unlock()

	wi := random.NewWeightedIndex(weights)
	if wi.Total() <= 0 {
		return -1, false
	}
	idx := wi.Sample(rng.Float64())
	if idx < 0 || len(members[idx]) == 0 {
		return -1, false
	}
	return members[idx][rng.Intn(len(members[idx]))], true
}

// populations returns a snapshot of |bin i| for i in [0,kmax], used by the
// Categories_Distro.dat dump.
func (bt *binTable) populations() []int {
	bt.mu.Lock()
	defer bt.mu.Unlock()
	kmax := int(bt.kmax.Load())
	out := make([]int, kmax+1)
	for i := 0; i <= kmax; i++ {
		out[i] = len(bt.bins[i])
	}
	return out
}

func (bt *binTable) reset() {
	bt.mu.Lock()
	defer bt.mu.Unlock()
	for i := range bt.bins {
		bt.bins[i] = make(map[int]struct{})
	}
	bt.kmax.Store(0)
}
