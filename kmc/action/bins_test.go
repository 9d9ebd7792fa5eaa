package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arminms/hashkat-v2/internal/random"
)

func TestBinTableFastPathMove(t *testing.T) {
	bt := newBinTable(10, 10, true, 1, 1) // barabasi: numBins == maxAgents, unit spacing
	bt.insertNew(3)
	assert.Contains(t, bt.bins[0], 3)

	bt.moveToIndex(3, bt.index(1))
	assert.NotContains(t, bt.bins[0], 3)
	assert.Contains(t, bt.bins[1], 3)
	assert.Equal(t, int64(1), bt.kmax.Load())
}

func TestBinTableDownwardSearchFallback(t *testing.T) {
	bt := newBinTable(3, 10, false, 1, 1) // generic: numBins(3) << maxAgents(10), spacing collapses counts
	bt.insertNew(7)

	idx1 := bt.index(1)
	bt.moveToIndex(7, idx1)

	idx2 := bt.index(2)
	bt.moveToIndex(7, idx2)

	require.GreaterOrEqual(t, idx2, idx1)
	found := false
	for _, m := range bt.bins {
		if _, ok := m[7]; ok {
			found = true
		}
	}
	assert.True(t, found)
	assert.Equal(t, 1, func() int {
		count := 0
		for _, m := range bt.bins {
			count += len(m)
		}
		return count
	}())
}

func TestBinTableSampleBinWeightsByPopulation(t *testing.T) {
	bt := newBinTable(5, 20, true, 1, 1)
	for _, id := range []int{1, 2, 3} {
		bt.insertNew(id)
		bt.moveToIndex(id, 4)
	}
	bt.insertNew(4)
	bt.moveToIndex(4, 1)

	rng := random.New(7)
	counts := map[int]int{}
	for i := 0; i < 500; i++ {
		id, ok := bt.sampleBin(rng, 1.0)
		require.True(t, ok)
		counts[id]++
	}
	// Bin 4 has 3 members at weight 5^1 each (barabasi weight is
	// pow(1+i,exp)) vs bin 1's single member at weight 2^1: bin 4's members
	// should collectively dominate sampling.
	bin4Total := counts[1] + counts[2] + counts[3]
	assert.Greater(t, bin4Total, counts[4])
}

func TestBinTableEmptyReturnsFailure(t *testing.T) {
	bt := newBinTable(5, 20, true, 1, 1)
	rng := random.New(1)
	_, ok := bt.sampleBin(rng, 1.0)
	assert.False(t, ok)
}

// TestBinTableSamplesImmediatelyAfterInsertNewWithNoPriorMove guards the
// cold-start path: a population that has never had a single connection_added
// event (so moveToIndex, the only caller that used to raise kmax, has never
// run) must still be able to draw a followee out of bin 0.
func TestBinTableSamplesImmediatelyAfterInsertNewWithNoPriorMove(t *testing.T) {
	bt := newBinTable(5, 20, true, 1, 1)
	bt.insertNew(1)
	bt.insertNew(2)
	bt.insertNew(3)

	rng := random.New(3)
	id, ok := bt.sampleBin(rng, 1.0)
	require.True(t, ok)
	assert.Contains(t, []int{1, 2, 3}, id)
}
