package network

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowRespectsCapacity(t *testing.T) {
	n := New(2)

	id0, ok := n.Grow(0, 0)
	require.True(t, ok)
	assert.Equal(t, 0, id0)

	id1, ok := n.Grow(0, 0)
	require.True(t, ok)
	assert.Equal(t, 1, id1)

	_, ok = n.Grow(0, 0)
	assert.False(t, ok)
	assert.Equal(t, 2, n.Size())
}

func TestGrowEmitsGrownSignal(t *testing.T) {
	n := New(5)
	var got []int
	n.OnGrown(func(id, typeIndex int) {
		got = append(got, id, typeIndex)
	})
	n.Grow(3, 0)
	assert.Equal(t, []int{0, 3}, got)
}

func TestConnectDuplicateReturnsFalseAndNoSignal(t *testing.T) {
	n := New(3)
	n.GrowN(3, 0, 0)

	var events int
	n.OnConnectionAdded(func(followee, follower int) { events++ })

	ok := n.Connect(0, 1)
	require.True(t, ok)
	assert.Equal(t, 1, events)

	ok = n.Connect(0, 1)
	assert.False(t, ok)
	assert.Equal(t, 1, events)
}

func TestConnectSelfLoopPanics(t *testing.T) {
	n := New(3)
	n.GrowN(3, 0, 0)
	assert.Panics(t, func() { n.Connect(0, 0) })
}

func TestSymmetricAdjacencyInvariant(t *testing.T) {
	n := New(4)
	n.GrowN(4, 0, 0)
	n.Connect(0, 1)
	n.Connect(0, 2)

	assert.True(t, n.HaveConnection(0, 1))
	assert.Contains(t, n.FolloweeSet(1), 0)
	assert.Contains(t, n.FollowerSet(0), 1)
	assert.Equal(t, 2, n.FollowersSize(0))
}

func TestDisconnectIsRoundTrip(t *testing.T) {
	n := New(2)
	n.GrowN(2, 0, 0)
	n.Connect(0, 1)
	removed := n.Disconnect(0, 1)
	assert.True(t, removed)
	assert.False(t, n.HaveConnection(0, 1))
	assert.Equal(t, 0, n.FollowersSize(0))
}

func TestConcurrentConnectRaceHasOneWinner(t *testing.T) {
	n := New(2)
	n.GrowN(2, 0, 0)

	var wg sync.WaitGroup
	results := make([]bool, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = n.Connect(0, 1)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, r := range results {
		if r {
			wins++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, n.FollowersSize(0))
}

func TestResetClearsState(t *testing.T) {
	n := New(3)
	n.GrowN(3, 0, 0)
	n.Connect(0, 1)
	n.Reset()

	assert.Equal(t, 0, n.Size())
	assert.Equal(t, 0, n.Count(0))
}
