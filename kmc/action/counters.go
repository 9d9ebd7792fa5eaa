package action

import (
	"sync"

	"go.uber.org/atomic"
)

// Follow-method indices, fixed width 7 per §3 Agent.
const (
	MethodRandom            = 0
	MethodTwitterSuggestOrBarabasi = 1
	MethodAgent             = 2
	MethodPreferentialAgent = 3
	MethodHashtag           = 4
	MethodRetweet           = 5 // reserved; never produced
	MethodFollowback        = 6
)

const methodCount = 7

// methodCounters holds the per-agent, per-method in/out counters. Appends
// are serialized by growMu and the backing slice is pre-sized to max_agents
// so appends never reallocate into a live atomic value.
type methodCounters struct {
	growMu sync.Mutex
	asFollowee [][methodCount]atomic.Int64
	asFollower [][methodCount]atomic.Int64
}

func newMethodCounters(maxAgents int) *methodCounters {
	return &methodCounters{
		asFollowee: make([][methodCount]atomic.Int64, 0, maxAgents),
		asFollower: make([][methodCount]atomic.Int64, 0, maxAgents),
	}
}

func (mc *methodCounters) grow() {
	mc.growMu.Lock()
	defer mc.growMu.Unlock()
	mc.asFollowee = append(mc.asFollowee, [methodCount]atomic.Int64{})
	mc.asFollower = append(mc.asFollower, [methodCount]atomic.Int64{})
}

func (mc *methodCounters) recordFollow(followeeID, followerID, method int) {
	mc.asFollowee[followeeID][method].Inc()
	mc.asFollower[followerID][method].Inc()
}

func (mc *methodCounters) followeeCount(id, method int) int64 {
	return mc.asFollowee[id][method].Load()
}

func (mc *methodCounters) followerCount(id, method int) int64 {
	return mc.asFollower[id][method].Load()
}

// typeCounters holds per-agent-type counters: the count of follow edges
// attributed to that type and a generic "population" read via the network
// directly (so it isn't duplicated here).
type typeCounters struct {
	followCount []atomic.Int64
}

func newTypeCounters(numTypes int) *typeCounters {
	return &typeCounters{followCount: make([]atomic.Int64, numTypes)}
}

func (tc *typeCounters) incFollow(typeIndex int) {
	tc.followCount[typeIndex].Inc()
}

func (tc *typeCounters) get(typeIndex int) int64 {
	return tc.followCount[typeIndex].Load()
}

func (tc *typeCounters) reset() {
	for i := range tc.followCount {
		tc.followCount[i].Store(0)
	}
}
