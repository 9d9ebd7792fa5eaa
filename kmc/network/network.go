// Package network implements the directed multiagent follow graph: adjacency
// sets, per-type agent rosters, and the grown/connection_added/
// connection_removed mutation signals that the follow and add-agent actions
// subscribe to.
package network

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

// Network is the directed social-follow graph. The zero value is not
// usable; construct with New.
type Network struct {
	maxAgents int

	// growMu guards the list-extension step of Grow: appending to
	// agentType/creationTime/followers/followees/byType. Readers that only
	// index into an existing slot never need it; nAgents (read with
	// Load) tells them how far the slices currently extend.
	growMu sync.RWMutex

	nAgents atomic.Int64

	agentType    []int
	creationTime []float64

	followers []*agentSet
	followees []*agentSet

	byType map[int][]int // per-type roster, creation order

	signals signals
}

// New returns an empty Network with room for maxAgents agents.
func New(maxAgents int) *Network {
	return &Network{
		maxAgents:    maxAgents,
		agentType:    make([]int, 0, maxAgents),
		creationTime: make([]float64, 0, maxAgents),
		followers:    make([]*agentSet, 0, maxAgents),
		followees:    make([]*agentSet, 0, maxAgents),
		byType:       make(map[int][]int),
	}
}

// Grow appends one agent of typeIndex at simulated time now. It returns the
// new agent's id and true, or (-1, false) if the network is already at
// max_agents capacity.
func (n *Network) Grow(typeIndex int, now float64) (int, bool) {
	n.growMu.Lock()
	if len(n.agentType) >= n.maxAgents {
		n.growMu.Unlock()
		return -1, false
	}
	id := len(n.agentType)
	n.agentType = append(n.agentType, typeIndex)
	n.creationTime = append(n.creationTime, now)
	n.followers = append(n.followers, newAgentSet())
	n.followees = append(n.followees, newAgentSet())
	n.byType[typeIndex] = append(n.byType[typeIndex], id)
	n.growMu.Unlock()

	n.nAgents.Inc()
	n.emitGrown(id, typeIndex)
	return id, true
}

// GrowN calls Grow count times with the same typeIndex and returns how many
// succeeded.
func (n *Network) GrowN(count, typeIndex int, now float64) int {
	actual := 0
	for i := 0; i < count; i++ {
		if _, ok := n.Grow(typeIndex, now); !ok {
			break
		}
		actual++
	}
	return actual
}

// Connect adds a directed edge (follower follows followee). It panics on a
// self-loop or an out-of-range id (contract violations), returns false
// without emitting a signal if the edge already existed, and otherwise
// emits connection_added and returns true.
//
// The insert into followers[followee] is the linearization point: under
// concurrent Connect calls racing on the same pair, exactly one goroutine
// finds that insert new; it then completes the reverse insert into
// followees[follower] and emits the signal, and every other caller returns
// false.
func (n *Network) Connect(followee, follower int) bool {
	n.assertValidID(followee)
	n.assertValidID(follower)
	if followee == follower {
		panic(fmt.Sprintf("network: self-loop connect(%d, %d)", followee, follower))
	}

	if !n.followers[followee].Store(follower) {
		return false
	}
	n.followees[follower].Store(followee)

	n.emitConnectionAdded(followee, follower)
	return true
}

// Disconnect removes a directed edge in both adjacency directions. It emits
// connection_removed only if the forward removal (followers[followee])
// actually removed something.
func (n *Network) Disconnect(followee, follower int) bool {
	n.assertValidID(followee)
	n.assertValidID(follower)

	removed := n.followers[followee].Delete(follower)
	n.followees[follower].Delete(followee)

	if removed {
		n.emitConnectionRemoved(followee, follower)
	}
	return removed
}

// Size returns the current number of agents.
func (n *Network) Size() int { return int(n.nAgents.Load()) }

// MaxSize returns the configured agent capacity.
func (n *Network) MaxSize() int { return n.maxAgents }

// Count returns the number of agents of typeIndex.
func (n *Network) Count(typeIndex int) int {
	n.growMu.RLock()
	defer n.growMu.RUnlock()
	return len(n.byType[typeIndex])
}

// AgentByType returns the k-th agent (in creation order) of typeIndex.
func (n *Network) AgentByType(typeIndex, k int) (int, bool) {
	n.growMu.RLock()
	defer n.growMu.RUnlock()
	roster := n.byType[typeIndex]
	if k < 0 || k >= len(roster) {
		return -1, false
	}
	return roster[k], true
}

// AgentType returns the type index of agent id.
func (n *Network) AgentType(id int) int {
	n.assertValidID(id)
	n.growMu.RLock()
	defer n.growMu.RUnlock()
	return n.agentType[id]
}

// CreationTime returns the simulated-minute timestamp at which id was
// created.
func (n *Network) CreationTime(id int) float64 {
	n.assertValidID(id)
	n.growMu.RLock()
	defer n.growMu.RUnlock()
	return n.creationTime[id]
}

// FollowersSize returns |followers[id]|, i.e. id's in-degree.
func (n *Network) FollowersSize(id int) int {
	n.assertValidID(id)
	return n.followers[id].Count()
}

// FolloweesSize returns |followees[id]|, i.e. id's out-degree.
func (n *Network) FolloweesSize(id int) int {
	n.assertValidID(id)
	return n.followees[id].Count()
}

// FollowerSet returns a snapshot of id's followers.
func (n *Network) FollowerSet(id int) []int {
	n.assertValidID(id)
	return n.followers[id].All()
}

// FolloweeSet returns a snapshot of id's followees.
func (n *Network) FolloweeSet(id int) []int {
	n.assertValidID(id)
	return n.followees[id].All()
}

// HaveConnection reports whether follower already follows followee.
func (n *Network) HaveConnection(followee, follower int) bool {
	n.assertValidID(followee)
	n.assertValidID(follower)
	return n.followers[followee].Has(follower)
}

// Reset clears all adjacency, counters, and rosters back to an empty
// network with the same max_agents capacity.
func (n *Network) Reset() {
	n.growMu.Lock()
	defer n.growMu.Unlock()
	n.agentType = n.agentType[:0]
	n.creationTime = n.creationTime[:0]
	n.followers = n.followers[:0]
	n.followees = n.followees[:0]
	n.byType = make(map[int][]int)
	n.nAgents.Store(0)
}

func (n *Network) assertValidID(id int) {
	if id < 0 || id >= n.Size() {
		panic(fmt.Sprintf("network: agent id %d out of range [0,%d)", id, n.Size()))
	}
}
