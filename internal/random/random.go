// Package random provides a seedable deterministic random source for the
// simulation, plus weighted discrete sampling built on top of it.
package random

import (
	"math"
	"math/rand"
	"sync"
)

// Source is a seedable, concurrency-safe random number generator. Unlike
// crypto/rand it is fully deterministic for a given seed, which the
// simulation driver relies on for reproducible runs (same seed, same
// adjacency, same dump output).
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source seeded with seed. Two Sources constructed with the
// same seed and driven with the same call sequence produce identical
// results.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // deterministic simulation, not crypto
}

var (
	defaultMu     sync.Mutex
	defaultSource = New(1)
)

// Seed reseeds the package-level default Source.
func Seed(seed int64) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSource = New(seed)
}

// Float64 returns a random float64 in [0.0,1.0) from the default Source.
func Float64() float64 {
	defaultMu.Lock()
	s := defaultSource
	defaultMu.Unlock()
	return s.Float64()
}

// Float64 returns a random float64 in [0.0,1.0).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Float64Open01 returns a random float64 in (0.0,1.0], suitable for the
// exponential time-advance rule (-ln(u)/total) where u=0 would diverge.
func (s *Source) Float64Open01() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.rng.Float64()
	for u == 0 {
		u = s.rng.Float64()
	}
	return 1 - u
}

// Intn returns a random int in [0,n) from the default Source.
func Intn(n int) int {
	defaultMu.Lock()
	s := defaultSource
	defaultMu.Unlock()
	return s.Intn(n)
}

// Intn returns a random int in [0,n).
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Phase returns a random phase value in [0, 2π) from the default Source.
func Phase() float64 {
	return Float64() * 2 * math.Pi
}

// DiscreteSample draws an index in [0,len(weights)) with probability
// proportional to weights[i]. Weights must be non-negative. If they sum to
// zero or less, no event can occur and it returns -1; callers (the engine,
// the follow-model mixture, the follower and agent-type samplers) treat -1
// as a soft sampling failure.
func (s *Source) DiscreteSample(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	r := s.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}
	return len(weights) - 1
}

// WeightedIndex is a cumulative-weight table supporting O(log n) sampling via
// binary search once built, used by the Follow action's bin sampler, which
// rebuilds one from each bin's current population weight and samples it once
// per event.
type WeightedIndex struct {
	cumulative []float64
}

// NewWeightedIndex builds a WeightedIndex from a static weight slice.
func NewWeightedIndex(weights []float64) *WeightedIndex {
	cum := make([]float64, len(weights))
	var sum float64
	for i, w := range weights {
		sum += w
		cum[i] = sum
	}
	return &WeightedIndex{cumulative: cum}
}

// Total returns the sum of all weights.
func (w *WeightedIndex) Total() float64 {
	if len(w.cumulative) == 0 {
		return 0
	}
	return w.cumulative[len(w.cumulative)-1]
}

// Sample draws an index using u, a caller-supplied uniform value in [0,1).
func (w *WeightedIndex) Sample(u float64) int {
	total := w.Total()
	if total <= 0 {
		return -1
	}
	target := u * total
	lo, hi := 0, len(w.cumulative)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if w.cumulative[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
