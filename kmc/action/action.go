// Package action implements the two concrete event kinds the engine samples
// from: AddAgent (grows the network) and Follow (connects two agents via
// one of several preferential-attachment models). Both share the Base
// lifecycle fields (rate, weight, happened/finished observers) and
// implement the Action capability set so the engine can treat them
// uniformly.
package action

import (
	"sync"

	"go.uber.org/atomic"
)

// ApproxMonth is the fixed-length simulated-time bucket (minutes) used to
// group agent cohorts and select weight-schedule entries.
const ApproxMonth = 30 * 24 * 60

// MonthIndex returns the month bucket for simulated time now.
func MonthIndex(now float64) int {
	if now < 0 {
		return 0
	}
	return int(now / ApproxMonth)
}

// HappenedHandler is invoked once per Invoke that produced a graph change.
type HappenedHandler func()

// FinishedHandler is invoked exactly once per Invoke.
type FinishedHandler func()

// Action is the common capability set the engine samples over. Concrete
// actions (AddAgent, Follow) differ only in Invoke's behavior.
type Action interface {
	Name() string
	Weight() float64
	Rate() int64
	UpdateWeight(now float64)
	Invoke(now float64)
	Reset()
	OnHappened(HappenedHandler)
	OnFinished(FinishedHandler)
}

// Base holds the rate counter, current weight, and the happened/finished
// observer lists common to every Action.
type Base struct {
	name   string
	rate   atomic.Int64
	weight atomic.Float64

	mu        sync.RWMutex
	happened  []HappenedHandler
	finished  []FinishedHandler
}

// NewBase returns a Base identified by name for embedding in a concrete
// Action.
func NewBase(name string) Base {
	return Base{name: name}
}

// Name returns the action's name.
func (b *Base) Name() string { return b.name }

// Weight returns the current sampling weight.
func (b *Base) Weight() float64 { return b.weight.Load() }

// Rate returns the monotone count of successful invocations.
func (b *Base) Rate() int64 { return b.rate.Load() }

func (b *Base) setWeight(w float64) { b.weight.Store(w) }

func (b *Base) incRate() { b.rate.Inc() }

// OnHappened registers a handler for the happened signal.
func (b *Base) OnHappened(h HappenedHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.happened = append(b.happened, h)
}

// OnFinished registers a handler for the finished signal.
func (b *Base) OnFinished(h FinishedHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finished = append(b.finished, h)
}

func (b *Base) emitHappened() {
	b.mu.RLock()
	handlers := b.happened
	b.mu.RUnlock()
	for _, h := range handlers {
		h()
	}
}

func (b *Base) emitFinished() {
	b.mu.RLock()
	handlers := b.finished
	b.mu.RUnlock()
	for _, h := range handlers {
		h()
	}
}

func (b *Base) resetCounters() {
	b.rate.Store(0)
	b.weight.Store(0)
}
