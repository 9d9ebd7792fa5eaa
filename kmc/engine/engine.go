// Package engine implements the KMC event-dispatch loop: a statically known
// tuple of actions, weighted discrete sampling over their current weights,
// and the simulated-time advance rule driven by each action's finished
// signal.
package engine

import (
	"math"
	"sync"

	"go.uber.org/atomic"

	"github.com/arminms/hashkat-v2/internal/random"
	"github.com/arminms/hashkat-v2/kmc/action"
)

// Engine holds a fixed set of actions, samples one per next_action() call,
// and advances simulated time whenever an action finishes.
type Engine struct {
	actions []action.Action
	rng     *random.Source

	useRandomTimeIncrement bool

	timeMu sync.Mutex
	t      float64

	steps   atomic.Int64
	events  atomic.Int64
}

// New wires each action's happened/finished signals and returns an Engine
// ready for PostInit.
func New(actions []action.Action, rng *random.Source, useRandomTimeIncrement bool) *Engine {
	e := &Engine{
		actions:                actions,
		rng:                    rng,
		useRandomTimeIncrement: useRandomTimeIncrement,
	}
	for _, a := range actions {
		a.OnHappened(e.onHappened)
		a.OnFinished(e.onFinished)
	}
	return e
}

func (e *Engine) onHappened() {
	e.events.Inc()
}

// onFinished implements §4.5's time-advance rule: total = Σ weights; if
// random time increment is enabled, t += -ln(u)/total for u drawn from
// (0,1]; otherwise t += 1/total. A zero total leaves time unchanged (every
// action has expired; the driver's time bound will terminate the run).
func (e *Engine) onFinished() {
	var total float64
	for _, a := range e.actions {
		total += a.Weight()
	}
	if total <= 0 {
		e.steps.Inc()
		return
	}

	var dt float64
	if e.useRandomTimeIncrement {
		u := e.rng.Float64Open01()
		dt = -math.Log(u) / total
	} else {
		dt = 1 / total
	}

	e.timeMu.Lock()
	e.t += dt
	e.timeMu.Unlock()

	e.steps.Inc()
}

// Time returns the current simulated time, in minutes.
func (e *Engine) Time() float64 {
	e.timeMu.Lock()
	defer e.timeMu.Unlock()
	return e.t
}

// Steps returns the number of finished invocations processed so far.
func (e *Engine) Steps() int64 { return e.steps.Load() }

// Events returns the number of invocations that actually changed the
// network (happened fired).
func (e *Engine) Events() int64 { return e.events.Load() }

// NextAction refreshes every action's weight, draws a weighted discrete
// index over the refreshed weights, and returns the selected action. It
// returns (nil, false) if every weight is zero (nothing left to sample).
func (e *Engine) NextAction() (action.Action, bool) {
	now := e.Time()
	weights := make([]float64, len(e.actions))
	for i, a := range e.actions {
		a.UpdateWeight(now)
		weights[i] = a.Weight()
	}

	idx := e.rng.DiscreteSample(weights)
	if idx < 0 {
		return nil, false
	}
	return e.actions[idx], true
}

// Actions returns the underlying action tuple, for dump/statistics code
// that needs to range over every action by name.
func (e *Engine) Actions() []action.Action {
	return e.actions
}

// Reset clears every action's counters and the engine's own clock/counters.
func (e *Engine) Reset() {
	for _, a := range e.actions {
		a.Reset()
	}
	e.timeMu.Lock()
	e.t = 0
	e.timeMu.Unlock()
	e.steps.Store(0)
	e.events.Store(0)
}
