package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/gammazero/deque"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/arminms/hashkat-v2/kmc/action"
)

// pendingQueue is the one-deep FIFO of engine-produced action references
// shared by the concurrent driver's worker pool: a mutex-guarded
// deque.Deque that holds at most one entry.
type pendingQueue struct {
	mu sync.Mutex
	q  *deque.Deque[action.Action]
}

func newPendingQueue() *pendingQueue {
	return &pendingQueue{q: deque.New[action.Action](1)}
}

func (p *pendingQueue) pop() (action.Action, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.q.Len() == 0 {
		return nil, false
	}
	return p.q.PopFront(), true
}

// pushIfEmpty enqueues a only if the queue is currently empty, preserving
// the one-deep invariant: at most one produced-but-not-yet-consumed action
// reference exists at a time.
func (p *pendingQueue) pushIfEmpty(a action.Action) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.q.Len() > 0 {
		return false
	}
	p.q.PushBack(a)
	return true
}

// RunConcurrent runs the event loop across a fixed-size worker pool backed
// by a one-deep pending-action queue: each worker pops a pending action and
// invokes it if one is waiting, otherwise produces the next one via
// engine.NextAction and pushes it for some worker (possibly itself) to
// consume. threads <= 0 falls back to the configured Analysis.Threads, then
// to 1. A worker's panic is recovered, logged, and ends only that worker;
// the run as a whole stops once every worker has exited or the bounds are
// reached.
func (d *Driver) RunConcurrent(threads int) int64 {
	if threads <= 0 {
		threads = d.cfg.Analysis.Threads
	}
	if threads <= 0 {
		threads = 1
	}

	start := time.Now()
	maxRealTime := time.Duration(d.cfg.Analysis.MaxRealTime * float64(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := newPendingQueue()
	var ticks atomic.Int64

	group, _ := errgroup.WithContext(ctx)
	for i := 0; i < threads; i++ {
		workerID := i
		group.Go(func() error {
			d.workerLoop(ctx, cancel, queue, &ticks, start, maxRealTime, workerID)
			return nil
		})
	}
	_ = group.Wait()

	d.log.Info().
		Int("threads", threads).
		Int64("ticks", ticks.Load()).
		Float64("simulated_time", d.eng.Time()).
		Int64("events", d.eng.Events()).
		Int("agents", d.net.Size()).
		Msg("concurrent run complete")

	return ticks.Load()
}

func (d *Driver) workerLoop(ctx context.Context, cancel context.CancelFunc, queue *pendingQueue, ticks *atomic.Int64, start time.Time, maxRealTime time.Duration, workerID int) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Int("worker", workerID).Msg("worker exited on panic")
		}
	}()

	for {
		if ctx.Err() != nil {
			return
		}
		if d.eng.Time() >= d.cfg.Analysis.MaxTime || time.Since(start) >= maxRealTime {
			cancel()
			return
		}

		if a, ok := queue.pop(); ok {
			a.Invoke(d.eng.Time())
			ticks.Inc()
			continue
		}

		next, ok := d.eng.NextAction()
		if !ok {
			cancel()
			return
		}
		queue.pushIfEmpty(next)
	}
}
