// Package engine runs the discrete-event loop.
package engine

import (
	"container/heap"
	"context"
	"errors"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/weirsim/weir-go/internal/sim/config"
	"github.com/weirsim/weir-go/internal/telemetry/metric"
	"github.com/weirsim/weir-go/pkg/simtime"
)

// ErrInvalidTime is returned when an event is scheduled at the invalid-time
// sentinel.
var ErrInvalidTime = errors.New("engine: cannot schedule at invalid time")

type event struct {
	at  simtime.Time
	seq uint64
	fn  func()
}

// eventQueue is a min-heap ordered by time, then by insertion sequence so
// simultaneous events run FIFO.
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }
func (q eventQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}
func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(*event)) }
func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}

// Engine is the discrete-event run loop.
type Engine struct {
	workers  int
	runAhead simtime.Time
	log      hclog.Logger
	metrics  *metric.Registry

	mu    sync.Mutex
	queue eventQueue
	seq   uint64
	clock simtime.Time
}

// New builds an engine from the resolved configuration. The configuration is
// read here, once; the engine keeps no reference to it, so the caller may
// release the configuration after the run completes. log and metrics may be
// nil.
func New(cfg *config.Config, log hclog.Logger, metrics *metric.Registry) *Engine {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Engine{
		workers:  cfg.Workers(),
		runAhead: simtime.Time(cfg.MinRunAhead()) * simtime.Millisecond,
		log:      log,
		metrics:  metrics,
	}
}

// Now returns the current simulated time.
func (e *Engine) Now() simtime.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock
}

// Schedule enqueues fn at simulated time at. Times earlier than the current
// clock are clamped to it; simulated time never runs backwards.
func (e *Engine) Schedule(at simtime.Time, fn func()) error {
	if !at.Valid() {
		return ErrInvalidTime
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if at < e.clock {
		at = e.clock
	}
	e.seq++
	heap.Push(&e.queue, &event{at: at, seq: e.seq, fn: fn})
	return nil
}

// Run executes events in time order until the queue drains or ctx is
// cancelled. With zero workers everything runs on the calling goroutine;
// otherwise events within one run-ahead window are dispatched to the worker
// pool concurrently, with a barrier between windows.
func (e *Engine) Run(ctx context.Context) error {
	e.log.Debug("engine starting", "workers", e.workers, "runahead", e.runAhead.String())
	if e.workers == 0 {
		return e.runSequential(ctx)
	}
	return e.runParallel(ctx)
}

func (e *Engine) runSequential(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		e.mu.Lock()
		if len(e.queue) == 0 {
			e.mu.Unlock()
			return nil
		}
		ev := heap.Pop(&e.queue).(*event)
		e.clock = ev.at
		e.mu.Unlock()

		ev.fn()
		if e.metrics != nil {
			e.metrics.EventExecuted(ev.at)
		}
	}
}

func (e *Engine) runParallel(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		e.mu.Lock()
		if len(e.queue) == 0 {
			e.mu.Unlock()
			return nil
		}
		// Saturate near the time ceiling: the addition must not wrap below
		// the head event, or the window would collect nothing.
		windowEnd := e.queue[0].at + e.runAhead
		if windowEnd < e.queue[0].at {
			windowEnd = simtime.Invalid - 1
		}
		var batch []*event
		for len(e.queue) > 0 && e.queue[0].at <= windowEnd {
			batch = append(batch, heap.Pop(&e.queue).(*event))
		}
		// The heap pops in order, so the last popped event carries the
		// window's latest timestamp. Advancing the clock before execution
		// makes in-window reschedules land in the next window.
		e.clock = batch[len(batch)-1].at
		e.mu.Unlock()

		e.dispatch(batch)
	}
}

// dispatch runs one window's events on the worker pool and waits for all of
// them before returning.
func (e *Engine) dispatch(batch []*event) {
	workers := e.workers
	if workers > len(batch) {
		workers = len(batch)
	}

	work := make(chan *event)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for ev := range work {
				ev.fn()
				if e.metrics != nil {
					e.metrics.EventExecuted(ev.at)
				}
			}
		}()
	}
	for _, ev := range batch {
		work <- ev
	}
	close(work)
	wg.Wait()
}
