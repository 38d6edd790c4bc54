// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"sync"

	"github.com/siemens/edgerank/types"

	"github.com/gammazero/workerpool"
)

// Engine probes target addresses on a goroutine-limited worker pool and
// streams one [types.Outcome] per target to a result channel. Tasks execute
// independently and complete in arbitrary order; the engine makes no ordering
// promise across addresses. The engine has no cancellation or early-exit
// path: it is done exactly when every dispatched probe has completed.
type Engine struct {
	strategy Strategy
	workers  *workerpool.WorkerPool
	outcomes chan types.Outcome
	stopOnce sync.Once
}

// New returns a new Engine probing with the given strategy on a worker pool
// of the specified size, together with its outcome stream. The stream is
// closed by StopWait once all enqueued probes have completed.
func New(strategy Strategy, size int) (*Engine, <-chan types.Outcome) {
	outcomes := make(chan types.Outcome, size)
	return &Engine{
		strategy: strategy,
		workers:  workerpool.New(size),
		outcomes: outcomes,
	}, outcomes
}

// ProbeAll enqueues one probing task per target address. It returns as soon
// as all tasks are enqueued; the outcomes then trickle in on the stream as
// the pool works through them. Callers typically run ProbeAll plus a
// following StopWait in a separate goroutine and drain the outcome stream
// until it is closed.
func (e *Engine) ProbeAll(ctx context.Context, targets []string) {
	for _, target := range targets {
		target := target
		e.workers.Submit(func() {
			outcome := types.Outcome{Address: target}
			if rtt, err := e.strategy.Probe(ctx, target); err == nil {
				outcome.RTT = rtt
				outcome.Reachable = true
			}
			e.outcomes <- outcome
		})
	}
}

// StopWait waits for all queued probes to get processed and then finally
// closes the outcome stream.
func (e *Engine) StopWait() {
	e.stopOnce.Do(func() {
		e.workers.StopWait()
		close(e.outcomes)
	})
}
