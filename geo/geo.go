// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package geo

import (
	"sync"

	"github.com/gammazero/workerpool"
)

// Lookup resolves an address into a human-readable location string. A Lookup
// never fails: on any error it returns a fixed sentinel string instead, and
// it must complete or time out within a bounded external call.
type Lookup interface {
	Locate(address string) string
}

// Placement is the message an enrichment task delivers once its lookup has
// completed: the address it looked up together with the resolved (or
// sentinel) location. The consumer applies placements to the leaderboard
// under the board's lock; a placement for an address that got evicted in the
// meantime is simply dropped there.
type Placement struct {
	Address  string
	Location string
}

// Enricher resolves locations for leaderboard addresses on its own small
// worker pool, so lookups never hold up probe completion handling. Completed
// lookups are streamed as [Placement] messages to the channel returned
// together with the new Enricher.
type Enricher struct {
	lookup     Lookup
	workers    *workerpool.WorkerPool
	placements chan Placement
	stopOnce   sync.Once
}

// DefaultWorkers is the default size of the enrichment pool; location
// lookups are slow HTTP round trips, but there are never more than a
// leaderboard's worth of them in flight.
const DefaultWorkers = 5

// New returns a new Enricher resolving locations through the given Lookup on
// a worker pool of the specified size, together with its placement stream.
// The stream is closed by StopWait once all enqueued lookups have completed.
func New(lookup Lookup, size int) (*Enricher, <-chan Placement) {
	placements := make(chan Placement, size)
	return &Enricher{
		lookup:     lookup,
		workers:    workerpool.New(size),
		placements: placements,
	}, placements
}

// Resolve enqueues a location lookup for the given address. It is
// fire-and-forget: Resolve never blocks the caller, no matter how busy the
// pool is.
func (e *Enricher) Resolve(address string) {
	e.workers.Submit(func() {
		e.placements <- Placement{
			Address:  address,
			Location: e.lookup.Locate(address),
		}
	})
}

// StopWait waits for all queued lookups to get processed and then finally
// closes the placement stream.
func (e *Enricher) StopWait() {
	e.stopOnce.Do(func() {
		e.workers.StopWait()
		close(e.placements)
	})
}
