// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/siemens/edgerank/geo"
	"github.com/siemens/edgerank/progress"
	"github.com/siemens/edgerank/rank"
	"github.com/siemens/edgerank/types"
)

// enrichmentPool is the part of [geo.Enricher] the pipeline needs: schedule
// a lookup without blocking, and later drain the backlog.
type enrichmentPool interface {
	Resolve(address string)
	StopWait()
}

// pipeline wires probe outcomes and enrichment placements into the
// leaderboard, the progress tracker, and the renderer. Its drain loop is the
// coordinating single consumer of both streams; nothing else touches the
// renderer.
type pipeline struct {
	board    *rank.Board
	tracker  *progress.Tracker
	enricher enrichmentPool
	maxRTT   time.Duration // 0 = no maximum-latency filter.
	render   *renderer
}

// drain consumes probe outcomes until their stream closes, then lets the
// enrichment pool drain, consuming placements all the while. Every completed
// probe counts towards progress, reachable or not; only reachable outcomes
// passing the maximum-latency filter get offered to the board, and only
// admitted addresses get a location lookup scheduled. The renderer is driven
// after every consumed event.
func (p *pipeline) drain(outcomes <-chan types.Outcome, placements <-chan geo.Placement) {
	for outcomes != nil || placements != nil {
		select {
		case outcome, ok := <-outcomes:
			if !ok {
				// Every dispatched probe has completed; only now let the
				// enrichment pool drain and close its stream.
				outcomes = nil
				go p.enricher.StopWait()
				continue
			}
			p.tracker.RecordCompletion()
			if outcome.Reachable && (p.maxRTT == 0 || outcome.RTT < p.maxRTT) {
				if p.board.Offer(outcome.Address, outcome.RTT) {
					p.enricher.Resolve(outcome.Address)
				}
			}
		case placement, ok := <-placements:
			if !ok {
				placements = nil
				continue
			}
			p.board.Place(placement.Address, placement.Location)
		}
		snap := p.tracker.Snapshot()
		message := ""
		if snap.Done() {
			message = labelStyle.Styled("Waiting for location lookups to finish...")
		}
		p.render.Render(p.board.Snapshot(), snap, p.board.TakeDirty(), message)
	}
}
