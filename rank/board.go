// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package rank

import (
	"sort"
	"sync"
	"time"

	"github.com/siemens/edgerank/types"
)

// Board is a bounded leaderboard of the lowest-latency addresses seen so far.
// It keeps at most its configured limit of entries, sorted ascending by
// latency, with ties keeping their arrival order. A typical use case for a
// Board is to consume probe outcomes from an event stream (channel) as
// addresses get probed concurrently, and geo placements as lookups complete.
//
// All methods are safe for concurrent use; every read or mutation happens
// under a single mutex with short critical sections.
type Board struct {
	mu      sync.Mutex
	limit   int
	entries []types.Entry
	dirty   bool
}

// New returns a new and properly initialized Board keeping at most limit
// entries.
func New(limit int) *Board {
	return &Board{
		limit:   limit,
		entries: make([]types.Entry, 0, limit),
	}
}

// Offer proposes a probed address for admission. An address is admitted if
// the board isn't full yet, or if its latency is strictly less than the
// current worst admitted entry. Admission inserts a new entry with a pending
// location, re-sorts, truncates back to the limit (possibly evicting the
// previous worst entry), and marks the board dirty. A rejected offer mutates
// nothing.
//
// Offer reports whether the address was admitted, so that the caller can
// schedule a location lookup for it.
func (b *Board) Offer(address string, latency time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) >= b.limit &&
		latency >= b.entries[len(b.entries)-1].Latency {
		return false
	}
	b.entries = append(b.entries, types.Entry{
		Address: address,
		Latency: latency,
	})
	// Stable, so entries with equal latency keep their arrival order.
	sort.SliceStable(b.entries, func(a, z int) bool {
		return b.entries[a].Latency < b.entries[z].Latency
	})
	if len(b.entries) > b.limit {
		b.entries = b.entries[:b.limit]
	}
	b.dirty = true
	return true
}

// Place applies a completed location lookup to the entry with the given
// address, if that entry is still on the board. If the address got evicted
// while its lookup was in flight, the placement is dropped; evicted entries
// never come back. Place reports whether an entry was actually updated.
func (b *Board) Place(address string, location string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for idx := range b.entries {
		if b.entries[idx].Address == address {
			b.entries[idx].Location = types.Resolve(location)
			b.dirty = true
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current leaderboard, in rank order.
func (b *Board) Snapshot() []types.Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := make([]types.Entry, len(b.entries))
	copy(entries, b.entries)
	return entries
}

// Len returns the current number of entries on the board.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// TakeDirty returns whether the board changed since the last call and resets
// the flag. The single rendering loop consumes it to decide whether the table
// region needs a repaint.
func (b *Board) TakeDirty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	dirty := b.dirty
	b.dirty = false
	return dirty
}
