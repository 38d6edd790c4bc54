// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package progress

import (
	"sync"
	"time"
)

// alpha is the smoothing factor for the exponentially-weighted moving average
// of seconds per completed probe.
const alpha = 0.95

// Tracker keeps the scan progress counters together with a smoothed
// throughput estimate. The tested counter increases by exactly one per
// completed probe, reachable or not, and reaches the total exactly once, when
// the scan finishes.
type Tracker struct {
	mu    sync.Mutex
	total int
	count int
	start time.Time
	prev  time.Time
	rate  float64 // smoothed seconds per completion
	now   func() time.Time
}

// TrackerOption can be passed to New when creating new Tracker objects.
type TrackerOption func(*Tracker)

// New returns a new Tracker for a scan over total targets, with the clock
// started now.
func New(total int, options ...TrackerOption) *Tracker {
	t := &Tracker{
		total: total,
		now:   time.Now,
	}
	for _, opt := range options {
		opt(t)
	}
	t.start = t.now()
	t.prev = t.start
	return t
}

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		t.now = now
	}
}

// RecordCompletion accounts for one completed probe, whatever its outcome.
// The very first completion initializes the per-item rate to the time since
// the tracker was created; every further completion folds its delta into the
// moving average.
func (t *Tracker) RecordCompletion() {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	delta := now.Sub(t.prev).Seconds()
	t.prev = now
	t.count++
	if t.count == 1 {
		t.rate = delta
		return
	}
	t.rate = alpha*t.rate + (1-alpha)*delta
}

// Snapshot returns the current progress state together with the derived
// elapsed and estimated-remaining durations.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		Tested:    t.count,
		Total:     t.total,
		Elapsed:   t.now().Sub(t.start),
		Remaining: time.Duration(float64(t.total-t.count) * t.rate * float64(time.Second)),
	}
}

// Rate returns the current smoothed seconds-per-completion estimate.
func (t *Tracker) Rate() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rate
}

// Snapshot is a point-in-time copy of the tracker's state.
type Snapshot struct {
	Tested    int
	Total     int
	Elapsed   time.Duration
	Remaining time.Duration
}

// Done returns true once every target has been tested.
func (s Snapshot) Done() bool {
	return s.Tested == s.Total
}
