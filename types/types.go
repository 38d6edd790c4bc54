// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "time"

// Outcome is the result of probing a single target address. An unreachable
// address (any attempt failed or timed out) has Reachable set to false and a
// zero RTT.
type Outcome struct {
	Address   string        `json:"address"`
	RTT       time.Duration `json:"rtt"`
	Reachable bool          `json:"reachable"`
}

// Entry is one leaderboard row: an address admitted into the top-K together
// with its measured latency and its (possibly still pending) geographic
// location.
type Entry struct {
	Address  string        `json:"address"`
	Latency  time.Duration `json:"latency"`
	Location Location      `json:"location"`
}

// LatencyMillis returns the entry's latency in (fractional) milliseconds.
func (e Entry) LatencyMillis() float64 {
	return float64(e.Latency) / float64(time.Millisecond)
}

// Location is the geographic annotation of a leaderboard entry. The zero
// value is the pending state: the entry has been admitted, but its location
// lookup hasn't completed yet.
type Location struct {
	Resolved bool   `json:"resolved"`
	Name     string `json:"name"`
}

// Resolve returns the resolved location for the given name.
func Resolve(name string) Location {
	return Location{Resolved: true, Name: name}
}

// String returns the location name, or the "still pending" ellipsis.
func (l Location) String() string {
	if !l.Resolved {
		return "..."
	}
	return l.Name
}
