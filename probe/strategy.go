// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"time"
)

// Strategy performs one latency measurement against one address. A strategy
// makes a configured number of sequential attempts; if any attempt fails or
// times out the whole probe fails — partial successes are never averaged.
// Only when every attempt succeeds does Probe return the arithmetic mean of
// the per-attempt round-trip times.
//
// Strategies must be safe for concurrent use, as the probing pool runs many
// probes against different addresses at the same time.
type Strategy interface {
	Probe(ctx context.Context, address string) (time.Duration, error)
}

// Workers returns a sensible probing pool size for the given strategy:
// ICMP-style probes are cheap enough per worker to run wide, while raw
// connects consume a socket per attempt and run narrower.
func Workers(s Strategy) int {
	if _, ok := s.(*TCP); ok {
		return DefaultTCPWorkers
	}
	return DefaultICMPWorkers
}

// Default pool sizes per strategy.
const (
	DefaultICMPWorkers = 50
	DefaultTCPWorkers  = 10
)
