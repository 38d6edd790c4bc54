// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"errors"
	"time"

	"github.com/go-ping/ping"
)

// ICMP measures latency by sending echo requests and reading the round-trip
// summary statistics. Every single echo must be answered for the probe to
// succeed; the reported latency is the summary's average round-trip time.
type ICMP struct {
	Tries        int           // echoes per probe.
	Interval     time.Duration // distance between echoes.
	Timeout      time.Duration // per-attempt reply deadline.
	Unprivileged bool          // if true, uses UDP-based pings instead of privileged ICMPs.
}

// NewICMP returns an ICMP strategy sending tries echoes per probe with the
// specified per-attempt timeout.
func NewICMP(tries int, timeout time.Duration) *ICMP {
	return &ICMP{
		Tries:    tries,
		Interval: 200 * time.Millisecond,
		Timeout:  timeout,
	}
}

// Probe pings the given address. It returns the average round-trip time when
// all echoes came back, and an error otherwise.
func (s *ICMP) Probe(ctx context.Context, address string) (time.Duration, error) {
	pinger, err := ping.NewPinger(address)
	if err != nil {
		return 0, err
	}
	pinger.SetPrivileged(!s.Unprivileged)
	pinger.Count = s.Tries
	pinger.Interval = s.Interval
	// Always limit waiting for the last echo to get reflected (or not)!
	pinger.Timeout = time.Duration(s.Tries) * (s.Interval + s.Timeout)
	// While the echoes are in flight we monitor the context; the done channel
	// works "the other way round" in that it terminates the concurrent
	// context monitoring.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pinger.Stop()
		case <-done:
		}
	}()
	if err := pinger.Run(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	stats := pinger.Statistics()
	if stats.PacketsRecv < pinger.Count {
		return 0, errors.New("icmp: lost echoes")
	}
	return stats.AvgRtt, nil
}
