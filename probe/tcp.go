// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"net"
	"strconv"
	"time"
)

// DefaultTCPPort is the service port handshakes are timed against; CDN edges
// universally answer on https.
const DefaultTCPPort = 443

// TCP measures latency by timing full TCP handshakes against a fixed service
// port. Every handshake must succeed within the per-attempt timeout for the
// probe to succeed; the reported latency is the mean handshake time.
type TCP struct {
	Port    int           // service port, DefaultTCPPort when zero.
	Tries   int           // handshakes per probe.
	Timeout time.Duration // per-attempt connect deadline.
}

// NewTCP returns a TCP strategy timing tries handshakes per probe with the
// specified per-attempt timeout.
func NewTCP(tries int, timeout time.Duration) *TCP {
	return &TCP{
		Port:    DefaultTCPPort,
		Tries:   tries,
		Timeout: timeout,
	}
}

// Probe times s.Tries sequential handshakes against the given address and
// returns their mean duration, or an error as soon as one handshake fails.
func (s *TCP) Probe(ctx context.Context, address string) (time.Duration, error) {
	port := s.Port
	if port == 0 {
		port = DefaultTCPPort
	}
	endpoint := net.JoinHostPort(address, strconv.Itoa(port))
	dialer := net.Dialer{Timeout: s.Timeout}
	var total time.Duration
	for attempt := 0; attempt < s.Tries; attempt++ {
		begin := time.Now()
		conn, err := dialer.DialContext(ctx, "tcp", endpoint)
		if err != nil {
			return 0, err
		}
		total += time.Since(begin)
		conn.Close()
	}
	return total / time.Duration(s.Tries), nil
}
