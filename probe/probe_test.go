// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/siemens/edgerank/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// scriptedStrategy answers probes from a fixed latency table; addresses not
// in the table count as unreachable. It also records how often each address
// got probed.
type scriptedStrategy struct {
	mu      sync.Mutex
	rtts    map[string]time.Duration
	counted map[string]int
}

func newScriptedStrategy(rtts map[string]time.Duration) *scriptedStrategy {
	return &scriptedStrategy{
		rtts:    rtts,
		counted: map[string]int{},
	}
}

func (s *scriptedStrategy) Probe(_ context.Context, address string) (time.Duration, error) {
	s.mu.Lock()
	s.counted[address]++
	rtt, ok := s.rtts[address]
	s.mu.Unlock()
	if !ok {
		return 0, errors.New("unreachable")
	}
	return rtt, nil
}

func (s *scriptedStrategy) count(address string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counted[address]
}

var _ = Describe("probing engine", func() {

	It("handles multiple stops", func() {
		engine, _ := New(newScriptedStrategy(nil), 1)
		for round := 0; round < 2; round++ {
			By(fmt.Sprintf("%d round", round+1))
			done := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				engine.StopWait()
				close(done)
			}()
			Eventually(done).WithTimeout(1 * time.Second).Should(BeClosed())
		}
	})

	It("emits exactly one outcome per target and then closes", func(ctx context.Context) {
		targets := []string{}
		rtts := map[string]time.Duration{}
		for n := 0; n < 40; n++ {
			addr := "192.0.2." + strconv.Itoa(n)
			targets = append(targets, addr)
			if n%2 == 0 { // odd ones stay unreachable
				rtts[addr] = time.Duration(n+1) * time.Millisecond
			}
		}
		strategy := newScriptedStrategy(rtts)
		engine, outcomes := New(strategy, 8)
		go func() {
			engine.ProbeAll(ctx, targets)
			engine.StopWait()
		}()
		seen := map[string]types.Outcome{}
		for outcome := range outcomes {
			_, dup := seen[outcome.Address]
			Expect(dup).To(BeFalse(), "duplicate outcome for %s", outcome.Address)
			seen[outcome.Address] = outcome
		}
		Expect(seen).To(HaveLen(len(targets)))
		for _, addr := range targets {
			Expect(strategy.count(addr)).To(Equal(1))
			rtt, reachable := rtts[addr]
			Expect(seen[addr].Reachable).To(Equal(reachable))
			if reachable {
				Expect(seen[addr].RTT).To(Equal(rtt))
			} else {
				Expect(seen[addr].RTT).To(BeZero())
			}
		}
	}, NodeTimeout(10*time.Second))

	It("keeps unreachable targets as outcomes instead of dropping them", func(ctx context.Context) {
		engine, outcomes := New(newScriptedStrategy(nil), 2)
		go func() {
			engine.ProbeAll(ctx, []string{"192.0.2.1"})
			engine.StopWait()
		}()
		Eventually(outcomes).Should(Receive(Equal(
			types.Outcome{Address: "192.0.2.1"})))
		Eventually(outcomes).Should(BeClosed())
	}, NodeTimeout(5*time.Second))
})
