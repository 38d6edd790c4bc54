// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package probe

import (
	"context"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("icmp echo strategy", func() {

	BeforeEach(func() {
		if os.Getuid() != 0 {
			Skip("needs root")
		}
	})

	It("reports the average round trip against loopback", func(ctx context.Context) {
		strategy := NewICMP(2, time.Second)
		strategy.Interval = 50 * time.Millisecond
		rtt, err := strategy.Probe(ctx, "127.0.0.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(rtt).To(BeNumerically(">", 0))
	}, NodeTimeout(30*time.Second))

	It("fails when echoes go unanswered", func(ctx context.Context) {
		// 192.0.2.0/24 is TEST-NET-1, guaranteed not to answer.
		strategy := NewICMP(1, 250*time.Millisecond)
		strategy.Interval = 50 * time.Millisecond
		_, err := strategy.Probe(ctx, "192.0.2.1")
		Expect(err).To(HaveOccurred())
	}, NodeTimeout(30*time.Second))
})
