// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/siemens/edgerank/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var leaderboard = []types.Entry{
	{
		Address:  "104.16.0.16",
		Latency:  12500 * time.Microsecond,
		Location: types.Resolve("Frankfurt, DE"),
	},
	{
		Address: "104.16.32.1",
		Latency: 20 * time.Millisecond,
	},
}

var _ = Describe("result table", func() {

	It("renders a fixed-width table in leaderboard order", func() {
		var buf bytes.Buffer
		Expect(Write(&buf, leaderboard)).To(Succeed())
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		Expect(lines).To(HaveExactElements(
			"Rank    IP Address        Location                      Latency (ms)",
			strings.Repeat("-", 70),
			"1       104.16.0.16       Frankfurt, DE                 12.50",
			"2       104.16.32.1       N/A                           20.00",
		))
	})

	It("saves the table to a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "results.txt")
		Expect(Save(path, leaderboard)).To(Succeed())
		content, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("104.16.0.16"))
		Expect(string(content)).To(ContainSubstring("Frankfurt, DE"))
	})

	It("reports save failures without panicking", func() {
		Expect(Save("/nowhere/results.txt", leaderboard)).NotTo(Succeed())
	})
})
