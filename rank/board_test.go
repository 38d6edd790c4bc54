// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package rank

import (
	"time"

	"github.com/siemens/edgerank/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// sortedAscending checks the board invariant: never more than the limit, and
// latencies ascending.
func sortedAscending(entries []types.Entry) bool {
	for idx := 1; idx < len(entries); idx++ {
		if entries[idx-1].Latency > entries[idx].Latency {
			return false
		}
	}
	return true
}

var _ = Describe("leaderboard", func() {

	It("admits everything while below the limit", func() {
		board := New(3)
		Expect(board.Offer("A", ms(150))).To(BeTrue())
		Expect(board.Offer("B", ms(50))).To(BeTrue())
		Expect(board.Offer("C", ms(100))).To(BeTrue())
		Expect(board.Snapshot()).To(HaveExactElements(
			types.Entry{Address: "B", Latency: ms(50)},
			types.Entry{Address: "C", Latency: ms(100)},
			types.Entry{Address: "A", Latency: ms(150)},
		))
	})

	It("keeps the same final top-K for any arrival order", func() {
		offers := []types.Entry{
			{Address: "A", Latency: ms(50)},
			{Address: "B", Latency: ms(150)},
			{Address: "C", Latency: ms(30)},
			{Address: "D", Latency: ms(200)},
		}
		perms := [][]int{}
		var permute func(order []int, rest []int)
		permute = func(order []int, rest []int) {
			if len(rest) == 0 {
				perms = append(perms, append([]int{}, order...))
				return
			}
			for idx := range rest {
				next := append(append([]int{}, rest[:idx]...), rest[idx+1:]...)
				permute(append(order, rest[idx]), next)
			}
		}
		permute(nil, []int{0, 1, 2, 3})
		Expect(perms).To(HaveLen(24))
		for _, perm := range perms {
			board := New(2)
			for _, idx := range perm {
				board.Offer(offers[idx].Address, offers[idx].Latency)
				snapshot := board.Snapshot()
				Expect(len(snapshot)).To(BeNumerically("<=", 2))
				Expect(sortedAscending(snapshot)).To(BeTrue())
			}
			Expect(board.Snapshot()).To(HaveExactElements(
				types.Entry{Address: "C", Latency: ms(30)},
				types.Entry{Address: "A", Latency: ms(50)},
			), "arrival order %v", perm)
		}
	})

	It("breaks latency ties in favour of the first-seen address", func() {
		board := New(1)
		Expect(board.Offer("A", ms(50))).To(BeTrue())
		Expect(board.Offer("B", ms(50))).To(BeFalse())
		Expect(board.Snapshot()).To(HaveExactElements(
			types.Entry{Address: "A", Latency: ms(50)}))
	})

	It("admits only strictly better candidates once full", func() {
		board := New(2)
		board.Offer("X", ms(10))
		board.Offer("Y", ms(20))
		Expect(board.Offer("Z", ms(20))).To(BeFalse())
		Expect(board.Offer("Z", ms(19))).To(BeTrue())
		Expect(board.Snapshot()).To(HaveExactElements(
			types.Entry{Address: "X", Latency: ms(10)},
			types.Entry{Address: "Z", Latency: ms(19)},
		))
	})

	It("rejects offers without touching the dirty flag", func() {
		board := New(1)
		board.Offer("A", ms(10))
		Expect(board.TakeDirty()).To(BeTrue())
		Expect(board.TakeDirty()).To(BeFalse())
		Expect(board.Offer("B", ms(99))).To(BeFalse())
		Expect(board.TakeDirty()).To(BeFalse())
	})

	It("places locations on still-present entries only", func() {
		board := New(2)
		board.Offer("A", ms(30))
		board.Offer("B", ms(40))
		Expect(board.Place("B", "Berlin, DE")).To(BeTrue())
		Expect(board.Snapshot()[1].Location).To(Equal(types.Resolve("Berlin, DE")))
		Expect(board.TakeDirty()).To(BeTrue())
	})

	It("drops a stale placement for an evicted entry", func() {
		board := New(2)
		board.Offer("A", ms(30))
		board.Offer("B", ms(40))
		// B gets evicted while its lookup is still in flight...
		board.Offer("C", ms(20))
		board.TakeDirty()
		Expect(board.Place("B", "Lost, ZZ")).To(BeFalse())
		Expect(board.TakeDirty()).To(BeFalse())
		snapshot := board.Snapshot()
		Expect(snapshot).To(HaveLen(2))
		for _, entry := range snapshot {
			Expect(entry.Address).NotTo(Equal("B"))
		}
	})

	It("hands out snapshots detached from the board", func() {
		board := New(2)
		board.Offer("A", ms(30))
		snapshot := board.Snapshot()
		snapshot[0].Address = "mangled"
		Expect(board.Snapshot()[0].Address).To(Equal("A"))
	})
})
