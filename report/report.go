// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/siemens/edgerank/types"
)

// Write renders the final leaderboard as a fixed-width plain-text table, one
// row per entry, in leaderboard order. Entries whose location lookup never
// resolved show "N/A".
func Write(w io.Writer, entries []types.Entry) error {
	if _, err := fmt.Fprintf(w, "%-8s%-18s%-30s%-10s\n",
		"Rank", "IP Address", "Location", "Latency (ms)"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 70)); err != nil {
		return err
	}
	for idx, entry := range entries {
		location := "N/A"
		if entry.Location.Resolved {
			location = entry.Location.Name
		}
		if _, err := fmt.Fprintf(w, "%-8d%-18s%-30s%.2f\n",
			idx+1, entry.Address, location, entry.LatencyMillis()); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the leaderboard table to the named file. Saving happens after
// the scan has fully completed, so a failure here never disturbs any
// in-memory results; it is simply reported to the caller.
func Save(path string, entries []types.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot save results: %w", err)
	}
	defer f.Close()
	if err := Write(f, entries); err != nil {
		return fmt.Errorf("cannot save results: %w", err)
	}
	return f.Close()
}
