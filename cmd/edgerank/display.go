// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/siemens/edgerank/progress"
	"github.com/siemens/edgerank/report"
	"github.com/siemens/edgerank/types"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// progressBarCells is the width of the progress bar's filled/unfilled track.
const progressBarCells = 40

// renderer repaints a terminal region consisting of the leaderboard table on
// top and the progress/status lines below it. It erases exactly the number
// of lines it wrote on the previous call for the regions being redrawn: the
// table region only when the leaderboard changed, the status region on every
// call. Only a single goroutine, the scan loop, ever drives a renderer.
type renderer struct {
	w   io.Writer
	out *termenv.Output
	tty bool

	prevTableLines  int
	prevStatusLines int
}

// newRenderer returns a renderer painting to the specified writer,
// remembering nothing yet. Incremental repainting is only done on real
// terminals; piped output just gets a final summary.
func newRenderer(w io.Writer) *renderer {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &renderer{
		w:   w,
		out: termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI)),
		tty: tty,
	}
}

// Render erases and repaints the terminal region. The table region is only
// repainted when dirty; the status region always. A non-empty message
// replaces the progress bar lines.
func (r *renderer) Render(entries []types.Entry, snap progress.Snapshot, dirty bool, message string) {
	if !r.tty {
		return
	}
	var table []string
	if dirty {
		table = tableLines(entries)
	}
	status := statusLines(snap, message)

	erase := r.prevStatusLines
	if dirty {
		erase += r.prevTableLines
	}
	for line := 0; line < erase; line++ {
		r.out.CursorUp(1)
		r.out.ClearLine()
	}
	for _, line := range table {
		fmt.Fprintln(r.w, line)
	}
	for _, line := range status {
		fmt.Fprintln(r.w, line)
	}
	if dirty {
		r.prevTableLines = len(table)
	}
	r.prevStatusLines = len(status)
}

// Summary is the very last render of a scan: on a terminal it behaves like
// Render with the completion message replacing the progress bar; on piped
// output it prints the final table once, in plain fixed-width form.
func (r *renderer) Summary(entries []types.Entry, snap progress.Snapshot, dirty bool, message string) {
	if !r.tty {
		_ = report.Write(r.w, entries)
		fmt.Fprintln(r.w, message)
		return
	}
	r.Render(entries, snap, dirty, message)
}

// tableLines renders the leaderboard region: header, separator, one row per
// entry with the latency color-graded.
func tableLines(entries []types.Entry) []string {
	lines := []string{
		headerStyle.Styled(fmt.Sprintf("%-8s%-18s%-30s%-10s",
			"Rank", "IP Address", "Location", "Latency (ms)")),
		strings.Repeat("-", 70),
	}
	for idx, entry := range entries {
		lines = append(lines, fmt.Sprintf("%-8d%-18s%-30s%s",
			idx+1, entry.Address, entry.Location,
			latencyStyle(entry.Latency).Styled(
				fmt.Sprintf("%-10.2f", entry.LatencyMillis()))))
	}
	return lines
}

// statusLines renders the status region: a spacer plus either the progress
// bar and time estimates, or a custom message replacing them.
func statusLines(snap progress.Snapshot, message string) []string {
	if message != "" {
		return []string{"", message}
	}
	filled := 0
	if snap.Total > 0 {
		filled = snap.Tested * progressBarCells / snap.Total
	}
	bar := "[" + strings.Repeat("█", filled) +
		strings.Repeat("-", progressBarCells-filled) + "]"
	return []string{
		"",
		labelStyle.Styled("Scanning Progress: ") + bar +
			labelStyle.Styled(fmt.Sprintf(" %d/%d", snap.Tested, snap.Total)),
		labelStyle.Styled(fmt.Sprintf("Time elapsed: %s  Estimated time remaining: %s",
			timeString(snap.Elapsed), timeString(snap.Remaining))),
	}
}

// timeString renders a duration in a human-friendly "1h 02m 03s" form,
// rounding seconds up so the estimate never undersells the wait.
func timeString(d time.Duration) string {
	seconds := int(math.Ceil(d.Seconds()))
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %02dm %02ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
