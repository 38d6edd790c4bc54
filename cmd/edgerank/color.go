// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/muesli/termenv"
)

var (
	fastLatencyStyle = termenv.Style{}.Foreground(termenv.ANSIGreen)
	fairLatencyStyle = termenv.Style{}.Foreground(termenv.ANSIYellow)
	slowLatencyStyle = termenv.Style{}.Foreground(termenv.ANSIRed)
)

var (
	headerStyle = termenv.Style{}.Bold().Foreground(termenv.ANSIMagenta)
	labelStyle  = termenv.Style{}.Foreground(termenv.ANSIYellow)
	noticeStyle = termenv.Style{}.Foreground(termenv.ANSICyan)
	doneStyle   = termenv.Style{}.Foreground(termenv.ANSIGreen)
)

// latencyStyle grades a latency: green below 100ms, yellow below 200ms, red
// beyond.
func latencyStyle(latency time.Duration) termenv.Style {
	switch {
	case latency < 100*time.Millisecond:
		return fastLatencyStyle
	case latency < 200*time.Millisecond:
		return fairLatencyStyle
	}
	return slowLatencyStyle
}
