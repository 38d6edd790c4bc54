// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/siemens/edgerank/config"
	"github.com/siemens/edgerank/geo"
	"github.com/siemens/edgerank/probe"
	"github.com/siemens/edgerank/progress"
	"github.com/siemens/edgerank/rank"
	"github.com/siemens/edgerank/report"
	"github.com/siemens/edgerank/source"

	"go.uber.org/zap"
)

// Scan runs one complete scan: it enumerates the target population, probes
// every address exactly once on a bounded worker pool, maintains the live
// top-K leaderboard with asynchronous location enrichment, and renders
// incremental progress to term until everything — probing first, then the
// enrichment backlog — has drained.
func Scan(ctx context.Context, cfg config.Config, log *zap.Logger, term io.Writer) error {
	var src source.Source
	if cfg.IPList != "" {
		fmt.Fprintln(term, noticeStyle.Styled("Loading IP ranges from "+cfg.IPList+"..."))
		src = source.NewFile(cfg.IPList, log)
	} else {
		fmt.Fprintln(term, noticeStyle.Styled("Fetching Cloudflare IP ranges..."))
		src = source.NewCloudflare(log)
	}
	targets, err := src.Produce(ctx)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errors.New("no probe targets: the IP range list is empty")
	}
	fmt.Fprintln(term, doneStyle.Styled(
		fmt.Sprintf("Found %d unique IP addresses to test.", len(targets))))
	fmt.Fprintln(term)

	var strategy probe.Strategy
	if cfg.TCP {
		strategy = probe.NewTCP(cfg.Tries, cfg.Timeout)
	} else {
		strategy = probe.NewICMP(cfg.Tries, cfg.Timeout)
	}
	size := cfg.Workers
	if size == 0 {
		size = probe.Workers(strategy)
	}
	log.Debug("scan configured",
		zap.Int("targets", len(targets)),
		zap.Int("workers", size),
		zap.Bool("tcp", cfg.TCP))

	// Now lets put the required processing elements and their plumbing in
	// place.
	//
	//   - Engine probing all targets, streaming one outcome per address.
	//   - Board keeping the top-K lowest-latency addresses.
	//   - Enricher resolving locations for admitted addresses, streaming
	//     placements back.
	//
	// The loop below is the single consumer of both streams and the single
	// driver of the renderer.
	board := rank.New(cfg.Limit)
	tracker := progress.New(len(targets))
	engine, outcomes := probe.New(strategy, size)
	enricher, placements := geo.New(geo.NewIPInfo(), cfg.GeoWorkers)
	r := newRenderer(term)

	go func() {
		engine.ProbeAll(ctx, targets)
		engine.StopWait()
	}()

	pl := &pipeline{
		board:    board,
		tracker:  tracker,
		enricher: enricher,
		maxRTT:   cfg.MaxRTT(),
		render:   r,
	}
	pl.drain(outcomes, placements)

	r.Summary(board.Snapshot(), tracker.Snapshot(), board.TakeDirty(),
		doneStyle.Styled("Scanning complete."))

	if cfg.Out != "" {
		// ordering contract: saving happens only after probing finished and
		// the enrichment backlog drained, so the persisted table never shows
		// a pending location.
		if err := report.Save(cfg.Out, board.Snapshot()); err != nil {
			log.Warn("cannot save results", zap.Error(err))
			fmt.Fprintln(term, err.Error())
			return nil
		}
		fmt.Fprintln(term, doneStyle.Styled("Results saved to "+cfg.Out))
	}
	return nil
}
