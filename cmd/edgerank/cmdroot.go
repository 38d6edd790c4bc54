// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/siemens/edgerank/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile *string
	ipList     *string
	limit      *uint
	maxLatency *uint
	tries      *uint
	timeout    *time.Duration
	tcp        *bool
	workers    *uint
	geoWorkers *uint
	out        *string
	debug      *bool
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "edgerank [flags]",
		Short:   "edgerank probes Cloudflare's edge addresses and ranks the lowest-latency ones",
		Version: "0.9",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			log := newLogger(*debug)
			defer func() { _ = log.Sync() }()
			if *debug {
				log.Debug("debug logging enabled")
			}
			return Scan(context.Background(), cfg, log, os.Stdout)
		},
	}
	// Sets up the flags.
	configFile = rootCmd.PersistentFlags().String(
		"config", "", "optional YAML configuration file")
	ipList = rootCmd.PersistentFlags().String(
		"ip-list", "", "load IP ranges from the local file (comma or newline-delimited list)")
	limit = rootCmd.PersistentFlags().Uint(
		"limit", 20, "keep this many IPs with the lowest latency")
	maxLatency = rootCmd.PersistentFlags().Uint(
		"max-latency", 0, "only rank IPs with a latency below the specified milliseconds")
	tries = rootCmd.PersistentFlags().Uint(
		"tries", 4, "connection attempts per IP; all must succeed")
	timeout = rootCmd.PersistentFlags().Duration(
		"timeout", time.Second, "per-attempt timeout")
	tcp = rootCmd.PersistentFlags().Bool(
		"tcp", false, "time TCP handshakes to :443 instead of ICMP echoes")
	workers = rootCmd.PersistentFlags().Uint(
		"workers", 0, "probing workers (0 selects the strategy default)")
	geoWorkers = rootCmd.PersistentFlags().Uint(
		"geo-workers", 5, "location lookup workers")
	out = rootCmd.PersistentFlags().String(
		"out", "", "save the results to the file")
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "enable debugging output")
	return
}

// resolveConfig builds the effective configuration: defaults, overlaid by the
// optional configuration file, overlaid by whatever flags were explicitly set
// on the command line.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("ip-list") {
		cfg.IPList = *ipList
	}
	if flags.Changed("limit") {
		cfg.Limit = int(*limit)
	}
	if flags.Changed("max-latency") {
		cfg.MaxLatency = int(*maxLatency)
	}
	if flags.Changed("tries") {
		cfg.Tries = int(*tries)
	}
	if flags.Changed("timeout") {
		cfg.Timeout = *timeout
	}
	if flags.Changed("tcp") {
		cfg.TCP = *tcp
	}
	if flags.Changed("workers") {
		cfg.Workers = int(*workers)
	}
	if flags.Changed("geo-workers") {
		cfg.GeoWorkers = int(*geoWorkers)
	}
	if flags.Changed("out") {
		cfg.Out = *out
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger returns a structured logger writing to stderr, so log output
// never interferes with the live terminal rendering on stdout.
func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zap.Must(cfg.Build())
}
