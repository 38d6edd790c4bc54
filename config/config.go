// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the knob surface of a scan. The zero value is not useful; start
// from Default and overlay a file and/or command line flags.
type Config struct {
	Limit      int           `yaml:"limit"`       // leaderboard size K.
	MaxLatency int           `yaml:"max_latency"` // upper-bound filter in ms, 0 = off.
	Tries      int           `yaml:"tries"`       // attempts per probe.
	Timeout    time.Duration `yaml:"timeout"`     // per-attempt timeout.
	TCP        bool          `yaml:"tcp"`         // time TCP handshakes instead of echoes.
	Workers    int           `yaml:"workers"`     // probing pool size, 0 = strategy default.
	GeoWorkers int           `yaml:"geo_workers"` // enrichment pool size.
	IPList     string        `yaml:"ip_list"`     // local range list; empty = Cloudflare API.
	Out        string        `yaml:"out"`         // save the final table here, empty = don't.
}

// Default returns the configuration used when neither file nor flags say
// otherwise.
func Default() Config {
	return Config{
		Limit:      20,
		Tries:      4,
		Timeout:    time.Second,
		GeoWorkers: 5,
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot load configuration: %w", err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot load configuration: %w", err)
	}
	return cfg, nil
}

// UnmarshalYAML overlays only the keys present in the document onto the
// receiver, so file values never clobber defaults with zero values. The
// timeout is given in time.ParseDuration syntax ("500ms", "2s").
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var aux struct {
		Limit      *int    `yaml:"limit"`
		MaxLatency *int    `yaml:"max_latency"`
		Tries      *int    `yaml:"tries"`
		Timeout    *string `yaml:"timeout"`
		TCP        *bool   `yaml:"tcp"`
		Workers    *int    `yaml:"workers"`
		GeoWorkers *int    `yaml:"geo_workers"`
		IPList     *string `yaml:"ip_list"`
		Out        *string `yaml:"out"`
	}
	if err := node.Decode(&aux); err != nil {
		return err
	}
	if aux.Limit != nil {
		c.Limit = *aux.Limit
	}
	if aux.MaxLatency != nil {
		c.MaxLatency = *aux.MaxLatency
	}
	if aux.Tries != nil {
		c.Tries = *aux.Tries
	}
	if aux.Timeout != nil {
		timeout, err := time.ParseDuration(*aux.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout: %w", err)
		}
		c.Timeout = timeout
	}
	if aux.TCP != nil {
		c.TCP = *aux.TCP
	}
	if aux.Workers != nil {
		c.Workers = *aux.Workers
	}
	if aux.GeoWorkers != nil {
		c.GeoWorkers = *aux.GeoWorkers
	}
	if aux.IPList != nil {
		c.IPList = *aux.IPList
	}
	if aux.Out != nil {
		c.Out = *aux.Out
	}
	return nil
}

// Validate checks the configuration for nonsense values.
func (c Config) Validate() error {
	if c.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got: %d", c.Limit)
	}
	if c.MaxLatency < 0 {
		return fmt.Errorf("max-latency must not be negative, got: %d", c.MaxLatency)
	}
	if c.Tries < 1 {
		return fmt.Errorf("tries must be at least 1, got: %d", c.Tries)
	}
	if c.Timeout < 10*time.Millisecond {
		return fmt.Errorf("timeout must be at least 10ms, got: %s", c.Timeout)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got: %d", c.Workers)
	}
	if c.GeoWorkers < 1 {
		return fmt.Errorf("geo-workers must be at least 1, got: %d", c.GeoWorkers)
	}
	return nil
}

// MaxRTT returns the maximum-latency filter as a duration, or zero when the
// filter is off.
func (c Config) MaxRTT() time.Duration {
	return time.Duration(c.MaxLatency) * time.Millisecond
}
