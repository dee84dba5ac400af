// SPDX-License-Identifier: MIT
// Package: divelim/elimination
//
// config.go - YAML configuration for Engine.

package elimination

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the file form of Options.
type Config struct {
	Strategy             string `yaml:"strategy"`
	Workers              int    `yaml:"workers"`                // 0 means GOMAXPROCS
	QueryTimeout         string `yaml:"query_timeout"`          // time.ParseDuration; "" means none
	LevelRebuildInterval int    `yaml:"level_rebuild_interval"` // Dinic only
	Verbose              bool   `yaml:"verbose"`
	FlowOnly             bool   `yaml:"flow_only"`
}

// DefaultConfig returns the configuration equivalent to DefaultOptions.
func DefaultConfig() *Config {
	return &Config{
		Strategy: string(StrategyDinic),
	}
}

// LoadConfig decodes a YAML document over DefaultConfig and validates it.
// An empty document yields the defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFile reads path with LoadConfig. A missing file yields the
// defaults.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Validate checks every field without building an Engine.
func (c *Config) Validate() error {
	if _, err := ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidOption, c.Workers)
	}
	if c.LevelRebuildInterval < 0 {
		return fmt.Errorf("%w: level_rebuild_interval %d", ErrInvalidOption, c.LevelRebuildInterval)
	}
	if _, err := c.GetQueryTimeout(); err != nil {
		return err
	}

	return nil
}

// GetQueryTimeout parses QueryTimeout; "" is zero.
func (c *Config) GetQueryTimeout() (time.Duration, error) {
	if c.QueryTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.QueryTimeout)
	if err != nil {
		return 0, fmt.Errorf("%w: query_timeout: %w", ErrInvalidOption, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: query_timeout %s", ErrInvalidOption, d)
	}

	return d, nil
}

// Options converts the config to engine options. Pass the result to New,
// optionally followed by WithLogger.
func (c *Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	strategy, _ := ParseStrategy(c.Strategy)
	timeout, _ := c.GetQueryTimeout()

	opts := []Option{
		WithStrategy(strategy),
		WithQueryTimeout(timeout),
		WithLevelRebuildInterval(c.LevelRebuildInterval),
	}
	if c.Workers > 0 {
		opts = append(opts, WithWorkers(c.Workers))
	}
	if c.Verbose {
		opts = append(opts, WithVerbose())
	}
	if c.FlowOnly {
		opts = append(opts, WithFlowOnly())
	}

	return opts, nil
}
