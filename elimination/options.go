// SPDX-License-Identifier: MIT
// Package: divelim/elimination
//
// options.go - functional options for Engine.

package elimination

import (
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/divelim/flow"
)

// Options configures an Engine.
//
// Strategy             – max-flow backend (default StrategyDinic).
// Solver               – explicit solver; overrides Strategy when non-nil.
// Logger               – structured logger (default zap.NewNop()).
// QueryTimeout         – per-query deadline; 0 disables it.
// Workers              – EvaluateAll concurrency (default GOMAXPROCS).
// LevelRebuildInterval – forwarded to flow.FlowOptions (Dinic only).
// Verbose              – log every augmentation at Debug.
// FlowOnly             – skip the trivial bound and decide every query by flow.
type Options struct {
	Strategy             Strategy
	Solver               flow.Solver
	Logger               *zap.Logger
	QueryTimeout         time.Duration
	Workers              int
	LevelRebuildInterval int
	Verbose              bool
	FlowOnly             bool
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the defaults New starts from.
//
// Defaults:
//   - Strategy:     StrategyDinic.
//   - Logger:       zap.NewNop().
//   - QueryTimeout: 0 (none).
//   - Workers:      runtime.GOMAXPROCS(0).
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyDinic,
		Logger:   zap.NewNop(),
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// WithStrategy selects a built-in backend. An unknown name makes New fail
// with ErrUnknownStrategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithSolver installs a custom flow.Solver; verdicts report StrategyCustom.
func WithSolver(s flow.Solver) Option {
	return func(o *Options) {
		o.Solver = s
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithQueryTimeout bounds each query; a query that exceeds it fails with a
// *SolverError wrapping context.DeadlineExceeded. Negative values make New
// fail with ErrInvalidOption.
func WithQueryTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.QueryTimeout = d
	}
}

// WithWorkers bounds EvaluateAll concurrency. Must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLevelRebuildInterval forwards Dinic's level-graph rebuild interval.
// Must be ≥ 0.
func WithLevelRebuildInterval(k int) Option {
	return func(o *Options) {
		o.LevelRebuildInterval = k
	}
}

// WithVerbose enables per-augmentation Debug logging in the solver.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// WithFlowOnly skips the trivial short-circuit. Networks are then built with
// builder.WithExcessWins so competitors already out of reach still show up
// as unsaturated source capacity. Verdicts never report Trivial.
func WithFlowOnly() Option {
	return func(o *Options) {
		o.FlowOnly = true
	}
}
