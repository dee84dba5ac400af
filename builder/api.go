// SPDX-License-Identifier: MIT
// Package: divelim/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(model, t, opts, cons...). Creates the
//     network, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig; no global state.
//   - Determinism: same model, t, options and constructor order ⇒ identical networks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/divelim/core"
	"github.com/katalvlaran/divelim/standings"
)

// Constructor applies one deterministic layer of the network using the
// resolved builderConfig. Constructors validate early, return wrapped
// errors and never panic.
type Constructor func(n *core.Network, cfg builderConfig) error

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithZeroGamePairs materializes pair nodes (and zero-capacity source
// edges) for pairs with no games left. Off by default; useful to check that
// omitting them does not change the flow value.
func WithZeroGamePairs() BuilderOption {
	return func(cfg *builderConfig) { cfg.keepZeroPairs = true }
}

// WithExcessWins adds a source edge into every team that already has more
// wins than the tested competitor can reach, carrying the excess. Off by
// default; with it, a trivially eliminated competitor is also eliminated by
// the flow decision alone.
func WithExcessWins() BuilderOption {
	return func(cfg *builderConfig) { cfg.excessWins = true }
}

// builderConfig is the per-query context shared by every Constructor.
// It is passed by value.
type builderConfig struct {
	model  *standings.Model
	target int

	// maxWins is wins[t] + remaining[t], the best total t can reach.
	maxWins int

	// others lists every id except target, in id order.
	others []int

	keepZeroPairs bool
	excessWins    bool
}

// newBuilderConfig resolves the tested competitor and applies opts in order.
func newBuilderConfig(model *standings.Model, t int, opts ...BuilderOption) (builderConfig, error) {
	if model == nil {
		return builderConfig{}, ErrNilModel
	}
	c, err := model.Get(t)
	if err != nil {
		return builderConfig{}, fmt.Errorf("%w: %w", ErrUnknownCompetitor, err)
	}

	cfg := builderConfig{
		model:   model,
		target:  t,
		maxWins: c.MaxWins(),
		others:  make([]int, 0, model.Len()-1),
	}
	for _, id := range model.IDs() {
		if id != t {
			cfg.others = append(cfg.others, id)
		}
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, nil
}

// BuildNetwork creates a network for competitor t of model and applies all
// constructors in order. Any constructor error is wrapped as
// "BuildNetwork: %w" and returned immediately; the partial network is dropped.
//
// Complexity: O(len(opts)) to resolve the config plus Σ cost of constructors.
func BuildNetwork(model *standings.Model, t int, opts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	cfg, err := newBuilderConfig(model, t, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	n := core.NewNetwork()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(n, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return n, nil
}

// Elimination builds the canonical elimination network for competitor t:
// TeamLayer followed by PairLayer.
//
// Complexity: O(N²) time and space for N competitors (one node per pair).
func Elimination(model *standings.Model, t int, opts ...BuilderOption) (*core.Network, error) {
	return BuildNetwork(model, t, opts, TeamLayer(), PairLayer())
}
