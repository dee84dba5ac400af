package flow

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/divelim/core"
)

// ErrNilNetwork is returned when a nil network is passed to an algorithm.
var ErrNilNetwork = errors.New("flow: nil network")

// Verification errors returned (wrapped with detail) by Verify and MinCut.
var (
	ErrFlowShape             = errors.New("flow: flow vector does not match network")
	ErrCapacityViolation     = errors.New("flow: capacity violated")
	ErrConservationViolation = errors.New("flow: conservation violated")
	ErrValueMismatch         = errors.New("flow: value mismatch")
)

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation and deadlines (default context.Background()).
//   - Logger: structured logger (default zap.NewNop()).
//   - Verbose: if true, logs each augmentation at Debug level.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	Logger               *zap.Logger
	Verbose              bool
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: background context,
// no-op logger, quiet, never rebuild the level graph early.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// normalize fills unset fields with their defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// Result is a maximum flow: its value and the flow on every edge.
//
// Flow[e] is the flow on edge e of the network (same indexing as
// core.Network.Edges). All entries are integral and within [0, capacity].
type Result struct {
	Value int64
	Flow  []int64
}

// Saturated reports whether edge e carries flow equal to its capacity.
func (r Result) Saturated(n *core.Network, e int) bool {
	return r.Flow[e] == n.Edge(e).Capacity
}

// Solver is the max-flow capability the elimination engine depends on.
// Implementations must return an optimal, integral flow or an error.
type Solver interface {
	MaxFlow(n *core.Network, opts FlowOptions) (Result, error)
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(n *core.Network, opts FlowOptions) (Result, error)

// MaxFlow calls f(n, opts).
func (f SolverFunc) MaxFlow(n *core.Network, opts FlowOptions) (Result, error) {
	return f(n, opts)
}

// Built-in solvers.
var (
	DinicSolver         Solver = SolverFunc(Dinic)
	EdmondsKarpSolver   Solver = SolverFunc(EdmondsKarp)
	FordFulkersonSolver Solver = SolverFunc(FordFulkerson)
)
