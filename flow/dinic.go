package flow

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/divelim/core"
)

// Dinic computes the maximum flow from core.SourceIndex to core.SinkIndex in
// `n` using Dinic’s algorithm (level graph + blocking flows).
//
// It returns:
//   - Result : the total flow value and an integral flow per edge
//   - err    : ErrNilNetwork or a context cancellation error
//
// Steps:
//  1. Normalize options and capture context (O(1)).
//  2. Build the residual arena via newResidual (O(V + E)).
//  3. Repeat until no more augmenting paths:
//     a. Check for cancellation (O(1)).
//     b. BFS to build the level graph (O(V + E)).
//     c. If sink unreachable, break.
//     d. Reset per-node arc iterators.
//     e. DFS-based blocking flow pushes until none remains,
//     optionally rebuilding the level graph every LevelRebuildInterval augmentations.
//  4. Extract per-edge flows from the backward arcs (O(E)).
//
// Complexity:
//
//	Time:   O(V² · E) in general.
//	Memory: O(V + E) for the arena, levels and iterators.
func Dinic(n *core.Network, opts FlowOptions) (Result, error) {
	// 1) Normalize options (set default Ctx and Logger if needed)
	opts.normalize()
	ctx := opts.Ctx
	if n == nil {
		return Result{}, ErrNilNetwork
	}

	// 2) Residual arena
	r := newResidual(n)
	s, t := core.SourceIndex, core.SinkIndex
	level := make([]int, n.NodeCount())
	iter := make([]int, n.NodeCount())

	var maxFlow int64
	augmentCount := 0
	for {
		// 3a) Cancellation check before BFS
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		// 3b-c) Level graph; done once the sink is unreachable
		if !r.bfsLevels(s, t, level) {
			break
		}

		// 3d) Fresh arc iterators for this phase
		for i := range iter {
			iter[i] = 0
		}

		// 3e) Blocking flow
		for {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			pushed := r.dinicPush(ctx, level, iter, s, t, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.Verbose {
				opts.Logger.Debug("dinic: augmented",
					zap.Int64("pushed", pushed),
					zap.Int64("total", maxFlow),
					zap.Int("augmentations", augmentCount))
			}
			// Optionally rebuild level graph
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	// A cancellation observed inside the last DFS must not yield a partial result.
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return r.result(maxFlow), nil
}

// dinicPush recursively pushes flow along the level graph from u toward
// sink. It advances iter[u] past arcs that cannot carry more flow in this
// phase, updates the residual arena in place, and returns the amount sent.
func (r *residual) dinicPush(
	ctx context.Context,
	level, iter []int,
	u, sink int,
	available int64,
) int64 {
	// Check for cancellation at DFS entry
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for ; iter[u] < len(r.head[u]); iter[u]++ {
		a := r.head[u][iter[u]]
		v := r.to[a]
		if r.capa[a] <= 0 || level[v] != level[u]+1 {
			continue
		}
		pushed := r.dinicPush(ctx, level, iter, v, sink, min64(available, r.capa[a]))
		if pushed > 0 {
			r.push(a, pushed)

			return pushed
		}
	}

	return 0
}
