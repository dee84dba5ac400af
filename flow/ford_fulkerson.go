package flow

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/divelim/core"
)

// FordFulkerson computes the maximum flow from core.SourceIndex to
// core.SinkIndex using the Ford–Fulkerson method (DFS-based augmenting
// paths).
//
// It returns:
//   - Result : total flow value and an integral flow per edge
//   - err    : ErrNilNetwork or a context cancellation error
//
// Steps:
//  1. Normalize options (O(1)).
//  2. Build the residual arena via newResidual (O(V + E)).
//  3. Repeat until no augmenting path:
//     a. Check ctx for cancellation.
//     b. Iteratively DFS to find any path s→t with positive capacity (O(E)).
//     c. If none found, break.
//     d. Augment along the path, updating the arena (O(path length)).
//     e. Accumulate flow; if opts.Verbose, log the delta.
//  4. Extract per-edge flows (O(E)).
//
// Complexity:
//
//	Time:   O(E * F) where F = maxFlow. Capacities are integral and the
//	        unbounded sentinel is finite, so F is finite and the loop terminates.
//	Memory: O(V + E) for the arena and DFS stack.
//
// Suitable for small networks; for stronger guarantees, consider
// Edmonds–Karp (BFS) or Dinic (level graph + blocking flow).
func FordFulkerson(n *core.Network, opts FlowOptions) (Result, error) {
	// 1) Normalize options to ensure Ctx and Logger are set
	opts.normalize()
	ctx := opts.Ctx
	if n == nil {
		return Result{}, ErrNilNetwork
	}

	// 2) Residual arena
	r := newResidual(n)
	s, t := core.SourceIndex, core.SinkIndex

	// parentArc[v] = arc used to reach v on the current path
	parentArc := make([]int, n.NodeCount())
	// minCap[v] = bottleneck capacity from source to v along discovered path
	minCap := make([]int64, n.NodeCount())
	visited := make([]bool, n.NodeCount())

	var maxFlow int64
	for {
		// 3a) Check for cancellation before each search
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		// 3b) Iterative DFS
		for i := range visited {
			visited[i] = false
		}
		stack := []int{s}
		visited[s] = true
		minCap[s] = math.MaxInt64
		found := false
		for len(stack) > 0 && !found {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, a := range r.head[u] {
				v := r.to[a]
				if r.capa[a] <= 0 || visited[v] {
					continue
				}
				visited[v] = true
				parentArc[v] = a
				minCap[v] = min64(minCap[u], r.capa[a])
				if v == t {
					found = true
					break
				}
				stack = append(stack, v)
			}
		}

		// 3c) No augmenting path: done
		if !found {
			break
		}

		// 3d) Augment
		delta := minCap[t]
		for v := t; v != s; v = r.to[parentArc[v]^1] {
			r.push(parentArc[v], delta)
		}

		// 3e) Accumulate and log
		maxFlow += delta
		if opts.Verbose {
			opts.Logger.Debug("ford-fulkerson: augmented",
				zap.Int64("delta", delta),
				zap.Int64("total", maxFlow))
		}
	}

	return r.result(maxFlow), nil
}
