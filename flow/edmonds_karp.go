package flow

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/divelim/core"
)

// EdmondsKarp computes the maximum flow from core.SourceIndex to
// core.SinkIndex using the Edmonds–Karp algorithm (BFS for shortest
// augmenting paths).
//
// It returns:
//   - Result : total flow value and an integral flow per edge
//   - err    : ErrNilNetwork or a context cancellation error
//
// Options:
//   - Verbose: log each augmentation (path length, bottleneck) at Debug.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(n *core.Network, opts FlowOptions) (Result, error) {
	opts.normalize()
	ctx := opts.Ctx
	if n == nil {
		return Result{}, ErrNilNetwork
	}

	r := newResidual(n)
	s, t := core.SourceIndex, core.SinkIndex
	parentArc := make([]int, n.NodeCount())

	var maxFlow int64
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		bottle, hops := r.bfsAugmentingPath(s, t, parentArc)
		if bottle == 0 {
			break
		}
		if opts.Verbose {
			opts.Logger.Debug("edmonds-karp: augmenting path",
				zap.Int("hops", hops),
				zap.Int64("flow", bottle))
		}
		maxFlow += bottle

		// Augment along the path, walking parent arcs back from the sink.
		for v := t; v != s; v = r.to[parentArc[v]^1] {
			r.push(parentArc[v], bottle)
		}
	}

	return r.result(maxFlow), nil
}

// bfsAugmentingPath finds the shortest (fewest-arcs) path s→t with positive
// residual capacity. parentArc[v] receives the arc used to reach v. It
// returns the path's bottleneck and length, or (0, 0) if t is unreachable.
func (r *residual) bfsAugmentingPath(s, t int, parentArc []int) (int64, int) {
	for i := range parentArc {
		parentArc[i] = -1
	}
	depth := make([]int, len(parentArc))
	visited := make([]bool, len(parentArc))
	visited[s] = true

	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.head[u] {
			v := r.to[a]
			if visited[v] || r.capa[a] <= 0 {
				continue
			}
			visited[v] = true
			parentArc[v] = a
			depth[v] = depth[u] + 1
			if v == t {
				// bottleneck along the discovered path
				bottle := r.capa[a]
				for w := r.to[a^1]; w != s; w = r.to[parentArc[w]^1] {
					bottle = min64(bottle, r.capa[parentArc[w]])
				}

				return bottle, depth[t]
			}
			queue = append(queue, v)
		}
	}

	return 0, 0
}
