package flow

import (
	"github.com/katalvlaran/divelim/core"
)

// residual is the paired-arc residual arena shared by all algorithms.
//
// Edge e of the network becomes two arcs: 2e (forward, initial capacity =
// edge capacity) and 2e+1 (backward, initial capacity 0). Pushing d units on
// arc a moves d from capa[a] to capa[a^1], so at any time the flow on edge e
// is capa[2e+1].
type residual struct {
	head [][]int // head[u] = arcs leaving u (forward and backward)
	to   []int   // to[a]   = arc head node
	capa []int64 // capa[a] = remaining residual capacity
}

// newResidual builds the residual arena of n.
//
// Steps:
//  1. Allocate one head slice per node (O(V)).
//  2. For each edge e (u→v, c) in index order, append arc 2e to head[u]
//     with capacity c and arc 2e+1 to head[v] with capacity 0 (O(E)).
//
// Complexity:
//
//	Time:   O(V + E).
//	Memory: O(V + E).
func newResidual(n *core.Network) *residual {
	edges := n.Edges()
	r := &residual{
		head: make([][]int, n.NodeCount()),
		to:   make([]int, 2*len(edges)),
		capa: make([]int64, 2*len(edges)),
	}
	for e, edge := range edges {
		fwd, bwd := 2*e, 2*e+1
		r.to[fwd], r.capa[fwd] = edge.To, edge.Capacity
		r.to[bwd], r.capa[bwd] = edge.From, 0
		r.head[edge.From] = append(r.head[edge.From], fwd)
		r.head[edge.To] = append(r.head[edge.To], bwd)
	}

	return r
}

// push moves d units along arc a.
func (r *residual) push(a int, d int64) {
	r.capa[a] -= d
	r.capa[a^1] += d
}

// result extracts the per-edge flow and the total value.
func (r *residual) result(value int64) Result {
	flows := make([]int64, len(r.capa)/2)
	for e := range flows {
		flows[e] = r.capa[2*e+1]
	}

	return Result{Value: value, Flow: flows}
}

// bfsLevels fills level[v] with the BFS distance from s over arcs with
// positive residual capacity (-1 if unreachable) and reports whether t was
// reached. level must have one slot per node.
func (r *residual) bfsLevels(s, t int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[s] = 0
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.head[u] {
			if v := r.to[a]; r.capa[a] > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level[t] >= 0
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}
