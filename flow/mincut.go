package flow

import (
	"fmt"

	"github.com/katalvlaran/divelim/core"
)

// Cut is an S/T cut of a network: the node indices on the source side and
// the total capacity of edges leaving that side.
type Cut struct {
	// SourceSide lists node indices in ascending order; it always contains
	// core.SourceIndex and, for a maximum flow, never core.SinkIndex.
	SourceSide []int

	// Capacity is Σ capacity of edges from SourceSide to the rest.
	Capacity int64
}

// Contains reports whether node index i is on the source side.
func (c Cut) Contains(i int) bool {
	for _, v := range c.SourceSide {
		if v == i {
			return true
		}
	}

	return false
}

// MinCut returns the cut induced by the nodes reachable from the source in
// the residual graph of r. When r is a maximum flow, this is a minimum cut
// and Capacity == r.Value (max-flow/min-cut duality).
//
// Steps:
//  1. Validate that r.Flow matches n's edges (ErrFlowShape).
//  2. BFS from the source: follow edge e forward while Flow[e] < capacity,
//     and backward while Flow[e] > 0.
//  3. Sum capacities of edges leaving the reached set.
//
// Complexity: O(V + E).
func MinCut(n *core.Network, r Result) (Cut, error) {
	if n == nil {
		return Cut{}, ErrNilNetwork
	}
	if len(r.Flow) != n.EdgeCount() {
		return Cut{}, fmt.Errorf("%w: %d flows for %d edges", ErrFlowShape, len(r.Flow), n.EdgeCount())
	}

	edges := n.Edges()
	seen := make([]bool, n.NodeCount())
	seen[core.SourceIndex] = true
	queue := []int{core.SourceIndex}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, e := range n.Out(u) {
			if v := edges[e].To; !seen[v] && r.Flow[e] < edges[e].Capacity {
				seen[v] = true
				queue = append(queue, v)
			}
		}
		for _, e := range n.In(u) {
			if v := edges[e].From; !seen[v] && r.Flow[e] > 0 {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	var cut Cut
	for i, ok := range seen {
		if ok {
			cut.SourceSide = append(cut.SourceSide, i)
		}
	}
	cut.Capacity = CutCapacity(n, seen)

	return cut, nil
}

// CutCapacity returns Σ capacity of edges u→v with sourceSide[u] and
// !sourceSide[v]. sourceSide must have one entry per node.
func CutCapacity(n *core.Network, sourceSide []bool) int64 {
	var total int64
	for _, e := range n.Edges() {
		if sourceSide[e.From] && !sourceSide[e.To] {
			total += e.Capacity
		}
	}

	return total
}
