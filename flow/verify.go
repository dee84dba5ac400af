package flow

import (
	"fmt"

	"github.com/katalvlaran/divelim/core"
)

// Verify checks that r is a feasible flow on n with the value it claims.
//
// Steps:
//  1. len(r.Flow) == EdgeCount (ErrFlowShape).
//  2. 0 ≤ Flow[e] ≤ capacity(e) for every edge (ErrCapacityViolation).
//  3. inflow == outflow at every node other than Source and Sink
//     (ErrConservationViolation).
//  4. Value == net outflow of Source == net inflow of Sink (ErrValueMismatch).
//
// Verify does not prove optimality; pair it with MinCut for that.
//
// Complexity: O(V + E).
func Verify(n *core.Network, r Result) error {
	if n == nil {
		return ErrNilNetwork
	}
	if len(r.Flow) != n.EdgeCount() {
		return fmt.Errorf("%w: %d flows for %d edges", ErrFlowShape, len(r.Flow), n.EdgeCount())
	}

	// balance[v] = inflow - outflow
	balance := make([]int64, n.NodeCount())
	for e, edge := range n.Edges() {
		f := r.Flow[e]
		if f < 0 || f > edge.Capacity {
			return fmt.Errorf("%w: edge %d %s→%s carries %d of %d", ErrCapacityViolation,
				e, n.Node(edge.From), n.Node(edge.To), f, edge.Capacity)
		}
		balance[edge.From] -= f
		balance[edge.To] += f
	}

	for v, b := range balance {
		if v == core.SourceIndex || v == core.SinkIndex {
			continue
		}
		if b != 0 {
			return fmt.Errorf("%w: node %s has net inflow %d", ErrConservationViolation, n.Node(v), b)
		}
	}

	if out := -balance[core.SourceIndex]; out != r.Value {
		return fmt.Errorf("%w: source outflow %d, reported %d", ErrValueMismatch, out, r.Value)
	}
	if in := balance[core.SinkIndex]; in != r.Value {
		return fmt.Errorf("%w: sink inflow %d, reported %d", ErrValueMismatch, in, r.Value)
	}

	return nil
}
