// Package flow implements exact integral maximum-flow algorithms on the
// arena networks of package core, plus the min-cut and verification helpers
// the elimination engine relies on.
//
// The key algorithms offered are:
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search to find any augmenting path.
//
//   - Time:   O(E · F), where F is the max-flow value.
//
//   - Memory: O(V + E) for the residual arena and DFS stack.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case.
//
//   - Memory: O(V + E).
//
//   - Dinic (default)
//
//   - Method: level graph construction + blocking flow via DFS.
//
//   - Time:   O(V² · E) in general; the elimination network has 4 levels,
//     so each phase is cheap and few phases are needed.
//
//   - Memory: O(V + E).
//
// # Capacities
//
// All capacities are int64. Unbounded edges arrive with the finite sentinel
// core.Network.Infinity() (Σ finite capacities + 1), so no algorithm ever
// compares against a floating-point infinity and every augmentation is an
// integer. The returned flow is therefore integral.
//
// # API
//
// FlowOptions configures all three algorithms:
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // cancellation / timeouts
//	    Logger               *zap.Logger     // nil ⇒ zap.NewNop()
//	    Verbose              bool            // log each augmentation at Debug
//	    LevelRebuildInterval int             // Dinic only: rebuild level graph every N pushes
//	}
//
// Every algorithm has the signature
//
//	func Dinic(n *core.Network, opts FlowOptions) (Result, error)
//
// and satisfies Solver through SolverFunc, so callers (and tests) can swap
// strategies, including the LP formulation in package lp.
//
// Result carries the flow value and one integral flow per edge, indexed like
// n.Edges(). MinCut derives the source side of a minimum cut from any
// maximum flow; Verify checks capacity bounds, conservation and the value.
//
// # Errors
//
//	ErrNilNetwork            - nil network.
//	ErrFlowShape             - Result.Flow length differs from EdgeCount.
//	ErrCapacityViolation     - flow outside [0, capacity] on some edge.
//	ErrConservationViolation - inflow != outflow at a non-terminal node.
//	ErrValueMismatch         - Result.Value differs from source outflow or sink inflow.
//	context.Canceled / context.DeadlineExceeded - opts.Ctx ended mid-run;
//	no partial Result is returned.
package flow
