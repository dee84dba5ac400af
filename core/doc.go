// Package core provides the capacitated flow network used by every
// elimination query: a small, index-based arena of nodes and edges with a
// tagged node identity.
//
// A Network N = (V, E) is always directed and weighted by non-negative int64
// capacities:
//
//   - Nodes are identified by a NodeID tagged with its kind:
//     Source() | Sink() | Team(id) | Pair(i, j).
//     Pair IDs are canonicalized to (low, high) so Pair(3,1) == Pair(1,3),
//     and NodeID.Compare gives a total order (kind, then A, then B).
//   - Source and Sink always exist at indices SourceIndex (0) and SinkIndex (1).
//   - Edges refer to nodes by index; Out(i) / In(i) list edge indices in
//     insertion order, so iteration is deterministic.
//   - Self-loops are rejected (ErrLoopNotAllowed); negative capacities are
//     rejected (ErrNegativeCapacity).
//   - "No limit" edges are added WithUnbounded(). They do not use a literal
//     infinity: their capacity resolves to Infinity(), the sum of all finite
//     capacities plus one, which is strictly larger than any finite cut and
//     keeps all arithmetic in int64.
//
// Why an arena instead of a string-keyed graph?
//
//   - Per-query networks are built, solved and discarded. Integer indices
//     make residual bookkeeping a pair of slices and eliminate any aliasing
//     between queries.
//   - NodeID carries its own meaning, so nothing parses "1_2"-style names to
//     recover which competitors a node stands for.
//
// Core Methods:
//
//	NewNetwork() *Network                                       // O(1)
//	AddNode(id NodeID) (int, error)                             // O(1)
//	AddEdge(from, to NodeID, capacity int64, ...EdgeOption) (int, error) // O(1)
//	Index(id NodeID) (int, bool)                                // O(1)
//	Node(i int) NodeID, Nodes() []NodeID                        // O(1) / O(V)
//	Edge(e int) Edge, Edges() []Edge                            // O(1) / O(E)
//	Out(i int) []int, In(i int) []int                           // O(deg)
//	SourceCapacity() int64, Infinity() int64                    // O(1)
//
// Errors:
//
//	ErrBadNodeID        - malformed NodeID (negative id, Pair(i, i)).
//	ErrDuplicateNode    - AddNode for an id already present.
//	ErrNodeNotFound     - AddEdge endpoint or index lookup missing.
//	ErrLoopNotAllowed   - AddEdge(from == to).
//	ErrNegativeCapacity - capacity < 0.
//
// Concurrency: a Network is owned by exactly one query and is not
// synchronized. Read-only use from several goroutines after construction is
// safe.
package core
