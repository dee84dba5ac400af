// SPDX-License-Identifier: MIT
// Package: divelim/core
//
// methods.go - node and edge lifecycle plus read-only queries on Network.
//
// Determinism:
//   - Node indices follow AddNode order; edge indices follow AddEdge order.
//   - Out/In list edge indices in insertion order.

package core

import (
	"fmt"
)

// AddNode appends a node and returns its index.
//
// Errors:
//   - ErrBadNodeID if !id.Valid().
//   - ErrDuplicateNode if id is already present.
//
// Complexity: O(1) amortized.
func (n *Network) AddNode(id NodeID) (int, error) {
	if !id.Valid() {
		return -1, fmt.Errorf("AddNode(%s): %w", id, ErrBadNodeID)
	}
	if _, ok := n.index[id]; ok {
		return -1, fmt.Errorf("AddNode(%s): %w", id, ErrDuplicateNode)
	}
	i := len(n.nodes)
	n.nodes = append(n.nodes, id)
	n.index[id] = i
	n.out = append(n.out, nil)
	n.in = append(n.in, nil)

	return i, nil
}

// AddEdge appends a directed edge from→to and returns its index.
//
// Steps:
//  1. Apply opts to a scratch Edge (WithUnbounded).
//  2. Resolve both endpoints; ErrNodeNotFound if either is missing.
//  3. Reject self-loops and negative bounded capacities.
//  4. Append the edge, link it into out[from] / in[to], and add a bounded
//     capacity to the finite total used by Infinity().
//
// Complexity: O(1) amortized.
func (n *Network) AddEdge(from, to NodeID, capacity int64, opts ...EdgeOption) (int, error) {
	e := Edge{Capacity: capacity}
	for _, opt := range opts {
		opt(&e)
	}

	u, ok := n.index[from]
	if !ok {
		return -1, fmt.Errorf("AddEdge(%s→%s): from: %w", from, to, ErrNodeNotFound)
	}
	v, ok := n.index[to]
	if !ok {
		return -1, fmt.Errorf("AddEdge(%s→%s): to: %w", from, to, ErrNodeNotFound)
	}
	if u == v {
		return -1, fmt.Errorf("AddEdge(%s→%s): %w", from, to, ErrLoopNotAllowed)
	}
	if e.Unbounded {
		e.Capacity = 0
	} else if e.Capacity < 0 {
		return -1, fmt.Errorf("AddEdge(%s→%s, cap=%d): %w", from, to, capacity, ErrNegativeCapacity)
	}

	e.From, e.To = u, v
	idx := len(n.edges)
	n.edges = append(n.edges, e)
	n.out[u] = append(n.out[u], idx)
	n.in[v] = append(n.in[v], idx)
	n.finite += e.Capacity

	return idx, nil
}

// NodeCount returns |V|, Source and Sink included.
func (n *Network) NodeCount() int { return len(n.nodes) }

// EdgeCount returns |E|.
func (n *Network) EdgeCount() int { return len(n.edges) }

// Node returns the NodeID at index i. It panics if i is out of range,
// like a slice index.
func (n *Network) Node(i int) NodeID { return n.nodes[i] }

// Index returns the arena index of id.
func (n *Network) Index(id NodeID) (int, bool) {
	i, ok := n.index[id]

	return i, ok
}

// Nodes returns a copy of all NodeIDs in index order.
func (n *Network) Nodes() []NodeID {
	return append([]NodeID(nil), n.nodes...)
}

// Edge returns edge e with its effective capacity: unbounded edges report
// Infinity(). It panics if e is out of range.
func (n *Network) Edge(e int) Edge {
	out := n.edges[e]
	if out.Unbounded {
		out.Capacity = n.Infinity()
	}

	return out
}

// Edges returns copies of all edges, in index order, with effective capacities.
func (n *Network) Edges() []Edge {
	inf := n.Infinity()
	out := make([]Edge, len(n.edges))
	for i, e := range n.edges {
		if e.Unbounded {
			e.Capacity = inf
		}
		out[i] = e
	}

	return out
}

// Out returns the indices of edges leaving node i.
func (n *Network) Out(i int) []int { return append([]int(nil), n.out[i]...) }

// In returns the indices of edges entering node i.
func (n *Network) In(i int) []int { return append([]int(nil), n.in[i]...) }

// Infinity returns the sentinel capacity of unbounded edges: the sum of all
// finite capacities plus one. No finite cut can reach it.
func (n *Network) Infinity() int64 { return n.finite + 1 }

// SourceCapacity returns the total capacity leaving Source.
// Unbounded source edges count as Infinity().
func (n *Network) SourceCapacity() int64 {
	var total int64
	for _, e := range n.out[SourceIndex] {
		total += n.Edge(e).Capacity
	}

	return total
}

// String summarizes the network for logs.
func (n *Network) String() string {
	return fmt.Sprintf("network(nodes=%d, edges=%d, source_cap=%d)", n.NodeCount(), n.EdgeCount(), n.SourceCapacity())
}
