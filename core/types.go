// SPDX-License-Identifier: MIT
// Package: divelim/core
//
// types.go - NodeKind, NodeID, Edge, Network, options and sentinel errors.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core network operations.
var (
	// ErrBadNodeID indicates a malformed NodeID (negative id or a self-pair).
	ErrBadNodeID = errors.New("core: malformed node id")

	// ErrDuplicateNode indicates AddNode was called for an existing node.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates an edge from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("core: negative capacity")
)

// Fixed arena positions of the two distinguished nodes.
const (
	SourceIndex = 0
	SinkIndex   = 1
)

// NodeKind tags what a network node stands for.
type NodeKind uint8

const (
	// KindSource is the distinguished flow origin.
	KindSource NodeKind = iota
	// KindSink is the distinguished flow destination.
	KindSink
	// KindTeam is the node of one competitor.
	KindTeam
	// KindPair is the node of the remaining games between two competitors.
	KindPair
)

// String implements fmt.Stringer.
func (k NodeKind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindSink:
		return "sink"
	case KindTeam:
		return "team"
	case KindPair:
		return "pair"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// NodeID identifies a node by kind and competitor ids.
//
// Team nodes use A; pair nodes use A < B; Source and Sink use neither.
// NodeID is comparable and may be used as a map key.
type NodeID struct {
	Kind NodeKind
	A, B int
}

// Source returns the NodeID of the flow origin.
func Source() NodeID { return NodeID{Kind: KindSource} }

// Sink returns the NodeID of the flow destination.
func Sink() NodeID { return NodeID{Kind: KindSink} }

// Team returns the NodeID of competitor id.
func Team(id int) NodeID { return NodeID{Kind: KindTeam, A: id} }

// Pair returns the canonical NodeID of the games between i and j.
// Pair(i, j) == Pair(j, i).
func Pair(i, j int) NodeID {
	if j < i {
		i, j = j, i
	}

	return NodeID{Kind: KindPair, A: i, B: j}
}

// Valid reports whether the id is well formed for its kind.
func (n NodeID) Valid() bool {
	switch n.Kind {
	case KindSource, KindSink:
		return n.A == 0 && n.B == 0
	case KindTeam:
		return n.A >= 0 && n.B == 0
	case KindPair:
		return n.A >= 0 && n.A < n.B
	default:
		return false
	}
}

// Compare orders node ids by kind, then A, then B.
// It returns -1, 0 or +1.
func (n NodeID) Compare(m NodeID) int {
	switch {
	case n.Kind != m.Kind:
		return cmpInt(int(n.Kind), int(m.Kind))
	case n.A != m.A:
		return cmpInt(n.A, m.A)
	default:
		return cmpInt(n.B, m.B)
	}
}

// String renders S, T, team(i) or pair(i,j).
func (n NodeID) String() string {
	switch n.Kind {
	case KindSource:
		return "S"
	case KindSink:
		return "T"
	case KindTeam:
		return fmt.Sprintf("team(%d)", n.A)
	case KindPair:
		return fmt.Sprintf("pair(%d,%d)", n.A, n.B)
	default:
		return fmt.Sprintf("%s(%d,%d)", n.Kind, n.A, n.B)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Edge is a directed, capacitated arc between two node indices.
//
// Capacity of an Unbounded edge is resolved by the owning Network to
// Infinity() whenever the edge is read through Edge/Edges.
type Edge struct {
	// From and To are node indices into the owning Network.
	From, To int

	// Capacity is the maximum flow the edge can carry.
	Capacity int64

	// Unbounded marks a "no limit" edge.
	Unbounded bool
}

// EdgeOption configures an edge when it is added.
type EdgeOption func(*Edge)

// WithUnbounded marks the edge as having no capacity limit. The capacity
// argument passed to AddEdge is ignored for such edges.
func WithUnbounded() EdgeOption {
	return func(e *Edge) { e.Unbounded = true }
}

// Network is the arena-backed flow network of one elimination query.
//
// nodes[i] is the NodeID at index i; index maps it back. out[i] / in[i]
// list edge indices leaving / entering node i. finite accumulates the
// capacities of all bounded edges for the Infinity() sentinel.
type Network struct {
	nodes []NodeID
	index map[NodeID]int
	edges []Edge
	out   [][]int
	in    [][]int

	finite int64
}

// NewNetwork returns a Network containing only Source and Sink.
// Complexity: O(1)
func NewNetwork() *Network {
	n := &Network{index: make(map[NodeID]int)}
	// Source and Sink are always present at fixed indices.
	_, _ = n.AddNode(Source())
	_, _ = n.AddNode(Sink())

	return n
}
