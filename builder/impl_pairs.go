// SPDX-License-Identifier: MIT
// Package: divelim/builder
//
// impl_pairs.go - PairLayer: pair nodes, their source edges and the
// unbounded pair→team edges.
//
// Contract:
//   • Requires TeamLayer to have run first (team nodes must exist).
//   • Emits each unordered pair {i,j}, i<j, neither equal to t, exactly once
//     in lexicographic (i, j) order.
//   • Pairs with zero games are skipped unless cfg.keepZeroPairs.
//   • Edges per pair, in order: S→pair(i,j) [games], pair→team(i) [∞],
//     pair→team(j) [∞].
//
// Complexity:
//   • Time: O(N²). Space: O(N²) nodes and edges in the worst case.

package builder

import (
	"fmt"

	"github.com/katalvlaran/divelim/core"
)

const methodPairLayer = "PairLayer"

// PairLayer returns a Constructor adding the pair layer.
func PairLayer() Constructor {
	return func(n *core.Network, cfg builderConfig) error {
		for a := 0; a < len(cfg.others); a++ {
			i := cfg.others[a]
			for b := a + 1; b < len(cfg.others); b++ {
				j := cfg.others[b]

				games, err := cfg.model.GamesRemaining(i, j)
				if err != nil {
					return fmt.Errorf("%s: %w", methodPairLayer, err)
				}
				if games == 0 && !cfg.keepZeroPairs {
					continue
				}
				if err = addPair(n, i, j, int64(games)); err != nil {
					return fmt.Errorf("%s: %w", methodPairLayer, err)
				}
			}
		}

		return nil
	}
}

// addPair inserts pair(i,j) with its source edge and both team edges.
func addPair(n *core.Network, i, j int, games int64) error {
	pair := core.Pair(i, j)
	if _, err := n.AddNode(pair); err != nil {
		return err
	}
	if _, err := n.AddEdge(core.Source(), pair, games); err != nil {
		return fmt.Errorf("AddEdge(S→%s, cap=%d): %w", pair, games, err)
	}
	for _, id := range [2]int{i, j} {
		if _, err := n.AddEdge(pair, core.Team(id), 0, core.WithUnbounded()); err != nil {
			return fmt.Errorf("AddEdge(%s→team(%d)): %w", pair, id, err)
		}
	}

	return nil
}
