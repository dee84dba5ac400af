// SPDX-License-Identifier: MIT
// Package: divelim/builder
//
// impl_teams.go - TeamLayer: team nodes and their sink edges.
//
// Contract:
//   • One team(i) node per competitor i != t, in ascending id order.
//   • team(i)→T capacity = max(0, wins[t] + remaining[t] - wins[i]).
//   • A clamped (zero) sink edge is still materialized: it keeps every team
//     node attached to T and carries no flow.
//   • With WithExcessWins, a competitor already past t's best total also gets
//     S→team(i) with capacity wins[i] - (wins[t] + remaining[t]). That edge
//     can never saturate, so the flow alone proves the elimination.
//
// Complexity:
//   • Time: O(N). Space: O(N) nodes and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/divelim/core"
)

const methodTeamLayer = "TeamLayer"

// TeamLayer returns a Constructor adding the team layer and its sink edges.
func TeamLayer() Constructor {
	return func(n *core.Network, cfg builderConfig) error {
		for _, id := range cfg.others {
			node := core.Team(id)
			if _, err := n.AddNode(node); err != nil {
				return fmt.Errorf("%s: %w", methodTeamLayer, err)
			}

			wins, err := cfg.model.Wins(id)
			if err != nil {
				return fmt.Errorf("%s: %w", methodTeamLayer, err)
			}
			// Slack before i is guaranteed to finish ahead of t.
			slack := int64(cfg.maxWins - wins)
			if slack < 0 {
				slack = 0
			}
			if _, err = n.AddEdge(node, core.Sink(), slack); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→T, cap=%d): %w", methodTeamLayer, node, slack, err)
			}

			excess := int64(wins - cfg.maxWins)
			if !cfg.excessWins || excess <= 0 {
				continue
			}
			if _, err = n.AddEdge(core.Source(), node, excess); err != nil {
				return fmt.Errorf("%s: AddEdge(S→%s, cap=%d): %w", methodTeamLayer, node, excess, err)
			}
		}

		return nil
	}
}
