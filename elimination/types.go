// SPDX-License-Identifier: MIT
// Package: divelim/elimination
//
// types.go - strategies, verdicts and elimination certificates.

package elimination

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/divelim/flow"
	"github.com/katalvlaran/divelim/lp"
	"github.com/katalvlaran/divelim/standings"
)

// Strategy names a max-flow backend.
type Strategy string

// Built-in strategies.
const (
	StrategyDinic         Strategy = "dinic"
	StrategyEdmondsKarp   Strategy = "edmonds-karp"
	StrategyFordFulkerson Strategy = "ford-fulkerson"
	StrategyLP            Strategy = "lp"

	// StrategyCustom labels a solver supplied through WithSolver.
	StrategyCustom Strategy = "custom"
)

var solvers = map[Strategy]flow.Solver{
	StrategyDinic:         flow.DinicSolver,
	StrategyEdmondsKarp:   flow.EdmondsKarpSolver,
	StrategyFordFulkerson: flow.FordFulkersonSolver,
	StrategyLP:            lp.Solver,
}

// Strategies lists the built-in strategies in a stable order.
func Strategies() []Strategy {
	return []Strategy{StrategyDinic, StrategyEdmondsKarp, StrategyFordFulkerson, StrategyLP}
}

// ParseStrategy resolves a case-insensitive strategy name.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := solvers[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return s, nil
}

// Solver returns the flow.Solver registered for s.
func (s Strategy) Solver() (flow.Solver, error) {
	solver, ok := solvers[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}

	return solver, nil
}

// Certificate is a set of competitors that proves elimination.
//
// Members are competitor ids in ascending order. TotalWins is Σ wins over
// Members and MutualGames is Σ games remaining between pairs of Members.
type Certificate struct {
	Members     []int
	TotalWins   int
	MutualGames int
}

// Proves reports whether the members cannot all finish at or below
// maxWins: TotalWins + MutualGames > maxWins · |Members|.
func (c Certificate) Proves(maxWins int) bool {
	if len(c.Members) == 0 {
		return false
	}

	return c.TotalWins+c.MutualGames > maxWins*len(c.Members)
}

// newCertificate sums wins and mutual games of members.
func newCertificate(model *standings.Model, members []int) Certificate {
	c := Certificate{Members: members}
	for k, i := range members {
		w, _ := model.Wins(i)
		c.TotalWins += w
		for _, j := range members[k+1:] {
			g, _ := model.GamesRemaining(i, j)
			c.MutualGames += g
		}
	}

	return c
}

// Verdict is the answer to one elimination query.
//
//   - Trivial: decided by the trivial bound; MaxFlow and Capacity are zero.
//   - MaxFlow, Capacity: flow value and total source capacity of the
//     network; Eliminated == (MaxFlow < Capacity) for non-trivial verdicts.
//   - Certificate: set only when Eliminated.
//   - Err: set by EvaluateAll when the query failed; other fields beyond
//     ID and Name are then meaningless.
type Verdict struct {
	ID          int
	Name        string
	Eliminated  bool
	Trivial     bool
	MaxWins     int
	MaxFlow     int64
	Capacity    int64
	Certificate Certificate
	Err         error
}

// String renders the verdict in one line.
func (v Verdict) String() string {
	switch {
	case v.Err != nil:
		return fmt.Sprintf("%s: error: %v", v.Name, v.Err)
	case !v.Eliminated:
		return fmt.Sprintf("%s: not eliminated", v.Name)
	case v.Trivial:
		return fmt.Sprintf("%s: eliminated (trivially) by %v", v.Name, v.Certificate.Members)
	default:
		return fmt.Sprintf("%s: eliminated by %v (flow %d < %d)", v.Name, v.Certificate.Members, v.MaxFlow, v.Capacity)
	}
}
