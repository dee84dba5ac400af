// Package builder constructs the per-competitor flow network of an
// elimination query from a standings.Model.
//
// For a tested competitor t, the network has four layers:
//
//	S ──games(i,j)──▶ pair(i,j) ──∞──▶ team(i) ──max(0, w[t]+r[t]-w[i])──▶ T
//	                            └──∞──▶ team(j)
//
//   - one team node for every competitor i != t, in id order;
//   - one pair node for every unordered pair {i, j} (i < j, neither is t)
//     with at least one game left, in lexicographic (i, j) order;
//   - S→pair capacity is the number of games left between i and j;
//   - pair→team edges are unbounded (core.WithUnbounded);
//   - team→T capacity is how many more wins i may collect without passing
//     t's best possible total, clamped at zero.
//
// Construction is a pipeline of Constructor closures run in order by
// BuildNetwork over an immutable builderConfig resolved from the
// model, the tested competitor and BuilderOptions. Elimination composes the
// canonical TeamLayer → PairLayer pipeline.
//
// Guarantees:
//
//   - Deterministic: identical model and t produce identical node and edge
//     order.
//   - Zero-game pairs produce no node and no edge unless WithZeroGamePairs()
//     is set (the max-flow value is identical either way).
//   - WithExcessWins() adds S→team(i) carrying w[i] - (w[t]+r[t]) for every
//     competitor already out of t's reach, so trivial eliminations are also
//     visible to the flow decision.
//   - The tested competitor appears in no node set.
//   - Never panics; errors wrap sentinels (ErrNilModel, ErrUnknownCompetitor)
//     and lower-level core errors with %w.
package builder
