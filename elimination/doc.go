// Package elimination decides whether a competitor is mathematically
// eliminated from finishing first, and explains why.
//
// A competitor t is eliminated when no outcome of the remaining games lets
// it finish with at least as many wins as every other competitor. A
// reachable tie is survival.
//
// # Algorithm
//
// Engine.Explain answers one query in two stages:
//
//  1. Trivial bound (IsTriviallyEliminated): some i != t already has more
//     wins than t can reach. O(N); no network is built.
//  2. Flow reduction: builder.Elimination lays out Source → Pair(i,j) →
//     Team(i) → Sink for every i, j != t, a flow.Solver computes a maximum
//     flow, flow.Verify checks it, and t is eliminated iff the flow value is
//     strictly less than the total capacity leaving Source.
//
// On elimination a Certificate names the competitors R on the source side of
// a minimum cut. Their current wins plus the games among them exceed what
// |R| competitors can share while each stays at or below t's best total:
//
//	TotalWins + MutualGames > maxWins(t) · |R|
//
// # Strategies
//
// Four interchangeable flow.Solver implementations are selectable by
// Strategy: StrategyDinic (default), StrategyEdmondsKarp,
// StrategyFordFulkerson and StrategyLP (gonum simplex). All must reach the
// same verdict; tests assert that they do.
//
// # Concurrency
//
// Every query builds and discards its own network, so an Engine is safe for
// concurrent use. EvaluateAll runs one query per competitor on an errgroup
// bounded by WithWorkers. A failing query records its error in Verdict.Err
// and the batch continues.
//
// # Configuration
//
// Engines take functional options (New(WithStrategy(...), ...)) or a YAML
// document loaded with LoadConfig:
//
//	strategy: dinic
//	workers: 4
//	query_timeout: 2s
//	level_rebuild_interval: 0
//	verbose: false
//	flow_only: false
//
// # Errors
//
//	ErrNilModel          - nil *standings.Model.
//	ErrUnknownCompetitor - tested id not in the model (also matches
//	                       standings.ErrNotFound).
//	ErrUnknownStrategy   - unrecognized Strategy name.
//	ErrInvalidOption     - out-of-range option or config value.
//	*SolverError         - the solver failed, timed out, or returned a flow
//	                       that did not verify; fatal for that query only.
package elimination
