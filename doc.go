// Package divelim decides, exactly, whether a competitor in a round-robin
// division can still finish first.
//
// A competitor is eliminated when no outcome of the remaining games lets it
// end with at least as many wins as everyone else. A reachable tie counts as
// survival. The decision reduces to one maximum-flow computation per
// competitor, with integer capacities throughout.
//
// The module is organized in flat subpackages:
//
//	standings/   — immutable Competitor snapshot, schedule warnings, table reader
//	core/        — arena flow network: tagged NodeID (S, T, team, pair), Edge, Network
//	builder/     — per-competitor network layers (TeamLayer, PairLayer)
//	flow/        — Dinic, Edmonds–Karp, Ford–Fulkerson; MinCut; Verify
//	lp/          — the same max-flow as a linear program (gonum simplex)
//	elimination/ — trivial bound, Engine, verdicts, certificates, YAML config
//
// Data flows one way:
//
//	standings.Model ─▶ builder.Elimination ─▶ flow.Solver ─▶ elimination.Verdict
//
// Quick start:
//
//	model, _ := standings.ReadFile("teams4.txt")
//	engine, _ := elimination.New(elimination.WithStrategy(elimination.StrategyDinic))
//	verdicts, _ := engine.EvaluateAll(ctx, model)
//	for _, v := range verdicts {
//		fmt.Println(v) // "Philadelphia: eliminated by [0 2] (flow 6 < 7)"
//	}
//
// Every query builds and discards its own network, so one Engine serves any
// number of goroutines.
package divelim
