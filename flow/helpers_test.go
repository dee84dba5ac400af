package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/divelim/core"
	"github.com/katalvlaran/divelim/flow"
)

// Terminal placeholders for arc specs; any other value v means core.Team(v).
const (
	src  = -1
	sink = -2
)

// arc describes one edge of a hand-written fixture.
type arc struct {
	from, to int
	capacity int64
	inf      bool
}

func nodeOf(v int) core.NodeID {
	switch v {
	case src:
		return core.Source()
	case sink:
		return core.Sink()
	default:
		return core.Team(v)
	}
}

// buildNetwork creates a network from arcs, adding team nodes on first use.
func buildNetwork(t testing.TB, arcs []arc) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	ensure := func(id core.NodeID) {
		if _, ok := n.Index(id); !ok {
			_, err := n.AddNode(id)
			require.NoError(t, err)
		}
	}
	for _, a := range arcs {
		from, to := nodeOf(a.from), nodeOf(a.to)
		ensure(from)
		ensure(to)
		var opts []core.EdgeOption
		if a.inf {
			opts = append(opts, core.WithUnbounded())
		}
		_, err := n.AddEdge(from, to, a.capacity, opts...)
		require.NoError(t, err)
	}

	return n
}

// randomNetwork builds a network with `inner` team nodes and each ordered
// pair (including terminals) connected with probability p. Capacities are
// uniform in [0, maxCap]; roughly one edge in eight is unbounded.
func randomNetwork(t testing.TB, r *rand.Rand, inner int, p float64, maxCap int64) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	ids := []core.NodeID{core.Source(), core.Sink()}
	for i := 0; i < inner; i++ {
		_, err := n.AddNode(core.Team(i))
		require.NoError(t, err)
		ids = append(ids, core.Team(i))
	}
	for _, u := range ids {
		for _, v := range ids {
			if u == v || u.Kind == core.KindSink || v.Kind == core.KindSource {
				continue
			}
			if r.Float64() >= p {
				continue
			}
			var opts []core.EdgeOption
			if r.Intn(8) == 0 {
				opts = append(opts, core.WithUnbounded())
			}
			_, err := n.AddEdge(u, v, r.Int63n(maxCap+1), opts...)
			require.NoError(t, err)
		}
	}

	return n
}

// bruteForceMinCut enumerates every S/T cut of a small network.
func bruteForceMinCut(n *core.Network) int64 {
	inner := n.NodeCount() - 2
	best := int64(-1)
	side := make([]bool, n.NodeCount())
	for mask := 0; mask < 1<<inner; mask++ {
		side[core.SourceIndex] = true
		side[core.SinkIndex] = false
		for b := 0; b < inner; b++ {
			side[b+2] = mask&(1<<b) != 0
		}
		if c := flow.CutCapacity(n, side); best < 0 || c < best {
			best = c
		}
	}

	return best
}

// namedSolver pairs a solver with a label for sub-tests.
type namedSolver struct {
	name   string
	solver flow.Solver
}

func allSolvers() []namedSolver {
	return []namedSolver{
		{"Dinic", flow.DinicSolver},
		{"EdmondsKarp", flow.EdmondsKarpSolver},
		{"FordFulkerson", flow.FordFulkersonSolver},
	}
}
