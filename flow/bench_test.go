package flow_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/divelim/core"
	"github.com/katalvlaran/divelim/flow"
)

// divisionNetwork builds an elimination-shaped network for k teams with
// random pair games and random sink slack.
func divisionNetwork(b *testing.B, k int) *core.Network {
	b.Helper()
	r := rand.New(rand.NewSource(1))
	n := core.NewNetwork()
	for i := 0; i < k; i++ {
		if _, err := n.AddNode(core.Team(i)); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			p := core.Pair(i, j)
			if _, err := n.AddNode(p); err != nil {
				b.Fatal(err)
			}
			_, _ = n.AddEdge(core.Source(), p, int64(1+r.Intn(6)))
			_, _ = n.AddEdge(p, core.Team(i), 0, core.WithUnbounded())
			_, _ = n.AddEdge(p, core.Team(j), 0, core.WithUnbounded())
		}
		_, _ = n.AddEdge(core.Team(i), core.Sink(), int64(r.Intn(4*k)))
	}

	return n
}

func benchSolver(b *testing.B, fn flow.SolverFunc, k int) {
	n := divisionNetwork(b, k)
	opts := flow.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(n, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDinic_Division30(b *testing.B)         { benchSolver(b, flow.Dinic, 30) }
func BenchmarkEdmondsKarp_Division30(b *testing.B)   { benchSolver(b, flow.EdmondsKarp, 30) }
func BenchmarkFordFulkerson_Division30(b *testing.B) { benchSolver(b, flow.FordFulkerson, 30) }
