package lp_test

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/divelim/builder"
	"github.com/katalvlaran/divelim/core"
	"github.com/katalvlaran/divelim/flow"
	"github.com/katalvlaran/divelim/lp"
	"github.com/katalvlaran/divelim/standings"
)

type SimplexSuite struct {
	suite.Suite
}

func (s *SimplexSuite) solve(n *core.Network) flow.Result {
	res, err := lp.MaxFlow(n, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.NoError(s.T(), flow.Verify(n, res))

	return res
}

func (s *SimplexSuite) TestSingleEdge() {
	n := core.NewNetwork()
	_, err := n.AddEdge(core.Source(), core.Sink(), 7)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), s.solve(n).Value)
}

func (s *SimplexSuite) TestEmptyNetwork() {
	res := s.solve(core.NewNetwork())
	require.Zero(s.T(), res.Value)
	require.Empty(s.T(), res.Flow)
}

func (s *SimplexSuite) TestIsolatedComponentCarriesNoFlow() {
	n := core.NewNetwork()
	for i := 0; i < 4; i++ {
		_, err := n.AddNode(core.Team(i))
		require.NoError(s.T(), err)
	}
	// S→0→T plus a cycle 1→2→3→1 touching neither terminal.
	_, _ = n.AddEdge(core.Source(), core.Team(0), 3)
	_, _ = n.AddEdge(core.Team(0), core.Sink(), 2)
	_, _ = n.AddEdge(core.Team(1), core.Team(2), 5)
	_, _ = n.AddEdge(core.Team(2), core.Team(3), 5)
	_, _ = n.AddEdge(core.Team(3), core.Team(1), 5)

	res := s.solve(n)
	require.Equal(s.T(), int64(2), res.Value)
	require.Equal(s.T(), []int64{2, 2, 0, 0, 0}, res.Flow)
}

func (s *SimplexSuite) TestFixturesAgreeWithDinic() {
	// Divisions from the testdata: the LP must agree with Dinic on every
	// competitor's network.
	for _, file := range []string{"teams4.txt", "teams5.txt"} {
		model, err := standings.ReadFile(filepath.Join("..", "standings", "testdata", file))
		require.NoError(s.T(), err)
		for _, id := range model.IDs() {
			n, err := builder.Elimination(model, id)
			require.NoError(s.T(), err)

			want, err := flow.Dinic(n, flow.DefaultOptions())
			require.NoError(s.T(), err)
			require.Equal(s.T(), want.Value, s.solve(n).Value, "%s competitor %d", file, id)
		}
	}
}

func (s *SimplexSuite) TestNilNetwork() {
	_, err := lp.MaxFlow(nil, flow.DefaultOptions())
	require.True(s.T(), errors.Is(err, flow.ErrNilNetwork))
}

func (s *SimplexSuite) TestCanceledContext() {
	n := core.NewNetwork()
	_, _ = n.AddEdge(core.Source(), core.Sink(), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lp.Solver.MaxFlow(n, flow.FlowOptions{Ctx: ctx})
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestSimplexSuite(t *testing.T) {
	suite.Run(t, new(SimplexSuite))
}

// TestRandomDivisions_AgreesWithDinic builds random divisions and compares
// the LP value with Dinic for every competitor.
func TestRandomDivisions_AgreesWithDinic(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for iter := 0; iter < 30; iter++ {
		model := randomDivision(t, r, 2+r.Intn(5))
		for _, id := range model.IDs() {
			n, err := builder.Elimination(model, id)
			require.NoError(t, err)

			want, err := flow.Dinic(n, flow.DefaultOptions())
			require.NoError(t, err)
			got, err := lp.MaxFlow(n, flow.DefaultOptions())
			require.NoError(t, err)
			require.NoError(t, flow.Verify(n, got))
			require.Equal(t, want.Value, got.Value, "iter %d competitor %d", iter, id)
		}
	}
}

// randomDivision returns k competitors with a symmetric random schedule.
func randomDivision(t *testing.T, r *rand.Rand, k int) *standings.Model {
	t.Helper()
	against := make([][]int, k)
	for i := range against {
		against[i] = make([]int, k)
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			g := r.Intn(5)
			against[i][j], against[j][i] = g, g
		}
	}

	cs := make([]standings.Competitor, k)
	for i := range cs {
		remaining := 0
		for _, g := range against[i] {
			remaining += g
		}
		cs[i] = standings.Competitor{
			ID:        i,
			Name:      string(rune('A' + i)),
			Wins:      r.Intn(20),
			Losses:    r.Intn(20),
			Remaining: remaining,
			Against:   against[i],
		}
	}
	model, err := standings.New(cs)
	require.NoError(t, err)

	return model
}
