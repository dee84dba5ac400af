package standings_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/divelim/standings"
)

// ModelSuite exercises construction, validation and queries of standings.Model.
type ModelSuite struct {
	suite.Suite
}

// threeTeams returns a small, consistent division.
//
//	A: 5 wins, 0 remaining
//	B: 1 win,  1 remaining (vs C)
//	C: 4 wins, 1 remaining (vs B)
func threeTeams() []standings.Competitor {
	return []standings.Competitor{
		{ID: 0, Name: "A", Wins: 5, Losses: 1, Remaining: 0, Against: []int{0, 0, 0}},
		{ID: 1, Name: "B", Wins: 1, Losses: 4, Remaining: 1, Against: []int{0, 0, 1}},
		{ID: 2, Name: "C", Wins: 4, Losses: 1, Remaining: 1, Against: []int{0, 1, 0}},
	}
}

// TestGetAndLookup verifies id and name access plus ErrNotFound.
func (s *ModelSuite) TestGetAndLookup() {
	m, err := standings.New(threeTeams())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, m.Len())
	require.Equal(s.T(), []int{0, 1, 2}, m.IDs())

	c, err := m.Get(2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "C", c.Name)
	require.Equal(s.T(), 5, c.MaxWins())

	byName, err := m.Lookup("B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, byName.ID)

	_, err = m.Get(3)
	require.True(s.T(), errors.Is(err, standings.ErrNotFound))
	_, err = m.Get(-1)
	require.True(s.T(), errors.Is(err, standings.ErrNotFound))
	_, err = m.Lookup("Z")
	require.True(s.T(), errors.Is(err, standings.ErrNotFound))
}

// TestGamesRemaining covers the pair lookup and its InvalidPair cases.
func (s *ModelSuite) TestGamesRemaining() {
	m, err := standings.New(threeTeams())
	require.NoError(s.T(), err)

	games, err := m.GamesRemaining(1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, games)

	games, err = m.GamesRemaining(0, 1)
	require.NoError(s.T(), err)
	require.Zero(s.T(), games)

	_, err = m.GamesRemaining(1, 1)
	require.True(s.T(), errors.Is(err, standings.ErrInvalidPair))

	_, err = m.GamesRemaining(0, 7)
	require.True(s.T(), errors.Is(err, standings.ErrInvalidPair))
	require.True(s.T(), errors.Is(err, standings.ErrNotFound))
}

// TestImmutable checks that neither the input slice nor returned copies
// can change the model.
func (s *ModelSuite) TestImmutable() {
	in := threeTeams()
	m, err := standings.New(in)
	require.NoError(s.T(), err)

	in[1].Against[2] = 9
	in[1].Wins = 99
	c, err := m.Get(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, c.Wins)
	require.Equal(s.T(), 1, c.Against[2])

	c.Against[2] = 42
	again, err := m.Get(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, again.Against[2])

	all := m.Competitors()
	all[0].Against[0] = 3
	first, _ := m.Get(0)
	require.Zero(s.T(), first.Against[0])
}

// TestValidation covers every fatal validation branch of New.
func (s *ModelSuite) TestValidation() {
	cases := []struct {
		name   string
		mutate func([]standings.Competitor) []standings.Competitor
	}{
		{"id mismatch", func(cs []standings.Competitor) []standings.Competitor { cs[1].ID = 5; return cs }},
		{"empty name", func(cs []standings.Competitor) []standings.Competitor { cs[0].Name = ""; return cs }},
		{"duplicate name", func(cs []standings.Competitor) []standings.Competitor { cs[2].Name = "A"; return cs }},
		{"negative wins", func(cs []standings.Competitor) []standings.Competitor { cs[0].Wins = -1; return cs }},
		{"short against", func(cs []standings.Competitor) []standings.Competitor { cs[0].Against = []int{0, 0}; return cs }},
		{"negative against", func(cs []standings.Competitor) []standings.Competitor {
			cs[1].Against[2], cs[2].Against[1] = -1, -1
			return cs
		}},
		{"asymmetric", func(cs []standings.Competitor) []standings.Competitor { cs[1].Against[2] = 2; return cs }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := standings.New(tc.mutate(threeTeams()))
			require.Error(s.T(), err)
			require.True(s.T(), errors.Is(err, standings.ErrInvalidModel), "got %v", err)
		})
	}
}

// TestEmptyModel verifies that zero competitors is a valid model.
func (s *ModelSuite) TestEmptyModel() {
	m, err := standings.New(nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), m.Len())
	require.Empty(s.T(), m.IDs())
}

// TestInconsistentScheduleWarning verifies that a Remaining/Against mismatch
// is reported but does not fail construction.
func (s *ModelSuite) TestInconsistentScheduleWarning() {
	cs := []standings.Competitor{
		{ID: 0, Name: "A", Wins: 3, Remaining: 0, Against: []int{0, 2}},
		{ID: 1, Name: "B", Wins: 1, Remaining: 2, Against: []int{2, 0}},
	}
	m, err := standings.New(cs)
	require.NoError(s.T(), err)

	ws := m.Warnings()
	require.Len(s.T(), ws, 1)
	require.Equal(s.T(), standings.InconsistentScheduleWarning{ID: 0, Name: "A", Remaining: 0, Scheduled: 2}, ws[0])
	require.Contains(s.T(), ws[0].String(), "A (id 0)")
}

// TestSelfGamesIgnored checks that Against[ID] never counts toward Scheduled.
func (s *ModelSuite) TestSelfGamesIgnored() {
	c := standings.Competitor{ID: 1, Name: "X", Remaining: 3, Against: []int{1, 7, 2}}
	require.Equal(s.T(), 3, c.Scheduled())
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelSuite))
}
