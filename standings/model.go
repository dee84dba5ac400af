// SPDX-License-Identifier: MIT
// Package: divelim/standings
//
// model.go - immutable Model: construction, validation and read-only queries.
//
// Determinism:
//   - IDs() and Competitors() follow construction order.
//   - Warnings() follow competitor id order.
// Concurrency:
//   - A Model is never mutated after New returns; all methods are safe for
//     concurrent use without locks.

package standings

import (
	"fmt"
)

// Model is an immutable, ordered collection of Competitors indexed by id.
type Model struct {
	competitors []Competitor
	byName      map[string]int
	warnings    []InconsistentScheduleWarning
}

// New validates competitors and returns a Model holding a deep copy of them.
//
// Steps:
//  1. Check each row: ID == position, non-empty unique Name, non-negative
//     Wins/Losses/Remaining, len(Against) == N, non-negative Against.
//  2. Check pairwise symmetry: Against[i][j] == Against[j][i] for i != j.
//  3. Record an InconsistentScheduleWarning for every Remaining != Scheduled().
//
// Returns ErrInvalidModel (wrapped with the offending detail) on any
// structural failure. Warnings never fail construction.
//
// Complexity: O(N²) time for the symmetry check, O(N²) space for the copy.
func New(competitors []Competitor) (*Model, error) {
	n := len(competitors)
	m := &Model{
		competitors: make([]Competitor, n),
		byName:      make(map[string]int, n),
	}

	// 1) Per-row validation and deep copy.
	for i, c := range competitors {
		if c.ID != i {
			return nil, fmt.Errorf("%w: competitor at position %d has id %d", ErrInvalidModel, i, c.ID)
		}
		if c.Name == "" {
			return nil, fmt.Errorf("%w: competitor %d has an empty name", ErrInvalidModel, i)
		}
		if prev, dup := m.byName[c.Name]; dup {
			return nil, fmt.Errorf("%w: name %q used by competitors %d and %d", ErrInvalidModel, c.Name, prev, i)
		}
		if c.Wins < 0 || c.Losses < 0 || c.Remaining < 0 {
			return nil, fmt.Errorf("%w: competitor %q has a negative record (%d/%d/%d)",
				ErrInvalidModel, c.Name, c.Wins, c.Losses, c.Remaining)
		}
		if len(c.Against) != n {
			return nil, fmt.Errorf("%w: competitor %q has %d against entries, want %d",
				ErrInvalidModel, c.Name, len(c.Against), n)
		}
		for j, games := range c.Against {
			if games < 0 {
				return nil, fmt.Errorf("%w: competitor %q has %d games against %d",
					ErrInvalidModel, c.Name, games, j)
			}
		}
		m.competitors[i] = c.clone()
		m.byName[c.Name] = i
	}

	// 2) Symmetry: both rows must agree on the number of games between i and j.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := m.competitors[i].Against[j], m.competitors[j].Against[i]
			if a != b {
				return nil, fmt.Errorf("%w: %q lists %d games against %q, which lists %d",
					ErrInvalidModel, m.competitors[i].Name, a, m.competitors[j].Name, b)
			}
		}
	}

	// 3) Consistency warnings.
	for _, c := range m.competitors {
		if scheduled := c.Scheduled(); scheduled != c.Remaining {
			m.warnings = append(m.warnings, InconsistentScheduleWarning{
				ID:        c.ID,
				Name:      c.Name,
				Remaining: c.Remaining,
				Scheduled: scheduled,
			})
		}
	}

	return m, nil
}

// Len returns the number of competitors.
func (m *Model) Len() int {
	return len(m.competitors)
}

// Has reports whether id belongs to the model.
func (m *Model) Has(id int) bool {
	return id >= 0 && id < len(m.competitors)
}

// Get returns a copy of the competitor with the given id, or ErrNotFound.
// Complexity: O(N) for the Against copy.
func (m *Model) Get(id int) (Competitor, error) {
	if !m.Has(id) {
		return Competitor{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	return m.competitors[id].clone(), nil
}

// Lookup returns a copy of the competitor with the given name, or ErrNotFound.
func (m *Model) Lookup(name string) (Competitor, error) {
	id, ok := m.byName[name]
	if !ok {
		return Competitor{}, fmt.Errorf("%w: name %q", ErrNotFound, name)
	}

	return m.competitors[id].clone(), nil
}

// IDs returns every competitor id in construction order.
func (m *Model) IDs() []int {
	ids := make([]int, len(m.competitors))
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// Competitors returns copies of all competitors in id order.
func (m *Model) Competitors() []Competitor {
	out := make([]Competitor, len(m.competitors))
	for i, c := range m.competitors {
		out[i] = c.clone()
	}

	return out
}

// Wins returns the current win total of id without copying the Against row.
func (m *Model) Wins(id int) (int, error) {
	if !m.Has(id) {
		return 0, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	return m.competitors[id].Wins, nil
}

// GamesRemaining returns the number of games left between i and j.
//
// Errors:
//   - ErrInvalidPair if i == j.
//   - ErrInvalidPair and ErrNotFound if either id is unknown.
func (m *Model) GamesRemaining(i, j int) (int, error) {
	if i == j {
		return 0, fmt.Errorf("%w: %d paired with itself", ErrInvalidPair, i)
	}
	for _, id := range [2]int{i, j} {
		if !m.Has(id) {
			return 0, fmt.Errorf("%w: (%d, %d): %w", ErrInvalidPair, i, j, fmt.Errorf("%w: id %d", ErrNotFound, id))
		}
	}

	return m.competitors[i].Against[j], nil
}

// Warnings returns the schedule inconsistencies found by New, in id order.
func (m *Model) Warnings() []InconsistentScheduleWarning {
	return append([]InconsistentScheduleWarning(nil), m.warnings...)
}
