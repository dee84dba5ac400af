// SPDX-License-Identifier: MIT
// Package: divelim/standings
//
// types.go - Competitor, warnings and sentinel errors.

package standings

import (
	"errors"
	"fmt"
)

// Sentinel errors for standings operations.
var (
	// ErrNotFound indicates a query referenced an id or name absent from the model.
	ErrNotFound = errors.New("standings: competitor not found")

	// ErrInvalidPair indicates a pairwise lookup with i == j or an unknown id.
	ErrInvalidPair = errors.New("standings: invalid competitor pair")

	// ErrInvalidModel indicates New rejected the competitor list.
	ErrInvalidModel = errors.New("standings: invalid model")

	// ErrMalformedRow indicates Read could not parse a table row.
	ErrMalformedRow = errors.New("standings: malformed row")
)

// Competitor is one row of the standings table.
//
// Against[j] is the number of games still to be played versus competitor j.
// Against[ID] is conventionally 0 and is never used as a constraint.
type Competitor struct {
	// ID is the dense, 0-based position of the competitor in its Model.
	ID int

	// Name is the display name; unique within a Model.
	Name string

	// Wins, Losses and Remaining are the current record.
	Wins      int
	Losses    int
	Remaining int

	// Against holds pairwise remaining-game counts, indexed by competitor ID.
	Against []int
}

// MaxWins is the best final total the competitor can reach: every remaining
// game won.
func (c Competitor) MaxWins() int {
	return c.Wins + c.Remaining
}

// Scheduled returns the sum of Against over every other competitor.
// For well-formed input it equals Remaining.
func (c Competitor) Scheduled() int {
	total := 0
	for j, games := range c.Against {
		if j == c.ID {
			continue
		}
		total += games
	}

	return total
}

// String renders the competitor the way a standings table prints it.
func (c Competitor) String() string {
	return fmt.Sprintf("%s\t%d wins\t%d losses\t%d remaining", c.Name, c.Wins, c.Losses, c.Remaining)
}

// clone returns a copy that shares no memory with c.
func (c Competitor) clone() Competitor {
	out := c
	out.Against = append([]int(nil), c.Against...)

	return out
}

// InconsistentScheduleWarning reports a competitor whose Remaining differs
// from the sum of its Against row. It is informational: the model is still
// usable and the Against values drive network construction.
type InconsistentScheduleWarning struct {
	ID        int
	Name      string
	Remaining int
	Scheduled int
}

// String implements fmt.Stringer.
func (w InconsistentScheduleWarning) String() string {
	return fmt.Sprintf("standings: %s (id %d) reports %d remaining but %d scheduled against others",
		w.Name, w.ID, w.Remaining, w.Scheduled)
}

// ParseError describes a table row Read could not turn into a Competitor.
type ParseError struct {
	// Line is the 1-based line number in the input, header included.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("standings: line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }
