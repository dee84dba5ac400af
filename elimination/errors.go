// SPDX-License-Identifier: MIT
// Package: divelim/elimination
//
// errors.go - sentinel errors and the per-query SolverError.

package elimination

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel indicates a nil *standings.Model was supplied.
	ErrNilModel = errors.New("elimination: nil standings model")

	// ErrUnknownCompetitor indicates the queried id is not in the model.
	ErrUnknownCompetitor = errors.New("elimination: unknown competitor")

	// ErrUnknownStrategy indicates a Strategy name with no registered solver.
	ErrUnknownStrategy = errors.New("elimination: unknown strategy")

	// ErrInvalidOption indicates an out-of-range option or config value.
	ErrInvalidOption = errors.New("elimination: invalid option")
)

// SolverError reports that the flow computation for one competitor failed:
// the solver returned an error (including a context deadline), or its flow
// did not pass flow.Verify. No verdict is inferred from a failed query.
type SolverError struct {
	Competitor int
	Strategy   Strategy
	Err        error
}

// Error implements error.
func (e *SolverError) Error() string {
	return fmt.Sprintf("elimination: %s solver failed for competitor %d: %v", e.Strategy, e.Competitor, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *SolverError) Unwrap() error { return e.Err }
