// SPDX-License-Identifier: MIT
// Package: divelim/elimination
//
// trivial.go - the O(N) short-circuit run before any network is built.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/divelim/standings"
)

// IsTriviallyEliminated reports whether some competitor i != t already has
// more wins than t can reach: wins[i] > wins[t] + remaining[t].
//
// A true result proves elimination; false proves nothing.
//
// Complexity: O(N).
func IsTriviallyEliminated(model *standings.Model, t int) (bool, error) {
	leaders, err := TrivialLeaders(model, t)
	if err != nil {
		return false, err
	}

	return len(leaders) > 0, nil
}

// TrivialLeaders returns, in id order, every competitor whose current wins
// exceed t's best possible total.
func TrivialLeaders(model *standings.Model, t int) ([]int, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	target, err := model.Get(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownCompetitor, err)
	}

	best := target.MaxWins()
	var leaders []int
	for _, id := range model.IDs() {
		if id == t {
			continue
		}
		w, _ := model.Wins(id)
		if w > best {
			leaders = append(leaders, id)
		}
	}

	return leaders, nil
}
