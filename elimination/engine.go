// SPDX-License-Identifier: MIT
// Package: divelim/elimination
//
// engine.go - the per-query pipeline and batch evaluation.
//
// Invariants:
//   - The model is only read; each query builds and drops its own network.
//   - A verdict is only produced from a flow that passed flow.Verify.
//   - Tie is survival: eliminated iff maxflow < source capacity.

package elimination

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/divelim/builder"
	"github.com/katalvlaran/divelim/core"
	"github.com/katalvlaran/divelim/flow"
	"github.com/katalvlaran/divelim/standings"
)

// Engine answers elimination queries. It holds configuration only and is
// safe for concurrent use.
type Engine struct {
	opts     Options
	solver   flow.Solver
	strategy Strategy
}

// New builds an Engine from DefaultOptions and opts.
//
// Errors:
//   - ErrUnknownStrategy if no Solver is given and Strategy is not built in.
//   - ErrInvalidOption for Workers < 1, QueryTimeout < 0 or
//     LevelRebuildInterval < 0.
func New(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.Workers < 1:
		return nil, fmt.Errorf("%w: workers %d", ErrInvalidOption, o.Workers)
	case o.QueryTimeout < 0:
		return nil, fmt.Errorf("%w: query timeout %s", ErrInvalidOption, o.QueryTimeout)
	case o.LevelRebuildInterval < 0:
		return nil, fmt.Errorf("%w: level rebuild interval %d", ErrInvalidOption, o.LevelRebuildInterval)
	}

	e := &Engine{opts: o, solver: o.Solver, strategy: o.Strategy}
	if e.solver != nil {
		e.strategy = StrategyCustom
	} else {
		s, err := o.Strategy.Solver()
		if err != nil {
			return nil, err
		}
		e.solver = s
	}

	return e, nil
}

// Strategy returns the backend this engine uses.
func (e *Engine) Strategy() Strategy { return e.strategy }

// IsEliminated reports whether competitor t is mathematically eliminated.
// "Not eliminated" is a false result, never an error.
func (e *Engine) IsEliminated(ctx context.Context, model *standings.Model, t int) (bool, error) {
	v, err := e.Explain(ctx, model, t)
	if err != nil {
		return false, err
	}

	return v.Eliminated, nil
}

// Explain answers one query and returns the full verdict.
//
// Steps:
//  1. Resolve t; ErrNilModel / ErrUnknownCompetitor.
//  2. Trivial bound: if some competitor already leads t's best total, return
//     a Trivial verdict certified by the strongest such leader (skipped
//     under WithFlowOnly).
//  3. Build the elimination network (builder.Elimination).
//  4. Solve under the per-query timeout; any failure is a *SolverError.
//  5. flow.Verify the result; a violation is a *SolverError.
//  6. Eliminated iff MaxFlow < Capacity.
//  7. On elimination, derive the certificate from the residual min cut.
//
// Complexity: O(N) when trivial, otherwise dominated by the solver on a
// network of O(N²) nodes and edges.
func (e *Engine) Explain(ctx context.Context, model *standings.Model, t int) (Verdict, error) {
	// 1) Resolve
	if ctx == nil {
		ctx = context.Background()
	}
	if model == nil {
		return Verdict{ID: t}, ErrNilModel
	}
	target, err := model.Get(t)
	if err != nil {
		return Verdict{ID: t}, fmt.Errorf("%w: %w", ErrUnknownCompetitor, err)
	}
	v := Verdict{ID: t, Name: target.Name, MaxWins: target.MaxWins()}
	if err = ctx.Err(); err != nil {
		return v, e.solverError(t, err)
	}

	// 2) Trivial bound
	leaders, err := TrivialLeaders(model, t)
	if err != nil {
		return v, err
	}
	if len(leaders) > 0 && !e.opts.FlowOnly {
		v.Eliminated, v.Trivial = true, true
		v.Certificate = newCertificate(model, []int{strongest(model, leaders)})
		e.logVerdict(v)

		return v, nil
	}

	// 3) Network
	var bopts []builder.BuilderOption
	if e.opts.FlowOnly {
		bopts = append(bopts, builder.WithExcessWins())
	}
	n, err := builder.Elimination(model, t, bopts...)
	if err != nil {
		return v, err
	}

	// 4) Solve
	if e.opts.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.QueryTimeout)
		defer cancel()
	}
	res, err := e.solver.MaxFlow(n, flow.FlowOptions{
		Ctx:                  ctx,
		Logger:               e.opts.Logger,
		Verbose:              e.opts.Verbose,
		LevelRebuildInterval: e.opts.LevelRebuildInterval,
	})
	if err != nil {
		return v, e.solverError(t, err)
	}

	// 5) Verify
	if err = flow.Verify(n, res); err != nil {
		return v, e.solverError(t, err)
	}

	// 6) Decide
	v.MaxFlow, v.Capacity = res.Value, n.SourceCapacity()
	v.Eliminated = v.MaxFlow < v.Capacity

	// 7) Certificate
	if v.Eliminated {
		cut, err := flow.MinCut(n, res)
		if err != nil {
			return v, e.solverError(t, err)
		}
		v.Certificate = newCertificate(model, teamsOf(n, cut))
	}
	e.logVerdict(v)

	return v, nil
}

// EvaluateAll explains every competitor concurrently, at most Workers at a
// time. The returned slice is indexed by id. A failed query sets its
// Verdict.Err and does not stop the others; the returned error joins every
// per-query failure (nil if none failed).
//
// Schedule warnings recorded by the model are logged once at Warn.
func (e *Engine) EvaluateAll(ctx context.Context, model *standings.Model) ([]Verdict, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	for _, w := range model.Warnings() {
		e.opts.Logger.Warn("inconsistent schedule",
			zap.Int("id", w.ID),
			zap.String("name", w.Name),
			zap.Int("remaining", w.Remaining),
			zap.Int("scheduled", w.Scheduled))
	}

	verdicts := make([]Verdict, model.Len())
	var g errgroup.Group
	g.SetLimit(e.opts.Workers)
	for _, id := range model.IDs() {
		g.Go(func() error {
			v, err := e.Explain(ctx, model, id)
			v.Err = err
			verdicts[id] = v

			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, v := range verdicts {
		if v.Err != nil {
			errs = append(errs, v.Err)
		}
	}

	return verdicts, errors.Join(errs...)
}

func (e *Engine) solverError(t int, err error) error {
	return &SolverError{Competitor: t, Strategy: e.strategy, Err: err}
}

func (e *Engine) logVerdict(v Verdict) {
	e.opts.Logger.Debug("verdict",
		zap.Int("id", v.ID),
		zap.String("name", v.Name),
		zap.Bool("eliminated", v.Eliminated),
		zap.Bool("trivial", v.Trivial),
		zap.Int64("max_flow", v.MaxFlow),
		zap.Int64("capacity", v.Capacity),
		zap.Ints("certificate", v.Certificate.Members),
		zap.String("strategy", string(e.strategy)))
}

// strongest returns the leader with the most wins (lowest id on ties).
func strongest(model *standings.Model, leaders []int) int {
	best, bestWins := leaders[0], -1
	for _, id := range leaders {
		if w, _ := model.Wins(id); w > bestWins {
			best, bestWins = id, w
		}
	}

	return best
}

// teamsOf returns the competitor ids whose team nodes lie on the source
// side of cut, ascending.
func teamsOf(n *core.Network, cut flow.Cut) []int {
	var ids []int
	for _, i := range cut.SourceSide {
		if node := n.Node(i); node.Kind == core.KindTeam {
			ids = append(ids, node.A)
		}
	}

	return ids
}
