package lp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	convexlp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/divelim/core"
	"github.com/katalvlaran/divelim/flow"
)

// ErrSolver is returned (wrapped) when the simplex routine fails.
var ErrSolver = errors.New("lp: simplex failed")

// Tolerance passed to gonum's Simplex.
const Tolerance = 1e-10

// Solver exposes MaxFlow through the flow.Solver interface.
var Solver flow.Solver = flow.SolverFunc(MaxFlow)

// MaxFlow computes the maximum flow of n by linear programming.
//
// Steps:
//  1. Normalize options; reject a nil network; honor an ended context.
//  2. Shortcut: zero source capacity means zero flow.
//  3. Mark nodes weakly connected to Source or Sink (O(V + E)).
//  4. Assemble c, A and b over the marked edges (O(V · E) dense matrix).
//  5. Run gonum's Simplex; wrap errors and recovered panics in ErrSolver.
//  6. Round xₑ to integers and compute the value as net source outflow.
//
// Rounding assumes a vertex optimum; callers should still pass the result
// through flow.Verify.
func MaxFlow(n *core.Network, opts flow.FlowOptions) (res flow.Result, err error) {
	// 1) Options and guards
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if n == nil {
		return flow.Result{}, flow.ErrNilNetwork
	}
	if err := opts.Ctx.Err(); err != nil {
		return flow.Result{}, err
	}

	edges := n.Edges()
	zero := flow.Result{Flow: make([]int64, len(edges))}

	// 2) Nothing can leave the source
	if n.SourceCapacity() == 0 {
		return zero, nil
	}

	// 3) Live nodes
	live := connectedToTerminals(n)
	cols := make([]int, 0, len(edges)) // cols[k] = edge index of LP flow variable k
	for e, edge := range edges {
		if live[edge.From] {
			cols = append(cols, e)
		}
	}
	rowOf := make([]int, n.NodeCount()) // conservation row of node v, or -1
	rows := 0
	for v := range rowOf {
		rowOf[v] = -1
		if v == core.SourceIndex || v == core.SinkIndex || !live[v] {
			continue
		}
		if len(n.Out(v))+len(n.In(v)) == 0 {
			continue
		}
		rowOf[v] = rows
		rows++
	}

	// 4) Standard form
	m := len(cols)
	A := mat.NewDense(rows+m, 2*m, nil)
	b := make([]float64, rows+m)
	c := make([]float64, 2*m)
	for k, e := range cols {
		edge := edges[e]
		if r := rowOf[edge.To]; r >= 0 {
			A.Set(r, k, 1)
		}
		if r := rowOf[edge.From]; r >= 0 {
			A.Set(r, k, -1)
		}
		A.Set(rows+k, k, 1)
		A.Set(rows+k, m+k, 1)
		b[rows+k] = float64(edge.Capacity)

		switch {
		case edge.From == core.SourceIndex:
			c[k] = -1
		case edge.To == core.SourceIndex:
			c[k] = 1
		}
	}

	// 5) Solve
	defer func() {
		if p := recover(); p != nil {
			res, err = flow.Result{}, fmt.Errorf("%w: panic: %v", ErrSolver, p)
		}
	}()
	opt, x, serr := convexlp.Simplex(c, A, b, Tolerance, nil)
	if serr != nil {
		return flow.Result{}, fmt.Errorf("%w: %w", ErrSolver, serr)
	}
	if err := opts.Ctx.Err(); err != nil {
		return flow.Result{}, err
	}

	// 6) Integral flow
	res = zero
	for k, e := range cols {
		res.Flow[e] = int64(math.Round(x[k]))
		switch {
		case edges[e].From == core.SourceIndex:
			res.Value += res.Flow[e]
		case edges[e].To == core.SourceIndex:
			res.Value -= res.Flow[e]
		}
	}
	if opts.Verbose {
		opts.Logger.Debug("lp: simplex solved",
			zap.Int("rows", rows+m),
			zap.Int("cols", 2*m),
			zap.Float64("objective", -opt),
			zap.Int64("value", res.Value))
	}

	return res, nil
}

// connectedToTerminals marks every node in the weak component of Source or
// Sink.
func connectedToTerminals(n *core.Network) []bool {
	edges := n.Edges()
	seen := make([]bool, n.NodeCount())
	seen[core.SourceIndex] = true
	seen[core.SinkIndex] = true
	queue := []int{core.SourceIndex, core.SinkIndex}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, e := range n.Out(u) {
			if v := edges[e].To; !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
		for _, e := range n.In(u) {
			if v := edges[e].From; !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}
