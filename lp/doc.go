// Package lp solves the maximum-flow problem of a core.Network as a linear
// program, using the simplex method from gonum.org/v1/gonum/optimize/convex/lp.
//
// It exists as an independent cross-check of the combinatorial algorithms in
// package flow: MaxFlow has the same signature and is exposed as Solver, so
// the elimination engine can run either strategy and must reach the same
// verdict.
//
// # Formulation
//
// gonum's Simplex minimizes cᵀx subject to Ax = b, x ≥ 0. For a network with
// edges e = 0..m-1 the program uses 2m variables, a flow xₑ and a slack sₑ
// per edge:
//
//	minimize   −Σ xₑ (e leaves Source) + Σ xₑ (e enters Source)
//	subject to Σ xₑ (e enters v) − Σ xₑ (e leaves v) = 0   for every internal node v
//	           xₑ + sₑ = capacity(e)                         for every edge e
//	           x, s ≥ 0
//
// Unbounded edges use the finite sentinel core.Network.Infinity(). The
// constraint matrix of a flow network is totally unimodular, so a vertex
// optimum is integral; MaxFlow rounds it to int64.
//
// Only nodes and edges weakly connected to Source or Sink take part. A
// component touching neither cannot carry source flow, would make A
// rank-deficient, and has its edges reported with zero flow.
//
// # Errors
//
// ErrSolver wraps any failure reported (or panic raised) by the simplex
// routine. Context cancellation is checked before and after the solve; the
// simplex itself is not interruptible.
package lp
