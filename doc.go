// Package cfn computes a lower bound on, and a candidate minimizer for, the
// MAP (minimum-energy) assignment of a discrete Cost Function Network — an
// energy that is a sum of factors of arbitrary arity over finitely-valued
// variables. Exact minimization is NP-hard; this module solves a linear
// programming relaxation of it via SRMP (Sequential Reweighted Message
// Passing), a convergent block-coordinate-ascent scheme on the dual.
//
// Everything is organized under four subpackages:
//
//	core/  — the CFN container: variables, domains, and dense-table factors
//	table/ — stride-indexed dense table arithmetic shared by relax and srmp
//	relax/ — directed edge-set construction (the "minimal edges" relaxation)
//	srmp/  — the sequence/classification pre-pass and the SRMP driver itself
//
// Typical usage:
//
//	cfn, _ := core.NewCFN([]int{2, 2, 2})
//	_, _ = cfn.AddFactor([]int{0, 1}, []float64{0, 1, 1, 0})
//	_, _ = cfn.AddUnary(2, []float64{0, 1})
//
//	edges, _ := relax.MinimalEdges(cfn)
//	solver, _ := srmp.NewSolver(cfn, edges, srmp.DefaultOptions())
//	result, _ := solver.Run()
package cfn
