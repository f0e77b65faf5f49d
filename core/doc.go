// Package core defines the Cost Function Network (CFN) that the srmp
// solver consumes: a finite set of variables with integer domain sizes,
// plus factors (cost functions) over ordered subsets of those variables.
//
//	cfn, _ := core.NewCFN([]int{2, 2})
//	_, _ = cfn.AddUnary(0, []float64{0, 1})
//	_, _ = cfn.AddFactor([]int{0, 1}, []float64{0, 1, 1, 0})
//
// A labeling of a factor A is encoded as a single integer in [0, K(A)),
// using the lexicographic stride in which the last variable in A's sorted
// scope varies fastest — the same convention used by relax (edge
// construction) and srmp (message passing) to index into factor tables.
//
// core is read-only from the solver's perspective: a CFN is built once via
// NewCFN/AddUnary/AddFactor, then handed to relax.MinimalEdges and
// srmp.NewSolver, which never mutate it.
package core
