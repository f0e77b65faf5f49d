package relax

import "github.com/katalvlaran/cfn/core"

// MinimalEdges implements the "Minimal Edges" relaxation of spec §4.3:
// for each non-unary factor A, and for each factor B whose scope is a
// strict subset of scope(A) and is not strictly contained in the scope of
// any other sub-factor of A present in the CFN, introduce an edge A→B.
//
// Factors with no incoming edges and arity > 0 remain valid (they simply
// never receive a message); a factor may have any number of incoming and
// outgoing edges.
//
// Complexity: O(M^2 * a) where M = number of factors and a = typical
// arity, from the pairwise subset comparisons per candidate super-factor;
// fine for the dense-table CFN sizes this solver targets.
func MinimalEdges(cfn *core.CFN) ([]Edge, error) {
	n := cfn.NumFactors()
	factors := make([]core.Factor, n)
	for i := 0; i < n; i++ {
		f, err := cfn.Factor(i)
		if err != nil {
			return nil, err
		}
		factors[i] = f
	}

	var edges []Edge
	for aIdx, A := range factors {
		if core.IsUnary(A) {
			continue // unary factors have no proper non-empty sub-scope
		}

		// Candidate sub-factors: every other factor whose scope is a
		// strict subset of A's.
		var candidates []int
		for bIdx, B := range factors {
			if bIdx == aIdx {
				continue
			}
			if isProperSubset(B.Vars(), A.Vars()) {
				candidates = append(candidates, bIdx)
			}
		}

		// Keep only the maximal candidates: those not strictly contained
		// in another candidate's scope.
		for _, bIdx := range candidates {
			maximal := true
			for _, cIdx := range candidates {
				if cIdx == bIdx {
					continue
				}
				if isProperSubset(factors[bIdx].Vars(), factors[cIdx].Vars()) {
					maximal = false

					break
				}
			}
			if !maximal {
				continue
			}

			e, err := NewEdge(cfn, aIdx, bIdx)
			if err != nil {
				return nil, err
			}
			edges = append(edges, e)
		}
	}

	return edges, nil
}
