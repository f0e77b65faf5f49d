package srmp

import "github.com/katalvlaran/cfn/table"

const unset = -1

// dimsOf returns the domain sizes of vars, in the same order.
func (s *Solver) dimsOf(vars []int) ([]int, error) {
	dims := make([]int, len(vars))
	for i, v := range vars {
		d, err := s.cfn.Domain(v)
		if err != nil {
			return nil, err
		}
		dims[i] = d
	}

	return dims, nil
}

// decodeLabel inverts the lexicographic encoding of core's doc comment
// (last variable in the scope varies fastest): it returns the per-position
// label such that encodeOffset(vars, dims, label-as-global-assignment)
// would reconstruct idx.
func decodeLabel(idx int, dims []int) []int {
	label := make([]int, len(dims))
	for i := len(dims) - 1; i >= 0; i-- {
		label[i] = idx % dims[i]
		idx /= dims[i]
	}

	return label
}

// encodeOffset computes the linear offset of the labeling x restricted to
// vars, using dims as the domain sizes in the same order as vars.
func encodeOffset(vars, dims, x []int) int {
	offset := 0
	for i, v := range vars {
		offset = offset*dims[i] + x[v]
	}

	return offset
}

// restrictedArgmin implements spec §4.7: find the minimizer of theta
// (indexed over factorIdx's own label space) consistent with the labels
// already fixed in x, and record the minimizing labels for the
// previously-unset variables in the factor's scope.
//
// Complexity: O(K(A) * arity(A)), a brute-force scan over the factor's
// label space; appropriate for the dense-table sizes this solver targets.
func (s *Solver) restrictedArgmin(factorIdx int, theta table.Table, x []int) error {
	f := s.factors[factorIdx]
	vars := f.Vars()
	dims, err := s.dimsOf(vars)
	if err != nil {
		return err
	}

	bestIdx := unset
	var bestVal float64
	for idx := 0; idx < f.K(); idx++ {
		label := decodeLabel(idx, dims)

		consistent := true
		for i, v := range vars {
			if x[v] != unset && x[v] != label[i] {
				consistent = false

				break
			}
		}
		if !consistent {
			continue
		}
		if bestIdx == unset || theta[idx] < bestVal {
			bestIdx = idx
			bestVal = theta[idx]
		}
	}
	if bestIdx == unset {
		return ErrNoConsistentLabeling // unreachable for a well-formed partial assignment
	}

	label := decodeLabel(bestIdx, dims)
	for i, v := range vars {
		if x[v] == unset {
			x[v] = label[i]
		}
	}

	return nil
}

// totalCost evaluates ∑_A data(A)[x|_A] for the complete assignment x
// (spec §4.7).
func (s *Solver) totalCost(x []int) (float64, error) {
	var total float64
	for _, f := range s.factors {
		data := f.Data()
		if data == nil {
			continue
		}
		dims, err := s.dimsOf(f.Vars())
		if err != nil {
			return 0, err
		}
		total += data[encodeOffset(f.Vars(), dims, x)]
	}

	return total, nil
}
