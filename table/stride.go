package table

// BuildStride implements the StrideTable builder of spec §4.1.
//
// Given a super-scope varsA (sorted, length nA, with per-position domain
// sizes dimsA) and a sub-scope varsB (sorted, length nB, a subset of
// varsA, with per-position domain sizes dimsB), BuildStride returns a
// table T of length K(B) = prod(dimsB) such that T[b] is the offset in
// A's linearised table (lexicographic, last variable fastest) of the
// labeling whose restriction to varsB equals b and whose remaining
// ("difference") variables are all 0.
//
// BuildStride is also used, unchanged, to compute stride_diff: callers
// pass the difference scope C = vars(A) \ vars(B) as varsB/dimsB, which is
// exactly the same "sub-scope of A" computation the spec's §4.1 builder
// performs — stride_B and stride_diff are the same function applied to two
// different sub-scopes of A.
//
// Errors: ErrSubScopeNotSubset if some variable in varsB is not in varsA;
// ErrDomainMismatch if a shared variable's domain size disagrees between
// dimsA and dimsB.
//
// Complexity: O(nA + K(B)) amortized (the odometer increment in the main
// loop is O(1) amortized per entry; position lookup is a single O(nA)
// merge pass since both scopes are sorted).
func BuildStride(varsA, dimsA, varsB, dimsB []int) ([]int, error) {
	nB := len(varsB)

	// Empty sub-scope: K(B) = 1, T = [0] (spec §4.1 edge case).
	if nB == 0 {
		return []int{0}, nil
	}

	// strideOfA[j] = contribution to A's linear offset of advancing
	// varsA[j]'s label by one, i.e. the product of dimsA[j+1:].
	strideOfA := make([]int, len(varsA))
	acc := 1
	for j := len(varsA) - 1; j >= 0; j-- {
		strideOfA[j] = acc
		acc *= dimsA[j]
	}

	// For each B-variable, find its position in A (both sorted: merge scan)
	// and record the A-stride it contributes plus its own domain size.
	sB := make([]int, nB)
	{
		j := 0
		for i := 0; i < nB; i++ {
			for j < len(varsA) && varsA[j] != varsB[i] {
				j++
			}
			if j >= len(varsA) {
				return nil, ErrSubScopeNotSubset
			}
			if dimsA[j] != dimsB[i] {
				return nil, ErrDomainMismatch
			}
			sB[i] = strideOfA[j]
		}
	}

	kB := 1
	for _, d := range dimsB {
		kB *= d
	}

	// Odometer enumeration: digits[i] is the current label of varsB[i];
	// T[0] = 0 (all digits at their minimum); each subsequent entry is
	// produced by incrementing the least-significant digit that has not
	// saturated, carrying into higher digits exactly like ripple-carry
	// counting, last variable fastest (spec §4.1).
	digits := make([]int, nB)
	T := make([]int, kB)
	offset := 0
	T[0] = 0
	for k := 1; k < kB; k++ {
		i := nB - 1
		for {
			digits[i]++
			offset += sB[i]
			if digits[i] < dimsB[i] {
				break
			}
			// Saturated: reset this digit's contribution to 0 and carry.
			offset -= digits[i] * sB[i]
			digits[i] = 0
			i--
		}
		T[k] = offset
	}

	return T, nil
}
