// Package table provides the dense, stride-indexed table arithmetic shared
// by relax (stride table construction, spec §4.1) and srmp (factor-table
// arithmetic and message sending, spec §4.2/§4.5).
package table

import "math"

// Table is a dense, real-valued table over a labeling space, indexed by
// the lexicographic integer encoding described in core's doc comment
// (last variable in the sorted scope varies fastest). It backs factor
// data, reparametrization scratch buffers, and per-edge messages alike
// (spec §4.2, §5 "Message store").
type Table []float64

// NewZeroTable allocates a Table of length k, initialized to zero.
func NewZeroTable(k int) Table { return make(Table, k) }

// Clone returns a copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	copy(out, t)

	return out
}

// AddInPlace adds other to t element-wise: t[i] += other[i].
func (t Table) AddInPlace(other Table) error {
	if len(t) != len(other) {
		return ErrLengthMismatch
	}
	for i := range t {
		t[i] += other[i]
	}

	return nil
}

// SubInPlace subtracts other from t element-wise: t[i] -= other[i].
func (t Table) SubInPlace(other Table) error {
	if len(t) != len(other) {
		return ErrLengthMismatch
	}
	for i := range t {
		t[i] -= other[i]
	}

	return nil
}

// ScaleInPlace multiplies every entry of t by c.
func (t Table) ScaleInPlace(c float64) {
	for i := range t {
		t[i] *= c
	}
}

// Zero resets every entry of t to 0.
func (t Table) Zero() {
	for i := range t {
		t[i] = 0
	}
}

// Min returns the smallest entry of t. t must be non-empty.
func (t Table) Min() (float64, error) {
	if len(t) == 0 {
		return 0, ErrEmptyTable
	}
	m := t[0]
	for _, x := range t[1:] {
		if x < m {
			m = x
		}
	}

	return m, nil
}

// HasNaN reports whether t contains a NaN entry (+Inf is permitted and is
// not reported; it represents a forbidden/hard-constraint assignment per
// spec §4.2).
func (t Table) HasNaN() bool {
	for _, x := range t {
		if math.IsNaN(x) {
			return true
		}
	}

	return false
}

// BroadcastAddInto adds the sub-table m (indexed by B-labelings) into the
// super-table theta (indexed by A-labelings), using strideB/strideDiff
// produced by BuildStride for the edge A→B:
//
//	theta[strideB[b] + strideDiff[c]] += m[b]   for every b, c.
//
// This realizes "add f.m broadcast through f.stride" from spec §4.5 step 2.
func BroadcastAddInto(theta Table, strideB, strideDiff []int, m Table) error {
	return broadcast(theta, strideB, strideDiff, m, func(dst *float64, src float64) { *dst += src })
}

// BroadcastSubInto subtracts the sub-table m from theta, mirroring
// BroadcastAddInto; realizes spec §4.5 step 3.
func BroadcastSubInto(theta Table, strideB, strideDiff []int, m Table) error {
	return broadcast(theta, strideB, strideDiff, m, func(dst *float64, src float64) { *dst -= src })
}

// broadcast applies op(theta[strideB[b]+strideDiff[c]], m[b]) for every
// (b, c) pair. Factored out so Add/Sub share the identical traversal.
func broadcast(theta Table, strideB, strideDiff []int, m Table, op func(dst *float64, src float64)) error {
	if len(m) != len(strideB) {
		return ErrLengthMismatch
	}
	for b, base := range strideB {
		mb := m[b]
		for _, c := range strideDiff {
			op(&theta[base+c], mb)
		}
	}

	return nil
}

// PartialMin computes, for each b in [0, len(strideB)), the minimum of
// theta over all difference-variable assignments:
//
//	out[b] = min_{c} theta[strideB[b] + strideDiff[c]]
//
// This is the message-sending reduction of spec §4.2/§4.5 step 4. out must
// already be allocated with length len(strideB); its contents are
// overwritten.
func PartialMin(theta Table, strideB, strideDiff []int, out Table) error {
	if len(out) != len(strideB) {
		return ErrLengthMismatch
	}
	if len(strideDiff) == 0 {
		return ErrEmptyTable
	}
	for b, base := range strideB {
		m := theta[base+strideDiff[0]]
		for _, c := range strideDiff[1:] {
			v := theta[base+c]
			if v < m {
				m = v
			}
		}
		out[b] = m
	}

	return nil
}
