// Package relax builds the directed edge set E ⊂ {(A,B) : scope(B) ⊊
// scope(A)} that the srmp solver passes messages over (spec §3 "Edge",
// §4.3). The core solver does not require any particular relaxation
// policy as long as the strict-subset invariant holds (spec §6); this
// package ships the one relaxation spec §4.3 names: MinimalEdges.
package relax

import (
	"github.com/katalvlaran/cfn/core"
	"github.com/katalvlaran/cfn/table"
)

// Edge is a directed edge A→B in the relaxation graph: From and To are
// indices into the CFN's factor list (core.CFN.Factor), and StrideB /
// StrideDiff are the stride tables of spec §3/§4.1 that let srmp map a
// B-labeling (and a difference-scope labeling) to an offset in A's table.
type Edge struct {
	From int // index of the super-factor A
	To   int // index of the sub-factor B

	// StrideB has length K(B); StrideB[b] is the offset in A's table of
	// the labeling whose restriction to vars(B) equals b and whose
	// difference variables are all 0.
	StrideB []int

	// StrideDiff has length K(A)/K(B); StrideDiff[c] is the offset
	// contributed by the difference-scope labeling c (with B-vars at 0).
	// The full A-offset for (b, c) is StrideB[b] + StrideDiff[c].
	StrideDiff []int
}

// NewEdge validates and builds the Edge A→B for the given factor indices,
// computing StrideB and StrideDiff immediately (spec §4.3: "Compute
// stride_B and stride_diff immediately").
//
// Validates: both indices in range, vars(B) a strict subset of vars(A).
func NewEdge(cfn *core.CFN, aIdx, bIdx int) (Edge, error) {
	A, err := cfn.Factor(aIdx)
	if err != nil {
		return Edge{}, ErrFactorIndexOutOfRange
	}
	B, err := cfn.Factor(bIdx)
	if err != nil {
		return Edge{}, ErrFactorIndexOutOfRange
	}

	varsA, varsB := A.Vars(), B.Vars()
	if !isProperSubset(varsB, varsA) {
		if equalSets(varsB, varsA) {
			return Edge{}, ErrEmptyDifference
		}

		return Edge{}, ErrNotProperSubset
	}

	dimsA, err := dims(cfn, varsA)
	if err != nil {
		return Edge{}, err
	}
	dimsB, err := dims(cfn, varsB)
	if err != nil {
		return Edge{}, err
	}
	varsC := setDifference(varsA, varsB)
	dimsC, err := dims(cfn, varsC)
	if err != nil {
		return Edge{}, err
	}

	strideB, err := table.BuildStride(varsA, dimsA, varsB, dimsB)
	if err != nil {
		return Edge{}, err
	}
	strideDiff, err := table.BuildStride(varsA, dimsA, varsC, dimsC)
	if err != nil {
		return Edge{}, err
	}

	return Edge{From: aIdx, To: bIdx, StrideB: strideB, StrideDiff: strideDiff}, nil
}

func dims(cfn *core.CFN, vars []int) ([]int, error) {
	out := make([]int, len(vars))
	for i, v := range vars {
		d, err := cfn.Domain(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}

	return out, nil
}

// isProperSubset reports whether sorted slice sub is a strict subset of
// sorted slice super (every element of sub appears in super, and
// len(sub) < len(super)).
func isProperSubset(sub, super []int) bool {
	if len(sub) >= len(super) {
		return false
	}
	return isSubset(sub, super)
}

// isSubset reports whether every element of sorted slice sub appears in
// sorted slice super.
func isSubset(sub, super []int) bool {
	j := 0
	for _, v := range sub {
		for j < len(super) && super[j] < v {
			j++
		}
		if j >= len(super) || super[j] != v {
			return false
		}
	}

	return true
}

func equalSets(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// setDifference returns (sorted) super \ sub; both inputs must be sorted.
func setDifference(super, sub []int) []int {
	out := make([]int, 0, len(super)-len(sub))
	j := 0
	for _, v := range super {
		for j < len(sub) && sub[j] < v {
			j++
		}
		if j < len(sub) && sub[j] == v {
			continue
		}
		out = append(out, v)
	}

	return out
}
