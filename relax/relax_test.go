// Package relax_test validates edge construction (spec §4.3): the strict
// subset invariant, stride-table population, and the Minimal Edges
// relaxation's maximality rule.
package relax_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfn/core"
	"github.com/katalvlaran/cfn/relax"
)

func buildTriangleCFN(t *testing.T) *core.CFN {
	t.Helper()
	cfn, err := core.NewCFN([]int{2, 2, 2})
	require.NoError(t, err)
	_, err = cfn.AddFactor([]int{0, 1}, make([]float64, 4))
	require.NoError(t, err)
	_, err = cfn.AddFactor([]int{1, 2}, make([]float64, 4))
	require.NoError(t, err)
	_, err = cfn.AddFactor([]int{0, 2}, make([]float64, 4))
	require.NoError(t, err)

	return cfn
}

func TestNewEdge_SubsetInvariant(t *testing.T) {
	cfn, err := core.NewCFN([]int{2, 3})
	require.NoError(t, err)
	aIdx, err := cfn.AddFactor([]int{0, 1}, nil)
	require.NoError(t, err)
	bIdx, err := cfn.AddUnary(1, nil)
	require.NoError(t, err)

	e, err := relax.NewEdge(cfn, aIdx, bIdx)
	require.NoError(t, err)
	assert.Equal(t, aIdx, e.From)
	assert.Equal(t, bIdx, e.To)
	assert.Len(t, e.StrideB, 3)    // K(B) == domain(var1) == 3
	assert.Len(t, e.StrideDiff, 2) // K(A)/K(B) == domain(var0) == 2
}

func TestNewEdge_NotProperSubset(t *testing.T) {
	cfn, err := core.NewCFN([]int{2, 2})
	require.NoError(t, err)
	aIdx, err := cfn.AddFactor([]int{0, 1}, nil)
	require.NoError(t, err)
	bIdx, err := cfn.AddUnary(0, nil)
	require.NoError(t, err)

	// B→A is backwards: vars(A) is not a strict subset of vars(B).
	_, err = relax.NewEdge(cfn, bIdx, aIdx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, relax.ErrNotProperSubset))
}

func TestNewEdge_EmptyDifference(t *testing.T) {
	cfn, err := core.NewCFN([]int{2, 2})
	require.NoError(t, err)
	aIdx, err := cfn.AddFactor([]int{0, 1}, nil)
	require.NoError(t, err)
	bIdx, err := cfn.AddFactor([]int{0, 1}, nil) // identical scope
	require.NoError(t, err)

	_, err = relax.NewEdge(cfn, aIdx, bIdx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, relax.ErrEmptyDifference))
}

// TestMinimalEdges_Triangle: three pairwise factors over {0,1},{1,2},{0,2}
// and no sub-factors present → no factor has a strict proper sub-factor
// among the others (no unary factors exist), so MinimalEdges must return
// no edges at all.
func TestMinimalEdges_Triangle(t *testing.T) {
	cfn := buildTriangleCFN(t)
	edges, err := relax.MinimalEdges(cfn)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

// TestMinimalEdges_PairwiseWithUnaries: three variables, three pairwise
// factors, and three unary factors. Each pairwise factor has exactly two
// maximal sub-factors (the two unaries over its own scope) — the third
// unary (over the variable not in its scope) isn't a sub-factor at all.
func TestMinimalEdges_PairwiseWithUnaries(t *testing.T) {
	cfn := buildTriangleCFN(t)
	u0, err := cfn.AddUnary(0, nil)
	require.NoError(t, err)
	u1, err := cfn.AddUnary(1, nil)
	require.NoError(t, err)
	u2, err := cfn.AddUnary(2, nil)
	require.NoError(t, err)

	edges, err := relax.MinimalEdges(cfn)
	require.NoError(t, err)
	assert.Len(t, edges, 6) // 3 pairwise factors * 2 incident unaries each

	targets := map[int]int{}
	for _, e := range edges {
		targets[e.To]++
	}
	assert.Equal(t, 2, targets[u0]) // u0 is sub-factor of {0,1} and {0,2}
	assert.Equal(t, 2, targets[u1])
	assert.Equal(t, 2, targets[u2])
}

// TestMinimalEdges_MaximalityExcludesNonMaximal: a ternary factor with a
// pairwise sub-factor and a unary sub-factor of that pairwise factor: the
// unary is NOT maximal under the ternary (it's dominated by the pairwise
// factor), so only one edge (ternary→pairwise) should be produced from the
// ternary factor; the pairwise factor itself gets its own edge to the
// unary.
func TestMinimalEdges_MaximalityExcludesNonMaximal(t *testing.T) {
	cfn, err := core.NewCFN([]int{2, 2, 2})
	require.NoError(t, err)
	ternary, err := cfn.AddFactor([]int{0, 1, 2}, make([]float64, 8))
	require.NoError(t, err)
	pair, err := cfn.AddFactor([]int{0, 1}, make([]float64, 4))
	require.NoError(t, err)
	unary, err := cfn.AddUnary(0, nil)
	require.NoError(t, err)

	edges, err := relax.MinimalEdges(cfn)
	require.NoError(t, err)

	var fromTernary, fromPair []relax.Edge
	for _, e := range edges {
		switch e.From {
		case ternary:
			fromTernary = append(fromTernary, e)
		case pair:
			fromPair = append(fromPair, e)
		}
	}
	require.Len(t, fromTernary, 1)
	assert.Equal(t, pair, fromTernary[0].To)
	require.Len(t, fromPair, 1)
	assert.Equal(t, unary, fromPair[0].To)
}

func TestMinimalEdges_UnaryOnlyCFN(t *testing.T) {
	cfn, err := core.NewCFN([]int{2, 2})
	require.NoError(t, err)
	_, err = cfn.AddUnary(0, []float64{0, 1})
	require.NoError(t, err)
	_, err = cfn.AddUnary(1, []float64{2, 3})
	require.NoError(t, err)

	edges, err := relax.MinimalEdges(cfn)
	require.NoError(t, err)
	assert.Empty(t, edges)
}
