// Package table_test (continued) validates the element-wise and
// stride-broadcast arithmetic of spec §4.2: Add/Sub/Scale, Min, the
// broadcast add/subtract used by SEND step 2/3, and the partial-min
// reduction used by SEND step 4.
package table_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfn/table"
)

func TestTable_AddSubScale(t *testing.T) {
	a := table.Table{1, 2, 3}
	b := table.Table{10, 20, 30}

	require.NoError(t, a.AddInPlace(b))
	assert.Equal(t, table.Table{11, 22, 33}, a)

	require.NoError(t, a.SubInPlace(b))
	assert.Equal(t, table.Table{1, 2, 3}, a)

	a.ScaleInPlace(2)
	assert.Equal(t, table.Table{2, 4, 6}, a)
}

func TestTable_LengthMismatch(t *testing.T) {
	a := table.Table{1, 2}
	b := table.Table{1, 2, 3}
	assert.True(t, errors.Is(a.AddInPlace(b), table.ErrLengthMismatch))
	assert.True(t, errors.Is(a.SubInPlace(b), table.ErrLengthMismatch))
}

func TestTable_Min(t *testing.T) {
	a := table.Table{3, -1, 2}
	m, err := a.Min()
	require.NoError(t, err)
	assert.Equal(t, -1.0, m)

	_, err = table.Table{}.Min()
	assert.True(t, errors.Is(err, table.ErrEmptyTable))
}

func TestTable_HasNaN(t *testing.T) {
	assert.False(t, table.Table{1, math.Inf(1), -2}.HasNaN())
	assert.True(t, table.Table{1, math.NaN()}.HasNaN())
}

// TestBroadcast_AddSubRoundTrip exercises SEND steps 2/3: broadcasting a
// message through strideB/strideDiff and subtracting it back must be a
// no-op on theta.
func TestBroadcast_AddSubRoundTrip(t *testing.T) {
	// A has K(A)=6 (vars {0,1} dims {2,3}); B = {0} dim 2; C = {1} dim 3.
	strideB, err := table.BuildStride([]int{0, 1}, []int{2, 3}, []int{0}, []int{2})
	require.NoError(t, err)
	strideC, err := table.BuildStride([]int{0, 1}, []int{2, 3}, []int{1}, []int{3})
	require.NoError(t, err)

	theta := table.Table{1, 2, 3, 4, 5, 6}
	original := theta.Clone()
	msg := table.Table{10, -5}

	require.NoError(t, table.BroadcastAddInto(theta, strideB, strideC, msg))
	assert.NotEqual(t, original, theta)

	require.NoError(t, table.BroadcastSubInto(theta, strideB, strideC, msg))
	assert.Equal(t, original, theta)
}

// TestPartialMin_MatchesBruteForce checks PartialMin against a brute-force
// scan for a small 3-variable table.
func TestPartialMin_MatchesBruteForce(t *testing.T) {
	varsA, dimsA := []int{0, 1, 2}, []int{2, 2, 3}
	theta := table.Table{
		9, 2, 5, 1, 3, 0, // var0=0
		4, 8, 7, 6, 2, 9, // var0=1
	}
	strideB, err := table.BuildStride(varsA, dimsA, []int{0}, []int{2})
	require.NoError(t, err)
	strideC, err := table.BuildStride(varsA, dimsA, []int{1, 2}, []int{2, 3})
	require.NoError(t, err)

	out := table.NewZeroTable(len(strideB))
	require.NoError(t, table.PartialMin(theta, strideB, strideC, out))

	// Brute force: for each value of var0, the min over the remaining 6 entries.
	want := table.Table{
		minOf(theta[0:6]),
		minOf(theta[6:12]),
	}
	assert.Equal(t, want, out)
}

func minOf(xs table.Table) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}

	return m
}
