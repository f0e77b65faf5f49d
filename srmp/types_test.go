// Package srmp_test validates Options construction/validation and the six
// concrete boundary scenarios named in the specification this solver
// implements; the pre-pass's sequence/weight computation is tested from
// inside package srmp in prepass_test.go.
package srmp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfn/core"
	"github.com/katalvlaran/cfn/relax"
	"github.com/katalvlaran/cfn/srmp"
)

func TestDefaultOptions_Valid(t *testing.T) {
	opts := srmp.DefaultOptions()
	cfn, err := core.NewCFN([]int{2})
	require.NoError(t, err)
	_, err = cfn.AddUnary(0, []float64{0, 1})
	require.NoError(t, err)

	_, err = srmp.NewSolver(cfn, nil, opts)
	require.NoError(t, err)
}

func TestNewSolver_NonPositiveMaxIterations(t *testing.T) {
	cfn, err := core.NewCFN([]int{2})
	require.NoError(t, err)
	opts := srmp.DefaultOptions()
	opts.MaxIterations = 0

	_, err = srmp.NewSolver(cfn, nil, opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, srmp.ErrNonPositiveMaxIterations))
}

func TestNewSolver_WeightingOutOfRange(t *testing.T) {
	cfn, err := core.NewCFN([]int{2})
	require.NoError(t, err)
	opts := srmp.DefaultOptions()
	opts.TRWWeighting = 1.5

	_, err = srmp.NewSolver(cfn, nil, opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, srmp.ErrWeightingOutOfRange))
}

func TestTerminationReason_String(t *testing.T) {
	assert.Equal(t, "iterations", srmp.TerminationIterations.String())
	assert.Equal(t, "time", srmp.TerminationTime.String())
	assert.Equal(t, "convergence", srmp.TerminationConvergence.String())
	assert.Equal(t, "cancelled", srmp.TerminationCancelled.String())
}

// buildEdges is a small helper shared by the scenario tests below.
func buildEdges(t *testing.T, cfn *core.CFN) []relax.Edge {
	t.Helper()
	edges, err := relax.MinimalEdges(cfn)
	require.NoError(t, err)

	return edges
}
