package srmp

import (
	"fmt"

	"github.com/katalvlaran/cfn/core"
)

// Sentinel errors, each wrapping a core error-kind marker so callers can
// branch with errors.Is at either granularity (spec §7).
var (
	// ErrNonPositiveMaxIterations indicates Options.MaxIterations == 0.
	ErrNonPositiveMaxIterations = fmt.Errorf("srmp: max iterations must be positive: %w", core.ErrConfig)

	// ErrWeightingOutOfRange indicates Options.TRWWeighting is outside [0,1].
	ErrWeightingOutOfRange = fmt.Errorf("srmp: trw weighting must be in [0,1]: %w", core.ErrConfig)

	// ErrNonPositiveProgressWindow indicates Options.ProgressWindow == 0.
	ErrNonPositiveProgressWindow = fmt.Errorf("srmp: progress window must be positive: %w", core.ErrConfig)

	// ErrNegativeLBEpsilon indicates Options.LBEpsilon < 0.
	ErrNegativeLBEpsilon = fmt.Errorf("srmp: lb epsilon must be non-negative: %w", core.ErrConfig)

	// ErrNaNInSweep indicates a message or reparametrization produced NaN
	// during a sweep. The solver aborts the current sweep and propagates
	// this, preserving the last-known-good best assignment (spec §7).
	ErrNaNInSweep = fmt.Errorf("srmp: NaN encountered during sweep: %w", core.ErrNumeric)

	// ErrNoConsistentLabeling indicates restrictedArgmin found no label in a
	// factor's own table consistent with the partial assignment already
	// fixed by earlier steps of the sequence walk — a malformed partial
	// assignment, not a numeric condition, so it wraps core.ErrShape rather
	// than core.ErrNumeric.
	ErrNoConsistentLabeling = fmt.Errorf("srmp: no label consistent with the partial assignment: %w", core.ErrShape)
)
