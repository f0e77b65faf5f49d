package srmp

import "time"

// Default knobs (spec §6).
const (
	// DefaultMaxIterations caps the number of forward+backward sweep pairs.
	DefaultMaxIterations = 1000

	// DefaultLBEpsilon is the minimum lower-bound improvement over a
	// progress window that still counts as progress.
	DefaultLBEpsilon = 1e-7

	// DefaultProgressWindow is the number of trailing sweeps over which
	// LBEpsilon is evaluated.
	DefaultProgressWindow = 5

	// DefaultExtractPrimalEvery extracts a primal labeling on every
	// backward sweep.
	DefaultExtractPrimalEvery = 1

	// DefaultTRWWeighting reproduces the §4.4 step 5 formulae exactly.
	DefaultTRWWeighting = 1.0
)

// SweepReport is passed to Options.OnSweep after every forward or backward
// sweep, for progress observation by a caller (spec §5 "no suspension": the
// hook is invoked synchronously between sweeps, not on a separate thread).
type SweepReport struct {
	Iteration int     // 1-based forward+backward pair index
	Kind      string  // "forward" or "backward"
	LB        float64 // running lower bound after this sweep
}

// Options configures a Solver run. The zero value is not meaningful; use
// DefaultOptions and override fields as needed.
type Options struct {
	// MaxIterations caps the number of forward+backward sweep pairs.
	MaxIterations uint32

	// TimeBudget bounds wall-clock time across the whole run. Zero means
	// no limit.
	TimeBudget time.Duration

	// LBEpsilon is the minimum LB improvement, over ProgressWindow
	// sweep-pairs, that counts as progress; below it the run terminates
	// with TerminationConvergence.
	LBEpsilon float64

	// ProgressWindow is the number of trailing sweep-pairs LBEpsilon is
	// evaluated over.
	ProgressWindow uint32

	// ExtractPrimalEvery is the frequency (in sweep-pairs) at which a
	// primal labeling is extracted during the backward sweep. Zero
	// disables primal extraction entirely.
	ExtractPrimalEvery uint32

	// TRWWeighting interpolates, in [0,1], between w_forward_in (at 0)
	// and max(w_total_in-w_forward_in, w_forward_in) (at 1, the default)
	// in the §4.4 step 5 weight formulae; likewise for the backward
	// weights with w_backward_in in place of w_forward_in.
	TRWWeighting float64

	// OnSweep, if non-nil, is invoked after every forward and backward
	// sweep with a snapshot of progress.
	OnSweep func(SweepReport)

	// ShouldStop, if non-nil, is polled before each forward sweep and
	// between the forward and backward sweep of each iteration (spec §5
	// cooperative cancellation). A true return stops the
	// run with TerminationCancelled; the best-known assignment and
	// current LB are returned, all invariants intact.
	ShouldStop func() bool
}

// DefaultOptions returns a fully populated Options with the defaults named
// in spec §6.
func DefaultOptions() Options {
	return Options{
		MaxIterations:      DefaultMaxIterations,
		TimeBudget:         0,
		LBEpsilon:          DefaultLBEpsilon,
		ProgressWindow:     DefaultProgressWindow,
		ExtractPrimalEvery: DefaultExtractPrimalEvery,
		TRWWeighting:       DefaultTRWWeighting,
	}
}

func (o Options) validate() error {
	if o.MaxIterations == 0 {
		return ErrNonPositiveMaxIterations
	}
	if o.TRWWeighting < 0 || o.TRWWeighting > 1 {
		return ErrWeightingOutOfRange
	}
	if o.ProgressWindow == 0 {
		return ErrNonPositiveProgressWindow
	}
	if o.LBEpsilon < 0 {
		return ErrNegativeLBEpsilon
	}

	return nil
}

// TerminationReason names why a Run call stopped (spec §6).
type TerminationReason int

const (
	// TerminationIterations means the iteration cap was reached.
	TerminationIterations TerminationReason = iota

	// TerminationTime means the wall-clock budget was exceeded.
	TerminationTime

	// TerminationConvergence means LB improved by less than LBEpsilon
	// across ProgressWindow sweep-pairs.
	TerminationConvergence

	// TerminationCancelled means Options.ShouldStop returned true.
	TerminationCancelled
)

// String renders the termination reason the way the UAI .ans format names
// it (spec §6): "iterations", "time", "convergence", or "cancelled".
func (r TerminationReason) String() string {
	switch r {
	case TerminationIterations:
		return "iterations"
	case TerminationTime:
		return "time"
	case TerminationConvergence:
		return "convergence"
	case TerminationCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the output of a Run call (spec §6 "Solver output interface").
type Result struct {
	// LB is the final (or, on cancellation, last-computed) lower bound.
	LB float64

	// BestCost is the lowest-cost extracted primal assignment's cost, or
	// +Inf if no primal labeling was ever extracted.
	BestCost float64

	// BestAssignment holds one label per variable, in [0, Kᵢ); nil if
	// BestCost is +Inf.
	BestAssignment []int

	// Iterations is the number of forward+backward sweep pairs actually
	// performed.
	Iterations int

	// Termination names why the run stopped.
	Termination TerminationReason
}
