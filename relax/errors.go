package relax

import (
	"fmt"

	"github.com/katalvlaran/cfn/core"
)

// Sentinel errors, each wrapping core.ErrShape.
var (
	// ErrNotProperSubset indicates a requested edge's sub-factor scope is
	// not a strict subset of the super-factor scope (spec §3 invariant
	// "for every edge (A→B), vars(B) is a strict subset of vars(A)").
	ErrNotProperSubset = fmt.Errorf("relax: sub-factor scope is not a strict subset of the super-factor scope: %w", core.ErrShape)

	// ErrEmptyDifference indicates vars(B) == vars(A), which would make
	// K_C == 1 — the "forbidden" boundary case named in spec §8.
	ErrEmptyDifference = fmt.Errorf("relax: super- and sub-factor scopes are identical (K_C == 1): %w", core.ErrShape)

	// ErrFactorIndexOutOfRange indicates an edge referenced a factor index
	// outside the CFN's factor list.
	ErrFactorIndexOutOfRange = fmt.Errorf("relax: factor index out of range: %w", core.ErrShape)
)
