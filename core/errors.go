package core

// This file declares the three error "kinds" used throughout the module
// (ErrShape, ErrNumeric, ErrConfig — see spec §7) and the concrete sentinel
// errors raised by this package. Every sentinel wraps exactly one kind via
// %w, so callers can branch on either the specific sentinel or the coarser
// kind with errors.Is.

import (
	"errors"
	"fmt"
)

// Error kinds. A caller that only cares "is this a shape problem or a
// numeric one" should match against these; a caller that cares about the
// exact cause should match against the specific sentinels below.
var (
	// ErrShape marks malformed structural input: inconsistent K(A), an
	// out-of-range or duplicate variable, a sub-scope that is not actually a
	// subset, a data table of the wrong length.
	ErrShape = errors.New("core: shape error")

	// ErrNumeric marks a NaN encountered where only finite values (or +Inf,
	// used for hard constraints) are permitted.
	ErrNumeric = errors.New("core: numeric error")

	// ErrConfig marks an invalid solver configuration value.
	ErrConfig = errors.New("core: config error")
)

// Specific sentinels. Each wraps one of the kinds above.
var (
	// ErrEmptyDomains indicates NewCFN was called with zero variables.
	ErrEmptyDomains = fmt.Errorf("core: domain list is empty: %w", ErrShape)

	// ErrInvalidDomainSize indicates a variable was given a non-positive
	// domain size (every variable needs at least one label).
	ErrInvalidDomainSize = fmt.Errorf("core: domain size must be >= 1: %w", ErrShape)

	// ErrVarOutOfRange indicates a factor referenced a variable index
	// outside [0, NumVars()).
	ErrVarOutOfRange = fmt.Errorf("core: variable index out of range: %w", ErrShape)

	// ErrDuplicateVar indicates a factor's scope listed the same variable twice.
	ErrDuplicateVar = fmt.Errorf("core: duplicate variable in factor scope: %w", ErrShape)

	// ErrEmptyScope indicates a (non-unary) factor was given an empty scope.
	ErrEmptyScope = fmt.Errorf("core: factor scope is empty: %w", ErrShape)

	// ErrDataLengthMismatch indicates data(A) was supplied non-nil with a
	// length other than K(A) (an empty non-nil slice is rejected too; only
	// nil means "no table").
	ErrDataLengthMismatch = fmt.Errorf("core: factor data length does not match K(A): %w", ErrShape)

	// ErrFactorIndexOutOfRange indicates Factor(idx) was called with an
	// index outside [0, NumFactors()).
	ErrFactorIndexOutOfRange = fmt.Errorf("core: factor index out of range: %w", ErrShape)

	// ErrNaNValue indicates a factor's data table contained NaN.
	ErrNaNValue = fmt.Errorf("core: NaN encountered in factor data: %w", ErrNumeric)
)
