package table

import (
	"fmt"

	"github.com/katalvlaran/cfn/core"
)

// Sentinel errors. Each wraps core.ErrShape or core.ErrNumeric so callers
// can branch with errors.Is against either the specific cause or the kind.
var (
	// ErrSubScopeNotSubset indicates vars(B) is not a subset of vars(A)
	// when building a stride table (spec §4.1 error conditions).
	ErrSubScopeNotSubset = fmt.Errorf("table: sub-scope is not a subset of the super-scope: %w", core.ErrShape)

	// ErrDomainMismatch indicates a shared variable has different domain
	// sizes recorded in the super- and sub-scope, which would make the
	// stride arithmetic meaningless.
	ErrDomainMismatch = fmt.Errorf("table: domain size mismatch on a shared variable: %w", core.ErrShape)

	// ErrLengthMismatch indicates two tables involved in an element-wise
	// operation have different lengths.
	ErrLengthMismatch = fmt.Errorf("table: operand length mismatch: %w", core.ErrShape)

	// ErrEmptyTable indicates Min was called on a zero-length table.
	ErrEmptyTable = fmt.Errorf("table: table is empty: %w", core.ErrShape)

	// ErrNaNEncountered indicates a NaN value was found in a table where
	// only finite or +Inf values are permitted (spec §4.2, §5).
	ErrNaNEncountered = fmt.Errorf("table: NaN encountered: %w", core.ErrNumeric)
)
