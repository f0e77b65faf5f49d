package core

import (
	"fmt"
	"math"
	"sort"
)

// Factor exposes the read-only capability set that srmp and table need from
// a cost function over a subset of variables: its scope, its label-space
// size, and (optionally) its dense table of costs. A missing table (Data
// returns nil) is treated as identically zero, per spec §3.
//
// The interface is intentionally small so that a future specialized factor
// type (e.g. a Potts factor with an O(1) table-free evaluator) could satisfy
// it with a type-specific fast path; this module covers both variants named
// in spec §9 — pure-unary and dense-table — with the single denseFactor type.
type Factor interface {
	// Vars returns the sorted, deduplicated scope of this factor.
	// Callers MUST NOT mutate the returned slice.
	Vars() []int

	// Arity returns len(Vars()).
	Arity() int

	// K returns the size of this factor's label space: the product of the
	// domain sizes of the variables in Vars(), in the same order.
	K() int

	// Data returns the dense table of K() costs, or nil if this factor is
	// identically zero. Callers MUST NOT mutate the returned slice.
	Data() []float64
}

// denseFactor is the concrete, dense-table implementation of the Factor
// interface. The same type represents both unary factors (Arity()==1) and
// general dense factors (Arity()>=2); §4.6 distinguishes the two only by
// behavior in the SRMP driver (a unary factor has no outgoing messages to
// subtract from its reparametrization, since nothing can be a proper
// sub-scope of a single variable), not by a distinct Go type.
type denseFactor struct {
	vars []int     // sorted ascending, len == arity
	dims []int     // domain size of vars[i], same order as vars
	k    int       // product of dims; size of the label space
	data []float64 // len == k, or nil meaning "identically zero"
}

var _ Factor = (*denseFactor)(nil)

func (f *denseFactor) Vars() []int      { return f.vars }
func (f *denseFactor) Arity() int       { return len(f.vars) }
func (f *denseFactor) K() int           { return f.k }
func (f *denseFactor) Data() []float64  { return f.data }

// IsUnary reports whether this factor has exactly one variable in its
// scope. Unary factors can never be the super-factor A of an edge (A→B)
// because a singleton scope has no non-empty proper subset.
func IsUnary(f Factor) bool { return f.Arity() == 1 }

// CFN is a Cost Function Network: a finite set of variables with integer
// domain sizes, plus a set of factors (cost functions) over ordered subsets
// of those variables. Energy(x) = sum over factors A of data(A)[x|_A].
//
// A CFN is built once via NewCFN/AddUnary/AddFactor and then handed to the
// solver read-only (spec §5: single-threaded, no shared mutable resources),
// so — unlike a concurrently-mutated graph — CFN carries no internal
// locking; see SPEC_FULL.md's data model mapping for why this departs from
// the teacher's lock-per-mutation convention.
type CFN struct {
	domains []int     // domains[i] = size of variable i's domain
	factors []*denseFactor
}

// NewCFN creates a CFN with the given per-variable domain sizes. domains
// must be non-empty and every entry must be >= 1.
//
// Complexity: O(N) where N = len(domains).
func NewCFN(domains []int) (*CFN, error) {
	if len(domains) == 0 {
		return nil, ErrEmptyDomains
	}
	for i, d := range domains {
		if d < 1 {
			return nil, fmt.Errorf("core.NewCFN: variable %d: %w", i, ErrInvalidDomainSize)
		}
	}
	dims := make([]int, len(domains))
	copy(dims, domains)

	return &CFN{domains: dims}, nil
}

// NumVars returns the number of variables N.
func (c *CFN) NumVars() int { return len(c.domains) }

// Domain returns the domain size K_i of variable i.
func (c *CFN) Domain(i int) (int, error) {
	if i < 0 || i >= len(c.domains) {
		return 0, fmt.Errorf("core.CFN.Domain(%d): %w", i, ErrVarOutOfRange)
	}

	return c.domains[i], nil
}

// NumFactors returns the number of factors currently in the CFN.
func (c *CFN) NumFactors() int { return len(c.factors) }

// Factor returns the idx-th factor (in insertion order).
func (c *CFN) Factor(idx int) (Factor, error) {
	if idx < 0 || idx >= len(c.factors) {
		return nil, fmt.Errorf("core.CFN.Factor(%d): %w", idx, ErrFactorIndexOutOfRange)
	}

	return c.factors[idx], nil
}

// Factors returns all factors in insertion order. Callers MUST NOT mutate
// the returned slice or its elements.
func (c *CFN) Factors() []Factor {
	out := make([]Factor, len(c.factors))
	for i, f := range c.factors {
		out[i] = f
	}

	return out
}

// AddUnary adds a unary factor over variable varIdx. data must have length
// equal to the domain size of varIdx, or be nil (identically zero).
// Returns the new factor's index.
func (c *CFN) AddUnary(varIdx int, data []float64) (int, error) {
	return c.AddFactor([]int{varIdx}, data)
}

// AddFactor adds a factor over the given scope (need not be pre-sorted; it
// is sorted internally). data must have length K(vars) (product of the
// domain sizes of vars) or be nil (identically zero, per spec §3). Returns
// the new factor's index.
//
// Validates: non-empty scope, variables in range, no duplicate variable,
// data length (if data != nil), and absence of NaN in data.
//
// Complexity: O(a log a + K) where a = len(vars), K = product of domain
// sizes (dominated by the NaN scan of data, when present).
func (c *CFN) AddFactor(vars []int, data []float64) (int, error) {
	if len(vars) == 0 {
		return 0, ErrEmptyScope
	}

	sorted := make([]int, len(vars))
	copy(sorted, vars)
	sort.Ints(sorted)

	dims := make([]int, len(sorted))
	k := 1
	for i, v := range sorted {
		if v < 0 || v >= len(c.domains) {
			return 0, fmt.Errorf("core.CFN.AddFactor: var %d: %w", v, ErrVarOutOfRange)
		}
		if i > 0 && sorted[i] == sorted[i-1] {
			return 0, fmt.Errorf("core.CFN.AddFactor: var %d: %w", v, ErrDuplicateVar)
		}
		dims[i] = c.domains[v]
		k *= dims[i]
	}

	if data != nil {
		if len(data) != k {
			return 0, fmt.Errorf("core.CFN.AddFactor: len(data)=%d, K(A)=%d: %w", len(data), k, ErrDataLengthMismatch)
		}
		for _, x := range data {
			if math.IsNaN(x) {
				return 0, fmt.Errorf("core.CFN.AddFactor: %w", ErrNaNValue)
			}
		}
	}

	f := &denseFactor{vars: sorted, dims: dims, k: k, data: data}
	c.factors = append(c.factors, f)

	return len(c.factors) - 1, nil
}
