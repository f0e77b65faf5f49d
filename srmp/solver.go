// Package srmp implements the Sequential Reweighted Message Passing driver:
// the pre-pass that builds a factor sequence and classifies edges, the
// per-edge message-send operation, the alternating forward/backward sweeps
// that raise the dual lower bound, and primal extraction by restricted
// greedy minimization.
package srmp

import (
	"math"

	"github.com/katalvlaran/cfn/core"
	"github.com/katalvlaran/cfn/relax"
	"github.com/katalvlaran/cfn/table"
)

// Solver holds all state built once at construction (pre-pass time) and
// reused across sweeps: factor tables, stride tables, and per-edge message
// buffers are never reallocated during Run (spec §5).
type Solver struct {
	cfn     *core.CFN
	factors []core.Factor
	edges   []*wedge

	incoming [][]int // factor idx -> indices into edges, where edges[i].to   == idx
	outgoing [][]int // factor idx -> indices into edges, where edges[i].from == idx

	seq      []int // factor indices, in sequence order (spec §4.4 step 2)
	posInSeq []int // factor idx -> position in seq, or -1 if excluded from S

	computeBound    []bool
	wForward        []float64
	wBackward       []float64
	incomingBWCount []int // per factor: count of incoming edges with isBW

	isolated []int // non-unary factors with no incoming and no outgoing edges

	lbInit  float64
	scratch table.Table // reused reparametrization buffer, length max_A K(A)

	opts Options
}

// NewSolver builds the sequence, classifies edges, computes weights and the
// initial lower bound from cfn and the given edge set (spec §4.4). The edge
// set is typically produced by relax.MinimalEdges, but any set satisfying
// the strict-subset invariant is accepted (spec §6). opts.TRWWeighting
// feeds the step-5 weight formulae directly, so it is fixed for the life of
// the Solver along with everything else the pre-pass computes (spec §3
// "Lifecycle": "the sequence and all weights are fixed after the pre-pass").
func NewSolver(cfn *core.CFN, edges []relax.Edge, opts Options) (*Solver, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	factors := cfn.Factors()
	n := len(factors)

	s := &Solver{
		cfn:      cfn,
		factors:  factors,
		incoming: make([][]int, n),
		outgoing: make([][]int, n),
		posInSeq: make([]int, n),
		opts:     opts,
	}
	for i := range s.posInSeq {
		s.posInSeq[i] = -1
	}

	maxK := 0
	s.edges = make([]*wedge, len(edges))
	for i, e := range edges {
		w := &wedge{
			from:       e.From,
			to:         e.To,
			strideB:    e.StrideB,
			strideDiff: e.StrideDiff,
			m:          table.NewZeroTable(len(e.StrideB)),
		}
		s.edges[i] = w
		s.outgoing[e.From] = append(s.outgoing[e.From], i)
		s.incoming[e.To] = append(s.incoming[e.To], i)
	}
	for _, f := range factors {
		if f.K() > maxK {
			maxK = f.K()
		}
	}
	s.scratch = table.NewZeroTable(maxK)

	if err := s.buildSequence(); err != nil {
		return nil, err
	}
	s.classifyEdges()
	s.computeWeights(opts.TRWWeighting)

	return s, nil
}

// buildSequence implements spec §4.4 step 1 (initial LB from isolated
// factors) and step 2 (sequence construction, in factor-insertion order).
func (s *Solver) buildSequence() error {
	for idx, f := range s.factors {
		unary := core.IsUnary(f)
		hasIn := len(s.incoming[idx]) > 0
		hasOut := len(s.outgoing[idx]) > 0

		if !unary && !hasIn && !hasOut {
			m, err := reduceMin(f.Data())
			if err != nil {
				return err
			}
			s.lbInit += m
			s.isolated = append(s.isolated, idx)

			continue
		}

		if unary || hasIn {
			s.posInSeq[idx] = len(s.seq)
			s.seq = append(s.seq, idx)
		}
	}

	return nil
}

// reduceMin returns min(data), treating a nil data table as identically
// zero (spec §3), matching the "message-send reduction" of §4.4 step 1.
func reduceMin(data []float64) (float64, error) {
	if data == nil {
		return 0, nil
	}

	return table.Table(data).Min()
}

// classifyEdges implements spec §4.4 steps 3-4: backward-edge marking
// (forward traversal of S) and forward-edge marking (reverse traversal).
func (s *Solver) classifyEdges() {
	n := len(s.factors)
	s.computeBound = make([]bool, n)

	seen1 := make([]bool, n)
	for _, idx := range s.seq {
		if seen1[idx] && !core.IsUnary(s.factors[idx]) {
			s.computeBound[idx] = false
		} else {
			s.computeBound[idx] = true
			seen1[idx] = true
		}

		for _, ei := range s.incoming[idx] {
			e := s.edges[ei]
			if seen1[e.from] {
				e.isBW = true
				e.updateLB = false
			} else {
				e.isBW = false
				e.updateLB = true
				seen1[e.from] = true
			}
		}
	}

	seen2 := make([]bool, n)
	for i := len(s.seq) - 1; i >= 0; i-- {
		idx := s.seq[i]
		seen2[idx] = true

		for _, ei := range s.incoming[idx] {
			e := s.edges[ei]
			if seen2[e.from] {
				e.isFW = true
			} else {
				e.isFW = false
				seen2[e.from] = true
			}
		}
	}
}

// computeWeights implements spec §4.4 step 5, with trwWeighting
// interpolating the max(.,.) term per spec §6 (1.0 reproduces the
// formulae as given; 0.0 collapses the term to the "in" count alone).
func (s *Solver) computeWeights(trwWeighting float64) {
	n := len(s.factors)
	s.wForward = make([]float64, n)
	s.wBackward = make([]float64, n)
	s.incomingBWCount = make([]int, n)

	for _, idx := range s.seq {
		var forwardOut, backwardOut int
		aPos := s.posInSeq[idx]
		for _, ei := range s.outgoing[idx] {
			e := s.edges[ei]
			bPos := s.posInSeq[e.to]
			if bPos > aPos {
				forwardOut++
			} else {
				backwardOut++
			}
		}

		var forwardIn, backwardIn, totalIn int
		for _, ei := range s.incoming[idx] {
			e := s.edges[ei]
			if e.isFW {
				e.wFW = 1
				forwardIn++
			}
			if e.isBW {
				e.wBW = 1
				backwardIn++
			}
			totalIn++
		}
		s.incomingBWCount[idx] = backwardIn

		fwTerm := trwWeighting*math.Max(float64(totalIn-forwardIn), float64(forwardIn)) + (1-trwWeighting)*float64(forwardIn)
		wF := fwTerm + float64(forwardOut)
		if wF+float64(forwardIn) == 0 {
			wF = 1
		}
		s.wForward[idx] = wF

		bwTerm := trwWeighting*math.Max(float64(totalIn-backwardIn), float64(backwardIn)) + (1-trwWeighting)*float64(backwardIn)
		wB := bwTerm + float64(backwardOut)
		if wB+float64(backwardIn) == 0 {
			wB = 1
		}
		s.wBackward[idx] = wB
	}
}
