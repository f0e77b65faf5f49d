package srmp

import "github.com/katalvlaran/cfn/table"

// reparam computes θ_A = data(A) + incoming messages − outgoing messages
// (the GLOSSARY definition of reparametrization, used identically by SEND's
// θ_A and by a sweep's θ_B — spec §4.5 step 1-3, §4.6 step b).
//
// The returned table aliases the solver's single reusable scratch buffer
// (spec §9 "keep one thread-local reusable buffer of length max K(A); all
// SEND calls reuse it"): it is only valid until the next call to reparam
// or send.
//
// Complexity: O(K(A)) to seed the table plus O(Σ K(edge)) for each
// broadcast, one per incident edge.
func (s *Solver) reparam(factorIdx int) (table.Table, error) {
	f := s.factors[factorIdx]
	theta := s.scratch[:f.K()]
	theta.Zero()
	if data := f.Data(); data != nil {
		copy(theta, data)
	}

	for _, ei := range s.incoming[factorIdx] {
		// An incoming message is indexed by this factor's own labels.
		if err := theta.AddInPlace(s.edges[ei].m); err != nil {
			return nil, err
		}
	}
	for _, ei := range s.outgoing[factorIdx] {
		e := s.edges[ei]
		if err := table.BroadcastSubInto(theta, e.strideB, e.strideDiff, e.m); err != nil {
			return nil, err
		}
	}
	if theta.HasNaN() {
		return nil, ErrNaNInSweep
	}

	return theta, nil
}

// send implements SEND(e = A→B) of spec §4.5: reparametrize A, add e's own
// current message back into that reparametrization, replace e.m with its
// partial-min over the difference variables, and return min(e.m) after the
// update (used by the backward sweep to accumulate LB on update_lb edges).
func (s *Solver) send(edgeIdx int) (float64, error) {
	e := s.edges[edgeIdx]

	theta, err := s.reparam(e.from)
	if err != nil {
		return 0, err
	}
	if err := table.BroadcastAddInto(theta, e.strideB, e.strideDiff, e.m); err != nil {
		return 0, err
	}
	if err := table.PartialMin(theta, e.strideB, e.strideDiff, e.m); err != nil {
		return 0, err
	}
	if e.m.HasNaN() {
		return 0, ErrNaNInSweep
	}

	return e.m.Min()
}
