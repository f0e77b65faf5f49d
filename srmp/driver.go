package srmp

import (
	"math"
	"time"

	"github.com/katalvlaran/cfn/table"
)

// forwardSweep implements spec §4.6's forward sweep: iterate the sequence
// in order, sending pending backward-classified incoming messages, then
// push each factor's own reparametrization (scaled by 1/w_forward) into its
// forward-classified incoming edges.
func (s *Solver) forwardSweep() error {
	for _, idx := range s.seq {
		for _, ei := range s.incoming[idx] {
			if s.edges[ei].isBW {
				if _, err := s.send(ei); err != nil {
					return err
				}
			}
		}

		theta, err := s.reparam(idx)
		if err != nil {
			return err
		}
		theta.ScaleInPlace(1 / s.wForward[idx])

		for _, ei := range s.incoming[idx] {
			e := s.edges[ei]
			if e.isFW {
				if err := e.m.SubInPlace(theta); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// backwardSweep implements spec §4.6's backward sweep and, when extract is
// true, spec §4.7's primal extraction interleaved at the point the spec
// names ("before step c", using the same unscaled θ_B the rest of the step
// uses). Returns the updated lower bound and, when extract is true, the
// complete primal assignment (nil otherwise).
func (s *Solver) backwardSweep(extract bool) (float64, []int, error) {
	lb := s.lbInit

	var x []int
	if extract {
		x = make([]int, s.cfn.NumVars())
		for i := range x {
			x[i] = unset
		}
	}

	for i := len(s.seq) - 1; i >= 0; i-- {
		idx := s.seq[i]

		for _, ei := range s.incoming[idx] {
			e := s.edges[ei]
			if e.isFW || e.updateLB {
				v, err := s.send(ei)
				if err != nil {
					return 0, nil, err
				}
				if e.updateLB {
					lb += v
				}
			}
		}

		theta, err := s.reparam(idx)
		if err != nil {
			return 0, nil, err
		}
		if extract {
			if err := s.restrictedArgmin(idx, theta, x); err != nil {
				return 0, nil, err
			}
		}

		theta.ScaleInPlace(1 / s.wBackward[idx])
		if s.computeBound[idx] && s.wBackward[idx] > 0 {
			mn, err := theta.Min()
			if err != nil {
				return 0, nil, err
			}
			lb += mn * (s.wBackward[idx] - float64(s.incomingBWCount[idx]))
		}

		for _, ei := range s.incoming[idx] {
			e := s.edges[ei]
			if e.isBW {
				if err := e.m.SubInPlace(theta); err != nil {
					return 0, nil, err
				}
			}
		}
	}

	if extract {
		for _, idx := range s.isolated {
			f := s.factors[idx]
			theta := table.Table(f.Data())
			if theta == nil {
				theta = make(table.Table, f.K())
			}
			if err := s.restrictedArgmin(idx, theta, x); err != nil {
				return 0, nil, err
			}
		}
		for i := range x {
			if x[i] == unset {
				x[i] = 0
			}
		}
	}

	return lb, x, nil
}

// Run executes alternating forward and backward sweeps until one of the
// three termination criteria of spec §4.6 fires, or the cooperative
// cancellation predicate returns true (spec §5).
//
// Complexity: O(iterations * Σ_e K(e)) where the sum ranges over edge
// message lengths; each sweep visits every edge a bounded number of times.
func (s *Solver) Run() (Result, error) {
	opts := s.opts

	var deadline time.Time
	useDeadline := opts.TimeBudget > 0
	if useDeadline {
		deadline = time.Now().Add(opts.TimeBudget)
	}

	result := Result{LB: s.lbInit, BestCost: math.Inf(1)}
	lb := s.lbInit
	lbHistory := make([]float64, 0, opts.ProgressWindow+1)

	iterations := 0
	for ; iterations < int(opts.MaxIterations); iterations++ {
		if opts.ShouldStop != nil && opts.ShouldStop() {
			result.LB = lb
			result.Iterations = iterations
			result.Termination = TerminationCancelled

			return result, nil
		}

		if err := s.forwardSweep(); err != nil {
			result.LB, result.Iterations = lb, iterations

			return result, err
		}
		if opts.OnSweep != nil {
			opts.OnSweep(SweepReport{Iteration: iterations + 1, Kind: "forward", LB: lb})
		}

		if opts.ShouldStop != nil && opts.ShouldStop() {
			result.LB = lb
			result.Iterations = iterations
			result.Termination = TerminationCancelled

			return result, nil
		}

		extract := opts.ExtractPrimalEvery > 0 && (uint32(iterations+1))%opts.ExtractPrimalEvery == 0
		newLB, x, err := s.backwardSweep(extract)
		if err != nil {
			result.LB, result.Iterations = lb, iterations

			return result, err
		}
		lb = newLB
		if opts.OnSweep != nil {
			opts.OnSweep(SweepReport{Iteration: iterations + 1, Kind: "backward", LB: lb})
		}

		if extract {
			cost, err := s.totalCost(x)
			if err != nil {
				result.LB, result.Iterations = lb, iterations

				return result, err
			}
			if cost < result.BestCost {
				result.BestCost = cost
				result.BestAssignment = x
			}
		}

		lbHistory = append(lbHistory, lb)
		if len(lbHistory) > int(opts.ProgressWindow) {
			lbHistory = lbHistory[1:]
		}
		if len(lbHistory) == int(opts.ProgressWindow) && lbHistory[len(lbHistory)-1]-lbHistory[0] < opts.LBEpsilon {
			result.LB = lb
			result.Iterations = iterations + 1
			result.Termination = TerminationConvergence

			return result, nil
		}

		if useDeadline && time.Now().After(deadline) {
			result.LB = lb
			result.Iterations = iterations + 1
			result.Termination = TerminationTime

			return result, nil
		}
	}

	result.LB = lb
	result.Iterations = iterations
	result.Termination = TerminationIterations

	return result, nil
}
