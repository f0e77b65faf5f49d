package srmp

import "github.com/katalvlaran/cfn/table"

// wedge is the solver's private, mutable view of a relax.Edge: the stride
// tables are immutable (owned by relax), but the message table and the
// pre-pass-assigned flags/weights live here (spec §3 "Edge", §9 "Message
// store ownership": messages are owned by edges; edges are owned by the
// solver; factors hold only indices into the edge arrays).
type wedge struct {
	from, to int // factor indices

	strideB    []int
	strideDiff []int

	m table.Table // message from `from` to `to`, length K(to)

	isFW, isBW bool // set by the pre-pass (spec §4.4 steps 3-4)
	wFW, wBW   int  // 1/0 mirrors of isFW/isBW (spec §4.4 step 5)

	// updateLB is true for the edge on which the forward traversal of the
	// pre-pass first reaches its source factor, which is the last of that
	// source's edges the backward sweep reaches (spec §4.4 step 3 / §9
	// "update_lb is derived from the backward-classification flag"):
	// exactly the edges marked isBW == false.
	updateLB bool
}
