// SPDX-License-Identifier: MIT

// Branch-and-bound over the free variables of a reduced integer system.
//
// Search shape:
//  1. Free variables are fixed in ascending column order; level d ranges
//     over 0..bound[free[d]].
//  2. The running total of fixed free values is kept incrementally.
//  3. Prune: once a level's value makes total ≥ best, every larger value at
//     that level does too, so the level is abandoned. Pivot values are
//     non-negative, hence total is a lower bound on any completion.
//  4. Leaf: pivots are reconstructed exactly; each must lie in 0..bound.
//     The leaf total competes for the incumbent (strict improvement only,
//     so ties keep the first leaf in lexicographic order).
//
// The recursion is unrolled into an explicit per-level value stack owned by
// the engine; there is no shared state beyond the engine itself.

package presses

import (
	"github.com/katalvlaran/presses/echelon"
	"github.com/katalvlaran/presses/rational"
)

// bbEngine holds all search data for one integer system.
type bbEngine struct {
	red    *echelon.Reduced[rational.Rat]
	bounds []int
	free   []int
	prune  bool
	budget *budget

	// Current search state.
	assign []int // full assignment buffer; pivot slots rewritten per leaf
	vals   []int // vals[d] = value of free[d], -1 while level d is unentered
	sum    int   // Σ of the free values currently fixed

	// Incumbent.
	best       int
	bestAssign []int
	found      bool
}

func newBBEngine(red *echelon.Reduced[rational.Rat], bounds []int, prune bool, b *budget) *bbEngine {
	return &bbEngine{
		red:        red,
		bounds:     bounds,
		free:       red.Free,
		prune:      prune,
		budget:     b,
		assign:     make([]int, red.Vars()),
		vals:       make([]int, len(red.Free)),
		bestAssign: make([]int, red.Vars()),
	}
}

// leaf reconstructs the pivots for the current free values and records an
// improving incumbent.
func (e *bbEngine) leaf() {
	if err := e.red.ReconstructInto(e.assign); err != nil {
		return // non-integral or negative: branch fails
	}
	total := e.sum
	for _, p := range e.red.Pivots {
		x := e.assign[p.Col]
		if x > e.bounds[p.Col] {
			return
		}
		total += x
	}
	if e.found && total >= e.best {
		return
	}
	e.best = total
	e.found = true
	copy(e.bestAssign, e.assign)
}

// run executes the search until exhaustion or until the budget stops it.
func (e *bbEngine) run() {
	k := len(e.free)
	if k == 0 {
		if e.budget.step() {
			e.leaf()
		}
		return
	}

	for d := range e.vals {
		e.vals[d] = -1
	}
	d := 0
	for d >= 0 {
		fc := e.free[d]
		v := e.vals[d] + 1
		if v > 0 {
			e.sum -= v - 1
		}
		if v > e.bounds[fc] || (e.prune && e.found && e.sum+v >= e.best) {
			// Level exhausted: reset and backtrack.
			e.vals[d] = -1
			e.assign[fc] = 0
			d--
			continue
		}
		if !e.budget.step() {
			return
		}
		e.vals[d] = v
		e.assign[fc] = v
		e.sum += v

		if d == k-1 {
			e.leaf()
			continue // next value at the same level
		}
		d++
	}
}
