// SPDX-License-Identifier: MIT

package presses

import (
	"github.com/katalvlaran/presses/echelon"
	"github.com/katalvlaran/presses/field"
	"github.com/katalvlaran/presses/matrix"
)

// maxFreeBits is the largest free-variable count a uint64 mask enumerates
// without overflowing the loop bound.
const maxFreeBits = 62

// gf2Engine enumerates the free variables of a reduced GF(2) system.
//
// Exhaustive mode visits masks 0..2^k-1 in numeric order. Pruned mode visits
// masks grouped by popcount (Gosper's hack); a mask's popcount is a lower
// bound on its total, so enumeration stops at the first weight that cannot
// beat the incumbent. Both modes return the same cost.
type gf2Engine struct {
	red    *echelon.Reduced[field.Bit]
	inc    *matrix.Incidence
	free   []int
	budget *budget

	assign     []int
	best       int
	bestAssign []int
	found      bool
}

func newGF2Engine(red *echelon.Reduced[field.Bit], inc *matrix.Incidence, b *budget) *gf2Engine {
	return &gf2Engine{
		red:        red,
		inc:        inc,
		free:       red.Free,
		budget:     b,
		assign:     make([]int, red.Vars()),
		bestAssign: make([]int, red.Vars()),
	}
}

// try evaluates one free-variable mask.
func (e *gf2Engine) try(mask uint64) {
	for i, fc := range e.free {
		e.assign[fc] = int(mask>>uint(i)) & 1
	}
	if err := e.red.ReconstructInto(e.assign); err != nil {
		return
	}
	// Re-simulate against the original counters.
	if Verify(e.inc, e.assign, Lights) != nil {
		return
	}
	total := 0
	for _, x := range e.assign {
		total += x
	}
	if e.found && total >= e.best {
		return
	}
	e.best = total
	e.found = true
	copy(e.bestAssign, e.assign)
}

// exhaustive visits every mask.
func (e *gf2Engine) exhaustive() {
	limit := uint64(1) << uint(len(e.free))
	for mask := uint64(0); mask < limit; mask++ {
		if !e.budget.step() {
			return
		}
		e.try(mask)
	}
}

// byWeight visits masks in order of popcount. Pivot values add presses on
// top of the mask weight, so a level is abandoned only once its weight
// alone reaches the incumbent.
func (e *gf2Engine) byWeight() {
	k := len(e.free)
	limit := uint64(1) << uint(k)
	for w := 0; w <= k; w++ {
		mask := uint64(1)<<uint(w) - 1
		for mask < limit {
			if e.found && w >= e.best {
				return
			}
			if !e.budget.step() {
				return
			}
			e.try(mask)
			if mask == 0 {
				break
			}
			mask = nextCombination(mask)
		}
	}
}

// nextCombination returns the next larger integer with the same popcount.
func nextCombination(x uint64) uint64 {
	c := x & -x
	r := x + c

	return (((r ^ x) >> 2) / c) | r
}
