// SPDX-License-Identifier: MIT

package presses

import "github.com/katalvlaran/presses/matrix"

// Bounds returns, per button, the largest press count that cannot overshoot:
// the minimum target among the counters the button affects. A button that
// affects no counter gets bound 0, since pressing it only adds cost.
//
// The bound is exact for 0/1 coefficients with non-negative contributions
// and must not be generalized. Complexity: O(Σ|button|).
func Bounds(inc *matrix.Incidence) []int {
	if inc == nil {
		return nil
	}
	out := make([]int, inc.Buttons())
	for b := range out {
		counters, _ := inc.ButtonCounters(b)
		if len(counters) == 0 {
			continue
		}
		lim := inc.Target(counters[0])
		for _, c := range counters[1:] {
			if t := inc.Target(c); t < lim {
				lim = t
			}
		}
		out[b] = lim
	}

	return out
}
