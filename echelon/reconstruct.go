// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"
	"slices"
)

// ReconstructInto fills the pivot slots of assignment from its free slots:
//
//	x[pivot] = rhs[row] − Σ coeff(row, free) · x[free]
//
// summed over the free columns with a nonzero coefficient in that row.
//
// Contracts:
//   - len(assignment) == Vars(); free slots hold the chosen free values.
//   - Only pivot slots are written; nothing else is touched, so the call is
//     safe once per search leaf on a buffer owned by the caller.
//
// Errors (bare sentinels, no allocation on the hot path):
//   - ErrNonIntegral  : some pivot value is not an integer.
//   - ErrNegativeValue: some pivot value is negative.
//   - ErrInconsistentSystem when HasSolution is false.
//   - ErrLengthMismatch for a wrongly sized buffer.
//
// On error, pivot slots before the failing pivot may already be overwritten.
//
// Complexity: O(rank · free) field operations.
func (r *Reduced[T]) ReconstructInto(assignment []int) error {
	if len(assignment) != r.vars {
		return ErrLengthMismatch
	}
	if !r.HasSolution {
		return ErrInconsistentSystem
	}

	f := r.f
	for k, p := range r.Pivots {
		v := r.rhs[k]
		for _, t := range r.terms[k] {
			if x := assignment[t.col]; x != 0 {
				v = f.Sub(v, f.Mul(t.coeff, f.FromInt(x)))
			}
		}
		n, ok := f.ToInt(v)
		if !ok {
			return ErrNonIntegral
		}
		if n < 0 {
			return ErrNegativeValue
		}
		assignment[p.Col] = n
	}

	return nil
}

// Reconstruct is the allocating form of ReconstructInto: free maps free
// columns to their values (missing free columns default to 0) and the full
// assignment is returned.
//
// Errors: ErrNotFreeVariable for keys that are pivots or out of range,
// ErrNegativeValue for negative free values, plus those of ReconstructInto.
func (r *Reduced[T]) Reconstruct(free map[int]int) ([]int, error) {
	assignment := make([]int, r.vars)

	// Deterministic key order keeps the reported error stable.
	keys := make([]int, 0, len(free))
	for col := range free {
		keys = append(keys, col)
	}
	slices.Sort(keys)
	for _, col := range keys {
		if col < 0 || col >= r.vars || r.isPivot[col] {
			return nil, echelonErrorf(opReconstruct, fmt.Errorf("column %d: %w", col, ErrNotFreeVariable))
		}
		if free[col] < 0 {
			return nil, echelonErrorf(opReconstruct, fmt.Errorf("column %d: %w", col, ErrNegativeValue))
		}
		assignment[col] = free[col]
	}

	if err := r.ReconstructInto(assignment); err != nil {
		return nil, echelonErrorf(opReconstruct, err)
	}

	return assignment, nil
}
