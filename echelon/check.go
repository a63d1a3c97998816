// SPDX-License-Identifier: MIT

package echelon

import "fmt"

// CheckRREF verifies the post-reduction invariants:
//   - pivot columns are strictly increasing and pivot rows are 0..rank-1;
//   - every pivot column, restricted to the matrix rows, is a unit vector with
//     its One in the pivot row (identity submatrix);
//   - each pivot row is zero left of its pivot;
//   - rows below the rank have all-zero coefficients.
//
// Returns ErrNotReduced (wrapped with the first violation) or nil.
// Complexity: O(m·n).
func (r *Reduced[T]) CheckRREF() error {
	var (
		m    = r.Matrix
		f    = r.f
		one  = f.One()
		prev = -1
	)
	for k, p := range r.Pivots {
		if p.Col <= prev || p.Row != k {
			return echelonErrorf(opCheck, fmt.Errorf("pivot %d at (%d,%d): %w", k, p.Col, p.Row, ErrNotReduced))
		}
		prev = p.Col
		for i := 0; i < m.Rows(); i++ {
			v, err := m.At(i, p.Col)
			if err != nil {
				return echelonErrorf(opCheck, err)
			}
			want := i == p.Row
			if (want && !f.Equal(v, one)) || (!want && !f.IsZero(v)) {
				return echelonErrorf(opCheck, fmt.Errorf("cell (%d,%d)=%v: %w", i, p.Col, v, ErrNotReduced))
			}
		}
		for j := 0; j < p.Col; j++ {
			v, _ := m.At(p.Row, j)
			if !f.IsZero(v) {
				return echelonErrorf(opCheck, fmt.Errorf("cell (%d,%d) left of pivot: %w", p.Row, j, ErrNotReduced))
			}
		}
	}
	for i := len(r.Pivots); i < m.Rows(); i++ {
		for j := 0; j < r.vars; j++ {
			v, _ := m.At(i, j)
			if !f.IsZero(v) {
				return echelonErrorf(opCheck, fmt.Errorf("cell (%d,%d) below rank: %w", i, j, ErrNotReduced))
			}
		}
	}

	return nil
}
