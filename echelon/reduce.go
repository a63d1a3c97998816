// SPDX-License-Identifier: MIT

// Package echelon - Gauss–Jordan elimination over a field.
//
// Algorithm (column-major, per column c = 0..n-1):
//  1. Scan rows from the pivot cursor downward for the first nonzero entry in c.
//     None ⇒ c is a free column.
//  2. Swap that row into the cursor position.
//  3. Scale the pivot row so the pivot becomes exactly One (over GF(2) the
//     pivot already is One and the scale loop is skipped).
//  4. Eliminate c from every other row, above and below, to reach true RREF.
//  5. Record (c, cursor), advance the cursor; stop once every row holds a pivot.
//
// Entries left of c in the pivot row are already zero, so steps 3–4 only touch
// columns c..n (augmented column included).

package echelon

import (
	"github.com/katalvlaran/presses/field"
	"github.com/katalvlaran/presses/matrix"
)

// Pivot records that unknown Col is determined by matrix row Row.
type Pivot struct {
	Col int
	Row int
}

// term is one nonzero free-column coefficient of a pivot row.
type term[T any] struct {
	col   int
	coeff T
}

// Reduced is the outcome of Reduce. The matrix is the caller's matrix,
// reduced in place; treat it as read-only afterwards.
type Reduced[T any] struct {
	// Matrix is the augmented matrix in reduced row-echelon form.
	Matrix *matrix.Dense[T]

	// Pivots lists (column,row) pairs; Col is strictly increasing.
	Pivots []Pivot

	// Free lists the non-pivot columns in ascending order.
	Free []int

	// HasSolution is false when some row reads 0 = c with c ≠ 0.
	HasSolution bool

	f       field.Field[T]
	vars    int
	isPivot []bool
	rhs     []T         // rhs[k] = augmented entry of Pivots[k].Row
	terms   [][]term[T] // terms[k] = nonzero free coefficients of Pivots[k].Row
}

// Reduce brings m to reduced row-echelon form in place over field f.
//
// Contracts:
//   - m must be an augmented matrix (Cols ≥ 1); zero rows or zero unknowns are fine.
//   - f must be non-nil; its zero value must equal the zero value of T.
//
// Errors: ErrNilField, matrix.ErrNilMatrix, matrix.ErrInvalidDimensions.
// An inconsistent system is NOT an error here; see HasSolution / Err.
//
// Complexity: O(m·n·(n+1)) field operations; O(m) row views.
func Reduce[T any](m *matrix.Dense[T], f field.Field[T]) (*Reduced[T], error) {
	if f == nil {
		return nil, echelonErrorf(opReduce, ErrNilField)
	}
	if err := matrix.ValidateAugmented(m); err != nil {
		return nil, echelonErrorf(opReduce, err)
	}

	var (
		rows     = m.Rows()
		cols     = m.Cols()
		vars     = m.Vars()
		one      = f.One()
		pivotRow int
		c, r, j  int
		err      error
	)

	// Row views stay valid across SwapRows: swaps move contents, not slices.
	rv := make([][]T, rows)
	for r = 0; r < rows; r++ {
		if rv[r], err = m.Row(r); err != nil {
			return nil, echelonErrorf(opReduce, err)
		}
	}

	red := &Reduced[T]{
		Matrix:  m,
		f:       f,
		vars:    vars,
		isPivot: make([]bool, vars),
	}

	for c = 0; c < vars && pivotRow < rows; c++ {
		// 1) find the first nonzero entry at or below the cursor.
		cand := pivotRow
		for cand < rows && f.IsZero(rv[cand][c]) {
			cand++
		}
		if cand == rows {
			continue // free column
		}

		// 2) swap into place.
		if cand != pivotRow {
			if err = m.SwapRows(pivotRow, cand); err != nil {
				return nil, echelonErrorf(opReduce, err)
			}
		}
		pr := rv[pivotRow]

		// 3) scale to a unit pivot (exact division).
		if pv := pr[c]; !f.Equal(pv, one) {
			for j = c; j < cols; j++ {
				if pr[j], err = f.Div(pr[j], pv); err != nil {
					return nil, echelonErrorf(opReduce, err)
				}
			}
		}

		// 4) eliminate column c everywhere else.
		for r = 0; r < rows; r++ {
			if r == pivotRow {
				continue
			}
			row := rv[r]
			factor := row[c]
			if f.IsZero(factor) {
				continue
			}
			for j = c; j < cols; j++ {
				row[j] = f.Sub(row[j], f.Mul(factor, pr[j]))
			}
		}

		// 5) record and advance.
		red.Pivots = append(red.Pivots, Pivot{Col: c, Row: pivotRow})
		red.isPivot[c] = true
		pivotRow++
	}

	red.Free = make([]int, 0, vars-len(red.Pivots))
	for c = 0; c < vars; c++ {
		if !red.isPivot[c] {
			red.Free = append(red.Free, c)
		}
	}

	red.HasSolution = consistent(rv, vars, f)
	red.precomputeTerms(rv)

	return red, nil
}

// consistent reports false if any row has all-zero coefficients but a nonzero
// augmented entry.
func consistent[T any](rv [][]T, vars int, f field.Field[T]) bool {
	var j int
	for _, row := range rv {
		for j = 0; j < vars; j++ {
			if !f.IsZero(row[j]) {
				break
			}
		}
		if j == vars && !f.IsZero(row[vars]) {
			return false
		}
	}

	return true
}

// precomputeTerms caches, per pivot, its right-hand side and nonzero free
// coefficients, so reconstruction never rescans the matrix.
func (r *Reduced[T]) precomputeTerms(rv [][]T) {
	r.rhs = make([]T, len(r.Pivots))
	r.terms = make([][]term[T], len(r.Pivots))
	for k, p := range r.Pivots {
		row := rv[p.Row]
		r.rhs[k] = row[r.vars]
		for _, fc := range r.Free {
			if !r.f.IsZero(row[fc]) {
				r.terms[k] = append(r.terms[k], term[T]{col: fc, coeff: row[fc]})
			}
		}
	}
}

// Vars returns the number of unknowns.
func (r *Reduced[T]) Vars() int { return r.vars }

// Rank returns the number of pivots.
func (r *Reduced[T]) Rank() int { return len(r.Pivots) }

// IsPivot reports whether column col is a pivot column.
func (r *Reduced[T]) IsPivot(col int) bool {
	return col >= 0 && col < r.vars && r.isPivot[col]
}

// Err returns ErrInconsistentSystem when HasSolution is false, else nil.
func (r *Reduced[T]) Err() error {
	if !r.HasSolution {
		return ErrInconsistentSystem
	}

	return nil
}
