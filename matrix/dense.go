// SPDX-License-Identifier: MIT

// Package matrix - generic Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/SwapRows return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Layout:
//   - An augmented system with m equations and n unknowns is an m×(n+1) Dense;
//     columns 0..n-1 are coefficients, column n is the right-hand side.
//   - Zero rows are legal (a system with no counters), and so is n == 0
//     (a system with no buttons still carries its right-hand side column).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row: O(1); SwapRows: O(c); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxRow  = "Row"
	ctxSwap = "SwapRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtAugSep   = " | "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps messages stable ("Dense.At(2,5): matrix: index out of range") and
// preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over cell type T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value of T must be the additive identity of the field in use;
// this holds for field.Bit and rational.Rat.
type Dense[T any] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c matrix filled with the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation.
//
// Behavior highlights:
//   - rows == 0 or cols == 0 is legal: the degenerate systems (no counters,
//     no buttons) must flow through reduction unchanged.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows copies a rectangular [][]T into a new Dense.
// Returns ErrDimensionMismatch if rows are ragged.
// Complexity: O(r*c).
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	var cols int
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count, augmented column included. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Vars returns the number of unknowns (Cols-1) of an augmented matrix, or 0
// when the matrix has no columns at all.
func (m *Dense[T]) Vars() int {
	if m.c == 0 {
		return 0
	}

	return m.c - 1
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns the live backing slice of row i (len == Cols()).
// Writes through the slice mutate the matrix; the capacity is clipped so an
// append can never spill into the next row.
// Complexity: O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi], nil
}

// Augmented returns the right-hand-side value of row i.
func (m *Dense[T]) Augmented(i int) (T, error) {
	return m.At(i, m.c-1)
}

// SwapRows exchanges rows a and b in place. Swapping a row with itself is a no-op.
// Complexity: O(c).
func (m *Dense[T]) SwapRows(a, b int) error {
	if a < 0 || a >= m.r || b < 0 || b >= m.r {
		return denseErrorf(ctxSwap, a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and eq holds cell-wise.
func (m *Dense[T]) Equal(o *Dense[T], eq func(a, b T) bool) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if !eq(m.data[k], o.data[k]) {
			return false
		}
	}

	return true
}

// String renders rows as "[a, b | rhs]" lines for diagnostics.
// Not for hot paths.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			switch {
			case j == 0:
			case j == m.c-1:
				sb.WriteString(_fmtAugSep)
			default:
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
