// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors MUST return these sentinels and tests MUST check
// them via errors.Is. No function panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping. Sentinels are
// returned bare from validators and wrapped with fmt.Errorf("ctx: %w", ErrX) by
// public methods; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates negative rows/cols, or an augmented matrix
	// without its right-hand-side column.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates ragged rows or length mismatches between inputs.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrCounterOutOfRange indicates a button referencing a counter index that
	// does not exist in the target vector.
	ErrCounterOutOfRange = errors.New("matrix: counter index out of range")

	// ErrNegativeTarget indicates a negative counter target.
	ErrNegativeTarget = errors.New("matrix: negative target")

	// ErrTargetOverflow indicates targets whose sum does not fit in an int.
	ErrTargetOverflow = errors.New("matrix: target sum overflows int")

	// ErrNilField indicates that Augment was called without a field.
	ErrNilField = errors.New("matrix: nil field")
)
