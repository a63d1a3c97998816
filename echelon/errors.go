// SPDX-License-Identifier: MIT

package echelon

import (
	"errors"
	"fmt"
)

var (
	// ErrInconsistentSystem is reported when reduction exposes a row
	// 0 = c with c ≠ 0. The search must not run.
	ErrInconsistentSystem = errors.New("echelon: inconsistent system")

	// ErrNonIntegral is returned when a reconstructed pivot value is a proper fraction.
	// It is a branch-local failure, not a fatal error.
	ErrNonIntegral = errors.New("echelon: non-integral pivot value")

	// ErrNegativeValue is returned when a reconstructed or supplied value is negative.
	ErrNegativeValue = errors.New("echelon: negative value")

	// ErrNotFreeVariable is returned when a free-value map names a pivot column
	// or a column outside the system.
	ErrNotFreeVariable = errors.New("echelon: not a free variable")

	// ErrNotReduced is returned by CheckRREF when the identity-submatrix
	// invariant does not hold.
	ErrNotReduced = errors.New("echelon: matrix is not in reduced row-echelon form")

	// ErrNilField indicates that Reduce was called without a field.
	ErrNilField = errors.New("echelon: nil field")

	// ErrLengthMismatch indicates an assignment buffer whose length differs
	// from the number of unknowns.
	ErrLengthMismatch = errors.New("echelon: assignment length mismatch")
)

// Operation tags for error wrapping.
const (
	opReduce      = "Reduce"
	opReconstruct = "Reconstruct"
	opCheck       = "CheckRREF"
)

// echelonErrorf wraps err with an operation tag, preserving it for errors.Is.
// Only call with a non-nil err.
func echelonErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
