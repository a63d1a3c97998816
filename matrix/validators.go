// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Return sentinels wrapped with the validator tag so call sites can wrap again uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T any](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAugmented ensures m is non-nil and has a right-hand-side column
// (Cols >= 1). A matrix with zero unknowns is still a valid augmented system.
// Complexity: O(1).
func ValidateAugmented[T any](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateAugmented", err)
	}
	if m.Cols() < 1 {
		return validatorErrorf("ValidateAugmented", ErrInvalidDimensions)
	}

	return nil
}
