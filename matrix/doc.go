// SPDX-License-Identifier: MIT

// Package matrix offers the augmented coefficient matrix used by row reduction.
//
// The matrix package provides:
//
//   - Dense[T]: a generic row-major m×(n+1) buffer; the last column holds the
//     augmented right-hand side. Cells are field elements (field.Bit for GF(2),
//     rational.Rat for exact integer systems).
//   - Incidence: the button→counter incidence structure built from button lists
//     and a target vector, one row per counter and one column per button.
//   - Augment: materializes [A | b] from an Incidence over any field.Field.
//
// Public accessors never panic on user input; they return sentinel errors
// from errors.go, wrapped with the method and coordinates.
//
// See the examples in this package and echelon for usage patterns.
package matrix
