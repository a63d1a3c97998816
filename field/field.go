// SPDX-License-Identifier: MIT

// Package field defines the scalar arithmetic used by row reduction.
//
// Two fields are provided:
//
//   - GF2: the two-element field over Bit. Addition and subtraction are XOR,
//     multiplication is AND. Used for the "lights" (toggle) systems.
//   - Rationals: exact fractions over rational.Rat. Used for the "joltage"
//     (increment) systems where integrality must be tested exactly.
//
// Algorithms in echelon are written once against Field[T] and instantiated
// with either field, so GF(2) and rational elimination share one loop.
package field

import "errors"

// ErrDivisionByZero is returned by Div when the divisor is the additive identity.
var ErrDivisionByZero = errors.New("field: division by zero")

// Field is the minimal arithmetic contract required by elimination and
// back-substitution. Implementations must be stateless and safe for
// concurrent use.
type Field[T any] interface {
	// Name identifies the field in logs and errors ("GF(2)", "Q").
	Name() string

	// Zero and One return the additive and multiplicative identities.
	Zero() T
	One() T

	// FromInt maps an integer into the field (GF2 reduces mod 2).
	FromInt(v int) T

	// IsZero reports a == 0; Equal reports a == b.
	IsZero(a T) bool
	Equal(a, b T) bool

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T

	// Div returns a / b or ErrDivisionByZero.
	Div(a, b T) (T, error)

	// ToInt returns the exact integer represented by a.
	// ok is false when a has no integer value (e.g. a non-integral fraction).
	ToInt(a T) (v int, ok bool)
}
