// SPDX-License-Identifier: MIT

// Package rational - exact fraction arithmetic.
//
// Purpose:
//   - Provide an immutable rational value (numerator / positive denominator) for
//     exact row reduction. No operation ever rounds.
//   - Keep integrality tests exact: IsInt is "denominator == 1" on a normalized value.
//
// Representation:
//   - Rat wraps a *big.Rat that is never mutated after construction; every
//     operation allocates a fresh result. The zero value Rat{} reads as 0.
//   - math/big keeps values normalized (gcd(num, den) == 1, den > 0).
//
// Complexity:
//   - Add/Sub/Mul/Div: O(M(b)) where b is the bit length of the operands.
//   - Cmp/Sign/IsZero/IsInt: O(1) to O(b).
package rational

import (
	"math"
	"math/big"
)

// Rat is an exact rational number with value semantics.
type Rat struct {
	v *big.Rat // nil ⇒ 0; never mutated once published
}

var (
	zeroRat = new(big.Rat)
	oneRat  = big.NewRat(1, 1)
)

// New returns num/den in lowest terms.
// Returns ErrZeroDenominator when den == 0.
func New(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ErrZeroDenominator
	}

	return Rat{v: big.NewRat(num, den)}, nil
}

// FromInt returns the integer v as a rational with denominator 1.
func FromInt(v int64) Rat {
	return Rat{v: new(big.Rat).SetInt64(v)}
}

// Zero returns 0.
func Zero() Rat { return Rat{} }

// One returns 1.
func One() Rat { return Rat{v: oneRat} }

// raw returns the backing value, substituting 0 for the zero Rat.
// The result must be treated as read-only.
func (r Rat) raw() *big.Rat {
	if r.v == nil {
		return zeroRat
	}

	return r.v
}

// Add returns r + b.
func (r Rat) Add(b Rat) Rat {
	return Rat{v: new(big.Rat).Add(r.raw(), b.raw())}
}

// Sub returns r − b.
func (r Rat) Sub(b Rat) Rat {
	return Rat{v: new(big.Rat).Sub(r.raw(), b.raw())}
}

// Mul returns r × b.
func (r Rat) Mul(b Rat) Rat {
	return Rat{v: new(big.Rat).Mul(r.raw(), b.raw())}
}

// Div returns r ÷ b, or ErrDivisionByZero when b == 0.
func (r Rat) Div(b Rat) (Rat, error) {
	if b.IsZero() {
		return Rat{}, ErrDivisionByZero
	}

	return Rat{v: new(big.Rat).Quo(r.raw(), b.raw())}, nil
}

// Neg returns −r.
func (r Rat) Neg() Rat {
	return Rat{v: new(big.Rat).Neg(r.raw())}
}

// Cmp compares r and b: −1 if r < b, 0 if equal, +1 if r > b.
func (r Rat) Cmp(b Rat) int { return r.raw().Cmp(b.raw()) }

// Equal reports r == b exactly.
func (r Rat) Equal(b Rat) bool { return r.Cmp(b) == 0 }

// Sign returns −1, 0 or +1.
func (r Rat) Sign() int { return r.raw().Sign() }

// IsZero reports r == 0.
func (r Rat) IsZero() bool { return r.Sign() == 0 }

// IsInt reports whether the normalized denominator is 1.
func (r Rat) IsInt() bool { return r.raw().IsInt() }

// Int64 returns the exact integer value of r.
// ok is false when r is not integral or does not fit in an int64.
func (r Rat) Int64() (v int64, ok bool) {
	if !r.IsInt() {
		return 0, false
	}
	num := r.raw().Num()
	if !num.IsInt64() {
		return 0, false
	}

	return num.Int64(), true
}

// Int returns the exact integer value of r as an int (see Int64).
func (r Rat) Int() (int, bool) {
	v, ok := r.Int64()
	if !ok || v < math.MinInt || v > math.MaxInt {
		return 0, false
	}

	return int(v), true
}

// Num returns a copy of the normalized numerator.
func (r Rat) Num() *big.Int { return new(big.Int).Set(r.raw().Num()) }

// Den returns a copy of the normalized denominator (always > 0).
func (r Rat) Den() *big.Int { return new(big.Int).Set(r.raw().Denom()) }

// String renders "n" for integers and "n/d" otherwise.
func (r Rat) String() string { return r.raw().RatString() }
