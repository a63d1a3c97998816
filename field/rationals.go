// SPDX-License-Identifier: MIT

package field

import "github.com/katalvlaran/presses/rational"

// Rationals implements Field[rational.Rat] with exact arithmetic.
type Rationals struct{}

var _ Field[rational.Rat] = Rationals{}

func (Rationals) Name() string                       { return "Q" }
func (Rationals) Zero() rational.Rat                 { return rational.Zero() }
func (Rationals) One() rational.Rat                  { return rational.One() }
func (Rationals) FromInt(v int) rational.Rat         { return rational.FromInt(int64(v)) }
func (Rationals) IsZero(a rational.Rat) bool         { return a.IsZero() }
func (Rationals) Equal(a, b rational.Rat) bool       { return a.Equal(b) }
func (Rationals) Add(a, b rational.Rat) rational.Rat { return a.Add(b) }
func (Rationals) Sub(a, b rational.Rat) rational.Rat { return a.Sub(b) }
func (Rationals) Mul(a, b rational.Rat) rational.Rat { return a.Mul(b) }

// Div maps rational.ErrDivisionByZero onto the field sentinel.
func (Rationals) Div(a, b rational.Rat) (rational.Rat, error) {
	if b.IsZero() {
		return rational.Zero(), ErrDivisionByZero
	}

	return a.Div(b)
}

// ToInt succeeds only when a is integral and fits in an int.
func (Rationals) ToInt(a rational.Rat) (int, bool) { return a.Int() }
