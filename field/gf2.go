// SPDX-License-Identifier: MIT

package field

// Bit is an element of GF(2). Only the low bit is significant; all
// operations return canonical 0 or 1.
type Bit uint8

// GF2 implements Field[Bit].
type GF2 struct{}

var _ Field[Bit] = GF2{}

func (GF2) Name() string { return "GF(2)" }
func (GF2) Zero() Bit    { return 0 }
func (GF2) One() Bit     { return 1 }

// FromInt reduces v mod 2; negative values map to their parity.
func (GF2) FromInt(v int) Bit { return Bit(v & 1) }

func (GF2) IsZero(a Bit) bool   { return a&1 == 0 }
func (GF2) Equal(a, b Bit) bool { return a&1 == b&1 }
func (GF2) Add(a, b Bit) Bit    { return (a ^ b) & 1 }
func (GF2) Sub(a, b Bit) Bit    { return (a ^ b) & 1 }
func (GF2) Mul(a, b Bit) Bit    { return a & b & 1 }

// Div returns a when b == 1 and ErrDivisionByZero when b == 0.
func (GF2) Div(a, b Bit) (Bit, error) {
	if b&1 == 0 {
		return 0, ErrDivisionByZero
	}

	return a & 1, nil
}

// ToInt always succeeds with 0 or 1.
func (GF2) ToInt(a Bit) (int, bool) { return int(a & 1), true }
