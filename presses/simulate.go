// SPDX-License-Identifier: MIT

package presses

import (
	"fmt"

	"github.com/katalvlaran/presses/matrix"
)

// Simulate applies a press vector to all-zero counters and returns the
// resulting counter values: sums for Joltage, parities for Lights.
//
// Errors: matrix.ErrNilMatrix, ErrLengthMismatch, ErrOutOfBounds for a
// negative press count, ErrUnknownVariant.
// Complexity: O(Σ|button|).
func Simulate(inc *matrix.Incidence, presses []int, v Variant) ([]int, error) {
	if inc == nil {
		return nil, pressesErrorf(opSimulate, matrix.ErrNilMatrix)
	}
	if !v.valid() {
		return nil, pressesErrorf(opSimulate, ErrUnknownVariant)
	}
	if len(presses) != inc.Buttons() {
		return nil, pressesErrorf(opSimulate, fmt.Errorf("%d presses for %d buttons: %w", len(presses), inc.Buttons(), ErrLengthMismatch))
	}

	out := make([]int, inc.Counters())
	for b, n := range presses {
		if n < 0 {
			return nil, pressesErrorf(opSimulate, fmt.Errorf("button %d pressed %d times: %w", b, n, ErrOutOfBounds))
		}
		if n == 0 {
			continue
		}
		counters, _ := inc.ButtonCounters(b)
		for _, c := range counters {
			out[c] += n
		}
	}
	if v == Lights {
		for i := range out {
			out[i] &= 1
		}
	}

	return out, nil
}

// Verify substitutes presses into the original, pre-reduction system and
// checks that every counter lands exactly on its target (on its parity for
// Lights). Returns ErrTargetMismatch naming the first failing counter.
func Verify(inc *matrix.Incidence, presses []int, v Variant) error {
	got, err := Simulate(inc, presses, v)
	if err != nil {
		return pressesErrorf(opVerify, err)
	}
	for i, g := range got {
		want := inc.Target(i)
		if v == Lights {
			want &= 1
		}
		if g != want {
			return pressesErrorf(opVerify, fmt.Errorf("counter %d = %d, want %d: %w", i, g, want, ErrTargetMismatch))
		}
	}

	return nil
}
