// SPDX-License-Identifier: MIT

package presses

import (
	"fmt"
	"strings"
)

// Variant selects the press semantics.
type Variant int

const (
	// Lights toggles counters: a counter ends at (presses mod 2).
	Lights Variant = iota + 1

	// Joltage increments counters: a counter ends at the press count.
	Joltage
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Lights:
		return "lights"
	case Joltage:
		return "joltage"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps "lights"/"joltage" (case-insensitive) to a Variant.
// The aliases "gf2" and "integer" are accepted too.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lights", "gf2":
		return Lights, nil
	case "joltage", "integer":
		return Joltage, nil
	}

	return 0, fmt.Errorf("ParseVariant(%q): %w", s, ErrUnknownVariant)
}

// valid reports whether v is a known variant.
func (v Variant) valid() bool { return v == Lights || v == Joltage }

// Result is the outcome of a successful SolveMinCost.
type Result struct {
	// Cost is the minimum total number of presses.
	Cost int

	// Presses[b] is how many times button b is pressed (0/1 for Lights).
	// Σ Presses == Cost, and the vector reproduces the targets.
	Presses []int

	// Free lists the buttons left free by row reduction (searched over).
	Free []int

	// Rank is the number of pivot buttons.
	Rank int

	// Nodes counts visited search nodes: free-variable assignments, or the
	// single reconstruction of a system without free variables.
	Nodes int64
}
