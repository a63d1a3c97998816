// SPDX-License-Identifier: MIT

package presses

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/presses/echelon"
)

var (
	// ErrInfeasible groups every "this system cannot reach its targets"
	// outcome. Callers aggregating many systems match it with errors.Is.
	ErrInfeasible = errors.New("presses: infeasible system")

	// ErrNoFeasibleAssignment is reported when the search exhausts every
	// branch without a leaf that reconstructs within bounds.
	ErrNoFeasibleAssignment = fmt.Errorf("%w: no feasible assignment within bounds", ErrInfeasible)

	// ErrOutOfBounds marks a press count outside 0..bound. It is a local
	// branch failure inside the search and is only surfaced by Verify.
	ErrOutOfBounds = errors.New("presses: press count out of bounds")

	// ErrTargetMismatch is returned by Verify when a press vector does not
	// reproduce the targets.
	ErrTargetMismatch = errors.New("presses: targets not reproduced")

	// ErrLengthMismatch indicates a press vector whose length differs from
	// the number of buttons.
	ErrLengthMismatch = errors.New("presses: press vector length mismatch")

	// ErrTimeLimit is returned when Options.TimeLimit elapses mid-search.
	ErrTimeLimit = errors.New("presses: time limit exceeded")

	// ErrNodeLimit is returned when the search visits more than
	// Options.MaxNodes nodes.
	ErrNodeLimit = errors.New("presses: node limit exceeded")

	// ErrTooManyFreeVariables is returned when a lights system has more free
	// variables than a 64-bit enumeration mask can index.
	ErrTooManyFreeVariables = errors.New("presses: too many free variables")

	// ErrBadOptions indicates negative limits in Options.
	ErrBadOptions = errors.New("presses: invalid options")

	// ErrUnknownVariant indicates a Variant outside Lights/Joltage.
	ErrUnknownVariant = errors.New("presses: unknown variant")
)

// Operation tags for error wrapping.
const (
	opSolve    = "SolveMinCost"
	opSimulate = "Simulate"
	opVerify   = "Verify"
)

// pressesErrorf wraps err with an operation tag.
func pressesErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsInfeasible reports whether err says the system has no solution, as
// opposed to a malformed input or an interrupted search.
func IsInfeasible(err error) bool {
	return errors.Is(err, ErrInfeasible) || errors.Is(err, echelon.ErrInconsistentSystem)
}
