// SPDX-License-Identifier: MIT

package presses

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/presses/echelon"
	"github.com/katalvlaran/presses/field"
	"github.com/katalvlaran/presses/matrix"
	"github.com/katalvlaran/presses/rational"
)

// SolveMinCost returns the fewest total presses that bring every counter from
// 0 to its target. buttons[b] lists the counters button b affects (duplicates
// collapse); targets[i] is the target of counter i (Lights uses its parity).
//
// Pipeline: incidence → [A | b] over the variant's field → RREF → bounds →
// search over the free variables → round-trip verification of the winner.
//
// Boundaries:
//   - No buttons: cost 0 iff every target is 0, else infeasible.
//   - No counters: cost 0 with every button unpressed.
//   - Full rank: the unique solution is accepted iff it is non-negative,
//     integral and within bounds.
//
// Errors:
//   - ErrInfeasible (errors.Is) wrapping echelon.ErrInconsistentSystem or
//     ErrNoFeasibleAssignment.
//   - ErrTimeLimit, ErrNodeLimit, ctx.Err() when the search is interrupted.
//   - ErrTooManyFreeVariables for Lights systems with more than 62 free buttons.
//   - ErrBadOptions, ErrUnknownVariant, matrix.ErrCounterOutOfRange,
//     matrix.ErrNegativeTarget, matrix.ErrTargetOverflow for malformed input.
func SolveMinCost(ctx context.Context, buttons [][]int, targets []int, v Variant, opts Options) (Result, error) {
	if !v.valid() {
		return Result{}, pressesErrorf(opSolve, ErrUnknownVariant)
	}
	if err := opts.validate(); err != nil {
		return Result{}, pressesErrorf(opSolve, err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, pressesErrorf(opSolve, err)
	}

	inc, err := matrix.NewIncidence(buttons, targets)
	if err != nil {
		return Result{}, pressesErrorf(opSolve, err)
	}

	var res Result
	switch v {
	case Lights:
		res, err = solveLights(ctx, inc, opts)
	case Joltage:
		res, err = solveJoltage(ctx, inc, opts)
	}
	if err != nil {
		return Result{}, pressesErrorf(opSolve, err)
	}

	// The winner must reproduce the original system.
	if err = Verify(inc, res.Presses, v); err != nil {
		return Result{}, pressesErrorf(opSolve, err)
	}

	return res, nil
}

// solveJoltage reduces over the rationals and runs branch-and-bound.
func solveJoltage(ctx context.Context, inc *matrix.Incidence, opts Options) (Result, error) {
	m, err := matrix.Augment[rational.Rat](inc, field.Rationals{})
	if err != nil {
		return Result{}, err
	}
	red, err := echelon.Reduce[rational.Rat](m, field.Rationals{})
	if err != nil {
		return Result{}, err
	}
	if !red.HasSolution {
		return Result{}, fmt.Errorf("%w: %w", ErrInfeasible, echelon.ErrInconsistentSystem)
	}

	b := newBudget(ctx, opts)
	e := newBBEngine(red, Bounds(inc), opts.Prune, b)
	e.run()

	return finish(b, red.Free, red.Rank(), e.found, e.best, e.bestAssign)
}

// solveLights reduces over GF(2) and enumerates the free variables.
func solveLights(ctx context.Context, inc *matrix.Incidence, opts Options) (Result, error) {
	m, err := matrix.Augment[field.Bit](inc, field.GF2{})
	if err != nil {
		return Result{}, err
	}
	red, err := echelon.Reduce[field.Bit](m, field.GF2{})
	if err != nil {
		return Result{}, err
	}
	if !red.HasSolution {
		return Result{}, fmt.Errorf("%w: %w", ErrInfeasible, echelon.ErrInconsistentSystem)
	}
	if k := len(red.Free); k > maxFreeBits {
		return Result{}, fmt.Errorf("%d free buttons, max %d: %w", k, maxFreeBits, ErrTooManyFreeVariables)
	}

	b := newBudget(ctx, opts)
	e := newGF2Engine(red, inc, b)
	if opts.Prune {
		e.byWeight()
	} else {
		e.exhaustive()
	}

	return finish(b, red.Free, red.Rank(), e.found, e.best, e.bestAssign)
}

// finish turns the engine outcome into a Result. An interrupted search is
// an error even when an incumbent exists, since it may not be optimal.
func finish(b *budget, free []int, rank int, found bool, best int, assign []int) (Result, error) {
	if b.err != nil {
		return Result{}, fmt.Errorf("after %d nodes: %w", b.nodes, b.err)
	}
	if !found {
		return Result{}, fmt.Errorf("%d nodes searched: %w", b.nodes, ErrNoFeasibleAssignment)
	}

	return Result{
		Cost:    best,
		Presses: assign,
		Free:    slices.Clone(free),
		Rank:    rank,
		Nodes:   b.nodes,
	}, nil
}
