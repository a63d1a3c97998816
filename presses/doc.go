// SPDX-License-Identifier: MIT

// Package presses finds the fewest total button presses that drive a set of
// counters exactly to their targets.
//
// A system is a list of buttons, each affecting a fixed subset of counters,
// and a target per counter. Two variants are supported:
//
//   - Lights: every press toggles its counters (arithmetic mod 2). The
//     system is reduced over GF(2) and the assignments of the free
//     variables are enumerated; with pruning on they are visited in order
//     of increasing weight, stopping once the weight alone cannot win.
//   - Joltage: every press adds 1 to its counters. The system is reduced
//     over exact rationals and the free variables are searched depth-first
//     over 0..bound with branch-and-bound on the running press total.
//
// Each button's bound is the smallest target among the counters it affects
// (0 for a button affecting nothing): pressing it more often overshoots that
// counter, since every contribution is non-negative.
//
// SolveMinCost is the single entry point. It is synchronous and owns all of
// its state, so independent systems may be solved concurrently (see batch).
// Long searches honour ctx, Options.TimeLimit and Options.MaxNodes, checked
// sparsely on the hot path.
//
// Errors:
//   - Infeasible systems satisfy errors.Is(err, ErrInfeasible); the cause
//     is echelon.ErrInconsistentSystem (contradictory row) or
//     ErrNoFeasibleAssignment (no leaf within bounds).
//   - ErrTimeLimit, ErrNodeLimit and ctx errors report an unfinished search.
//   - Malformed inputs surface the matrix sentinels (ErrCounterOutOfRange,
//     ErrNegativeTarget, ErrTargetOverflow) and ErrBadOptions / ErrUnknownVariant.
//
// The package performs no logging.
package presses
