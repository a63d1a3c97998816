// SPDX-License-Identifier: MIT

// Package echelon reduces augmented systems to reduced row-echelon form and
// reconstructs pivot variables from free-variable assignments.
//
// Two operations work on an augmented matrix [A | b] over a field.Field:
//
//   - Reduce runs column-major Gauss–Jordan elimination in place and reports
//     pivots (column, row), free columns and consistency. Cost is
//     O(m·n·(n+1)) field operations for m equations and n unknowns. The
//     rational field never rounds, so integrality tests downstream are exact.
//
//   - (*Reduced).ReconstructInto takes values for the free columns and
//     computes every pivot variable as rhs − Σ coeff·free, rejecting
//     non-integral or negative results. It is allocation-free and costs
//     O(rank·free) per call.
//
// Over GF(2), subtraction is XOR, so the same reconstruction is the XOR
// back-substitution used by toggle ("lights") systems.
//
// Inconsistency (a zero coefficient row with a nonzero right-hand side) is
// reported through Reduced.HasSolution and (*Reduced).Err, not as a Reduce
// error: an infeasible system is a normal outcome, not malformed input.
package echelon
