// Package presses is the module root for an exact minimum-press solver.
//
// A machine has counters, a target value per counter and buttons; each press
// of a button adds one to every counter it touches (or toggles it, for light
// panels). The module finds the fewest total presses that reach the targets
// exactly, or reports that no non-negative integer combination can.
//
// Subpackages, leaves first:
//
//	rational/     exact fractions over math/big
//	field/        Field[T] with GF(2) and rational implementations
//	matrix/       augmented Dense[T] storage and the incidence builder
//	echelon/      Gauss–Jordan reduction and pivot reconstruction
//	presses/      bounds, branch-and-bound search and SolveMinCost
//	machine/      the one-line machine description format
//	batch/        concurrent solving of many machines with metrics
//	config/       YAML configuration with env overrides and validation
//	server/       HTTP JSON endpoint, health and Prometheus metrics
//	cmd/presses/  the command-line front end
//
// Quick start:
//
//	res, err := presses.SolveMinCost(ctx, buttons, targets, presses.Joltage, presses.DefaultOptions())
//	if presses.IsInfeasible(err) {
//		// no exact combination exists
//	}
//	fmt.Println(res.Cost, res.Presses)
package presses
