// SPDX-License-Identifier: MIT

package batch

import "errors"

var (
	// ErrSystemInfeasible aborts a FailOnInfeasible run at the first system
	// without a solution. The underlying presses error stays in the chain.
	ErrSystemInfeasible = errors.New("batch: system infeasible")

	// ErrUnknownPolicy indicates a Policy outside SkipInfeasible/FailOnInfeasible.
	ErrUnknownPolicy = errors.New("batch: unknown policy")
)
