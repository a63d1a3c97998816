// SPDX-License-Identifier: MIT

package presses

import (
	"fmt"
	"time"
)

// Options configures the search.
//
//   - Prune: branch-and-bound on the running press total (Joltage) or
//     weight-ordered enumeration with early exit (Lights). Disabling it
//     yields the plain exhaustive search, useful as a cross-check.
//   - TimeLimit: wall-clock budget for one system; 0 means none.
//   - MaxNodes: upper bound on visited search nodes; 0 means unlimited.
type Options struct {
	Prune     bool
	TimeLimit time.Duration
	MaxNodes  int64
}

// DefaultOptions returns pruning on and no limits.
func DefaultOptions() Options {
	return Options{
		Prune:     true,
		TimeLimit: 0,
		MaxNodes:  0,
	}
}

// validate rejects negative limits.
func (o Options) validate() error {
	if o.TimeLimit < 0 {
		return fmt.Errorf("TimeLimit=%v: %w", o.TimeLimit, ErrBadOptions)
	}
	if o.MaxNodes < 0 {
		return fmt.Errorf("MaxNodes=%d: %w", o.MaxNodes, ErrBadOptions)
	}

	return nil
}
