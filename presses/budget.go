// SPDX-License-Identifier: MIT

package presses

import (
	"context"
	"time"
)

// checkEvery is the node interval between context and deadline checks; it
// must be a power of two.
const checkEvery = 4096

// budget tracks visited nodes against the caller's limits. The node counter
// is exact; context and deadline are polled once every checkEvery nodes.
type budget struct {
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	maxNodes    int64

	nodes int64
	err   error // first reason to stop, sticky
}

func newBudget(ctx context.Context, opts Options) *budget {
	b := &budget{ctx: ctx, maxNodes: opts.MaxNodes}
	if opts.TimeLimit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(opts.TimeLimit)
	}

	return b
}

// step records one node and reports whether the search may continue.
func (b *budget) step() bool {
	b.nodes++
	if b.maxNodes > 0 && b.nodes > b.maxNodes {
		b.err = ErrNodeLimit
		return false
	}
	if b.nodes&(checkEvery-1) != 0 {
		return true
	}
	if err := b.ctx.Err(); err != nil {
		b.err = err
		return false
	}
	if b.useDeadline && time.Now().After(b.deadline) {
		b.err = ErrTimeLimit
		return false
	}

	return true
}
