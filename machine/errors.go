// SPDX-License-Identifier: MIT

package machine

import "errors"

var (
	// ErrMalformedLine indicates a line that is not a machine description:
	// unknown tokens, bad integers, repeated blocks, or a lights diagram and
	// joltage block of different lengths.
	ErrMalformedLine = errors.New("machine: malformed line")

	// ErrMissingTargets is returned by System when the requested variant's
	// target block is absent from the line.
	ErrMissingTargets = errors.New("machine: missing targets")
)
