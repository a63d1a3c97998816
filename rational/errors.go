// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrZeroDenominator is returned when a fraction is built with denominator 0.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrDivisionByZero is returned by Div when the divisor is 0.
	ErrDivisionByZero = errors.New("rational: division by zero")
)
