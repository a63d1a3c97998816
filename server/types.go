// SPDX-License-Identifier: MIT

package server

// SolveRequest is the body of POST /v1/solve.
type SolveRequest struct {
	// Variant is "lights" or "joltage"; empty selects the configured default.
	Variant string `json:"variant" binding:"omitempty,oneof=lights joltage"`

	// Buttons lists, per button, the counters it affects. May be empty.
	Buttons [][]int `json:"buttons"`

	// Targets holds one target per counter (bits for lights).
	Targets []int `json:"targets" binding:"required"`

	// Prune overrides the configured pruning when set.
	Prune *bool `json:"prune,omitempty"`
}

// SolveResponse is the success body of POST /v1/solve.
type SolveResponse struct {
	RequestID string `json:"request_id"`
	Cost      int    `json:"cost"`
	Presses   []int  `json:"presses"`
	Free      []int  `json:"free"`
	Rank      int    `json:"rank"`
	Nodes     int64  `json:"nodes"`
}

// MachinesRequest is the body of POST /v1/machines: raw machine lines.
type MachinesRequest struct {
	// Variant is "lights" or "joltage"; empty selects the configured default.
	Variant string `json:"variant" binding:"omitempty,oneof=lights joltage"`
	Input   string `json:"input" binding:"required"`

	// Policy overrides the configured infeasibility policy ("skip"/"fail").
	Policy string `json:"policy" binding:"omitempty,oneof=skip fail"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is a stable machine-readable error code.
	Code string `json:"code"`

	RequestID string `json:"request_id,omitempty"`
}

// Error codes.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidSystem  = "INVALID_SYSTEM"
	CodeTooLarge       = "TOO_LARGE"
	CodeInfeasible     = "INFEASIBLE"
	CodeSearchLimit    = "SEARCH_LIMIT"
	CodeInternal       = "INTERNAL"
)
