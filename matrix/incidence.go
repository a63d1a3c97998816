// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/presses/field"
)

// Incidence represents a press system as a counters×buttons 0/1 matrix.
// Row i is counter i, column j is button j; Data[i][j] == 1 iff button j
// affects counter i. Targets[i] is the value counter i must reach.
//
// Incidence is immutable after construction; accessors return copies.
// Use NewIncidence to build with validation.
type Incidence struct {
	buttons [][]int // per-button counter lists, sorted and de-duplicated
	targets []int   // per-counter targets (len == rows)
	data    [][]int // counters × buttons incidence (0/1)
}

// NewIncidence builds an Incidence from button→counter lists and targets.
// A counter listed twice for the same button still contributes once.
//
// Every press lands on at least one counter, so Σ targets bounds the total of
// any exact solution; NewIncidence keeps that sum within int.
//
// Errors:
//   - ErrNegativeTarget if any target < 0.
//   - ErrTargetOverflow if Σ targets exceeds math.MaxInt.
//   - ErrCounterOutOfRange if a button references a counter outside [0, len(targets)).
//
// Time: O(C·B + Σ|button|); Memory: O(C·B).
func NewIncidence(buttons [][]int, targets []int) (*Incidence, error) {
	var (
		rows  = len(targets)
		cols  = len(buttons)
		total int
		i, j  int
	)
	for i = 0; i < rows; i++ {
		if targets[i] < 0 {
			return nil, fmt.Errorf("NewIncidence: target[%d]=%d: %w", i, targets[i], ErrNegativeTarget)
		}
		if targets[i] > math.MaxInt-total {
			return nil, fmt.Errorf("NewIncidence: target[%d]=%d: %w", i, targets[i], ErrTargetOverflow)
		}
		total += targets[i]
	}

	data := make([][]int, rows)
	for i = range data {
		data[i] = make([]int, cols)
	}
	norm := make([][]int, cols)
	for j = 0; j < cols; j++ {
		list := make([]int, 0, len(buttons[j]))
		for _, c := range buttons[j] {
			if c < 0 || c >= rows {
				return nil, fmt.Errorf("NewIncidence: button %d counter %d: %w", j, c, ErrCounterOutOfRange)
			}
			if data[c][j] == 0 {
				data[c][j] = 1
				list = append(list, c)
			}
		}
		slices.Sort(list)
		norm[j] = list
	}

	return &Incidence{
		buttons: norm,
		targets: slices.Clone(targets),
		data:    data,
	}, nil
}

// Counters returns the number of counters (rows / equations).
func (in *Incidence) Counters() int { return len(in.targets) }

// Buttons returns the number of buttons (columns / unknowns).
func (in *Incidence) Buttons() int { return len(in.buttons) }

// Targets returns a copy of the target vector.
func (in *Incidence) Targets() []int { return slices.Clone(in.targets) }

// Target returns the target of counter i (no bounds check beyond the slice's).
func (in *Incidence) Target(i int) int { return in.targets[i] }

// ButtonCounters returns a copy of the sorted counters affected by button b.
// Returns ErrOutOfRange for an unknown button.
func (in *Incidence) ButtonCounters(b int) ([]int, error) {
	if b < 0 || b >= len(in.buttons) {
		return nil, fmt.Errorf("ButtonCounters(%d): %w", b, ErrOutOfRange)
	}

	return slices.Clone(in.buttons[b]), nil
}

// Affects reports whether button b affects counter c. Out-of-range indices report false.
func (in *Incidence) Affects(b, c int) bool {
	if c < 0 || c >= len(in.data) || b < 0 || b >= len(in.buttons) {
		return false
	}

	return in.data[c][b] == 1
}

// Data returns a deep copy of the counters×buttons 0/1 matrix.
func (in *Incidence) Data() [][]int {
	out := make([][]int, len(in.data))
	for i := range in.data {
		out[i] = slices.Clone(in.data[i])
	}

	return out
}

// Augment materializes the augmented system [A | b] over field f:
// one row per counter, one column per button, then the target column.
// GF(2) reduces targets mod 2 through f.FromInt.
//
// Errors: ErrNilMatrix for a nil incidence, ErrNilField for a nil field.
// Complexity: O(C·B).
func Augment[T any](in *Incidence, f field.Field[T]) (*Dense[T], error) {
	if in == nil {
		return nil, validatorErrorf("Augment", ErrNilMatrix)
	}
	if f == nil {
		return nil, validatorErrorf("Augment", ErrNilField)
	}
	rows, vars := in.Counters(), in.Buttons()
	m, err := NewDense[T](rows, vars+1)
	if err != nil {
		return nil, err
	}
	var (
		one  = f.One()
		zero = f.Zero()
		i, j int
	)
	for i = 0; i < rows; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		for j = 0; j < vars; j++ {
			if in.data[i][j] == 1 {
				row[j] = one
			} else {
				row[j] = zero
			}
		}
		row[vars] = f.FromInt(in.targets[i])
	}

	return m, nil
}
