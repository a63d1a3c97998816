package presses_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/presses/echelon"
	"github.com/katalvlaran/presses/matrix"
	"github.com/katalvlaran/presses/presses"
)

// sample machines: buttons, light targets, joltage targets and both answers.
var samples = []struct {
	name       string
	buttons    [][]int
	lights     []int
	joltage    []int
	wantLights int
	wantJolts  int
}{
	{
		name:       "m1",
		buttons:    [][]int{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}},
		lights:     []int{0, 1, 1, 0},
		joltage:    []int{3, 5, 4, 7},
		wantLights: 2,
		wantJolts:  10,
	},
	{
		name:       "m2",
		buttons:    [][]int{{0, 2, 3, 4}, {2, 3}, {0, 4}, {0, 1, 2}, {1, 2, 3, 4}},
		lights:     []int{0, 0, 0, 1, 0},
		joltage:    []int{7, 5, 12, 7, 2},
		wantLights: 3,
		wantJolts:  12,
	},
	{
		name:       "m3",
		buttons:    [][]int{{0, 1, 2, 3, 4}, {0, 3, 4}, {0, 1, 2, 4, 5}, {1, 2}},
		lights:     []int{0, 1, 1, 1, 0, 1},
		joltage:    []int{10, 11, 11, 5, 10, 5},
		wantLights: 2,
		wantJolts:  11,
	},
}

func TestSolveMinCost_Samples(t *testing.T) {
	t.Parallel()

	for _, tc := range samples {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			for _, prune := range []bool{true, false} {
				opts := presses.DefaultOptions()
				opts.Prune = prune

				res, err := presses.SolveMinCost(ctx, tc.buttons, tc.lights, presses.Lights, opts)
				require.NoError(t, err)
				assert.Equal(t, tc.wantLights, res.Cost, "lights prune=%v", prune)

				res, err = presses.SolveMinCost(ctx, tc.buttons, tc.joltage, presses.Joltage, opts)
				require.NoError(t, err)
				assert.Equal(t, tc.wantJolts, res.Cost, "joltage prune=%v", prune)
				assert.Equal(t, res.Cost, sum(res.Presses))
			}
		})
	}
}

func TestSolveMinCost_LightsScenario(t *testing.T) {
	t.Parallel()

	// A={0,2}, B={1}; target bits [1,0,1]: pressing A alone suffices.
	res, err := presses.SolveMinCost(context.Background(), [][]int{{0, 2}, {1}}, []int{1, 0, 1}, presses.Lights, presses.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Cost)
	assert.Equal(t, []int{1, 0}, res.Presses)
	assert.Equal(t, 2, res.Rank)
	assert.Empty(t, res.Free)
}

func TestSolveMinCost_JoltageScenario(t *testing.T) {
	t.Parallel()

	// A={0}, B={0,1}; targets [5,3]: unique solution B=3, A=2.
	res, err := presses.SolveMinCost(context.Background(), [][]int{{0}, {0, 1}}, []int{5, 3}, presses.Joltage, presses.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 5, res.Cost)
	assert.Equal(t, []int{2, 3}, res.Presses)
	assert.Equal(t, int64(1), res.Nodes)
}

func TestSolveMinCost_Infeasible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		buttons   [][]int
		targets   []int
		variant   presses.Variant
		wantCause error
	}{
		{name: "empty button joltage", buttons: [][]int{{}}, targets: []int{1}, variant: presses.Joltage, wantCause: echelon.ErrInconsistentSystem},
		{name: "empty button lights", buttons: [][]int{{}}, targets: []int{1}, variant: presses.Lights, wantCause: echelon.ErrInconsistentSystem},
		{name: "zero buttons nonzero target", buttons: nil, targets: []int{0, 2}, variant: presses.Joltage, wantCause: echelon.ErrInconsistentSystem},
		// Unique solution B=5, A=-2.
		{name: "full rank negative", buttons: [][]int{{0}, {0, 1}}, targets: []int{3, 5}, variant: presses.Joltage, wantCause: presses.ErrNoFeasibleAssignment},
		// a=b=c=1/2.
		{name: "full rank fractional", buttons: [][]int{{0, 1}, {1, 2}, {0, 2}}, targets: []int{1, 1, 1}, variant: presses.Joltage, wantCause: presses.ErrNoFeasibleAssignment},
		// Same counters, different targets.
		{name: "contradiction", buttons: [][]int{{0, 1}}, targets: []int{1, 2}, variant: presses.Joltage, wantCause: echelon.ErrInconsistentSystem},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := presses.SolveMinCost(context.Background(), tc.buttons, tc.targets, tc.variant, presses.DefaultOptions())
			require.Error(t, err)
			assert.ErrorIs(t, err, presses.ErrInfeasible)
			assert.ErrorIs(t, err, tc.wantCause)
			assert.True(t, presses.IsInfeasible(err))
		})
	}
}

func TestSolveMinCost_Boundaries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("zero buttons zero targets", func(t *testing.T) {
		t.Parallel()
		res, err := presses.SolveMinCost(ctx, nil, []int{0, 0}, presses.Joltage, presses.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 0, res.Cost)
		assert.Empty(t, res.Presses)
	})

	t.Run("zero counters", func(t *testing.T) {
		t.Parallel()
		for _, v := range []presses.Variant{presses.Lights, presses.Joltage} {
			res, err := presses.SolveMinCost(ctx, [][]int{{}, {}}, nil, v, presses.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, 0, res.Cost)
			assert.Equal(t, []int{0, 0}, res.Presses)
			assert.Equal(t, []int{0, 1}, res.Free)
		}
	})

	t.Run("even lights target is off", func(t *testing.T) {
		t.Parallel()
		res, err := presses.SolveMinCost(ctx, [][]int{{0}}, []int{2}, presses.Lights, presses.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 0, res.Cost)
	})
}

func TestSolveMinCost_FreeVariableBounds(t *testing.T) {
	t.Parallel()

	// Counter 1 forces B=1; A and C share the remaining 3 on counter 0.
	res, err := presses.SolveMinCost(context.Background(), [][]int{{0}, {0, 1}, {0}}, []int{4, 1}, presses.Joltage, presses.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, res.Cost)
	assert.Len(t, res.Free, 1)
}

func TestSolveMinCost_InputErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := presses.SolveMinCost(ctx, [][]int{{2}}, []int{1}, presses.Joltage, presses.DefaultOptions())
	assert.ErrorIs(t, err, matrix.ErrCounterOutOfRange)
	assert.False(t, presses.IsInfeasible(err))

	_, err = presses.SolveMinCost(ctx, [][]int{{0}}, []int{-1}, presses.Joltage, presses.DefaultOptions())
	assert.ErrorIs(t, err, matrix.ErrNegativeTarget)

	// Σ targets must fit in an int, else search totals could wrap negative.
	huge := []int{math.MaxInt - 1, math.MaxInt - 1}
	_, err = presses.SolveMinCost(ctx, [][]int{{0}, {0}, {1}}, huge, presses.Joltage, presses.Options{Prune: true, MaxNodes: 1000})
	assert.ErrorIs(t, err, matrix.ErrTargetOverflow)
	assert.False(t, presses.IsInfeasible(err))

	_, err = presses.SolveMinCost(ctx, [][]int{{0}, {0}, {1}}, huge, presses.Lights, presses.DefaultOptions())
	assert.ErrorIs(t, err, matrix.ErrTargetOverflow)

	_, err = presses.SolveMinCost(ctx, [][]int{{0}}, []int{1}, presses.Variant(9), presses.DefaultOptions())
	assert.ErrorIs(t, err, presses.ErrUnknownVariant)

	_, err = presses.SolveMinCost(ctx, [][]int{{0}}, []int{1}, presses.Joltage, presses.Options{MaxNodes: -1})
	assert.ErrorIs(t, err, presses.ErrBadOptions)

	_, err = presses.SolveMinCost(ctx, [][]int{{0}}, []int{1}, presses.Joltage, presses.Options{TimeLimit: -time.Second})
	assert.ErrorIs(t, err, presses.ErrBadOptions)
}

// hard is one counter shared by four buttons: three free variables with
// bound 1000 each, far too many leaves for an unpruned search.
func hard() ([][]int, []int) {
	return [][]int{{0}, {0}, {0}, {0}}, []int{1000}
}

func TestSolveMinCost_Limits(t *testing.T) {
	t.Parallel()

	buttons, targets := hard()
	exhaustive := presses.Options{Prune: false}

	t.Run("node limit", func(t *testing.T) {
		t.Parallel()
		opts := exhaustive
		opts.MaxNodes = 100
		_, err := presses.SolveMinCost(context.Background(), buttons, targets, presses.Joltage, opts)
		assert.ErrorIs(t, err, presses.ErrNodeLimit)
		assert.False(t, presses.IsInfeasible(err))
	})

	t.Run("time limit", func(t *testing.T) {
		t.Parallel()
		opts := exhaustive
		opts.TimeLimit = time.Nanosecond
		_, err := presses.SolveMinCost(context.Background(), buttons, targets, presses.Joltage, opts)
		assert.ErrorIs(t, err, presses.ErrTimeLimit)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := presses.SolveMinCost(ctx, buttons, targets, presses.Joltage, exhaustive)
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("context expires mid-search", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := presses.SolveMinCost(ctx, buttons, targets, presses.Joltage, exhaustive)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NotErrorIs(t, err, presses.ErrTimeLimit)
		assert.False(t, presses.IsInfeasible(err))
	})
}

func TestSolveMinCost_LargeTargets(t *testing.T) {
	t.Parallel()

	half := math.MaxInt / 2
	res, err := presses.SolveMinCost(context.Background(), [][]int{{0}, {1}}, []int{half, half}, presses.Joltage, presses.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2*half, res.Cost)
	assert.Equal(t, []int{half, half}, res.Presses)
	assert.Positive(t, res.Cost)
}

func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}

	return s
}
