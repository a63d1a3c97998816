package presses_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/presses/matrix"
	"github.com/katalvlaran/presses/presses"
)

func TestBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		buttons [][]int
		targets []int
		want    []int
	}{
		{name: "min of affected targets", buttons: [][]int{{0}, {0, 1}}, targets: []int{5, 3}, want: []int{5, 3}},
		{name: "empty button", buttons: [][]int{{}}, targets: []int{1}, want: []int{0}},
		{name: "duplicates collapse", buttons: [][]int{{2, 2, 0}}, targets: []int{9, 1, 4}, want: []int{4}},
		{name: "zero target caps at zero", buttons: [][]int{{0, 1}, {1}}, targets: []int{0, 6}, want: []int{0, 6}},
		{name: "no buttons", buttons: nil, targets: []int{3}, want: []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			inc, err := matrix.NewIncidence(tc.buttons, tc.targets)
			require.NoError(t, err)
			assert.Equal(t, tc.want, presses.Bounds(inc))
		})
	}

	assert.Nil(t, presses.Bounds(nil))
}

func TestSimulateAndVerify(t *testing.T) {
	t.Parallel()

	inc, err := matrix.NewIncidence([][]int{{0, 2}, {1}, {0, 1}}, []int{3, 2, 1})
	require.NoError(t, err)

	got, err := presses.Simulate(inc, []int{1, 1, 2}, presses.Joltage)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 1}, got)

	got, err = presses.Simulate(inc, []int{1, 1, 2}, presses.Lights)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, got)

	assert.ErrorIs(t, presses.Verify(inc, []int{1, 1, 2}, presses.Joltage), presses.ErrTargetMismatch)
	assert.NoError(t, presses.Verify(inc, []int{1, 0, 2}, presses.Joltage))
	// Parity of [3,2,1] is [1,0,1].
	assert.NoError(t, presses.Verify(inc, []int{1, 0, 0}, presses.Lights))

	_, err = presses.Simulate(inc, []int{1}, presses.Joltage)
	assert.ErrorIs(t, err, presses.ErrLengthMismatch)
	_, err = presses.Simulate(inc, []int{0, -1, 0}, presses.Joltage)
	assert.ErrorIs(t, err, presses.ErrOutOfBounds)
	_, err = presses.Simulate(inc, []int{0, 0, 0}, presses.Variant(0))
	assert.ErrorIs(t, err, presses.ErrUnknownVariant)
	_, err = presses.Simulate(nil, nil, presses.Joltage)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVariant(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]presses.Variant{
		"lights":   presses.Lights,
		" LIGHTS ": presses.Lights,
		"gf2":      presses.Lights,
		"joltage":  presses.Joltage,
		"Integer":  presses.Joltage,
	} {
		got, err := presses.ParseVariant(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := presses.ParseVariant("voltage")
	assert.ErrorIs(t, err, presses.ErrUnknownVariant)

	assert.Equal(t, "lights", presses.Lights.String())
	assert.Equal(t, "joltage", presses.Joltage.String())
	assert.Equal(t, "Variant(7)", presses.Variant(7).String())
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	o := presses.DefaultOptions()
	assert.True(t, o.Prune)
	assert.Zero(t, o.TimeLimit)
	assert.Zero(t, o.MaxNodes)
}
