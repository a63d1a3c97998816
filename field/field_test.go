package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/presses/field"
	"github.com/katalvlaran/presses/rational"
)

func TestGF2_Tables(t *testing.T) {
	t.Parallel()

	var f field.GF2
	for a := field.Bit(0); a <= 1; a++ {
		for b := field.Bit(0); b <= 1; b++ {
			assert.Equal(t, a^b, f.Add(a, b), "add %d %d", a, b)
			assert.Equal(t, a^b, f.Sub(a, b), "sub %d %d", a, b)
			assert.Equal(t, a&b, f.Mul(a, b), "mul %d %d", a, b)
		}
	}

	q, err := f.Div(1, 1)
	require.NoError(t, err)
	assert.Equal(t, field.Bit(1), q)
	_, err = f.Div(1, 0)
	assert.ErrorIs(t, err, field.ErrDivisionByZero)
}

func TestGF2_FromIntParity(t *testing.T) {
	t.Parallel()

	var f field.GF2
	assert.Equal(t, field.Bit(0), f.FromInt(4))
	assert.Equal(t, field.Bit(1), f.FromInt(7))
	assert.Equal(t, field.Bit(1), f.FromInt(-3))
	assert.True(t, f.IsZero(f.FromInt(-2)))

	v, ok := f.ToInt(f.One())
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestRationals_ExactDivisionAndToInt(t *testing.T) {
	t.Parallel()

	var f field.Rationals
	q, err := f.Div(f.FromInt(3), f.FromInt(6))
	require.NoError(t, err)
	assert.Equal(t, "1/2", q.String())

	_, ok := f.ToInt(q)
	assert.False(t, ok, "1/2 has no integer value")

	v, ok := f.ToInt(f.Add(q, q))
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, err = f.Div(f.One(), rational.Zero())
	assert.ErrorIs(t, err, field.ErrDivisionByZero)

	assert.True(t, f.Equal(f.Sub(f.Mul(q, f.FromInt(4)), f.FromInt(2)), f.Zero()))
	assert.Equal(t, "Q", f.Name())
}
