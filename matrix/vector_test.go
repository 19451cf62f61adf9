// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func mustVector[T matrix.Number](t *testing.T, xs ...T) *matrix.Vector[T] {
	t.Helper()
	v, err := matrix.NewVector(xs)
	require.NoError(t, err)

	return v
}

func TestVectorArithmetic(t *testing.T) {
	a := mustVector(t, 1.0, 2, 3)
	b := mustVector(t, 4.0, 5, 6)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, sum.Values())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -3, -3}, diff.Values())

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 10, 18}, prod.Values(), "element-wise, not dot")

	assert.Equal(t, []float64{-1, -2, -3}, a.Neg().Values())

	// operands untouched
	assert.Equal(t, []float64{1, 2, 3}, a.Values())
	assert.Equal(t, []float64{4, 5, 6}, b.Values())
}

func TestVectorLengthMismatch(t *testing.T) {
	a := mustVector(t, 1, 2, 3)
	b := mustVector(t, 4, 5)

	_, err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = b.Mul(a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVectorNorm(t *testing.T) {
	v := mustVector(t, 1, 2, 3)
	assert.InDelta(t, math.Sqrt(14), v.Norm(), 1e-15)

	w := mustVector(t, 3.0, 4.0)
	assert.Equal(t, 5.0, w.Norm())

	// Results carry their own norm.
	sum, err := w.Add(w)
	require.NoError(t, err)
	assert.Equal(t, 10.0, sum.Norm())
}

func TestVectorShape(t *testing.T) {
	v := mustVector(t, 1, 2, 3, 4)
	rows, cols := v.Shape()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 3, v.At(2, 0))

	_, err := matrix.NewVector([]int{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestVectorOwnsData(t *testing.T) {
	src := []float32{1, 2}
	v, err := matrix.NewVector(src)
	require.NoError(t, err)

	src[0] = 9
	out := v.Values()
	out[1] = 9
	assert.Equal(t, []float32{1, 2}, v.Values())
}

func TestConvertVectorWidens(t *testing.T) {
	ints := mustVector(t, 1, 2, 3)
	floats := mustVector(t, 0.5, 0.5, 0.5)

	sum, err := matrix.ConvertVector[float64](ints).Add(floats)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, sum.Values())
	assert.Equal(t, ints.Norm(), matrix.ConvertVector[float64](ints).Norm())
}

func TestVectorNegUnsignedWraps(t *testing.T) {
	v := mustVector[uint8](t, 1, 0, 255)
	assert.Equal(t, []uint8{255, 0, 1}, v.Neg().Values())
}

// The norm can only go stale if elements change after construction; the
// public surface offers reads only, and every result carries a fresh norm.
func TestVectorNormMatchesElements(t *testing.T) {
	v := mustVector(t, 3.0, 4.0)
	vals := v.Values()
	vals[0] = 30
	assert.Equal(t, 5.0, v.Norm())
	assert.Equal(t, 3.0, v.AtIndex(0))

	n := v.Neg()
	assert.Equal(t, 5.0, n.Norm())
	assert.Equal(t, "[-3]\n[-4]\n", n.String())
	assert.Equal(t, 2, n.Len())
	assert.Equal(t, [2]int{2, 1}, [2]int{n.Rows(), n.Cols()})
}
