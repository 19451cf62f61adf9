// Package matrix_test contains unit tests for the product and comparison kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestMulKnownValues(t *testing.T) {
	a := MustMatrix(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := MustMatrix(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data())
	assert.Zero(t, c.Log().Len())

	p, err := matrix.Product(b, a)
	require.NoError(t, err)
	rows, cols := p.Shape()
	assert.Equal(t, [2]int{3, 3}, [2]int{rows, cols})
}

func TestMulErrors(t *testing.T) {
	a := MustMatrix(t, 2, 3, make([]float64, 6))

	_, err := matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulIdentity(t *testing.T) {
	a := RandFilled(t, 4, 4, 7)
	c, err := matrix.Mul(MustIdentity(t, 4), a)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), c.Data())
}

func TestAllClose(t *testing.T) {
	a := MustMatrix(t, 1, 3, []float64{1, 2, 3})
	b := MustMatrix(t, 1, 3, []float64{1, 2, 3 + 1e-10})

	ok, err := matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 1e-9, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, MustMatrix(t, 3, 1, []float64{1, 2, 3}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLikeConstructors(t *testing.T) {
	a := MustMatrix(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 6), z.Data())

	id, err := matrix.IdentityLike(a)
	require.NoError(t, err)
	assert.Equal(t, MustIdentity(t, 2).Data(), id.Data())

	_, err = matrix.ZerosLike[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestReconstructNilInputs(t *testing.T) {
	A := MustMatrix(t, 2, 2, []float64{0, 1, 1, 0})
	res := MustDecompose(t, A)

	_, _, err := matrix.Reconstruct(nil, res)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = matrix.Reconstruct[float64](A, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	pa, lu, err := matrix.Reconstruct(A, res)
	require.NoError(t, err)
	assert.Equal(t, pa.Data(), lu.Data())
}
