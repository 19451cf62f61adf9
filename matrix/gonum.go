// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// AsGonum is a zero-copy read-only view; ToGonumDense and FromGonum copy.
// The view re-reads the underlying buffer on every At, so later row
// operations on the source matrix are visible through it.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const opFromGonum = "FromGonum"

// gonumView adapts *Matrix[T] to mat.Matrix.
type gonumView[T Scalar] struct {
	m *Matrix[T]
}

var _ mat.Matrix = gonumView[float64]{}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v gonumView[T]) Dims() (r, c int)    { return v.m.r, v.m.c }
func (v gonumView[T]) At(i, j int) float64 { return float64(v.m.At(i, j)) }
func (v gonumView[T]) T() mat.Matrix       { return mat.Transpose{Matrix: v} }

// AsGonum exposes m to gonum kernels without copying.
func AsGonum[T Scalar](m *Matrix[T]) mat.Matrix { return gonumView[T]{m: m} }

// ToGonumDense copies m into a freshly allocated *mat.Dense.
func ToGonumDense[T Scalar](m *Matrix[T]) *mat.Dense {
	data := make([]float64, len(m.data))
	for i, x := range m.data {
		data[i] = float64(x)
	}

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any gonum matrix into a new *Matrix[float64].
//
// Errors:
//   - ErrNilMatrix for a nil src; ErrInvalidDimensions for an empty one.
func FromGonum(src mat.Matrix) (*Matrix[float64], error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, ErrInvalidDimensions))
	}
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, src.At(i, j))
		}
	}

	return NewMatrix(r, c, data)
}
