// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const (
	opVecAdd = "Vector.Add"
	opVecSub = "Vector.Sub"
	opVecMul = "Vector.Mul"
)

// Vector owns a single-column Dense and its Euclidean norm, cached at
// construction. The storage is not exposed for writing, so the norm always
// matches the elements. Arithmetic is element-wise and returns a new Vector.
//
// Go has no implicit numeric promotion, so both operands of a binary
// operation share T; widen explicitly with ConvertVector first.
type Vector[T Number] struct {
	d    *Dense[T]
	norm float64
}

var (
	_ Shaped       = (*Vector[float64])(nil)
	_ fmt.Stringer = (*Vector[float64])(nil)
)

// NewVector builds an n×1 vector from a copy of data and computes its norm.
//
// Errors:
//   - ErrInvalidDimensions when data is empty.
func NewVector[T Number](data []T) (*Vector[T], error) {
	d, err := NewDense(len(data), 1, data)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Vector[T]{d: d, norm: euclidean(d.data)}, nil
}

// euclidean computes sqrt(Σ x²) in float64.
func euclidean[T Number](xs []T) float64 {
	var total float64
	for _, x := range xs {
		total += float64(x) * float64(x)
	}

	return math.Sqrt(total)
}

// Norm returns the Euclidean norm computed at construction.
func (v *Vector[T]) Norm() float64 { return v.norm }

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T { return v.d.Data() }

// Rows returns the element count.
func (v *Vector[T]) Rows() int { return v.d.r }

// Cols is always 1.
func (v *Vector[T]) Cols() int { return v.d.c }

// Shape returns (Len(), 1).
func (v *Vector[T]) Shape() (rows, cols int) { return v.d.Shape() }

// Len returns the element count.
func (v *Vector[T]) Len() int { return len(v.d.data) }

// At returns the element at (row, col); col must be 0. Not re-validated.
func (v *Vector[T]) At(row, col int) T { return v.d.At(row, col) }

// AtIndex returns the i-th element. Not re-validated.
func (v *Vector[T]) AtIndex(i int) T { return v.d.data[i] }

// String renders one element per line, like Dense.
func (v *Vector[T]) String() string { return v.d.String() }

// zip applies f pairwise and wraps the result into a fresh Vector.
func (v *Vector[T]) zip(w *Vector[T], tag string, f func(a, b T) T) (*Vector[T], error) {
	if v == nil || w == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	if v.Len() != w.Len() {
		return nil, matrixErrorf(tag, fmt.Errorf("lengths %d and %d: %w", v.Len(), w.Len(), ErrDimensionMismatch))
	}
	out := make([]T, v.Len())
	for i := range out {
		out[i] = f(v.d.data[i], w.d.data[i])
	}

	return NewVector(out)
}

// Add returns v + w.
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) {
	return v.zip(w, opVecAdd, func(a, b T) T { return a + b })
}

// Sub returns v - w.
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) {
	return v.zip(w, opVecSub, func(a, b T) T { return a - b })
}

// Mul returns the Hadamard (element-wise) product v ⊙ w. It is not a dot product.
func (v *Vector[T]) Mul(w *Vector[T]) (*Vector[T], error) {
	return v.zip(w, opVecMul, func(a, b T) T { return a * b })
}

// Neg returns -v. For unsigned T this wraps modulo 2^n, as Go arithmetic does.
func (v *Vector[T]) Neg() *Vector[T] {
	out := make([]T, v.Len())
	for i, x := range v.d.data {
		out[i] = -x
	}
	// len(out) == v.Len() > 0, so construction cannot fail.
	neg, _ := NewVector(out)

	return neg
}

// ConvertVector returns a copy of v with every element converted to U.
func ConvertVector[U, T Number](v *Vector[T]) *Vector[U] {
	out := make([]U, v.Len())
	for i, x := range v.d.data {
		out[i] = U(x)
	}
	cv, _ := NewVector(out)

	return cv
}
