// SPDX-License-Identifier: MIT
// Package matrix provides the product and comparison kernels used to check
// factorizations: Mul and AllClose. Both validate shapes up front and never
// mutate their operands.
//
// Notes:
//   - The LU kernel lives in impl_lu.go; row algebra lives in impl_row_algebra.go.
//   - All kernels return sentinels wrapped via matrixErrorf with an op* tag.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew      = "New"
	opMul      = "Mul"
	opAllClose = "AllClose"
	opLU       = "LU"
	opVerify   = "Verify"
	opSolve    = "Solve"
	opInverse  = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over the flat buffers, skipping zero A[i,k].
//
// Returns:
//   - *Matrix: fresh C with shape (r × c) and an empty log.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewZeros[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// AI-Hints:
//   - AllClose(a, b, 0, 0) is exact equality; use it for integer-valued fixtures.
func AllClose[T Scalar](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if a == nil || b == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var diff, absb float64
	for idx := range a.data {
		diff = math.Abs(float64(a.data[idx]) - float64(b.data[idx]))
		absb = math.Abs(float64(b.data[idx]))
		if diff > atol+rtol*absb {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
