// SPDX-License-Identifier: MIT
// Package matrix - linear solves on top of an LU result.
// Solve and Inverse reuse the P, L, U factors via forward/backward substitution.

package matrix

import "fmt"

// Solve returns x with A·x = b, where A is the square matrix res was
// computed from.
// Blueprint:
//
//	Stage 1 (Validate): A square, len(b) == n, rank == n.
//	Stage 2 (Permute):  y := P·b.
//	Stage 3 (Forward):  L·z = y (unit diagonal, no division).
//	Stage 4 (Backward): U·x = z.
//
// Errors:
//   - ErrDimensionMismatch (non-square A or len(b) != n), ErrSingular.
//
// Complexity: O(n²) time, O(n) memory.
func (res *LUResult[T]) Solve(b []T) ([]T, error) {
	n := res.u.r
	if err := res.solvable(); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if len(b) != n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("len(b)=%d, n=%d: %w", len(b), n, ErrDimensionMismatch))
	}

	x := make([]T, n)
	res.substitute(b, x, make([]T, n))

	return x, nil
}

// Inverse returns A⁻¹ for square, non-singular A.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
func Inverse[T Scalar](a *Matrix[T]) (*Matrix[T], error) {
	res, err := Decompose(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = res.solvable(); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := a.r
	inv, err := NewZeros[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]T, n)
	x := make([]T, n)
	scratch := make([]T, n)
	var i, col int
	for col = 0; col < n; col++ {
		clear(e)
		e[col] = 1
		res.substitute(e, x, scratch)
		for i = 0; i < n; i++ {
			inv.Set(i, col, x[i])
		}
	}

	return inv, nil
}

func (res *LUResult[T]) solvable() error {
	r, c := res.u.Shape()
	if r != c {
		return fmt.Errorf("non-square %dx%d: %w", r, c, ErrDimensionMismatch)
	}
	if res.rank < r {
		return fmt.Errorf("rank %d < %d: %w", res.rank, r, ErrSingular)
	}

	return nil
}

// substitute writes the solution of L·U·x = P·b into x; y is scratch.
// Callers guarantee a square full-rank result and len(b)==len(x)==len(y)==n.
func (res *LUResult[T]) substitute(b, x, y []T) {
	n := len(b)
	var (
		i, k int
		sum  T
	)
	// P·b: row i of P has its single 1 in column k.
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			if res.p.At(i, k) == 1 {
				y[i] = b[k]
				break
			}
		}
	}

	for i = 0; i < n; i++ {
		sum = y[i]
		for k = 0; k < i; k++ {
			sum -= res.l.At(i, k) * y[k]
		}
		y[i] = sum
	}

	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= res.u.At(i, k) * x[k]
		}
		x[i] = sum / res.u.At(i, i)
	}
}
