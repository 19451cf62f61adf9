// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike[T Scalar](m *Matrix[T]) (*Matrix[T], error) {
	if m == nil || m.Dense == nil {
		return nil, matrixErrorf(opNew, ErrNilMatrix)
	}

	return NewZeros[T](m.r, m.c)
}

// IdentityLike returns I_r with r = Rows(m); the shape of L and P for m.
func IdentityLike[T Scalar](m *Matrix[T]) (*Matrix[T], error) {
	if m == nil || m.Dense == nil {
		return nil, matrixErrorf(opNew, ErrNilMatrix)
	}

	return NewIdentity[T](m.r)
}

// LUDecompose is an alias for Decompose.
func LUDecompose[T Scalar](m *Matrix[T]) (*LUResult[T], error) { return Decompose(m) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) { return Mul(a, b) }

// Reconstruct returns (P·A, L·U) for res and its input a, so callers can
// compare the two sides with AllClose or their own policy.
//
// Errors:
//   - ErrNilMatrix when a or res is nil.
func Reconstruct[T Scalar](a *Matrix[T], res *LUResult[T]) (pa, lu *Matrix[T], err error) {
	if a == nil || a.Dense == nil || res == nil {
		return nil, nil, matrixErrorf(opVerify, ErrNilMatrix)
	}
	if pa, err = Mul(res.p, a); err != nil {
		return nil, nil, err
	}
	if lu, err = Mul(res.l, res.u); err != nil {
		return nil, nil, err
	}

	return pa, lu, nil
}
