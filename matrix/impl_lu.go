// SPDX-License-Identifier: MIT

// Package matrix - LU decomposition with first-non-zero partial pivoting.
//
// Purpose:
//   - Factor any r×c matrix A into P·A = L·U, where P is an r×r permutation,
//     L is r×r unit-lower-triangular and U (r×c) is in row-echelon form.
//   - Record on U every Exchange and ScaledAdd applied to reach it.
//
// Numeric policy:
//   - Pivot and skip tests use exact comparison with zero; there is no epsilon.
//     A near-zero float that is not literally 0 is accepted as a pivot. This is
//     a known limitation: tightening it would change results on marginal input.
//   - Entries eliminated below a pivot are whatever x + f*p yields in floating
//     point; they are not forced to zero, so U's log replays to U bit-for-bit.
//
// Determinism:
//   - Fixed column-then-row sweep, no randomness, no shared state; concurrent
//     calls on different inputs need no synchronization.

package matrix

// skippedColumn marks a column with no pivot in LUResult.PivotColumns.
const skippedColumn = -1

// LUResult holds the factors of one decomposition. Accessors return deep
// copies so the result stays immutable.
type LUResult[T Scalar] struct {
	p, l, u *Matrix[T]
	pivots  []int // pivots[col] = pivot row, or -1 when col was skipped
	rank    int
}

// P returns a copy of the r×r permutation matrix.
func (res *LUResult[T]) P() *Matrix[T] { return res.p.Clone() }

// L returns a copy of the r×r unit-lower-triangular factor.
func (res *LUResult[T]) L() *Matrix[T] { return res.l.Clone() }

// U returns a copy of the row-echelon factor, including its row-operation log.
func (res *LUResult[T]) U() *Matrix[T] { return res.u.Clone() }

// Operations returns U's row-operation log in application order.
func (res *LUResult[T]) Operations() []RowOp[T] { return res.u.Operations() }

// PivotColumns returns, per column of A, the U row holding its pivot, or -1
// when the column was skipped.
func (res *LUResult[T]) PivotColumns() []int {
	cp := make([]int, len(res.pivots))
	copy(cp, res.pivots)

	return cp
}

// Rank returns the number of pivots placed.
func (res *LUResult[T]) Rank() int { return res.rank }

// LU is the method form of Decompose.
func (m *Matrix[T]) LU() (*LUResult[T], error) { return Decompose(m) }

// Decompose factors a into {P, L, U} with P·A = L·U.
// MAIN DESCRIPTION:
//   - Column-by-column sweep keeping a pivot cursor: the next row able to host a pivot.
//
// Implementation:
//   - Stage 1: U := clone(A) with an empty log; L := I_r; P := I_r; cursor := 0.
//   - Stage 2: for each column, find the first row ≥ cursor with a non-zero
//     entry. None → column skipped, cursor unchanged.
//   - Stage 3: if that row is not the cursor, exchange it with the cursor in U
//     (logged) and in P, and swap the multipliers already stored in L columns
//     [0, cursor) between the two rows.
//   - Stage 4: eliminate every non-zero entry below the pivot with a logged
//     ScaledAdd and store the multiplier in L; then advance the cursor.
//
// Behavior highlights:
//   - Rectangular and rank-deficient inputs never fail; trailing rows of U
//     are zero in the unpivoted columns.
//   - a is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r^2 * c), Space O(r*c + r^2).
func Decompose[T Scalar](a *Matrix[T]) (*LUResult[T], error) {
	if a == nil || a.Dense == nil {
		return nil, matrixErrorf(opLU, ErrNilMatrix)
	}

	r, c := a.Shape()
	u := a.cloneFresh()
	l, err := NewIdentity[T](r)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	p, err := NewIdentity[T](r)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	pivots := make([]int, c)
	cursor := 0
	var (
		col, row, found int
		factor          T
	)
	for col = 0; col < c; col++ {
		found = u.firstNonZero(col, cursor)
		if found < 0 {
			pivots[col] = skippedColumn
			continue
		}

		if found != cursor {
			if err = u.Apply(Exchange[T](found, cursor)); err != nil {
				return nil, matrixErrorf(opLU, err)
			}
			if err = p.RowExchange(found, cursor); err != nil {
				return nil, matrixErrorf(opLU, err)
			}
			// Only columns left of the cursor hold multipliers yet.
			if cursor > 0 {
				if err = l.SwapRange(found*r, found*r+cursor, cursor*r, cursor*r+cursor); err != nil {
					return nil, matrixErrorf(opLU, err)
				}
			}
		}
		pivots[col] = cursor

		for row = cursor + 1; row < r; row++ {
			if u.At(row, col) == 0 {
				continue
			}
			factor = -u.At(row, col) / u.At(cursor, col)
			if err = u.Apply(ScaledAdd(row, cursor, factor)); err != nil {
				return nil, matrixErrorf(opLU, err)
			}
			l.Set(row, cursor, -factor)
		}
		cursor++
	}

	return &LUResult[T]{p: p, l: l, u: u, pivots: pivots, rank: cursor}, nil
}

// firstNonZero returns the first row in [from, Rows()) whose entry in col is
// non-zero, or -1.
func (m *Matrix[T]) firstNonZero(col, from int) int {
	for row := from; row < m.r; row++ {
		if m.At(row, col) != 0 {
			return row
		}
	}

	return -1
}

// Verify returns max |(P·A − L·U)[i,j]| for the input a this result was
// computed from.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a is not the decomposed shape).
func (res *LUResult[T]) Verify(a *Matrix[T]) (T, error) {
	if a == nil || a.Dense == nil {
		return 0, matrixErrorf(opVerify, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, res.u); err != nil {
		return 0, matrixErrorf(opVerify, err)
	}
	pa, err := Mul(res.p, a)
	if err != nil {
		return 0, matrixErrorf(opVerify, err)
	}
	lu, err := Mul(res.l, res.u)
	if err != nil {
		return 0, matrixErrorf(opVerify, err)
	}

	var worst, diff T
	for idx := range pa.data {
		diff = pa.data[idx] - lu.data[idx]
		if diff < 0 {
			diff = -diff
		}
		if diff > worst {
			worst = diff
		}
	}

	return worst, nil
}
