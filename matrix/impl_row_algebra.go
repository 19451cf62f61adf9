// SPDX-License-Identifier: MIT

// Package matrix - whole-row algebra on top of Dense range primitives.
//
// Purpose:
//   - RowScale, RowExchange, RowScaledAdd validate row indices and delegate to
//     ScaleIndex, SwapRange and CombineRange respectively.
//   - Apply runs one RowOp through the same algebra and appends it to the log.
//
// Behavior highlights:
//   - Row operations are not transactional: a failure mid-way leaves the
//     matrix as it was at the point of failure. Range validation happens
//     before the first write, so in practice failures leave rows untouched.

package matrix

import "fmt"

const (
	ctxRowScale     = "RowScale"
	ctxRowExchange  = "RowExchange"
	ctxRowScaledAdd = "RowScaledAdd"
	ctxApply        = "Apply"
)

// rowSpan returns the half-open linear range [row*c, row*c+c).
func (m *Matrix[T]) rowSpan(row int) (start, end int) {
	start = row * m.c
	return start, start + m.c
}

// RowScale multiplies every element of row by s.
//
// Errors:
//   - ErrRowOutOfRange when row ∉ [0, Rows()).
//
// Complexity: O(c).
func (m *Matrix[T]) RowScale(s T, row int) error {
	if err := ValidateRowIndex(m, row); err != nil {
		return matrixErrorf(ctxRowScale, err)
	}
	start, end := m.rowSpan(row)
	for idx := start; idx < end; idx++ {
		m.ScaleIndex(idx, s)
	}

	return nil
}

// RowExchange swaps rows a and b. a == b is a no-op.
//
// Errors:
//   - ErrRowOutOfRange when either index is out of bounds.
//
// Complexity: O(c).
func (m *Matrix[T]) RowExchange(a, b int) error {
	if err := ValidateRowIndex(m, a); err != nil {
		return matrixErrorf(ctxRowExchange, err)
	}
	if err := ValidateRowIndex(m, b); err != nil {
		return matrixErrorf(ctxRowExchange, err)
	}
	if a == b {
		return nil
	}
	sa, ea := m.rowSpan(a)
	sb, eb := m.rowSpan(b)
	if err := m.SwapRange(sa, ea, sb, eb); err != nil {
		return matrixErrorf(ctxRowExchange, err)
	}

	return nil
}

// RowScaledAdd stores rowA + s*rowB into dest, column by column.
//
// Errors:
//   - ErrRowOutOfRange when any of the three indices is out of bounds.
//   - ErrRangeOverlap when rowA == rowB (the source ranges coincide).
//
// Complexity: O(c).
func (m *Matrix[T]) RowScaledAdd(rowA, rowB int, s T, dest int) error {
	for _, row := range [3]int{rowA, rowB, dest} {
		if err := ValidateRowIndex(m, row); err != nil {
			return matrixErrorf(ctxRowScaledAdd, err)
		}
	}
	sa, ea := m.rowSpan(rowA)
	sb, eb := m.rowSpan(rowB)
	sd, ed := m.rowSpan(dest)
	if err := m.CombineRange(sa, ea, sb, eb, sd, ed, s); err != nil {
		return matrixErrorf(ctxRowScaledAdd, err)
	}

	return nil
}

// Apply performs op through the row algebra and, on success, appends it to
// the matrix's log.
//
// Errors:
//   - Whatever the underlying row operation returns.
//   - ErrUnknownOp for a Kind outside the three known kinds.
func (m *Matrix[T]) Apply(op RowOp[T]) error {
	var err error
	switch op.Kind {
	case OpExchange:
		err = m.RowExchange(op.Row1, op.Row2)
	case OpScale:
		err = m.RowScale(op.Scalar, op.Row1)
	case OpScaledAdd:
		err = m.RowScaledAdd(op.Row1, op.Row2, op.Scalar, op.Dest)
	default:
		err = fmt.Errorf("%v: %w", op.Kind, ErrUnknownOp)
	}
	if err != nil {
		return matrixErrorf(ctxApply, err)
	}
	m.log.append(op)

	return nil
}

// Replay applies ops in order via Apply and stops at the first failure.
// Replaying an LU factor's log on a fresh copy of the input reproduces that
// factor exactly.
func (m *Matrix[T]) Replay(ops []RowOp[T]) error {
	for i, op := range ops {
		if err := m.Apply(op); err != nil {
			return fmt.Errorf("Replay: op %d (%s): %w", i, op, err)
		}
	}

	return nil
}
