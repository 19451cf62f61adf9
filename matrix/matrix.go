// SPDX-License-Identifier: MIT

// Package matrix - Matrix: Dense storage plus its row-operation log.
//
// What & Why:
//
//	Matrix owns a Dense buffer (composition, not inheritance) and the OpLog of
//	row operations applied through Apply. The LU routine is the main writer of
//	that log; plain row algebra (RowScale/RowExchange/RowScaledAdd) mutates
//	without recording.
//
// Complexity:
//
//	Constructors are O(r*c). Clone is O(r*c + len(log)).
package matrix

import "fmt"

// Matrix is a row-major matrix of floating-point elements with an attached
// row-operation log. The embedded *Dense provides element access and the
// bulk range primitives.
type Matrix[T Scalar] struct {
	*Dense[T]
	log OpLog[T]
}

var _ Shaped = (*Matrix[float64])(nil)

// NewMatrix builds a rows×cols matrix from row-major data (copied).
//
// Errors:
//   - ErrInvalidDimensions when rows<=0, cols<=0 or len(data) != rows*cols.
func NewMatrix[T Scalar](rows, cols int, data []T) (*Matrix[T], error) {
	d, err := NewDense(rows, cols, data)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Matrix[T]{Dense: d}, nil
}

// NewZeros builds a rows×cols zero matrix.
func NewZeros[T Scalar](rows, cols int) (*Matrix[T], error) {
	d, err := NewZeroDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Matrix[T]{Dense: d}, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Scalar](n int) (*Matrix[T], error) {
	m, err := NewZeros[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewMatrixFromRows builds a matrix from a slice of equal-length rows.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or ragged.
func NewMatrixFromRows[T Scalar](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("no rows: %w", ErrInvalidDimensions))
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrInvalidDimensions))
		}
		data = append(data, row...)
	}

	return NewMatrix(len(rows), cols, data)
}

// Clone returns a deep copy of storage and log.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{Dense: m.Dense.Clone(), log: m.log.clone()}
}

// cloneFresh returns a deep copy of the storage with an empty log.
func (m *Matrix[T]) cloneFresh() *Matrix[T] {
	return &Matrix[T]{Dense: m.Dense.Clone()}
}

// Log exposes the matrix's row-operation log for reading.
func (m *Matrix[T]) Log() *OpLog[T] { return &m.log }

// Operations returns a copy of the recorded row operations in order.
func (m *Matrix[T]) Operations() []RowOp[T] { return m.log.All() }
