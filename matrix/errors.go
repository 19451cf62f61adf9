// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w")
// at the detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> range overlap -> range length.

var (
	// ErrInvalidDimensions is returned when a constructor receives rows<=0,
	// cols<=0, or an element slice whose length is not rows*cols.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row, column, or linear offset)
	// lies outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRangeOverlap is returned by SwapRange/CombineRange when the two source
	// ranges share at least one element.
	ErrRangeOverlap = errors.New("matrix: overlapping ranges")

	// ErrRangeLengthMismatch is returned when ranges passed to a bulk range
	// primitive differ in length.
	ErrRangeLengthMismatch = errors.New("matrix: range length mismatch")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. vector
	// arithmetic between different lengths or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix or vector was passed in.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrUnknownOp is returned when a RowOp carries a kind outside
	// {OpExchange, OpScale, OpScaledAdd}.
	ErrUnknownOp = errors.New("matrix: unknown row operation")

	// ErrSingular is returned by Solve and Inverse when U has a zero pivot.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf tolerance passed to AllClose.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrRowOutOfRange is the row-level flavour of ErrOutOfRange returned by the
// row algebra. errors.Is(err, ErrOutOfRange) also holds for it.
var ErrRowOutOfRange = fmt.Errorf("%w: row", ErrOutOfRange)
