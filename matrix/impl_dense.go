// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & range primitives.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Offer the bulk primitives row algebra is built on: SwapRange and CombineRange.
//   - Keep element access cheap: At/Set do no re-validation beyond what construction guaranteed.
//
// AI-Hints:
//   - Use Lookup when indices come from outside the package; At is for hot loops.
//   - CombineRange is the single axpy kernel; build new row algebra on it instead of new loops.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At/Set: O(1); SwapRange/CombineRange: O(len); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxLookup  = "Lookup"       // method tag used in error wrappers
	ctxSwap    = "SwapRange"    // method tag used in error wrappers
	ctxCombine = "CombineRange" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// Dense is the row-major storage core shared by Matrix and Vector.
//   - r,c hold dimensions (both > 0 once constructed).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for Shaped & fmt.Stringer conformance.
var (
	_ Shaped       = (*Dense[float64])(nil)
	_ fmt.Stringer = (*Dense[float64])(nil)
)

// NewDense creates an r×c Dense that owns a copy of data (row-major).
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0, cols>0 and len(data)==rows*cols.
//   - Stage 2: copy data into a fresh buffer so the caller's slice stays independent.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int, data []T) (*Dense[T], error) {
	if err := ValidateShape(rows, cols, len(data)); err != nil {
		return nil, err
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewZeroDense creates an r×c zero-filled Dense.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewZeroDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, validatorErrorf("NewZeroDense", fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	// make() zero-fills deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (d *Dense[T]) Rows() int { return d.r }

// Cols returns the column count. Complexity: O(1).
func (d *Dense[T]) Cols() int { return d.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (d *Dense[T]) Shape() (rows, cols int) { return d.r, d.c }

// Len returns the number of stored elements (rows*cols).
func (d *Dense[T]) Len() int { return len(d.data) }

// At returns the element at (row, col). Indices are not re-validated: an
// out-of-range row panics on the slice bound, an out-of-range col reads a
// neighbouring cell. Use Lookup for untrusted coordinates.
func (d *Dense[T]) At(row, col int) T { return d.data[row*d.c+col] }

// AtIndex returns the element at a linear row-major offset.
func (d *Dense[T]) AtIndex(idx int) T { return d.data[idx] }

// Set stores v at (row, col) without re-validation.
func (d *Dense[T]) Set(row, col int, v T) { d.data[row*d.c+col] = v }

// SetIndex stores v at a linear row-major offset.
func (d *Dense[T]) SetIndex(idx int, v T) { d.data[idx] = v }

// ScaleIndex multiplies the element at idx by s in place.
func (d *Dense[T]) ScaleIndex(idx int, s T) { d.data[idx] *= s }

// Lookup returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (d *Dense[T]) Lookup(row, col int) (T, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		var zero T
		return zero, denseErrorf(ctxLookup, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}

	return d.data[row*d.c+col], nil
}

// SwapRange exchanges the half-open ranges [startA,endA) and [startB,endB)
// element by element.
// MAIN DESCRIPTION:
//   - Bulk primitive behind row exchange.
//
// Implementation:
//   - Stage 1: reject overlapping ranges (max(startA,startB) < min(endA,endB)).
//   - Stage 2: reject unequal lengths and ranges leaving the buffer.
//   - Stage 3: swap pairwise in ascending offset order.
//
// Errors:
//   - ErrRangeOverlap, ErrRangeLengthMismatch, ErrOutOfRange.
//
// Complexity:
//   - Time O(endA-startA), Space O(1).
func (d *Dense[T]) SwapRange(startA, endA, startB, endB int) error {
	if spansOverlap(startA, endA, startB, endB) {
		return denseErrorf(ctxSwap, fmt.Errorf("[%d,%d) and [%d,%d): %w", startA, endA, startB, endB, ErrRangeOverlap))
	}
	if endA-startA != endB-startB {
		return denseErrorf(ctxSwap, ErrRangeLengthMismatch)
	}
	if err := validateSpan(startA, endA, len(d.data)); err != nil {
		return denseErrorf(ctxSwap, err)
	}
	if err := validateSpan(startB, endB, len(d.data)); err != nil {
		return denseErrorf(ctxSwap, err)
	}

	a := d.data[startA:endA]
	b := d.data[startB:endB]
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}

	return nil
}

// CombineRange computes dest[i] = a[i] + s*b[i] over three equal-length
// half-open ranges (axpy-style fused scaled add).
// MAIN DESCRIPTION:
//   - The single low-level kernel behind RowScaledAdd and LU elimination.
//
// Implementation:
//   - Stage 1: reject overlapping A/B source ranges.
//   - Stage 2: reject unequal lengths, then ranges leaving the buffer.
//   - Stage 3: ascending loop; the product is rounded to T before the add.
//
// Behavior highlights:
//   - dest may coincide with A (the elimination case): each offset is read
//     before it is written.
//   - The explicit T(s*b[i]) conversion forbids FMA fusion, so results are
//     bit-identical across architectures and replays.
//
// Errors:
//   - ErrRangeOverlap, ErrRangeLengthMismatch, ErrOutOfRange.
//
// Complexity:
//   - Time O(len), Space O(1).
func (d *Dense[T]) CombineRange(startA, endA, startB, endB, startD, endD int, s T) error {
	if spansOverlap(startA, endA, startB, endB) {
		return denseErrorf(ctxCombine, fmt.Errorf("[%d,%d) and [%d,%d): %w", startA, endA, startB, endB, ErrRangeOverlap))
	}
	n := endA - startA
	if endB-startB != n || endD-startD != n {
		return denseErrorf(ctxCombine, fmt.Errorf("lengths %d/%d/%d: %w", n, endB-startB, endD-startD, ErrRangeLengthMismatch))
	}
	for _, span := range [3][2]int{{startA, endA}, {startB, endB}, {startD, endD}} {
		if err := validateSpan(span[0], span[1], len(d.data)); err != nil {
			return denseErrorf(ctxCombine, err)
		}
	}

	for i := 0; i < n; i++ {
		d.data[startD+i] = d.data[startA+i] + T(s*d.data[startB+i])
	}

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (d *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(d.data))
	copy(cp, d.data)

	return &Dense[T]{r: d.r, c: d.c, data: cp}
}

// Data returns a copy of the row-major buffer.
func (d *Dense[T]) Data() []T {
	cp := make([]T, len(d.data))
	copy(cp, d.data)

	return cp
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write %v-formatted values with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (d *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < d.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * d.c
		for j = 0; j < d.c; j++ {
			fmt.Fprintf(&b, "%v", d.data[base+j])
			if j+1 < d.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
