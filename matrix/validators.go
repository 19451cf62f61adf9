// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape, index and range checks.
//  - Keep kernels minimal by delegating guard logic here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Validators accept Shaped (non-generic) so one implementation serves every element type.
//  - Each validator assumes its Shaped argument is non-nil; nil guards live in the generic callers.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape checks that rows and cols are positive and that an element
// slice of length n fills exactly rows*cols cells.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(1).
func ValidateShape(rows, cols, n int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	if rows*cols != n {
		return validatorErrorf("ValidateShape", fmt.Errorf("%dx%d with %d elements: %w", rows, cols, n, ErrInvalidDimensions))
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures the inner dimensions of a×b agree.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Shaped) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("%dx%d × %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateRowIndex ensures 0 ≤ row < s.Rows().
//
// Errors: ErrRowOutOfRange (also matches ErrOutOfRange).
// Complexity: O(1).
func ValidateRowIndex(s Shaped, row int) error {
	if row < 0 || row >= s.Rows() {
		return validatorErrorf("ValidateRowIndex", fmt.Errorf("row %d of %d: %w", row, s.Rows(), ErrRowOutOfRange))
	}

	return nil
}

// validateSpan checks that [start, end) is a well-formed window inside a
// buffer of length n.
func validateSpan(start, end, n int) error {
	if start < 0 || end < start || end > n {
		return fmt.Errorf("range [%d,%d) of %d: %w", start, end, n, ErrOutOfRange)
	}

	return nil
}

// spansOverlap reports whether the half-open ranges [sa,ea) and [sb,eb)
// share at least one offset.
func spansOverlap(sa, ea, sb, eb int) bool {
	return max(sa, sb) < min(ea, eb)
}
