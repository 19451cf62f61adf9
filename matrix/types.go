// SPDX-License-Identifier: MIT

// Package matrix: element constraints and the read-only shape contract.
// This file intentionally contains ONLY type-level declarations; errors live
// in errors.go and validation lives in validators.go.
package matrix

// Integer enumerates the signed and unsigned integer kinds a Dense can store.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Scalar enumerates the floating-point kinds. Matrix and LU require a Scalar
// because elimination divides by the pivot.
type Scalar interface {
	~float32 | ~float64
}

// Number is the full element domain of Dense and Vector.
type Number interface {
	Integer | Scalar
}

// Shaped is the minimal read-only surface shared by Dense, Matrix and Vector.
// Validators accept it so they stay free of type parameters.
//
// Complexity: both methods are O(1).
type Shaped interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int
}
