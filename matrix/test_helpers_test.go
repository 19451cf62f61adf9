// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and structural property checks.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// MustMatrix BUILDS an r×c *Matrix from a row-major flat slice or fails the test.
func MustMatrix(t testing.TB, r, c int, vals []float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.NewMatrix(r, c, vals)
	if err != nil {
		t.Fatalf("NewMatrix(%d,%d): %v", r, c, err)
	}

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.NewIdentity[float64](n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// RandFilled RETURNS a new r×c matrix filled with deterministic U(-1,1).
//
// Determinism:
//   - Deterministic per seed.
func RandFilled(t testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return MustMatrix(t, r, c, vals)
}

// MustDecompose runs matrix.Decompose or fails the test.
func MustDecompose(t testing.TB, a *matrix.Matrix[float64]) *matrix.LUResult[float64] {
	t.Helper()
	res, err := matrix.Decompose(a)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}

	return res
}

// near reports |a-b| <= delta; delta==0 demands exact equality.
func near(a, b, delta float64) bool {
	if delta == 0 {
		return a == b
	}

	return math.Abs(a-b) <= delta
}

// propUnitLowerTriangular checks diag(L)=1 and L[i,j]=0 for j>i.
func propUnitLowerTriangular(t *testing.T, L *matrix.Matrix[float64]) {
	t.Helper()

	if L.Cols() != L.Rows() {
		t.Fatalf("L must be square, got %dx%d", L.Rows(), L.Cols())
	}
	n := L.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		if v := L.At(i, i); v != 1 {
			t.Fatalf("diag(L)[%d]: want 1, got: %.6g", i, v)
		}
		for j = i + 1; j < n; j++ {
			if v := L.At(i, j); v != 0 {
				t.Fatalf("upper(L)[%d,%d]: want 0, got: %.6g", i, j, v)
			}
		}
	}
}

// propPermutation checks P is square 0/1 with exactly one 1 per row and column.
func propPermutation(t *testing.T, P *matrix.Matrix[float64]) {
	t.Helper()

	n := P.Rows()
	if P.Cols() != n {
		t.Fatalf("P must be square, got %dx%d", n, P.Cols())
	}
	colHits := make([]int, n)
	var i, j, rowHits int
	for i = 0; i < n; i++ {
		rowHits = 0
		for j = 0; j < n; j++ {
			switch P.At(i, j) {
			case 1:
				rowHits++
				colHits[j]++
			case 0:
			default:
				t.Fatalf("P[%d,%d]: want 0 or 1, got: %.6g", i, j, P.At(i, j))
			}
		}
		if rowHits != 1 {
			t.Fatalf("P row %d: want exactly one 1, got %d", i, rowHits)
		}
	}
	for j = 0; j < n; j++ {
		if colHits[j] != 1 {
			t.Fatalf("P col %d: want exactly one 1, got %d", j, colHits[j])
		}
	}
}

// propEchelon checks that every entry strictly below a pivot is zero within
// delta and that pivot rows increase with the column index.
func propEchelon(t *testing.T, U *matrix.Matrix[float64], pivots []int, delta float64) {
	t.Helper()

	last := -1
	for col, p := range pivots {
		if p < 0 {
			continue
		}
		if p <= last {
			t.Fatalf("pivot rows must increase: col %d has row %d after row %d", col, p, last)
		}
		last = p
		if U.At(p, col) == 0 {
			t.Fatalf("pivot U[%d,%d] is zero", p, col)
		}
		for i := p + 1; i < U.Rows(); i++ {
			if !near(U.At(i, col), 0, delta) {
				t.Fatalf("below pivot U[%d,%d]: want 0 (±%.1e), got: %.6g", i, col, delta, U.At(i, col))
			}
		}
	}
}

// propReconstructionLU verifies P·A ≈ L·U within delta.
func propReconstructionLU(t *testing.T, A *matrix.Matrix[float64], res *matrix.LUResult[float64], delta float64) {
	t.Helper()

	pa, lu, err := matrix.Reconstruct(A, res)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	ok, err := matrix.AllClose(pa, lu, 0, delta)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("P·A != L·U within %.1e\nP·A=\n%sL·U=\n%s", delta, pa, lu)
	}
}
