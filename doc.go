// Package linalg is a small dense linear-algebra kernel: row-major
// matrix and vector storage plus an LU decomposition that records every
// elementary row operation it performs.
//
// What is inside?
//
//	matrix/       Dense storage, Matrix row algebra, RowOp log, LU, Vector
//	matfile/      binary matrix files, memory-mapped on load
//	internal/cli/ the lu command tree (cobra + viper)
//	cmd/lu/       the lu binary
//
// Quick example:
//
//	A, _ := matrix.NewMatrixFromRows([][]float64{{0, 2}, {1, 1}})
//	res, _ := matrix.Decompose(A)
//	fmt.Print(res.U().Log()) // Swap row 1 with 0
//
// Every factorization satisfies P·A = L·U; replaying res.Operations() on a
// copy of A reproduces U exactly.
//
//	go install github.com/katalvlaran/linalg/cmd/lu@latest
package linalg
