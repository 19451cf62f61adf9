// Package matrix is a small dense linear-algebra kernel built around an LU
// decomposition that keeps an audit trail of its row operations.
//
// The matrix package provides:
//
//   - Dense: row-major storage with SwapRange and CombineRange (axpy) primitives.
//   - Matrix: Dense plus whole-row algebra (RowScale, RowExchange,
//     RowScaledAdd) and an append-only OpLog fed by Apply.
//   - Decompose / Matrix.LU: P·A = L·U with first-non-zero pivoting for
//     square, rectangular and rank-deficient inputs; U carries the log.
//   - LUResult.Solve and Inverse: substitution on the pivoted factors.
//   - Vector: element-wise Add, Sub, Neg and Hadamard Mul with a cached norm.
//   - Mul, AllClose and LUResult.Verify for checking factorizations, and
//     AsGonum/ToGonumDense/FromGonum for gonum interop.
//
// Pivot tests compare with zero exactly; see impl_lu.go for the numeric policy.
//
// See the examples in this package for usage patterns.
package matrix
