// SPDX-License-Identifier: MIT

// Package matrix implements two matrix kinds over any arith.Scalar element
// type, sharing one set of row-major kernels:
//
//   - Dense[T]: dimensions are runtime values; shape contracts are validated
//     on every call and violations return sentinel errors.
//   - Fixed[T, R, C]: dimensions are types (R, C implement Dim); operands of
//     Add/Sub/Mul/inversion must have matching types, so shape mismatches do
//     not compile.
//
// Both kinds satisfy Matrix[T] and store rows*cols elements in row-major
// order; element (r, c) lives at index r*cols + c. Every shape-changing
// operation returns a new matrix.
//
// Conventions shared by both kinds:
//
//   - Construction without data yields an identity-like matrix: ones on the
//     diagonal up to min(rows, cols), zeros elsewhere. A freshly sized matrix
//     is NOT all-zero.
//   - Integer arithmetic is overflow checked through package arith and fails
//     with ErrOverflow; floating arithmetic never fails.
//   - Matrix multiplication uses the inverted shape rule
//     left.Rows() == right.Cols() (not left.Cols() == right.Rows()). The result
//     is left.Rows() × right.Cols(). CSV-driven callers depend on this rule.
//   - Gauss-Jordan inversion defaults to PivotNaive: a zero on the diagonal
//     pivot path reports ErrSingular even when the matrix is invertible.
//     PivotPartial swaps rows instead.
//   - Determinants: Laplace expansion for Fixed (Determinant), LU elimination
//     for Dense (Dense.Determinant).
//
// The concurrent multiply (Dense.MulParallel, MulParallel) computes exactly the
// same cells as the sequential one on a bounded worker pool (package parallel).
package matrix
