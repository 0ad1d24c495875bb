// SPDX-License-Identifier: MIT
// Package matrix: Fixed operations whose result shape differs from the
// receiver's. Go methods cannot introduce type parameters, so these are
// package functions; their signatures carry the shape contracts.

package matrix

import (
	"context"
	"fmt"

	"github.com/katalvlaran/matrices/arith"
	"github.com/katalvlaran/matrices/parallel"
)

// Mul multiplies a (R×C) by b (K×R) and returns the R×R product.
//
// The right operand's column type must equal the left operand's row type
// (the inverted rule, as for Dense.Mul); any other pairing does not compile.
// The inner index runs over C, so b needs at least C rows.
//
// Errors:
//   - ErrOutOfRange if K < C.
//   - ErrOverflow.
//
// Complexity: O(R²·C).
func Mul[T arith.Scalar, R, C, K Dim](a *Fixed[T, R, C], b *Fixed[T, K, R]) (*Fixed[T, R, R], error) {
	rows, cols := a.Rows(), a.Cols()
	if err := validateMulShape(rows, cols, b.Rows(), b.Cols()); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := newFixedZero[T, R, R]()
	if err := mulInto(res.data, a.store(), rows, cols, b.store(), rows); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// MulParallel computes exactly the same product as Mul on a bounded worker
// pool configured by opts, blocking until every cell is written.
//
// Errors:
//   - ErrOutOfRange if K < C.
//   - ErrOverflow, or ctx.Err() when ctx is canceled.
func MulParallel[T arith.Scalar, R, C, K Dim](ctx context.Context, a *Fixed[T, R, C], b *Fixed[T, K, R],
	opts ...parallel.Option) (*Fixed[T, R, R], error) {
	rows, cols := a.Rows(), a.Cols()
	if err := validateMulShape(rows, cols, b.Rows(), b.Cols()); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	res := newFixedZero[T, R, R]()
	// Both operands are resolved before the fan-out; workers only read them.
	as, bs := a.store(), b.store()
	if err := mulIntoParallel(ctx, parallel.New(opts...), res.data, as, rows, cols, bs, rows); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	return res, nil
}

// Submatrix copies the SR×SC block starting at row R0, column C0. Size and
// offsets are type arguments, e.g. Submatrix[D2, D2, D1, D1](m); O0 is the
// zero offset.
//
// Errors:
//   - ErrInvalidSubmatrixBounds unless R0+SR <= R and C0+SC <= C. The check
//     depends on types only, so a given instantiation either always or never
//     fails.
func Submatrix[SR, SC, R0, C0 Dim, T arith.Scalar, R, C Dim](m *Fixed[T, R, C]) (*Fixed[T, SR, SC], error) {
	subRows, subCols := sizeOf[SR](), sizeOf[SC]()
	startRow, startCol := sizeOf[R0](), sizeOf[C0]()
	if subRows <= 0 || subCols <= 0 {
		return nil, matrixErrorf(opSubmatrix,
			fmt.Errorf("empty %dx%d window: %w", subRows, subCols, ErrInvalidSubmatrixBounds))
	}
	if err := validateWindow(m.Rows(), m.Cols(), subRows, subCols, startRow, startCol); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	res := newFixedZero[T, SR, SC]()
	copyWindow(res.data, m.store(), m.Cols(), subRows, subCols, startRow, startCol)

	return res, nil
}

// Determinant computes det(m) by Laplace expansion along the first row.
// Complexity: O(N!) - intended for small N.
func Determinant[T arith.Scalar, N Dim](m *Fixed[T, N, N]) float64 {
	return laplaceDeterminant(toFloat64s(m.store()), m.Rows())
}

// InverseCofactor inverts m through the adjugate: each cell (c, r) of the
// result is (-1)^(r+c)·det(minor(r, c)) / det(m).
//
// Errors:
//   - ErrNonInvertible (det(m) == 0 exactly; also matches ErrSingular).
//
// Complexity: O(N²·(N-1)!).
func InverseCofactor[T arith.Scalar, N Dim](m *Fixed[T, N, N]) (*Fixed[float64, N, N], error) {
	inv, err := cofactorInverse(toFloat64s(m.store()), m.Rows())
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return &Fixed[float64, N, N]{data: inv}, nil
}

// InverseGaussJordan inverts m with the same Gauss-Jordan kernel as
// Dense.InverseWith. An optional policy overrides DefaultPivoting; only the
// first one is used.
//
// Errors:
//   - ErrSingular (zero pivot under the chosen policy).
//
// Complexity: O(N³).
func InverseGaussJordan[T arith.Scalar, N Dim](m *Fixed[T, N, N], policy ...Pivoting) (*Fixed[float64, N, N], error) {
	p := DefaultPivoting
	if len(policy) > 0 {
		p = policy[0]
	}
	inv, err := gaussJordan(toFloat64s(m.store()), m.Rows(), p)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return &Fixed[float64, N, N]{data: inv}, nil
}
