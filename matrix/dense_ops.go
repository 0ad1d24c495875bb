// SPDX-License-Identifier: MIT
// Package matrix: Dense facades. Every method validates shapes at run time,
// allocates a fresh result and delegates to the shared kernels.

package matrix

import (
	"context"

	"github.com/katalvlaran/matrices/parallel"
)

// Add returns the element-wise sum m + other.
//
// Errors:
//   - ErrDimensionMismatch (shapes differ).
//   - ErrOverflow (integer cell overflow).
//
// Complexity: O(r*c).
func (m *Dense[T]) Add(other *Dense[T]) (*Dense[T], error) {
	return m.zip(other, opAdd, addT[T])
}

// Sub returns the element-wise difference m - other.
// Errors as for Add.
func (m *Dense[T]) Sub(other *Dense[T]) (*Dense[T], error) {
	return m.zip(other, opSub, subT[T])
}

func (m *Dense[T]) zip(other *Dense[T], tag string, f func(T, T) (T, error)) (*Dense[T], error) {
	if err := validateSameShape(m.r, m.c, other.r, other.c); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res := newDenseZero[T](m.r, m.c)
	if err := zipCells(res.data, m.data, other.data, m.c, f); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return res, nil
}

// AddScalar returns m with v added to every cell.
// Errors: ErrOverflow.
func (m *Dense[T]) AddScalar(v T) (*Dense[T], error) {
	return m.mapScalar(v, opAddScalar, addT[T])
}

// SubScalar returns m with v subtracted from every cell.
// Errors: ErrOverflow.
func (m *Dense[T]) SubScalar(v T) (*Dense[T], error) {
	return m.mapScalar(v, opSubScalar, subT[T])
}

// Scale returns m with every cell multiplied by v.
// Errors: ErrOverflow.
func (m *Dense[T]) Scale(v T) (*Dense[T], error) {
	return m.mapScalar(v, opScale, mulT[T])
}

func (m *Dense[T]) mapScalar(v T, tag string, f func(T, T) (T, error)) (*Dense[T], error) {
	res := newDenseZero[T](m.r, m.c)
	if err := mapCells(res.data, m.data, m.c, v, f); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return res, nil
}

// Mul returns the product of m and other under the inverted shape rule:
// m.Rows() must equal other.Cols(). The result is m.Rows() × other.Cols() and
// cell (i, j) is the overflow-checked Σ_{k<m.Cols()} m[i,k]·other[k,j].
//
// Errors:
//   - ErrDimensionMismatch (m.Rows() != other.Cols()).
//   - ErrOutOfRange (m.Cols() > other.Rows(): the inner index would leave other).
//   - ErrOverflow.
//
// Complexity: O(r·c·other.c).
func (m *Dense[T]) Mul(other *Dense[T]) (*Dense[T], error) {
	if err := validateMulShape(m.r, m.c, other.r, other.c); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := newDenseZero[T](m.r, other.c)
	if err := mulInto(res.data, m.data, m.r, m.c, other.data, other.c); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// MulParallel computes exactly the same product as Mul, fanning the output
// cells out on a bounded worker pool configured by opts. It blocks until every
// cell is written. Neither operand may be mutated during the call.
//
// Errors:
//   - As for Mul, plus ctx.Err() when ctx is canceled.
func (m *Dense[T]) MulParallel(ctx context.Context, other *Dense[T], opts ...parallel.Option) (*Dense[T], error) {
	if err := validateMulShape(m.r, m.c, other.r, other.c); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	res := newDenseZero[T](m.r, other.c)
	err := mulIntoParallel(ctx, parallel.New(opts...), res.data, m.data, m.r, m.c, other.data, other.c)
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	return res, nil
}

// Inverse is InverseWith(DefaultPivoting).
func (m *Dense[T]) Inverse() (*Dense[float64], error) {
	return m.InverseWith(DefaultPivoting)
}

// InverseWith inverts a square matrix by Gauss-Jordan elimination on the
// augmented matrix [A | I] in float64.
//
// Errors:
//   - ErrNonSquare (also matches ErrDimensionMismatch).
//   - ErrSingular (zero pivot under the chosen policy).
//
// Complexity: O(n³).
func (m *Dense[T]) InverseWith(policy Pivoting) (*Dense[float64], error) {
	if err := validateSquare(m.r, m.c); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := gaussJordan(toFloat64s(m.data), m.r, policy)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return &Dense[float64]{r: m.r, c: m.c, data: inv}, nil
}

// Determinant returns det(m), computed in float64 by LU elimination with
// partial pivoting. The empty 0×0 matrix has determinant 1.
//
// Errors:
//   - ErrNonSquare (also matches ErrDimensionMismatch).
//
// Complexity: O(n³).
func (m *Dense[T]) Determinant() (float64, error) {
	if err := validateSquare(m.r, m.c); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return luDeterminant(toFloat64s(m.data), m.r), nil
}

// Submatrix copies the subRows×subCols block starting at (startRow, startCol).
//
// Errors:
//   - ErrInvalidSubmatrixBounds unless startRow+subRows <= Rows() and
//     startCol+subCols <= Cols() (and all arguments are non-negative).
//
// Complexity: O(subRows*subCols).
func (m *Dense[T]) Submatrix(subRows, subCols, startRow, startCol int) (*Dense[T], error) {
	if err := validateWindow(m.r, m.c, subRows, subCols, startRow, startCol); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	res := newDenseZero[T](subRows, subCols)
	copyWindow(res.data, m.data, m.c, subRows, subCols, startRow, startCol)

	return res, nil
}

// Transpose returns the Cols()×Rows() matrix with result(c, r) = m(r, c).
// Complexity: O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	res := newDenseZero[T](m.c, m.r)
	transposeInto(res.data, m.data, m.r, m.c)

	return res
}
