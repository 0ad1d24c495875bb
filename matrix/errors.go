// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation tag)
// and tests match them via errors.Is. No kernel panics on user-triggered
// conditions; panics are reserved for programmer errors such as a dimension
// type with a non-positive size.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matrices/arith"
)

var (
	// ErrDimensionMismatch indicates incompatible operand shapes: Add/Sub on
	// different shapes, or Mul where left.Rows() != right.Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	// It matches ErrDimensionMismatch as well.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

	// ErrInvalidSubmatrixBounds indicates a window that leaves the matrix
	// (start+size > dimension) or has a negative size/offset.
	ErrInvalidSubmatrixBounds = errors.New("matrix: invalid submatrix bounds")

	// ErrOutOfRange indicates a row, column or flat index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSingular is returned when Gauss-Jordan elimination meets a zero pivot.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNonInvertible is returned by the cofactor path when the determinant is
	// exactly zero. It matches ErrSingular as well.
	ErrNonInvertible = fmt.Errorf("%w: determinant is zero", ErrSingular)

	// ErrUnknownPivoting is returned by ParsePivoting for an unknown name.
	ErrUnknownPivoting = errors.New("matrix: unknown pivoting policy")
)

// ErrOverflow is arith.ErrOverflow, re-exported so callers of this package
// need a single import to classify arithmetic failures.
var ErrOverflow = arith.ErrOverflow
