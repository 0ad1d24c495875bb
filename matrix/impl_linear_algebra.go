// SPDX-License-Identifier: MIT
// Package matrix: row-major kernels shared by Dense and Fixed.
//
// Purpose:
//   - Implement every algorithm once, on flat row-major stores plus explicit
//     dimensions, so both matrix kinds produce bit-identical results.
//   - Keep operation tags and numeric sentinels in one place.
//
// Notes:
//   - Kernels never validate shapes; the facades (dense_ops.go, fixed_ops.go)
//     call validators first and wrap errors with matrixErrorf.
//   - Inputs are read-only; outputs are freshly allocated by the facade.

package matrix

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/matrices/arith"
	"github.com/katalvlaran/matrices/parallel"
)

// ZeroPivot is the sentinel for detecting a zero pivot in Gauss-Jordan.
const ZeroPivot = 0.0

// ZeroDeterminant is the sentinel for a non-invertible matrix on the cofactor path.
const ZeroDeterminant = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opAddScalar   = "AddScalar"
	opSubScalar   = "SubScalar"
	opScale       = "Scale"
	opMul         = "Mul"
	opMulParallel = "MulParallel"
	opInverse     = "Inverse"
	opCofactor    = "InverseCofactor"
	opDeterminant = "Determinant"
	opSubmatrix   = "Submatrix"
	opAt          = "At"
	opSet         = "Set"
	opAtIndex     = "AtIndex"
	opAddRow      = "AddRow"
	opFromSlice   = "FromSlice"
	opFromDense   = "FromDense"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf attaches output coordinates to an arithmetic failure.
func cellErrorf(row, col int, err error) error {
	return fmt.Errorf("cell(%d,%d): %w", row, col, err)
}

// zipCells computes out[i] = f(a[i], b[i]) for equal-length stores.
// Complexity: O(n).
func zipCells[T arith.Scalar](out, a, b []T, cols int, f func(T, T) (T, error)) error {
	var err error
	for i := range out {
		if out[i], err = f(a[i], b[i]); err != nil {
			return cellErrorf(i/cols, i%cols, err)
		}
	}

	return nil
}

// mapCells computes out[i] = f(a[i], v).
// Complexity: O(n).
func mapCells[T arith.Scalar](out, a []T, cols int, v T, f func(T, T) (T, error)) error {
	var err error
	for i := range out {
		if out[i], err = f(a[i], v); err != nil {
			return cellErrorf(i/cols, i%cols, err)
		}
	}

	return nil
}

// Arithmetic adapters binding arith's two-type kernels to one element type.
func addT[T arith.Scalar](a, b T) (T, error) { return arith.Add(a, b) }
func subT[T arith.Scalar](a, b T) (T, error) { return arith.Subtract(a, b) }
func mulT[T arith.Scalar](a, b T) (T, error) { return arith.Multiply(a, b) }

// mulCell computes one output cell of the product: the overflow-checked dot
// product of row `row` of a with column `col` of b, over k < aCols.
// Complexity: O(aCols).
func mulCell[T arith.Scalar](a []T, aCols int, b []T, bCols int, row, col int) (T, error) {
	var (
		acc, term T
		err       error
	)
	base := row * aCols
	for k := 0; k < aCols; k++ {
		if term, err = arith.Multiply(a[base+k], b[k*bCols+col]); err != nil {
			return 0, cellErrorf(row, col, err)
		}
		if acc, err = arith.Add(acc, term); err != nil {
			return 0, cellErrorf(row, col, err)
		}
	}

	return acc, nil
}

// mulInto fills out (aRows × bCols) sequentially in fixed i→j order.
// Complexity: O(aRows*bCols*aCols).
func mulInto[T arith.Scalar](out []T, a []T, aRows, aCols int, b []T, bCols int) error {
	var err error
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			if out[i*bCols+j], err = mulCell(a, aCols, b, bCols, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// mulIntoParallel fills out with the same cells as mulInto on a bounded pool.
// Each task owns a disjoint range of out; a and b are only read.
func mulIntoParallel[T arith.Scalar](ctx context.Context, pool *parallel.Pool,
	out []T, a []T, aRows, aCols int, b []T, bCols int) error {
	return pool.ForEachCell(ctx, aRows, bCols, func(i, j int) error {
		v, err := mulCell(a, aCols, b, bCols, i, j)
		if err != nil {
			return err
		}
		out[i*bCols+j] = v

		return nil
	})
}

// transposeInto writes the cols×rows transpose of src into out.
// Complexity: O(rows*cols).
func transposeInto[T arith.Scalar](out, src []T, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = src[i*cols+j]
		}
	}
}

// copyWindow copies the subRows×subCols block at (r0, c0) of a store with
// srcCols columns into out.
// Complexity: O(subRows*subCols).
func copyWindow[T arith.Scalar](out, src []T, srcCols, subRows, subCols, r0, c0 int) {
	for i := 0; i < subRows; i++ {
		copy(out[i*subCols:(i+1)*subCols], src[(r0+i)*srcCols+c0:(r0+i)*srcCols+c0+subCols])
	}
}

// fillIdentity sets ones on the diagonal up to min(rows, cols).
func fillIdentity[T arith.Scalar](data []T, rows, cols int) {
	for i := 0; i < min(rows, cols); i++ {
		data[i*cols+i] = 1
	}
}

// toFloat64s converts a store to float64 for the inversion kernels.
func toFloat64s[T arith.Scalar](src []T) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}

	return out
}

// gaussJordan inverts the n×n row-major matrix src.
//
// Implementation:
//   - Stage 1: build the augmented n×2n matrix [A | I].
//   - Stage 2: for each pivot row p: choose the pivot per policy, fail on an
//     exact zero, divide row p by the pivot, eliminate column p from every
//     other row.
//   - Stage 3: the right half now holds A⁻¹.
//
// Errors:
//   - ErrSingular (zero pivot).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func gaussJordan(src []float64, n int, policy Pivoting) ([]float64, error) {
	w := 2 * n
	aug := make([]float64, n*w)
	for i := 0; i < n; i++ {
		copy(aug[i*w:i*w+n], src[i*n:(i+1)*n])
		aug[i*w+n+i] = 1
	}

	var p, k, j int
	for p = 0; p < n; p++ {
		if policy == PivotPartial {
			best := p
			for k = p + 1; k < n; k++ {
				if math.Abs(aug[k*w+p]) > math.Abs(aug[best*w+p]) {
					best = k
				}
			}
			if best != p {
				for j = 0; j < w; j++ {
					aug[p*w+j], aug[best*w+j] = aug[best*w+j], aug[p*w+j]
				}
			}
		}

		pivot := aug[p*w+p]
		if pivot == ZeroPivot {
			return nil, fmt.Errorf("zero pivot at row %d (%s): %w", p, policy, ErrSingular)
		}
		row := aug[p*w : (p+1)*w]
		for j = range row {
			row[j] /= pivot
		}
		for k = 0; k < n; k++ {
			if k == p {
				continue
			}
			other := aug[k*w : (k+1)*w]
			factor := other[p]
			for j = range other {
				other[j] -= factor * row[j]
			}
		}
	}

	inv := make([]float64, n*n)
	for i := 0; i < n; i++ {
		copy(inv[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return inv, nil
}

// minorOf returns the (n-1)×(n-1) matrix src with row `row` and column `col`
// removed.
// Complexity: O(n²).
func minorOf(src []float64, n, row, col int) []float64 {
	m := n - 1
	out := make([]float64, 0, m*m)
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		for j := 0; j < n; j++ {
			if j != col {
				out = append(out, src[i*n+j])
			}
		}
	}

	return out
}

// laplaceDeterminant expands along the first row:
// det(A) = Σ_c (-1)^c · A[0,c] · det(minor(0,c)), base case det([a]) = a.
// Complexity: O(n!) - intended for small fixed sizes only.
func laplaceDeterminant(src []float64, n int) float64 {
	if n == 0 {
		return 1
	}
	if n == 1 {
		return src[0]
	}
	var det float64
	sign := 1.0
	for c := 0; c < n; c++ {
		det += sign * src[c] * laplaceDeterminant(minorOf(src, n, 0, c), n-1)
		sign = -sign
	}

	return det
}

// luDeterminant reduces a copy of src to upper-triangular form (Doolittle
// elimination with partial pivoting) and returns sign·Π U[i,i], where sign
// flips on every row swap. A column without a non-zero pivot candidate yields
// ZeroDeterminant.
// Complexity: O(n³).
func luDeterminant(src []float64, n int) float64 {
	u := make([]float64, len(src))
	copy(u, src)

	det := 1.0
	var p, k, j int
	for p = 0; p < n; p++ {
		best := p
		for k = p + 1; k < n; k++ {
			if math.Abs(u[k*n+p]) > math.Abs(u[best*n+p]) {
				best = k
			}
		}
		if u[best*n+p] == ZeroPivot {
			return ZeroDeterminant
		}
		if best != p {
			for j = 0; j < n; j++ {
				u[p*n+j], u[best*n+j] = u[best*n+j], u[p*n+j]
			}
			det = -det
		}

		pivot := u[p*n+p]
		det *= pivot
		for k = p + 1; k < n; k++ {
			l := u[k*n+p] / pivot
			for j = p; j < n; j++ {
				u[k*n+j] -= l * u[p*n+j]
			}
		}
	}

	return det
}

// cofactorInverse computes A⁻¹ = adj(A) / det(A). Note the transposed write:
// inv[c,r] = (-1)^(r+c) · det(minor(r,c)) / det(A).
//
// Errors:
//   - ErrNonInvertible (det(A) == 0 exactly).
//
// Complexity:
//   - Time O(n²·(n-1)!), Space O(n²).
func cofactorInverse(src []float64, n int) ([]float64, error) {
	det := laplaceDeterminant(src, n)
	if det == ZeroDeterminant {
		return nil, ErrNonInvertible
	}
	inv := make([]float64, n*n)
	if n == 1 {
		inv[0] = 1.0 / det
		return inv, nil
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cof := laplaceDeterminant(minorOf(src, n, r, c), n-1) / det
			if (r+c)%2 == 1 {
				cof = -cof
			}
			inv[c*n+r] = cof
		}
	}

	return inv, nil
}
