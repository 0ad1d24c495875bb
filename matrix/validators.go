// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape and index checks used by both kinds.
//  - Validators take plain dimensions so Dense and Fixed share them.
//  - They return sentinels tagged with the validator name; kernels add the
//    operation tag on top via matrixErrorf.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateIndex checks 0 <= row < rows and 0 <= col < cols.
// Complexity: O(1).
func validateIndex(rows, cols, row, col int) error {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return validatorErrorf(fmt.Sprintf("validateIndex(%d,%d) in %dx%d", row, col, rows, cols), ErrOutOfRange)
	}

	return nil
}

// validateFlatIndex checks 0 <= idx < n.
// Complexity: O(1).
func validateFlatIndex(n, idx int) error {
	if idx < 0 || idx >= n {
		return validatorErrorf(fmt.Sprintf("validateFlatIndex(%d) of %d", idx, n), ErrOutOfRange)
	}

	return nil
}

// validateSameShape ensures two shapes are identical (Add/Sub).
// Complexity: O(1).
func validateSameShape(aRows, aCols, bRows, bCols int) error {
	if aRows != bRows {
		return validatorErrorf("validateSameShape: Rows", ErrDimensionMismatch)
	}
	if aCols != bCols {
		return validatorErrorf("validateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// validateSquare ensures rows == cols.
// Complexity: O(1).
func validateSquare(rows, cols int) error {
	if rows != cols {
		return validatorErrorf(fmt.Sprintf("validateSquare: %dx%d", rows, cols), ErrNonSquare)
	}

	return nil
}

// validateMulShape enforces the inverted multiplication rule
// left.rows == right.cols, then checks that the inner index k < left.cols
// stays inside the right operand's rows.
// Complexity: O(1).
func validateMulShape(aRows, aCols, bRows, bCols int) error {
	if aRows != bCols {
		return validatorErrorf(fmt.Sprintf("validateMulShape: left rows %d != right cols %d", aRows, bCols), ErrDimensionMismatch)
	}
	if aCols > bRows {
		return validatorErrorf(fmt.Sprintf("validateMulShape: inner %d exceeds right rows %d", aCols, bRows), ErrOutOfRange)
	}

	return nil
}

// validateWindow ensures a subRows×subCols window starting at (startRow,
// startCol) lies within a rows×cols matrix.
// Complexity: O(1).
func validateWindow(rows, cols, subRows, subCols, startRow, startCol int) error {
	if subRows < 0 || subCols < 0 || startRow < 0 || startCol < 0 {
		return validatorErrorf("validateWindow: negative", ErrInvalidSubmatrixBounds)
	}
	if startRow+subRows > rows || startCol+subCols > cols {
		return validatorErrorf(fmt.Sprintf("validateWindow: %dx%d at (%d,%d) in %dx%d",
			subRows, subCols, startRow, startCol, rows, cols), ErrInvalidSubmatrixBounds)
	}

	return nil
}
