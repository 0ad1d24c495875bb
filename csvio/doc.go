// SPDX-License-Identifier: MIT

// Package csvio reads and writes float64 matrices as delimiter-separated text.
//
// Format:
//   - One line per row, no header. Cells are joined by a single delimiter
//     rune (',' by default) with no trailing delimiter; every row ends in '\n'.
//   - Values are written in their shortest round-trip form
//     (strconv.FormatFloat with 'g' and precision -1).
//
// Reading is lenient:
//   - Each line is one row, including empty lines (a row of zeros).
//   - A trailing delimiter does not open an extra column.
//   - Tokens are trimmed; a token that does not parse as float64 reads as 0.
//   - The column count is the widest line; shorter rows are zero-padded.
//
// Malformed text never fails to load. Errors come from the file system
// (ErrIO, ErrEmptyPath) or from a text too large for a Dense
// (matrix.ErrOutOfRange).
package csvio
