// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/matrices/arith"

// Matrix is the capability set shared by Dense and Fixed.
// At/Set return ErrOutOfRange for indices outside the matrix.
type Matrix[T arith.Scalar] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (row, col).
	At(row, col int) (T, error)

	// Set stores v at (row, col).
	Set(row, col int, v T) error
}

// Dim is a dimension carried by a type. Fixed matrices take their row and
// column counts from two Dim type arguments, so Fixed[T, D2, D3] and
// Fixed[T, D3, D2] are different types.
//
// Implementations must be zero-size value types whose Size is a constant.
// Callers may declare their own:
//
//	type D12 struct{}
//	func (D12) Size() int { return 12 }
type Dim interface {
	Size() int
}

// Dimension and offset types shipped with the package. O0 is only meaningful
// as a submatrix start offset.
type (
	O0 struct{}
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
	D9 struct{}
)

func (O0) Size() int { return 0 }
func (D1) Size() int { return 1 }
func (D2) Size() int { return 2 }
func (D3) Size() int { return 3 }
func (D4) Size() int { return 4 }
func (D5) Size() int { return 5 }
func (D6) Size() int { return 6 }
func (D7) Size() int { return 7 }
func (D8) Size() int { return 8 }
func (D9) Size() int { return 9 }

// sizeOf reads the size carried by a Dim type.
func sizeOf[D Dim]() int {
	var d D
	return d.Size()
}

// Compile-time assertions.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[int]     = (*Fixed[int, D2, D3])(nil)
)
