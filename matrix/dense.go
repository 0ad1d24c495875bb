// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Runtime-sized matrix with the explicit index formula r*cols + c.
//   - Total construction: an adversarial size never fails, it degrades to 0×0.
//   - Safety at the public surface: At/Set/AtIndex/AddRow return ErrOutOfRange
//     instead of panicking or touching foreign cells.
//
// Complexity quicksheet:
//   - New*: O(r*c); At/Set: O(1); Clone: O(r*c); AddRow: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/katalvlaran/matrices/arith"
)

// MaxElements is the index range of a Dense store: rows*cols must not exceed
// it, otherwise construction degrades to an empty 0×0 matrix.
const MaxElements = math.MaxUint32

// MaxBytes caps the backing store of a Dense. A request whose elements would
// take more memory degrades to 0×0 like an out-of-range one.
const MaxBytes = 1 << 32

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a runtime-sized row-major matrix.
//   - r, c hold dimensions (rows, cols), both >= 0.
//   - data has length exactly r*c; element (i, j) is data[i*c+j].
type Dense[T arith.Scalar] struct {
	r, c int
	data []T
}

// sizeFor resolves requested dimensions against MaxElements and MaxBytes.
// Any negative dimension, a product outside the index range or a store larger
// than MaxBytes yields 0×0.
func sizeFor[T arith.Scalar](rows, cols int) (int, int, int) {
	if rows < 0 || cols < 0 || uint64(rows) > MaxElements || uint64(cols) > MaxElements {
		return 0, 0, 0
	}
	n, err := arith.Multiply(uint32(rows), uint32(cols))
	if err != nil {
		return 0, 0, 0
	}
	var zero T
	if uint64(n)*uint64(unsafe.Sizeof(zero)) > MaxBytes {
		return 0, 0, 0
	}

	return rows, cols, int(n)
}

// newDenseZero allocates a zero-filled store without the identity pattern.
// Used for results whose every cell is overwritten.
func newDenseZero[T arith.Scalar](rows, cols int) *Dense[T] {
	r, c, n := sizeFor[T](rows, cols)

	return &Dense[T]{r: r, c: c, data: make([]T, n)}
}

// New creates a rows×cols Dense initialized to the identity pattern: ones on
// the diagonal up to min(rows, cols), zeros elsewhere.
//
// Behavior highlights:
//   - Never fails. Negative dimensions, rows*cols > MaxElements or a store
//     above MaxBytes produce a 0×0 matrix; callers that accept adversarial
//     sizes must check Rows()/Cols(). A size under both caps is still
//     allocated in full.
//
// Complexity: O(rows*cols).
func New[T arith.Scalar](rows, cols int) *Dense[T] {
	m := newDenseZero[T](rows, cols)
	fillIdentity(m.data, m.r, m.c)

	return m
}

// NewFromSlice creates a rows×cols Dense and copies data into it row-major.
// Longer data is truncated; shorter data leaves the remaining cells zero. No
// identity pattern is applied. The sizing rule of New applies.
//
// Complexity: O(rows*cols).
func NewFromSlice[T arith.Scalar](rows, cols int, data []T) *Dense[T] {
	m := newDenseZero[T](rows, cols)
	copy(m.data, data)

	return m
}

// NewFromValues is NewFromSlice for a variadic list: values fill positions in
// row-major order up to capacity; excess values are dropped.
func NewFromValues[T arith.Scalar](rows, cols int, values ...T) *Dense[T] {
	return NewFromSlice(rows, cols, values)
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Len returns rows*cols.
func (m *Dense[T]) Len() int { return len(m.data) }

// At returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	if err := validateIndex(m.r, m.c, row, col); err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return m.data[row*m.c+col], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	if err := validateIndex(m.r, m.c, row, col); err != nil {
		return matrixErrorf(opSet, err)
	}
	m.data[row*m.c+col] = v

	return nil
}

// AtIndex returns the element at flat row-major index idx or ErrOutOfRange.
func (m *Dense[T]) AtIndex(idx int) (T, error) {
	if err := validateFlatIndex(len(m.data), idx); err != nil {
		return 0, matrixErrorf(opAtIndex, err)
	}

	return m.data[idx], nil
}

// AddRow overwrites row `row` in place with values. Values longer than Cols()
// are truncated; shorter values leave the rest of the row unchanged. The shape
// never changes.
//
// Errors:
//   - ErrOutOfRange if row is outside [0, Rows()).
//
// Complexity: O(min(len(values), Cols())).
func (m *Dense[T]) AddRow(row int, values []T) error {
	if row < 0 || row >= m.r {
		return matrixErrorf(opAddRow, fmt.Errorf("row %d of %d: %w", row, m.r, ErrOutOfRange))
	}
	copy(m.data[row*m.c:(row+1)*m.c], values)

	return nil
}

// Values returns a row-major copy of the store.
func (m *Dense[T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns an independent deep copy.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: m.Values()}
}

// Equal reports whether other has the same shape and identical elements.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// String renders one bracketed line per row, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense[T]) String() string {
	return formatRows(m.data, m.r, m.c)
}

// formatRows is shared by Dense.String and Fixed.String.
func formatRows[T arith.Scalar](data []T, rows, cols int) string {
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", data[i*cols+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
