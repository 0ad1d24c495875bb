// SPDX-License-Identifier: MIT

// Package matrix - Fixed storage.
//
// Purpose:
//   - A matrix whose row and column counts are part of its type. R and C are
//     Dim types, so Fixed[float64, D2, D3] only interoperates with operands
//     whose dimension types satisfy each operation's contract.
//   - The zero value is usable and equals the identity-like default. Reads
//     never write it, so a shared zero value is safe for concurrent readers;
//     the first Set stores the default before the write.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matrices/arith"
)

// panicNonPositiveDim reports a Dim type whose Size() is not positive.
const panicNonPositiveDim = "matrix: Fixed requires dimension types with Size() > 0"

// Fixed is an R×C matrix with type-level dimensions, stored row-major.
// Methods use pointer receivers; copy a Fixed with Clone.
type Fixed[T arith.Scalar, R, C Dim] struct {
	data []T // len == R.Size()*C.Size() once initialized
}

// fixedShape returns (rows, cols) for the type pair, panicking on a
// non-positive size (a programmer error in a custom Dim).
func fixedShape[R, C Dim]() (int, int) {
	r, c := sizeOf[R](), sizeOf[C]()
	if r <= 0 || c <= 0 {
		panic(panicNonPositiveDim)
	}

	return r, c
}

// newFixedZero allocates a zero-filled Fixed without the identity pattern.
func newFixedZero[T arith.Scalar, R, C Dim]() *Fixed[T, R, C] {
	r, c := fixedShape[R, C]()

	return &Fixed[T, R, C]{data: make([]T, r*c)}
}

// NewFixed returns the identity-like R×C matrix: ones on the diagonal up to
// min(R, C), zeros elsewhere.
func NewFixed[T arith.Scalar, R, C Dim]() *Fixed[T, R, C] {
	m := newFixedZero[T, R, C]()
	fillIdentity(m.data, m.Rows(), m.Cols())

	return m
}

// FixedFromSlice copies exactly R*C values, row-major.
//
// Errors:
//   - ErrDimensionMismatch if len(data) != R*C.
func FixedFromSlice[T arith.Scalar, R, C Dim](data []T) (*Fixed[T, R, C], error) {
	m := newFixedZero[T, R, C]()
	if len(data) != len(m.data) {
		return nil, matrixErrorf(opFromSlice,
			fmt.Errorf("%d values for %dx%d: %w", len(data), m.Rows(), m.Cols(), ErrDimensionMismatch))
	}
	copy(m.data, data)

	return m, nil
}

// FixedFromValues is FixedFromSlice for a variadic list of exactly R*C values.
func FixedFromValues[T arith.Scalar, R, C Dim](values ...T) (*Fixed[T, R, C], error) {
	return FixedFromSlice[T, R, C](values)
}

// FixedFromDense converts a Dense of the same shape.
//
// Errors:
//   - ErrDimensionMismatch if d is not R×C.
func FixedFromDense[T arith.Scalar, R, C Dim](d *Dense[T]) (*Fixed[T, R, C], error) {
	m := newFixedZero[T, R, C]()
	if err := validateSameShape(m.Rows(), m.Cols(), d.r, d.c); err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}
	copy(m.data, d.data)

	return m, nil
}

// store returns the cells for reading. A zero-value Fixed yields a fresh
// identity slice and stays untouched, so concurrent readers never write m.
func (m *Fixed[T, R, C]) store() []T {
	if m.data != nil {
		return m.data
	}
	r, c := fixedShape[R, C]()
	data := make([]T, r*c)
	fillIdentity(data, r, c)

	return data
}

// materialize pins the identity default into a zero-value Fixed before a write.
func (m *Fixed[T, R, C]) materialize() []T {
	if m.data == nil {
		m.data = m.store()
	}

	return m.data
}

// identityAt is the default element at (row, col), read without allocating.
func identityAt[T arith.Scalar](row, col int) T {
	if row == col {
		return 1
	}

	return 0
}

// Rows returns R.Size().
func (m *Fixed[T, R, C]) Rows() int { return sizeOf[R]() }

// Cols returns C.Size().
func (m *Fixed[T, R, C]) Cols() int { return sizeOf[C]() }

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Fixed[T, R, C]) At(row, col int) (T, error) {
	if err := validateIndex(m.Rows(), m.Cols(), row, col); err != nil {
		return 0, matrixErrorf(opAt, err)
	}
	if m.data == nil {
		return identityAt[T](row, col), nil
	}

	return m.data[row*m.Cols()+col], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Fixed[T, R, C]) Set(row, col int, v T) error {
	if err := validateIndex(m.Rows(), m.Cols(), row, col); err != nil {
		return matrixErrorf(opSet, err)
	}
	m.materialize()[row*m.Cols()+col] = v

	return nil
}

// AtIndex returns the element at flat row-major index idx or ErrOutOfRange.
func (m *Fixed[T, R, C]) AtIndex(idx int) (T, error) {
	data := m.store()
	if err := validateFlatIndex(len(data), idx); err != nil {
		return 0, matrixErrorf(opAtIndex, err)
	}

	return data[idx], nil
}

// Clone returns an independent deep copy. A zero value clones to a zero value.
func (m *Fixed[T, R, C]) Clone() *Fixed[T, R, C] {
	if m.data == nil {
		return &Fixed[T, R, C]{}
	}
	out := make([]T, len(m.data))
	copy(out, m.data)

	return &Fixed[T, R, C]{data: out}
}

// Equal reports whether every element matches.
func (m *Fixed[T, R, C]) Equal(other *Fixed[T, R, C]) bool {
	b := other.store()
	for i, v := range m.store() {
		if b[i] != v {
			return false
		}
	}

	return true
}

// ToDense copies m into a runtime-sized Dense.
func (m *Fixed[T, R, C]) ToDense() *Dense[T] {
	return NewFromSlice(m.Rows(), m.Cols(), m.store())
}

// String renders one bracketed line per row.
func (m *Fixed[T, R, C]) String() string {
	return formatRows(m.store(), m.Rows(), m.Cols())
}

// Add returns the element-wise sum. Identical dimension types are enforced by
// the signature. Errors: ErrOverflow.
func (m *Fixed[T, R, C]) Add(other *Fixed[T, R, C]) (*Fixed[T, R, C], error) {
	return m.zip(other, opAdd, addT[T])
}

// Sub returns the element-wise difference. Errors: ErrOverflow.
func (m *Fixed[T, R, C]) Sub(other *Fixed[T, R, C]) (*Fixed[T, R, C], error) {
	return m.zip(other, opSub, subT[T])
}

func (m *Fixed[T, R, C]) zip(other *Fixed[T, R, C], tag string, f func(T, T) (T, error)) (*Fixed[T, R, C], error) {
	res := newFixedZero[T, R, C]()
	if err := zipCells(res.data, m.store(), other.store(), m.Cols(), f); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return res, nil
}

// AddScalar adds v to every cell. Errors: ErrOverflow.
func (m *Fixed[T, R, C]) AddScalar(v T) (*Fixed[T, R, C], error) {
	return m.mapScalar(v, opAddScalar, addT[T])
}

// SubScalar subtracts v from every cell. Errors: ErrOverflow.
func (m *Fixed[T, R, C]) SubScalar(v T) (*Fixed[T, R, C], error) {
	return m.mapScalar(v, opSubScalar, subT[T])
}

// Scale multiplies every cell by v. Errors: ErrOverflow.
func (m *Fixed[T, R, C]) Scale(v T) (*Fixed[T, R, C], error) {
	return m.mapScalar(v, opScale, mulT[T])
}

func (m *Fixed[T, R, C]) mapScalar(v T, tag string, f func(T, T) (T, error)) (*Fixed[T, R, C], error) {
	res := newFixedZero[T, R, C]()
	if err := mapCells(res.data, m.store(), m.Cols(), v, f); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return res, nil
}

// Transpose returns the C×R matrix with result(c, r) = m(r, c).
func (m *Fixed[T, R, C]) Transpose() *Fixed[T, C, R] {
	res := newFixedZero[T, C, R]()
	transposeInto(res.data, m.store(), m.Rows(), m.Cols())

	return res
}
