// SPDX-License-Identifier: MIT

package arith

import (
	"fmt"
	"math"
	"math/big"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types accepted by the arithmetic kernels and
// by both matrix kinds: every signed/unsigned integer and floating-point type.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Operation names used in error wrapping.
const (
	opAdd      = "Add"
	opSubtract = "Subtract"
	opMultiply = "Multiply"
)

// numKind describes how a scalar type is represented.
type numKind struct {
	float  bool // floating point (float32/float64)
	signed bool // signed integer; meaningless for floats
	bits   int  // storage width in bits
}

// kindOf inspects T without reflection: 1/2 survives only in floating types,
// and 0-1 wraps above 0 only in unsigned ones.
func kindOf[T Scalar]() numKind {
	var zero T
	one := zero + 1

	return numKind{
		float:  one/2 != zero,
		signed: zero-1 < zero,
		bits:   int(unsafe.Sizeof(zero)) * 8,
	}
}

// bounds returns the representable range of an integer kind, clamped to int64.
// Unsigned 64-bit types report MaxInt64 as the upper bound; values above it are
// only produced on the big.Int path, which checks exact bounds.
func (k numKind) bounds() (lo, hi int64) {
	switch {
	case k.signed:
		return -1 << (k.bits - 1), 1<<(k.bits-1) - 1
	case k.bits >= 64:
		return 0, math.MaxInt64
	default:
		return 0, 1<<k.bits - 1
	}
}

// bigBounds returns the exact representable range of an integer kind.
func (k numKind) bigBounds() (lo, hi *big.Int) {
	one := big.NewInt(1)
	if k.signed {
		hi = new(big.Int).Lsh(one, uint(k.bits-1))
		lo = new(big.Int).Neg(hi)
		hi.Sub(hi, one)

		return lo, hi
	}
	hi = new(big.Int).Lsh(one, uint(k.bits))
	hi.Sub(hi, one)

	return new(big.Int), hi
}

// fits reports whether the float64 v, truncated toward zero, is representable
// in an integer kind. The limits are powers of two and therefore exact.
func (k numKind) fits(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	v = math.Trunc(v)
	if k.signed {
		limit := math.Ldexp(1, k.bits-1)
		return v >= -limit && v < limit
	}

	return v >= 0 && v < math.Ldexp(1, k.bits)
}

// toInt64 converts an integer scalar to int64 when it is representable.
func toInt64[T Scalar](v T, k numKind) (int64, bool) {
	if !k.signed && uint64(v) > math.MaxInt64 {
		return 0, false
	}

	return int64(v), true
}

// toBig converts an integer scalar to an exact big.Int.
func toBig[T Scalar](v T, k numKind) *big.Int {
	if k.signed {
		return big.NewInt(int64(v))
	}

	return new(big.Int).SetUint64(uint64(v))
}

// kernel bundles the three renditions of one binary operation.
type kernel struct {
	name string
	wide func(x, y int64) (int64, bool) // false on int64 overflow
	big  func(z, x, y *big.Int) *big.Int
	flt  func(x, y float64) float64
}

var (
	addKernel = kernel{
		name: opAdd,
		wide: func(x, y int64) (int64, bool) {
			r := x + y
			return r, !((x > 0 && y > 0 && r < 0) || (x < 0 && y < 0 && r >= 0))
		},
		big: (*big.Int).Add,
		flt: func(x, y float64) float64 { return x + y },
	}
	subKernel = kernel{
		name: opSubtract,
		wide: func(x, y int64) (int64, bool) {
			r := x - y
			return r, !((x >= 0 && y < 0 && r < 0) || (x < 0 && y > 0 && r >= 0))
		},
		big: (*big.Int).Sub,
		flt: func(x, y float64) float64 { return x - y },
	}
	mulKernel = kernel{
		name: opMultiply,
		wide: func(x, y int64) (int64, bool) {
			if x == 0 || y == 0 {
				return 0, true
			}
			if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
				return 0, false
			}
			r := x * y
			return r, r/y == x
		},
		big: (*big.Int).Mul,
		flt: func(x, y float64) float64 { return x * y },
	}
)

// apply runs kernel k on (a, b) and returns a value of type T.
//
// Implementation:
//   - Stage 1: if either side is floating point, compute in float64; a float
//     result is returned as is, an integer T must hold its truncation.
//   - Stage 2: integer fast path in int64 when both operands and the result fit.
//   - Stage 3: exact big.Int fallback for unsigned 64-bit magnitudes.
//   - Stage 4: range-check the result against T.
//
// Complexity: O(1); the big.Int path allocates.
func apply[T, U Scalar](k kernel, a T, b U) (T, error) {
	ka, kb := kindOf[T](), kindOf[U]()
	if ka.float || kb.float {
		r := k.flt(float64(a), float64(b))
		if !ka.float && !ka.fits(r) {
			return 0, overflowf(k.name, a, b)
		}

		return T(r), nil
	}

	x, okX := toInt64(a, ka)
	y, okY := toInt64(b, kb)
	if okX && okY {
		if r, ok := k.wide(x, y); ok {
			lo, hi := ka.bounds()
			if r < lo || r > hi {
				return 0, overflowf(k.name, a, b)
			}

			return T(r), nil
		}
	}

	r := k.big(new(big.Int), toBig(a, ka), toBig(b, kb))
	lo, hi := ka.bigBounds()
	if r.Cmp(lo) < 0 || r.Cmp(hi) > 0 {
		return 0, overflowf(k.name, a, b)
	}
	if ka.signed {
		return T(r.Int64()), nil
	}

	return T(r.Uint64()), nil
}

// overflowf wraps ErrOverflow with the operation and its operands.
func overflowf[T, U Scalar](op string, a T, b U) error {
	return fmt.Errorf("%s(%v, %v): %w", op, a, b, ErrOverflow)
}

// Add returns a + b as a value of a's type.
// Errors: ErrOverflow when integer a+b leaves the range of T.
func Add[T, U Scalar](a T, b U) (T, error) {
	return apply(addKernel, a, b)
}

// Subtract returns a - b as a value of a's type.
// Errors: ErrOverflow when integer a-b leaves the range of T.
func Subtract[T, U Scalar](a T, b U) (T, error) {
	return apply(subKernel, a, b)
}

// Multiply returns a * b as a value of a's type.
// For integers a zero operand short-circuits to 0 without any range check.
// Errors: ErrOverflow when integer a*b leaves the range of T.
func Multiply[T, U Scalar](a T, b U) (T, error) {
	if !kindOf[T]().float && !kindOf[U]().float && (a == 0 || b == 0) {
		return 0, nil
	}

	return apply(mulKernel, a, b)
}
