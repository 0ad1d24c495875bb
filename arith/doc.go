// SPDX-License-Identifier: MIT

// Package arith provides overflow-checked scalar arithmetic shared by every
// matrix kind in this module.
//
// The three kernels (Add, Subtract, Multiply) accept two scalars of possibly
// different numeric types and return a value of the FIRST operand's type.
//
//   - Integer operands are combined in a wide intermediate (int64, or an exact
//     big.Int when the operands or the int64 result do not fit) and the result
//     is range-checked against the first operand's type. A result outside that
//     range fails with ErrOverflow.
//   - Multiply short-circuits to 0 when either integer operand is 0.
//   - When either operand is floating point the operation runs in float64 and
//     is converted to the first operand's type. A float first operand takes
//     NaN and ±Inf as they come. An integer first operand receives the result
//     truncated toward zero, and NaN, ±Inf or a truncation outside its range
//     fails with ErrOverflow.
//
// The functions are pure and safe for concurrent use.
package arith
