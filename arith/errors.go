// SPDX-License-Identifier: MIT

package arith

import "errors"

// ErrOverflow is returned when an integer result does not fit in the range of
// the first operand's type. Callers match it via errors.Is.
var ErrOverflow = errors.New("arith: arithmetic overflow")
