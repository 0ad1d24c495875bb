// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Pivoting selects how Gauss-Jordan inversion chooses its pivot row.
type Pivoting int

const (
	// PivotNaive uses the diagonal element of the current row as pivot and
	// fails with ErrSingular when it is exactly zero. No rows are swapped, so
	// some invertible matrices (e.g. [[0,1],[1,0]]) are reported singular.
	PivotNaive Pivoting = iota

	// PivotPartial swaps in the row with the largest absolute value in the
	// pivot column before normalizing. It reports ErrSingular only when that
	// whole column is zero.
	PivotPartial
)

// DefaultPivoting is the policy used by Dense.Inverse and InverseGaussJordan
// without an explicit policy.
const DefaultPivoting = PivotNaive

const (
	pivotNaiveName   = "naive"
	pivotPartialName = "partial"
)

// String implements fmt.Stringer.
func (p Pivoting) String() string {
	switch p {
	case PivotNaive:
		return pivotNaiveName
	case PivotPartial:
		return pivotPartialName
	default:
		return fmt.Sprintf("Pivoting(%d)", int(p))
	}
}

// ParsePivoting maps "naive" / "partial" (case-insensitive) onto a policy.
// The empty string selects DefaultPivoting.
func ParsePivoting(s string) (Pivoting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultPivoting, nil
	case pivotNaiveName:
		return PivotNaive, nil
	case pivotPartialName:
		return PivotPartial, nil
	default:
		return DefaultPivoting, fmt.Errorf("%q: %w", s, ErrUnknownPivoting)
	}
}
