// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (seeded math/rand) shared by the suites.
//   - Must* wrappers that fail the test immediately on an unexpected error.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrices/arith"
	"github.com/katalvlaran/matrices/matrix"
)

// tol is the absolute tolerance for floating comparisons of inverses.
const tol = 1e-9

// MustAt reads (i, j) or fails the test.
func MustAt[T arith.Scalar](t *testing.T, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireRows compares every cell of m against want (row slices).
func RequireRows[T arith.Scalar](t *testing.T, want [][]T, m matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(t, len(row), m.Cols(), "cols")
		for j, w := range row {
			require.Equalf(t, w, MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// RequireIdentity asserts m is the n×n identity within tol.
func RequireIdentity(t *testing.T, m matrix.Matrix[float64]) {
	t.Helper()
	require.Equal(t, m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDeltaf(t, want, MustAt(t, m, i, j), tol, "cell (%d,%d)", i, j)
		}
	}
}

// RequireAllClose compares two float matrices cell by cell within tol.
func RequireAllClose(t *testing.T, want, got matrix.Matrix[float64]) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDeltaf(t, MustAt(t, want, i, j), MustAt(t, got, i, j), tol, "cell (%d,%d)", i, j)
		}
	}
}

// DiagDominant returns a row-major n×n matrix with random entries in [-1, 1)
// and |a_ii| > Σ|a_ij|, so it is invertible without pivoting.
func DiagDominant(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			if i != j {
				out[i*n+j] = rng.Float64()*2 - 1
				sum += math.Abs(out[i*n+j])
			}
		}
		out[i*n+i] = sum + 1 + rng.Float64()
	}

	return out
}

// RandomInts returns n pseudo-random ints in [-limit, limit].
func RandomInts(n, limit int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(2*limit+1) - limit
	}

	return out
}

// Sequence returns 0, 1, ..., n-1 as T.
func Sequence[T arith.Scalar](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i)
	}

	return out
}
