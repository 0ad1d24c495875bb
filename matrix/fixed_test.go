// SPDX-License-Identifier: MIT

package matrix_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matrices/matrix"
	"github.com/katalvlaran/matrices/parallel"
)

// FixedSuite exercises the type-level matrix against its Dense counterpart
// and against gonum as an independent oracle.
type FixedSuite struct {
	suite.Suite
	sq4 *matrix.Fixed[float64, matrix.D4, matrix.D4]
}

func (s *FixedSuite) SetupTest() {
	var err error
	s.sq4, err = matrix.FixedFromSlice[float64, matrix.D4, matrix.D4](DiagDominant(4, 11))
	s.Require().NoError(err)
}

func (s *FixedSuite) TestZeroValueIsIdentity() {
	var m matrix.Fixed[int, matrix.D2, matrix.D3]
	RequireRows(s.T(), [][]int{{1, 0, 0}, {0, 1, 0}}, &m)

	n := matrix.NewFixed[int, matrix.D3, matrix.D2]()
	RequireRows(s.T(), [][]int{{1, 0}, {0, 1}, {0, 0}}, n)

	v, err := n.AtIndex(3)
	s.Require().NoError(err)
	s.Equal(1, v)
	_, err = n.AtIndex(6)
	s.ErrorIs(err, matrix.ErrOutOfRange)
	_, err = n.At(3, 0)
	s.ErrorIs(err, matrix.ErrOutOfRange)
	s.ErrorIs(n.Set(0, 2, 1), matrix.ErrOutOfRange)
}

func (s *FixedSuite) TestConstructorsCheckCount() {
	_, err := matrix.FixedFromValues[int, matrix.D2, matrix.D2](1, 2, 3)
	s.ErrorIs(err, matrix.ErrDimensionMismatch)

	m, err := matrix.FixedFromValues[int, matrix.D2, matrix.D2](1, 2, 3, 4)
	s.Require().NoError(err)
	RequireRows(s.T(), [][]int{{1, 2}, {3, 4}}, m)

	_, err = matrix.FixedFromDense[int, matrix.D2, matrix.D3](matrix.New[int](3, 2))
	s.ErrorIs(err, matrix.ErrDimensionMismatch)

	back, err := matrix.FixedFromDense[int, matrix.D2, matrix.D2](m.ToDense())
	s.Require().NoError(err)
	s.True(m.Equal(back))
}

func (s *FixedSuite) TestElementwise() {
	a, _ := matrix.FixedFromValues[int8, matrix.D1, matrix.D2](100, 1)

	_, err := a.Add(a)
	s.ErrorIs(err, matrix.ErrOverflow)

	b := matrix.NewFixed[int8, matrix.D1, matrix.D2]()
	diff, err := a.Sub(b)
	s.Require().NoError(err)
	RequireRows(s.T(), [][]int8{{99, 1}}, diff)

	plus, err := b.AddScalar(3)
	s.Require().NoError(err)
	RequireRows(s.T(), [][]int8{{4, 3}}, plus)

	minus, err := b.SubScalar(1)
	s.Require().NoError(err)
	RequireRows(s.T(), [][]int8{{0, -1}}, minus)

	_, err = a.Scale(2)
	s.ErrorIs(err, matrix.ErrOverflow)
}

func (s *FixedSuite) TestMulAgreesWithDense() {
	a, err := matrix.FixedFromSlice[int, matrix.D2, matrix.D3](RandomInts(6, 20, 1))
	s.Require().NoError(err)
	b, err := matrix.FixedFromSlice[int, matrix.D3, matrix.D2](RandomInts(6, 20, 2))
	s.Require().NoError(err)

	got, err := matrix.Mul(a, b)
	s.Require().NoError(err)
	want, err := a.ToDense().Mul(b.ToDense())
	s.Require().NoError(err)
	s.True(want.Equal(got.ToDense()))

	par, err := matrix.MulParallel(context.Background(), a, b, parallel.WithWorkers(3))
	s.Require().NoError(err)
	s.True(got.Equal(par))

	big, _ := matrix.FixedFromValues[int8, matrix.D1, matrix.D1](100)
	_, err = matrix.Mul(big, big)
	s.ErrorIs(err, matrix.ErrOverflow)
	_, err = matrix.MulParallel(context.Background(), big, big)
	s.ErrorIs(err, matrix.ErrOverflow)
}

func (s *FixedSuite) TestMulRightRowsAreFree() {
	// 2×2 · 3×2: the extra right row is never read, as for Dense.
	a, err := matrix.FixedFromValues[int, matrix.D2, matrix.D2](1, 2, 3, 4)
	s.Require().NoError(err)
	b, err := matrix.FixedFromValues[int, matrix.D3, matrix.D2](1, 0, 0, 1, 9, 9)
	s.Require().NoError(err)

	got, err := matrix.Mul(a, b)
	s.Require().NoError(err)
	RequireRows(s.T(), [][]int{{1, 2}, {3, 4}}, got)
	want, err := a.ToDense().Mul(b.ToDense())
	s.Require().NoError(err)
	s.True(want.Equal(got.ToDense()))

	par, err := matrix.MulParallel(context.Background(), a, b, parallel.WithWorkers(2))
	s.Require().NoError(err)
	s.True(got.Equal(par))

	// 2×4 · 3×2: the inner index would leave the right operand.
	wide := matrix.NewFixed[int, matrix.D2, matrix.D4]()
	_, err = matrix.Mul(wide, b)
	s.ErrorIs(err, matrix.ErrOutOfRange)
	_, err = matrix.MulParallel(context.Background(), wide, b)
	s.ErrorIs(err, matrix.ErrOutOfRange)
}

func (s *FixedSuite) TestSubmatrix() {
	m, err := matrix.FixedFromSlice[int, matrix.D4, matrix.D4](Sequence[int](16))
	s.Require().NoError(err)

	sub, err := matrix.Submatrix[matrix.D2, matrix.D2, matrix.D1, matrix.D1](m)
	s.Require().NoError(err)
	RequireRows(s.T(), [][]int{{5, 6}, {9, 10}}, sub)

	col, err := matrix.Submatrix[matrix.D4, matrix.D1, matrix.O0, matrix.D3](m)
	s.Require().NoError(err)
	RequireRows(s.T(), [][]int{{3}, {7}, {11}, {15}}, col)

	_, err = matrix.Submatrix[matrix.D2, matrix.D2, matrix.D3, matrix.O0](m)
	s.ErrorIs(err, matrix.ErrInvalidSubmatrixBounds)
	_, err = matrix.Submatrix[matrix.O0, matrix.D2, matrix.O0, matrix.O0](m)
	s.ErrorIs(err, matrix.ErrInvalidSubmatrixBounds)
}

func (s *FixedSuite) TestTranspose() {
	m, _ := matrix.FixedFromValues[int, matrix.D2, matrix.D3](1, 2, 3, 4, 5, 6)
	tr := m.Transpose()
	RequireRows(s.T(), [][]int{{1, 4}, {2, 5}, {3, 6}}, tr)
	s.True(m.Equal(tr.Transpose()))
	s.Equal("[1, 4]\n[2, 5]\n[3, 6]\n", tr.String())
}

func (s *FixedSuite) TestDeterminantMatchesGonum() {
	oracle := mat.NewDense(4, 4, s.sq4.ToDense().Values())
	s.InDelta(mat.Det(oracle), matrix.Determinant(s.sq4), tol)

	two, _ := matrix.FixedFromValues[int, matrix.D2, matrix.D2](4, 7, 2, 6)
	s.Equal(10.0, matrix.Determinant(two))
	five, err := matrix.NewFixed[float64, matrix.D1, matrix.D1]().Scale(5)
	s.Require().NoError(err)
	s.Equal(5.0, matrix.Determinant(five))
}

func (s *FixedSuite) TestInversePathsAgree() {
	cof, err := matrix.InverseCofactor(s.sq4)
	s.Require().NoError(err)
	gj, err := matrix.InverseGaussJordan(s.sq4)
	s.Require().NoError(err)
	part, err := matrix.InverseGaussJordan(s.sq4, matrix.PivotPartial)
	s.Require().NoError(err)

	RequireAllClose(s.T(), cof.ToDense(), gj.ToDense())
	RequireAllClose(s.T(), gj.ToDense(), part.ToDense())

	var oracle mat.Dense
	s.Require().NoError(oracle.Inverse(mat.NewDense(4, 4, s.sq4.ToDense().Values())))
	RequireAllClose(s.T(), matrix.NewFromSlice(4, 4, oracle.RawMatrix().Data), cof.ToDense())

	prod, err := matrix.Mul(s.sq4, cof)
	s.Require().NoError(err)
	RequireIdentity(s.T(), prod)

	one, _ := matrix.FixedFromValues[float64, matrix.D1, matrix.D1](4)
	inv1, err := matrix.InverseCofactor(one)
	s.Require().NoError(err)
	s.Equal(0.25, inv1.ToDense().Values()[0])
}

func (s *FixedSuite) TestSingular() {
	m, _ := matrix.FixedFromValues[float64, matrix.D2, matrix.D2](1, 2, 2, 4)

	_, err := matrix.InverseCofactor(m)
	s.ErrorIs(err, matrix.ErrNonInvertible)
	s.ErrorIs(err, matrix.ErrSingular)

	_, err = matrix.InverseGaussJordan(m)
	s.ErrorIs(err, matrix.ErrSingular)
	_, err = matrix.InverseGaussJordan(m, matrix.PivotPartial)
	s.ErrorIs(err, matrix.ErrSingular)
}

func TestFixedSuite(t *testing.T) {
	suite.Run(t, new(FixedSuite))
}

func TestFixed_CloneIsIndependent(t *testing.T) {
	var m matrix.Fixed[float64, matrix.D2, matrix.D2]
	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 3))
	require.False(t, m.Equal(c))
	require.Equal(t, "[1, 0]\n[0, 1]\n", m.String())
}

func TestFixed_ZeroValueConcurrentReads(t *testing.T) {
	var m matrix.Fixed[int, matrix.D3, matrix.D3]
	want := matrix.NewFixed[int, matrix.D3, matrix.D3]()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := m.At(1, 1)
			if err != nil || v != 1 {
				t.Errorf("At(1,1) = %d, %v", v, err)
			}
			if !m.Equal(want) {
				t.Error("zero value differs from identity")
			}
			_ = m.String()
			_ = m.ToDense()
			_ = m.Transpose()
		}()
	}
	wg.Wait()
}

func TestFixed_SetOnZeroValuePersists(t *testing.T) {
	var m matrix.Fixed[int, matrix.D2, matrix.D2]
	require.NoError(t, m.Set(0, 1, 7))
	RequireRows(t, [][]int{{1, 7}, {0, 1}}, &m)

	inv, err := matrix.InverseGaussJordan(&matrix.Fixed[float64, matrix.D2, matrix.D2]{})
	require.NoError(t, err)
	RequireIdentity(t, inv)
}
