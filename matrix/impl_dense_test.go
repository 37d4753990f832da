// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the allocation.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // alias still matches

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf checks the default numeric policy on Set.
func TestSetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.NoError(t, m.Set(0, 0, 7.89))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

func TestNewDenseFromRows(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())

	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	relaxed, err := matrix.NewDenseFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, _ := relaxed.At(0, 0)
	require.True(t, math.IsInf(v, 1))
}

// TestCloneIndependence verifies Clone produces a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, m.Set(0, 0, 42))

	v, err := c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestDoStopsEarly(t *testing.T) {
	m := FromRows(t, [][]float64{{5, 0, 7}, {0, 1, 2}})

	var seen int
	m.Do(func(i, j int, v float64) bool {
		seen++
		return v != 0
	})
	require.Equal(t, 2, seen, "scan must stop at the first zero (0,1)")
}

func TestApply(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * float64(i+1) }))
	require.Equal(t, [][]float64{{1, 2}, {6, 8}}, m.ToRows())

	err := m.Apply(func(i, j int, v float64) float64 { return math.Inf(-1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestString(t *testing.T) {
	m := FromRows(t, [][]float64{{0, 4.5}, {12, 0}})
	require.Equal(t, "[0, 4.5]\n[12, 0]\n", m.String())
}
