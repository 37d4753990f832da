package matrix_test

import (
	"math"
	"testing"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquareNonNil(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(MustDense(t, 3, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
}

func TestValidateBinarySameShape(t *testing.T) {
	require.NoError(t, matrix.ValidateBinarySameShape(MustDense(t, 2, 3), MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(MustDense(t, 2, 3), MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(MustDense(t, 2, 3), MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, MustDense(t, 2, 2)), matrix.ErrNilMatrix)
}

func TestValidateNonNegative(t *testing.T) {
	require.NoError(t, matrix.ValidateNonNegative(FromRows(t, [][]float64{{0, 1}, {2, 3}})))

	err := matrix.ValidateNonNegative(FromRows(t, [][]float64{{0, 1}, {-2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNegative)
	require.Contains(t, err.Error(), "(1,0)")

	// Tiny negative drift is tolerated under an explicit epsilon.
	drift := FromRows(t, [][]float64{{-1e-12}})
	require.ErrorIs(t, matrix.ValidateNonNegative(drift), matrix.ErrNegative)
	require.NoError(t, matrix.ValidateNonNegative(drift, matrix.WithEpsilon(1e-9)))

	inf, err := matrix.NewDenseFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateNonNegative(inf), matrix.ErrNaNInf)
}
