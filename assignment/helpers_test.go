package assignment_test

import (
	"testing"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
	"github.com/stretchr/testify/require"
)

// Fixtures of the 4-commerce reference problem.
var (
	refFlow = [][]float64{
		{0, 1, 0, 1},
		{1, 0, 0, 2},
		{0, 0, 0, 2},
		{1, 2, 3, 0},
	}
	refDist = [][]float64{
		{0, 4, 3, 5},
		{4, 0, 5, 4},
		{3, 5, 0, 4},
		{5, 4, 4, 0},
	}
	refCost = [][]float64{
		{0, 4, 0, 5},
		{4, 0, 0, 8},
		{0, 0, 0, 8},
		{5, 8, 12, 0},
	}
)

// hide masks *matrix.Dense so callers take their interface path.
type hide struct{ matrix.Matrix }

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// filled returns an n×n row slice holding v everywhere.
func filled(n int, v float64) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = v
		}
	}

	return rows
}

// requireNoReuse fails when an entity or location index repeats.
func requireNoReuse(t *testing.T, n int, pairs []assignment.Pair) {
	t.Helper()
	rows, cols := make([]bool, n), make([]bool, n)
	for _, p := range pairs {
		require.False(t, rows[p.Entity], "entity %d reused", p.Entity)
		require.False(t, cols[p.Location], "location %d reused", p.Location)
		rows[p.Entity], cols[p.Location] = true, true
	}
}
