package assignment_test

import (
	"testing"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
	"github.com/stretchr/testify/require"
)

func TestExtractGreedy(t *testing.T) {
	tests := []struct {
		name string
		in   [][]float64
		want []assignment.Pair
	}{
		{
			name: "reference diagonal",
			in:   refCost,
			want: []assignment.Pair{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
		{
			name: "all zero picks diagonal",
			in:   filled(3, 0),
			want: []assignment.Pair{{0, 0}, {1, 1}, {2, 2}},
		},
		{
			name: "anti diagonal",
			in:   [][]float64{{1, 0}, {0, 1}},
			want: []assignment.Pair{{0, 1}, {1, 0}},
		},
		{
			name: "no backtracking leaves a row free",
			in:   [][]float64{{0, 0}, {0, 4}},
			want: []assignment.Pair{{0, 0}},
		},
		{
			name: "skips rows without free zero",
			in:   [][]float64{{1, 1, 0}, {1, 2, 2}, {0, 2, 3}},
			want: []assignment.Pair{{0, 2}, {2, 0}},
		},
		{
			name: "no zero at all",
			in:   [][]float64{{1, 2}, {3, 4}},
			want: []assignment.Pair{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pairs, err := assignment.ExtractGreedy(dense(t, tc.in), 0)
			require.NoError(t, err)
			require.Equal(t, tc.want, pairs)
			requireNoReuse(t, len(tc.in), pairs)
		})
	}
}

func TestExtractGreedy_Nil(t *testing.T) {
	_, err := assignment.ExtractGreedy(nil, 0)
	require.ErrorIs(t, err, assignment.ErrNilMatrix)
}
