package assignment

import (
	"fmt"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
)

// ReduceRows subtracts each row's minimum from every cell of that row, in
// place, and returns the subtracted minima.
// Complexity: O(N²).
func ReduceRows(c *matrix.Dense) ([]float64, error) {
	if c == nil {
		return nil, fmt.Errorf("ReduceRows: %w", ErrNilMatrix)
	}
	mins, err := matrix.RowMins(c)
	if err != nil {
		return nil, fmt.Errorf("ReduceRows: %w", err)
	}
	if err = matrix.SubRowsInPlace(c, mins); err != nil {
		return nil, fmt.Errorf("ReduceRows: %w", err)
	}

	return mins, nil
}

// ReduceColumns subtracts each column's minimum from every cell of that
// column, in place, and returns the subtracted minima.
// Complexity: O(N²).
func ReduceColumns(c *matrix.Dense) ([]float64, error) {
	if c == nil {
		return nil, fmt.Errorf("ReduceColumns: %w", ErrNilMatrix)
	}
	mins, err := matrix.ColMins(c)
	if err != nil {
		return nil, fmt.Errorf("ReduceColumns: %w", err)
	}
	if err = matrix.SubColsInPlace(c, mins); err != nil {
		return nil, fmt.Errorf("ReduceColumns: %w", err)
	}

	return mins, nil
}

// Reduce runs ReduceRows then ReduceColumns and returns the total amount
// removed, a lower bound on Σ C[i][π(i)] for any permutation π.
//
// Postcondition: every row and every column holds a zero and no cell is
// negative. A second call on the result is a no-op returning 0.
func Reduce(c *matrix.Dense) (float64, error) {
	rows, err := ReduceRows(c)
	if err != nil {
		return 0, err
	}
	cols, err := ReduceColumns(c)
	if err != nil {
		return 0, err
	}

	var bound float64
	for _, v := range rows {
		bound += v
	}
	for _, v := range cols {
		bound += v
	}

	return bound, nil
}
