package assignment

import (
	"fmt"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
)

// Adjust shifts c according to cover and returns the shift amount m:
//   - m = min over cells whose row AND column are uncovered (0 if none),
//   - doubly uncovered cells lose m,
//   - doubly covered cells gain m,
//   - singly covered cells are unchanged.
//
// Since m is the smallest doubly uncovered value, no such cell turns
// negative and at least one of them becomes zero.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (cover length ≠ N).
// Complexity: O(N²).
func Adjust(c *matrix.Dense, cover Cover) (float64, error) {
	if c == nil {
		return 0, fmt.Errorf("Adjust: %w", ErrNilMatrix)
	}
	n := c.Rows()
	if c.Cols() != n || len(cover.Rows) != n || len(cover.Cols) != n {
		return 0, fmt.Errorf("Adjust: cover %d/%d for %dx%d matrix: %w",
			len(cover.Rows), len(cover.Cols), c.Rows(), c.Cols(), ErrDimensionMismatch)
	}

	uncovered := func(i, j int) bool { return !cover.Rows[i] && !cover.Cols[j] }
	shift, _, err := matrix.MinWhere(c, uncovered)
	if err != nil {
		return 0, fmt.Errorf("Adjust: %w", err)
	}

	err = c.Apply(func(i, j int, v float64) float64 {
		switch {
		case uncovered(i, j):
			return v - shift
		case cover.Rows[i] && cover.Cols[j]:
			return v + shift
		default:
			return v
		}
	})
	if err != nil {
		return 0, fmt.Errorf("Adjust: %w", err)
	}

	return shift, nil
}
