package assignment

import (
	"fmt"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
)

// ExtractGreedy scans c in row-major order and takes every zero cell whose
// row and column are both still free.
//
// Guarantees: no entity or location index appears twice.
// Limitation: the scan never backtracks, so it may return fewer than N
// pairs even when a complete zero matching exists.
//
// Complexity: O(N²).
func ExtractGreedy(c *matrix.Dense, eps float64) ([]Pair, error) {
	if c == nil {
		return nil, fmt.Errorf("ExtractGreedy: %w", ErrNilMatrix)
	}

	var (
		rowUsed = make([]bool, c.Rows())
		colUsed = make([]bool, c.Cols())
		pairs   = make([]Pair, 0, c.Rows())
	)
	c.Do(func(i, j int, v float64) bool {
		if isZero(v, eps) && !rowUsed[i] && !colUsed[j] {
			pairs = append(pairs, Pair{Entity: i, Location: j})
			rowUsed[i], colUsed[j] = true, true
		}
		return true
	})

	return pairs, nil
}
