package assignment

import (
	"fmt"
	"math"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
)

// Cover marks the rows and columns chosen to contain every zero cell.
type Cover struct {
	Rows []bool
	Cols []bool
}

// NewCover returns an empty cover for an n×n matrix.
func NewCover(n int) Cover {
	return Cover{Rows: make([]bool, n), Cols: make([]bool, n)}
}

// CoveredRows counts covered rows.
func (c Cover) CoveredRows() int { return countTrue(c.Rows) }

// CoveredCols counts covered columns.
func (c Cover) CoveredCols() int { return countTrue(c.Cols) }

// Count is CoveredRows + CoveredCols, the quantity compared to N by the
// convergence test.
func (c Cover) Count() int { return c.CoveredRows() + c.CoveredCols() }

// Covers reports whether cell (i, j) lies in a covered row or column.
func (c Cover) Covers(i, j int) bool { return c.Rows[i] || c.Cols[j] }

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}

	return n
}

// FindCover scans rows top to bottom. A row holding at least one zero is
// covered, and so is every column holding a zero in that row.
//
// This greedy rule is not König's minimum cover: it always covers every
// row that has a zero, so after Reduce it covers all rows at once.
//
// Complexity: O(N²).
func FindCover(c *matrix.Dense, eps float64) (Cover, error) {
	if c == nil {
		return Cover{}, fmt.Errorf("FindCover: %w", ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(c); err != nil {
		return Cover{}, fmt.Errorf("FindCover: %w: %w", ErrDimensionMismatch, err)
	}

	cover := NewCover(c.Rows())
	c.Do(func(i, j int, v float64) bool {
		if isZero(v, eps) {
			cover.Rows[i] = true
			cover.Cols[j] = true
		}
		return true
	})

	return cover, nil
}

// isZero is the single zero test of the package.
func isZero(v, eps float64) bool {
	return math.Abs(v) <= eps
}
