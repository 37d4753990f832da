package assignment

import (
	"fmt"
	"math"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
)

// ExtractOptimal solves the linear assignment problem on c exactly with
// the Kuhn–Munkres method using row/column potentials (shortest augmenting
// path per row). Pairs are returned in entity order and always cover every
// row and column.
//
// c is read, never mutated. Reducing c beforehand does not change the
// optimal permutation.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(N³) time, O(N) extra space.
func ExtractOptimal(c *matrix.Dense) ([]Pair, error) {
	if c == nil {
		return nil, fmt.Errorf("ExtractOptimal: %w", ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(c); err != nil {
		return nil, fmt.Errorf("ExtractOptimal: %w: %w", ErrDimensionMismatch, err)
	}

	var (
		n    = c.Rows()
		cost = c.ToRows()
		inf  = math.Inf(1)
		// Index 0 is a virtual column used as the root of each search.
		u      = make([]float64, n+1) // row potentials
		v      = make([]float64, n+1) // column potentials
		owner  = make([]int, n+1)     // owner[j] = row matched to column j (1-based, 0 = free)
		prev   = make([]int, n+1)     // previous column on the alternating path
		slack  = make([]float64, n+1) // reduced-cost frontier per column
		inTree = make([]bool, n+1)
	)

	for row := 1; row <= n; row++ {
		owner[0] = row
		col := 0
		for j := 0; j <= n; j++ {
			slack[j] = inf
			inTree[j] = false
		}

		// Grow the alternating tree until a free column is reached.
		for {
			inTree[col] = true
			i := owner[col]
			delta, next := inf, 0
			for j := 1; j <= n; j++ {
				if inTree[j] {
					continue
				}
				if rc := cost[i-1][j-1] - u[i] - v[j]; rc < slack[j] {
					slack[j] = rc
					prev[j] = col
				}
				if slack[j] < delta {
					delta, next = slack[j], j
				}
			}
			for j := 0; j <= n; j++ {
				if inTree[j] {
					u[owner[j]] += delta
					v[j] -= delta
				} else {
					slack[j] -= delta
				}
			}
			col = next
			if owner[col] == 0 {
				break
			}
		}

		// Flip the path back to the root.
		for col != 0 {
			p := prev[col]
			owner[col] = owner[p]
			col = p
		}
	}

	perm := make([]int, n)
	for j := 1; j <= n; j++ {
		perm[owner[j]-1] = j - 1
	}
	pairs := make([]Pair, n)
	for i, j := range perm {
		pairs[i] = Pair{Entity: i, Location: j}
	}

	return pairs, nil
}
