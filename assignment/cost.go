// Cost utilities: the initial cost matrix C = F ⊙ D and the quadratic
// total cost of an assignment against the ORIGINAL flow and distance
// matrices.
//
// Inputs are checked nil → shape → values before any computation and are
// never mutated; the returned cost matrix is a fresh *Dense exclusively
// owned by the caller.

package assignment

import (
	"fmt"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
)

// BuildCostMatrix returns C with C[i][j] = F[i][j] * D[i][j].
//
// Contract:
//   - flow and dist are non-nil, square and of identical dimension N ≥ 1.
//   - Every entry is finite and non-negative.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrInvalidValue.
// Complexity: O(N²).
func BuildCostMatrix(flow, dist matrix.Matrix) (*matrix.Dense, error) {
	if _, err := validateInputs(flow, dist); err != nil {
		return nil, fmt.Errorf("BuildCostMatrix: %w", err)
	}

	c, err := matrix.Hadamard(flow, dist)
	if err != nil {
		return nil, fmt.Errorf("BuildCostMatrix: %w", err)
	}

	return c, nil
}

// TotalCost returns Σ_{(a,la)∈pairs} Σ_{(b,lb)∈pairs} F[a][b]·D[la][lb].
// Self-terms (a == b) contribute F[a][a]·D[la][la].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape or a pair index out of
// range), ErrInvalidValue.
// Complexity: O(k²) for k pairs.
func TotalCost(flow, dist matrix.Matrix, pairs []Pair) (float64, error) {
	n, err := validateInputs(flow, dist)
	if err != nil {
		return 0, fmt.Errorf("TotalCost: %w", err)
	}
	for _, p := range pairs {
		if p.Entity < 0 || p.Entity >= n || p.Location < 0 || p.Location >= n {
			return 0, fmt.Errorf("TotalCost: pair (%d,%d) outside %dx%d: %w",
				p.Entity, p.Location, n, n, ErrDimensionMismatch)
		}
	}

	var (
		sum    float64
		fv, dv float64
	)
	for _, a := range pairs {
		for _, b := range pairs {
			if fv, err = flow.At(a.Entity, b.Entity); err != nil {
				return 0, fmt.Errorf("TotalCost: %w", err)
			}
			if dv, err = dist.At(a.Location, b.Location); err != nil {
				return 0, fmt.Errorf("TotalCost: %w", err)
			}
			sum += fv * dv
		}
	}

	return sum, nil
}

// validateInputs checks nil → square → same size → values and returns N.
func validateInputs(flow, dist matrix.Matrix) (int, error) {
	if matrix.ValidateNotNil(flow) != nil {
		return 0, fmt.Errorf("flow: %w", ErrNilMatrix)
	}
	if matrix.ValidateNotNil(dist) != nil {
		return 0, fmt.Errorf("distance: %w", ErrNilMatrix)
	}
	if matrix.ValidateSquare(flow) != nil {
		return 0, fmt.Errorf("flow is %dx%d: %w", flow.Rows(), flow.Cols(), ErrDimensionMismatch)
	}
	if matrix.ValidateSquare(dist) != nil {
		return 0, fmt.Errorf("distance is %dx%d: %w", dist.Rows(), dist.Cols(), ErrDimensionMismatch)
	}
	if flow.Rows() != dist.Rows() {
		return 0, fmt.Errorf("flow is %dx%d, distance is %dx%d: %w",
			flow.Rows(), flow.Cols(), dist.Rows(), dist.Cols(), ErrDimensionMismatch)
	}
	if err := matrix.ValidateNonNegative(flow); err != nil {
		return 0, fmt.Errorf("flow: %w: %w", ErrInvalidValue, err)
	}
	if err := matrix.ValidateNonNegative(dist); err != nil {
		return 0, fmt.Errorf("distance: %w: %w", ErrInvalidValue, err)
	}

	return flow.Rows(), nil
}
