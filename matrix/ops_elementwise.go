// SPDX-License-Identifier: MIT

// Package matrix - element-wise kernels.
//
// Purpose:
//   - Hadamard product of two same-shape matrices.
//   - Per-row / per-column minima and their in-place broadcast subtraction.
//   - Masked minimum (minimum over the cells a predicate keeps).
//   - Tolerance-based comparison for tests and invariance checks.
//
// Determinism:
//   - Fixed i→j loop order everywhere; ties resolve to the first cell seen.
//
// AI-Hints:
//   - Pass *Dense to unlock flat-slice fast paths.
//   - Keep broadcast vectors (row/col minima) around when the caller needs
//     to report them (e.g. lower bounds).

package matrix

import (
	"fmt"
	"math"
)

// Operation tags for unified error wrapping.
const (
	opHadamard = "Hadamard"
	opRowMins  = "RowMins"
	opColMins  = "ColMins"
	opSubRows  = "SubRowsInPlace"
	opSubCols  = "SubColsInPlace"
	opMinWhere = "MinWhere"
	opAllClose = "AllClose"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Hadamard returns the element-wise product out[i,j] = a[i,j] * b[i,j].
//
// Contract: a, b non-nil with identical shapes. The result is a fresh
// *Dense owned by the caller.
// Fast-path: both *Dense → single pass over the flat buffers.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var idx int
			for idx = 0; idx < rows*cols; idx++ {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop using At/Set.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			if err = res.Set(i, j, av*bv); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
		}
	}

	return res, nil
}

// RowMins returns mins[i] = min_j m[i,j].
// Complexity: Time O(r*c), Space O(r).
func RowMins(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowMins, err)
	}
	r, c := m.Rows(), m.Cols()
	mins := make([]float64, r)
	for i := 0; i < r; i++ {
		mins[i] = math.Inf(1)
	}

	if d, ok := m.(*Dense); ok {
		d.Do(func(i, _ int, v float64) bool {
			if v < mins[i] {
				mins[i] = v
			}
			return true
		})

		return mins, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowMins, err)
			}
			if v < mins[i] {
				mins[i] = v
			}
		}
	}

	return mins, nil
}

// ColMins returns mins[j] = min_i m[i,j].
// Complexity: Time O(r*c), Space O(c).
func ColMins(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColMins, err)
	}
	r, c := m.Rows(), m.Cols()
	mins := make([]float64, c)
	for j := 0; j < c; j++ {
		mins[j] = math.Inf(1)
	}

	if d, ok := m.(*Dense); ok {
		d.Do(func(_, j int, v float64) bool {
			if v < mins[j] {
				mins[j] = v
			}
			return true
		})

		return mins, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opColMins, err)
			}
			if v < mins[j] {
				mins[j] = v
			}
		}
	}

	return mins, nil
}

// SubRowsInPlace computes d[i,j] -= v[i] for every cell.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(v) != Rows), ErrNaNInf.
// Complexity: Time O(r*c), Space O(1).
func SubRowsInPlace(d *Dense, v []float64) error {
	if d == nil {
		return matrixErrorf(opSubRows, ErrNilMatrix)
	}
	if len(v) != d.r {
		return matrixErrorf(opSubRows, ErrDimensionMismatch)
	}
	if err := d.Apply(func(i, _ int, x float64) float64 { return x - v[i] }); err != nil {
		return matrixErrorf(opSubRows, err)
	}

	return nil
}

// SubColsInPlace computes d[i,j] -= v[j] for every cell.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(v) != Cols), ErrNaNInf.
// Complexity: Time O(r*c), Space O(1).
func SubColsInPlace(d *Dense, v []float64) error {
	if d == nil {
		return matrixErrorf(opSubCols, ErrNilMatrix)
	}
	if len(v) != d.c {
		return matrixErrorf(opSubCols, ErrDimensionMismatch)
	}
	if err := d.Apply(func(_, j int, x float64) float64 { return x - v[j] }); err != nil {
		return matrixErrorf(opSubCols, err)
	}

	return nil
}

// MinWhere returns the minimum over the cells for which keep(i, j) is true.
// found is false when keep rejects every cell (lo is then 0).
//
// Complexity: Time O(r*c), Space O(1).
func MinWhere(m Matrix, keep func(i, j int) bool) (lo float64, found bool, err error) {
	if err = ValidateNotNil(m); err != nil {
		return 0, false, matrixErrorf(opMinWhere, err)
	}
	if keep == nil {
		keep = func(int, int) bool { return true }
	}

	lo = math.Inf(1)
	visit := func(i, j int, v float64) bool {
		if keep(i, j) && v < lo {
			lo, found = v, true
		}
		return true
	}

	if d, ok := m.(*Dense); ok {
		d.Do(visit)
	} else {
		r, c := m.Rows(), m.Cols()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v, e := m.At(i, j)
				if e != nil {
					return 0, false, matrixErrorf(opMinWhere, e)
				}
				visit(i, j, v)
			}
		}
	}
	if !found {
		return 0, false, nil
	}

	return lo, true, nil
}

// AllClose reports whether |a[i,j]-b[i,j]| <= atol for every cell.
// NaN never compares close; equal infinities do.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	atol = math.Abs(atol)

	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.IsNaN(av) || math.IsNaN(bv) {
				return false, nil
			}
			if av == bv {
				continue
			}
			if math.Abs(av-bv) > atol {
				return false, nil
			}
		}
	}

	return true, nil
}
