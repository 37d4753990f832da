// Package matrix provides the dense numeric substrate used by the
// assignment solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, a
//     read-only visitor (Do) and an in-place transform (Apply).
//   - Element-wise kernels: Hadamard products, per-row and per-column
//     minima, in-place broadcast subtraction and masked minima.
//   - Central validators (nil, square, same shape, non-negative) that
//     return plain sentinels so callers can wrap them uniformly.
//
// Numeric policy (NaN/Inf rejection, zero tolerance) is configured with
// functional options; see options.go.
package matrix
