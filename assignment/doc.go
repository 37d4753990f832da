// Package assignment solves the entity/location assignment problem by the
// reduction method: build a cost matrix from flow and distance, reduce it,
// cover its zeros, adjust, and extract an assignment.
//
// Overview:
//
//   - BuildCostMatrix computes C[i][j] = F[i][j]·D[i][j].
//   - Reduce subtracts row minima, then column minima, in place.
//   - Converge alternates FindCover and Adjust until the cover count
//     reaches N (bounded by MaxIterations).
//   - ExtractGreedy takes free zero cells in row-major order.
//   - ExtractOptimal runs Kuhn–Munkres on the same matrix.
//   - TotalCost evaluates Σ F[a][b]·D[la][lb] over every ordered couple of
//     assigned pairs, against the original F and D.
//
// Solve chains the stages; SolveRows accepts row-slice literals.
//
// Modes:
//
//   - ModeGreedy reproduces the classic greedy procedure exactly. Its cover
//     is not a minimum vertex cover and its extraction never backtracks, so
//     the assignment may be partial or non-optimal.
//   - ModeOptimal is a separate, exact strategy. It is never substituted
//     for greedy implicitly.
//
// Error handling (sentinel errors):
//
//   - ErrDimensionMismatch: F or D not square, or sizes differ.
//   - ErrNilMatrix: nil input.
//   - ErrInvalidValue: negative or non-finite entry.
//   - ErrConvergenceFailure: cover/adjust loop exceeded MaxIterations.
//   - ErrIncompleteAssignment: greedy extraction produced fewer than N pairs.
//   - ErrOptionViolation, ErrUnsupportedMode: bad options.
//
// Ownership:
//
// Each solve allocates its own cost matrix and mutates only that matrix.
// F and D are read-only. Separate solves share nothing and may run
// concurrently.
//
// Complexity:
//
//   - Build, Reduce, FindCover, Adjust, ExtractGreedy: O(N²) each.
//   - Converge: O(k·N²) for k rounds.
//   - ExtractOptimal: O(N³).
//   - TotalCost: O(N²).
package assignment
