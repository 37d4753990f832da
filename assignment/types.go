package assignment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
)

// Sentinel errors. Call sites wrap them with an operation tag; callers
// match with errors.Is.
var (
	// ErrDimensionMismatch is returned when the flow or distance matrix is
	// not square, when their sizes differ, or when a cover/assignment does
	// not match the cost matrix dimension.
	ErrDimensionMismatch = errors.New("assignment: dimension mismatch")

	// ErrNilMatrix is returned when a required matrix is nil.
	ErrNilMatrix = errors.New("assignment: nil matrix")

	// ErrInvalidValue is returned when a flow or distance entry is negative,
	// NaN or infinite.
	ErrInvalidValue = errors.New("assignment: negative or non-finite entry")

	// ErrConvergenceFailure is returned when the cover/adjust loop exceeds
	// its iteration bound without covering the matrix.
	ErrConvergenceFailure = errors.New("assignment: cover did not converge within the iteration bound")

	// ErrIncompleteAssignment is returned when extraction yields fewer than
	// N pairs and partial results were not explicitly allowed.
	ErrIncompleteAssignment = errors.New("assignment: incomplete assignment")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("assignment: invalid option supplied")

	// ErrUnsupportedMode is returned for an unknown Mode value or name.
	ErrUnsupportedMode = errors.New("assignment: unsupported mode")
)

// Mode selects the extraction strategy applied after reduction.
//
//   - ModeGreedy: greedy row cover, cover/adjust loop, row-major zero scan.
//     Fast and reproducible, but may stop on a partial or non-optimal
//     assignment for some inputs.
//   - ModeOptimal: Kuhn–Munkres with row/column potentials on the same
//     cost matrix. Always complete and minimal in Σ C[i][π(i)].
type Mode int

const (
	// ModeGreedy is the default heuristic pipeline.
	ModeGreedy Mode = iota

	// ModeOptimal is the exact linear assignment solver.
	ModeOptimal
)

var modeNames = map[Mode]string{
	ModeGreedy:  "greedy",
	ModeOptimal: "optimal",
}

// String returns the stable lowercase name of the mode.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// Modes lists every supported mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeGreedy, ModeOptimal}
}

// ParseMode maps a case-insensitive name to a Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes() {
		if modeNames[m] == name {
			return m, nil
		}
	}

	return ModeGreedy, fmt.Errorf("ParseMode(%q): %w", s, ErrUnsupportedMode)
}

// Pair assigns entity (commerce) Entity to location (emplacement) Location.
type Pair struct {
	Entity   int `json:"entity" yaml:"entity"`
	Location int `json:"location" yaml:"location"`
}

// Stage names a pipeline checkpoint reported through Options.OnStage.
type Stage int

const (
	// StageBuild fires after the cost matrix has been built.
	StageBuild Stage = iota
	// StageReduce fires after row and column reduction.
	StageReduce
	// StageConverge fires after the cover/adjust loop terminates.
	StageConverge
	// StageExtract fires after the assignment has been extracted.
	StageExtract
)

// String returns the stage name used in logs.
func (s Stage) String() string {
	switch s {
	case StageBuild:
		return "build"
	case StageReduce:
		return "reduce"
	case StageConverge:
		return "converge"
	case StageExtract:
		return "extract"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// IterationEvent describes one adjustment round of the convergence loop.
type IterationEvent struct {
	// Iteration is 1-based.
	Iteration int
	// Cover is the insufficient cover the adjustment was computed from.
	Cover Cover
	// MinUncovered is the value subtracted from doubly uncovered cells.
	MinUncovered float64
}

// Result holds the outcome of Solve.
type Result struct {
	// Mode is the strategy that produced Pairs.
	Mode Mode

	// Pairs lists the assignment in extraction order. Entity and location
	// indices are each used at most once.
	Pairs []Pair

	// Cost is Σ F[a][b]·D[la][lb] over every ordered couple of pairs,
	// self-terms included, computed on the original matrices.
	Cost float64

	// LowerBound is the sum of the row and column minima removed during
	// reduction.
	LowerBound float64

	// Iterations counts adjustment rounds of the convergence loop.
	Iterations int

	// Complete is true when len(Pairs) equals the problem size.
	Complete bool

	// Initial is the cost matrix before reduction.
	Initial *matrix.Dense

	// Final is the cost matrix the assignment was extracted from.
	Final *matrix.Dense
}

// Size returns the problem dimension N (0 for an empty Result).
func (r Result) Size() int {
	if r.Initial == nil {
		return 0
	}

	return r.Initial.Rows()
}

// Permutation returns perm[entity] = location, with -1 for entities left
// unassigned.
func (r Result) Permutation() []int {
	perm := make([]int, r.Size())
	for i := range perm {
		perm[i] = -1
	}
	for _, p := range r.Pairs {
		if p.Entity >= 0 && p.Entity < len(perm) {
			perm[p.Entity] = p.Location
		}
	}

	return perm
}
