package assignment

import (
	"fmt"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
)

// Solve assigns N entities to N locations given flow F and distance D.
//
// Pipeline:
//  1. C = F ⊙ D                           (StageBuild)
//  2. row then column reduction          (StageReduce)
//  3. ModeGreedy: cover/adjust loop      (StageConverge)
//     then row-major zero scan           (StageExtract)
//     ModeOptimal: Kuhn–Munkres on C     (StageExtract)
//  4. Cost = Σ F[a][b]·D[la][lb] on the ORIGINAL F and D.
//
// An incomplete greedy assignment is returned together with
// ErrIncompleteAssignment unless WithAllowPartial was given; the Result is
// populated in both cases. flow and dist are never mutated.
//
// Errors: ErrOptionViolation, ErrNilMatrix, ErrDimensionMismatch,
// ErrInvalidValue, ErrConvergenceFailure, ErrIncompleteAssignment, or the
// context error.
func Solve(flow, dist matrix.Matrix, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	if err = o.Ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	c, err := BuildCostMatrix(flow, dist)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	o.stage(StageBuild, c)

	res := Result{Mode: o.Mode, Initial: c.CloneDense()}
	if res.LowerBound, err = Reduce(c); err != nil {
		return res, fmt.Errorf("Solve: %w", err)
	}
	o.stage(StageReduce, c)

	switch o.Mode {
	case ModeOptimal:
		res.Pairs, err = ExtractOptimal(c)
	default:
		if res.Iterations, err = converge(c, o); err != nil {
			res.Final = c
			return res, fmt.Errorf("Solve: %w", err)
		}
		o.stage(StageConverge, c)
		res.Pairs, err = ExtractGreedy(c, o.Epsilon)
	}
	if err != nil {
		return res, fmt.Errorf("Solve: %w", err)
	}
	o.stage(StageExtract, c)
	res.Final = c

	if res.Cost, err = TotalCost(flow, dist, res.Pairs); err != nil {
		return res, fmt.Errorf("Solve: %w", err)
	}
	n := c.Rows()
	res.Complete = len(res.Pairs) == n
	if !res.Complete && !o.AllowPartial {
		return res, fmt.Errorf("Solve: %d of %d pairs: %w", len(res.Pairs), n, ErrIncompleteAssignment)
	}

	return res, nil
}

// SolveRows is Solve over row-slice literals.
func SolveRows(flow, dist [][]float64, opts ...Option) (Result, error) {
	f, err := matrix.NewDenseFromRows(flow)
	if err != nil {
		return Result{}, fmt.Errorf("SolveRows: flow: %w", err)
	}
	d, err := matrix.NewDenseFromRows(dist)
	if err != nil {
		return Result{}, fmt.Errorf("SolveRows: distance: %w", err)
	}

	return Solve(f, d, opts...)
}
