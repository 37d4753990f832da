package assignment

import (
	"fmt"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
)

// Converge alternates FindCover and Adjust on c until the cover count
// reaches N, and returns the number of adjustment rounds performed.
//
// Options used: Ctx, MaxIterations, Epsilon, OnIteration.
//
// Errors:
//   - ErrOptionViolation for invalid options,
//   - ErrConvergenceFailure once MaxIterations rounds did not suffice,
//   - the context error on cancellation.
func Converge(c *matrix.Dense, opts ...Option) (int, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return 0, fmt.Errorf("Converge: %w", err)
	}

	return converge(c, o)
}

func converge(c *matrix.Dense, o Options) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("Converge: %w", ErrNilMatrix)
	}
	n := c.Rows()

	var (
		iter  int
		cover Cover
		shift float64
		err   error
	)
	for iter = 0; ; iter++ {
		if err = o.Ctx.Err(); err != nil {
			return iter, fmt.Errorf("Converge: %w", err)
		}
		if cover, err = FindCover(c, o.Epsilon); err != nil {
			return iter, fmt.Errorf("Converge: %w", err)
		}
		if cover.Count() >= n {
			return iter, nil
		}
		if iter >= o.MaxIterations {
			return iter, fmt.Errorf("Converge: cover %d of %d after %d rounds: %w",
				cover.Count(), n, iter, ErrConvergenceFailure)
		}
		if shift, err = Adjust(c, cover); err != nil {
			return iter, fmt.Errorf("Converge: %w", err)
		}
		if o.OnIteration != nil {
			o.OnIteration(IterationEvent{Iteration: iter + 1, Cover: cover, MinUncovered: shift})
		}
	}
}
