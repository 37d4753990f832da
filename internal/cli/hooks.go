package cli

import (
	"fmt"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/internal/logging"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
)

// traceOptions routes solver hooks to debug records. Nothing is attached
// when debug logging is off, so the solver skips its snapshots.
func traceOptions(log *logging.Logger) []assignment.Option {
	if !log.Enabled(logging.LevelDebug) {
		return nil
	}

	return []assignment.Option{
		assignment.WithOnStage(func(s assignment.Stage, m matrix.Matrix) {
			log.Debug("stage", "stage", s.String(), "matrix", fmt.Sprint(m))
		}),
		assignment.WithOnIteration(func(ev assignment.IterationEvent) {
			log.Debug("adjusted",
				"iteration", ev.Iteration,
				"covered_rows", ev.Cover.CoveredRows(),
				"covered_cols", ev.Cover.CoveredCols(),
				"min_uncovered", ev.MinUncovered,
			)
		}),
	}
}
