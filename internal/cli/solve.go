package cli

import (
	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/instance"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/internal/config"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/report"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	var dump bool
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a built-in instance and print the assignment",
		Long: `Solve a built-in instance and print the assignment and its total cost.

The greedy mode reproduces the classic reduction procedure and may stop on a
partial assignment; this is reported as an error unless --allow-partial is
set. The optimal mode runs Kuhn–Munkres on the same cost matrix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSolve(cmd, dump)
		},
	}

	f := cmd.Flags()
	f.StringP("instance", "i", defaults.Instance, "built-in instance to solve (see 'hongroise instances')")
	f.StringP("mode", "m", defaults.Solver.Mode, "extraction mode: greedy or optimal")
	f.Int("max-iterations", defaults.Solver.MaxIterations, "bound on cover/adjust rounds")
	f.Bool("allow-partial", defaults.Solver.AllowPartial, "accept an incomplete greedy assignment")
	f.Float64("epsilon", defaults.Solver.Epsilon, "tolerance under which a reduced cost counts as zero")
	f.StringP("format", "f", defaults.Output.Format, "output format: json, table, text or yaml")
	f.BoolVar(&dump, "dump", false, "dump the full result to stderr")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, dump bool) error {
	in, err := instance.Lookup(a.cfg.Instance)
	if err != nil {
		return err
	}
	opts, err := a.cfg.SolverOptions()
	if err != nil {
		return err
	}
	log := a.log.WithInstance(in.Name).WithMode(a.cfg.Solver.Mode)

	opts = append(opts, assignment.WithContext(cmd.Context()))
	opts = append(opts, traceOptions(log)...)
	res, err := in.Solve(opts...)
	if dump {
		spew.Fdump(cmd.ErrOrStderr(), res)
	}
	if err != nil {
		log.Error("solve failed", "error", err, "pairs", len(res.Pairs), "size", in.Size())
		return err
	}

	log.Info("solved",
		"cost", res.Cost,
		"lower_bound", res.LowerBound,
		"iterations", res.Iterations,
		"complete", res.Complete,
	)
	if !res.Complete {
		log.Warn("partial assignment", "pairs", len(res.Pairs), "size", in.Size())
	}

	return report.Render(cmd.OutOrStdout(), in.Name, res, a.cfg.Output.Format)
}
