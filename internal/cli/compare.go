package cli

import (
	"fmt"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/instance"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/internal/config"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/report"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"
)

type modeOutcome struct {
	res assignment.Result
	err error
}

func newCompareCmd(a *app) *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Solve one instance in every mode and print the reports side by side",
		Long: `Solve one instance in every mode and print one report per mode, in
mode order. Partial greedy assignments are shown rather than rejected.`,
		Args: cobra.NoArgs,
		RunE: a.runCompare,
	}

	f := cmd.Flags()
	f.StringP("instance", "i", defaults.Instance, "built-in instance to solve")
	f.Int("max-iterations", defaults.Solver.MaxIterations, "bound on cover/adjust rounds")
	f.Float64("epsilon", defaults.Solver.Epsilon, "tolerance under which a reduced cost counts as zero")
	f.StringP("format", "f", defaults.Output.Format, "output format: json, table, text or yaml")

	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, _ []string) error {
	in, err := instance.Lookup(a.cfg.Instance)
	if err != nil {
		return err
	}
	base, err := a.cfg.SolverOptions()
	if err != nil {
		return err
	}

	modes := assignment.Modes()
	outcomes := make([]modeOutcome, len(modes))

	var wg conc.WaitGroup
	for i, mode := range modes {
		log := a.log.WithInstance(in.Name).WithMode(mode.String())
		opts := append([]assignment.Option{}, base...)
		opts = append(opts,
			assignment.WithMode(mode),
			assignment.WithAllowPartial(),
			assignment.WithContext(cmd.Context()),
		)
		opts = append(opts, traceOptions(log)...)

		i, opts := i, opts // per-iteration copies; go.mod targets go 1.21 loop semantics
		wg.Go(func() {
			res, err := in.Solve(opts...)
			outcomes[i] = modeOutcome{res: res, err: err}
		})
	}
	wg.Wait()

	out := cmd.OutOrStdout()
	for i, mode := range modes {
		if err := outcomes[i].err; err != nil {
			return fmt.Errorf("%s: %w", mode, err)
		}
		fmt.Fprintf(out, "== %s ==\n", mode)
		if err := report.Render(out, in.Name, outcomes[i].res, a.cfg.Output.Format); err != nil {
			return err
		}
		if i < len(modes)-1 {
			fmt.Fprintln(out)
		}
	}

	return nil
}
