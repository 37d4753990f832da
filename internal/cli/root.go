// Package cli wires the hongroise command tree: configuration, logging and
// the solve, compare and instances commands.
package cli

import (
	"context"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/internal/config"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/internal/logging"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *logging.Logger
}

// flagBindings maps config keys to the flag names that override them.
var flagBindings = map[string]string{
	"instance":              "instance",
	"solver.mode":           "mode",
	"solver.max_iterations": "max-iterations",
	"solver.allow_partial":  "allow-partial",
	"solver.epsilon":        "epsilon",
	"output.format":         "format",
	"logging.level":         "log-level",
	"logging.format":        "log-format",
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logging.NopLogger()}
	defaults := config.Default()

	root := &cobra.Command{
		Use:   "hongroise",
		Short: "Assign commerces to emplacements by the reduction method",
		Long: `hongroise builds the cost matrix C = F ⊙ D from a flow matrix and a
distance matrix, reduces it, covers and adjusts its zeros, and extracts an
assignment of commerces to emplacements with its total cost.

Settings come from flags, HONGROISE_* environment variables and an optional
YAML config file, in that order of precedence.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.config/hongroise/config.yaml)")
	pf.String("log-level", defaults.Logging.Level, "log level: DEBUG, INFO, WARN or ERROR")
	pf.String("log-format", defaults.Logging.Format, "log format: text or json")

	root.AddCommand(
		newSolveCmd(a),
		newCompareCmd(a),
		newInstancesCmd(),
	)

	return root
}

// initConfig loads configuration once flags are parsed, then builds the
// logger from it.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	for key, name := range flagBindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	a.log.Debug("config loaded", "file", v.ConfigFileUsed(), "instance", cfg.Instance)

	return nil
}

// Execute runs the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command; solves stop when ctx is cancelled.
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
