// Package config loads solver, output and logging settings from flags,
// environment variables (HONGROISE_*) and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g.
// HONGROISE_SOLVER_MODE for solver.mode.
const EnvPrefix = "HONGROISE"

// Config represents the complete hongroise configuration
type Config struct {
	// Instance is the built-in problem solved when no --instance flag is given
	Instance string        `mapstructure:"instance"`
	Solver   SolverConfig  `mapstructure:"solver"`
	Output   OutputConfig  `mapstructure:"output"`
	Logging  LoggingConfig `mapstructure:"logging"`
}

// SolverConfig controls the assignment pipeline
type SolverConfig struct {
	// Mode selects the extraction strategy
	// Options: "greedy", "optimal"
	Mode string `mapstructure:"mode"`
	// MaxIterations bounds the cover/adjust loop
	MaxIterations int `mapstructure:"max_iterations"`
	// AllowPartial accepts an incomplete greedy assignment
	AllowPartial bool `mapstructure:"allow_partial"`
	// Epsilon is the tolerance under which a reduced cost counts as zero
	Epsilon float64 `mapstructure:"epsilon"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	// Format is one of report.Formats()
	Format string `mapstructure:"format"`
}

// LoggingConfig controls diagnostic logging on stderr
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
	// Format is "text" or "json"
	Format string `mapstructure:"format"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Instance: "reference",
		Solver: SolverConfig{
			Mode:          assignment.ModeGreedy.String(),
			MaxIterations: assignment.DefaultMaxIterations,
			AllowPartial:  false,
			Epsilon:       0,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:  "WARN",
			Format: "text",
		},
	}
}

// SetDefaults registers every key with its default on v so that env
// overrides and Unmarshal see the full key set.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("instance", defaults.Instance)

	v.SetDefault("solver.mode", defaults.Solver.Mode)
	v.SetDefault("solver.max_iterations", defaults.Solver.MaxIterations)
	v.SetDefault("solver.allow_partial", defaults.Solver.AllowPartial)
	v.SetDefault("solver.epsilon", defaults.Solver.Epsilon)

	v.SetDefault("output.format", defaults.Output.Format)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
}

// NewViper returns a viper instance with defaults, env binding and, when
// present, the config file read in. An explicit cfgFile must exist; the
// default search locations are optional.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	// e.g. HONGROISE_SOLVER_MAX_ITERATIONS for solver.max_iterations
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// SolverOptions translates the solver section into assignment options.
func (c *Config) SolverOptions() ([]assignment.Option, error) {
	mode, err := assignment.ParseMode(c.Solver.Mode)
	if err != nil {
		return nil, err
	}

	opts := []assignment.Option{
		assignment.WithMode(mode),
		assignment.WithMaxIterations(c.Solver.MaxIterations),
		assignment.WithEpsilon(c.Solver.Epsilon),
	}
	if c.Solver.AllowPartial {
		opts = append(opts, assignment.WithAllowPartial())
	}

	return opts, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hongroise")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hongroise"
	}
	return filepath.Join(home, ".config", "hongroise")
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
