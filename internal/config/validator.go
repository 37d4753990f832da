package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/instance"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/internal/logging"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/report"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "solver.max_iterations")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(instance.Names(), c.Instance) {
		errors = append(errors, ValidationError{
			Field:   "instance",
			Value:   c.Instance,
			Message: fmt.Sprintf("must be one of %v", instance.Names()),
		})
	}

	errors = append(errors, c.validateSolver()...)

	if !slices.Contains(report.Formats(), c.Output.Format) {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Value:   c.Output.Format,
			Message: fmt.Sprintf("must be one of %v", report.Formats()),
		})
	}

	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateSolver() []ValidationError {
	var errors []ValidationError

	if _, err := assignment.ParseMode(c.Solver.Mode); err != nil {
		errors = append(errors, ValidationError{
			Field:   "solver.mode",
			Value:   c.Solver.Mode,
			Message: fmt.Sprintf("must be one of %v", assignment.Modes()),
		})
	}
	if c.Solver.MaxIterations < 0 {
		errors = append(errors, ValidationError{
			Field:   "solver.max_iterations",
			Value:   c.Solver.MaxIterations,
			Message: "must be non-negative",
		})
	}
	if eps := c.Solver.Epsilon; eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		errors = append(errors, ValidationError{
			Field:   "solver.epsilon",
			Value:   eps,
			Message: "must be finite and non-negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(logging.ValidLevels(), strings.ToUpper(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of %v", logging.ValidLevels()),
		})
	}
	if !slices.Contains(logging.ValidFormats(), strings.ToLower(c.Logging.Format)) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of %v", logging.ValidFormats()),
		})
	}

	return errors
}
