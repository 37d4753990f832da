package assignment

import (
	"context"
	"fmt"
	"math"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
)

// DefaultMaxIterations bounds the cover/adjust loop. Every adjustment
// strictly lowers an uncovered cell, so well-formed inputs converge in far
// fewer rounds; the bound only guards against pathological float inputs.
const DefaultMaxIterations = 1000

// Option configures a solve via functional arguments.
// If an Option is invalid (e.g. negative bound), it is recorded internally
// and surfaced as ErrOptionViolation when the pipeline starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize a solve.
type Options struct {
	// Ctx allows cancellation; checked once per loop iteration.
	Ctx context.Context

	// Mode selects greedy or optimal extraction.
	Mode Mode

	// MaxIterations bounds adjustment rounds. Zero means the matrix must
	// already be covered after reduction.
	MaxIterations int

	// AllowPartial accepts an incomplete greedy assignment instead of
	// failing with ErrIncompleteAssignment.
	AllowPartial bool

	// Epsilon is the tolerance under which a cell counts as zero.
	Epsilon float64

	// OnStage is called after each pipeline stage with a private snapshot
	// of the cost matrix.
	OnStage func(stage Stage, snapshot matrix.Matrix)

	// OnIteration is called after every adjustment round.
	OnIteration func(ev IterationEvent)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - ModeGreedy
//   - MaxIterations = DefaultMaxIterations
//   - strict completeness, exact zero test
//   - no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Mode:          ModeGreedy,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects the extraction strategy.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if !m.Valid() {
			o.err = fmt.Errorf("%w: %w: %s", ErrOptionViolation, ErrUnsupportedMode, m)
			return
		}
		o.Mode = m
	}
}

// WithMaxIterations bounds the cover/adjust loop.
//
//	n > 0: at most n adjustment rounds
//	n == 0: no adjustment allowed
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithAllowPartial accepts incomplete greedy assignments.
func WithAllowPartial() Option {
	return func(o *Options) { o.AllowPartial = true }
}

// WithEpsilon sets the zero tolerance; it must be finite and non-negative.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.err = fmt.Errorf("%w: Epsilon must be finite and non-negative (%v)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithOnStage registers a stage callback.
func WithOnStage(fn func(stage Stage, snapshot matrix.Matrix)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}

// WithOnIteration registers an adjustment-round callback.
func WithOnIteration(fn func(ev IterationEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// gatherOptions applies opts over DefaultOptions and reports the first
// recorded violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}

// stage fires OnStage with a clone so the hook never aliases the working matrix.
func (o Options) stage(s Stage, c *matrix.Dense) {
	if o.OnStage != nil {
		o.OnStage(s, c.Clone())
	}
}
