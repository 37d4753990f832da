// Package instance provides named flow/distance problems that the CLI can
// solve without reading matrices from disk.
package instance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/matrix"
)

// Built-in instance names.
const (
	NameReference = "reference"
	NameSingle    = "single"
	NameZeroFlow  = "zero-flow"
)

// ErrUnknownInstance is returned by Lookup for a name that is not built in.
var ErrUnknownInstance = errors.New("instance: unknown instance")

// Instance is a named assignment problem.
type Instance struct {
	Name        string
	Description string
	Flow        [][]float64
	Distance    [][]float64
}

// Size returns N, the number of entities.
func (in Instance) Size() int { return len(in.Flow) }

// Validate checks that Flow and Distance are square, non-negative and of
// the same size.
func (in Instance) Validate() error {
	f, d, err := in.Matrices()
	if err != nil {
		return err
	}
	if _, err = assignment.BuildCostMatrix(f, d); err != nil {
		return fmt.Errorf("instance %q: %w", in.Name, err)
	}

	return nil
}

// Matrices copies Flow and Distance into fresh dense matrices.
func (in Instance) Matrices() (flow, dist *matrix.Dense, err error) {
	if flow, err = matrix.NewDenseFromRows(in.Flow); err != nil {
		return nil, nil, fmt.Errorf("instance %q: flow: %w", in.Name, err)
	}
	if dist, err = matrix.NewDenseFromRows(in.Distance); err != nil {
		return nil, nil, fmt.Errorf("instance %q: distance: %w", in.Name, err)
	}

	return flow, dist, nil
}

// Solve runs assignment.Solve on the instance.
func (in Instance) Solve(opts ...assignment.Option) (assignment.Result, error) {
	f, d, err := in.Matrices()
	if err != nil {
		return assignment.Result{}, err
	}

	return assignment.Solve(f, d, opts...)
}

// Reference returns the four commerces / four emplacements problem.
func Reference() Instance {
	return Instance{
		Name:        NameReference,
		Description: "4 commerces, 4 emplacements",
		Flow: [][]float64{
			{0, 1, 0, 1},
			{1, 0, 0, 2},
			{0, 0, 0, 2},
			{1, 2, 3, 0},
		},
		Distance: referenceDistance(),
	}
}

func referenceDistance() [][]float64 {
	return [][]float64{
		{0, 4, 3, 5},
		{4, 0, 5, 4},
		{3, 5, 0, 4},
		{5, 4, 4, 0},
	}
}

// Single returns the 1×1 problem F=[3], D=[4].
func Single() Instance {
	return Instance{
		Name:        NameSingle,
		Description: "1 commerce, 1 emplacement",
		Flow:        [][]float64{{3}},
		Distance:    [][]float64{{4}},
	}
}

// ZeroFlow returns the reference distances with no flow at all.
func ZeroFlow() Instance {
	flow := make([][]float64, 4)
	for i := range flow {
		flow[i] = make([]float64, 4)
	}

	return Instance{
		Name:        NameZeroFlow,
		Description: "reference emplacements, zero flow",
		Flow:        flow,
		Distance:    referenceDistance(),
	}
}

var builtins = map[string]func() Instance{
	NameReference: Reference,
	NameSingle:    Single,
	NameZeroFlow:  ZeroFlow,
}

// Lookup returns a fresh copy of the named built-in instance.
func Lookup(name string) (Instance, error) {
	fn, ok := builtins[name]
	if !ok {
		return Instance{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownInstance)
	}

	return fn(), nil
}

// Names lists the built-in instance names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
