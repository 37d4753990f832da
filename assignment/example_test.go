package assignment_test

import (
	"errors"
	"fmt"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
)

// ExampleSolveRows assigns four commerces to four emplacements with the
// greedy reduction procedure.
func ExampleSolveRows() {
	flow := [][]float64{
		{0, 1, 0, 1},
		{1, 0, 0, 2},
		{0, 0, 0, 2},
		{1, 2, 3, 0},
	}
	dist := [][]float64{
		{0, 4, 3, 5},
		{4, 0, 5, 4},
		{3, 5, 0, 4},
		{5, 4, 4, 0},
	}

	res, err := assignment.SolveRows(flow, dist)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range res.Pairs {
		fmt.Printf("c%d -> e%d\n", p.Entity, p.Location)
	}
	fmt.Println("cost:", res.Cost)
	// Output:
	// c0 -> e0
	// c1 -> e1
	// c2 -> e2
	// c3 -> e3
	// cost: 54
}

// ExampleWithMode contrasts the greedy extraction, which stops early on
// this input, with the optimal mode.
func ExampleWithMode() {
	flow := [][]float64{{1, 2}, {3, 4}}
	dist := [][]float64{{5, 6}, {7, 8}}

	_, err := assignment.SolveRows(flow, dist)
	fmt.Println(errors.Is(err, assignment.ErrIncompleteAssignment))

	res, _ := assignment.SolveRows(flow, dist, assignment.WithMode(assignment.ModeOptimal))
	fmt.Println(res.Pairs, res.Cost)
	// Output:
	// true
	// [{0 1} {1 0}] 60
}
