package assignment_test

import (
	"context"
	"testing"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
	"github.com/stretchr/testify/require"
)

func TestConverge_AlreadyCovered(t *testing.T) {
	c := dense(t, refCost)

	iters, err := assignment.Converge(c)
	require.NoError(t, err)
	require.Zero(t, iters)
	require.Equal(t, refCost, c.ToRows())
}

func TestConverge_OneRound(t *testing.T) {
	c := dense(t, [][]float64{{2, 3}, {4, 1}})

	var events []assignment.IterationEvent
	iters, err := assignment.Converge(c, assignment.WithOnIteration(func(ev assignment.IterationEvent) {
		events = append(events, ev)
	}))
	require.NoError(t, err)
	require.Equal(t, 1, iters)
	require.Equal(t, [][]float64{{1, 2}, {3, 0}}, c.ToRows())

	require.Len(t, events, 1)
	require.Equal(t, 1, events[0].Iteration)
	require.Equal(t, 1.0, events[0].MinUncovered)
	require.Zero(t, events[0].Cover.Count())
}

func TestConverge_SeveralRounds(t *testing.T) {
	c := dense(t, [][]float64{{1, 2, 3}, {2, 4, 6}, {3, 6, 9}})

	var mins []float64
	iters, err := assignment.Converge(c, assignment.WithOnIteration(func(ev assignment.IterationEvent) {
		mins = append(mins, ev.MinUncovered)
	}))
	require.NoError(t, err)
	require.Equal(t, 3, iters)
	require.Equal(t, []float64{1, 3, 2}, mins)
	require.Equal(t, [][]float64{{1, 1, 0}, {1, 2, 2}, {0, 2, 3}}, c.ToRows())
}

func TestConverge_IterationBound(t *testing.T) {
	c := dense(t, [][]float64{{2, 3}, {4, 1}})

	iters, err := assignment.Converge(c, assignment.WithMaxIterations(0))
	require.ErrorIs(t, err, assignment.ErrConvergenceFailure)
	require.Zero(t, iters)
	// nothing adjusted
	require.Equal(t, [][]float64{{2, 3}, {4, 1}}, c.ToRows())

	c = dense(t, [][]float64{{1, 2, 3}, {2, 4, 6}, {3, 6, 9}})
	iters, err = assignment.Converge(c, assignment.WithMaxIterations(2))
	require.ErrorIs(t, err, assignment.ErrConvergenceFailure)
	require.Equal(t, 2, iters)
}

func TestConverge_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := assignment.Converge(dense(t, refCost), assignment.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestConverge_Errors(t *testing.T) {
	_, err := assignment.Converge(nil)
	require.ErrorIs(t, err, assignment.ErrNilMatrix)

	_, err = assignment.Converge(dense(t, refCost), assignment.WithMaxIterations(-1))
	require.ErrorIs(t, err, assignment.ErrOptionViolation)
}
