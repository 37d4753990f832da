package assignment_test

import (
	"math"
	"testing"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := assignment.DefaultOptions()

	assert.NotNil(t, o.Ctx)
	assert.Equal(t, assignment.ModeGreedy, o.Mode)
	assert.Equal(t, assignment.DefaultMaxIterations, o.MaxIterations)
	assert.False(t, o.AllowPartial)
	assert.Zero(t, o.Epsilon)
	assert.Nil(t, o.OnStage)
	assert.Nil(t, o.OnIteration)
}

func TestOptionViolations(t *testing.T) {
	bad := map[string]assignment.Option{
		"negative bound": assignment.WithMaxIterations(-3),
		"negative eps":   assignment.WithEpsilon(-1e-9),
		"NaN eps":        assignment.WithEpsilon(math.NaN()),
		"Inf eps":        assignment.WithEpsilon(math.Inf(1)),
		"unknown mode":   assignment.WithMode(assignment.Mode(-1)),
	}
	for name, opt := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := assignment.Converge(dense(t, refCost), opt)
			require.ErrorIs(t, err, assignment.ErrOptionViolation)
		})
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]assignment.Mode{
		"greedy":    assignment.ModeGreedy,
		"OPTIMAL":   assignment.ModeOptimal,
		" Optimal ": assignment.ModeOptimal,
	} {
		got, err := assignment.ParseMode(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := assignment.ParseMode("munkres")
	require.ErrorIs(t, err, assignment.ErrUnsupportedMode)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "greedy", assignment.ModeGreedy.String())
	assert.Equal(t, "optimal", assignment.ModeOptimal.String())
	assert.Equal(t, "Mode(9)", assignment.Mode(9).String())
	assert.Equal(t, []assignment.Mode{assignment.ModeGreedy, assignment.ModeOptimal}, assignment.Modes())

	for _, m := range assignment.Modes() {
		back, err := assignment.ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, back)
	}
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "build", assignment.StageBuild.String())
	assert.Equal(t, "reduce", assignment.StageReduce.String())
	assert.Equal(t, "converge", assignment.StageConverge.String())
	assert.Equal(t, "extract", assignment.StageExtract.String())
	assert.Equal(t, "Stage(4)", assignment.Stage(4).String())
}
