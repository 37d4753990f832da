package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/instance"
	"github.com/abdelaziz-lounes/hungarian-method-implementation/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func solveReference(t *testing.T) assignment.Result {
	t.Helper()
	res, err := instance.Reference().Solve()
	require.NoError(t, err)

	return res
}

func TestFormats(t *testing.T) {
	require.Equal(t, []string{"json", "table", "text", "yaml"}, report.Formats())
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, "reference", solveReference(t), "text"))

	want := "Assignation optimale des commerces aux emplacements :\n" +
		"Commerce c0 -> Emplacement e0\n" +
		"Commerce c1 -> Emplacement e1\n" +
		"Commerce c2 -> Emplacement e2\n" +
		"Commerce c3 -> Emplacement e3\n" +
		"\n" +
		"Coût total minimal : 54\n"
	require.Equal(t, want, buf.String())
}

func TestRender_TextFractionalCost(t *testing.T) {
	res := assignment.Result{Pairs: []assignment.Pair{{Entity: 0, Location: 0}}, Cost: 12.5}

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, "x", res, "text"))
	require.True(t, strings.HasSuffix(buf.String(), "\nCoût total minimal : 12.5\n"), buf.String())
}

func TestRender_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, "x", assignment.Result{}, "text"))
	require.Equal(t, "Assignation optimale des commerces aux emplacements :\n\nCoût total minimal : 0\n", buf.String())
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, "reference", solveReference(t), "json"))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "reference", raw["instance"])
	assert.Equal(t, "greedy", raw["mode"])
	assert.Equal(t, 54.0, raw["cost"])
	assert.Equal(t, 0.0, raw["lower_bound"])
	assert.Equal(t, true, raw["complete"])
	require.Len(t, raw["pairs"], 4)
	assert.Equal(t, map[string]any{"entity": 1.0, "location": 1.0}, raw["pairs"].([]any)[1])
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, "reference", solveReference(t), "yaml"))
	require.Contains(t, buf.String(), "instance: reference\n")
	require.Contains(t, buf.String(), "lower_bound: 0\n")

	var doc report.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "greedy", doc.Mode)
	assert.Equal(t, 4, doc.Size)
	assert.Equal(t, 54.0, doc.Cost)
	assert.Len(t, doc.Pairs, 4)
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, "reference", solveReference(t), "table"))

	out := buf.String()
	for _, s := range []string{"reference", "Commerce", "Emplacement", "c3", "e3", "Coût total minimal : 54"} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, "partielle")
}

func TestRender_TablePartial(t *testing.T) {
	res, err := assignment.SolveRows(
		[][]float64{{1, 2}, {3, 4}},
		[][]float64{{5, 6}, {7, 8}},
		assignment.WithAllowPartial(),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, "two", res, "table"))
	assert.Contains(t, buf.String(), "affectation partielle : 1 / 2")
}

func TestRender_UnknownFormat(t *testing.T) {
	err := report.Render(&bytes.Buffer{}, "reference", solveReference(t), "xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestNewDocument_NilPairs(t *testing.T) {
	doc := report.NewDocument("x", assignment.Result{})
	require.NotNil(t, doc.Pairs)
	require.Empty(t, doc.Pairs)
	require.Zero(t, doc.Size)
}
