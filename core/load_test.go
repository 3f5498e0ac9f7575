package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adaptix/core"
)

// TestLoad_Basic parses comments, blank lines, and arbitrary whitespace.
func TestLoad_Basic(t *testing.T) {
	const input = `# toy graph
0 1

1	2
# trailing comment
2 0
`
	g, err := core.Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
}

// TestLoad_DuplicatesCollapse verifies input duplicates become one edge.
func TestLoad_DuplicatesCollapse(t *testing.T) {
	g, err := core.Load(strings.NewReader("0 1\n1 0\n0 1\n"))
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
}

// TestLoad_VertexUniverse checks 0..max(id) sizing with isolated vertices.
func TestLoad_VertexUniverse(t *testing.T) {
	g, err := core.Load(strings.NewReader("0 9\n"))
	require.NoError(t, err)
	require.Equal(t, 10, g.VertexCount())
	require.Equal(t, 0, g.Degree(5))
}

// TestLoad_Malformed rejects bad lines with their line number.
func TestLoad_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"one field", "0 1\n7\n"},
		{"three fields", "0 1 2\n"},
		{"not a number", "0 x\n"},
		{"float id", "0 1.5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.Load(strings.NewReader(tc.input))
			require.ErrorIs(t, err, core.ErrMalformedLine)
		})
	}

	_, err := core.Load(strings.NewReader("0 -2\n"))
	require.ErrorIs(t, err, core.ErrNegativeVertex)
}

// TestLoad_Empty yields the empty graph.
func TestLoad_Empty(t *testing.T) {
	g, err := core.Load(strings.NewReader("# nothing here\n"))
	require.NoError(t, err)
	require.Equal(t, 0, g.VertexCount())
}

// TestLoadFile_Missing surfaces the open error.
func TestLoadFile_Missing(t *testing.T) {
	_, err := core.LoadFile("definitely/not/a/file.txt")
	require.Error(t, err)
}
