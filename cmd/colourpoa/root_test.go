package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colourpoa/colour"
	"github.com/katalvlaran/colourpoa/export"
	"github.com/katalvlaran/colourpoa/snapshot"
)

const input = `>1
ACGTACGT
>2
ACGTCGT
>other
ACGTACGTGG
`

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// writeFile writes body under a temp dir and returns its path.
func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_LegacyOutput(t *testing.T) {
	in := writeFile(t, "in.fa", input)
	out := filepath.Join(t.TempDir(), "graph.dot")

	stdout, stderr, err := execute(t, "-b", "3", "-s", "12", "-o", out, "--color", "off", in)
	require.NoError(t, err)
	assert.Equal(t, "score (4,4)\nscore (2,2)\n", stdout)
	assert.Contains(t, stderr, "nodes 10, edges 10")

	dot, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dot), "digraph {\n"))
	assert.Contains(t, string(dot), `    0 -> 1 [ label = "(1,1)" color="red:blue" ]`)
	assert.Contains(t, string(dot), `    3 -> 4 [ label = "(1,0)" color="red" ]`)
	assert.Contains(t, string(dot), `    3 -> 5 [ label = "(0,1)" color="blue" ]`)
	assert.Contains(t, string(dot), `    7 -> 8 [ label = "(0,0)" color="black" ]`)
}

func TestRun_GonumDOTAndSnapshot(t *testing.T) {
	in := writeFile(t, "in.fa", input)
	dir := t.TempDir()
	out := filepath.Join(dir, "graph.dot")
	snap := filepath.Join(dir, "graph.mp")

	_, _, err := execute(t, "-b", "3", "-s", "12", "--format", "dot", "-o", out, "--snapshot", snap, "--quiet", in)
	require.NoError(t, err)

	dot, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(dot), "digraph "+export.GraphName)

	g, err := snapshot.LoadFile(snap)
	require.NoError(t, err)
	assert.Equal(t, 10, g.NodeCount())
	e, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, colour.BothGroups, e.Weight.Label())
}

func TestRun_Queries(t *testing.T) {
	in := writeFile(t, "in.fa", input)

	stdout, _, err := execute(t, "-b", "3", "-s", "12", "-q", "acgtacgtgg", "-q", "ACGTACGT", "--jobs", "2", "--quiet", in)
	require.NoError(t, err)
	assert.Equal(t, "score (4,4)\nscore (2,2)\nscore: (10,10)\nscore: (2,2)\n", stdout)
}

func TestRun_ConfigFile(t *testing.T) {
	in := writeFile(t, "in.fa", input)
	cfg := writeFile(t, "colourpoa.toml", "[scoring]\nbranch = 3\nmismatch = 12\n\n[groups]\n\"other\" = 2\n")

	stdout, _, err := execute(t, "--config", cfg, "--quiet", in)
	require.NoError(t, err)
	assert.Equal(t, "score (4,4)\nscore (2,2)\n", stdout)
}

func TestRun_VerboseLogs(t *testing.T) {
	in := writeFile(t, "in.fa", input)

	_, stderr, err := execute(t, "-b", "3", "-s", "12", "--verbose", "--color", "off", in)
	require.NoError(t, err)
	assert.Contains(t, stderr, "seeded graph")
	assert.Contains(t, stderr, "folded record")
}

func TestRun_QuietHidesInfo(t *testing.T) {
	in := writeFile(t, "in.fa", input)

	_, stderr, err := execute(t, "-b", "3", "-s", "12", "--quiet", in)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "folded record")
	assert.NotContains(t, stderr, "nodes 10")
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, logLevel(options{}))
	assert.Equal(t, zerolog.DebugLevel, logLevel(options{verbose: true}))
	assert.Equal(t, zerolog.WarnLevel, logLevel(options{quiet: true}))
	assert.Equal(t, zerolog.DebugLevel, logLevel(options{verbose: true, quiet: true}))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, options{color: "off"})
	logger.Info().Str("id", "2").Msg("folded record")
	logger.Debug().Msg("hidden")

	assert.Contains(t, buf.String(), "folded record")
	assert.Contains(t, buf.String(), "service=colourpoa")
	assert.NotContains(t, buf.String(), "hidden")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestRun_Errors(t *testing.T) {
	in := writeFile(t, "in.fa", input)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing penalties", []string{in}, "required"},
		{"negative penalty", []string{"-b", "-1", "-s", "12", in}, "invalid penalty"},
		{"bad format", []string{"-b", "3", "-s", "12", "--format", "png", in}, "unknown --format"},
		{"missing input", []string{"-b", "3", "-s", "12", filepath.Join(t.TempDir(), "none.fa")}, "read"},
		{"no args", []string{"-b", "3", "-s", "12"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPrintSummary(t *testing.T) {
	c := export.Counts{
		Nodes: 3,
		Edges: 2,
		ByLabel: map[colour.Label]int{
			colour.GroupOnly1: 1, colour.BothGroups: 1,
		},
	}

	var plain bytes.Buffer
	printSummary(&plain, c, false)
	assert.Equal(t, "nodes 3, edges 2\n"+
		"  GroupOnly1 red      1\n"+
		"  BothGroups red:blue 1\n"+
		"  GroupOnly2 blue     0\n"+
		"  Neither    black    0\n", plain.String())

	var colored bytes.Buffer
	printSummary(&colored, c, true)
	assert.Contains(t, colored.String(), "\x1b[")
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor("on", &buf))
	assert.False(t, useColor("off", &buf))
	assert.False(t, useColor("auto", &buf), "buffers are not terminals")
}
