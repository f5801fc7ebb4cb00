package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "biopax/testdata/glycolysis.owl"

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("PATHWAY_FILE", "")
	t.Setenv("DEFAULTS_FILE", "")
	var stdout, stderr bytes.Buffer
	code := run(append(args, "--log-level", "error"), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_DefaultMolecule(t *testing.T) {
	code, out, _ := runCLI(t, fixture)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Root pathway Glycolysis")
	assert.Contains(t, out, "The most ADP in a pathway is 2, found in pathway(s):\n\tGlycolysis\n")
	assert.Contains(t, out, "Pathway Energy transfer:")
}

func TestRun_FileFromEnvironment(t *testing.T) {
	var stdout, stderr bytes.Buffer
	t.Setenv("PATHWAY_FILE", fixture)
	code := run([]string{"--molecule", "ATP", "--log-level", "error"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "The most ATP in a pathway is 2, found in pathway(s):\n\tEnergy transfer\n")
}

func TestRun_JSONToFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.json")
	prom := filepath.Join(dir, "pathsearch.prom")

	code, stdout, _ := runCLI(t, fixture, "--format", "json", "--out", out, "--metrics-file", prom,
		"--defaults", "stock/testdata/defaults.txt")
	require.Equal(t, 0, code)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"molecule":"ADP"`)
	assert.Contains(t, string(data), `"molecules":[`)

	metrics, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `pathsearch_runs_total{outcome="success"} 1`)
}

func TestRun_Subcommands(t *testing.T) {
	code, out, _ := runCLI(t, "tree", fixture)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "0\tGlycolysis\n")
	assert.Contains(t, out, "2\t    pyruvate kinase -> Pyruvate, ATP\n")

	code, out, _ = runCLI(t, "pathways", fixture)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Pathways:\n\tEnergy transfer\t")
	assert.Contains(t, out, "Top-level pathways:\n\tGlycolysis\t")

	code, out, _ = runCLI(t, "most", "ADP", "NADH", "--file", fixture)
	require.Equal(t, 0, code)
	assert.Equal(t,
		"The most ADP in a pathway is 2, found in pathway(s):\n\tGlycolysis\n"+
			"The most NADH in a pathway is 0, found in pathway(s):\n", out)
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, "pathsearch version dev\n", out)
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no file configured", nil, 5},
		{"bad format", []string{fixture, "--format", "xml"}, 5},
		{"missing file", []string{"testdata/nope.owl"}, 2},
		{"no pathway", []string{"biopax/testdata/empty.owl"}, 3},
		{"missing defaults", []string{fixture, "--defaults", "nope.txt"}, 6},
		{"too many args", []string{fixture, fixture}, 64},
		{"unknown flag", []string{"--bogus"}, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			assert.Equal(t, tt.want, code)
			assert.Contains(t, stderr, "pathsearch: ")
		})
	}
}
