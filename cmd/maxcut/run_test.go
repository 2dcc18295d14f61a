package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSolve_TextCycle4(t *testing.T) {
	out, err := execute(t, "solve", "--topology", "cycle", "-n", "4", "-p", "2", "--gamma", "0.5")
	require.NoError(t, err)

	assert.Contains(t, out, "graph      cycle, 4 vertices, 4 edges")
	assert.Contains(t, out, "max cut    4 [1 0 1 0]")
	assert.Contains(t, out, "  cut  0  0.125000")
	assert.Contains(t, out, "  cut  2  0.750000")
	assert.Contains(t, out, "  cut  4  0.125000")
	assert.Contains(t, out, "<C> = 2.000000  norm = 1.000000")
}

func TestSolve_YAMLShardInvariant(t *testing.T) {
	var reports []Report
	for _, p := range []string{"1", "4"} {
		for _, prec := range []string{PrecisionDouble, PrecisionSingle} {
			out, err := execute(t, "solve", "--topology", "random", "-n", "7", "--probability", "0.6",
				"--seed", "3", "-p", p, "--precision", prec, "-o", "yaml", "--gamma", "0.3", "--gamma", "1.1")
			require.NoError(t, err)
			var rep Report
			require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
			reports = append(reports, rep)
		}
	}

	base := reports[0]
	require.Len(t, base.Layers, 2)
	var mass float64
	for _, p := range base.Distribution {
		mass += p
	}
	assert.InDelta(t, 1.0, mass, 1e-9)
	assert.Len(t, base.Distribution, base.MaxCut+1)
	assert.Len(t, base.Witness, 7)

	for _, rep := range reports[1:] {
		assert.Equal(t, base.MaxCut, rep.MaxCut)
		assert.Equal(t, base.Witness, rep.Witness)
		assert.Equal(t, base.Edges, rep.Edges)
		require.Len(t, rep.Distribution, len(base.Distribution))
		for v := range base.Distribution {
			assert.InDelta(t, base.Distribution[v], rep.Distribution[v], 1e-5)
		}
		for i, l := range rep.Layers {
			assert.InDelta(t, base.Layers[i].Expectation, l.Expectation, 1e-4)
			assert.InDelta(t, 1.0, l.Norm, 1e-5)
		}
	}
}

func TestSolve_ConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
graph:
  topology: star
  vertices: 5
processes: 2
gammas: []
`), 0o600))

	out, err := execute(t, "solve", "-c", path, "--edge", "0-1", "--edge", "1-2", "--topology", "edges", "-n", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "graph      edges, 3 vertices, 2 edges")
	assert.Contains(t, out, "max cut    2 [0 1 0]")
	assert.NotContains(t, out, "cost layers:")
}

func TestSolve_Errors(t *testing.T) {
	_, err := execute(t, "solve", "-p", "3")
	require.ErrorIs(t, err, ErrConfig)

	_, err = execute(t, "solve", "--topology", "moebius")
	require.ErrorIs(t, err, ErrConfig)

	// more ranks than amplitudes
	_, err = execute(t, "solve", "--topology", "path", "-n", "2", "-p", "8")
	require.Error(t, err)

	_, err = execute(t, "solve", "--edge", "0_1")
	require.ErrorIs(t, err, ErrConfig)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "maxcut dev")
}
