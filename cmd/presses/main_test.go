package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestSolveCommands(t *testing.T) {
	path := writeInput(t, sample)

	out, _, err := run(t, "", "lights", path)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	out, _, err = run(t, "", "joltage", "--workers", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "33\n", out)

	out, _, err = run(t, sample, "joltage", "--no-prune", "-v", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "machine 1: 10 "), lines[0])
	assert.Equal(t, "33", lines[3])
}

func TestSolveCommand_Policies(t *testing.T) {
	path := writeInput(t, sample+"[#] () {1}\n")

	out, _, err := run(t, "", "joltage", "-v", path)
	require.NoError(t, err)
	assert.Contains(t, out, "machine 4: infeasible")
	assert.True(t, strings.HasSuffix(out, "33\n"))

	_, _, err = run(t, "", "joltage", "--policy", "fail", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "machine 4")
}

func TestSolveCommand_Errors(t *testing.T) {
	_, _, err := run(t, "", "lights", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, _, err = run(t, "", "lights", writeInput(t, "[#] (0) {1}\nnot a machine\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = run(t, "", "joltage", "--time-limit", "soon", writeInput(t, sample))
	assert.Error(t, err)

	_, _, err = run(t, "", "joltage", "--policy", "maybe", writeInput(t, sample))
	assert.Error(t, err)

	_, _, err = run(t, "", "joltage")
	assert.Error(t, err)
}

func TestConfigFileAndLogging(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "presses.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: debug\n  format: json\n"), 0o600))

	out, errOut, err := run(t, "", "lights", "--config", cfgPath, writeInput(t, sample))
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
	assert.Contains(t, errOut, `"msg":"batch solved"`)
	assert.Contains(t, errOut, `"msg":"system solved"`)
}
