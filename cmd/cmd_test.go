package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphpad/demo"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfigCmd(t *testing.T) {
	out, err := run(t, "config", "--edge-bounds", "12", "--hover-resolution", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "bounds_distance = 12")
	assert.Contains(t, out, "bounds_radius = 25")
	assert.Contains(t, out, "resolution = 5")
}

func TestConfigCmd_Invalid(t *testing.T) {
	_, err := run(t, "config", "--log-level", "verbose")
	assert.Error(t, err)

	_, err = run(t, "config", "--config", "missing.toml")
	assert.Error(t, err)
}

func TestReplayCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(demo.GenerateExample()), 0o644))

	out, err := run(t, "replay", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Connect and prune")
	assert.Contains(t, out, "2 nodes, 0 edges, 2 components")
	assert.Contains(t, out, `"0 start"`)
	assert.Contains(t, out, "(200, 300)")
}

func TestReplayCmd_Example(t *testing.T) {
	out, err := run(t, "replay", "--example")
	require.NoError(t, err)

	script, err := demo.ParseScript([]byte(out))
	require.NoError(t, err)
	assert.NotEmpty(t, script.Commands)
}

func TestReplayCmd_Errors(t *testing.T) {
	_, err := run(t, "replay")
	assert.ErrorContains(t, err, "script file")

	_, err = run(t, "replay", "nope.json", "--log-level", "error")
	assert.Error(t, err)
}
