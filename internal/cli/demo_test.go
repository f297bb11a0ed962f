package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootWithoutArgsRunsDemo(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "50\n50.5", stdout.String())
}

func TestDemoCommandText(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"demo"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "50\n50.5", stdout.String())
}

func TestDemoCommandJSON(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"status":"ok","data":{"int":50,"float":50.5}}`, stdout.String())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestDemoVerboseKeepsStdoutClean(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-v"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "50\n50.5", stdout.String())
}
