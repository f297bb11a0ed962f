package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/genadd/internal/engine"
	"github.com/roach88/genadd/internal/ir"
	"github.com/roach88/genadd/internal/store"
	"github.com/roach88/genadd/internal/testutil"
)

// runAddDirect calls runAdd with a bare command so tests can inject a
// RunGenerator.
func runAddDirect(opts *AddOptions, a, b string) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	return buf, runAdd(opts, a, b, cmd)
}

func executeRoot(args ...string) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestAdd_DefaultInt(t *testing.T) {
	out, err := executeRoot("add", "20", "30")
	require.NoError(t, err)
	assert.Equal(t, "50\n", out.String())
}

func TestAdd_Kinds(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "--type", "float32", "20.20", "30.30"}, "50.5\n"},
		{[]string{"add", "-t", "float64", "20.20", "30.30"}, "50.5\n"},
		{[]string{"add", "--type", "int8", "127", "1"}, "-128\n"},
		{[]string{"add", "--type", "uint16", "0xFFFF", "2"}, "1\n"},
		{[]string{"add", "--type", "int", "--", "-5", "3"}, "-2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.args[2], func(t *testing.T) {
			out, err := executeRoot(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestAdd_JSON(t *testing.T) {
	opts := &AddOptions{
		RootOptions:  &RootOptions{Format: "json"},
		Type:         "int",
		RunGenerator: engine.NewFixedGenerator("run-1"),
	}
	out, err := runAddDirect(opts, "20", "30")
	require.NoError(t, err)

	var resp struct {
		Status string    `json:"status"`
		Data   ir.Record `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "50", resp.Data.Sum)
	assert.Equal(t, "run-1", resp.Data.RunToken)
	assert.Equal(t, int64(1), resp.Data.Seq)
	assert.True(t, resp.Data.Verify())
}

func TestAdd_InvalidType(t *testing.T) {
	out, err := executeRoot("add", "--type", "complex64", "1", "2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeInvalidKind)
	assert.Contains(t, out.String(), "invalid --type")
}

func TestAdd_InvalidOperand(t *testing.T) {
	out, err := executeRoot("--format", "json", "add", "--type", "int8", "128", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidArgs, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "out of range")
}

func TestAdd_WrongArgCount(t *testing.T) {
	_, err := executeRoot("add", "1")
	assert.Error(t, err)
}

func TestAdd_PersistsWithDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "log.db")
	gen := testutil.NewConstantRunGenerator("run-1")
	opts := &AddOptions{
		RootOptions:  &RootOptions{Format: "text"},
		Type:         "float32",
		Database:     dbPath,
		RunGenerator: gen,
	}
	out, err := runAddDirect(opts, "20.20", "30.30")
	require.NoError(t, err)
	assert.Equal(t, "50.5\n", out.String())

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	records, err := st.ReadRun(context.Background(), "run-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].Seq)
	assert.Equal(t, "float32", records[0].Kind)
	assert.Equal(t, "20.2", records[0].A)
	assert.Equal(t, "30.3", records[0].B)
	assert.Equal(t, "50.5", records[0].Sum)
	assert.True(t, records[0].Verify())
}

func TestAdd_BadDBPath(t *testing.T) {
	opts := &AddOptions{
		RootOptions: &RootOptions{Format: "text"},
		Type:        "int",
		Database:    filepath.Join(t.TempDir(), "no", "such", "dir", "log.db"),
	}
	_, err := runAddDirect(opts, "1", "2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeDatabase)
}
