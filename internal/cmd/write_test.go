package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCommandCreatesFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "out.txt")

	rootCmd.SetArgs([]string{"write", target, "hello from the cli"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello from the cli", string(data))
}

func TestWriteCommandJSON(t *testing.T) {
	target := filepath.Join(t.TempDir(), "data.json")

	rootCmd.SetArgs([]string{"write", "--json", target, `{"a": 1}`})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "  \"a\": 1")
}

func TestExistsCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "present.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))

	rootCmd.SetArgs([]string{"exists", target})
	assert.NoError(t, rootCmd.Execute())
}
