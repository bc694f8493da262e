package shell

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainReader_ReadLine(t *testing.T) {
	var out bytes.Buffer
	r := NewPlainReader(strings.NewReader("echo a\nls"), &out)

	line, err := r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "echo a\n", line)

	line, err = r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "ls", line)

	_, err = r.ReadLine("> ")
	require.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "> > > ", out.String())
}

func TestTerminalReader_History(t *testing.T) {

	tests := []struct {
		name     string
		existing string
		appended []string
		expected string
	}{
		{
			name:     "loads and appends",
			existing: "echo a\nls\n",
			appended: []string{"help"},
			expected: "echo a\nls\nhelp\n",
		},
		{
			name:     "no previous history",
			appended: []string{"echo b"},
			expected: "echo b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "history")
			if tt.existing != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.existing), 0o600))
			}

			r := NewTerminalReader(path)
			defer r.Close()

			for _, line := range tt.appended {
				r.line.AppendHistory(line)
			}
			require.NoError(t, r.SaveHistory())

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(content))
		})
	}
}

func TestTerminalReader_SaveHistoryCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "bsh", "history")

	r := NewTerminalReader(path)
	defer r.Close()

	r.line.AppendHistory("ls")
	require.NoError(t, r.SaveHistory())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestTerminalReader_HistoryDisabled(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	r := NewTerminalReader("")
	defer r.Close()

	r.line.AppendHistory("ls")
	require.NoError(t, r.SaveHistory())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
