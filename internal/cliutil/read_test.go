package cliutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLinesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("userId\n\nparseHTMLFile  \nsnake_case\n"), 0o644))

	lines, err := ReadLines([]string{path}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"userId", "parseHTMLFile", "snake_case"}, lines)
}

func TestReadLinesMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(first, []byte("alpha\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("beta\ngamma\n"), 0o644))

	lines, err := ReadLines([]string{first, second}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, lines)
}

func TestReadLinesEOFMarker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nEND\nthree\n"), 0o644))

	lines, err := ReadLines([]string{path}, "END")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := ReadLines([]string{filepath.Join(t.TempDir(), "missing.txt")}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestReadTextFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("see userId here"), 0o644))

	text, err := ReadText([]string{path}, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "see userId here"))
}
