package codefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "prefix_.txt", FileName(""))
	assert.Equal(t, "prefix_S0.txt", FileName("S0"))
}

func TestWriteGroup(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteGroup(dir, "S0", []string{"S012345", "S067890"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "prefix_S0.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "S012345\nS067890\n", string(data), "one code per line, newline-terminated")
}

func TestWriteGroup_EmptyGroup(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteGroup(dir, "", nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data, "a zero-count group still produces its file")
}

func TestWriteGroup_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "codes")

	_, err := WriteGroup(dir, "A", []string{"A1"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "prefix_A.txt"))
}

func TestReadCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefix_.txt")
	require.NoError(t, os.WriteFile(path, []byte("12345\n\n67890\n"), 0644))

	codes, err := ReadCodes(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"12345", "67890"}, codes)
}

func TestReadCodes_MissingFile(t *testing.T) {
	_, err := ReadCodes(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
