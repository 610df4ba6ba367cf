package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/realisasi/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0o600))

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.txt")))
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nonexistent")))

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0o600))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, fileutils.EnsureDirectoryExists(dir))
	assert.True(t, fileutils.DirectoryExists(dir))
	require.NoError(t, fileutils.EnsureDirectoryExists(dir))
}

func TestListFilesWithExtensions(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"b.xlsx", "a.CSV", "c.pdf", "~$b.xlsx", "d.xlsm"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "sub.xlsx"), 0o750))

	files, err := fileutils.ListFilesWithExtensions(tmpDir, ".xlsx", ".xlsm", ".csv")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.CSV"),
		filepath.Join(tmpDir, "b.xlsx"),
		filepath.Join(tmpDir, "d.xlsm"),
	}, files)
}

func TestListFilesWithExtensions_MissingDir(t *testing.T) {
	_, err := fileutils.ListFilesWithExtensions(filepath.Join(t.TempDir(), "missing"), ".xlsx")
	assert.Error(t, err)
}
