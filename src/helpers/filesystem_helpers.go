package helpers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TempFilePath returns a path to a file that doesn't exist yet in the test's
// temporary directory. The directory, and anything written to the path, is
// removed when the test is done.
func TempFilePath(t *testing.T, fileName string) string {
	t.Helper()

	return filepath.Join(t.TempDir(), fileName)
}

// CreateTempFileWithContents creates a file in the test's temporary
// directory, writes the given content to it and returns its path. The file is
// removed when the test is done.
func CreateTempFileWithContents(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "logic-circuit-test-*")
	require.NoError(t, err)

	_, err = tmpFile.Write([]byte(content))
	require.NoError(t, err)

	err = tmpFile.Close()
	require.NoError(t, err)

	return tmpFile.Name()
}

// AssertFileContents fails the test unless the file at path holds exactly the
// expected content.
func AssertFileContents(t *testing.T, path string, expected string) {
	t.Helper()

	contents, err := os.ReadFile(path)
	if assert.NoError(t, err, "failed to read %s", path) {
		assert.Equal(t, expected, string(contents))
	}
}
