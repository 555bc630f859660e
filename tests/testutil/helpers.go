// Package testutil provides shared test helpers used across unit test
// packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content under dir and returns the full path. It
// fails the test on any error.
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// SetModTime stamps the file with the given modification time.
func SetModTime(t *testing.T, path string, modTime time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, modTime, modTime))
}
