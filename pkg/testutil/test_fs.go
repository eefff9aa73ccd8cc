package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/appsel/pkg/filesystem"
	"github.com/arthur-debert/appsel/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// ReadFile returns the content of path, failing the test if it cannot be read.
func ReadFile(t testing.TB, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// FileExists reports whether path exists in fsys.
func FileExists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
