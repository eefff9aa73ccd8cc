package types

import (
	"io/fs"
)

// FS is the filesystem seen by every loader and by the writable layer.
// Writes replace whole files in place, so a symlinked mimeapps.list keeps
// pointing at its target.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Catalog answers questions about installed applications. It is the only
// view resolution has of desktop entries.
type Catalog interface {
	// Has reports whether an application with this ID is installed.
	Has(appID string) bool

	// MimeTypes returns the content types the application declares natively.
	MimeTypes(appID string) []string

	// EntryPath returns the path of the descriptor the ID was loaded from,
	// or "" when the application is unknown.
	EntryPath(appID string) string
}
