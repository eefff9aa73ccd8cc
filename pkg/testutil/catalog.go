package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockCatalog is a testify mock of types.Catalog.
type MockCatalog struct {
	mock.Mock
}

// Has records the call and returns the configured answer.
func (m *MockCatalog) Has(appID string) bool {
	args := m.Called(appID)
	return args.Bool(0)
}

// MimeTypes records the call and returns the configured answer.
func (m *MockCatalog) MimeTypes(appID string) []string {
	args := m.Called(appID)
	if v := args.Get(0); v != nil {
		return v.([]string)
	}
	return nil
}

// EntryPath records the call and returns the configured answer.
func (m *MockCatalog) EntryPath(appID string) string {
	args := m.Called(appID)
	return args.String(0)
}

// StaticApp describes one application known to a StaticCatalog.
type StaticApp struct {
	Path      string
	MimeTypes []string
}

// StaticCatalog is a map-backed types.Catalog for table tests.
type StaticCatalog map[string]StaticApp

// Has reports whether appID is in the catalog.
func (c StaticCatalog) Has(appID string) bool {
	_, ok := c[appID]
	return ok
}

// MimeTypes returns the declared types of appID.
func (c StaticCatalog) MimeTypes(appID string) []string {
	return c[appID].MimeTypes
}

// EntryPath returns the descriptor path of appID.
func (c StaticCatalog) EntryPath(appID string) string {
	return c[appID].Path
}

// Installed builds a StaticCatalog where each ID lives under /usr/share/applications.
func Installed(ids ...string) StaticCatalog {
	c := StaticCatalog{}
	for _, id := range ids {
		c[id] = StaticApp{Path: "/usr/share/applications/" + id}
	}
	return c
}
