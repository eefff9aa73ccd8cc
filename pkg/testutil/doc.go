// Package testutil provides utilities for testing appsel components.
//
// Key components:
//   - NewTestFS: in-memory filesystem backed by afero
//   - WriteFile / ReadFile: fixture helpers that fail the test on error
//   - DesktopEntry: builder for .desktop fixture content
//   - MockCatalog / StaticCatalog: types.Catalog doubles
//
// All test data should be defined inline, not in external files.
package testutil
