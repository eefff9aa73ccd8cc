// Package filesystem implements types.FS over the operating system and over
// afero, whose in-memory filesystem backs the tests. ReadOnly simulates a
// writable layer that cannot be saved.
package filesystem
