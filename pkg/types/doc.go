// Package types defines the core types and interfaces used throughout appsel.
// This includes the filesystem abstraction, the application catalog contract
// consumed by resolution, and the per-association status flags.
package types
