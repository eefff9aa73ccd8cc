// Package config handles configuration management for appsel.
// It layers the embedded defaults, the user's TOML file and APPSEL_*
// environment variables with koanf.
package config
