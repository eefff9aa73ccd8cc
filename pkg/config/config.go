package config

import (
	"github.com/arthur-debert/appsel/pkg/errors"
)

// Output formats accepted by output.format
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the valid output formats
var Formats = []string{FormatAuto, FormatTerm, FormatText, FormatJSON, FormatYAML}

// Config is the complete appsel configuration
type Config struct {
	// Desktops overrides $XDG_CURRENT_DESKTOP
	Desktops []string `koanf:"desktops" toml:"desktops" yaml:"desktops" json:"desktops"`
	Paths    Paths    `koanf:"paths" toml:"paths" yaml:"paths" json:"paths"`
	Output   Output   `koanf:"output" toml:"output" yaml:"output" json:"output"`
	Display  Display  `koanf:"display" toml:"display" yaml:"display" json:"display"`
	Logging  Logging  `koanf:"logging" toml:"logging" yaml:"logging" json:"logging"`
}

// Paths holds explicit search path overrides. An empty list keeps the
// freedesktop search policy for that kind of file.
type Paths struct {
	Mimeapps     []string `koanf:"mimeapps" toml:"mimeapps" yaml:"mimeapps" json:"mimeapps"`
	Caches       []string `koanf:"caches" toml:"caches" yaml:"caches" json:"caches"`
	Applications []string `koanf:"applications" toml:"applications" yaml:"applications" json:"applications"`
	Mime         []string `koanf:"mime" toml:"mime" yaml:"mime" json:"mime"`
}

// Output selects how command results are rendered
type Output struct {
	Format string `koanf:"format" toml:"format" yaml:"format" json:"format"`
}

// Display holds listing preferences
type Display struct {
	ShowHidden bool `koanf:"show_hidden" toml:"show_hidden" yaml:"show_hidden" json:"show_hidden"`
}

// Logging holds logging preferences
type Logging struct {
	File bool `koanf:"file" toml:"file" yaml:"file" json:"file"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Desktops: []string{},
		Paths: Paths{
			Mimeapps:     []string{},
			Caches:       []string{},
			Applications: []string{},
			Mime:         []string{},
		},
		Output:  Output{Format: FormatAuto},
		Logging: Logging{File: true},
	}
}

// Validate checks values koanf cannot type-check
func (c *Config) Validate() error {
	for _, f := range Formats {
		if c.Output.Format == f {
			return nil
		}
	}
	return errors.Newf(errors.ErrInvalidInput, "invalid output format %q", c.Output.Format).
		WithDetail("valid", Formats)
}
