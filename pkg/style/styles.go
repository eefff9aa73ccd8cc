// Package style defines the visual styling for appsel's terminal output.
//
// Colors adapt to light and dark terminals. Styles are looked up by semantic
// name (Explicit, Disabled, Custom ...) so renderers never hardcode colors.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Semantic style names
const (
	Title     = "Title"
	Explicit  = "Explicit"
	Automatic = "Automatic"
	Disabled  = "Disabled"
	Custom    = "Custom"
	Default   = "Default"
	Path      = "Path"
	Changed   = "Changed"
	Unchanged = "Unchanged"
	Error     = "Error"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

func init() {
	if err := LoadStyles(defaultStyles); err != nil {
		panic(fmt.Sprintf("failed to load styles: %v", err))
	}
}

// LoadStyles replaces the registry with the styles defined in data
func LoadStyles(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		registry[name] = buildStyle(def, colors)
	}
	StyleRegistry = registry
	return nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	s := lipgloss.NewStyle()
	if def.Bold {
		s = s.Bold(true)
	}
	if def.Italic {
		s = s.Italic(true)
	}
	if def.Underline {
		s = s.Underline(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		s = s.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		s = s.Background(color)
	}
	return s
}

// Get returns the named style, or a plain style when it is not defined
func Get(name string) lipgloss.Style {
	if s, ok := StyleRegistry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to text
func Render(name, text string) string {
	return Get(name).Render(text)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
