package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format names an output format. The names match the output.format setting.
type Format string

const (
	// FormatAuto picks FormatTerminal or FormatText for the destination
	FormatAuto Format = "auto"
	// FormatTerminal renders tables with colors and styles
	FormatTerminal Format = "term"
	// FormatText renders plain tables and messages
	FormatText Format = "text"
	// FormatJSON renders results as indented JSON documents
	FormatJSON Format = "json"
	// FormatYAML renders results as YAML documents
	FormatYAML Format = "yaml"
)

var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
	"yaml":     FormatYAML,
	"yml":      FormatYAML,
}

// String returns the canonical name of the format
func (f Format) String() string {
	return string(f)
}

// ParseFormat accepts a format name or alias, case-insensitively
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, fmt.Errorf("unknown format: %s", s)
}

// Resolve replaces FormatAuto with the format suited to w. Writers that are
// not files never get styled output.
func (f Format) Resolve(w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}

// DetectFormat returns FormatTerminal for a color-capable terminal and
// FormatText otherwise. NO_COLOR forces FormatText.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
