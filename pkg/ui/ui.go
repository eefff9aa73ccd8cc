// Package ui renders command results and errors in one of several output
// formats: styled terminal tables, plain text, JSON or YAML.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/appsel/pkg/ui/json"
	"github.com/arthur-debert/appsel/pkg/ui/terminal"
	"github.com/arthur-debert/appsel/pkg/ui/text"
	"github.com/arthur-debert/appsel/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with its code and details
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates the renderer for format, resolving FormatAuto
// against output
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format.Resolve(output) {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
