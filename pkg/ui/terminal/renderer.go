// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/appsel/pkg/display"
	"github.com/arthur-debert/appsel/pkg/errors"
	"github.com/arthur-debert/appsel/pkg/style"
)

// Renderer provides styled pterm tables and lipgloss messages
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case display.Tabular:
		return display.RenderTables(r.output, v.Tables(), true)
	case *display.MutationResult:
		return r.renderMutation(v)
	case *display.MutationsResult:
		for i := range v.Results {
			if err := r.renderMutation(&v.Results[i]); err != nil {
				return err
			}
		}
		return nil
	case display.Messager:
		return r.RenderMessage(v.Message())
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderMutation(m *display.MutationResult) error {
	name := style.Changed
	if !m.Changed {
		name = style.Unchanged
	}
	_, err := fmt.Fprintln(r.output, style.Render(name, m.Message()))
	return err
}

// RenderError renders an error followed by its details, one per line
func (r *Renderer) RenderError(err error) error {
	var b strings.Builder
	b.WriteString(style.Render(style.Error, "Error:"))
	b.WriteString(" ")
	b.WriteString(err.Error())

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "\n  %s: %v", k, style.Render(style.Path, fmt.Sprint(details[k])))
	}

	_, werr := fmt.Fprintln(r.output, b.String())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
