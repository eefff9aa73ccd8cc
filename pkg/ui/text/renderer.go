// Package text writes results as plain, unstyled text for pipes and files
package text

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/appsel/pkg/display"
	"github.com/arthur-debert/appsel/pkg/errors"
)

// Renderer prints tables without borders or colour
type Renderer struct {
	w io.Writer
}

// New returns a renderer writing to w
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{w: w}, nil
}

// RenderResult prints tabular results as tables and messages as a line
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case display.Tabular:
		return display.RenderTables(r.w, v.Tables(), false)
	case display.Messager:
		return r.RenderMessage(v.Message())
	}
	_, err := fmt.Fprintf(r.w, "%+v\n", result)
	return err
}

// RenderError prints the error and its details, sorted by key
func (r *Renderer) RenderError(err error) error {
	if _, werr := fmt.Fprintf(r.w, "Error: %v\n", err); werr != nil {
		return werr
	}
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, werr := fmt.Fprintf(r.w, "  %s: %v\n", k, details[k]); werr != nil {
			return werr
		}
	}
	return nil
}

// RenderMessage prints msg on its own line
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.w, msg)
	return err
}
