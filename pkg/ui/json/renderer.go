// Package json writes results as indented JSON documents
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/appsel/pkg/errors"
)

// Renderer encodes one JSON document per call
type Renderer struct {
	enc *json.Encoder
}

// New returns a renderer writing to w
func New(w io.Writer) (*Renderer, error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return &Renderer{enc: enc}, nil
}

// RenderResult encodes result as is; display results carry json tags
func (r *Renderer) RenderResult(result interface{}) error {
	return r.enc.Encode(result)
}

// RenderError encodes an errors.Report
func (r *Renderer) RenderError(err error) error {
	return r.enc.Encode(errors.NewReport(err))
}

// RenderMessage encodes {"message": msg}
func (r *Renderer) RenderMessage(msg string) error {
	return r.enc.Encode(struct {
		Message string `json:"message"`
	}{msg})
}
