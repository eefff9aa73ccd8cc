package topics

import "strings"

// Renderer turns a topic's raw content into what is printed. format is the
// topic file's extension.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim, newline terminated
type PlainRenderer struct{}

// Render returns content with exactly one trailing newline
func (r *PlainRenderer) Render(content string, format string) string {
	return strings.TrimRight(content, "\n") + "\n"
}

// RendererFor picks glamour for styled output and PlainRenderer otherwise
func RendererFor(styled bool) Renderer {
	if styled {
		return NewGlamourRenderer()
	}
	return &PlainRenderer{}
}
