package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/appsel/pkg/style"
)

// Row is one table line. Style names the style applied to every cell.
type Row struct {
	Cells []string
	Style string
}

// Table is a titled grid ready for rendering
type Table struct {
	Title  string
	Header []string
	Rows   []Row
}

// Tabular is implemented by results that render as tables
type Tabular interface {
	Tables() []Table
}

// Messager is implemented by results that render as a short message
type Messager interface {
	Message() string
}

func flags(disabled, custom, isDefault bool) string {
	var parts []string
	if isDefault {
		parts = append(parts, "default")
	}
	if custom {
		parts = append(parts, "custom")
	}
	if disabled {
		parts = append(parts, "disabled")
	}
	return strings.Join(parts, ", ")
}

func rowStyle(disabled, custom, isDefault bool) string {
	switch {
	case disabled:
		return style.Disabled
	case isDefault:
		return style.Default
	case custom:
		return style.Custom
	default:
		return ""
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Tables renders the type listing
func (r *TypesResult) Tables() []Table {
	t := Table{Header: []string{"Type", "Extensions", "Status", "Default"}}
	for _, row := range r.Types {
		name := row.DefaultName
		if name == "" {
			name = row.DefaultApp
		}
		rs := style.Automatic
		if row.Explicit {
			rs = style.Explicit
		}
		t.Rows = append(t.Rows, Row{
			Cells: []string{row.Type, strings.Join(row.Extensions, " "), row.Status, orDash(name)},
			Style: rs,
		})
	}
	return []Table{t}
}

// Tables renders the candidates of one type
func (r *CandidatesResult) Tables() []Table {
	title := r.Type
	if r.Comment != "" {
		title = fmt.Sprintf("%s (%s)", r.Type, r.Comment)
	}
	t := Table{Title: title, Header: []string{"Application", "Name", "Flags"}}
	for _, c := range r.Candidates {
		t.Rows = append(t.Rows, Row{
			Cells: []string{c.App, c.Name, flags(c.Disabled, c.Custom, c.Default)},
			Style: rowStyle(c.Disabled, c.Custom, c.Default),
		})
	}
	return []Table{t}
}

// Tables renders the application listing
func (r *AppsResult) Tables() []Table {
	t := Table{Header: []string{"Application", "Name", "Types", "Shown"}}
	for _, a := range r.Apps {
		rs := ""
		if !a.Shown {
			rs = style.Disabled
		}
		t.Rows = append(t.Rows, Row{
			Cells: []string{a.ID, a.Name, fmt.Sprint(a.MimeTypes), yesNo(a.Shown)},
			Style: rs,
		})
	}
	return []Table{t}
}

// Tables renders the types of one application
func (r *AppTypesResult) Tables() []Table {
	t := Table{Title: fmt.Sprintf("%s (%s)", r.Name, r.App), Header: []string{"Type", "Description", "Flags"}}
	for _, row := range r.Types {
		t.Rows = append(t.Rows, Row{
			Cells: []string{row.Type, row.Comment, flags(row.Disabled, row.Custom, row.Default)},
			Style: rowStyle(row.Disabled, row.Custom, row.Default),
		})
	}
	return []Table{t}
}

// Tables renders the search paths
func (r *PathsResult) Tables() []Table {
	layers := Table{Title: "mimeapps.list layers", Header: []string{"Path", "Exists", "Writable"}}
	for _, l := range r.Layers {
		rs := style.Path
		if l.Writable {
			rs = style.Explicit
		}
		layers.Rows = append(layers.Rows, Row{Cells: []string{l.Path, yesNo(l.Exists), yesNo(l.Writable)}, Style: rs})
	}

	other := Table{Title: "Other locations", Header: []string{"Kind", "Path"}}
	add := func(kind string, items []string) {
		for _, item := range items {
			other.Rows = append(other.Rows, Row{Cells: []string{kind, item}, Style: style.Path})
		}
	}
	add("config", []string{r.Config})
	add("desktop", r.Desktops)
	add("cache", r.Caches)
	add("applications", r.Applications)
	add("mime", r.Mime)

	return []Table{layers, other}
}

// Message describes the outcome of a mutation
func (r *MutationResult) Message() string {
	subject := r.Type
	if r.App != "" {
		subject = fmt.Sprintf("%s for %s", r.App, r.Type)
	}
	if !r.Changed {
		return fmt.Sprintf("%s %s: no change", r.Action, subject)
	}
	return fmt.Sprintf("%s %s (saved to %s)", r.Action, subject, r.Path)
}

// Message describes the outcome of every mutation in the batch
func (r *MutationsResult) Message() string {
	lines := make([]string, 0, len(r.Results))
	for i := range r.Results {
		lines = append(lines, r.Results[i].Message())
	}
	return strings.Join(lines, "\n")
}
