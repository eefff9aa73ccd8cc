package display

import (
	"fmt"
	"io"

	"github.com/arthur-debert/appsel/pkg/style"
	"github.com/pterm/pterm"
)

// RenderTables writes tables with pterm. Styled output applies row styles
// and pterm's header colors; plain output has no escape sequences.
func RenderTables(w io.Writer, tables []Table, styled bool) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := renderTable(w, t, styled); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, t Table, styled bool) error {
	if t.Title != "" {
		title := t.Title
		if styled {
			title = style.Render(style.Title, title)
		}
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}

	data := pterm.TableData{t.Header}
	for _, row := range t.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			if styled && row.Style != "" && cell != "" {
				cell = style.Render(row.Style, cell)
			}
			cells[i] = cell
		}
		data = append(data, cells)
	}

	printer := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(w)
	if !styled {
		plain := pterm.NewStyle()
		printer = printer.WithStyle(plain).WithHeaderStyle(plain).WithSeparatorStyle(plain)
	}
	return printer.Render()
}
