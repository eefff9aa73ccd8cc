package display

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/appsel/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypesResultTables(t *testing.T) {
	result := &TypesResult{Types: []TypeRow{
		{Type: "image/png", Extensions: []string{"png"}, Explicit: true, Status: StatusUserDefined, DefaultApp: "viewer.desktop", DefaultName: "Viewer"},
		{Type: "text/plain", Status: StatusAutomatic},
	}}

	tables := result.Tables()
	require.Len(t, tables, 1)
	require.Len(t, tables[0].Rows, 2)
	assert.Equal(t, []string{"image/png", "png", StatusUserDefined, "Viewer"}, tables[0].Rows[0].Cells)
	assert.Equal(t, style.Explicit, tables[0].Rows[0].Style)
	assert.Equal(t, []string{"text/plain", "", StatusAutomatic, "-"}, tables[0].Rows[1].Cells)
	assert.Equal(t, style.Automatic, tables[0].Rows[1].Style)
}

func TestCandidatesResultTables(t *testing.T) {
	result := &CandidatesResult{Type: "text/plain", Comment: "plain text document", Candidates: []CandidateRow{
		{App: "a.desktop", Name: "A", Default: true},
		{App: "b.desktop", Name: "B", Disabled: true},
		{App: "c.desktop", Name: "C", Custom: true},
	}}

	table := result.Tables()[0]
	assert.Equal(t, "text/plain (plain text document)", table.Title)
	assert.Equal(t, "default", table.Rows[0].Cells[2])
	assert.Equal(t, style.Default, table.Rows[0].Style)
	assert.Equal(t, "disabled", table.Rows[1].Cells[2])
	assert.Equal(t, style.Disabled, table.Rows[1].Style)
	assert.Equal(t, "custom", table.Rows[2].Cells[2])
	assert.Equal(t, style.Custom, table.Rows[2].Style)
}

func TestFlags(t *testing.T) {
	assert.Equal(t, "", flags(false, false, false))
	assert.Equal(t, "default, custom", flags(false, true, true))
}

func TestPathsResultTables(t *testing.T) {
	result := &PathsResult{
		Config: "/home/u/.config/appsel/config.toml",
		Layers: []LayerPath{
			{Path: "/home/u/.config/mimeapps.list", Writable: true},
			{Path: "/etc/xdg/mimeapps.list", Exists: true},
		},
		Caches: []string{"/usr/share/applications/mimeinfo.cache"},
	}

	tables := result.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, []string{"/home/u/.config/mimeapps.list", "no", "yes"}, tables[0].Rows[0].Cells)
	assert.Len(t, tables[1].Rows, 2)
}

func TestMutationMessages(t *testing.T) {
	changed := MutationResult{Action: "set-default", Type: "image/png", App: "viewer.desktop", Changed: true, Path: "/home/u/.config/mimeapps.list"}
	unchanged := MutationResult{Action: "clear-default", Type: "image/png"}

	assert.Equal(t, "set-default viewer.desktop for image/png (saved to /home/u/.config/mimeapps.list)", changed.Message())
	assert.Equal(t, "clear-default image/png: no change", unchanged.Message())

	batch := MutationsResult{Results: []MutationResult{changed, unchanged}}
	assert.Equal(t, changed.Message()+"\n"+unchanged.Message(), batch.Message())
}

func TestRenderTablesPlain(t *testing.T) {
	var buf bytes.Buffer
	tables := []Table{
		{Title: "Types", Header: []string{"Type", "Default"}, Rows: []Row{{Cells: []string{"image/png", "viewer.desktop"}, Style: style.Explicit}}},
		{Title: "Empty", Header: []string{"Type"}},
	}

	require.NoError(t, RenderTables(&buf, tables, false))

	out := buf.String()
	assert.Contains(t, out, "Types")
	assert.Contains(t, out, "image/png")
	assert.Contains(t, out, "viewer.desktop")
	assert.Contains(t, out, "(none)")
	assert.NotContains(t, out, "\x1b[1m")
}
