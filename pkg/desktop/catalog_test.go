// pkg/desktop/catalog_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: in-memory filesystem
// PURPOSE: Test desktop entry discovery, ID derivation and visibility rules

package desktop_test

import (
	"testing"

	"github.com/arthur-debert/appsel/pkg/desktop"
	"github.com/arthur-debert/appsel/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userApps   = "/home/u/.local/share/applications"
	systemApps = "/usr/share/applications"
)

func TestLoadFirstDirectoryWins(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, userApps+"/viewer.desktop", testutil.DesktopEntry("My Viewer").MimeTypes("image/png").String())
	testutil.WriteFile(t, fsys, systemApps+"/viewer.desktop", testutil.DesktopEntry("Viewer").MimeTypes("image/png", "image/jpeg").String())
	testutil.WriteFile(t, fsys, systemApps+"/editor.desktop", testutil.DesktopEntry("Editor").MimeTypes("text/plain").String())

	catalog := desktop.Load(fsys, []string{userApps, systemApps})

	assert.Equal(t, []string{"editor.desktop", "viewer.desktop"}, catalog.IDs())
	assert.Equal(t, "My Viewer", catalog.Name("viewer.desktop"))
	assert.Equal(t, userApps+"/viewer.desktop", catalog.EntryPath("viewer.desktop"))
	assert.Equal(t, []string{"image/png"}, catalog.MimeTypes("viewer.desktop"))
	assert.Equal(t, []string{"viewer.desktop"}, catalog.Applications("image/png"))
	assert.Empty(t, catalog.Applications("image/jpeg"))
}

func TestLoadDerivesIDsFromSubdirectories(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, systemApps+"/kde4/okular.desktop", testutil.DesktopEntry("Okular").MimeTypes("application/pdf").String())
	testutil.WriteFile(t, fsys, systemApps+"/README", "not an entry")

	catalog := desktop.Load(fsys, []string{systemApps})

	assert.Equal(t, []string{"kde4-okular.desktop"}, catalog.IDs())
	assert.True(t, catalog.Has("kde4-okular.desktop"))
	assert.False(t, catalog.Has("okular.desktop"))
}

func TestLoadSkipsInvalidEntries(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, systemApps+"/broken.desktop", "Name=No group\n")
	testutil.WriteFile(t, fsys, systemApps+"/ok.desktop", testutil.DesktopEntry("Ok").MimeTypes("text/plain").String())

	catalog := desktop.Load(fsys, []string{"/missing", systemApps})

	assert.Equal(t, []string{"ok.desktop"}, catalog.IDs())
	assert.Equal(t, "", catalog.EntryPath("broken.desktop"))
	assert.Nil(t, catalog.MimeTypes("broken.desktop"))
	assert.Equal(t, "broken.desktop", catalog.Name("broken.desktop"))
}

func TestEntryID(t *testing.T) {
	assert.Equal(t, "a.desktop", desktop.EntryID("/apps", "/apps/a.desktop"))
	assert.Equal(t, "vendor-sub-a.desktop", desktop.EntryID("/apps", "/apps/vendor/sub/a.desktop"))
}

func TestParseEntry(t *testing.T) {
	data := "[Desktop Entry]\nType=Application\nIcon=viewer\nMimeType=image/png;image/png;;image/gif\nNoDisplay=true\nOnlyShowIn=GNOME;\n"
	entry, err := desktop.ParseEntry("viewer.desktop", "/apps/viewer.desktop", []byte(data))
	require.NoError(t, err)

	assert.Equal(t, "viewer", entry.Name)
	assert.Equal(t, "viewer", entry.Icon)
	assert.Equal(t, []string{"image/png", "image/gif"}, entry.MimeTypes)
	assert.True(t, entry.NoDisplay)
	assert.False(t, entry.Hidden)
	assert.Equal(t, []string{"GNOME"}, entry.OnlyShowIn)
}

func TestIsShown(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, "/opt/bin/tool", "#!/bin/sh\n")

	tests := []struct {
		name     string
		entry    string
		desktops []string
		shown    bool
	}{
		{"plain", testutil.DesktopEntry("A").MimeTypes("text/plain").String(), nil, true},
		{"hidden", testutil.DesktopEntry("A").MimeTypes("text/plain").Set("Hidden", "true").String(), nil, false},
		{"no display", testutil.DesktopEntry("A").MimeTypes("text/plain").Set("NoDisplay", "true").String(), nil, false},
		{"no types", testutil.DesktopEntry("A").String(), nil, false},
		{"only show in match", testutil.DesktopEntry("A").MimeTypes("text/plain").Set("OnlyShowIn", "KDE;GNOME;").String(), []string{"gnome"}, true},
		{"only show in miss", testutil.DesktopEntry("A").MimeTypes("text/plain").Set("OnlyShowIn", "KDE;").String(), []string{"GNOME"}, false},
		{"not show in match", testutil.DesktopEntry("A").MimeTypes("text/plain").Set("NotShowIn", "GNOME;").String(), []string{"GNOME"}, false},
		{"try exec present", testutil.DesktopEntry("A").MimeTypes("text/plain").Set("TryExec", "/opt/bin/tool").String(), nil, true},
		{"try exec missing", testutil.DesktopEntry("A").MimeTypes("text/plain").Set("TryExec", "/opt/bin/none").String(), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.WriteFile(t, fsys, systemApps+"/a.desktop", tt.entry)
			catalog := desktop.Load(fsys, []string{systemApps})
			assert.Equal(t, tt.shown, catalog.IsShown("a.desktop", tt.desktops))
		})
	}
}

func TestVisible(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFile(t, fsys, systemApps+"/a.desktop", testutil.DesktopEntry("A").MimeTypes("text/plain").String())
	testutil.WriteFile(t, fsys, systemApps+"/b.desktop", testutil.DesktopEntry("B").MimeTypes("text/plain").Set("Hidden", "true").String())

	catalog := desktop.Load(fsys, []string{systemApps})

	assert.Equal(t, []string{"a.desktop"}, catalog.Visible(nil))
	assert.False(t, catalog.IsShown("missing.desktop", nil))
}
