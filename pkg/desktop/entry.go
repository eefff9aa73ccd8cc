package desktop

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/appsel/pkg/internal/keyfile"
	"github.com/arthur-debert/appsel/pkg/types"
)

// SectionDesktopEntry is the main group of a desktop entry file
const SectionDesktopEntry = "Desktop Entry"

// Entry is the subset of a desktop entry appsel cares about
type Entry struct {
	ID         string   `json:"id" yaml:"id"`
	Path       string   `json:"path" yaml:"path"`
	Name       string   `json:"name" yaml:"name"`
	Icon       string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Exec       string   `json:"exec,omitempty" yaml:"exec,omitempty"`
	TryExec    string   `json:"try_exec,omitempty" yaml:"try_exec,omitempty"`
	MimeTypes  []string `json:"mime_types,omitempty" yaml:"mime_types,omitempty"`
	Hidden     bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	NoDisplay  bool     `json:"no_display,omitempty" yaml:"no_display,omitempty"`
	OnlyShowIn []string `json:"only_show_in,omitempty" yaml:"only_show_in,omitempty"`
	NotShowIn  []string `json:"not_show_in,omitempty" yaml:"not_show_in,omitempty"`
}

// ParseEntry parses desktop entry data
func ParseEntry(id, path string, data []byte) (*Entry, error) {
	f, err := keyfile.Parse(data)
	if err != nil {
		return nil, err
	}
	sec, err := f.GetSection(SectionDesktopEntry)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		ID:         id,
		Path:       path,
		Name:       sec.Key("Name").String(),
		Icon:       sec.Key("Icon").String(),
		Exec:       sec.Key("Exec").String(),
		TryExec:    sec.Key("TryExec").String(),
		MimeTypes:  keyfile.Unique(keyfile.SplitList(sec.Key("MimeType").String())),
		Hidden:     keyfile.Bool(sec.Key("Hidden").String()),
		NoDisplay:  keyfile.Bool(sec.Key("NoDisplay").String()),
		OnlyShowIn: keyfile.SplitList(sec.Key("OnlyShowIn").String()),
		NotShowIn:  keyfile.SplitList(sec.Key("NotShowIn").String()),
	}
	if e.Name == "" {
		e.Name = strings.TrimSuffix(id, filepath.Ext(id))
	}
	return e, nil
}

// ShownIn applies the visibility rules for the given desktops. The reason is
// empty when the entry is shown.
func (e *Entry) ShownIn(fsys types.FS, desktops []string) (bool, string) {
	if e.Hidden || e.NoDisplay {
		return false, "hidden or NoDisplay"
	}
	if len(e.MimeTypes) == 0 {
		return false, "no supported MIME types"
	}
	if len(e.OnlyShowIn) > 0 && !intersects(e.OnlyShowIn, desktops) {
		return false, "OnlyShowIn does not match the current desktop"
	}
	if intersects(e.NotShowIn, desktops) {
		return false, "NotShowIn matches the current desktop"
	}
	if e.TryExec != "" && !executableExists(fsys, e.TryExec) {
		return false, "TryExec target does not exist"
	}
	return true, ""
}

// executableExists resolves absolute paths against fsys and bare names
// against $PATH
func executableExists(fsys types.FS, name string) bool {
	if filepath.IsAbs(name) {
		_, err := fsys.Stat(name)
		return err == nil
	}
	_, err := exec.LookPath(name)
	return err == nil
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if strings.EqualFold(x, y) {
				return true
			}
		}
	}
	return false
}
