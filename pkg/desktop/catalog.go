package desktop

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/appsel/pkg/logging"
	"github.com/arthur-debert/appsel/pkg/types"
	"github.com/rs/zerolog"
)

// Extension is the file extension of desktop entries
const Extension = ".desktop"

// Catalog is the set of installed applications
type Catalog struct {
	fs      types.FS
	entries map[string]*Entry
	// byType maps a content type to the IDs declaring it, in ID order
	byType map[string][]string
}

var _ types.Catalog = (*Catalog)(nil)

// Load walks dirs (highest priority first) and parses every desktop entry
func Load(fsys types.FS, dirs []string) *Catalog {
	logger := logging.GetLogger("desktop")
	c := &Catalog{
		fs:      fsys,
		entries: make(map[string]*Entry),
		byType:  make(map[string][]string),
	}

	for _, dir := range dirs {
		c.walk(logger, dir, dir)
	}

	for _, id := range c.IDs() {
		for _, mimeType := range c.entries[id].MimeTypes {
			c.byType[mimeType] = append(c.byType[mimeType], id)
		}
	}
	logger.Debug().Int("entries", len(c.entries)).Strs("dirs", dirs).Msg("Loaded desktop entries")
	return c
}

func (c *Catalog) walk(logger zerolog.Logger, root, dir string) {
	items, err := c.fs.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Err(err).Str("path", dir).Msg("Cannot read application directory")
		}
		return
	}

	for _, item := range items {
		path := filepath.Join(dir, item.Name())
		if item.IsDir() {
			c.walk(logger, root, path)
			continue
		}
		if filepath.Ext(item.Name()) != Extension {
			continue
		}

		id := EntryID(root, path)
		if _, seen := c.entries[id]; seen {
			continue
		}

		data, err := c.fs.ReadFile(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Cannot read desktop entry")
			continue
		}
		entry, err := ParseEntry(id, path, data)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Skipping invalid desktop entry")
			continue
		}
		c.entries[id] = entry
		logger.Trace().Str("app", id).Str("path", path).Msg("Registered desktop entry")
	}
}

// EntryID computes the desktop-file ID of path below root
func EntryID(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.Base(path)
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "-")
}

// Has reports whether appID is installed
func (c *Catalog) Has(appID string) bool {
	_, ok := c.entries[appID]
	return ok
}

// Get returns the entry for appID
func (c *Catalog) Get(appID string) (*Entry, bool) {
	e, ok := c.entries[appID]
	return e, ok
}

// MimeTypes returns the types appID declares natively
func (c *Catalog) MimeTypes(appID string) []string {
	if e, ok := c.entries[appID]; ok {
		return append([]string(nil), e.MimeTypes...)
	}
	return nil
}

// EntryPath returns where appID was loaded from
func (c *Catalog) EntryPath(appID string) string {
	if e, ok := c.entries[appID]; ok {
		return e.Path
	}
	return ""
}

// Name returns the display name of appID, falling back to the ID
func (c *Catalog) Name(appID string) string {
	if e, ok := c.entries[appID]; ok && e.Name != "" {
		return e.Name
	}
	return appID
}

// IDs returns every installed application ID, sorted
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Applications returns the applications declaring contentType natively
func (c *Catalog) Applications(contentType string) []string {
	return append([]string(nil), c.byType[contentType]...)
}

// IsShown reports whether appID should be listed for the given desktops
func (c *Catalog) IsShown(appID string, desktops []string) bool {
	e, ok := c.entries[appID]
	if !ok {
		return false
	}
	shown, reason := e.ShownIn(c.fs, desktops)
	if !shown {
		logger := logging.GetLogger("desktop")
		logger.Debug().Str("app", appID).Str("reason", reason).Msg("Not showing desktop entry")
	}
	return shown
}

// Visible returns the IDs of applications shown on the given desktops
func (c *Catalog) Visible(desktops []string) []string {
	var ids []string
	for _, id := range c.IDs() {
		if c.IsShown(id, desktops) {
			ids = append(ids, id)
		}
	}
	return ids
}
