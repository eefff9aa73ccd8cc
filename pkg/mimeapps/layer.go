package mimeapps

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/appsel/pkg/errors"
	"github.com/arthur-debert/appsel/pkg/internal/keyfile"
	"github.com/arthur-debert/appsel/pkg/logging"
	"github.com/arthur-debert/appsel/pkg/types"
	"gopkg.in/ini.v1"
)

// Layer is one parsed mimeapps.list file
type Layer struct {
	Path string
	// Exists is false when the file was missing or unreadable
	Exists bool
	db     *Database
	order  map[types.Section][]string
}

func newLayer(path string) *Layer {
	return &Layer{Path: path, db: NewDatabase(), order: make(map[types.Section][]string)}
}

// Get returns the de-duplicated list for contentType in section
func (l *Layer) Get(section types.Section, contentType string) []string {
	return l.db.Get(section, contentType)
}

// Contains reports whether appID is listed for contentType in section
func (l *Layer) Contains(section types.Section, contentType, appID string) bool {
	return l.db.Contains(section, contentType, appID)
}

// Types returns the content types of section in file order
func (l *Layer) Types(section types.Section) []string {
	return append([]string(nil), l.order[section]...)
}

// ParseLayer builds a layer from key file data
func ParseLayer(path string, data []byte) (*Layer, error) {
	f, err := keyfile.Parse(data)
	if err != nil {
		return newLayer(path), err
	}
	l := layerFromFile(path, f)
	l.Exists = true
	return l, nil
}

func layerFromFile(path string, f *ini.File) *Layer {
	logger := logging.GetLogger("mimeapps")
	l := newLayer(path)

	for _, section := range types.Sections {
		sec, err := f.GetSection(string(section))
		if err != nil {
			continue
		}
		for _, key := range sec.Keys() {
			list := keyfile.Unique(keyfile.SplitList(key.String()))
			if len(list) == 0 {
				continue
			}
			if !l.db.Has(section, key.Name()) {
				l.order[section] = append(l.order[section], key.Name())
			}
			l.db.set(section, key.Name(), list)
		}
	}

	for _, contentType := range l.order[types.SectionAdded] {
		for _, appID := range l.db.Get(types.SectionAdded, contentType) {
			if l.db.Contains(types.SectionRemoved, contentType, appID) {
				logger.Warn().
					Str("path", path).
					Str("mimetype", contentType).
					Str("app", appID).
					Msg("Application is both added and removed for the same type")
			}
		}
	}
	return l
}

// loadFile reads path into a key file. Missing and unreadable files yield an
// empty document and unparseable lines are dropped; both are only logged.
// The returned error reports anything lost, so the writable layer is never
// written back from an incomplete read.
func loadFile(fsys types.FS, path string) (*ini.File, bool, error) {
	logger := logging.GetLogger("mimeapps")

	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("mimeapps.list does not exist")
			return keyfile.Empty(), false, nil
		}
		logger.Warn().Err(err).Str("path", path).Msg("Cannot read mimeapps.list, treating it as empty")
		return keyfile.Empty(), false, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path).
			WithDetail("path", path)
	}

	f, problems, err := keyfile.Load(data, false)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Cannot parse mimeapps.list, treating it as empty")
		return keyfile.Empty(), false, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", path).
			WithDetail("path", path)
	}
	logger.Debug().Str("path", path).Msg("Reading mimeapps.list entries")
	if len(problems) == 0 {
		return f, true, nil
	}

	lines := make([]string, 0, len(problems))
	for _, p := range problems {
		logger.Warn().Str("path", path).Int("line", p.Line).Str("text", p.Text).Msg("Skipping " + p.Reason)
		lines = append(lines, p.String())
	}
	return f, true, errors.Newf(errors.ErrConfigParse, "%s has %d unparseable line(s)", path, len(problems)).
		WithDetail("path", path).
		WithDetail("lines", lines)
}
