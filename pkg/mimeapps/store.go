package mimeapps

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/appsel/pkg/errors"
	"github.com/arthur-debert/appsel/pkg/logging"
	"github.com/arthur-debert/appsel/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultPath is the writable layer used when no layer paths are given.
// It need not exist yet.
var DefaultPath = filepath.Join(xdg.ConfigHome, "mimeapps.list")

// Store owns the merged association database and the writable layer
type Store struct {
	fs     types.FS
	logger zerolog.Logger

	layers []*Layer
	doc    *document
	// base is the merge of every layer except the writable one
	base   *Database
	merged *Database
	// damage is set when the writable file could not be read in full
	damage error

	listeners []func()
}

// New loads every layer in paths (highest precedence first) and designates
// the first as the writable layer. Loading never fails: unusable files count
// as empty layers and unparseable lines are skipped. See Damage.
func New(fsys types.FS, paths []string) *Store {
	logger := logging.GetLogger("mimeapps")
	if len(paths) == 0 {
		paths = []string{DefaultPath}
	}

	s := &Store{
		fs:     fsys,
		logger: logger,
		base:   NewDatabase(),
		merged: NewDatabase(),
	}

	for i, path := range paths {
		f, ok, damage := loadFile(fsys, path)
		layer := layerFromFile(path, f)
		layer.Exists = ok
		s.layers = append(s.layers, layer)

		if i == 0 {
			s.doc = &document{file: f}
			s.damage = damage
			logger.Info().Str("path", path).Msg("Setting write path")
		} else {
			s.base.merge(layer)
		}
		s.merged.merge(layer)
	}
	return s
}

// Damage reports why the writable layer cannot be safely rewritten, or nil.
// Every mutation fails with this error while it is set.
func (s *Store) Damage() error {
	return s.damage
}

// writable guards mutations against rewriting a file that was only
// partially read
func (s *Store) writable() error {
	if s.damage == nil {
		return nil
	}
	s.logger.Error().Err(s.damage).Str("path", s.WritablePath()).Msg("Refusing to rewrite damaged mimeapps.list")
	return s.damage
}

// WritablePath is the file every mutation is persisted to
func (s *Store) WritablePath() string {
	return s.layers[0].Path
}

// Layers returns the loaded layers, highest precedence first
func (s *Store) Layers() []*Layer {
	return append([]*Layer(nil), s.layers...)
}

// Merged is the read-only merged database
func (s *Store) Merged() *Database {
	return s.merged
}

// Local returns the writable layer's own list for contentType in section
func (s *Store) Local(section types.Section, contentType string) []string {
	return s.doc.get(section, contentType)
}

// IsDefaultExplicitlySet reports whether the writable layer itself has a
// Default Applications entry for contentType
func (s *Store) IsDefaultExplicitlySet(contentType string) bool {
	return s.doc.has(types.SectionDefaults, contentType)
}

// Subscribe registers fn to run after every mutation that changed state
func (s *Store) Subscribe(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// SetDefault makes appID the only default for contentType, in the writable
// layer and in the merged database
func (s *Store) SetDefault(contentType, appID string) (bool, error) {
	if err := s.writable(); err != nil {
		return false, err
	}
	s.logger.Debug().Str("mimetype", contentType).Str("app", appID).Msg("Setting default app")

	s.doc.set(types.SectionDefaults, contentType, []string{appID})
	s.merged.set(types.SectionDefaults, contentType, []string{appID})
	return true, s.commit()
}

// ClearDefault removes the active default recorded for contentType in the
// writable layer. Clearing a default that was never set is a logged no-op.
func (s *Store) ClearDefault(contentType string) (bool, error) {
	if err := s.writable(); err != nil {
		return false, err
	}
	s.logger.Debug().Str("mimetype", contentType).Msg("Clearing default")

	local := s.doc.get(types.SectionDefaults, contentType)
	if len(local) == 0 {
		s.logger.Warn().Str("mimetype", contentType).Msg("Tried to clear default app on a type with none set")
		return false, nil
	}

	s.doc.set(types.SectionDefaults, contentType, local[1:])
	s.rederive(types.SectionDefaults, contentType)
	return true, s.commit()
}

// AddAssociation records appID as a custom association for contentType.
// Adding an association already present in the writable layer is a no-op.
func (s *Store) AddAssociation(contentType, appID string) (bool, error) {
	if err := s.writable(); err != nil {
		return false, err
	}
	if s.doc.contains(types.SectionAdded, contentType, appID) {
		s.logger.Debug().Str("mimetype", contentType).Str("app", appID).Msg("Association already added")
		return false, nil
	}

	s.doc.set(types.SectionAdded, contentType, append(s.doc.get(types.SectionAdded, contentType), appID))
	// a layer must not both add and remove the same pair
	if removed, ok := removeFirst(s.doc.get(types.SectionRemoved, contentType), appID); ok {
		s.doc.set(types.SectionRemoved, contentType, removed)
		s.rederive(types.SectionRemoved, contentType)
	}
	s.rederive(types.SectionAdded, contentType)
	return true, s.commit()
}

// RemoveAssociation drops a custom association added in the writable layer.
// Custom associations from other layers cannot be removed.
func (s *Store) RemoveAssociation(contentType, appID string) (bool, error) {
	if err := s.writable(); err != nil {
		return false, err
	}
	local, ok := removeFirst(s.doc.get(types.SectionAdded, contentType), appID)
	if !ok {
		s.logger.Warn().Str("mimetype", contentType).Str("app", appID).
			Msg("Cannot remove association; it is not a custom app at the local level")
		return false, nil
	}

	s.doc.set(types.SectionAdded, contentType, local)
	s.rederive(types.SectionAdded, contentType)
	return true, s.commit()
}

// DisableAssociation lists appID under Removed Associations for contentType.
// Custom associations cannot be disabled; they must be removed instead.
func (s *Store) DisableAssociation(contentType, appID string) (bool, error) {
	if err := s.writable(); err != nil {
		return false, err
	}
	if s.merged.Contains(types.SectionAdded, contentType, appID) {
		s.logger.Warn().Str("mimetype", contentType).Str("app", appID).
			Msg("Disabling custom associations is not supported, they should be removed instead")
		return false, nil
	}
	if s.doc.contains(types.SectionRemoved, contentType, appID) {
		s.logger.Debug().Str("mimetype", contentType).Str("app", appID).Msg("Association already disabled")
		return false, nil
	}

	s.doc.set(types.SectionRemoved, contentType, append(s.doc.get(types.SectionRemoved, contentType), appID))
	s.rederive(types.SectionRemoved, contentType)
	return true, s.commit()
}

// EnableAssociation takes appID off the writable layer's Removed Associations
// for contentType. Associations disabled only by other layers stay disabled.
func (s *Store) EnableAssociation(contentType, appID string) (bool, error) {
	if err := s.writable(); err != nil {
		return false, err
	}
	local, ok := removeFirst(s.doc.get(types.SectionRemoved, contentType), appID)
	if !ok {
		s.logger.Warn().Str("mimetype", contentType).Str("app", appID).
			Msg("Cannot enable association; it is not disabled at the local level")
		return false, nil
	}

	s.doc.set(types.SectionRemoved, contentType, local)
	s.rederive(types.SectionRemoved, contentType)
	return true, s.commit()
}

// rederive rebuilds one merged key from the writable layer and the base
func (s *Store) rederive(section types.Section, contentType string) {
	list := s.doc.get(section, contentType)
	list = append(list, s.base.Get(section, contentType)...)
	s.merged.set(section, contentType, list)
	s.logger.Debug().
		Str("section", string(section)).
		Str("mimetype", contentType).
		Strs("local", s.doc.get(section, contentType)).
		Strs("merged", list).
		Msg("Updated association list")
}

// commit rewrites the writable layer and notifies subscribers. Subscribers
// run even when the write fails because the in-memory state has changed.
func (s *Store) commit() error {
	defer s.notify()

	path := s.WritablePath()
	data, err := s.doc.encode()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to serialise mimeapps.list").
			WithDetail("path", path)
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path).
			WithDetail("path", path)
	}
	if err := s.fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	s.layers[0].Exists = true
	s.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Wrote mimeapps.list")
	return nil
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}
