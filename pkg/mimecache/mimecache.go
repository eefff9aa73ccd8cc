// Package mimecache loads mimeinfo.cache files, the installed-capability
// index consulted when no explicit default application is configured.
package mimecache

import (
	"errors"
	"io/fs"
	"sort"

	"github.com/arthur-debert/appsel/pkg/internal/keyfile"
	"github.com/arthur-debert/appsel/pkg/logging"
	"github.com/arthur-debert/appsel/pkg/types"
)

// SectionMimeCache is the only section read from a cache file
const SectionMimeCache = "MIME Cache"

// Index maps content types to candidate applications in cache order
type Index struct {
	entries map[string][]string
	paths   []string
}

// Load reads every cache file in paths and concatenates same-type lists in
// path order. Duplicates are kept. Unusable files contribute nothing.
func Load(fsys types.FS, paths []string) *Index {
	logger := logging.GetLogger("mimecache")
	idx := &Index{entries: make(map[string][]string)}

	for _, path := range paths {
		data, err := fsys.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug().Str("path", path).Msg("mimeinfo.cache does not exist")
			} else {
				logger.Warn().Err(err).Str("path", path).Msg("Cannot read mimeinfo.cache")
			}
			continue
		}
		if err := idx.add(data); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Cannot parse mimeinfo.cache")
			continue
		}
		idx.paths = append(idx.paths, path)
		logger.Debug().Str("path", path).Msg("Reading mimeinfo.cache entries")
	}
	return idx
}

func (idx *Index) add(data []byte) error {
	f, err := keyfile.ParseShadows(data)
	if err != nil {
		return err
	}
	sec, err := f.GetSection(SectionMimeCache)
	if err != nil {
		return nil
	}
	for _, key := range sec.Keys() {
		for _, value := range key.ValueWithShadows() {
			idx.entries[key.Name()] = append(idx.entries[key.Name()], keyfile.SplitList(value)...)
		}
	}
	return nil
}

// Get returns the candidates for contentType, in priority order
func (idx *Index) Get(contentType string) []string {
	list := idx.entries[contentType]
	if len(list) == 0 {
		return nil
	}
	return append([]string(nil), list...)
}

// Has reports whether any cache lists contentType
func (idx *Index) Has(contentType string) bool {
	return len(idx.entries[contentType]) > 0
}

// Types returns every content type in the index, sorted
func (idx *Index) Types() []string {
	keys := make([]string, 0, len(idx.entries))
	for k, v := range idx.entries {
		if len(v) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Paths returns the cache files that were loaded
func (idx *Index) Paths() []string {
	return append([]string(nil), idx.paths...)
}
