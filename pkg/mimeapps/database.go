package mimeapps

import (
	"sort"

	"github.com/arthur-debert/appsel/pkg/types"
)

// Database holds per-section lists keyed by content type
type Database struct {
	sections map[types.Section]map[string][]string
}

// NewDatabase returns an empty database
func NewDatabase() *Database {
	d := &Database{sections: make(map[types.Section]map[string][]string, len(types.Sections))}
	for _, s := range types.Sections {
		d.sections[s] = make(map[string][]string)
	}
	return d
}

// Get returns a copy of the list for contentType in section
func (d *Database) Get(section types.Section, contentType string) []string {
	list := d.sections[section][contentType]
	if len(list) == 0 {
		return nil
	}
	return append([]string(nil), list...)
}

// Contains reports whether appID is listed for contentType in section
func (d *Database) Contains(section types.Section, contentType, appID string) bool {
	return contains(d.sections[section][contentType], appID)
}

// Has reports whether section has a non-empty list for contentType
func (d *Database) Has(section types.Section, contentType string) bool {
	return len(d.sections[section][contentType]) > 0
}

// Types returns the content types with a non-empty list in section, sorted
func (d *Database) Types(section types.Section) []string {
	keys := make([]string, 0, len(d.sections[section]))
	for k, v := range d.sections[section] {
		if len(v) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// TypesListing returns the content types whose list in section contains appID, sorted
func (d *Database) TypesListing(section types.Section, appID string) []string {
	var keys []string
	for k, v := range d.sections[section] {
		if contains(v, appID) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// merge appends every list of l after the lists already held
func (d *Database) merge(l *Layer) {
	for _, s := range types.Sections {
		for _, contentType := range l.Types(s) {
			d.appendList(s, contentType, l.Get(s, contentType))
		}
	}
}

func (d *Database) appendList(section types.Section, contentType string, list []string) {
	if len(list) == 0 {
		return
	}
	existing := d.sections[section][contentType]
	merged := make([]string, 0, len(existing)+len(list))
	merged = append(merged, existing...)
	merged = append(merged, list...)
	d.sections[section][contentType] = merged
}

func (d *Database) set(section types.Section, contentType string, list []string) {
	if len(list) == 0 {
		delete(d.sections[section], contentType)
		return
	}
	d.sections[section][contentType] = append([]string(nil), list...)
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

func removeFirst(list []string, item string) ([]string, bool) {
	for i, v := range list {
		if v == item {
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...), true
		}
	}
	return list, false
}
