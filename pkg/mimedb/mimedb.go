// Package mimedb reads shared-mime-info package files to describe content
// types: a human readable comment, file name globs, icons, aliases and parent
// types. The registry is purely descriptive; association resolution never
// consults it.
package mimedb

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/appsel/pkg/logging"
	"github.com/arthur-debert/appsel/pkg/types"
	"github.com/beevik/etree"
)

// Info describes one content type
type Info struct {
	Type        string   `json:"type" yaml:"type"`
	Comment     string   `json:"comment,omitempty" yaml:"comment,omitempty"`
	Globs       []string `json:"globs,omitempty" yaml:"globs,omitempty"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	GenericIcon string   `json:"generic_icon,omitempty" yaml:"generic_icon,omitempty"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	SubClassOf  []string `json:"sub_class_of,omitempty" yaml:"sub_class_of,omitempty"`
}

// IconName returns the icon to show for the type. Without an explicit icon
// the freedesktop convention is the type with "/" replaced by "-".
func (i Info) IconName() string {
	if i.Icon != "" {
		return i.Icon
	}
	return strings.ReplaceAll(i.Type, "/", "-")
}

// Registry indexes content type metadata
type Registry struct {
	types   map[string]*Info
	aliases map[string]string
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		types:   make(map[string]*Info),
		aliases: make(map[string]string),
	}
}

// Load parses every *.xml in dirs, highest priority first
func Load(fsys types.FS, dirs []string) *Registry {
	logger := logging.GetLogger("mimedb")
	r := NewRegistry()

	for _, dir := range dirs {
		items, err := fsys.ReadDir(dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn().Err(err).Str("path", dir).Msg("Cannot read MIME package directory")
			}
			continue
		}
		for _, item := range items {
			if item.IsDir() || filepath.Ext(item.Name()) != ".xml" {
				continue
			}
			path := filepath.Join(dir, item.Name())
			data, err := fsys.ReadFile(path)
			if err != nil {
				logger.Warn().Err(err).Str("path", path).Msg("Cannot read MIME package")
				continue
			}
			if err := r.Parse(data); err != nil {
				logger.Warn().Err(err).Str("path", path).Msg("Skipping invalid MIME package")
			}
		}
	}

	logger.Debug().Int("types", len(r.types)).Msg("Loaded MIME type registry")
	return r
}

// Parse merges one shared-mime-info document into the registry. Values
// already known are kept; new globs, aliases and parents are appended.
func (r *Registry) Parse(data []byte) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return err
	}
	root := doc.SelectElement("mime-info")
	if root == nil {
		return errors.New("missing mime-info element")
	}

	for _, el := range root.SelectElements("mime-type") {
		name := el.SelectAttrValue("type", "")
		if name == "" {
			continue
		}
		info, ok := r.types[name]
		if !ok {
			info = &Info{Type: name}
			r.types[name] = info
		}

		for _, child := range el.ChildElements() {
			switch child.Tag {
			case "comment":
				if child.SelectAttr("xml:lang") == nil && info.Comment == "" {
					info.Comment = strings.TrimSpace(child.Text())
				}
			case "glob":
				info.Globs = appendNew(info.Globs, child.SelectAttrValue("pattern", ""))
			case "icon":
				if info.Icon == "" {
					info.Icon = child.SelectAttrValue("name", "")
				}
			case "generic-icon":
				if info.GenericIcon == "" {
					info.GenericIcon = child.SelectAttrValue("name", "")
				}
			case "alias":
				alias := child.SelectAttrValue("type", "")
				info.Aliases = appendNew(info.Aliases, alias)
				if _, taken := r.aliases[alias]; alias != "" && !taken {
					r.aliases[alias] = name
				}
			case "sub-class-of":
				info.SubClassOf = appendNew(info.SubClassOf, child.SelectAttrValue("type", ""))
			}
		}
	}
	return nil
}

// Lookup returns the metadata of contentType, following aliases
func (r *Registry) Lookup(contentType string) (Info, bool) {
	info, ok := r.types[r.Canonical(contentType)]
	if !ok {
		return Info{Type: contentType}, false
	}
	return *info, true
}

// Canonical maps an alias to its canonical type. Unknown names are
// returned unchanged.
func (r *Registry) Canonical(contentType string) string {
	if canonical, ok := r.aliases[contentType]; ok {
		return canonical
	}
	return contentType
}

// Comment returns the description of contentType, or "" when unknown
func (r *Registry) Comment(contentType string) string {
	info, _ := r.Lookup(contentType)
	return info.Comment
}

// Extensions returns the file extensions of contentType, taken from its
// simple "*.ext" globs
func (r *Registry) Extensions(contentType string) []string {
	info, ok := r.Lookup(contentType)
	if !ok {
		return nil
	}
	var exts []string
	for _, glob := range info.Globs {
		ext, ok := strings.CutPrefix(glob, "*.")
		if !ok || ext == "" || strings.ContainsAny(ext, "*?[") {
			continue
		}
		exts = append(exts, ext)
	}
	return exts
}

// Types returns every registered type, sorted
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func appendNew(items []string, item string) []string {
	if item == "" {
		return items
	}
	for _, existing := range items {
		if existing == item {
			return items
		}
	}
	return append(items, item)
}
