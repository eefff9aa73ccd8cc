package core

import (
	"sort"
	"strings"

	"github.com/arthur-debert/appsel/pkg/display"
	"github.com/arthur-debert/appsel/pkg/errors"
	"github.com/arthur-debert/appsel/pkg/resolver"
)

// TypesOptions filters ListTypes
type TypesOptions struct {
	// UserDefined keeps only types with an explicitly set default
	UserDefined bool
	// Search keeps types whose name, description or extensions contain it
	Search string
}

// ListTypes lists every known content type with its default application
func (s *Session) ListTypes(opts TypesOptions) *display.TypesResult {
	search := strings.ToLower(strings.TrimSpace(opts.Search))
	result := &display.TypesResult{Types: []display.TypeRow{}}

	for _, contentType := range s.Resolver.Types() {
		explicit := s.Cache.HasDefault(contentType)
		if opts.UserDefined && !explicit {
			continue
		}

		row := display.TypeRow{
			Type:       contentType,
			Comment:    s.Registry.Comment(contentType),
			Extensions: s.Registry.Extensions(contentType),
			Explicit:   explicit,
			Status:     display.StatusAutomatic,
		}
		if explicit {
			row.Status = display.StatusUserDefined
		}
		if app, ok := s.Cache.DefaultApp(contentType); ok {
			row.DefaultApp = app
			row.DefaultName = s.Catalog.Name(app)
		}

		if search != "" && !matches(row, search) {
			continue
		}
		result.Types = append(result.Types, row)
	}
	return result
}

func matches(row display.TypeRow, search string) bool {
	if strings.Contains(strings.ToLower(row.Type), search) ||
		strings.Contains(strings.ToLower(row.Comment), search) {
		return true
	}
	for _, ext := range row.Extensions {
		if strings.Contains(strings.ToLower(ext), search) {
			return true
		}
	}
	return false
}

// ShowType lists the candidate applications of contentType
func (s *Session) ShowType(contentType string) (*display.CandidatesResult, error) {
	if contentType == "" {
		return nil, errors.New(errors.ErrInvalidInput, "content type is required")
	}

	apps := s.Resolver.SupportedApps(contentType)
	if len(apps) == 0 && !s.known(contentType) {
		return nil, errors.Newf(errors.ErrTypeNotFound, "no application handles %s", contentType).
			WithDetail("type", contentType)
	}

	result := &display.CandidatesResult{
		Type:       contentType,
		Comment:    s.Registry.Comment(contentType),
		Explicit:   s.Resolver.HasDefault(contentType),
		Candidates: []display.CandidateRow{},
	}
	if app, ok := s.Resolver.DefaultApp(contentType, true); ok {
		result.DefaultApp = app
	}
	for _, app := range resolver.SortedApps(apps) {
		status := apps[app]
		result.Candidates = append(result.Candidates, display.CandidateRow{
			App:      app,
			Name:     s.Catalog.Name(app),
			Disabled: status.Disabled,
			Custom:   status.Custom,
			Default:  status.Default,
		})
	}
	return result, nil
}

func (s *Session) known(contentType string) bool {
	for _, t := range s.Resolver.Types() {
		if t == contentType {
			return true
		}
	}
	_, ok := s.Registry.Lookup(contentType)
	return ok
}

// ListApps lists installed applications. Hidden ones are included when all
// is set or the configuration asks for them.
func (s *Session) ListApps(all bool) *display.AppsResult {
	all = all || s.Config.Display.ShowHidden
	result := &display.AppsResult{Apps: []display.AppRow{}}

	for _, id := range s.Catalog.IDs() {
		shown := s.Catalog.IsShown(id, s.Locations.Desktops)
		if !shown && !all {
			continue
		}
		result.Apps = append(result.Apps, display.AppRow{
			ID:        id,
			Name:      s.Catalog.Name(id),
			Path:      s.Catalog.EntryPath(id),
			Shown:     shown,
			MimeTypes: len(s.Catalog.MimeTypes(id)),
		})
	}
	return result
}

// ShowApp lists the content types appID handles
func (s *Session) ShowApp(appID string) (*display.AppTypesResult, error) {
	if err := s.requireApp(appID); err != nil {
		return nil, err
	}

	statuses := s.Resolver.SupportedTypes(appID)
	contentTypes := make([]string, 0, len(statuses))
	for t := range statuses {
		contentTypes = append(contentTypes, t)
	}
	sort.Strings(contentTypes)

	result := &display.AppTypesResult{
		App:   appID,
		Name:  s.Catalog.Name(appID),
		Path:  s.Catalog.EntryPath(appID),
		Types: []display.AppTypeRow{},
	}
	for _, t := range contentTypes {
		status := statuses[t]
		result.Types = append(result.Types, display.AppTypeRow{
			Type:     t,
			Comment:  s.Registry.Comment(t),
			Disabled: status.Disabled,
			Custom:   status.Custom,
			Default:  status.Default,
		})
	}
	return result, nil
}

// Paths reports every location the session reads or writes
func (s *Session) Paths() *display.PathsResult {
	result := &display.PathsResult{
		Config:       s.configPath,
		Desktops:     s.Locations.Desktops,
		Caches:       s.Index.Paths(),
		Applications: s.Locations.Applications,
		Mime:         s.Locations.Mime,
	}
	for i, layer := range s.Store.Layers() {
		result.Layers = append(result.Layers, display.LayerPath{
			Path:     layer.Path,
			Exists:   layer.Exists,
			Writable: i == 0,
		})
	}
	return result
}

func (s *Session) requireApp(appID string) error {
	if appID == "" {
		return errors.New(errors.ErrInvalidInput, "application id is required")
	}
	if !s.Catalog.Has(appID) {
		return errors.Newf(errors.ErrAppNotFound, "application %s is not installed", appID).
			WithDetail("app", appID)
	}
	return nil
}
