// Package resolver answers association queries by combining the merged
// mimeapps.list database, the mimeinfo.cache fallback index and the
// application catalog. It owns no state of its own; Cache adds optional
// memoisation for presentation code.
package resolver

import (
	"sort"

	"github.com/arthur-debert/appsel/pkg/logging"
	"github.com/arthur-debert/appsel/pkg/mimeapps"
	"github.com/arthur-debert/appsel/pkg/mimecache"
	"github.com/arthur-debert/appsel/pkg/paths"
	"github.com/arthur-debert/appsel/pkg/types"
	"github.com/rs/zerolog"
)

// Resolver is the query facade over the association sources
type Resolver struct {
	store   *mimeapps.Store
	index   *mimecache.Index
	catalog types.Catalog
	// localDir is the user's own application directory. Applications
	// installed there are not disabled by removals in global layers.
	localDir string
	logger   zerolog.Logger
}

// New builds a resolver. localDir may be empty, which turns off the local
// application override in SupportedApps.
func New(store *mimeapps.Store, index *mimecache.Index, catalog types.Catalog, localDir string) *Resolver {
	return &Resolver{
		store:    store,
		index:    index,
		catalog:  catalog,
		localDir: localDir,
		logger:   logging.GetLogger("resolver"),
	}
}

// Store exposes the association store for mutations
func (r *Resolver) Store() *mimeapps.Store {
	return r.store
}

// DefaultApp returns the application handling contentType: the first merged
// default that is installed and not removed, or with useFallback the first
// such entry of the fallback cache. ok is false when nothing qualifies.
func (r *Resolver) DefaultApp(contentType string, useFallback bool) (string, bool) {
	merged := r.store.Merged()
	removed := merged.Get(types.SectionRemoved, contentType)

	if app, ok := r.firstUsable(merged.Get(types.SectionDefaults, contentType), removed); ok {
		return app, true
	}
	if useFallback {
		return r.firstUsable(r.index.Get(contentType), removed)
	}
	return "", false
}

func (r *Resolver) firstUsable(candidates, removed []string) (string, bool) {
	for _, app := range candidates {
		if r.catalog.Has(app) && !contains(removed, app) {
			return app, true
		}
	}
	return "", false
}

// HasDefault reports whether the user explicitly chose a default for
// contentType in the writable layer
func (r *Resolver) HasDefault(contentType string) bool {
	return r.store.IsDefaultExplicitlySet(contentType)
}

// SupportedApps lists every application offered for contentType: the
// fallback cache entries plus the custom associations
func (r *Resolver) SupportedApps(contentType string) map[string]types.Status {
	merged := r.store.Merged()
	removed := merged.Get(types.SectionRemoved, contentType)
	defaultApp, _ := r.DefaultApp(contentType, false)

	results := make(map[string]types.Status)
	for _, app := range r.index.Get(contentType) {
		disabled := contains(removed, app)
		if disabled && r.installedLocally(app) && !contains(r.store.Local(types.SectionRemoved, contentType), app) {
			r.logger.Info().Str("app", app).Str("mimetype", contentType).
				Msg("Overriding global Removed Associations state for local application")
			disabled = false
		}
		results[app] = types.Status{Disabled: disabled, Default: app == defaultApp}
	}

	for _, app := range merged.Get(types.SectionAdded, contentType) {
		if contains(removed, app) {
			r.logger.Warn().Str("app", app).Str("mimetype", contentType).
				Msg("Found app in both added and removed associations")
		}
		results[app] = types.Status{Custom: true, Default: app == defaultApp}
	}
	return results
}

func (r *Resolver) installedLocally(app string) bool {
	if r.localDir == "" {
		return false
	}
	entryPath := r.catalog.EntryPath(app)
	return entryPath != "" && paths.IsWithin(entryPath, r.localDir)
}

// SupportedTypes lists every content type appID handles: the types it
// declares natively plus those it was added to
func (r *Resolver) SupportedTypes(appID string) map[string]types.Status {
	merged := r.store.Merged()

	results := make(map[string]types.Status)
	for _, contentType := range r.catalog.MimeTypes(appID) {
		results[contentType] = types.Status{}
	}
	for _, contentType := range merged.TypesListing(types.SectionAdded, appID) {
		results[contentType] = types.Status{Custom: true}
	}
	for _, contentType := range merged.TypesListing(types.SectionRemoved, appID) {
		if status, ok := results[contentType]; ok {
			status.Disabled = true
			results[contentType] = status
		}
	}
	for contentType, status := range results {
		defaultApp, _ := r.DefaultApp(contentType, true)
		status.Default = defaultApp == appID
		results[contentType] = status
	}
	return results
}

// Types returns every content type known to the fallback cache or to any
// merged section, sorted
func (r *Resolver) Types() []string {
	seen := make(map[string]bool)
	for _, contentType := range r.index.Types() {
		seen[contentType] = true
	}
	merged := r.store.Merged()
	for _, section := range types.Sections {
		for _, contentType := range merged.Types(section) {
			seen[contentType] = true
		}
	}

	all := make([]string, 0, len(seen))
	for contentType := range seen {
		all = append(all, contentType)
	}
	sort.Strings(all)
	return all
}

// SortedApps returns the keys of a SupportedApps result, sorted
func SortedApps(statuses map[string]types.Status) []string {
	keys := make([]string, 0, len(statuses))
	for k := range statuses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
