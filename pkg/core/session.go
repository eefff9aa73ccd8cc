package core

import (
	"github.com/arthur-debert/appsel/pkg/config"
	"github.com/arthur-debert/appsel/pkg/desktop"
	"github.com/arthur-debert/appsel/pkg/filesystem"
	"github.com/arthur-debert/appsel/pkg/logging"
	"github.com/arthur-debert/appsel/pkg/mimeapps"
	"github.com/arthur-debert/appsel/pkg/mimecache"
	"github.com/arthur-debert/appsel/pkg/mimedb"
	"github.com/arthur-debert/appsel/pkg/paths"
	"github.com/arthur-debert/appsel/pkg/resolver"
	"github.com/arthur-debert/appsel/pkg/types"
)

// Options configures Open
type Options struct {
	Config *config.Config
	// FS defaults to the OS filesystem
	FS types.FS
	// Dirs defaults to paths.FromEnvironment()
	Dirs *paths.Dirs
	// ConfigPath is reported by Paths
	ConfigPath string
}

// Locations are the search paths a session was opened with
type Locations struct {
	Desktops     []string
	Mimeapps     []string
	Caches       []string
	Applications []string
	Mime         []string
	LocalApps    string
}

// Session holds every loaded source for one command invocation
type Session struct {
	Config    *config.Config
	Locations Locations

	fs         types.FS
	configPath string

	Catalog  *desktop.Catalog
	Store    *mimeapps.Store
	Index    *mimecache.Index
	Registry *mimedb.Registry
	Resolver *resolver.Resolver
	Cache    *resolver.Cache
}

// Open resolves the search paths and loads every source
func Open(opts Options) *Session {
	logger := logging.GetLogger("core")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	var dirs paths.Dirs
	if opts.Dirs != nil {
		dirs = *opts.Dirs
	} else {
		dirs = paths.FromEnvironment()
	}
	if len(cfg.Desktops) > 0 {
		dirs = dirs.WithDesktops(cfg.Desktops)
	}

	loc := Locations{
		Desktops:     dirs.Desktops,
		Mimeapps:     orDefault(cfg.Paths.Mimeapps, func() []string { return dirs.MimeappsLists(fsys) }),
		Caches:       orDefault(cfg.Paths.Caches, func() []string { return dirs.MimeinfoCaches(fsys) }),
		Applications: orDefault(cfg.Paths.Applications, dirs.ApplicationDirs),
		Mime:         orDefault(cfg.Paths.Mime, dirs.MimePackageDirs),
		LocalApps:    dirs.LocalApplicationsDir(),
	}
	logger.Debug().
		Strs("desktops", loc.Desktops).
		Strs("mimeapps", loc.Mimeapps).
		Strs("caches", loc.Caches).
		Strs("applications", loc.Applications).
		Msg("Resolved search paths")

	s := &Session{
		Config:     cfg,
		Locations:  loc,
		fs:         fsys,
		configPath: opts.ConfigPath,
		Catalog:    desktop.Load(fsys, loc.Applications),
		Store:      mimeapps.New(fsys, loc.Mimeapps),
		Index:      mimecache.Load(fsys, loc.Caches),
		Registry:   mimedb.Load(fsys, loc.Mime),
	}
	s.Resolver = resolver.New(s.Store, s.Index, s.Catalog, loc.LocalApps)
	s.Cache = resolver.NewCache(s.Resolver)
	return s
}

func orDefault(configured []string, policy func() []string) []string {
	if len(configured) > 0 {
		return configured
	}
	return policy()
}
