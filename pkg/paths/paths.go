package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/appsel/pkg/logging"
	"github.com/arthur-debert/appsel/pkg/types"
)

// Environment variable names
const (
	// EnvCurrentDesktop holds the colon-separated list of desktop environment names
	EnvCurrentDesktop = "XDG_CURRENT_DESKTOP"
)

// File and directory names defined by the freedesktop specifications
const (
	MimeappsListName  = "mimeapps.list"
	MimeinfoCacheName = "mimeinfo.cache"
	ApplicationsDir   = "applications"
	MimePackagesDir   = "mime/packages"

	// AppDirName is the directory name for appsel's own configuration and state
	AppDirName = "appsel"
	// ConfigFileName is the name of appsel's configuration file
	ConfigFileName = "config.toml"
)

// Dirs are the base directories the policy searches
type Dirs struct {
	ConfigHome string
	ConfigDirs []string
	DataHome   string
	DataDirs   []string
	// Desktops are the current desktop environment names, most important first
	Desktops []string
}

// FromEnvironment returns the XDG base directories of the running session
func FromEnvironment() Dirs {
	return Dirs{
		ConfigHome: xdg.ConfigHome,
		ConfigDirs: xdg.ConfigDirs,
		DataHome:   xdg.DataHome,
		DataDirs:   xdg.DataDirs,
		Desktops:   SplitDesktops(os.Getenv(EnvCurrentDesktop)),
	}
}

// SplitDesktops splits an $XDG_CURRENT_DESKTOP value, dropping empty names
func SplitDesktops(value string) []string {
	var desktops []string
	for _, d := range strings.Split(value, ":") {
		if d = strings.TrimSpace(d); d != "" {
			desktops = append(desktops, d)
		}
	}
	return desktops
}

// WithDesktops returns a copy of d using the given desktop names
func (d Dirs) WithDesktops(desktops []string) Dirs {
	d.Desktops = append([]string(nil), desktops...)
	return d
}

// UserMimeappsList is the desktop-agnostic user mimeapps.list, the default
// target for writes
func (d Dirs) UserMimeappsList() string {
	return filepath.Join(d.ConfigHome, MimeappsListName)
}

// LocalApplicationsDir is the user-writable directory for desktop entries
func (d Dirs) LocalApplicationsDir() string {
	return filepath.Join(d.DataHome, ApplicationsDir)
}

// ApplicationDirs lists directories holding desktop entries, highest priority first
func (d Dirs) ApplicationDirs() []string {
	dirs := []string{d.LocalApplicationsDir()}
	for _, dir := range d.DataDirs {
		dirs = append(dirs, filepath.Join(dir, ApplicationsDir))
	}
	return dedupe(dirs)
}

// MimePackageDirs lists shared-mime-info package directories, highest priority first
func (d Dirs) MimePackageDirs() []string {
	dirs := []string{filepath.Join(d.DataHome, MimePackagesDir)}
	for _, dir := range d.DataDirs {
		dirs = append(dirs, filepath.Join(dir, MimePackagesDir))
	}
	return dedupe(dirs)
}

// MimeappsListCandidates lists every place a mimeapps.list may live, in
// decreasing precedence: user config, system config, user data, system data;
// within each directory desktop-specific files come before the generic one.
func (d Dirs) MimeappsListCandidates() []string {
	var bases []string
	bases = append(bases, d.ConfigHome)
	bases = append(bases, d.ConfigDirs...)
	bases = append(bases, d.LocalApplicationsDir())
	for _, dir := range d.DataDirs {
		bases = append(bases, filepath.Join(dir, ApplicationsDir))
	}

	var candidates []string
	for _, base := range dedupe(bases) {
		for _, desktop := range d.Desktops {
			candidates = append(candidates, filepath.Join(base, strings.ToLower(desktop)+"-"+MimeappsListName))
		}
		candidates = append(candidates, filepath.Join(base, MimeappsListName))
	}
	return candidates
}

// MimeappsLists returns the existing mimeapps.list layers in precedence order.
// The first entry is always inside ConfigHome so that the writable layer is
// user-owned; when no user file exists yet the generic user path is prepended.
func (d Dirs) MimeappsLists(fsys types.FS) []string {
	logger := logging.GetLogger("paths")

	var found []string
	for _, candidate := range d.MimeappsListCandidates() {
		if isFile(fsys, candidate) {
			found = append(found, candidate)
		}
	}

	if len(found) == 0 || !isWithin(found[0], d.ConfigHome) {
		found = append([]string{d.UserMimeappsList()}, found...)
	}

	logger.Debug().Strs("paths", found).Msg("Resolved mimeapps.list layers")
	return found
}

// MimeinfoCaches returns the existing mimeinfo.cache files, highest priority first
func (d Dirs) MimeinfoCaches(fsys types.FS) []string {
	var found []string
	for _, dir := range d.ApplicationDirs() {
		candidate := filepath.Join(dir, MimeinfoCacheName)
		if isFile(fsys, candidate) {
			found = append(found, candidate)
		}
	}
	return found
}

// ConfigFile is the default location of appsel's configuration file
func (d Dirs) ConfigFile() string {
	return filepath.Join(d.ConfigHome, AppDirName, ConfigFileName)
}

// IsWithin reports whether path lives inside dir
func IsWithin(path, dir string) bool {
	return isWithin(path, dir)
}

func isWithin(path, dir string) bool {
	if dir == "" || path == "" {
		return false
	}
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

func isFile(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
