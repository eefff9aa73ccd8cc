// Package paths implements the search-path policy for appsel.
//
// It enumerates, in precedence order, the mimeapps.list layers, the
// mimeinfo.cache files, the application directories holding desktop entries
// and the shared-mime-info package directories, following the XDG Base
// Directory and MIME Applications Associations specifications.
//
// The policy works on an explicit Dirs value so callers and tests can inject
// synthetic directories; FromEnvironment builds one from adrg/xdg and
// $XDG_CURRENT_DESKTOP.
package paths
