// Package core wires appsel together. A Session loads the association layers,
// the mimeinfo.cache fallback index, the desktop entry catalog and the MIME
// type registry from the configured search paths, and exposes the queries and
// mutations the command line needs as display-ready results.
//
// The lower packages never read the environment. Session is the only place
// where configuration, XDG directories and the filesystem meet.
package core
