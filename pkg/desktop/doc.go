// Package desktop is the application catalog: it enumerates desktop entries
// from the application directories and answers name, icon, declared MIME
// type and visibility questions about them.
//
// Desktop-file IDs follow the freedesktop rule: the path relative to the
// application directory with "/" replaced by "-". When the same ID exists in
// several directories the first (highest priority) directory wins.
package desktop
