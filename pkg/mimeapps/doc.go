// Package mimeapps implements the association store: the merged view of every
// mimeapps.list layer and the mutation protocol that persists user overrides
// into the single writable layer.
//
// Layers are given highest precedence first. Loading appends each layer's
// lists after the lists accumulated so far, so for a content type the merged
// Default Applications list is the concatenation of every layer's list in
// precedence order. Resolution walks these lists and takes the first usable
// entry.
//
// The first layer is the writable layer. It is held twice: once merged into
// the database like every other layer, and once as the key file document that
// is serialised back to disk after every mutation. Both views are updated in
// the same call; other layers are never written.
package mimeapps
