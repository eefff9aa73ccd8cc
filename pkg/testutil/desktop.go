package testutil

import (
	"fmt"
	"strings"
)

// DesktopEntryBuilder builds the content of a .desktop file.
type DesktopEntryBuilder struct {
	name   string
	fields [][2]string
}

// DesktopEntry starts a builder for an application entry with the given name.
func DesktopEntry(name string) *DesktopEntryBuilder {
	return &DesktopEntryBuilder{name: name}
}

// MimeTypes sets the MimeType key.
func (b *DesktopEntryBuilder) MimeTypes(types ...string) *DesktopEntryBuilder {
	return b.Set("MimeType", strings.Join(types, ";")+";")
}

// Set adds an arbitrary key.
func (b *DesktopEntryBuilder) Set(key, value string) *DesktopEntryBuilder {
	b.fields = append(b.fields, [2]string{key, value})
	return b
}

// String renders the entry.
func (b *DesktopEntryBuilder) String() string {
	var sb strings.Builder
	sb.WriteString("[Desktop Entry]\n")
	sb.WriteString("Type=Application\n")
	fmt.Fprintf(&sb, "Name=%s\n", b.name)
	fmt.Fprintf(&sb, "Exec=%s %%F\n", strings.ToLower(strings.ReplaceAll(b.name, " ", "-")))
	for _, kv := range b.fields {
		fmt.Fprintf(&sb, "%s=%s\n", kv[0], kv[1])
	}
	return sb.String()
}
