// Package keyfile reads and writes the freedesktop "key file" flavour of INI
// used by mimeapps.list, mimeinfo.cache and desktop entries.
package keyfile

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// ListSeparator separates the elements of a list value
const ListSeparator = ";"

func init() {
	// mimeapps.list is written as key=value without padding
	ini.PrettyFormat = false
	ini.PrettyEqual = false
}

func options(shadows bool) ini.LoadOptions {
	return ini.LoadOptions{
		// ';' separates list items and is never a comment inside a value
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		PreserveSurroundedQuote: true,
		SkipUnrecognizableLines: true,
		KeyValueDelimiters:      "=",
		AllowShadows:            shadows,
	}
}

// Problem is a line that had to be discarded to parse a file
type Problem struct {
	Line   int
	Text   string
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("line %d: %s: %q", p.Line, p.Reason, p.Text)
}

// Sanitize drops the lines the INI parser would reject or misread: group
// headers without a closing bracket (and every entry under them, up to the
// next valid header), lines that are not key=value entries, quoted keys and
// values opening a quoted multi-line block.
func Sanitize(data []byte) ([]byte, []Problem) {
	var (
		out      bytes.Buffer
		problems []Problem
		skipping bool
	)
	lines := bytes.SplitAfter(data, []byte("\n"))
	for i, raw := range lines {
		text := strings.TrimSpace(string(raw))
		reason := ""
		switch {
		case text == "":
		case strings.HasPrefix(text, "["):
			if end := strings.LastIndexByte(text, ']'); end > 1 {
				skipping = false
			} else {
				skipping = true
				reason = "malformed group header"
			}
		case skipping:
			reason = "under malformed group header"
		case text[0] == '#' || text[0] == ';':
		default:
			reason = entryProblem(text)
		}

		if reason != "" {
			problems = append(problems, Problem{Line: i + 1, Text: text, Reason: reason})
			continue
		}
		out.Write(raw)
	}
	return out.Bytes(), problems
}

func entryProblem(text string) string {
	eq := strings.IndexByte(text, '=')
	if eq <= 0 || strings.TrimSpace(text[:eq]) == "" {
		return "not a key=value entry"
	}
	if text[0] == '"' || text[0] == '`' {
		return "quoted key"
	}
	value := strings.TrimSpace(text[eq+1:])
	if strings.HasPrefix(value, "`") || strings.HasPrefix(value, `"""`) {
		return "quoted multi-line value"
	}
	return ""
}

// Load sanitizes data, parses what remains and returns the discarded lines
func Load(data []byte, shadows bool) (*ini.File, []Problem, error) {
	clean, problems := Sanitize(data)
	f, err := ini.LoadSources(options(shadows), clean)
	return f, problems, err
}

// Parse parses data leniently. Discarded lines are dropped silently; a
// repeated key keeps its last value.
func Parse(data []byte) (*ini.File, error) {
	f, _, err := Load(data, false)
	return f, err
}

// ParseShadows is like Parse but keeps every value of a repeated key,
// retrievable with Key.ValueWithShadows.
func ParseShadows(data []byte) (*ini.File, error) {
	f, _, err := Load(data, true)
	return f, err
}

// Empty returns an empty file configured like Parse
func Empty() *ini.File {
	return ini.Empty(options(false))
}

// Encode serialises f
func Encode(f *ini.File) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SplitList splits a ';'-separated value. The trailing separator is optional
// and empty items are dropped.
func SplitList(value string) []string {
	value = strings.Trim(strings.TrimSpace(value), ListSeparator)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ListSeparator)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// JoinList joins items into a list value
func JoinList(items []string) string {
	return strings.Join(items, ListSeparator)
}

// Unique returns items with duplicates removed, keeping first occurrences
func Unique(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

// Bool interprets a key file boolean
func Bool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}
