package mimeapps

import (
	"github.com/arthur-debert/appsel/pkg/internal/keyfile"
	"github.com/arthur-debert/appsel/pkg/types"
	"gopkg.in/ini.v1"
)

// document is the mutable view of the writable layer. It keeps the parsed
// key file so sections and keys it does not touch are written back as loaded.
type document struct {
	file *ini.File
}

func (d *document) get(section types.Section, contentType string) []string {
	sec, err := d.file.GetSection(string(section))
	if err != nil {
		return nil
	}
	key, err := sec.GetKey(contentType)
	if err != nil {
		return nil
	}
	return keyfile.Unique(keyfile.SplitList(key.String()))
}

func (d *document) has(section types.Section, contentType string) bool {
	return len(d.get(section, contentType)) > 0
}

func (d *document) contains(section types.Section, contentType, appID string) bool {
	return contains(d.get(section, contentType), appID)
}

// set replaces the list for contentType; an empty list removes the key
func (d *document) set(section types.Section, contentType string, list []string) {
	if len(list) == 0 {
		if sec, err := d.file.GetSection(string(section)); err == nil {
			sec.DeleteKey(contentType)
		}
		return
	}
	d.file.Section(string(section)).Key(contentType).SetValue(keyfile.JoinList(list))
}

func (d *document) encode() ([]byte, error) {
	return keyfile.Encode(d.file)
}
