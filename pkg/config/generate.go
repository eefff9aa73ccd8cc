package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/appsel/pkg/errors"
	"github.com/arthur-debert/appsel/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// GenerateConfigContent generates the configuration file content with commented values
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// WriteSample writes a commented sample configuration to path. An existing
// file is only replaced when force is set.
func WriteSample(fsys types.FS, path string, force bool) error {
	if _, err := fsys.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrConfigWrite, "%s already exists", path).WithDetail("path", path)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path).
			WithDetail("path", path)
	}
	if err := fsys.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	return nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines and comments as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [paths], [output]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
