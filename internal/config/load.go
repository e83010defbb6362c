package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile decodes a TOML or YAML file over c. Keys missing from the file
// keep the values already in c, so callers typically start from a preset.
// The result is validated.
func LoadFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), c); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return c.Validate()
}

// Resolve starts from the named preset and applies the optional config file.
func Resolve(preset, path string) (Config, error) {
	c, err := Preset(preset)
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return c, c.Validate()
	}
	if err := LoadFile(path, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
