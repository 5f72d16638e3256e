// Package config handles the ifctool configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the contents of config.toml.
type Config struct {
	// Archive is the path of the archive database. Defaults to archive.db
	// next to the config file.
	Archive string `toml:"archive"`

	// Verbose turns on debug logging, like --verbose.
	Verbose bool `toml:"verbose"`

	// Header supplies FILE_NAME defaults for generated documents.
	Header HeaderConfig `toml:"header"`
}

type HeaderConfig struct {
	Author       string `toml:"author"`
	Organization string `toml:"organization"`
	Application  string `toml:"application"`
}

// Load reads the config file at path, or at DefaultPath if path is empty.
// A missing default file yields the default config; a missing explicit one
// is an error.
func Load(path string) (*Config, string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	cfg := &Config{}
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, path, nil
		}
		return nil, path, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, path, nil
}

// DefaultPath returns ~/.config/ifctool/config.toml, falling back to the
// OS-specific config directory.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "ifctool", "config.toml")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "ifctool", "config.toml")
	}
	return "config.toml"
}

// ArchivePath resolves the archive path relative to the config file.
func (c *Config) ArchivePath(configPath string) string {
	p := c.Archive
	if p == "" {
		p = "archive.db"
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(filepath.Dir(configPath), p)
	}
	return p
}
