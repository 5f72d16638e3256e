package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
archive = "models.db"
verbose = true

[header]
author = "Jane Doe"
organization = "ACME"
`), 0o644))

	cfg, resolved, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, resolved)
	require.True(t, cfg.Verbose)
	require.Equal(t, HeaderConfig{Author: "Jane Doe", Organization: "ACME"}, cfg.Header)
	require.Equal(t, filepath.Join(dir, "models.db"), cfg.ArchivePath(resolved))
}

func TestLoad_MissingExplicit(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("archive = "), 0o644))
	_, _, err := Load(path)
	require.ErrorContains(t, err, "failed to parse config")
}

func TestArchivePath(t *testing.T) {
	cfg := &Config{}
	require.Equal(t, filepath.Join("/etc/ifctool", "archive.db"), cfg.ArchivePath("/etc/ifctool/config.toml"))

	cfg.Archive = "/var/lib/models.db"
	require.Equal(t, "/var/lib/models.db", cfg.ArchivePath("/etc/ifctool/config.toml"))
}
