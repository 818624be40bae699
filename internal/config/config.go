// Package config provides configuration types and parsing for lectio.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultVersion is the version read when none is selected.
	DefaultVersion = "KJV"

	// DataDirEnv overrides the default data directory when set.
	DataDirEnv = "LECTIO_DATA_DIR"

	// StoreExt is the file extension of a version's backing store.
	StoreExt = ".sqlite"

	storeSubdir = "bibles"
)

// Config holds all configuration options for lectio.
type Config struct {
	DataDir    string // Base directory; stores live under DataDir/bibles
	Version    string
	OutputFile string // Passage output path (default: stdout)
	Format     Format
	Verbose    bool
}

// DefaultDataDir returns the OpenLP data directory of the current user.
// LECTIO_DATA_DIR takes precedence over $HOME/.local/share/openlp.
func DefaultDataDir() string {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".local", "share", "openlp")
	}
	return filepath.Join(home, ".local", "share", "openlp")
}

// StoreDir returns the directory holding one store per version.
func (c *Config) StoreDir() string {
	return filepath.Join(c.DataDir, storeSubdir)
}

// StorePath returns the backing store file for the selected version.
func (c *Config) StorePath() string {
	return filepath.Join(c.StoreDir(), c.Version+StoreExt)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory must not be empty")
	}
	if c.Version == "" {
		return fmt.Errorf("version must not be empty")
	}
	if strings.ContainsAny(c.Version, `/\`) || strings.Contains(c.Version, "..") {
		return fmt.Errorf("invalid version name: %s", c.Version)
	}
	return nil
}
