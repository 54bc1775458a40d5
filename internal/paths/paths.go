// Package paths resolves the lumen configuration and data directories.
package paths

import (
	"os"
	"path/filepath"
)

// Working-directory-relative defaults.
const (
	DefaultConfigDirName = ".lumen"
	DefaultDataDirName   = ".lumen-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "LUMEN_CONFIG_DIR"
	EnvDataDir   = "LUMEN_DATA_DIR"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > LUMEN_CONFIG_DIR > $(CWD)/.lumen.
// The result is always absolute.
func ResolveConfigDir(flag string) (string, error) {
	return firstAbs(flag, os.Getenv(EnvConfigDir), DefaultConfigDirName)
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > LUMEN_DATA_DIR > configValue (data_dir from config.yaml) >
// $(CWD)/.lumen-db. The result is always absolute.
func ResolveDataDir(flag, configValue string) (string, error) {
	return firstAbs(flag, os.Getenv(EnvDataDir), configValue, DefaultDataDirName)
}

// firstAbs returns the first non-empty candidate as an absolute path.
func firstAbs(candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return filepath.Abs(c)
		}
	}
	return os.Getwd()
}
