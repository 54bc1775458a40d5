package types

import "errors"

// Config holds the parameters for attaching a storage backend.
type Config struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// DatabaseFile is the SQLite file name created inside DataDir.
const DatabaseFile = "lumen.db"

// ErrDataDirEmpty is returned by Validate when no data directory is set.
var ErrDataDirEmpty = errors.New("data dir must not be empty")

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
