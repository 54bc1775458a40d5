package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "LUMEN"

	cfgKeyDataDir    = "data_dir"
	cfgKeyListenAddr = "listen_addr"
	cfgKeyLogLevel   = "log_level"
	cfgKeyLogFormat  = "log_format"

	defaultListenAddr = "localhost:8080"
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Lumen configuration

# Address the HTTP API listens on (overridable by --listen)
listen_addr: localhost:8080

# Logging: level is a logrus level name, format is text or json
log_level: info
log_format: text

# Data directory (optional; overridable by --data-dir flag)
# data_dir:
`

// Config is the resolved configuration. Every key can also be set through
// the environment as LUMEN_<KEY>, e.g. LUMEN_LISTEN_ADDR.
type Config struct {
	DataDir    string
	ListenAddr string
	LogLevel   string
	LogFormat  string
}

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run.
func loadConfig(configDir string) (Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyListenAddr, defaultListenAddr)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		DataDir:    v.GetString(cfgKeyDataDir),
		ListenAddr: v.GetString(cfgKeyListenAddr),
		LogLevel:   v.GetString(cfgKeyLogLevel),
		LogFormat:  v.GetString(cfgKeyLogFormat),
	}, nil
}

// ensureDefaultConfigFile creates config.yaml if it does not exist.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
