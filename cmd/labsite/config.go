// Config loading for the labsite CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/nepalailab/labsite/internal/httpapi"
	"github.com/nepalailab/labsite/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileYAML = "config.yaml"

	// Config keys.
	cfgKeyAPIURL     = "api_url"
	cfgKeySessionDir = "session_dir"
	cfgKeyStore      = "store"
	cfgKeyRedisAddr  = "redis_addr"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Labsite CLI configuration

# API base URL (overridable by --api-url flag or LABSITE_API_URL)
# api_url: https://newapi.nepalailab.com/api/

# Session store backend: sqlite, bolt, redis, memory
store: sqlite

# Redis address, used when store is redis
# redis_addr: localhost:6379

# Session state directory (optional; overridable by --session-dir flag)
# session_dir:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyAPIURL, httpapi.DefaultBaseURL)
	v.SetDefault(cfgKeyStore, types.StoreSQLite)
	v.SetDefault(cfgKeyRedisAddr, "localhost:6379")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileYAML)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
