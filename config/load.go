// Package config loads ts-pilot configuration with Viper.
//
// Precedence: defaults < config file < TSPILOT_* environment variables.
// The config file is optional; the tool is fully usable with defaults alone.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/consigcody94/ts-pilot/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the ts-pilot configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Environment variable binding: TSPILOT_GENERATE_STRICT etc.
	v.SetEnvPrefix("TSPILOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Optional config file: ./ts-pilot.toml, then ~/.config/ts-pilot/config.toml
	v.SetConfigType("toml")
	for _, path := range configSearchPaths() {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err == nil {
			break
		}
	}

	viperInstance = v
	return v
}

// configSearchPaths returns candidate config file locations in precedence order
func configSearchPaths() []string {
	paths := []string{"ts-pilot.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ts-pilot", "config.toml"))
	}
	return paths
}
