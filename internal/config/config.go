// Package config provides configuration loading and validation for zonewise.
//
// Configuration comes from a YAML file; every setting has a working default
// so the server runs with no config file at all.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort           = 8080
	defaultDatabasePath   = "zonewise.db"
	defaultChunkSize      = 2000
	defaultMaxUploadBytes = 32 << 20 // 32 MiB
)

// EnvConfigPath is the environment variable naming the config file.
const EnvConfigPath = "ZONEWISE_CONFIG"

// ResolveConfigPath picks the config file path from the explicit flag value,
// the environment, or returns empty meaning "defaults only".
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads and validates configuration. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return errors.New("server.port must be 1..65535")
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = defaultDatabasePath
	}

	if cfg.Import.ChunkSize <= 0 {
		cfg.Import.ChunkSize = defaultChunkSize
	}
	if cfg.Import.AllowDirectMembers == nil {
		allow := true
		cfg.Import.AllowDirectMembers = &allow
	}
	if cfg.Import.MaxUploadBytes <= 0 {
		cfg.Import.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}
