// Package config loads .aictx/config.yaml and resolves the convention
// root and .aictx directory for an invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// maxConfigFileSize caps config.yaml reads.
	maxConfigFileSize = 1024 * 1024

	// envPrefix namespaces environment overrides (AICTX_LOGGING_LEVEL).
	envPrefix = "AICTX_"
)

// Load reads aictxDir/config.yaml, overrides it with AICTX_* environment
// variables, and fills in defaults for anything left unset. A missing
// config file is not an error; defaults plus environment apply.
func Load(aictxDir string) (*Config, error) {
	k := koanf.New(".")

	configPath := filepath.Join(aictxDir, "config.yaml")
	if info, err := os.Stat(configPath); err == nil {
		if info.Size() > maxConfigFileSize {
			return nil, fmt.Errorf("config file too large: %s (%d bytes)", configPath, info.Size())
		}
		content, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Override with environment variables.
	// AICTX_CONVENTION_VERSION -> convention_version
	// AICTX_LOGGING_LEVEL      -> logging.level
	// AICTX_LOGGING_FORMAT     -> logging.format
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		switch {
		case strings.HasPrefix(key, "logging_"):
			return "logging." + strings.TrimPrefix(key, "logging_")
		default:
			return key
		}
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills unset fields from DefaultConfig.
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.ConventionVersion == "" {
		cfg.ConventionVersion = defaults.ConventionVersion
	}
	if len(cfg.Adapters) == 0 {
		cfg.Adapters = defaults.Adapters
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaults.Logging.Format
	}
}
