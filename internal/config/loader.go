package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override, e.g. PISTACHIO_SCOUT_ID.
	EnvPrefix = "PISTACHIO_"
	// EnvConfigFile names the variable holding the config file path.
	EnvConfigFile = EnvPrefix + "CONFIG"

	// settingsTable is the table the desktop app writes its settings under.
	settingsTable = "Settings"
)

// requiredKeys are the configuration bundle fields with no default.
var requiredKeys = []string{"csv_path", "scout_id", "team_id", "gb_weight"} //nolint:gochecknoglobals // fixed list

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML or TOML by extension): path if non-empty, else PISTACHIO_CONFIG
//  3. env (prefix PISTACHIO_)
func Load(ctx context.Context, path string) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	// PISTACHIO_SCOUT_ID -> scout_id; underscores are kept to match the flat koanf tags.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	for _, key := range requiredKeys {
		if !k.Exists(key) {
			return nil, fmt.Errorf("%w: %w: %s", ErrInvalidConfig, ErrMissingSetting, key)
		}
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFile parses path by extension and lifts a [Settings] table to the top level.
func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return fmt.Errorf("%w: %w: %q", ErrLoadConfig, ErrFileFormat, path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
	}

	for _, table := range []string{settingsTable, strings.ToLower(settingsTable)} {
		if !k.Exists(table) {
			continue
		}
		if err := k.Merge(k.Cut(table)); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoadConfig, table, err)
		}
	}
	return nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CSVPath) == "" {
		return fmt.Errorf("%w: csv_path must not be empty", ErrInvalidConfig)
	}
	if c.ReportDir == "" {
		return fmt.Errorf("%w: report_dir must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
