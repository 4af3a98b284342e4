// Package config provides configuration loading for cordex.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Config holds all explorer settings.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	UI        UIConfig        `koanf:"ui"`
	Aggregate AggregateConfig `koanf:"aggregate"`
	Log       LogConfig       `koanf:"log"`
}

// DataConfig locates the input file.
type DataConfig struct {
	Path string `koanf:"path"`
}

// UIConfig seeds the interactive state. The year defaults are clamped
// to the loaded table's actual span at startup.
type UIConfig struct {
	YearLo int `koanf:"year_lo"`
	YearHi int `koanf:"year_hi"`
}

// AggregateConfig sizes the top-N rankings and the sample table.
type AggregateConfig struct {
	TopJournals int `koanf:"top_journals"`
	TopWords    int `koanf:"top_words"`
	SampleRows  int `koanf:"sample_rows"`
}

// LogConfig controls the file logger. The TUI owns stdout, so logging
// is off unless a file is configured.
type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"`
}

// defaultYAML carries the hardcoded defaults as the lowest-precedence
// koanf layer.
var defaultYAML = []byte(`
data:
  path: metadata.csv
ui:
  year_lo: 2020
  year_hi: 2021
aggregate:
  top_journals: 10
  top_words: 20
  sample_rows: 10
log:
  file: ""
  level: info
`)

// Load builds the configuration from three layers, lowest precedence
// first: hardcoded defaults, the YAML file at configPath (skipped when
// empty or absent), then CORDEX_-prefixed environment variables
// (CORDEX_DATA_PATH -> data.path).
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file %s: %w", configPath, err)
			}
			// Absent file: defaults plus environment is fine.
		} else if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	// CORDEX_DATA_PATH -> data.path, CORDEX_UI_YEAR_LO -> ui.year_lo.
	// Split on the first underscore after the prefix: section, then field.
	if err := k.Load(env.Provider("CORDEX_", ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, "CORDEX_"))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the explorer cannot run with.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return fmt.Errorf("data.path must not be empty")
	}
	if c.UI.YearLo > c.UI.YearHi {
		return fmt.Errorf("ui.year_lo (%d) must not exceed ui.year_hi (%d)", c.UI.YearLo, c.UI.YearHi)
	}
	if c.Aggregate.TopJournals <= 0 || c.Aggregate.TopWords <= 0 || c.Aggregate.SampleRows <= 0 {
		return fmt.Errorf("aggregate sizes must be positive")
	}
	return nil
}
