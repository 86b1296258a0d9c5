// Package config loads validate-docs configuration from global, local,
// and environment sources with koanf.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ariel-frischer/validate-docs/internal/document"
)

// Configuration represents the validate-docs CLI tool configuration.
type Configuration struct {
	Strict       bool              `koanf:"strict"`
	Format       string            `koanf:"format" validate:"required,oneof=text json"`
	Include      []string          `koanf:"include" validate:"required,min=1"`
	Overrides    map[string]string `koanf:"overrides"`
	ShowProgress bool              `koanf:"show_progress"`
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	defaults := GetDefaults()
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".validate-docs", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("VALIDATEDOCS_", ".", envTransform), nil)

	// Unmarshal into struct
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Category overrides must name known categories and valid patterns
	for pattern, cat := range cfg.Overrides {
		if _, err := document.ParseCategory(cat); err != nil {
			return nil, fmt.Errorf("config override for %q: %w", pattern, err)
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("config override pattern %q is not a valid glob", pattern)
		}
	}

	return &cfg, nil
}

// CategoryFor returns the configured category override for a path, if
// any pattern matches. Patterns match against the slash form of the
// path and against its base name, so both "docs/**/*.md" and
// "SKILL.md" style overrides work. Patterns are tried in sorted order
// so overlapping overrides resolve the same way on every run.
func (c *Configuration) CategoryFor(path string) (document.Category, bool) {
	slashed := filepath.ToSlash(path)
	patterns := make([]string, 0, len(c.Overrides))
	for pattern := range c.Overrides {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)
	for _, pattern := range patterns {
		cat := c.Overrides[pattern]
		matched, _ := doublestar.Match(pattern, slashed)
		if !matched {
			matched, _ = doublestar.Match(pattern, filepath.Base(slashed))
		}
		if !matched {
			continue
		}
		parsed, err := document.ParseCategory(cat)
		if err != nil {
			continue
		}
		return parsed, true
	}
	return "", false
}

// envTransform converts environment variable names to config keys
// Example: VALIDATEDOCS_SHOW_PROGRESS -> show_progress
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "VALIDATEDOCS_"))
}
