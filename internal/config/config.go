// Package config provides configuration for the docsmith binary.
// Loads from: CLI flags > env vars > docsmith.toml > built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// RootOverride is set by the global --root flag and takes precedence over
// every other content-root source.
var RootOverride string

// ConfigOverride is set by the global --config flag.
var ConfigOverride string

// DefaultCategory is assigned to documents whose slug has no path separator.
const DefaultCategory = "general"

// Config holds all docsmith configuration, loaded from TOML + env + flags.
type Config struct {
	Content    ContentConfig    `toml:"content"`
	Server     ServerConfig     `toml:"server"`
	Navigation NavigationConfig `toml:"navigation"`
}

// ContentConfig holds corpus-related settings.
type ContentConfig struct {
	Root            string   `toml:"root"`
	DefaultCategory string   `toml:"default_category"`
	ExcludeFiles    []string `toml:"exclude_files"`
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// NavigationConfig points at an optional curated navigation file. When empty,
// the navigation tree bundled into the binary is used.
type NavigationConfig struct {
	File string `toml:"file"`
}

// DefaultConfig returns a Config with all built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{
			Root:            "content",
			DefaultCategory: DefaultCategory,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8455",
		},
	}
}

// Load merges all configuration sources: defaults < TOML file < env vars < flags.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath := findConfigFile()
	if configPath != "" {
		meta, err := toml.DecodeFile(configPath, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", configPath, err)
		}
		warnUnknownKeys(meta, configPath)
	}

	if v := os.Getenv("DOCSMITH_ROOT"); v != "" {
		cfg.Content.Root = v
	}
	if v := os.Getenv("DOCSMITH_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DOCSMITH_NAV_FILE"); v != "" {
		cfg.Navigation.File = v
	}
	if v := os.Getenv("DOCSMITH_EXCLUDE_FILES"); v != "" {
		for _, f := range strings.Split(v, ",") {
			f = strings.TrimSpace(f)
			if f != "" {
				cfg.Content.ExcludeFiles = append(cfg.Content.ExcludeFiles, f)
			}
		}
	}

	if RootOverride != "" {
		cfg.Content.Root = RootOverride
	}
	if cfg.Content.DefaultCategory == "" {
		cfg.Content.DefaultCategory = DefaultCategory
	}

	return cfg, nil
}

// findConfigFile checks the --config flag, DOCSMITH_CONFIG, then docsmith.toml
// in the working directory. Returns "" if none exists.
func findConfigFile() string {
	if ConfigOverride != "" {
		return ConfigOverride
	}
	if v := os.Getenv("DOCSMITH_CONFIG"); v != "" {
		return v
	}
	if wd, err := os.Getwd(); err == nil {
		p := filepath.Join(wd, "docsmith.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// warnUnknownKeys prints a warning for TOML keys that didn't map to any field,
// which usually means a typo in the config file.
func warnUnknownKeys(meta toml.MetaData, path string) {
	for _, key := range meta.Undecoded() {
		fmt.Fprintf(os.Stderr, "docsmith: warning: unknown config key %q in %s\n", key, path)
	}
}
