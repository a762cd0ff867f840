package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds widgetctl defaults. Command-line flags override every field.
type Config struct {
	Indent      int    // spaces per nesting level on write
	LogLevel    string // zerolog level name; empty disables logging
	LogDir      string // write logs to dated files here instead of stderr
	Backup      bool   // copy a document to <path>.bak before replacing it
	Concurrency int    // documents processed in parallel by apply
}

const (
	DefaultPath        = "~/.config/widgetctl/config.toml"
	DefaultIndent      = 4
	DefaultConcurrency = 4

	maxIndent = 16
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{Indent: DefaultIndent, Concurrency: DefaultConcurrency}
}

// Load reads the config at path, or DefaultPath when path is empty. A missing
// file yields Default.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML settings over Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var raw struct {
		Indent      *int   `toml:"indent"`
		LogLevel    string `toml:"log_level"`
		LogDir      string `toml:"log_dir"`
		Backup      bool   `toml:"backup"`
		Concurrency *int   `toml:"concurrency"`
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.Indent != nil {
		if *raw.Indent < 1 || *raw.Indent > maxIndent {
			return Config{}, fmt.Errorf("parse config: indent must be between 1 and %d, got %d", maxIndent, *raw.Indent)
		}
		cfg.Indent = *raw.Indent
	}
	if raw.Concurrency != nil {
		if *raw.Concurrency < 1 {
			return Config{}, fmt.Errorf("parse config: concurrency must be positive, got %d", *raw.Concurrency)
		}
		cfg.Concurrency = *raw.Concurrency
	}
	cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	cfg.Backup = raw.Backup

	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		expanded, err := expandPath(dir)
		if err != nil {
			return Config{}, err
		}
		cfg.LogDir = expanded
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(DefaultPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
