// Package config reads the optional scenectl.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up by LoadOptional.
const FileName = "scenectl.yaml"

// Config represents the optional scenectl.yaml configuration.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Output   OutputConfig   `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
}

// ViewportConfig overrides the viewport declared by scene documents.
type ViewportConfig struct {
	Width  float32 `yaml:"width,omitempty"`
	Height float32 `yaml:"height,omitempty"`
}

// OutputConfig controls how commands print results.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
}

// LogConfig sets the default log level.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root     string
	Width    float32
	Height   float32
	Format   string
	LogLevel log.Level
}

// LoadOptional reads scenectl.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads scenectl.yaml (if present) and resolves defaults. A zero
// viewport side means the document's own viewport is used.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	if cfg.Viewport.Width < 0 || cfg.Viewport.Height < 0 {
		return nil, fmt.Errorf("viewport overrides must not be negative")
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	switch format {
	case "":
		format = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid output format %q (want text or json)", cfg.Output.Format)
	}

	level := log.InfoLevel
	if s := strings.TrimSpace(cfg.Log.Level); s != "" {
		if level, err = log.ParseLevel(s); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", s, err)
		}
	}

	return &Resolved{
		Root:     dir,
		Width:    cfg.Viewport.Width,
		Height:   cfg.Viewport.Height,
		Format:   format,
		LogLevel: level,
	}, nil
}

// FindRoot walks up from dir to the nearest directory holding scenectl.yaml.
// It returns dir itself when none is found.
func FindRoot(dir string) string {
	for cur := dir; ; {
		if _, err := os.Stat(filepath.Join(cur, FileName)); err == nil {
			return cur
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir
		}
		cur = parent
	}
}
