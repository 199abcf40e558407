package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/visicull/internal/logger"
	"github.com/Faultbox/visicull/pkg/geom"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)
	cfg.normalize()

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "visicull")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "visicull")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "visicull")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "visicull")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// normalize keeps derived values consistent after all sources are merged.
func (c *Config) normalize() {
	if c.Window.Width > 0 && c.Window.Height > 0 {
		c.Camera.Aspect = float32(c.Window.Width) / float32(c.Window.Height)
	}
	if c.Scene.MinSize > c.Scene.MaxSize {
		c.Scene.MinSize, c.Scene.MaxSize = c.Scene.MaxSize, c.Scene.MinSize
	}
}

// RootBox returns the configured octree root box with its corners ordered.
func (c *Config) RootBox() geom.AABB {
	lo, hi := c.Octree.RootMin, c.Octree.RootMax
	for i := range 3 {
		if lo[i] > hi[i] {
			lo[i], hi[i] = hi[i], lo[i]
		}
	}
	return geom.NewAABB(lo, hi)
}

// LoggerOptions maps the logging section onto logger options.
// Rotation limits left at zero fall back to the logger's file defaults.
func (c *Config) LoggerOptions() logger.Options {
	opts := logger.Options{Level: c.Logging.Level, Console: true}
	if c.Logging.LogFile == "" {
		return opts
	}

	file := logger.DefaultFileConfig(c.Logging.LogFile)
	if c.Logging.MaxSizeMB > 0 {
		file.MaxSizeMB = c.Logging.MaxSizeMB
	}
	if c.Logging.MaxBackups > 0 {
		file.MaxBackups = c.Logging.MaxBackups
	}
	if c.Logging.MaxAgeDays > 0 {
		file.MaxAgeDays = c.Logging.MaxAgeDays
	}
	file.Compress = c.Logging.Compress
	file.JSON = c.Logging.JSON
	opts.File = file
	return opts
}
