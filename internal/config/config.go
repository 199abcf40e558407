// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/visicull/internal/engine/camera"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig    `yaml:"window"`
	Camera  camera.Settings `yaml:"camera"`
	Octree  OctreeConfig    `yaml:"octree"`
	Scene   SceneConfig     `yaml:"scene"`
	Logging LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// OctreeConfig holds the spatial partition settings.
type OctreeConfig struct {
	MinBoxSize float32    `yaml:"min_box_size"`
	RootMin    mgl32.Vec3 `yaml:"root_min"`
	RootMax    mgl32.Vec3 `yaml:"root_max"`
}

// Scene layouts.
const (
	LayoutScatter = "scatter" // Count random boxes
	LayoutGrid    = "grid"    // a MaxSize cube at every integer point, Count and Seed unused
)

// SceneConfig controls the generated test scene.
type SceneConfig struct {
	Layout  string  `yaml:"layout"`
	Count   int     `yaml:"count"`
	Seed    uint64  `yaml:"seed"`
	MinSize float32 `yaml:"min_size"` // smallest actor edge
	MaxSize float32 `yaml:"max_size"` // largest actor edge
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
	JSON       bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	cam := camera.DefaultSettings()
	cam.Aspect = 1280.0 / 720.0

	return &Config{
		Window: WindowConfig{
			Title:      "visicull",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: cam,
		Octree: OctreeConfig{
			MinBoxSize: 0.5,
			RootMin:    mgl32.Vec3{-20, -20, -20},
			RootMax:    mgl32.Vec3{20, 20, 20},
		},
		Scene: SceneConfig{
			Layout:  LayoutScatter,
			Count:   2000,
			Seed:    1,
			MinSize: 0.05,
			MaxSize: 0.6,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}
