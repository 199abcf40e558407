package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Window defaults
	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Camera defaults
	if !cfg.Camera.Perspective {
		t.Error("expected perspective projection by default")
	}
	if cfg.Camera.FirstPerson {
		t.Error("expected first-person mode to be off by default")
	}
	assert.InDelta(t, 1280.0/720.0, cfg.Camera.Aspect, 1e-6)
	assert.Equal(t, float32(45), cfg.Camera.FovYDegrees)

	// Octree defaults
	if cfg.Octree.MinBoxSize != 0.5 {
		t.Errorf("expected min box size 0.5, got %f", cfg.Octree.MinBoxSize)
	}

	// Scene defaults
	if cfg.Scene.Count != 2000 {
		t.Errorf("expected 2000 actors, got %d", cfg.Scene.Count)
	}
	assert.Equal(t, LayoutScatter, cfg.Scene.Layout)

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  position: [0, 0, -50]
  yaw: 0
  pitch: 0
  fov_y_degrees: 90
  perspective: false
  first_person: true

octree:
  min_box_size: 1
  root_min: [-5, -5, -5]
  root_max: [5, 5, 5]

scene:
  layout: grid
  count: 64
  seed: 42

logging:
  level: "debug"
  log_file: "cull.log"
  json: true
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	assert.Equal(t, mgl32.Vec3{0, 0, -50}, cfg.Camera.Position)
	assert.Equal(t, float32(90), cfg.Camera.FovYDegrees)
	assert.False(t, cfg.Camera.Perspective)
	assert.True(t, cfg.Camera.FirstPerson)
	// Unset keys keep their defaults
	assert.Equal(t, float32(100), cfg.Camera.FarZ)

	assert.Equal(t, float32(1), cfg.Octree.MinBoxSize)
	assert.Equal(t, mgl32.Vec3{-5, -5, -5}, cfg.Octree.RootMin)
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, cfg.Octree.RootMax)

	assert.Equal(t, 64, cfg.Scene.Count)
	assert.Equal(t, uint64(42), cfg.Scene.Seed)
	assert.Equal(t, LayoutGrid, cfg.Scene.Layout)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "cull.log" {
		t.Errorf("expected log file 'cull.log', got %s", cfg.Logging.LogFile)
	}
	if !cfg.Logging.JSON {
		t.Error("expected json logging")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Keep the user's own config out of the search
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	if err := os.WriteFile("config.yaml", []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "ortho flag",
			setup: func() { *flagOrtho = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Camera.Perspective {
					t.Error("expected orthographic projection with ortho flag")
				}
			},
			teardown: func() { *flagOrtho = false },
		},
		{
			name: "octree and scene flags",
			setup: func() {
				*flagMinBox = 2
				*flagSeed = 7
				*flagCount = 10
				*flagLayout = LayoutGrid
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, float32(2), cfg.Octree.MinBoxSize)
				assert.Equal(t, uint64(7), cfg.Scene.Seed)
				assert.Equal(t, 10, cfg.Scene.Count)
				assert.Equal(t, LayoutGrid, cfg.Scene.Layout)
			},
			teardown: func() {
				*flagMinBox = 0
				*flagSeed = 0
				*flagCount = 0
				*flagLayout = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1800
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1800), not file (1600)
	if cfg.Window.Width != 1800 {
		t.Errorf("expected width 1800 from flag, got %d", cfg.Window.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}

	// Aspect follows the final window size
	assert.InDelta(t, 2.0, cfg.Camera.Aspect, 1e-6)
}

func TestRootBoxOrdersCorners(t *testing.T) {
	cfg := Default()
	cfg.Octree.RootMin = mgl32.Vec3{4, -1, 3}
	cfg.Octree.RootMax = mgl32.Vec3{-4, 1, -3}

	box := cfg.RootBox()
	assert.Equal(t, mgl32.Vec3{-4, -1, -3}, box.Min)
	assert.Equal(t, mgl32.Vec3{4, 1, 3}, box.Max)
}

func TestLoggerOptions(t *testing.T) {
	cfg := Default()

	opts := cfg.LoggerOptions()
	assert.True(t, opts.Console)
	assert.Empty(t, opts.File.Path, "no file output without log_file")

	cfg.Logging.LogFile = "cull.log"
	cfg.Logging.JSON = true
	opts = cfg.LoggerOptions()
	assert.Equal(t, "cull.log", opts.File.Path)
	assert.Equal(t, 50, opts.File.MaxSizeMB)
	assert.True(t, opts.File.JSON)

	// Zero limits fall back to the logger defaults
	cfg.Logging.MaxSizeMB = 0
	cfg.Logging.MaxBackups = 0
	cfg.Logging.MaxAgeDays = 5
	opts = cfg.LoggerOptions()
	assert.Equal(t, 50, opts.File.MaxSizeMB)
	assert.Equal(t, 3, opts.File.MaxBackups)
	assert.Equal(t, 5, opts.File.MaxAgeDays)
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Seed = 99
	cfg.Camera.Position = mgl32.Vec3{1, 2, 3}
	require.NoError(t, cfg.SaveTo(path))

	loaded := Default()
	require.NoError(t, loadFromFile(loaded, path))
	assert.Equal(t, uint64(99), loaded.Scene.Seed)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, loaded.Camera.Position)
}

func TestSaveWritesUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("HOME", home)
	t.Setenv("APPDATA", home)

	cfg := Default()
	cfg.Camera.Position = mgl32.Vec3{7, 8, 9}
	cfg.Camera.Yaw = 1.25
	require.NoError(t, cfg.Save())

	path := filepath.Join(ConfigDir(), "config.yaml")
	require.FileExists(t, path)

	loaded := Default()
	require.NoError(t, loadFromFile(loaded, path))
	assert.Equal(t, mgl32.Vec3{7, 8, 9}, loaded.Camera.Position)
	assert.Equal(t, float32(1.25), loaded.Camera.Yaw)
}
