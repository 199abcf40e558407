package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagOrtho      = flag.Bool("ortho", false, "Start with an orthographic projection")
	flagMinBox     = flag.Float64("min-box", 0, "Smallest octree node edge")
	flagSeed       = flag.Uint64("seed", 0, "Scene generator seed")
	flagCount      = flag.Int("count", 0, "Number of generated actors")
	flagLayout     = flag.String("layout", "", "Scene layout: scatter or grid")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagOrtho {
		cfg.Camera.Perspective = false
	}
	if *flagMinBox > 0 {
		cfg.Octree.MinBoxSize = float32(*flagMinBox)
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	if *flagCount > 0 {
		cfg.Scene.Count = *flagCount
	}
	if *flagLayout != "" {
		cfg.Scene.Layout = *flagLayout
	}
}
