// Command cullbench builds a generated scene and measures frustum culling
// while sweeping the camera through a full turn. It needs no display.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/visicull/internal/config"
	"github.com/Faultbox/visicull/internal/engine/camera"
	"github.com/Faultbox/visicull/internal/logger"
	"github.com/Faultbox/visicull/internal/scene"
	"github.com/Faultbox/visicull/pkg/octree"
)

var (
	flagSteps  = flag.Int("steps", 36, "Number of camera headings in the sweep")
	flagRounds = flag.Int("rounds", 1, "Number of sweeps to average over")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LoggerOptions()); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.Named("bench")

	root := cfg.RootBox()
	actors := scene.Generate(root, cfg.Scene)

	start := time.Now()
	tree := octree.New[*scene.Actor](cfg.Octree.MinBoxSize)
	tree.Initialize(root, actors)
	stats := tree.Stats()

	log.Info("octree built",
		zap.String("layout", cfg.Scene.Layout),
		zap.Int("actors", len(actors)),
		zap.Float32("min_box_size", tree.MinBoxSize()),
		zap.Int("nodes", stats.Nodes),
		zap.Int("leaves", stats.Leaves),
		zap.Int("depth", stats.Depth),
		zap.Int("item_refs", stats.ItemRefs),
		zap.Duration("elapsed", time.Since(start)),
	)

	cam := camera.New(cfg.Camera)
	rounds := max(*flagRounds, 1)

	var total time.Duration
	var results []scene.SweepStep
	for range rounds {
		results = scene.Sweep(tree, cam, *flagSteps)
		for _, r := range results {
			total += r.Elapsed
		}
	}

	minVisible, maxVisible := len(actors), 0
	for _, r := range results {
		log.Debug("heading",
			zap.Float32("yaw", r.Yaw),
			zap.Int("visible", r.Visible),
			zap.Duration("elapsed", r.Elapsed),
		)
		minVisible = min(minVisible, r.Visible)
		maxVisible = max(maxVisible, r.Visible)
	}

	cullCount := len(results) * rounds
	if cullCount == 0 {
		log.Warn("no headings to sweep", zap.Int("steps", *flagSteps))
		return
	}

	log.Info("sweep finished",
		zap.Int("headings", len(results)),
		zap.Int("rounds", rounds),
		zap.Int("min_visible", minVisible),
		zap.Int("max_visible", maxVisible),
		zap.Duration("mean_cull", total/time.Duration(cullCount)),
	)
	cam.LogPose(log)
}
