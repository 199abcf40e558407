// Package viewer implements the interactive culling viewer loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/visicull/internal/config"
	"github.com/Faultbox/visicull/internal/engine/camera"
	"github.com/Faultbox/visicull/internal/engine/debug"
	"github.com/Faultbox/visicull/internal/engine/input"
	"github.com/Faultbox/visicull/internal/engine/picking"
	"github.com/Faultbox/visicull/internal/engine/renderer"
	"github.com/Faultbox/visicull/internal/engine/window"
	"github.com/Faultbox/visicull/internal/logger"
	"github.com/Faultbox/visicull/internal/scene"
	"github.com/Faultbox/visicull/pkg/geom"
	"github.com/Faultbox/visicull/pkg/octree"
)

// Viewer owns the window, the camera and the culled scene.
type Viewer struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	shots    *debug.ScreenshotCapture

	camera *camera.Camera
	root   geom.AABB
	tree   *octree.Dynamic[*scene.Actor]
	seed   uint64

	state   State
	frozen  geom.ViewFrustum
	visible map[*scene.Actor]struct{}
	picked  *scene.Actor
	verts   []debug.LineVertex
}

// New creates the window and renderer and builds the initial scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		config:  cfg,
		log:     logger.Named("viewer"),
		camera:  camera.New(cfg.Camera),
		root:    cfg.RootBox(),
		tree:    octree.NewDynamic[*scene.Actor](cfg.Octree.MinBoxSize),
		seed:    cfg.Scene.Seed,
		visible: make(map[*scene.Actor]struct{}),
		shots:   debug.NewScreenshotCapture("screenshots", "cull"),
		state:   State{NodeDepth: NodesOff},
	}

	// Window first, it owns the OpenGL context
	var err error
	v.window, err = window.New(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.camera.SetAspectRatio(float32(width) / float32(height))

	v.input = input.New()

	// Data first, then structure: SetBounds assigns what SetData stored
	v.tree.SetData(scene.Generate(v.root, v.sceneConfig()))
	v.tree.SetBounds(v.root)

	stats := v.tree.Stats()
	v.log.Info("viewer initialized",
		zap.Int("actors", len(v.tree.Data())),
		zap.Int("nodes", stats.Nodes),
		zap.Int("leaves", stats.Leaves),
		zap.Int("depth", stats.Depth),
	)
	return v, nil
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				v.resize()
			case input.EventKeyDown:
				v.handleKey(event.Key)
			case input.EventMouseMove:
				w, h := v.window.GetSize()
				v.camera.UpdateMouse(input.PointerNDC(event.MouseX, event.MouseY, w, h))
			}
		}

		v.camera.UpdateKeyboard(dt, v.input.Keys())

		v.cull()
		v.render()

		// Capture after drawing, before the swap invalidates the back buffer
		if v.state.Screenshot {
			v.state.Screenshot = false
			v.screenshot()
		}

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.window.SetTitle(fmt.Sprintf("%s - %d fps - %d/%d visible",
				v.config.Window.Title, frameCount, len(v.visible), len(v.tree.Data())))
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("visible", len(v.visible)),
				zap.Duration("dt", time.Duration(dt*float32(time.Second))),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) sceneConfig() config.SceneConfig {
	sc := v.config.Scene
	sc.Seed = v.seed
	return sc
}

func (v *Viewer) resize() {
	w, h := v.window.DrawableSize()
	if w <= 0 || h <= 0 {
		return
	}
	v.renderer.Resize(w, h)
	v.camera.SetAspectRatio(float32(w) / float32(h))
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	action := actionFor(key)
	v.state.Apply(action)

	switch action {
	case ActionQuit:
		v.running = false
	case ActionToggleFirstPerson:
		v.camera.SetFirstPerson(!v.camera.FirstPerson())
		v.log.Info("first-person mode", zap.Bool("enabled", v.camera.FirstPerson()))
	case ActionToggleProjection:
		v.camera.SetPerspective(!v.camera.Perspective())
		v.log.Info("projection changed", zap.Bool("perspective", v.camera.Perspective()))
	case ActionFreeze:
		if v.state.Frozen {
			v.frozen = v.camera.ViewFrustum()
		}
		v.log.Info("culling frustum", zap.Bool("frozen", v.state.Frozen))
	case ActionLogPose:
		v.camera.LogPose(v.log)
	case ActionReseed:
		v.seed++
		start := time.Now()
		v.tree.SetData(scene.Generate(v.root, v.sceneConfig()))
		v.picked = nil
		v.log.Info("scene regenerated",
			zap.Uint64("seed", v.seed),
			zap.Int("actors", len(v.tree.Data())),
			zap.Duration("assign", time.Since(start)),
		)
	case ActionFullscreen:
		if err := v.window.ToggleFullscreen(); err != nil {
			v.log.Warn("fullscreen toggle failed", zap.Error(err))
		}
	case ActionInspect:
		v.inspect()
	case ActionSavePose:
		v.savePose()
	}
}

// savePose stores the current camera in the user config so the next start
// resumes from it.
func (v *Viewer) savePose() {
	v.config.Camera = v.camera.Settings()
	if err := v.config.Save(); err != nil {
		v.log.Error("saving camera pose failed", zap.Error(err))
		return
	}
	v.log.Info("camera pose saved", zap.String("dir", config.ConfigDir()))
}

// inspect picks the nearest visible actor under the pointer, falling back
// to the point on the scene floor.
func (v *Viewer) inspect() {
	mx, my := v.input.Mouse()
	w, h := v.window.GetSize()
	ndcX, ndcY := input.PointerNDC(mx, my, w, h)

	ray := picking.ScreenToRay(ndcX, ndcY, v.camera.ViewProjection().Inv())
	actor, dist, ok := picking.Nearest(ray, v.visible)
	if !ok {
		v.picked = nil
		if p, hit := picking.Ground(ray, v.root); hit {
			v.log.Info("ground under pointer", zap.Float32s("point", p[:]))
			return
		}
		v.log.Info("nothing under pointer")
		return
	}

	v.picked = actor
	v.log.Info("actor picked",
		zap.Int("id", actor.ID),
		zap.Float32("distance", dist),
		zap.Float32s("min", actor.Box.Min[:]),
		zap.Float32s("max", actor.Box.Max[:]),
	)
}

func (v *Viewer) frustum() geom.ViewFrustum {
	if v.state.Frozen {
		return v.frozen
	}
	return v.camera.ViewFrustum()
}

func (v *Viewer) cull() {
	frustum := v.frustum()
	clear(v.visible)
	v.tree.FrustumCull(v.visible, v.tree.Head(), &frustum)
}

func (v *Viewer) render() {
	v.renderer.Begin()

	verts := v.verts[:0]
	verts = debug.AppendGrid(verts, v.root, v.root.Min.Y(), 1, debug.ColorGrid)
	verts = debug.Overlay(verts, v.tree.Data(), v.visible, v.state.ShowCulled)

	if v.picked != nil {
		verts = debug.AppendBox(verts, debug.PadBox(v.picked.Box, 0.02), debug.ColorPicked)
	}

	if v.state.NodeDepth != NodesOff {
		verts = debug.AppendNodes(verts, &v.tree.Octree, v.state.NodeDepth, debug.ColorNode)
	}

	if v.state.Frozen {
		corners, err := v.frozen.Corners()
		if err == nil {
			verts = debug.AppendFrustum(verts, corners, debug.ColorFrustum)
		}
	}

	v.renderer.DrawLines(v.camera.ViewProjection(), verts)
	v.verts = verts
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}
