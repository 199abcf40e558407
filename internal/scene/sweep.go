package scene

import (
	gomath "math"
	"time"

	"github.com/Faultbox/visicull/internal/engine/camera"
	"github.com/Faultbox/visicull/pkg/octree"
)

// SweepStep is the culling result for one camera heading.
type SweepStep struct {
	Yaw     float32
	Visible int
	Elapsed time.Duration
}

// Sweep turns cam through a full revolution in steps headings and culls
// tree at each one. The camera's yaw is restored afterwards.
func Sweep(tree *octree.Octree[*Actor], cam *camera.Camera, steps int) []SweepStep {
	if steps <= 0 {
		return nil
	}

	pos, yaw, pitch := cam.EyePosition(), cam.Yaw(), cam.Pitch()
	defer cam.Reset(pos, yaw, pitch)

	out := make(map[*Actor]struct{})
	results := make([]SweepStep, 0, steps)
	for i := range steps {
		heading := float32(i) * 2 * gomath.Pi / float32(steps)
		cam.Reset(pos, heading, pitch)

		start := time.Now()
		frustum := cam.ViewFrustum()
		clear(out)
		tree.FrustumCull(out, tree.Head(), &frustum)

		results = append(results, SweepStep{
			Yaw:     heading,
			Visible: len(out),
			Elapsed: time.Since(start),
		})
	}
	return results
}
