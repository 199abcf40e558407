// Package scene generates the actors the viewer and benchmark cull.
package scene

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/visicull/internal/config"
	"github.com/Faultbox/visicull/pkg/geom"
)

// Actor is a scene object with a fixed world-space box.
type Actor struct {
	ID  int
	Box geom.AABB
}

// Bounds implements octree.Item.
func (a *Actor) Bounds() geom.AABB {
	return a.Box
}

func (a *Actor) String() string {
	return fmt.Sprintf("actor#%d", a.ID)
}

// Generate builds the scene for cfg.Layout. The scatter layout places
// cfg.Count actors with centers inside bounds, and the same seed always
// yields the same scene.
func Generate(bounds geom.AABB, cfg config.SceneConfig) []*Actor {
	if cfg.Layout == config.LayoutGrid {
		return Grid(bounds, cfg.MaxSize)
	}
	if cfg.Count <= 0 {
		return nil
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	minSize, maxSize := cfg.MinSize, cfg.MaxSize
	if minSize > maxSize {
		minSize, maxSize = maxSize, minSize
	}

	actors := make([]*Actor, cfg.Count)
	for i := range actors {
		var center, extent mgl32.Vec3
		for axis := range 3 {
			center[axis] = lerp(bounds.Min[axis], bounds.Max[axis], rng.Float32())
			extent[axis] = lerp(minSize, maxSize, rng.Float32())
		}
		actors[i] = &Actor{ID: i, Box: geom.NewAABBFromCenter(center, extent)}
	}
	return actors
}

// maxGridActors bounds the grid layout so a huge box cannot exhaust memory.
const maxGridActors = 1 << 22

// Grid places a cube of edge size at every integer point inside bounds.
// It returns nil when bounds hold no integer point or more than maxGridActors.
func Grid(bounds geom.AABB, size float32) []*Actor {
	var first, n [3]float64
	total := 1.0
	for axis := range 3 {
		first[axis] = math.Ceil(float64(bounds.Min[axis]))
		last := math.Floor(float64(bounds.Max[axis]))
		if !(last >= first[axis]) {
			return nil
		}
		n[axis] = last - first[axis] + 1
		total *= n[axis]
	}
	if total > maxGridActors {
		return nil
	}

	actors := make([]*Actor, 0, int(total))
	for x := range int(n[0]) {
		for y := range int(n[1]) {
			for z := range int(n[2]) {
				center := mgl32.Vec3{
					float32(first[0] + float64(x)),
					float32(first[1] + float64(y)),
					float32(first[2] + float64(z)),
				}
				actors = append(actors, &Actor{
					ID:  len(actors),
					Box: geom.NewAABBFromCenter(center, mgl32.Vec3{size, size, size}),
				})
			}
		}
	}
	return actors
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
