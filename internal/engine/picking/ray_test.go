package picking

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/visicull/internal/engine/camera"
	"github.com/Faultbox/visicull/pkg/geom"
)

func vecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-4), "want %v, got %v", want, got)
}

func testCamera() *camera.Camera {
	return camera.New(camera.Settings{
		NearZ:       1,
		FarZ:        10,
		Aspect:      1,
		FovYDegrees: 90,
		Perspective: true,
	})
}

func TestScreenToRay(t *testing.T) {
	inv := testCamera().ViewProjection().Inv()

	center := ScreenToRay(0, 0, inv)
	vecNear(t, mgl32.Vec3{0, 0, 1}, center.Origin)
	vecNear(t, mgl32.Vec3{0, 0, 1}, center.Direction)

	// fov 90 at near 1: the right edge of the near plane is at x = 1
	right := ScreenToRay(1, 0, inv)
	vecNear(t, mgl32.Vec3{1, 0, 1}, right.Origin)
	s := float32(1 / gomath.Sqrt2)
	vecNear(t, mgl32.Vec3{s, 0, s}, right.Direction)

	top := ScreenToRay(0, 1, inv)
	vecNear(t, mgl32.Vec3{0, 1, 1}, top.Origin)
}

func TestIntersectAABB(t *testing.T) {
	box := geom.NewAABB(mgl32.Vec3{-1, -1, 2}, mgl32.Vec3{1, 1, 3})

	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float32
	}{
		{"straight ahead", Ray{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}}, true, 2},
		{"from inside", Ray{mgl32.Vec3{0, 0, 2.5}, mgl32.Vec3{0, 0, 1}}, true, 0.5},
		{"behind", Ray{mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 1}}, false, 0},
		{"parallel outside", Ray{mgl32.Vec3{2, 0, 0}, mgl32.Vec3{0, 0, 1}}, false, 0},
		{"diagonal miss", Ray{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectAABB(box)
			assert.Equal(t, tt.hit, hit)
			if tt.hit {
				assert.InDelta(t, tt.wantT, got, 1e-6)
			}
		})
	}
}

func TestIntersectPlaneY(t *testing.T) {
	down := Ray{mgl32.Vec3{1, 4, 2}, mgl32.Vec3{0, -1, 0}}
	x, z, ok := down.IntersectPlaneY(0)
	require.True(t, ok)
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(2), z)

	_, _, ok = down.IntersectPlaneY(10)
	assert.False(t, ok, "plane behind the ray")

	flat := Ray{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}}
	_, _, ok = flat.IntersectPlaneY(0)
	assert.False(t, ok, "parallel ray")
}

func TestGround(t *testing.T) {
	area := geom.NewAABB(mgl32.Vec3{-5, -1, -5}, mgl32.Vec3{5, 3, 5})

	tests := []struct {
		name string
		ray  Ray
		want mgl32.Vec3
		ok   bool
	}{
		{"straight down", Ray{mgl32.Vec3{1, 10, 2}, mgl32.Vec3{0, -1, 0}}, mgl32.Vec3{1, -1, 2}, true},
		{"slanted", Ray{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, -1, 0}.Normalize()}, mgl32.Vec3{2, -1, 0}, true},
		{"outside the floor", Ray{mgl32.Vec3{8, 10, 0}, mgl32.Vec3{0, -1, 0}}, mgl32.Vec3{}, false},
		{"looking up", Ray{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}}, mgl32.Vec3{}, false},
		{"parallel", Ray{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}}, mgl32.Vec3{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Ground(tt.ray, area)
			require.Equal(t, tt.ok, ok)
			vecNear(t, tt.want, got)
		})
	}
}

type box struct{ b geom.AABB }

func (b *box) Bounds() geom.AABB { return b.b }

func TestNearest(t *testing.T) {
	near := &box{geom.NewAABB(mgl32.Vec3{-1, -1, 2}, mgl32.Vec3{1, 1, 3})}
	far := &box{geom.NewAABB(mgl32.Vec3{-1, -1, 5}, mgl32.Vec3{1, 1, 6})}
	aside := &box{geom.NewAABB(mgl32.Vec3{4, 4, 0}, mgl32.Vec3{5, 5, 1})}

	ray := Ray{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}}
	candidates := map[*box]struct{}{near: {}, far: {}, aside: {}}

	got, dist, ok := Nearest(ray, candidates)
	require.True(t, ok)
	assert.Same(t, near, got)
	assert.InDelta(t, 2.0, dist, 1e-6)

	_, _, ok = Nearest(ray, map[*box]struct{}{aside: {}})
	assert.False(t, ok)
}
