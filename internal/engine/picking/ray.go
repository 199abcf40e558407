// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/visicull/pkg/geom"
	"github.com/Faultbox/visicull/pkg/octree"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// ScreenToRay converts a pointer position in normalized device coordinates to
// a world-space ray. invViewProj is the inverse of a view-projection matrix
// whose clip depth runs from 0 at the near plane to 1 at the far plane.
func ScreenToRay(ndcX, ndcY float32, invViewProj mgl32.Mat4) Ray {
	nearWorld := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, 0, 1})
	farWorld := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, 1, 1})

	dir := farWorld.Sub(nearWorld)
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	return Ray{Origin: nearWorld, Direction: dir}
}

func unproject(inv mgl32.Mat4, clip mgl32.Vec4) mgl32.Vec3 {
	p := inv.Mul4x1(clip)
	if p[3] != 0 {
		return p.Vec3().Mul(1 / p[3]) // Perspective divide
	}
	return p.Vec3()
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if gomath.Abs(float64(r.Direction.Y())) < 0.001 {
		return 0, 0, false // Ray parallel to plane
	}

	t := (planeY - r.Origin.Y()) / r.Direction.Y()
	if t < 0 {
		return 0, 0, false // Intersection behind ray origin
	}

	p := r.At(t)
	return p.X(), p.Z(), true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box geom.AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := range 3 {
		origin, dir := r.Origin[axis], r.Direction[axis]
		if dir == 0 {
			if origin < box.Min[axis] || origin > box.Max[axis] {
				return 0, false
			}
			continue
		}

		t1 := (box.Min[axis] - origin) / dir
		t2 := (box.Max[axis] - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Nearest returns the candidate whose box the ray enters first.
func Nearest[T octree.Item](r Ray, candidates map[T]struct{}) (best T, dist float32, ok bool) {
	for c := range candidates {
		t, hit := r.IntersectAABB(c.Bounds())
		if !hit {
			continue
		}
		if !ok || t < dist {
			best, dist, ok = c, t, true
		}
	}
	return best, dist, ok
}

// Ground returns where the ray meets the floor of area, the plane at
// area.Min.Y, when that point lies within the area's X and Z range.
func Ground(r Ray, area geom.AABB) (mgl32.Vec3, bool) {
	x, z, ok := r.IntersectPlaneY(area.Min.Y())
	if !ok {
		return mgl32.Vec3{}, false
	}
	if x < area.Min.X() || x > area.Max.X() || z < area.Min.Z() || z > area.Max.Z() {
		return mgl32.Vec3{}, false
	}
	return mgl32.Vec3{x, area.Min.Y(), z}, true
}
