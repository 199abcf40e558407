package geom

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned bounding box. Min must not exceed Max on any axis.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB creates a box from its min and max corners.
func NewAABB(min, max mgl32.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromCenter creates a box centered on center with the given full size per axis.
func NewAABBFromCenter(center, extent mgl32.Vec3) AABB {
	half := extent.Mul(0.5)
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extent returns the full size of the box along each axis.
func (b AABB) Extent() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Vertices returns the 8 corners, bottom face (min Y) first.
func (b AABB) Vertices() [8]mgl32.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]mgl32.Vec3{
		// Bottom face
		lo,
		{hi[0], lo[1], lo[2]},
		{lo[0], lo[1], hi[2]},
		{hi[0], lo[1], hi[2]},
		// Top face
		hi,
		{lo[0], hi[1], lo[2]},
		{lo[0], hi[1], hi[2]},
		{hi[0], hi[1], lo[2]},
	}
}

// Overlaps reports whether a and b share any point. Touching faces overlap.
func Overlaps(a, b AABB) bool {
	for i := 0; i < 3; i++ {
		if a.Max[i] < b.Min[i] || a.Min[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether b and other share any point.
func (b AABB) Overlaps(other AABB) bool {
	return Overlaps(b, other)
}

// Volume returns the product of the extents. Inverted boxes yield zero or negative values.
func (b AABB) Volume() float32 {
	e := b.Extent()
	return e[0] * e[1] * e[2]
}

// Contains reports whether point lies inside the box or on its boundary.
func (b AABB) Contains(point mgl32.Vec3) bool {
	return b.Min[0] <= point[0] && point[0] <= b.Max[0] &&
		b.Min[1] <= point[1] && point[1] <= b.Max[1] &&
		b.Min[2] <= point[2] && point[2] <= b.Max[2]
}

// Octants splits the box at its midpoint into 8 equal children.
// Order: min, +X, +Z, +X+Z, then the same four shifted up by half the height.
func (b AABB) Octants() [8]AABB {
	half := b.Extent().Mul(0.5)
	hx := mgl32.Vec3{half[0], 0, 0}
	hy := mgl32.Vec3{0, half[1], 0}
	hz := mgl32.Vec3{0, 0, half[2]}

	mins := [8]mgl32.Vec3{
		b.Min,
		b.Min.Add(hx),
		b.Min.Add(hz),
		b.Min.Add(hx).Add(hz),
		b.Min.Add(hy),
		b.Min.Add(hy).Add(hx),
		b.Min.Add(hy).Add(hz),
		b.Min.Add(hy).Add(hx).Add(hz),
	}

	var out [8]AABB
	for i, m := range mins {
		out[i] = AABB{Min: m, Max: m.Add(half)}
	}
	return out
}
