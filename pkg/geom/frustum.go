package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ViewFrustum is the region bounded by six inward-facing planes.
type ViewFrustum struct {
	Left   Plane
	Right  Plane
	Bottom Plane
	Top    Plane
	Near   Plane
	Far    Plane
}

// FrustumFromMatrix extracts the frustum planes from a combined
// projection*view matrix (Gribb/Hartmann).
func FrustumFromMatrix(m mgl32.Mat4) ViewFrustum {
	r1, r2, r3, r4 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)

	var f ViewFrustum
	f.Left.SetConstants(r4.Add(r1))
	f.Right.SetConstants(r4.Sub(r1))
	f.Bottom.SetConstants(r4.Add(r2))
	f.Top.SetConstants(r4.Sub(r2))
	f.Near.SetConstants(r4.Add(r3))
	f.Far.SetConstants(r4.Sub(r3))
	return f
}

// Planes returns the planes as left, right, bottom, top, near, far.
func (f *ViewFrustum) Planes() [6]Plane {
	return [6]Plane{f.Left, f.Right, f.Bottom, f.Top, f.Near, f.Far}
}

// IsOutside reports whether point lies on or behind any plane.
func (f *ViewFrustum) IsOutside(point mgl32.Vec3) bool {
	v := point.Vec4(1)
	return f.Left.constants.Dot(v) <= 0 ||
		f.Right.constants.Dot(v) <= 0 ||
		f.Bottom.constants.Dot(v) <= 0 ||
		f.Top.constants.Dot(v) <= 0 ||
		f.Near.constants.Dot(v) <= 0 ||
		f.Far.constants.Dot(v) <= 0
}

// Corners returns the frustum's 8 corners: the near face counter-clockwise
// from left-bottom, then the far face in the same order.
func (f *ViewFrustum) Corners() ([8]mgl32.Vec3, error) {
	var out [8]mgl32.Vec3
	caps := [2]Plane{f.Near, f.Far}
	sides := [4][2]Plane{
		{f.Left, f.Bottom},
		{f.Right, f.Bottom},
		{f.Right, f.Top},
		{f.Left, f.Top},
	}

	for c, cp := range caps {
		for s, side := range sides {
			p, err := Intersection(side[0], side[1], cp)
			if err != nil {
				return out, fmt.Errorf("corner %d: %w", c*4+s, err)
			}
			out[c*4+s] = p
		}
	}
	return out, nil
}
