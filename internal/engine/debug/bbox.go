// Package debug builds line geometry for visualizing boxes, frustums and
// octree nodes, and captures screenshots.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/visicull/pkg/geom"
)

// Color is an RGB triple in [0, 1].
type Color [3]float32

// Colors used by the viewer overlays.
var (
	ColorVisible = Color{0.2, 0.9, 0.3}
	ColorCulled  = Color{0.45, 0.2, 0.2}
	ColorFrustum = Color{1.0, 0.85, 0.1}
	ColorNode    = Color{0.25, 0.45, 0.8}
	ColorGrid    = Color{0.5, 0.5, 0.5}
	ColorPicked  = Color{1.0, 1.0, 1.0}
)

// LineVertex is one endpoint of a line segment. The layout is six packed
// float32s: position then color.
type LineVertex struct {
	Pos   mgl32.Vec3
	Color Color
}

// BoxVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const BoxVertexCount = 24

// AppendBox appends the 12 edges of box to dst.
func AppendBox(dst []LineVertex, box geom.AABB, c Color) []LineVertex {
	minX, minY, minZ := box.Min.Elem()
	maxX, maxY, maxZ := box.Max.Elem()

	corners := [8]mgl32.Vec3{
		// Bottom face
		{minX, minY, minZ}, {maxX, minY, minZ}, {maxX, minY, maxZ}, {minX, minY, maxZ},
		// Top face
		{minX, maxY, minZ}, {maxX, maxY, minZ}, {maxX, maxY, maxZ}, {minX, maxY, maxZ},
	}
	return appendHexahedron(dst, corners, c)
}

// AppendFrustum appends the 12 edges of a frustum whose corners are ordered
// near face then far face, each counter-clockwise, as geom.ViewFrustum.Corners returns them.
func AppendFrustum(dst []LineVertex, corners [8]mgl32.Vec3, c Color) []LineVertex {
	return appendHexahedron(dst, corners, c)
}

// appendHexahedron draws two 4-cycles (0..3 and 4..7) and the edges joining them.
func appendHexahedron(dst []LineVertex, corners [8]mgl32.Vec3, c Color) []LineVertex {
	for i := range 4 {
		next := (i + 1) % 4
		dst = append(dst,
			LineVertex{corners[i], c}, LineVertex{corners[next], c},
			LineVertex{corners[i+4], c}, LineVertex{corners[next+4], c},
			LineVertex{corners[i], c}, LineVertex{corners[i+4], c},
		)
	}
	return dst
}

// PadBox grows box by padding on all sides.
func PadBox(box geom.AABB, padding float32) geom.AABB {
	pad := mgl32.Vec3{padding, padding, padding}
	return geom.NewAABB(box.Min.Sub(pad), box.Max.Add(pad))
}
