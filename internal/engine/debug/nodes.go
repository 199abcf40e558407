package debug

import (
	"github.com/Faultbox/visicull/pkg/geom"
	"github.com/Faultbox/visicull/pkg/octree"
)

// AppendNodes appends the boxes of every octree node down to maxDepth.
// A negative maxDepth draws only the leaves.
func AppendNodes[T octree.Item](dst []LineVertex, tree *octree.Octree[T], maxDepth int, c Color) []LineVertex {
	tree.Walk(func(n *octree.Node[T], depth int) bool {
		switch {
		case maxDepth < 0:
			if n.Leaf {
				dst = AppendBox(dst, n.Box, c)
			}
			return true
		case depth > maxDepth:
			return false
		}
		dst = AppendBox(dst, n.Box, c)
		return true
	})
	return dst
}

// AppendGrid appends a ground grid across the XZ extent of area at height y,
// with a line every step units. A non-positive step draws nothing.
func AppendGrid(dst []LineVertex, area geom.AABB, y, step float32, c Color) []LineVertex {
	if step <= 0 {
		return dst
	}

	minX, maxX := area.Min.X(), area.Max.X()
	minZ, maxZ := area.Min.Z(), area.Max.Z()

	// Lines along Z
	for x := minX; x <= maxX+step*1e-3; x += step {
		dst = append(dst,
			LineVertex{Pos: [3]float32{x, y, minZ}, Color: c},
			LineVertex{Pos: [3]float32{x, y, maxZ}, Color: c},
		)
	}
	// Lines along X
	for z := minZ; z <= maxZ+step*1e-3; z += step {
		dst = append(dst,
			LineVertex{Pos: [3]float32{minX, y, z}, Color: c},
			LineVertex{Pos: [3]float32{maxX, y, z}, Color: c},
		)
	}
	return dst
}

// Overlay splits actor boxes by visibility into one vertex batch.
func Overlay[T octree.Item](dst []LineVertex, items []T, visible map[T]struct{}, showCulled bool) []LineVertex {
	for _, item := range items {
		if _, ok := visible[item]; ok {
			dst = AppendBox(dst, item.Bounds(), ColorVisible)
		} else if showCulled {
			dst = AppendBox(dst, item.Bounds(), ColorCulled)
		}
	}
	return dst
}

