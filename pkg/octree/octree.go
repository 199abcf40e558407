// Package octree provides a generic spatial index that prunes items
// against a view frustum.
package octree

import (
	"math"
	"slices"

	"github.com/Faultbox/visicull/pkg/geom"
)

// DefaultMinBoxSize is the node volume at or below which a node becomes a leaf.
const DefaultMinBoxSize float32 = 0.5

// Item is anything the octree can index. Items are used as set keys.
type Item interface {
	comparable
	Bounds() geom.AABB
}

// Node is a region of space and the items overlapping it.
// Children are either all nil (leaf or never built) or all set.
type Node[T Item] struct {
	Box      geom.AABB
	Leaf     bool
	Children [8]*Node[T]
	Items    []T
}

// Octree owns a tree of nodes built over a root box.
// The zero value is an empty tree using DefaultMinBoxSize.
type Octree[T Item] struct {
	head       *Node[T]
	minBoxSize float32
}

// New creates an empty octree. A non-positive minBoxSize selects DefaultMinBoxSize.
func New[T Item](minBoxSize float32) *Octree[T] {
	return &Octree[T]{minBoxSize: minBoxSize}
}

// MinBoxSize returns the leaf volume threshold.
func (o *Octree[T]) MinBoxSize() float32 {
	if o.minBoxSize <= 0 {
		return DefaultMinBoxSize
	}
	return o.minBoxSize
}

// Head returns the root node, or nil if the tree is empty.
func (o *Octree[T]) Head() *Node[T] {
	return o.head
}

// Initialize discards any existing tree, subdivides root and assigns items.
// Items that do not overlap root are dropped.
func (o *Octree[T]) Initialize(root geom.AABB, items []T) {
	o.Reset()
	o.head = &Node[T]{Box: root}
	o.build(o.head)
	o.assign(o.head, items)
}

// Reset discards the whole tree.
func (o *Octree[T]) Reset() {
	o.head = nil
}

// build subdivides n until node volumes drop to the minimum box size
// or stop shrinking.
func (o *Octree[T]) build(n *Node[T]) {
	if n == nil {
		return
	}

	n.Children = [8]*Node[T]{}
	n.Leaf = true

	vol := n.Box.Volume()
	if !(vol > o.MinBoxSize()) || math.IsInf(float64(vol), 0) {
		return
	}

	// Float rounding can leave an octant as large as its parent
	octants := n.Box.Octants()
	for _, box := range octants {
		if !(box.Volume() < vol) {
			return
		}
	}
	n.Leaf = false

	for i, box := range octants {
		n.Children[i] = &Node[T]{Box: box}
	}
	for _, child := range n.Children {
		o.build(child)
	}
}

// assign keeps the candidates overlapping n and passes that subset down.
func (o *Octree[T]) assign(n *Node[T], candidates []T) {
	if n == nil {
		return
	}

	var items []T
	for _, item := range candidates {
		if geom.Overlaps(n.Box, item.Bounds()) {
			items = append(items, item)
		}
	}
	n.Items = items

	for _, child := range n.Children {
		if child == nil {
			continue
		}
		o.assign(child, n.Items)
	}
}

// FrustumCull adds to out every item of the subtree at n that may be visible.
// Leaves emit all their items. Inner nodes are skipped when all 8 corners are
// outside, emit their own list when none are, and recurse otherwise.
func (o *Octree[T]) FrustumCull(out map[T]struct{}, n *Node[T], frustum *geom.ViewFrustum) {
	if n == nil {
		return
	}

	if n.Leaf {
		insertAll(out, n.Items)
		return
	}

	vertices := n.Box.Vertices()
	culled := 0
	for _, v := range vertices {
		if frustum.IsOutside(v) {
			culled++
		}
	}

	switch culled {
	case len(vertices):
		return
	case 0:
		insertAll(out, n.Items)
		return
	}

	for _, child := range n.Children {
		o.FrustumCull(out, child, frustum)
	}
}

// Visible returns the deduplicated set of items that may be visible.
func (o *Octree[T]) Visible(frustum *geom.ViewFrustum) map[T]struct{} {
	out := make(map[T]struct{})
	o.FrustumCull(out, o.head, frustum)
	return out
}

func insertAll[T Item](out map[T]struct{}, items []T) {
	for _, item := range items {
		out[item] = struct{}{}
	}
}

// Clone returns a deep copy of the tree. Items themselves are shared.
func (o *Octree[T]) Clone() *Octree[T] {
	return &Octree[T]{
		head:       o.head.clone(),
		minBoxSize: o.minBoxSize,
	}
}

// CopyFrom replaces o with a deep copy of src.
func (o *Octree[T]) CopyFrom(src *Octree[T]) {
	if o == src {
		return
	}
	o.head = src.head.clone()
	o.minBoxSize = src.minBoxSize
}

// MoveFrom takes ownership of src's tree and leaves src empty.
func (o *Octree[T]) MoveFrom(src *Octree[T]) {
	if o == src {
		return
	}
	o.head = src.head
	o.minBoxSize = src.minBoxSize
	src.head = nil
}

func (n *Node[T]) clone() *Node[T] {
	if n == nil {
		return nil
	}

	c := &Node[T]{
		Box:   n.Box,
		Leaf:  n.Leaf,
		Items: slices.Clone(n.Items),
	}
	for i, child := range n.Children {
		c.Children[i] = child.clone()
	}
	return c
}
