package octree

import (
	"slices"

	"github.com/Faultbox/visicull/pkg/geom"
)

// Dynamic is an octree whose structure and data can be replaced independently.
type Dynamic[T Item] struct {
	Octree[T]
	data []T
}

// NewDynamic creates an empty dynamic octree.
func NewDynamic[T Item](minBoxSize float32) *Dynamic[T] {
	return &Dynamic[T]{Octree: Octree[T]{minBoxSize: minBoxSize}}
}

// Initialize builds the tree over root and remembers items for later rebuilds.
func (d *Dynamic[T]) Initialize(root geom.AABB, items []T) {
	d.data = items
	d.Octree.Initialize(root, items)
}

// SetBounds rebuilds the structure over box and reassigns the current data,
// so node lists always match the structure they were assigned to.
func (d *Dynamic[T]) SetBounds(box geom.AABB) {
	if d.head == nil {
		d.head = &Node[T]{}
	}
	d.head.Box = box
	d.build(d.head)
	d.assign(d.head, d.data)
}

// SetData replaces the items and reassigns them against the existing structure.
// Without a structure the items are kept until SetBounds is called.
func (d *Dynamic[T]) SetData(items []T) {
	d.data = items
	d.assign(d.head, items)
}

// Data returns the items last passed to Initialize or SetData.
func (d *Dynamic[T]) Data() []T {
	return d.data
}

// Reset discards the structure and the data.
func (d *Dynamic[T]) Reset() {
	d.Octree.Reset()
	d.data = nil
}

// CopyFrom replaces d with a deep copy of src's tree and its own copy of the data.
func (d *Dynamic[T]) CopyFrom(src *Dynamic[T]) {
	if d == src {
		return
	}
	d.Octree.CopyFrom(&src.Octree)
	d.data = slices.Clone(src.data)
}

// MoveFrom takes ownership of src's tree and data and leaves src empty.
// Moving the embedded Octree directly leaves the data behind for the next SetBounds.
func (d *Dynamic[T]) MoveFrom(src *Dynamic[T]) {
	if d == src {
		return
	}
	d.Octree.MoveFrom(&src.Octree)
	d.data = src.data
	src.data = nil
}
