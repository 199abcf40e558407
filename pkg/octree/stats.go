package octree

// Stats summarizes the shape of a tree.
type Stats struct {
	Nodes    int
	Leaves   int
	Depth    int // deepest level, head is 0
	ItemRefs int // item entries summed over leaves
}

// Walk visits nodes depth-first. Returning false from fn skips that node's children.
func (o *Octree[T]) Walk(fn func(n *Node[T], depth int) bool) {
	walk(o.head, 0, fn)
}

func walk[T Item](n *Node[T], depth int, fn func(*Node[T], int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		walk(child, depth+1, fn)
	}
}

// Stats counts nodes, leaves and leaf item references.
func (o *Octree[T]) Stats() Stats {
	var s Stats
	o.Walk(func(n *Node[T], depth int) bool {
		s.Nodes++
		if depth > s.Depth {
			s.Depth = depth
		}
		if n.Leaf {
			s.Leaves++
			s.ItemRefs += len(n.Items)
		}
		return true
	})
	return s
}
