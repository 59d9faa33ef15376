package displaylist

import "github.com/gogpu/displaylist/geom"

// DisplayList is the producer-built input of a conversion.
//
// ClipScrollNodes is a dense array indexed by ClipScrollNodeIndex. Entry 0
// is the root scroll node; it is never defined by an item.
type DisplayList struct {
	Items           []Item
	ClipScrollNodes []ClipScrollNode

	// BoundsOverride, when set, replaces the union of item bounds as the
	// content size of the converted list.
	BoundsOverride *geom.AuRect
}

// New returns an empty list holding only the root node.
func New() *DisplayList {
	return &DisplayList{
		ClipScrollNodes: []ClipScrollNode{RootNode()},
	}
}

// Push appends items to the list.
func (d *DisplayList) Push(items ...Item) {
	d.Items = append(d.Items, items...)
}

// AddNode appends a node descriptor and returns its index. The node still
// has to be defined by a DefineClipScrollNodeItem before use.
func (d *DisplayList) AddNode(n ClipScrollNode) ClipScrollNodeIndex {
	d.ClipScrollNodes = append(d.ClipScrollNodes, n)
	return ClipScrollNodeIndex(len(d.ClipScrollNodes) - 1)
}

// Bounds returns the bounding rectangle of the list: BoundsOverride when
// set, otherwise the union of all item bounds.
func (d *DisplayList) Bounds() geom.AuRect {
	if d.BoundsOverride != nil {
		return *d.BoundsOverride
	}
	var bounds geom.AuRect
	for _, item := range d.Items {
		bounds = bounds.Union(item.Base().Bounds)
	}
	return bounds
}
