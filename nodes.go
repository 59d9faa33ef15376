package displaylist

import (
	"fmt"

	"github.com/gogpu/displaylist/backend"
	"github.com/gogpu/displaylist/geom"
)

// defineNode defines the node at index i and records its backend id.
func (c *converter) defineNode(i ClipScrollNodeIndex) error {
	if i < 0 || int(i) >= len(c.list.ClipScrollNodes) {
		return &NodeError{Index: i, Err: ErrNodeIndexOutOfRange}
	}
	node := &c.list.ClipScrollNodes[i]
	parent, err := c.ids.lookup(node.ParentIndex)
	if err != nil {
		return err
	}

	var want backend.ClipID
	if node.ID != nil {
		want = *node.ID
	}
	rect := node.Clip.Main.ToLayout()

	var id backend.ClipID
	switch t := node.NodeType.(type) {
	case ClipNodeType:
		id = c.sink.DefineClip(want, parent, rect, node.Clip.complexClips())
	case ScrollFrameNodeType:
		id = c.sink.DefineScrollFrame(want, parent, node.ContentRect, rect,
			node.Clip.complexClips(), t.Sensitivity)
	case StickyFrameNodeType:
		id, err = c.defineStickyFrame(want, parent, rect, t.StickyFrameData)
		if err != nil {
			return &NodeError{Index: i, Err: err}
		}
	default:
		return &NodeError{Index: i, Err: fmt.Errorf("%w: %T", ErrUnknownNodeType, node.NodeType)}
	}

	if node.ID != nil && id != *node.ID {
		return &NodeError{Index: i, Err: fmt.Errorf("%w: got %s, want %s", ErrClipIDMismatch, id, *node.ID)}
	}
	return c.ids.set(i, id)
}

// defineStickyFrame attaches a sticky frame to parent. Sinks without an
// explicit-parent operation get parent pushed as the active node around
// the definition.
func (c *converter) defineStickyFrame(
	id, parent backend.ClipID,
	frame geom.Rect,
	data StickyFrameData,
) (backend.ClipID, error) {
	if s, ok := c.sink.(stickyParentDefiner); ok {
		return s.DefineStickyFrameWithParent(id, parent, frame, data.Margins,
			data.VerticalOffsetBounds, data.HorizontalOffsetBounds, geom.Vector{}), nil
	}
	c.sink.PushClipID(parent)
	id = c.sink.DefineStickyFrame(id, frame, data.Margins,
		data.VerticalOffsetBounds, data.HorizontalOffsetBounds, geom.Vector{})
	if err := c.sink.PopClipID(); err != nil {
		return backend.ClipID{}, err
	}
	return id, nil
}
