package displaylist

import (
	"github.com/gogpu/displaylist/backend"
	"github.com/gogpu/displaylist/geom"
)

// ClipScrollNodeIndex addresses a node in DisplayList.ClipScrollNodes.
type ClipScrollNodeIndex int

// RootScrollNodeIndex is the index of the root scroll node.
const RootScrollNodeIndex ClipScrollNodeIndex = 0

// ClipScrollNode describes one node of the clip/scroll tree.
type ClipScrollNode struct {
	// ParentIndex must refer to a node defined before this one.
	ParentIndex ClipScrollNodeIndex

	// Clip is the clip region of the node. For scroll frames its main rect
	// is the viewport; for sticky frames the frame rect.
	Clip ClippingRegion

	// ContentRect is the scrollable area of a scroll frame.
	ContentRect geom.Rect

	NodeType ClipScrollNodeType

	// ID, when set, is the id the backend is expected to assign.
	ID *backend.ClipID
}

// RootNode returns the descriptor stored at index 0.
func RootNode() ClipScrollNode {
	return ClipScrollNode{
		ParentIndex: RootScrollNodeIndex,
		NodeType:    ScrollFrameNodeType{Sensitivity: backend.ScriptAndInputEvents},
	}
}

// ClipScrollNodeType is the kind of a node. Implemented by ClipNodeType,
// ScrollFrameNodeType and StickyFrameNodeType.
type ClipScrollNodeType interface {
	isNodeType()
}

// ClipNodeType is a plain clip.
type ClipNodeType struct{}

// ScrollFrameNodeType is a scrollable frame.
type ScrollFrameNodeType struct {
	Sensitivity backend.ScrollSensitivity
}

// StickyFrameNodeType is a sticky-positioned frame.
type StickyFrameNodeType struct {
	StickyFrameData
}

// StickyFrameData holds the sticky positioning constraints.
type StickyFrameData struct {
	Margins                backend.StickyMargins
	VerticalOffsetBounds   backend.StickyOffsetBounds
	HorizontalOffsetBounds backend.StickyOffsetBounds
}

func (ClipNodeType) isNodeType()        {}
func (ScrollFrameNodeType) isNodeType() {}
func (StickyFrameNodeType) isNodeType() {}
