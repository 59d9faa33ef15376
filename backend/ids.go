package backend

import "fmt"

// PipelineID identifies a surface (a document or an embedded frame) whose
// display list is built independently of the others.
type PipelineID struct {
	Namespace uint32
	Index     uint32
}

func (p PipelineID) String() string {
	return fmt.Sprintf("(%d,%d)", p.Namespace, p.Index)
}

// ClipIDKind distinguishes the ways a ClipID can be produced.
type ClipIDKind uint8

const (
	// ClipIDNone marks the absence of a clip node.
	ClipIDNone ClipIDKind = iota
	// ClipIDRootReferenceFrame is the implicit root of every pipeline.
	ClipIDRootReferenceFrame
	// ClipIDRootScrollNode is the implicit root scroll frame of every pipeline.
	ClipIDRootScrollNode
	// ClipIDGenerated is assigned by the Builder when a node is defined.
	ClipIDGenerated
	// ClipIDExternal is chosen by the producer and passed to a define call.
	ClipIDExternal
)

var clipIDKindNames = [...]string{
	ClipIDNone:               "None",
	ClipIDRootReferenceFrame: "RootReferenceFrame",
	ClipIDRootScrollNode:     "RootScrollNode",
	ClipIDGenerated:          "Generated",
	ClipIDExternal:           "External",
}

// String returns the kind name.
func (k ClipIDKind) String() string {
	if int(k) < len(clipIDKindNames) {
		return clipIDKindNames[k]
	}
	return "Unknown"
}

// ClipID names a clip, scroll or sticky node in the backend's clip-scroll
// tree. ClipID values are comparable with ==.
type ClipID struct {
	Kind     ClipIDKind
	Index    uint64
	Pipeline PipelineID
}

// RootReferenceFrame returns the id of the root reference frame of p.
func RootReferenceFrame(p PipelineID) ClipID {
	return ClipID{Kind: ClipIDRootReferenceFrame, Pipeline: p}
}

// RootScrollNode returns the id of the root scroll node of p.
func RootScrollNode(p PipelineID) ClipID {
	return ClipID{Kind: ClipIDRootScrollNode, Pipeline: p}
}

// ExternalClipID returns a producer-chosen id. Passing it to a define call
// makes the Builder use it verbatim instead of generating one.
func ExternalClipID(index uint64, p PipelineID) ClipID {
	return ClipID{Kind: ClipIDExternal, Index: index, Pipeline: p}
}

// IsNone reports whether id is the zero "no node" value.
func (id ClipID) IsNone() bool {
	return id.Kind == ClipIDNone
}

// IsRoot reports whether id is one of the implicit pipeline roots.
func (id ClipID) IsRoot() bool {
	return id.Kind == ClipIDRootReferenceFrame || id.Kind == ClipIDRootScrollNode
}

func (id ClipID) String() string {
	switch id.Kind {
	case ClipIDNone:
		return "none"
	case ClipIDRootReferenceFrame, ClipIDRootScrollNode:
		return fmt.Sprintf("%s%s", id.Kind, id.Pipeline)
	default:
		return fmt.Sprintf("%s#%d%s", id.Kind, id.Index, id.Pipeline)
	}
}

// ClipAndScrollInfo is the pair of nodes applied to subsequent primitives:
// the scroll node positions them and the clip node, if any, clips them.
// It is comparable with ==.
type ClipAndScrollInfo struct {
	ScrollNodeID ClipID
	ClipNodeID   ClipID
}

// SimpleClipAndScroll returns info that scrolls and clips with the same node.
func SimpleClipAndScroll(scroll ClipID) ClipAndScrollInfo {
	return ClipAndScrollInfo{ScrollNodeID: scroll}
}

// NewClipAndScroll returns info with distinct scroll and clip nodes.
func NewClipAndScroll(scroll, clip ClipID) ClipAndScrollInfo {
	return ClipAndScrollInfo{ScrollNodeID: scroll, ClipNodeID: clip}
}

// ClipNode returns the effective clip node: the explicit clip node when
// present, otherwise the scroll node.
func (c ClipAndScrollInfo) ClipNode() ClipID {
	if c.ClipNodeID.IsNone() {
		return c.ScrollNodeID
	}
	return c.ClipNodeID
}

func (c ClipAndScrollInfo) String() string {
	if c.ClipNodeID.IsNone() {
		return c.ScrollNodeID.String()
	}
	return fmt.Sprintf("%s/%s", c.ScrollNodeID, c.ClipNodeID)
}

// FontKey identifies a font instance registered with the backend.
type FontKey struct {
	Namespace uint32
	Index     uint32
}

// ImageKey identifies an image registered with the backend.
type ImageKey struct {
	Namespace uint32
	Index     uint32
}
