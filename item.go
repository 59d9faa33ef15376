package displaylist

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/displaylist/backend"
	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/text"
)

// ItemKind identifies the variant of a display item.
type ItemKind uint8

const (
	KindSolidColor ItemKind = iota
	KindText
	KindImage
	KindBorder
	KindGradient
	KindRadialGradient
	KindLine
	KindBoxShadow
	KindPushTextShadow
	KindPopAllTextShadows
	KindIframe
	KindPushStackingContext
	KindPopStackingContext
	KindDefineClipScrollNode

	numItemKinds
)

var itemKindNames = [...]string{
	KindSolidColor:           "SolidColor",
	KindText:                 "Text",
	KindImage:                "Image",
	KindBorder:               "Border",
	KindGradient:             "Gradient",
	KindRadialGradient:       "RadialGradient",
	KindLine:                 "Line",
	KindBoxShadow:            "BoxShadow",
	KindPushTextShadow:       "PushTextShadow",
	KindPopAllTextShadows:    "PopAllTextShadows",
	KindIframe:               "Iframe",
	KindPushStackingContext:  "PushStackingContext",
	KindPopStackingContext:   "PopStackingContext",
	KindDefineClipScrollNode: "DefineClipScrollNode",
}

// String returns the string representation of an ItemKind.
func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "Unknown"
}

// Item is a display item. The set of implementations is closed: only the
// item types of this package satisfy it.
type Item interface {
	// Base returns the record shared by every item.
	Base() *BaseItem

	// Kind returns the item variant.
	Kind() ItemKind

	isItem()
}

// OpaqueNode identifies the DOM node an item was generated for.
type OpaqueNode uint64

// Metadata carries hit-test information.
type Metadata struct {
	Node OpaqueNode
	// Pointing is the cursor shown over the item. Items without a cursor
	// do not take part in hit testing.
	Pointing *gpucontext.CursorShape
}

// ClippingAndScrolling names the nodes an item is scrolled and clipped by.
type ClippingAndScrolling struct {
	Scrolling ClipScrollNodeIndex
	// Clipping is nil when the item is clipped by its scroll node only.
	Clipping *ClipScrollNodeIndex
}

// Simple returns a reference to a scroll node with no extra clip.
func Simple(scrolling ClipScrollNodeIndex) ClippingAndScrolling {
	return ClippingAndScrolling{Scrolling: scrolling}
}

// Both returns a reference to a scroll node and a separate clip node.
func Both(scrolling, clipping ClipScrollNodeIndex) ClippingAndScrolling {
	return ClippingAndScrolling{Scrolling: scrolling, Clipping: &clipping}
}

// BaseItem is the record shared by every display item.
type BaseItem struct {
	Bounds               geom.AuRect
	LocalClip            backend.LocalClip
	ClippingAndScrolling ClippingAndScrolling
	Metadata             Metadata
}

// NewBaseItem returns a base record for bounds, clipped to bounds and
// attached to the root scroll node.
func NewBaseItem(bounds geom.AuRect) BaseItem {
	return BaseItem{
		Bounds:    bounds,
		LocalClip: backend.RectClip(bounds.ToLayout()),
	}
}

// Base implements Item.
func (b *BaseItem) Base() *BaseItem { return b }

func (b *BaseItem) isItem() {}

// SolidColorItem fills its bounds with a color.
type SolidColorItem struct {
	BaseItem
	Color gputypes.Color
}

// TextItem draws part of a shaped run.
type TextItem struct {
	BaseItem
	Run *text.Run
	// Range selects the characters of Run to draw.
	Range text.Range
	// BaselineOrigin is the pen position of the first glyph.
	BaselineOrigin geom.AuPoint
	Color          gputypes.Color
}

// ImageItem draws a possibly tiled image.
type ImageItem struct {
	BaseItem
	// Key is nil while the image has not been uploaded to the backend.
	Key         *backend.ImageKey
	StretchSize geom.Size
	TileSpacing geom.Size
	Rendering   backend.ImageRendering
}

// BorderDetails describes how a border is painted.
// Implemented by NormalBorderDetails, ImageBorderDetails,
// GradientBorderDetails and RadialGradientBorderDetails.
type BorderDetails interface {
	isBorderDetails()
}

// NormalBorderDetails is a border made of styled sides.
type NormalBorderDetails struct {
	Border backend.NormalBorder
}

// ImageBorderDetails is a nine-patch image border.
type ImageBorderDetails struct {
	Border backend.ImageBorder
}

// GradientBorderDetails paints the border with a linear gradient.
type GradientBorderDetails struct {
	Gradient Gradient
	Outset   geom.SideOffsets
}

// RadialGradientBorderDetails paints the border with a radial gradient.
type RadialGradientBorderDetails struct {
	Gradient RadialGradient
	Outset   geom.SideOffsets
}

func (NormalBorderDetails) isBorderDetails()         {}
func (ImageBorderDetails) isBorderDetails()          {}
func (GradientBorderDetails) isBorderDetails()       {}
func (RadialGradientBorderDetails) isBorderDetails() {}

// BorderItem draws a border.
type BorderItem struct {
	BaseItem
	Widths  geom.SideOffsets
	Details BorderDetails
}

// Gradient is a linear gradient whose stops are not yet registered with the
// backend.
type Gradient struct {
	StartPoint geom.Point
	EndPoint   geom.Point
	Stops      []backend.GradientStop
	Extend     backend.ExtendMode
}

// RadialGradient is a radial gradient whose stops are not yet registered
// with the backend.
type RadialGradient struct {
	Center geom.Point
	Radius geom.Size
	Stops  []backend.GradientStop
	Extend backend.ExtendMode
}

// GradientItem fills its bounds with tiles of a linear gradient.
type GradientItem struct {
	BaseItem
	Gradient    Gradient
	Tile        geom.Size
	TileSpacing geom.Size
}

// RadialGradientItem fills its bounds with tiles of a radial gradient.
type RadialGradientItem struct {
	BaseItem
	Gradient    RadialGradient
	Tile        geom.Size
	TileSpacing geom.Size
}

// LineItem draws a text decoration line across its bounds.
type LineItem struct {
	BaseItem
	Color gputypes.Color
	Style backend.LineStyle
}

// BoxShadowItem draws the shadow of a box.
type BoxShadowItem struct {
	BaseItem
	BoxBounds    geom.Rect
	Offset       geom.Vector
	Color        gputypes.Color
	BlurRadius   float32
	SpreadRadius float32
	BorderRadius geom.BorderRadius
	ClipMode     backend.BoxShadowClipMode
}

// PushTextShadowItem applies a shadow to the text that follows it.
type PushTextShadowItem struct {
	BaseItem
	Offset     geom.Vector
	Color      gputypes.Color
	BlurRadius float32
}

// PopAllTextShadowsItem removes every pushed text shadow.
type PopAllTextShadowsItem struct {
	BaseItem
}

// IframeItem embeds the display list of another pipeline.
type IframeItem struct {
	BaseItem
	Pipeline backend.PipelineID
}

// PushStackingContextItem opens a stacking context.
type PushStackingContextItem struct {
	BaseItem
	StackingContext StackingContext
}

// PopStackingContextItem closes the innermost stacking context.
type PopStackingContextItem struct {
	BaseItem
	ID StackingContextID
}

// DefineClipScrollNodeItem defines the node at NodeIndex.
type DefineClipScrollNodeItem struct {
	BaseItem
	NodeIndex ClipScrollNodeIndex
}

func (*SolidColorItem) Kind() ItemKind           { return KindSolidColor }
func (*TextItem) Kind() ItemKind                 { return KindText }
func (*ImageItem) Kind() ItemKind                { return KindImage }
func (*BorderItem) Kind() ItemKind               { return KindBorder }
func (*GradientItem) Kind() ItemKind             { return KindGradient }
func (*RadialGradientItem) Kind() ItemKind       { return KindRadialGradient }
func (*LineItem) Kind() ItemKind                 { return KindLine }
func (*BoxShadowItem) Kind() ItemKind            { return KindBoxShadow }
func (*PushTextShadowItem) Kind() ItemKind       { return KindPushTextShadow }
func (*PopAllTextShadowsItem) Kind() ItemKind    { return KindPopAllTextShadows }
func (*IframeItem) Kind() ItemKind               { return KindIframe }
func (*PushStackingContextItem) Kind() ItemKind  { return KindPushStackingContext }
func (*PopStackingContextItem) Kind() ItemKind   { return KindPopStackingContext }
func (*DefineClipScrollNodeItem) Kind() ItemKind { return KindDefineClipScrollNode }
