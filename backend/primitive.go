package backend

import (
	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/displaylist/geom"
)

// ItemTag identifies the node a primitive was generated for, so hit testing
// can map a point back to it, together with the cursor to show over it.
type ItemTag struct {
	Node   uint64
	Cursor gpucontext.CursorShape
}

// PrimitiveInfo is the geometry shared by every primitive.
type PrimitiveInfo struct {
	Rect              geom.Rect
	LocalClip         LocalClip
	IsBackfaceVisible bool
	// Tag is nil for primitives that do not take part in hit testing.
	Tag *ItemTag
}

// NewPrimitiveInfo returns info for rect with a local clip equal to rect.
func NewPrimitiveInfo(rect geom.Rect) PrimitiveInfo {
	return PrimitiveInfo{
		Rect:              rect,
		LocalClip:         RectClip(rect),
		IsBackfaceVisible: true,
	}
}

// ClipMode selects which side of a clip region stays visible.
type ClipMode uint8

const (
	// ClipModeClip keeps the inside of the region.
	ClipModeClip ClipMode = iota
	// ClipModeClipOut keeps the outside of the region.
	ClipModeClipOut
)

// String returns the mode name.
func (m ClipMode) String() string {
	if m == ClipModeClipOut {
		return "ClipOut"
	}
	return "Clip"
}

// ComplexClipRegion is a rounded rectangle clip.
type ComplexClipRegion struct {
	Rect  geom.Rect
	Radii geom.BorderRadius
	Mode  ClipMode
}

// LocalClip is the clip applied to a single primitive, in addition to the
// clip of the active clip node.
type LocalClip struct {
	Rect geom.Rect
	// Rounded, when non-nil, replaces Rect with a rounded rectangle.
	Rounded *ComplexClipRegion
}

// RectClip returns a local clip to r.
func RectClip(r geom.Rect) LocalClip {
	return LocalClip{Rect: r}
}

// RoundedClip returns a local clip to a rounded rectangle.
func RoundedClip(r geom.Rect, region ComplexClipRegion) LocalClip {
	return LocalClip{Rect: r, Rounded: &region}
}

// ClipRect returns the bounding rectangle of the clip.
func (c LocalClip) ClipRect() geom.Rect {
	return c.Rect
}

// GlyphInstance is one positioned glyph of a text run.
type GlyphInstance struct {
	Index font.GID
	Point geom.Point
}

// GlyphOptions overrides per-run rasterization settings. A nil *GlyphOptions
// uses the font instance defaults.
type GlyphOptions struct {
	Subpixel bool
}

// ImageRendering is the CSS image-rendering hint.
type ImageRendering uint8

const (
	ImageRenderingAuto ImageRendering = iota
	ImageRenderingCrispEdges
	ImageRenderingPixelated
)

// FilterMode returns the sampler filter used for the hint.
func (r ImageRendering) FilterMode() gputypes.FilterMode {
	if r == ImageRenderingAuto {
		return gputypes.FilterModeLinear
	}
	return gputypes.FilterModeNearest
}

// String returns the hint name.
func (r ImageRendering) String() string {
	switch r {
	case ImageRenderingCrispEdges:
		return "CrispEdges"
	case ImageRenderingPixelated:
		return "Pixelated"
	default:
		return "Auto"
	}
}

// AlphaType describes how image color is stored.
type AlphaType uint8

const (
	AlphaTypeAlpha AlphaType = iota
	AlphaTypePremultipliedAlpha
)

// LineOrientation is the direction of a decoration line.
type LineOrientation uint8

const (
	LineOrientationHorizontal LineOrientation = iota
	LineOrientationVertical
)

// LineStyle is the stroke pattern of a decoration line.
type LineStyle uint8

const (
	LineStyleSolid LineStyle = iota
	LineStyleDotted
	LineStyleDashed
	LineStyleWavy
)

// String returns the style name.
func (s LineStyle) String() string {
	switch s {
	case LineStyleDotted:
		return "Dotted"
	case LineStyleDashed:
		return "Dashed"
	case LineStyleWavy:
		return "Wavy"
	default:
		return "Solid"
	}
}

// BoxShadowClipMode selects outer (outset) or inner (inset) box shadows.
type BoxShadowClipMode uint8

const (
	BoxShadowClipModeOutset BoxShadowClipMode = iota
	BoxShadowClipModeInset
)

// Shadow is a text shadow applied to text primitives pushed while it is
// on the shadow stack.
type Shadow struct {
	Offset     geom.Vector
	Color      gputypes.Color
	BlurRadius float32
}

// ScrollSensitivity tells the backend which events may scroll a frame.
type ScrollSensitivity uint8

const (
	// ScriptAndInputEvents frames scroll from script and user input.
	ScriptAndInputEvents ScrollSensitivity = iota
	// Script frames only scroll from script, so hit testing skips them.
	Script
)

// StickyOffsetBounds limits how far a sticky frame may move along one axis.
type StickyOffsetBounds struct {
	Min, Max float32
}

// StickyMargin is one optional margin of a sticky frame.
type StickyMargin struct {
	Value float32
	Set   bool
}

// Margin returns a set margin of v.
func Margin(v float32) StickyMargin {
	return StickyMargin{Value: v, Set: true}
}

// StickyMargins are the distances to the viewport edges a sticky frame
// keeps once it starts sticking. Unset sides do not stick.
type StickyMargins struct {
	Top, Right, Bottom, Left StickyMargin
}
