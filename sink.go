package displaylist

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/displaylist/backend"
	"github.com/gogpu/displaylist/geom"
)

// Sink is the part of the backend scene builder the converter writes to.
// *backend.Builder implements it.
type Sink interface {
	PushClipAndScrollInfo(info backend.ClipAndScrollInfo)
	PushClipID(id backend.ClipID)
	PopClipID() error

	PushStackingContext(
		info backend.PrimitiveInfo,
		scrollPolicy backend.ScrollPolicy,
		transform *geom.Transform,
		transformStyle backend.TransformStyle,
		perspective *geom.Transform,
		mixBlendMode backend.MixBlendMode,
		filters []backend.FilterOp,
	)
	PopStackingContext() error

	DefineClip(id, parent backend.ClipID, rect geom.Rect, complex []backend.ComplexClipRegion) backend.ClipID
	DefineScrollFrame(
		id, parent backend.ClipID,
		contentRect, clipRect geom.Rect,
		complex []backend.ComplexClipRegion,
		sensitivity backend.ScrollSensitivity,
	) backend.ClipID
	DefineStickyFrame(
		id backend.ClipID,
		frameRect geom.Rect,
		margins backend.StickyMargins,
		verticalBounds, horizontalBounds backend.StickyOffsetBounds,
		previouslyAppliedOffset geom.Vector,
	) backend.ClipID

	CreateGradient(start, end geom.Point, stops []backend.GradientStop, extend backend.ExtendMode) backend.Gradient
	CreateRadialGradient(center geom.Point, radius geom.Size, stops []backend.GradientStop, extend backend.ExtendMode) backend.RadialGradient

	PushRect(info backend.PrimitiveInfo, color gputypes.Color)
	PushText(info backend.PrimitiveInfo, glyphs []backend.GlyphInstance, font backend.FontKey, color gputypes.Color, opts *backend.GlyphOptions)
	PushImage(
		info backend.PrimitiveInfo,
		stretchSize, tileSpacing geom.Size,
		rendering backend.ImageRendering,
		alphaType backend.AlphaType,
		key backend.ImageKey,
	)
	PushBorder(info backend.PrimitiveInfo, widths geom.SideOffsets, details backend.BorderDetails)
	PushGradient(info backend.PrimitiveInfo, gradient backend.Gradient, tileSize, tileSpacing geom.Size)
	PushRadialGradient(info backend.PrimitiveInfo, gradient backend.RadialGradient, tileSize, tileSpacing geom.Size)
	PushLine(
		info backend.PrimitiveInfo,
		wavyLineThickness float32,
		orientation backend.LineOrientation,
		color gputypes.Color,
		style backend.LineStyle,
	)
	PushBoxShadow(
		info backend.PrimitiveInfo,
		boxBounds geom.Rect,
		offset geom.Vector,
		color gputypes.Color,
		blurRadius, spreadRadius float32,
		borderRadius geom.BorderRadius,
		clipMode backend.BoxShadowClipMode,
	)
	PushShadow(info backend.PrimitiveInfo, shadow backend.Shadow)
	PopAllShadows()
	PushIframe(info backend.PrimitiveInfo, pipeline backend.PipelineID)
}

// stickyParentDefiner is implemented by sinks that can attach a sticky
// frame to an explicit parent.
type stickyParentDefiner interface {
	DefineStickyFrameWithParent(
		id, parent backend.ClipID,
		frameRect geom.Rect,
		margins backend.StickyMargins,
		verticalBounds, horizontalBounds backend.StickyOffsetBounds,
		previouslyAppliedOffset geom.Vector,
	) backend.ClipID
}

var _ Sink = (*backend.Builder)(nil)
