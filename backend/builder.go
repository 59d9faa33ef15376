package backend

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/displaylist/geom"
)

// DefaultCapacity is the capacity hint, in bytes, used for display lists of
// unknown size.
const DefaultCapacity = 1024 * 1024

// approxCommandBytes is the average encoded size of a command, used to turn
// a byte capacity hint into a command slice capacity.
const approxCommandBytes = 64

// maxPreallocCommands caps the preallocation for very large hints.
const maxPreallocCommands = 1 << 16

// Builder records the command stream of one pipeline.
//
// Every Push/Define call appends exactly one command, except CreateGradient
// and CreateRadialGradient which append the SetGradientStops command that
// registers the stop list. Pops that do not match a push are reported as
// errors and append nothing.
//
// The Builder is not safe for concurrent use.
type Builder struct {
	pipeline    PipelineID
	contentSize geom.Size
	capacity    int

	commands []Command
	stops    stopPool

	clipStack     []ClipAndScrollInfo
	stackingDepth int
	shadowDepth   int
	nextClipIndex uint64

	finished bool
}

// NewBuilder creates a Builder for pipeline with the given content size.
// capacity is a hint, in bytes, of the expected size of the encoded list.
func NewBuilder(pipeline PipelineID, contentSize geom.Size, capacity int) *Builder {
	n := capacity / approxCommandBytes
	n = max(16, min(n, maxPreallocCommands))
	return &Builder{
		pipeline:    pipeline,
		contentSize: contentSize,
		capacity:    capacity,
		commands:    make([]Command, 0, n),
		clipStack:   make([]ClipAndScrollInfo, 0, 8),
	}
}

// Pipeline returns the pipeline the list is built for.
func (b *Builder) Pipeline() PipelineID { return b.pipeline }

// ContentSize returns the size of the list's content.
func (b *Builder) ContentSize() geom.Size { return b.contentSize }

// Capacity returns the capacity hint the Builder was created with.
func (b *Builder) Capacity() int { return b.capacity }

// Commands returns the commands recorded so far. The slice must not be
// modified.
func (b *Builder) Commands() []Command { return b.commands }

// Len returns the number of commands recorded so far.
func (b *Builder) Len() int { return len(b.commands) }

// ClipDepth returns the depth of the clip-scroll stack.
func (b *Builder) ClipDepth() int { return len(b.clipStack) }

// StackingContextDepth returns the number of open stacking contexts.
func (b *Builder) StackingContextDepth() int { return b.stackingDepth }

// ShadowDepth returns the number of text shadows currently pushed.
func (b *Builder) ShadowDepth() int { return b.shadowDepth }

// CurrentClipAndScroll returns the active clip-scroll state. ok is false when
// nothing has been pushed.
func (b *Builder) CurrentClipAndScroll() (info ClipAndScrollInfo, ok bool) {
	if len(b.clipStack) == 0 {
		return ClipAndScrollInfo{}, false
	}
	return b.clipStack[len(b.clipStack)-1], true
}

func (b *Builder) push(cmd Command) {
	b.commands = append(b.commands, cmd)
}

// --------------------------------------------------------------------------
// Clip-Scroll State
// --------------------------------------------------------------------------

// PushClipAndScrollInfo makes info the active clip-scroll state.
func (b *Builder) PushClipAndScrollInfo(info ClipAndScrollInfo) {
	b.clipStack = append(b.clipStack, info)
	b.push(PushClipAndScrollCommand{Info: info})
}

// PushClipID makes id active for both scrolling and clipping.
func (b *Builder) PushClipID(id ClipID) {
	b.clipStack = append(b.clipStack, SimpleClipAndScroll(id))
	b.push(PushClipIDCommand{ID: id})
}

// PopClipID restores the clip-scroll state active before the last push.
func (b *Builder) PopClipID() error {
	if len(b.clipStack) == 0 {
		return ErrClipStackEmpty
	}
	b.clipStack = b.clipStack[:len(b.clipStack)-1]
	b.push(PopClipIDCommand{})
	return nil
}

// activeScrollNode returns the scroll node new sticky frames attach to.
func (b *Builder) activeScrollNode() ClipID {
	if info, ok := b.CurrentClipAndScroll(); ok {
		return info.ScrollNodeID
	}
	return RootScrollNode(b.pipeline)
}

// --------------------------------------------------------------------------
// Stacking Contexts
// --------------------------------------------------------------------------

// PushStackingContext opens a stacking context. transform and perspective
// may be nil.
func (b *Builder) PushStackingContext(
	info PrimitiveInfo,
	scrollPolicy ScrollPolicy,
	transform *geom.Transform,
	transformStyle TransformStyle,
	perspective *geom.Transform,
	mixBlendMode MixBlendMode,
	filters []FilterOp,
) {
	b.stackingDepth++
	b.push(PushStackingContextCommand{
		PrimInfo:       info,
		ScrollPolicy:   scrollPolicy,
		Transform:      cloneTransform(transform),
		TransformStyle: transformStyle,
		Perspective:    cloneTransform(perspective),
		MixBlendMode:   mixBlendMode,
		Filters:        append([]FilterOp(nil), filters...),
	})
}

// PopStackingContext closes the innermost stacking context.
func (b *Builder) PopStackingContext() error {
	if b.stackingDepth == 0 {
		return ErrStackingContextUnderflow
	}
	b.stackingDepth--
	b.push(PopStackingContextCommand{})
	return nil
}

func cloneTransform(t *geom.Transform) *geom.Transform {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// --------------------------------------------------------------------------
// Node Definitions
// --------------------------------------------------------------------------

// resolveID returns id when the caller chose one, otherwise a fresh id.
func (b *Builder) resolveID(id ClipID) ClipID {
	if !id.IsNone() {
		return id
	}
	b.nextClipIndex++
	return ClipID{Kind: ClipIDGenerated, Index: b.nextClipIndex, Pipeline: b.pipeline}
}

// DefineClip defines a clip node under parent. Pass a zero id to let the
// Builder assign one. The returned id is used to refer to the node later.
func (b *Builder) DefineClip(id, parent ClipID, rect geom.Rect, complex []ComplexClipRegion) ClipID {
	id = b.resolveID(id)
	b.push(DefineClipCommand{
		ID:      id,
		Parent:  parent,
		Rect:    rect,
		Complex: append([]ComplexClipRegion(nil), complex...),
	})
	return id
}

// DefineScrollFrame defines a scroll frame under parent whose content
// rectangle contentRect is clipped to clipRect.
func (b *Builder) DefineScrollFrame(
	id, parent ClipID,
	contentRect, clipRect geom.Rect,
	complex []ComplexClipRegion,
	sensitivity ScrollSensitivity,
) ClipID {
	id = b.resolveID(id)
	b.push(DefineScrollFrameCommand{
		ID:          id,
		Parent:      parent,
		ContentRect: contentRect,
		ClipRect:    clipRect,
		Complex:     append([]ComplexClipRegion(nil), complex...),
		Sensitivity: sensitivity,
	})
	return id
}

// DefineStickyFrame defines a sticky frame. The frame is attached to the
// scroll node of the active clip-scroll state; there is no explicit parent.
func (b *Builder) DefineStickyFrame(
	id ClipID,
	frameRect geom.Rect,
	margins StickyMargins,
	verticalBounds, horizontalBounds StickyOffsetBounds,
	previouslyAppliedOffset geom.Vector,
) ClipID {
	id = b.resolveID(id)
	b.push(DefineStickyFrameCommand{
		ID:                      id,
		Parent:                  b.activeScrollNode(),
		FrameRect:               frameRect,
		Margins:                 margins,
		VerticalOffsetBounds:    verticalBounds,
		HorizontalOffsetBounds:  horizontalBounds,
		PreviouslyAppliedOffset: previouslyAppliedOffset,
	})
	return id
}

// --------------------------------------------------------------------------
// Gradients
// --------------------------------------------------------------------------

func (b *Builder) registerStops(stops []GradientStop) GradientStopsRef {
	ref := b.stops.add(stops)
	b.push(SetGradientStopsCommand{Ref: ref, Stops: b.stops.get(ref)})
	return ref
}

// CreateGradient registers stops and returns a linear gradient from start
// to end that uses them.
func (b *Builder) CreateGradient(start, end geom.Point, stops []GradientStop, extend ExtendMode) Gradient {
	return Gradient{
		StartPoint: start,
		EndPoint:   end,
		Extend:     extend,
		Stops:      b.registerStops(stops),
	}
}

// CreateRadialGradient registers stops and returns a radial gradient
// centered on center.
func (b *Builder) CreateRadialGradient(center geom.Point, radius geom.Size, stops []GradientStop, extend ExtendMode) RadialGradient {
	return RadialGradient{
		Center: center,
		Radius: radius,
		Extend: extend,
		Stops:  b.registerStops(stops),
	}
}

// GradientStops returns the stop list registered under ref, or nil.
func (b *Builder) GradientStops(ref GradientStopsRef) []GradientStop {
	return b.stops.get(ref)
}

// --------------------------------------------------------------------------
// Primitives
// --------------------------------------------------------------------------

// PushRect fills info.Rect with color.
func (b *Builder) PushRect(info PrimitiveInfo, color gputypes.Color) {
	b.push(RectCommand{PrimInfo: info, Color: color})
}

// PushText draws glyphs in font and color. opts may be nil.
func (b *Builder) PushText(info PrimitiveInfo, glyphs []GlyphInstance, font FontKey, color gputypes.Color, opts *GlyphOptions) {
	b.push(TextCommand{
		PrimInfo: info,
		Glyphs:   append([]GlyphInstance(nil), glyphs...),
		Font:     font,
		Color:    color,
		Options:  opts,
	})
}

// PushImage draws the image key, stretched to stretchSize and repeated with
// tileSpacing gaps across info.Rect.
func (b *Builder) PushImage(
	info PrimitiveInfo,
	stretchSize, tileSpacing geom.Size,
	rendering ImageRendering,
	alphaType AlphaType,
	key ImageKey,
) {
	b.push(ImageCommand{
		PrimInfo:    info,
		StretchSize: stretchSize,
		TileSpacing: tileSpacing,
		Rendering:   rendering,
		AlphaType:   alphaType,
		Key:         key,
	})
}

// PushBorder draws a border of the given widths.
func (b *Builder) PushBorder(info PrimitiveInfo, widths geom.SideOffsets, details BorderDetails) {
	b.push(BorderCommand{PrimInfo: info, Widths: widths, Details: details})
}

// PushGradient fills info.Rect with tiles of a linear gradient.
func (b *Builder) PushGradient(info PrimitiveInfo, gradient Gradient, tileSize, tileSpacing geom.Size) {
	b.push(GradientCommand{
		PrimInfo:    info,
		Gradient:    gradient,
		TileSize:    tileSize,
		TileSpacing: tileSpacing,
	})
}

// PushRadialGradient fills info.Rect with tiles of a radial gradient.
func (b *Builder) PushRadialGradient(info PrimitiveInfo, gradient RadialGradient, tileSize, tileSpacing geom.Size) {
	b.push(RadialGradientCommand{
		PrimInfo:    info,
		Gradient:    gradient,
		TileSize:    tileSize,
		TileSpacing: tileSpacing,
	})
}

// PushLine draws a decoration line.
func (b *Builder) PushLine(
	info PrimitiveInfo,
	wavyLineThickness float32,
	orientation LineOrientation,
	color gputypes.Color,
	style LineStyle,
) {
	b.push(LineCommand{
		PrimInfo:          info,
		WavyLineThickness: wavyLineThickness,
		Orientation:       orientation,
		Color:             color,
		Style:             style,
	})
}

// PushBoxShadow draws a box shadow for boxBounds.
func (b *Builder) PushBoxShadow(
	info PrimitiveInfo,
	boxBounds geom.Rect,
	offset geom.Vector,
	color gputypes.Color,
	blurRadius, spreadRadius float32,
	borderRadius geom.BorderRadius,
	clipMode BoxShadowClipMode,
) {
	b.push(BoxShadowCommand{
		PrimInfo:     info,
		BoxBounds:    boxBounds,
		Offset:       offset,
		Color:        color,
		BlurRadius:   blurRadius,
		SpreadRadius: spreadRadius,
		BorderRadius: borderRadius,
		ClipMode:     clipMode,
	})
}

// PushShadow pushes a text shadow applied to text until PopAllShadows.
func (b *Builder) PushShadow(info PrimitiveInfo, shadow Shadow) {
	b.shadowDepth++
	b.push(PushShadowCommand{PrimInfo: info, Shadow: shadow})
}

// PopAllShadows pops every pushed text shadow.
func (b *Builder) PopAllShadows() {
	b.shadowDepth = 0
	b.push(PopAllShadowsCommand{})
}

// PushIframe embeds the display list of pipeline.
func (b *Builder) PushIframe(info PrimitiveInfo, pipeline PipelineID) {
	b.push(IframeCommand{PrimInfo: info, Pipeline: pipeline})
}

// --------------------------------------------------------------------------
// Finish
// --------------------------------------------------------------------------

// Finish returns the finished display list. It fails when stacking contexts
// are left open. The Builder must not be used afterwards.
func (b *Builder) Finish() (*DisplayList, error) {
	if b.finished {
		return nil, ErrFinished
	}
	if b.stackingDepth != 0 {
		return nil, ErrUnbalancedStackingContext
	}
	b.finished = true
	return &DisplayList{
		pipeline:    b.pipeline,
		contentSize: b.contentSize,
		commands:    b.commands,
		stops:       b.stops,
	}, nil
}
