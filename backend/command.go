package backend

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/displaylist/geom"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one Builder operation.
type CommandType uint8

const (
	// Clip-scroll state commands
	CmdPushClipAndScroll CommandType = iota // Make a (scroll, clip) pair active
	CmdPushClipID                           // Make a single node active
	CmdPopClipID                            // Restore the previously active node

	// Stacking context commands
	CmdPushStackingContext // Open a stacking context
	CmdPopStackingContext  // Close the innermost stacking context

	// Definition commands
	CmdDefineClip        // Define a clip node
	CmdDefineScrollFrame // Define a scroll frame
	CmdDefineStickyFrame // Define a sticky frame under the active node
	CmdSetGradientStops  // Register a gradient stop list

	// Primitive commands
	CmdRect           // Solid color rectangle
	CmdText           // Glyph run
	CmdImage          // Image, possibly tiled
	CmdBorder         // Border
	CmdGradient       // Tiled linear gradient
	CmdRadialGradient // Tiled radial gradient
	CmdLine           // Decoration line
	CmdBoxShadow      // Box shadow
	CmdPushShadow     // Push a text shadow
	CmdPopAllShadows  // Pop every text shadow
	CmdIframe         // Reference to another pipeline

	numCommandTypes
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdPushClipAndScroll:   "PushClipAndScroll",
	CmdPushClipID:          "PushClipID",
	CmdPopClipID:           "PopClipID",
	CmdPushStackingContext: "PushStackingContext",
	CmdPopStackingContext:  "PopStackingContext",
	CmdDefineClip:          "DefineClip",
	CmdDefineScrollFrame:   "DefineScrollFrame",
	CmdDefineStickyFrame:   "DefineStickyFrame",
	CmdSetGradientStops:    "SetGradientStops",
	CmdRect:                "Rect",
	CmdText:                "Text",
	CmdImage:               "Image",
	CmdBorder:              "Border",
	CmdGradient:            "Gradient",
	CmdRadialGradient:      "RadialGradient",
	CmdLine:                "Line",
	CmdBoxShadow:           "BoxShadow",
	CmdPushShadow:          "PushShadow",
	CmdPopAllShadows:       "PopAllShadows",
	CmdIframe:              "Iframe",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Primitive is implemented by commands that paint something.
type Primitive interface {
	Command
	// Info returns the primitive's geometry.
	Info() PrimitiveInfo
}

// --------------------------------------------------------------------------
// Clip-Scroll State Commands
// --------------------------------------------------------------------------

// PushClipAndScrollCommand makes a (scroll, clip) pair active.
type PushClipAndScrollCommand struct {
	Info ClipAndScrollInfo
}

// Type implements Command.
func (PushClipAndScrollCommand) Type() CommandType { return CmdPushClipAndScroll }

// PushClipIDCommand makes a single node active for both scrolling and clipping.
type PushClipIDCommand struct {
	ID ClipID
}

// Type implements Command.
func (PushClipIDCommand) Type() CommandType { return CmdPushClipID }

// PopClipIDCommand restores the previously active clip-scroll state.
type PopClipIDCommand struct{}

// Type implements Command.
func (PopClipIDCommand) Type() CommandType { return CmdPopClipID }

// --------------------------------------------------------------------------
// Stacking Context Commands
// --------------------------------------------------------------------------

// PushStackingContextCommand opens a stacking context.
type PushStackingContextCommand struct {
	PrimInfo       PrimitiveInfo
	ScrollPolicy   ScrollPolicy
	Transform      *geom.Transform
	TransformStyle TransformStyle
	Perspective    *geom.Transform
	MixBlendMode   MixBlendMode
	Filters        []FilterOp
}

// Type implements Command.
func (PushStackingContextCommand) Type() CommandType { return CmdPushStackingContext }

// PopStackingContextCommand closes the innermost stacking context.
type PopStackingContextCommand struct{}

// Type implements Command.
func (PopStackingContextCommand) Type() CommandType { return CmdPopStackingContext }

// --------------------------------------------------------------------------
// Definition Commands
// --------------------------------------------------------------------------

// DefineClipCommand defines a clip node intersecting its parent's clip.
type DefineClipCommand struct {
	ID      ClipID
	Parent  ClipID
	Rect    geom.Rect
	Complex []ComplexClipRegion
}

// Type implements Command.
func (DefineClipCommand) Type() CommandType { return CmdDefineClip }

// DefineScrollFrameCommand defines a scroll frame.
type DefineScrollFrameCommand struct {
	ID          ClipID
	Parent      ClipID
	ContentRect geom.Rect
	ClipRect    geom.Rect
	Complex     []ComplexClipRegion
	Sensitivity ScrollSensitivity
}

// Type implements Command.
func (DefineScrollFrameCommand) Type() CommandType { return CmdDefineScrollFrame }

// DefineStickyFrameCommand defines a sticky frame. Its parent is the node
// active when the command was recorded, captured in Parent for inspection.
type DefineStickyFrameCommand struct {
	ID                      ClipID
	Parent                  ClipID
	FrameRect               geom.Rect
	Margins                 StickyMargins
	VerticalOffsetBounds    StickyOffsetBounds
	HorizontalOffsetBounds  StickyOffsetBounds
	PreviouslyAppliedOffset geom.Vector
}

// Type implements Command.
func (DefineStickyFrameCommand) Type() CommandType { return CmdDefineStickyFrame }

// SetGradientStopsCommand registers the stop list later gradients refer to.
type SetGradientStopsCommand struct {
	Ref   GradientStopsRef
	Stops []GradientStop
}

// Type implements Command.
func (SetGradientStopsCommand) Type() CommandType { return CmdSetGradientStops }

// --------------------------------------------------------------------------
// Primitive Commands
// --------------------------------------------------------------------------

// RectCommand fills a rectangle with a solid color.
type RectCommand struct {
	PrimInfo PrimitiveInfo
	Color    gputypes.Color
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// Info implements Primitive.
func (c RectCommand) Info() PrimitiveInfo { return c.PrimInfo }

// TextCommand draws positioned glyphs in one font and color.
type TextCommand struct {
	PrimInfo PrimitiveInfo
	Glyphs   []GlyphInstance
	Font     FontKey
	Color    gputypes.Color
	Options  *GlyphOptions
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

// Info implements Primitive.
func (c TextCommand) Info() PrimitiveInfo { return c.PrimInfo }

// ImageCommand draws an image, repeated every StretchSize+TileSpacing.
type ImageCommand struct {
	PrimInfo    PrimitiveInfo
	StretchSize geom.Size
	TileSpacing geom.Size
	Rendering   ImageRendering
	AlphaType   AlphaType
	Key         ImageKey
}

// Type implements Command.
func (ImageCommand) Type() CommandType { return CmdImage }

// Info implements Primitive.
func (c ImageCommand) Info() PrimitiveInfo { return c.PrimInfo }

// BorderCommand draws a border.
type BorderCommand struct {
	PrimInfo PrimitiveInfo
	Widths   geom.SideOffsets
	Details  BorderDetails
}

// Type implements Command.
func (BorderCommand) Type() CommandType { return CmdBorder }

// Info implements Primitive.
func (c BorderCommand) Info() PrimitiveInfo { return c.PrimInfo }

// GradientCommand fills the primitive with tiles of a linear gradient.
type GradientCommand struct {
	PrimInfo    PrimitiveInfo
	Gradient    Gradient
	TileSize    geom.Size
	TileSpacing geom.Size
}

// Type implements Command.
func (GradientCommand) Type() CommandType { return CmdGradient }

// Info implements Primitive.
func (c GradientCommand) Info() PrimitiveInfo { return c.PrimInfo }

// RadialGradientCommand fills the primitive with tiles of a radial gradient.
type RadialGradientCommand struct {
	PrimInfo    PrimitiveInfo
	Gradient    RadialGradient
	TileSize    geom.Size
	TileSpacing geom.Size
}

// Type implements Command.
func (RadialGradientCommand) Type() CommandType { return CmdRadialGradient }

// Info implements Primitive.
func (c RadialGradientCommand) Info() PrimitiveInfo { return c.PrimInfo }

// LineCommand draws a text decoration line.
type LineCommand struct {
	PrimInfo PrimitiveInfo
	// WavyLineThickness is only used by LineStyleWavy.
	WavyLineThickness float32
	Orientation       LineOrientation
	Color             gputypes.Color
	Style             LineStyle
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// Info implements Primitive.
func (c LineCommand) Info() PrimitiveInfo { return c.PrimInfo }

// BoxShadowCommand draws a box shadow.
type BoxShadowCommand struct {
	PrimInfo     PrimitiveInfo
	BoxBounds    geom.Rect
	Offset       geom.Vector
	Color        gputypes.Color
	BlurRadius   float32
	SpreadRadius float32
	BorderRadius geom.BorderRadius
	ClipMode     BoxShadowClipMode
}

// Type implements Command.
func (BoxShadowCommand) Type() CommandType { return CmdBoxShadow }

// Info implements Primitive.
func (c BoxShadowCommand) Info() PrimitiveInfo { return c.PrimInfo }

// PushShadowCommand pushes a text shadow.
type PushShadowCommand struct {
	PrimInfo PrimitiveInfo
	Shadow   Shadow
}

// Type implements Command.
func (PushShadowCommand) Type() CommandType { return CmdPushShadow }

// Info implements Primitive.
func (c PushShadowCommand) Info() PrimitiveInfo { return c.PrimInfo }

// PopAllShadowsCommand pops the whole text shadow stack.
type PopAllShadowsCommand struct{}

// Type implements Command.
func (PopAllShadowsCommand) Type() CommandType { return CmdPopAllShadows }

// IframeCommand embeds the display list of another pipeline.
type IframeCommand struct {
	PrimInfo PrimitiveInfo
	Pipeline PipelineID
}

// Type implements Command.
func (IframeCommand) Type() CommandType { return CmdIframe }

// Info implements Primitive.
func (c IframeCommand) Info() PrimitiveInfo { return c.PrimInfo }
