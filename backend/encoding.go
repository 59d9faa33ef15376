package backend

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/displaylist/geom"
)

// Binary layout of an encoded display list. All words are little-endian.
//
//	header   magic, version, pipeline namespace, pipeline index,
//	         content width (f32 bits), content height (f32 bits),
//	         command count, data word count
//	tags     one byte per command (the CommandType), padded to 4 bytes
//	data     per command: a word count n followed by n words
//
// The per-command length prefix lets readers skip commands they do not
// understand.
const (
	encodingMagic   = uint32(0x4C44_5257) // 'WRDL' little-endian
	encodingVersion = uint32(1)
	headerWords     = 8
)

// encoder accumulates the tag and data streams.
type encoder struct {
	tags []byte
	data []uint32
	// start is the index of the current command's length prefix.
	start int
}

func (e *encoder) begin(t CommandType) {
	e.tags = append(e.tags, byte(t))
	e.start = len(e.data)
	e.data = append(e.data, 0)
}

func (e *encoder) end() {
	// #nosec G115 -- per-command payloads are far below uint32 max
	e.data[e.start] = uint32(len(e.data) - e.start - 1)
}

func (e *encoder) u32(v uint32) { e.data = append(e.data, v) }

func (e *encoder) f32(v float32) { e.data = append(e.data, math.Float32bits(v)) }

func (e *encoder) bool(v bool) {
	if v {
		e.u32(1)
	} else {
		e.u32(0)
	}
}

func (e *encoder) point(p geom.Point) { e.f32(p.X); e.f32(p.Y) }

func (e *encoder) vector(v geom.Vector) { e.f32(v.X); e.f32(v.Y) }

func (e *encoder) size(s geom.Size) { e.f32(s.Width); e.f32(s.Height) }

func (e *encoder) rect(r geom.Rect) { e.point(r.Origin); e.size(r.Size) }

func (e *encoder) sides(s geom.SideOffsets) {
	e.f32(s.Top)
	e.f32(s.Right)
	e.f32(s.Bottom)
	e.f32(s.Left)
}

func (e *encoder) radius(r geom.BorderRadius) {
	e.size(r.TopLeft)
	e.size(r.TopRight)
	e.size(r.BottomLeft)
	e.size(r.BottomRight)
}

func (e *encoder) color(c gputypes.Color) {
	e.f32(float32(c.R))
	e.f32(float32(c.G))
	e.f32(float32(c.B))
	e.f32(float32(c.A))
}

func (e *encoder) pipeline(p PipelineID) { e.u32(p.Namespace); e.u32(p.Index) }

func (e *encoder) clipID(id ClipID) {
	e.u32(uint32(id.Kind))
	e.u32(uint32(id.Index))
	e.u32(uint32(id.Index >> 32))
	e.pipeline(id.Pipeline)
}

func (e *encoder) complexClips(regions []ComplexClipRegion) {
	// #nosec G115 -- region counts are small
	e.u32(uint32(len(regions)))
	for _, r := range regions {
		e.complexClip(r)
	}
}

func (e *encoder) complexClip(r ComplexClipRegion) {
	e.rect(r.Rect)
	e.radius(r.Radii)
	e.u32(uint32(r.Mode))
}

func (e *encoder) info(p PrimitiveInfo) {
	e.rect(p.Rect)
	e.rect(p.LocalClip.Rect)
	e.bool(p.LocalClip.Rounded != nil)
	if p.LocalClip.Rounded != nil {
		e.complexClip(*p.LocalClip.Rounded)
	}
	e.bool(p.IsBackfaceVisible)
	e.bool(p.Tag != nil)
	if p.Tag != nil {
		e.u32(uint32(p.Tag.Node))
		e.u32(uint32(p.Tag.Node >> 32))
		// #nosec G115 -- cursor shapes are small non-negative enums
		e.u32(uint32(p.Tag.Cursor))
	}
}

func (e *encoder) transform(t *geom.Transform) {
	e.bool(t != nil)
	if t == nil {
		return
	}
	for _, v := range t.Mat4() {
		e.f32(v)
	}
}

func (e *encoder) stickyMargin(m StickyMargin) {
	e.bool(m.Set)
	e.f32(m.Value)
}

func (e *encoder) borderSide(s BorderSide) {
	e.color(s.Color)
	e.u32(uint32(s.Style))
}

func (e *encoder) borderDetails(d BorderDetails) {
	switch d := d.(type) {
	case NormalBorder:
		e.u32(0)
		e.borderSide(d.Left)
		e.borderSide(d.Right)
		e.borderSide(d.Top)
		e.borderSide(d.Bottom)
		e.radius(d.Radius)
	case ImageBorder:
		e.u32(1)
		e.u32(d.Image.Namespace)
		e.u32(d.Image.Index)
		e.u32(d.Patch.Width)
		e.u32(d.Patch.Height)
		e.sides(d.Patch.Slice)
		e.bool(d.Fill)
		e.sides(d.Outset)
		e.u32(uint32(d.RepeatH))
		e.u32(uint32(d.RepeatV))
	case GradientBorder:
		e.u32(2)
		e.gradient(d.Gradient)
		e.sides(d.Outset)
	case RadialGradientBorder:
		e.u32(3)
		e.radialGradient(d.Gradient)
		e.sides(d.Outset)
	}
}

func (e *encoder) gradient(g Gradient) {
	e.point(g.StartPoint)
	e.point(g.EndPoint)
	e.u32(uint32(g.Extend))
	e.u32(uint32(g.Stops))
}

func (e *encoder) radialGradient(g RadialGradient) {
	e.point(g.Center)
	e.size(g.Radius)
	e.u32(uint32(g.Extend))
	e.u32(uint32(g.Stops))
}

func (e *encoder) command(cmd Command) {
	e.begin(cmd.Type())
	defer e.end()

	switch c := cmd.(type) {
	case PushClipAndScrollCommand:
		e.clipID(c.Info.ScrollNodeID)
		e.clipID(c.Info.ClipNodeID)
	case PushClipIDCommand:
		e.clipID(c.ID)
	case PopClipIDCommand, PopStackingContextCommand, PopAllShadowsCommand:
	case PushStackingContextCommand:
		e.info(c.PrimInfo)
		e.u32(uint32(c.ScrollPolicy))
		e.transform(c.Transform)
		e.u32(uint32(c.TransformStyle))
		e.transform(c.Perspective)
		e.u32(uint32(c.MixBlendMode))
		// #nosec G115 -- filter lists are short
		e.u32(uint32(len(c.Filters)))
		for _, f := range c.Filters {
			e.u32(uint32(f.Kind))
			e.f32(f.Amount)
		}
	case DefineClipCommand:
		e.clipID(c.ID)
		e.clipID(c.Parent)
		e.rect(c.Rect)
		e.complexClips(c.Complex)
	case DefineScrollFrameCommand:
		e.clipID(c.ID)
		e.clipID(c.Parent)
		e.rect(c.ContentRect)
		e.rect(c.ClipRect)
		e.complexClips(c.Complex)
		e.u32(uint32(c.Sensitivity))
	case DefineStickyFrameCommand:
		e.clipID(c.ID)
		e.clipID(c.Parent)
		e.rect(c.FrameRect)
		e.stickyMargin(c.Margins.Top)
		e.stickyMargin(c.Margins.Right)
		e.stickyMargin(c.Margins.Bottom)
		e.stickyMargin(c.Margins.Left)
		e.f32(c.VerticalOffsetBounds.Min)
		e.f32(c.VerticalOffsetBounds.Max)
		e.f32(c.HorizontalOffsetBounds.Min)
		e.f32(c.HorizontalOffsetBounds.Max)
		e.vector(c.PreviouslyAppliedOffset)
	case SetGradientStopsCommand:
		e.u32(uint32(c.Ref))
		// #nosec G115 -- stop lists are short
		e.u32(uint32(len(c.Stops)))
		for _, s := range c.Stops {
			e.f32(s.Offset)
			e.color(s.Color)
		}
	case RectCommand:
		e.info(c.PrimInfo)
		e.color(c.Color)
	case TextCommand:
		e.info(c.PrimInfo)
		e.u32(c.Font.Namespace)
		e.u32(c.Font.Index)
		e.color(c.Color)
		e.bool(c.Options != nil && c.Options.Subpixel)
		// #nosec G115 -- glyph runs are far below uint32 max
		e.u32(uint32(len(c.Glyphs)))
		for _, g := range c.Glyphs {
			e.u32(uint32(g.Index))
			e.point(g.Point)
		}
	case ImageCommand:
		e.info(c.PrimInfo)
		e.size(c.StretchSize)
		e.size(c.TileSpacing)
		e.u32(uint32(c.Rendering))
		e.u32(uint32(c.AlphaType))
		e.u32(c.Key.Namespace)
		e.u32(c.Key.Index)
	case BorderCommand:
		e.info(c.PrimInfo)
		e.sides(c.Widths)
		e.borderDetails(c.Details)
	case GradientCommand:
		e.info(c.PrimInfo)
		e.gradient(c.Gradient)
		e.size(c.TileSize)
		e.size(c.TileSpacing)
	case RadialGradientCommand:
		e.info(c.PrimInfo)
		e.radialGradient(c.Gradient)
		e.size(c.TileSize)
		e.size(c.TileSpacing)
	case LineCommand:
		e.info(c.PrimInfo)
		e.f32(c.WavyLineThickness)
		e.u32(uint32(c.Orientation))
		e.color(c.Color)
		e.u32(uint32(c.Style))
	case BoxShadowCommand:
		e.info(c.PrimInfo)
		e.rect(c.BoxBounds)
		e.vector(c.Offset)
		e.color(c.Color)
		e.f32(c.BlurRadius)
		e.f32(c.SpreadRadius)
		e.radius(c.BorderRadius)
		e.u32(uint32(c.ClipMode))
	case PushShadowCommand:
		e.info(c.PrimInfo)
		e.vector(c.Shadow.Offset)
		e.color(c.Shadow.Color)
		e.f32(c.Shadow.BlurRadius)
	case IframeCommand:
		e.info(c.PrimInfo)
		e.pipeline(c.Pipeline)
	}
}

// Encode serializes the list into its compact binary form.
func (d *DisplayList) Encode() []byte {
	e := encoder{
		tags: make([]byte, 0, len(d.commands)),
		data: make([]uint32, 0, len(d.commands)*16),
	}
	for _, cmd := range d.commands {
		e.command(cmd)
	}
	for len(e.tags)%4 != 0 {
		e.tags = append(e.tags, 0)
	}

	out := make([]byte, 0, headerWords*4+len(e.tags)+len(e.data)*4)
	out = binary.LittleEndian.AppendUint32(out, encodingMagic)
	out = binary.LittleEndian.AppendUint32(out, encodingVersion)
	out = binary.LittleEndian.AppendUint32(out, d.pipeline.Namespace)
	out = binary.LittleEndian.AppendUint32(out, d.pipeline.Index)
	out = binary.LittleEndian.AppendUint32(out, math.Float32bits(d.contentSize.Width))
	out = binary.LittleEndian.AppendUint32(out, math.Float32bits(d.contentSize.Height))
	// #nosec G115 -- command and word counts are bounded by memory
	out = binary.LittleEndian.AppendUint32(out, uint32(len(d.commands)))
	// #nosec G115 -- see above
	out = binary.LittleEndian.AppendUint32(out, uint32(len(e.data)))
	out = append(out, e.tags...)
	for _, w := range e.data {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}
