package displaylist

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/displaylist/backend"
	"github.com/gogpu/displaylist/geom"
)

// lineThicknessRatio approximates a wavy line's thickness from its height.
const lineThicknessRatio = 0.33

// primitiveInfo builds the info shared by every primitive of an item.
func primitiveInfo(b *BaseItem) backend.PrimitiveInfo {
	info := backend.PrimitiveInfo{
		Rect:              b.Bounds.ToLayout(),
		LocalClip:         b.LocalClip,
		IsBackfaceVisible: true,
	}
	if b.Metadata.Pointing != nil {
		info.Tag = &backend.ItemTag{
			Node:   uint64(b.Metadata.Node),
			Cursor: *b.Metadata.Pointing,
		}
	}
	return info
}

// translate emits the commands of one item.
func (c *converter) translate(item Item) error {
	base := item.Base()
	switch it := item.(type) {
	case *SolidColorItem:
		c.sink.PushRect(primitiveInfo(base), it.Color)
	case *TextItem:
		if glyphs, _ := textGlyphs(it); len(glyphs) > 0 {
			c.sink.PushText(primitiveInfo(base), glyphs, it.Run.Font, it.Color, nil)
		}
	case *ImageItem:
		if it.Key != nil && it.StretchSize.IsPositive() {
			c.sink.PushImage(primitiveInfo(base), it.StretchSize, it.TileSpacing,
				it.Rendering, backend.AlphaTypePremultipliedAlpha, *it.Key)
		}
	case *BorderItem:
		details, err := c.borderDetails(it.Details)
		if err != nil {
			return err
		}
		c.sink.PushBorder(primitiveInfo(base), it.Widths, details)
	case *GradientItem:
		g := it.Gradient
		gradient := c.sink.CreateGradient(g.StartPoint, g.EndPoint, g.Stops, g.Extend)
		c.sink.PushGradient(primitiveInfo(base), gradient, it.Tile, it.TileSpacing)
	case *RadialGradientItem:
		g := it.Gradient
		gradient := c.sink.CreateRadialGradient(g.Center, g.Radius, g.Stops, g.Extend)
		c.sink.PushRadialGradient(primitiveInfo(base), gradient, it.Tile, it.TileSpacing)
	case *LineItem:
		c.sink.PushLine(primitiveInfo(base), lineThickness(base.Bounds),
			backend.LineOrientationHorizontal, it.Color, it.Style)
	case *BoxShadowItem:
		c.sink.PushBoxShadow(primitiveInfo(base), it.BoxBounds, it.Offset, it.Color,
			it.BlurRadius, it.SpreadRadius, it.BorderRadius, it.ClipMode)
	case *PushTextShadowItem:
		c.sink.PushShadow(primitiveInfo(base), backend.Shadow{
			Offset:     it.Offset,
			Color:      it.Color,
			BlurRadius: it.BlurRadius,
		})
	case *PopAllTextShadowsItem:
		c.sink.PopAllShadows()
	case *IframeItem:
		c.sink.PushIframe(primitiveInfo(base), it.Pipeline)
	case *PushStackingContextItem:
		return c.pushStackingContext(&it.StackingContext)
	case *PopStackingContextItem:
		if c.stacking == 0 {
			return ErrUnbalancedStackingContext
		}
		if err := c.sink.PopStackingContext(); err != nil {
			return err
		}
		c.stacking--
	case *DefineClipScrollNodeItem:
		return c.defineNode(it.NodeIndex)
	default:
		return ErrUnknownItem
	}
	return nil
}

// textGlyphs positions the glyphs of a text item. It returns the glyph
// instances to draw and the total pen advance, which includes whitespace
// glyphs even though they are not drawn.
func textGlyphs(it *TextItem) ([]backend.GlyphInstance, fixed.Int26_6) {
	if it.Run == nil {
		return nil, 0
	}
	run := it.Run
	x := it.BaselineOrigin.X.Fixed()
	y := it.BaselineOrigin.Y.Fixed()
	start := x

	var glyphs []backend.GlyphInstance
	for slice := range run.NaturalWordSlicesInVisualOrder(it.Range) {
		whitespace := slice.Glyphs.IsWhitespace()
		for g := range slice.Glyphs.GlyphsInRange(slice.Range) {
			advance := g.Advance
			if g.CharIsSpace {
				advance += run.ExtraWordSpacing
			}
			if !whitespace {
				glyphs = append(glyphs, backend.GlyphInstance{
					Index: g.ID,
					Point: geom.Pt(fixedPx(x+g.Offset.X), fixedPx(y+g.Offset.Y)),
				})
			}
			x += advance
		}
	}
	return glyphs, x - start
}

func fixedPx(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// lineThickness estimates the thickness of a wavy line from its bounds.
func lineThickness(bounds geom.AuRect) float32 {
	return float32(math.Ceil(float64(lineThicknessRatio * bounds.Size.Height.Px())))
}

// borderDetails converts border details, registering gradient stops for
// gradient borders.
func (c *converter) borderDetails(d BorderDetails) (backend.BorderDetails, error) {
	switch d := d.(type) {
	case NormalBorderDetails:
		return d.Border, nil
	case ImageBorderDetails:
		return d.Border, nil
	case GradientBorderDetails:
		g := d.Gradient
		return backend.GradientBorder{
			Gradient: c.sink.CreateGradient(g.StartPoint, g.EndPoint, g.Stops, g.Extend),
			Outset:   d.Outset,
		}, nil
	case RadialGradientBorderDetails:
		g := d.Gradient
		return backend.RadialGradientBorder{
			Gradient: c.sink.CreateRadialGradient(g.Center, g.Radius, g.Stops, g.Extend),
			Outset:   d.Outset,
		}, nil
	default:
		return nil, ErrUnknownItem
	}
}

// pushStackingContext opens a stacking context. Only real contexts reach
// the backend; pseudo contexts must have been flattened by the producer.
func (c *converter) pushStackingContext(sc *StackingContext) error {
	if sc.Type != StackingContextReal {
		return ErrPseudoStackingContext
	}
	c.sink.PushStackingContext(
		backend.NewPrimitiveInfo(sc.Bounds.ToLayout()),
		sc.ScrollPolicy,
		sc.Transform,
		sc.TransformStyle,
		sc.Perspective,
		sc.MixBlendMode,
		sc.Filters,
	)
	c.stacking++
	return nil
}
