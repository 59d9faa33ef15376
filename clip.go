package displaylist

import (
	"github.com/gogpu/displaylist/backend"
	"github.com/gogpu/displaylist/geom"
)

// BorderRadii holds the corner radii of a rounded rectangle in app units.
type BorderRadii struct {
	TopLeft     geom.AuSize
	TopRight    geom.AuSize
	BottomLeft  geom.AuSize
	BottomRight geom.AuSize
}

// UniformRadii returns radii of r on every corner.
func UniformRadii(r geom.Au) BorderRadii {
	s := geom.AuSize{Width: r, Height: r}
	return BorderRadii{TopLeft: s, TopRight: s, BottomLeft: s, BottomRight: s}
}

// ToBorderRadius converts the radii to layout pixels.
func (r BorderRadii) ToBorderRadius() geom.BorderRadius {
	return geom.BorderRadius{
		TopLeft:     r.TopLeft.ToLayout(),
		TopRight:    r.TopRight.ToLayout(),
		BottomLeft:  r.BottomLeft.ToLayout(),
		BottomRight: r.BottomRight.ToLayout(),
	}
}

// ComplexClippingRegion is a rounded rectangle that further restricts a
// clipping region.
type ComplexClippingRegion struct {
	Rect  geom.AuRect
	Radii BorderRadii
}

// ClippingRegion is a rectangle intersected with any number of rounded
// rectangles.
type ClippingRegion struct {
	Main    geom.AuRect
	Complex []ComplexClippingRegion
}

// RectRegion returns a region clipping to r only.
func RectRegion(r geom.AuRect) ClippingRegion {
	return ClippingRegion{Main: r}
}

// complexClips converts the rounded sub-regions, in order, to backend
// regions that clip to their inside.
func (c ClippingRegion) complexClips() []backend.ComplexClipRegion {
	if len(c.Complex) == 0 {
		return nil
	}
	out := make([]backend.ComplexClipRegion, len(c.Complex))
	for i, r := range c.Complex {
		out[i] = backend.ComplexClipRegion{
			Rect:  r.Rect.ToLayout(),
			Radii: r.Radii.ToBorderRadius(),
			Mode:  backend.ClipModeClip,
		}
	}
	return out
}
