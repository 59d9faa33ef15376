package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// AuPerPx is the number of app units in one layout pixel.
const AuPerPx = 60

// Au is a length in app units.
type Au int32

// AuFromPx converts a pixel length to app units, rounding to nearest.
func AuFromPx(px float32) Au {
	return Au(math.Round(float64(px) * AuPerPx))
}

// Px returns the length in layout pixels.
func (a Au) Px() float32 {
	return float32(a) / AuPerPx
}

// Fixed returns the length as a 26.6 fixed-point pixel value, the unit
// glyph advances are expressed in.
func (a Au) Fixed() fixed.Int26_6 {
	// a * 64 / 60, rounded
	return fixed.Int26_6((int64(a)*64 + AuPerPx/2) / AuPerPx)
}

// AuPoint is a point in app units.
type AuPoint struct {
	X, Y Au
}

// ToLayout converts the point to layout pixels.
func (p AuPoint) ToLayout() Point {
	return Point{X: p.X.Px(), Y: p.Y.Px()}
}

// AuSize is a size in app units.
type AuSize struct {
	Width, Height Au
}

// ToLayout converts the size to layout pixels.
func (s AuSize) ToLayout() Size {
	return Size{Width: s.Width.Px(), Height: s.Height.Px()}
}

// AuRect is an axis-aligned rectangle in app units.
type AuRect struct {
	Origin AuPoint
	Size   AuSize
}

// AuRectFromPx builds an app unit rectangle from pixel coordinates.
func AuRectFromPx(x, y, w, h float32) AuRect {
	return AuRect{
		Origin: AuPoint{X: AuFromPx(x), Y: AuFromPx(y)},
		Size:   AuSize{Width: AuFromPx(w), Height: AuFromPx(h)},
	}
}

// MaxX returns the right edge.
func (r AuRect) MaxX() Au { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge.
func (r AuRect) MaxY() Au { return r.Origin.Y + r.Size.Height }

// IsEmpty reports whether the rectangle has no area.
func (r AuRect) IsEmpty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Union returns the smallest rectangle containing both r and o.
// An empty rectangle does not contribute.
func (r AuRect) Union(o AuRect) AuRect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0 := min(r.Origin.X, o.Origin.X)
	y0 := min(r.Origin.Y, o.Origin.Y)
	x1 := max(r.MaxX(), o.MaxX())
	y1 := max(r.MaxY(), o.MaxY())
	return AuRect{
		Origin: AuPoint{X: x0, Y: y0},
		Size:   AuSize{Width: x1 - x0, Height: y1 - y0},
	}
}

// ToLayout converts the rectangle to layout pixels.
func (r AuRect) ToLayout() Rect {
	return Rect{Origin: r.Origin.ToLayout(), Size: r.Size.ToLayout()}
}
