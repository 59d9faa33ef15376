package geom

// Rect is an axis-aligned rectangle in layout pixels.
type Rect struct {
	Origin Point
	Size   Size
}

// R is a convenience function to create a Rect from origin and size.
func R(x, y, w, h float32) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// MinX returns the left edge.
func (r Rect) MinX() float32 { return r.Origin.X }

// MinY returns the top edge.
func (r Rect) MinY() float32 { return r.Origin.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float32 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float32 { return r.Origin.Y + r.Size.Height }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Contains reports whether p lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// SideOffsets holds one value per box side, in CSS order.
type SideOffsets struct {
	Top, Right, Bottom, Left float32
}

// UniformSides returns offsets with the same value on every side.
func UniformSides(v float32) SideOffsets {
	return SideOffsets{Top: v, Right: v, Bottom: v, Left: v}
}

// BorderRadius holds the elliptical radii of the four corners.
type BorderRadius struct {
	TopLeft     Size
	TopRight    Size
	BottomLeft  Size
	BottomRight Size
}

// UniformRadius returns circular corners of radius r.
func UniformRadius(r float32) BorderRadius {
	s := Size{Width: r, Height: r}
	return BorderRadius{TopLeft: s, TopRight: s, BottomLeft: s, BottomRight: s}
}

// IsZero reports whether all corners are square.
func (b BorderRadius) IsZero() bool {
	return b == BorderRadius{}
}
