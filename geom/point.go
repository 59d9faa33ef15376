package geom

// Point is a position in layout pixels.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vector is a displacement in layout pixels.
type Vector struct {
	X, Y float32
}

// Vec is a convenience function to create a Vector.
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Size is an extent in layout pixels.
type Size struct {
	Width, Height float32
}

// Sz is a convenience function to create a Size.
func Sz(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// IsPositive reports whether both dimensions are strictly positive.
func (s Size) IsPositive() bool {
	return s.Width > 0 && s.Height > 0
}
