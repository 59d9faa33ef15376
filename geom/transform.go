package geom

import "golang.org/x/image/math/f32"

// Transform is a 3-D homogeneous transformation in row-major order, as used
// by stacking contexts for CSS transforms and perspective.
//
// m[4*r + c] is the element in the r'th row and c'th column. Points are
// treated as column vectors, so translation lives in the last column.
type Transform struct {
	m f32.Mat4
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// FromMat4 wraps a row-major matrix.
func FromMat4(m f32.Mat4) Transform {
	return Transform{m: m}
}

// Translation returns a transform moving points by (x, y, z).
func Translation(x, y, z float32) Transform {
	t := Identity()
	t.m[3] = x
	t.m[7] = y
	t.m[11] = z
	return t
}

// Scaling returns a transform scaling by (sx, sy, sz).
func Scaling(sx, sy, sz float32) Transform {
	t := Identity()
	t.m[0] = sx
	t.m[5] = sy
	t.m[10] = sz
	return t
}

// Perspective returns a CSS perspective transform for the given distance.
// A non-positive distance yields the identity.
func Perspective(d float32) Transform {
	t := Identity()
	if d > 0 {
		t.m[14] = -1 / d
	}
	return t
}

// Mat4 returns the underlying row-major matrix.
func (t Transform) Mat4() f32.Mat4 {
	return t.m
}

// At returns the element at row r, column c.
func (t Transform) At(r, c int) float32 {
	return t.m[4*r+c]
}

// Mul returns the composition t × o, so that o is applied first.
func (t Transform) Mul(o Transform) Transform {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += t.m[4*r+k] * o.m[4*k+c]
			}
			out[4*r+c] = sum
		}
	}
	return Transform{m: out}
}

// TransformPoint applies t to a 2-D point at z = 0 and projects the result.
func (t Transform) TransformPoint(p Point) Point {
	x := t.m[0]*p.X + t.m[1]*p.Y + t.m[3]
	y := t.m[4]*p.X + t.m[5]*p.Y + t.m[7]
	w := t.m[12]*p.X + t.m[13]*p.Y + t.m[15]
	if w != 0 && w != 1 {
		x /= w
		y /= w
	}
	return Point{X: x, Y: y}
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// Is2D reports whether t only affects x and y, with no perspective.
func (t Transform) Is2D() bool {
	m := t.m
	return m[2] == 0 && m[6] == 0 &&
		m[8] == 0 && m[9] == 0 && m[10] == 1 && m[11] == 0 &&
		m[12] == 0 && m[13] == 0 && m[14] == 0 && m[15] == 1
}
