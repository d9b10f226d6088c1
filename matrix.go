package xform

import "github.com/go-gl/mathgl/mgl32"

// Mat3 is a 3x3 matrix stored as three columns of three floats.
type Mat3 = mgl32.Mat3

// Mat4 is a 4x4 matrix stored as four columns of four floats.
//
// Matrices built by this package are affine: the bottom row is
// [0, 0, 0, 1]. Points are column vectors, so in a product A*B the
// matrix B is applied first.
type Mat4 = mgl32.Mat4

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return mgl32.Ident4()
}

// Translation creates a matrix that moves points by p.
func Translation(p Vec3) Mat4 {
	return mgl32.Translate3D(p[0], p[1], p[2])
}

// Scaling creates a diagonal matrix diag(s.x, s.y, s.z, 1).
func Scaling(s Vec3) Mat4 {
	return mgl32.Diag4(s.Vec4(1))
}

// Embed places a 3x3 linear block in the upper-left corner of a 4x4
// matrix with zero translation and a [0, 0, 0, 1] bottom row.
func Embed(r Mat3) Mat4 {
	return mgl32.Mat4FromCols(
		r.Col(0).Vec4(0),
		r.Col(1).Vec4(0),
		r.Col(2).Vec4(0),
		Vec4{0, 0, 0, 1},
	)
}

// Multiply multiplies two matrices (a * b).
// The result applies b first, then a.
func Multiply(a, b Mat4) Mat4 {
	return a.Mul4(b)
}

// TransformPoint applies m to a point (w = 1).
func TransformPoint(m Mat4, p Vec3) Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformVector applies m to a direction (w = 0), ignoring translation.
func TransformVector(m Mat4, v Vec3) Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}

// IsAffine reports whether the bottom row of m is exactly [0, 0, 0, 1].
func IsAffine(m Mat4) bool {
	return m.At(3, 0) == 0 && m.At(3, 1) == 0 && m.At(3, 2) == 0 && m.At(3, 3) == 1
}

// IsTranslationOnly returns true if the linear block of m is the
// identity and m is affine.
func IsTranslationOnly(m Mat4) bool {
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			want := float32(0)
			if row == col {
				want = 1
			}
			if m.At(row, col) != want {
				return false
			}
		}
	}
	return IsAffine(m)
}

// IsScaleOnly returns true if m has no rotation or shear: every
// off-diagonal entry of the linear block is zero. Translation is allowed.
func IsScaleOnly(m Mat4) bool {
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			if row != col && m.At(row, col) != 0 {
				return false
			}
		}
	}
	return IsAffine(m)
}
