package xform

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// singularEpsilon is the threshold on sqrt(R00² + R10²) below which the
// Y rotation is treated as ±90° (gimbal lock).
const singularEpsilon = 1e-6

// Decomposition is the set of components recovered from an affine matrix.
type Decomposition struct {
	Position Vec3
	Scale    Vec3
	Rotation Mat3
	Euler    Vec3 // ZYX angles in degrees

	PositionMatrix Mat4
	ScaleMatrix    Mat4
}

// Matrix recomposes d into T * R * S using its position, scale and Euler
// angles.
func (d Decomposition) Matrix() Mat4 {
	return Compose(d.Position, d.Scale, d.Euler)
}

// Decompose extracts position, scale, rotation and Euler angles from m.
//
// The upper-left 3x3 block of m must be a rotation times a positive
// scale for the result to reproduce m. A zero-length axis produces
// NaN/Inf in Rotation and Euler. A negative scale cannot be told apart
// from a rotation and comes back positive; see IsMirrored.
func Decompose(m Mat4) Decomposition {
	scale := Scale(m)
	rot := rotationFromScale(m, scale)

	l := Logger()
	if scale[0] == 0 || scale[1] == 0 || scale[2] == 0 {
		l.Debug("xform: degenerate scale axis", slog.Any("scale", scale))
	}
	if isSingular(rot) {
		l.Debug("xform: gimbal lock, z angle forced to 0")
	}

	return Decomposition{
		Position:       Position(m),
		Scale:          scale,
		Rotation:       rot,
		Euler:          EulerFromRotation(rot),
		PositionMatrix: PositionMatrix(m),
		ScaleMatrix:    ScaleMatrix(m),
	}
}

// Position returns the translation stored in column 3 of m.
func Position(m Mat4) Vec3 {
	return m.Col(3).Vec3()
}

// Scale returns the lengths of the first three columns of the linear
// block of m. The result is never negative.
func Scale(m Mat4) Vec3 {
	return Vec3{
		m.Col(0).Vec3().Len(),
		m.Col(1).Vec3().Len(),
		m.Col(2).Vec3().Len(),
	}
}

// RotationMatrix returns the linear block of m with each column divided
// by its scale factor. A zero scale factor yields NaN/Inf in that column.
func RotationMatrix(m Mat4) Mat3 {
	return rotationFromScale(m, Scale(m))
}

func rotationFromScale(m Mat4, scale Vec3) Mat3 {
	return mgl32.Mat3FromCols(
		divide(m.Col(0).Vec3(), scale[0]),
		divide(m.Col(1).Vec3(), scale[1]),
		divide(m.Col(2).Vec3(), scale[2]),
	)
}

func divide(v Vec3, d float32) Vec3 {
	return Vec3{v[0] / d, v[1] / d, v[2] / d}
}

// EulerZYX returns the ZYX Euler angles of m in degrees.
func EulerZYX(m Mat4) Vec3 {
	return EulerFromRotation(RotationMatrix(m))
}

// EulerFromRotation extracts ZYX Euler angles in degrees from a pure
// rotation matrix.
//
// Near Y = ±90° the X and Z rotations act about the same axis and only
// their combination is recoverable. In that case Z is reported as 0 and
// X carries the whole combined angle.
func EulerFromRotation(r Mat3) Vec3 {
	sy := math32.Sqrt(r.At(0, 0)*r.At(0, 0) + r.At(1, 0)*r.At(1, 0))

	var x, y, z float32
	if sy >= singularEpsilon {
		x = math32.Atan2(r.At(2, 1), r.At(2, 2))
		y = math32.Atan2(-r.At(2, 0), sy)
		z = math32.Atan2(r.At(1, 0), r.At(0, 0))
	} else {
		x = math32.Atan2(-r.At(1, 2), r.At(1, 1))
		y = math32.Atan2(-r.At(2, 0), sy)
		z = 0
	}

	return Vec3{mgl32.RadToDeg(x), mgl32.RadToDeg(y), mgl32.RadToDeg(z)}
}

// PositionMatrix returns the translation-only part of m: the identity with
// column 3 replaced by (Position(m), 1).
func PositionMatrix(m Mat4) Mat4 {
	return Translation(Position(m))
}

// ScaleMatrix returns the scale-only part of m: diag(Scale(m), 1).
func ScaleMatrix(m Mat4) Mat4 {
	return Scaling(Scale(m))
}

// IsMirrored reports whether the linear block of m has a negative
// determinant, i.e. an odd number of negative scale factors went into it.
func IsMirrored(m Mat4) bool {
	return m.Mat3().Det() < 0
}

// IsGimbalLocked reports whether the rotation of m sits at the Y = ±90°
// singularity of the ZYX convention.
func IsGimbalLocked(m Mat4) bool {
	return isSingular(RotationMatrix(m))
}

// isSingular mirrors the branch in EulerFromRotation, so NaN counts as
// singular.
func isSingular(r Mat3) bool {
	sy := math32.Sqrt(r.At(0, 0)*r.At(0, 0) + r.At(1, 0)*r.At(1, 0))
	return !(sy >= singularEpsilon)
}
