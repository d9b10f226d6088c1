package xform

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform holds the three inputs of a composition: a position in world
// units, a per-axis scale factor and Euler ZYX angles in degrees.
type Transform struct {
	Position Vec3
	Scale    Vec3
	Rotation Vec3
}

// DefaultTransform returns the neutral transform: no translation, unit
// scale and no rotation. Its matrix is the identity.
func DefaultTransform() Transform {
	return Transform{
		Position: V3(0, 0, 0),
		Scale:    V3(1, 1, 1),
		Rotation: V3(0, 0, 0),
	}
}

// Matrix composes t into a single affine matrix. See Compose.
func (t Transform) Matrix() Mat4 {
	return Compose(t.Position, t.Scale, t.Rotation)
}

// Compose builds the affine matrix T * R * S from a position, a scale and
// Euler ZYX angles in degrees.
//
// Scale is applied first in the object's local axes, then the rotation,
// then the translation in world space. Any finite input is accepted and
// no range is enforced; NaN and Inf propagate into the result.
func Compose(position, scale, eulerDeg Vec3) Mat4 {
	t := Translation(position)
	r := Embed(RotationZYX(eulerDeg))
	s := Scaling(scale)
	return Multiply(Multiply(t, r), s)
}

// RotationZYX returns the rotation Rz * Ry * Rx for Euler angles given in
// degrees. The entries are written out in closed form.
func RotationZYX(eulerDeg Vec3) Mat3 {
	rx := mgl32.DegToRad(eulerDeg[0])
	ry := mgl32.DegToRad(eulerDeg[1])
	rz := mgl32.DegToRad(eulerDeg[2])

	cx, sx := math32.Cos(rx), math32.Sin(rx)
	cy, sy := math32.Cos(ry), math32.Sin(ry)
	cz, sz := math32.Cos(rz), math32.Sin(rz)

	return mgl32.Mat3FromCols(
		Vec3{cy * cz, cy * sz, -sy},
		Vec3{sx*sy*cz - cx*sz, sx*sy*sz + cx*cz, sx * cy},
		Vec3{cx*sy*cz + sx*sz, cx*sy*sz - sx*cz, cx * cy},
	)
}
