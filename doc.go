// Package xform composes and decomposes 3D affine transforms.
//
// # Overview
//
// A transform is described by three vectors: a position, a per-axis
// scale and a rotation given as Euler angles in degrees. Compose turns
// them into a single 4x4 matrix and Decompose recovers them from one.
//
//	import "github.com/gogpu/xform"
//
//	m := xform.Compose(
//		xform.V3(1, 2, 3),   // position
//		xform.V3(2, 2, 2),   // scale
//		xform.V3(0, 0, 90),  // rotation, degrees
//	)
//	d := xform.Decompose(m)
//	// d.Position == (1, 2, 3), d.Scale ≈ (2, 2, 2), d.Euler ≈ (0, 0, 90)
//
// # Conventions
//
//   - Vectors and matrices are single precision and backed by mgl32.
//   - Matrices are column-major and act on column vectors: in a*b, b is
//     applied first.
//   - Composition order is T * R * S: scale in local axes, then rotate,
//     then translate in world space.
//   - Rotation is Euler ZYX: R = Rz * Ry * Rx.
//
// # Degenerate input
//
// All functions are total over IEEE-754 floats and never return errors.
// A zero scale axis makes RotationMatrix divide by zero and yields
// NaN/Inf. A negative scale is folded into the rotation and Scale comes
// back positive; IsMirrored reports the lost sign. At Y = ±90° (gimbal
// lock) EulerZYX reports Z = 0 and puts the combined angle in X.
//
// All functions are pure and safe for concurrent use.
package xform
