package xform

import "github.com/go-gl/mathgl/mgl32"

// Vec3 is a 3-component single-precision vector.
// It is used for positions (world units), scale factors and Euler angles
// in degrees.
type Vec3 = mgl32.Vec3

// Vec4 is a homogeneous 4-component vector.
type Vec4 = mgl32.Vec4

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}
