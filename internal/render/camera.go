package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/xform"
)

// Camera is a perspective camera looking at Target from Eye.
type Camera struct {
	Eye, Target, Up xform.Vec3

	// FovY is the vertical field of view in degrees.
	FovY      float32
	Near, Far float32
}

// DefaultCamera sits on the +Z axis at distance 15, looking at the origin
// with a 60° vertical field of view.
func DefaultCamera() Camera {
	return Camera{
		Eye:    xform.V3(0, 0, 15),
		Target: xform.V3(0, 0, 0),
		Up:     xform.V3(0, 1, 0),
		FovY:   60,
		Near:   1,
		Far:    100,
	}
}

// Viewport is the pixel rectangle a camera projects into. Y grows down.
type Viewport struct {
	X, Y, W, H int
}

func (v Viewport) aspect() float32 {
	return float32(v.W) / float32(v.H)
}

// projector maps world points to image pixels.
type projector struct {
	view, proj mgl32.Mat4
	vp         Viewport
	near       float32
}

func newProjector(c Camera, vp Viewport) projector {
	return projector{
		view: mgl32.LookAtV(c.Eye, c.Target, c.Up),
		proj: mgl32.Perspective(mgl32.DegToRad(c.FovY), vp.aspect(), c.Near, c.Far),
		vp:   vp,
		near: c.Near,
	}
}

// project returns the pixel position of a world point. ok is false when
// the point lies behind the near plane.
func (p projector) project(world xform.Vec3) (x, y float64, ok bool) {
	clip := p.proj.Mul4(p.view).Mul4x1(world.Vec4(1))
	if clip.W() < p.near {
		return 0, 0, false
	}
	win := mgl32.Project(world, p.view, p.proj, 0, 0, p.vp.W, p.vp.H)
	x = float64(p.vp.X) + float64(win.X())
	y = float64(p.vp.Y) + float64(p.vp.H) - float64(win.Y())
	return x, y, true
}
