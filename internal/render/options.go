package render

import "github.com/gogpu/xform"

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := render.New(render.WithSize(1280, 800), render.WithFontSize(14))
type Option func(*options)

// options holds optional configuration for a Renderer.
type options struct {
	width, height int
	fontSize      float64
	camera        Camera
}

// defaultOptions returns a 1100x750 canvas and a camera 15 units in
// front of the origin.
func defaultOptions() options {
	return options{
		width:    1100,
		height:   750,
		fontSize: 14,
		camera:   DefaultCamera(),
	}
}

// WithSize sets the image size in pixels. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width = width
			o.height = height
		}
	}
}

// WithFontSize sets the size in points of the table text. Headings are
// drawn a third larger.
func WithFontSize(points float64) Option {
	return func(o *options) {
		if points > 0 {
			o.fontSize = points
		}
	}
}

// WithCamera replaces the viewport camera.
func WithCamera(c Camera) Option {
	return func(o *options) {
		o.camera = c
	}
}

// WithEye moves the default camera's eye, keeping it aimed at the origin.
func WithEye(eye xform.Vec3) Option {
	return func(o *options) {
		o.camera.Eye = eye
	}
}
