// Package render draws a transform as a PNG: a cube placed by the
// composed matrix inside a perspective viewport, next to tables of the
// matrix and its decomposition.
package render

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/xform"
)

const (
	margin     = 40.0
	panelPad   = 12.0
	panelGap   = 20.0
	cubeHalf   = 1.0 // the cube is 2x2x2, centred on its local origin
	axisLength = 1.6
)

// cubeEdges indexes cubeCorners.
var cubeEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func cubeCorners() [8]xform.Vec3 {
	var out [8]xform.Vec3
	for i := range out {
		x, y, z := float32(-cubeHalf), float32(-cubeHalf), float32(-cubeHalf)
		if i&1 != 0 {
			x = cubeHalf
		}
		if i&2 != 0 {
			y = cubeHalf
		}
		if i&4 != 0 {
			z = cubeHalf
		}
		out[i] = xform.V3(x, y, z)
	}
	return out
}

// Renderer draws transforms. It owns the font source and must be closed.
type Renderer struct {
	opts   options
	source *text.FontSource
	body   text.Face
	head   text.Face
}

// New creates a Renderer using the Go Mono font.
func New(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	source, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}

	return &Renderer{
		opts:   o,
		source: source,
		body:   source.Face(o.fontSize),
		head:   source.Face(o.fontSize * 4 / 3),
	}, nil
}

// Close releases the font source.
func (r *Renderer) Close() error {
	return r.source.Close()
}

// Size returns the image size in pixels.
func (r *Renderer) Size() (width, height int) {
	return r.opts.width, r.opts.height
}

// Viewport returns the rectangle the cube is drawn in.
func (r *Renderer) Viewport() Viewport {
	w := r.opts.width * 5 / 11
	h := r.opts.height * 2 / 5
	return Viewport{X: int(margin), Y: int(margin) + 30, W: w, H: h}
}

// Image renders t and returns the result.
func (r *Renderer) Image(t xform.Transform) image.Image {
	dc := gg.NewContext(r.opts.width, r.opts.height)
	defer func() { _ = dc.Close() }()
	r.Draw(dc, t)
	return dc.Image()
}

// WritePNG renders t and encodes it as PNG to w.
func (r *Renderer) WritePNG(w io.Writer, t xform.Transform) error {
	dc := gg.NewContext(r.opts.width, r.opts.height)
	defer func() { _ = dc.Close() }()
	r.Draw(dc, t)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG renders t into the file at path.
func (r *Renderer) SavePNG(path string, t xform.Transform) error {
	dc := gg.NewContext(r.opts.width, r.opts.height)
	defer func() { _ = dc.Close() }()
	r.Draw(dc, t)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	xform.Logger().Debug("render: saved", slog.String("path", path))
	return nil
}

// Draw paints the whole frame for t onto dc.
func (r *Renderer) Draw(dc *gg.Context, t xform.Transform) {
	dc.ClearWithColor(gg.White)

	vp := r.Viewport()
	dc.SetFont(r.head)
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawString("3D Visualization", float64(vp.X), float64(vp.Y)-12)

	r.drawViewport(dc, vp, t.Matrix())

	// Inputs under the viewport, matrices in a column on the right.
	tables := Tables(t)
	x := float64(vp.X)
	y := float64(vp.Y+vp.H) + panelGap
	r.drawTable(dc, tables[0], x, y)

	x = float64(vp.X+vp.W) + margin
	y = float64(vp.Y)
	colY := [2]float64{y, y}
	colW := (float64(r.opts.width) - x - margin) / 2
	for i, tb := range tables[1:] {
		col := i % 2
		h := r.drawTable(dc, tb, x+float64(col)*colW, colY[col])
		colY[col] += h + panelGap
	}
}

func (r *Renderer) drawViewport(dc *gg.Context, vp Viewport, m xform.Mat4) {
	dc.SetRGBA(0, 0, 0, 0.1)
	dc.DrawRoundedRectangle(float64(vp.X), float64(vp.Y), float64(vp.W), float64(vp.H), 15)
	_ = dc.Fill()

	p := newProjector(r.opts.camera, vp)
	corners := cubeCorners()
	var screen [8][2]float64
	var visible [8]bool
	for i, c := range corners {
		screen[i][0], screen[i][1], visible[i] = p.project(xform.TransformPoint(m, c))
	}

	dc.SetRGB(0.1, 0.3, 0.9)
	dc.SetLineWidth(2)
	drawn := 0
	for _, e := range cubeEdges {
		a, b := e[0], e[1]
		if !visible[a] || !visible[b] {
			continue
		}
		dc.DrawLine(screen[a][0], screen[a][1], screen[b][0], screen[b][1])
		drawn++
	}
	_ = dc.Stroke()
	if drawn < len(cubeEdges) {
		xform.Logger().Debug("render: cube clipped by near plane", slog.Int("edges", drawn))
	}

	// Local axes of the object: X red, Y green, Z blue.
	origin := xform.TransformPoint(m, xform.V3(0, 0, 0))
	ox, oy, ok := p.project(origin)
	if !ok {
		return
	}
	axes := [3]struct {
		dir     xform.Vec3
		r, g, b float64
	}{
		{xform.V3(axisLength, 0, 0), 0.9, 0.2, 0.2},
		{xform.V3(0, axisLength, 0), 0.2, 0.7, 0.2},
		{xform.V3(0, 0, axisLength), 0.2, 0.2, 0.9},
	}
	dc.SetLineWidth(3)
	for _, a := range axes {
		ax, ay, ok := p.project(xform.TransformPoint(m, a.dir))
		if !ok {
			continue
		}
		dc.SetRGB(a.r, a.g, a.b)
		dc.DrawLine(ox, oy, ax, ay)
		_ = dc.Stroke()
	}
}

// drawTable draws tb with its top-left corner at (x, y) and returns the
// height used.
func (r *Renderer) drawTable(dc *gg.Context, tb Table, x, y float64) float64 {
	dc.SetFont(r.body)
	_, lineH := dc.MeasureString("0")
	cellW, _ := dc.MeasureString("-00.000")

	lines := 1 + len(tb.Rows)
	if tb.Note != "" {
		lines++
	}
	cols := 0
	for _, row := range tb.Rows {
		cols = max(cols, len(row))
	}
	firstW := cellW
	for _, row := range tb.Rows {
		if len(row) > 0 {
			w, _ := dc.MeasureString(row[0])
			firstW = max(firstW, w)
		}
	}
	w := 2*panelPad + firstW + float64(max(cols-1, 0))*(cellW+8)
	h := 2*panelPad + float64(lines)*lineH*1.4

	dc.SetRGBA(0.5, 0.5, 0.5, 0.1)
	dc.DrawRoundedRectangle(x, y, w, h, 10)
	_ = dc.Fill()

	baseline := y + panelPad + lineH
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawString(tb.Title, x+panelPad, baseline)
	if tb.Note != "" {
		baseline += lineH * 1.4
		dc.SetRGB(0.3, 0.3, 0.3)
		dc.DrawString(tb.Note, x+panelPad, baseline)
	}

	dc.SetRGB(0.15, 0.15, 0.15)
	for _, row := range tb.Rows {
		baseline += lineH * 1.4
		right := x + panelPad + firstW
		for c, v := range row {
			if c > 0 {
				right += cellW + 8
			}
			dc.DrawStringAnchored(v, right, baseline, 1, 0)
		}
	}
	return h
}
