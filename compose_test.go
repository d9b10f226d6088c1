package xform

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func TestComposeIdentity(t *testing.T) {
	got := Compose(V3(0, 0, 0), V3(1, 1, 1), V3(0, 0, 0))
	if got != mgl32.Ident4() {
		t.Errorf("Compose(0, 1, 0) = %v, want identity", got)
	}
	if got := DefaultTransform().Matrix(); got != mgl32.Ident4() {
		t.Errorf("DefaultTransform().Matrix() = %v, want identity", got)
	}
}

func TestRotationZYXMatchesElementaryProduct(t *testing.T) {
	tests := []struct {
		name  string
		euler Vec3
	}{
		{"zero", V3(0, 0, 0)},
		{"x only", V3(30, 0, 0)},
		{"y only", V3(0, -45, 0)},
		{"z only", V3(0, 0, 120)},
		{"mixed", V3(10, 20, 30)},
		{"negative", V3(-170, 60, -35)},
		{"gimbal", V3(30, 90, 45)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx := mgl32.Rotate3DX(mgl32.DegToRad(tt.euler[0]))
			ry := mgl32.Rotate3DY(mgl32.DegToRad(tt.euler[1]))
			rz := mgl32.Rotate3DZ(mgl32.DegToRad(tt.euler[2]))
			want := rz.Mul3(ry).Mul3(rx)

			got := RotationZYX(tt.euler)
			if !got.ApproxEqualThreshold(want, epsilon) {
				t.Errorf("RotationZYX(%v) = %v, want Rz*Ry*Rx = %v", tt.euler, got, want)
			}
			if det := got.Det(); !mgl32.FloatEqualThreshold(det, 1, epsilon) {
				t.Errorf("det(RotationZYX(%v)) = %v, want 1", tt.euler, det)
			}
		})
	}
}

func TestComposeOrder(t *testing.T) {
	p := V3(1, 2, 3)
	s := V3(2, 2, 2)
	e := V3(0, 0, 90)
	point := V3(1, 0, 0)

	m := Compose(p, s, e)
	got := TransformPoint(m, point)

	// Scale, then rotate, then translate, one step at a time.
	step := TransformPoint(Scaling(s), point)
	step = RotationZYX(e).Mul3x1(step)
	step = step.Add(p)

	if !got.ApproxEqualThreshold(step, epsilon) {
		t.Errorf("Compose() applied to %v = %v, step by step = %v", point, got, step)
	}
	if want := V3(1, 4, 3); !got.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("Compose() applied to %v = %v, want %v", point, got, want)
	}
}

func TestComposeBottomRow(t *testing.T) {
	inputs := []Transform{
		DefaultTransform(),
		{Position: V3(5, -5, 2), Scale: V3(0.1, 2, 1), Rotation: V3(180, -180, 45)},
		{Position: V3(-1e3, 1e3, 0), Scale: V3(-1, 1, 3), Rotation: V3(720, 33, -1)},
	}
	for _, in := range inputs {
		m := in.Matrix()
		if !IsAffine(m) {
			t.Errorf("Compose(%+v) bottom row = %v, want [0 0 0 1]", in, m.Row(3))
		}
	}
}

func TestComposeDeterministic(t *testing.T) {
	p, s, e := V3(0.3, -1.7, 4.2), V3(0.5, 1.25, 1.9), V3(-33.3, 71.1, 149.9)
	first := Compose(p, s, e)
	for i := 0; i < 100; i++ {
		if got := Compose(p, s, e); got != first {
			t.Fatalf("Compose() call %d = %v, first call = %v", i, got, first)
		}
	}
	d := Decompose(first)
	for i := 0; i < 100; i++ {
		if got := Decompose(first); got != d {
			t.Fatalf("Decompose() call %d = %+v, first call = %+v", i, got, d)
		}
	}
}

func TestComposeNaNPropagates(t *testing.T) {
	m := Compose(V3(math32.NaN(), 0, 0), V3(1, 1, 1), V3(0, 0, 0))
	if got := m.At(0, 3); !math32.IsNaN(got) {
		t.Errorf("translation x = %v, want NaN", got)
	}
}
