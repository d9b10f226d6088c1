package xform

import "testing"

// BenchmarkCompose measures a full T*R*S composition, the work done on
// every input change.
func BenchmarkCompose(b *testing.B) {
	p, s, e := V3(1, 2, 3), V3(0.5, 1.5, 2), V3(30, -45, 60)
	b.ReportAllocs()
	for b.Loop() {
		_ = Compose(p, s, e)
	}
}

// BenchmarkDecompose covers both branches of the Euler extraction.
func BenchmarkDecompose(b *testing.B) {
	cases := []struct {
		name  string
		euler Vec3
	}{
		{"regular", V3(30, -45, 60)},
		{"gimbal", V3(30, 90, 45)},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			m := Compose(V3(1, 2, 3), V3(0.5, 1.5, 2), c.euler)
			b.ReportAllocs()
			for b.Loop() {
				_ = Decompose(m)
			}
		})
	}
}
