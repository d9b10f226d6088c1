package xform

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes the package logger into a buffer at debug level for
// the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Cleanup(func() { SetLogger(nil) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	ctx := context.Background()

	tests := []struct {
		name  string
		check func() bool
	}{
		{"disabled at debug", func() bool { return !h.Enabled(ctx, slog.LevelDebug) }},
		{"disabled at error", func() bool { return !h.Enabled(ctx, slog.LevelError) }},
		{"handle discards", func() bool { return h.Handle(ctx, slog.Record{}) == nil }},
		{"attrs stay silent", func() bool {
			_, ok := h.WithAttrs([]slog.Attr{slog.Bool("gimbal", true)}).(nopHandler)
			return ok
		}},
		{"group stays silent", func() bool {
			_, ok := h.WithGroup("decompose").(nopHandler)
			return ok
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check() {
				t.Errorf("nopHandler: %s failed", tt.name)
			}
		})
	}
}

func TestDecomposeSilentByDefault(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("default logger is enabled at debug level")
	}
	// Degenerate input must not panic with no logger configured.
	Decompose(Scaling(V3(0, 0, 0)))
}

func TestSetLogger(t *testing.T) {
	buf := captureLogs(t)

	Logger().Info("configured", slog.String("pkg", "xform"))
	if !strings.Contains(buf.String(), "configured") {
		t.Errorf("custom logger not used, got: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) left an enabled logger")
	}
}

func TestDecomposeLogsDegeneracies(t *testing.T) {
	tests := []struct {
		name  string
		m     Mat4
		wants []string
	}{
		{"regular", Compose(V3(1, 2, 3), V3(1, 1, 1), V3(10, 20, 30)), nil},
		{"zero scale axis", Compose(V3(0, 0, 0), V3(0, 1, 1), V3(0, 0, 0)), []string{"degenerate scale axis"}},
		{"gimbal lock", Compose(V3(0, 0, 0), V3(1, 1, 1), V3(30, 90, 45)), []string{"gimbal lock"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			Decompose(tt.m)
			if tt.wants == nil && buf.Len() != 0 {
				t.Errorf("logged %q, want no output", buf.String())
			}
			for _, want := range tt.wants {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("log missing %q, got: %q", want, buf.String())
				}
			}
		})
	}
}

func TestSetLoggerDuringDecompose(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	m := Compose(V3(0, 0, 0), V3(1, 1, 1), V3(0, 90, 0))

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Decompose(m)
		}()
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			} else {
				SetLogger(nil)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkDecomposeSilentLogger(b *testing.B) {
	SetLogger(nil)
	m := Compose(V3(0, 0, 0), V3(1, 1, 1), V3(0, 90, 0))
	b.ReportAllocs()
	for b.Loop() {
		_ = Decompose(m)
	}
}
