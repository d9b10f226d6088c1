// Command xformdemo renders a cube placed by a position, scale and
// rotation, together with the composed matrix and its decomposition.
//
// Usage:
//
//	xformdemo -position 1,2,3 -scale 2,2,2 -rotation 0,0,90 -output out.png
//	xformdemo -config scene.yaml -watch
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/xform"
	"github.com/gogpu/xform/internal/render"
	"github.com/gogpu/xform/internal/scene"
	"github.com/gogpu/xform/internal/watch"
)

type config struct {
	configPath string
	output     string
	width      int
	height     int
	watch      bool
	clamp      bool
	print      bool
	verbose    bool

	// Set only when given on the command line.
	position, scale, rotation *scene.Vector
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg                     config
		position, scl, rotation scene.Vector
	)
	fs := flag.NewFlagSet("xformdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.configPath, "config", "", "YAML scene file")
	fs.StringVar(&cfg.output, "output", "xform.png", "output PNG file")
	fs.IntVar(&cfg.width, "width", 1100, "image width")
	fs.IntVar(&cfg.height, "height", 750, "image height")
	fs.BoolVar(&cfg.watch, "watch", false, "re-render whenever the scene file changes")
	fs.BoolVar(&cfg.clamp, "clamp", true, "clamp inputs to the slider ranges")
	fs.BoolVar(&cfg.print, "print", false, "print the effective scene and the matrix tables to stdout")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.Var(&position, "position", "position x,y,z (overrides the scene file)")
	fs.Var(&scl, "scale", "scale x,y,z (overrides the scene file)")
	fs.Var(&rotation, "rotation", "Euler ZYX rotation x,y,z in degrees (overrides the scene file)")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "position":
			cfg.position = &position
		case "scale":
			cfg.scale = &scl
		case "rotation":
			cfg.rotation = &rotation
		}
	})

	if cfg.watch && cfg.configPath == "" {
		return config{}, errors.New("-watch requires -config")
	}
	return cfg, nil
}

// loadScene reads the scene file if any, then applies flag overrides and
// clamping.
func loadScene(cfg config) (scene.Scene, error) {
	sc := scene.Default()
	if cfg.configPath != "" {
		var err error
		if sc, err = scene.Load(cfg.configPath); err != nil {
			return scene.Scene{}, err
		}
	}
	if cfg.position != nil {
		sc.Position = *cfg.position
	}
	if cfg.scale != nil {
		sc.Scale = *cfg.scale
	}
	if cfg.rotation != nil {
		sc.Rotation = *cfg.rotation
	}
	if err := sc.Validate(); err != nil {
		return scene.Scene{}, err
	}
	if cfg.clamp {
		sc = sc.Clamp()
	}
	return sc, nil
}

func renderScene(r *render.Renderer, cfg config, stdout io.Writer) error {
	sc, err := loadScene(cfg)
	if err != nil {
		return err
	}
	t := sc.Transform()

	if cfg.print {
		if err := scene.Encode(stdout, sc); err != nil {
			return err
		}
		for _, tb := range render.Tables(t) {
			if _, err := fmt.Fprintf(stdout, "\n%s", tb); err != nil {
				return err
			}
		}
	}

	if err := r.SavePNG(cfg.output, t); err != nil {
		return err
	}
	slog.Info("rendered",
		slog.String("output", cfg.output),
		slog.Any("position", t.Position),
		slog.Any("scale", t.Scale),
		slog.Any("rotation", t.Rotation),
		slog.Bool("mirrored", xform.IsMirrored(t.Matrix())),
	)
	return nil
}

func watchLoop(ctx context.Context, r *render.Renderer, cfg config, stdout io.Writer) error {
	w, err := watch.New(cfg.configPath)
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.configPath, err)
	}
	defer func() { _ = w.Close() }()

	slog.Info("watching", slog.String("config", cfg.configPath))
	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			slog.Debug("scene changed", slog.String("file", name))
			// A bad edit keeps the previous image; the next save retries.
			if err := renderScene(r, cfg, stdout); err != nil {
				slog.Error("render failed", slog.Any("err", err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", slog.Any("err", err))
		}
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	xform.SetLogger(logger)

	r, err := render.New(render.WithSize(cfg.width, cfg.height))
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	if err := renderScene(r, cfg, stdout); err != nil {
		if !cfg.watch {
			return err
		}
		slog.Error("render failed", slog.Any("err", err))
	}
	if !cfg.watch {
		return nil
	}
	return watchLoop(ctx, r, cfg, stdout)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("xformdemo", slog.Any("err", err))
		stop()
		os.Exit(1)
	}
}
