package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/zincmorph/internal/config"
	"github.com/Faultbox/zincmorph/internal/engine/glyph"
	"github.com/Faultbox/zincmorph/internal/engine/object"
	"github.com/Faultbox/zincmorph/internal/engine/scene"
	"github.com/Faultbox/zincmorph/internal/logger"
	"github.com/Faultbox/zincmorph/pkg/formats"
)

func cmdInfo(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: glyphtool info <glyphs.json>")
	}

	f, err := formats.ParseGlyphsetFile(args[0])
	if err != nil {
		return err
	}
	data, err := glyph.FromFormat(f)
	if err != nil {
		return err
	}
	spec := data.Spec

	fmt.Printf("File:          %s\n", args[0])
	fmt.Printf("Repeat mode:   %s (x%d)\n", spec.RepeatMode, spec.RepeatMode.Multiplicity())
	fmt.Printf("Points:        %d\n", f.Metadata.NumberOfVertices)
	fmt.Printf("Instances:     %d\n", spec.NumberOfVertices)
	fmt.Printf("Time steps:    %d (%d frames)\n", spec.NumberOfTimeSteps, len(data.Frames))
	fmt.Printf("Morph:         vertices=%v colours=%v\n", spec.MorphVertices, spec.MorphColours)
	fmt.Printf("Time varying:  %v\n", spec.IsTimeVarying())
	fmt.Printf("Base size:     %v\n", spec.BaseSize)
	fmt.Printf("Offset:        %v\n", spec.Offset)
	fmt.Printf("Scale factors: %v\n", spec.ScaleFactors)
	fmt.Printf("Colours:       %v\n", data.Frames[0].Colours != nil)
	fmt.Printf("Labels:        %d\n", len(data.Labels))
	return nil
}

func cmdSample(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	at := fs.Float64("t", 0, "Time to sample (ms of animation time)")
	geometryPath := fs.String("geometry", "", "Base glyph geometry JSON (default: unit cube)")
	limit := fs.Int("n", 20, "Print at most N instances (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return errors.New("usage: glyphtool sample [-t ms] [-geometry file] [-n N] <glyphs.json>")
	}

	sc, gs, err := loadGlyphScene(cfg, fs.Arg(0), *geometryPath)
	if err != nil {
		return err
	}
	defer sc.Dispose()

	sc.SetMorphTime(*at)
	fmt.Printf("Time: %.2f / %.2f\n", gs.CurrentTime(), gs.Duration())
	printInstances(gs, *limit)
	printBox(sc)
	return nil
}

func cmdPlay(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	frames := fs.Int("frames", 10, "Number of frames to step")
	delta := fs.Float64("delta", 0.1, "Seconds per frame")
	realtime := fs.Duration("for", 0, "Run in real time for this long instead of stepping")
	fps := fs.Int("fps", 30, "Frames per second in real-time mode")
	watch := fs.Bool("watch", false, "Run in real time and reload the file when it changes")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return errors.New("usage: glyphtool play [-frames N] [-delta s] [-for d] [-watch] <glyphs.json>")
	}
	path := fs.Arg(0)

	sc, gs, err := loadGlyphScene(cfg, path, "")
	if err != nil {
		return err
	}

	interval := time.Second / time.Duration(max(*fps, 1))
	switch {
	case *watch:
		return watchAndPlay(cfg, path, sc, interval)
	case *realtime > 0:
		defer sc.Dispose()
		driver := scene.NewDriver(nil, cfg.Scene.PlayRate, logger.Named("driver"))
		driver.AddScene(sc)
		driver.Play()
		ctx, cancel := context.WithTimeout(context.Background(), *realtime)
		defer cancel()
		if err := driver.Run(ctx, interval); !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		fmt.Printf("Time after %v: %.2f\n", *realtime, gs.CurrentTime())
		printBox(sc)
		return nil
	}

	defer sc.Dispose()
	clock := time.Unix(0, 0)
	driver := scene.NewDriver(func() time.Time { return clock }, cfg.Scene.PlayRate, logger.Named("driver"))
	driver.AddScene(sc)
	driver.Play()
	driver.Tick()

	step := time.Duration(*delta * float64(time.Second))
	for i := 1; i <= *frames; i++ {
		clock = clock.Add(step)
		driver.Tick()
		box, ok := gs.BoundingBox()
		if ok {
			fmt.Printf("frame %3d  t=%9.2f  centre=%v\n", i, gs.CurrentTime(), box.Center())
		} else {
			fmt.Printf("frame %3d  t=%9.2f\n", i, gs.CurrentTime())
		}
	}
	return nil
}

// watchAndPlay runs the animation in real time and reloads the glyphset
// whenever the file is written. Interrupt stops it.
func watchAndPlay(cfg *config.Config, path string, sc *scene.Scene, interval time.Duration) error {
	log := logger.Named("watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()
	// Watch the directory so editors that replace the file are noticed.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := scene.NewDriver(nil, cfg.Scene.PlayRate, logger.Named("driver"))
	driver.AddScene(sc)
	driver.Play()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			sc.Dispose()
			return nil
		case <-ticker.C:
			driver.Tick()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			reloaded, _, err := loadGlyphScene(cfg, path, "")
			if err != nil {
				// keep playing the previous version
				log.Warn("reload failed", zap.String("file", path), zap.Error(err))
				continue
			}
			reloaded.SetMorphTime(sc.CurrentTime())
			driver.RemoveScene(sc)
			sc.Dispose()
			sc = reloaded
			driver.AddScene(sc)
			log.Info("glyphset reloaded", zap.String("file", path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}

func cmdMesh(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("mesh", flag.ExitOnError)
	at := fs.Float64("t", 0, "Time to sample (ms of animation time)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return errors.New("usage: glyphtool mesh [-t ms] <geometry.json>")
	}

	f, err := formats.ParseGeometryFile(fs.Arg(0))
	if err != nil {
		return err
	}
	mesh := object.MeshFromFormat(f)

	sc := scene.New(filepath.Base(fs.Arg(0)), cfg.Scene, logger.Named("scene"))
	defer sc.Dispose()

	var clip object.MorphClip
	animated := len(f.MorphTargets) > 0 || len(f.MorphColours) > 0
	if n := max(len(f.MorphTargets), len(f.MorphColours)); n > 0 {
		clip = object.NewLinearMorphClip(n, 1)
	}
	g := sc.AddGeometry(nil, filepath.Base(fs.Arg(0)), mesh, clip, animated, len(f.MorphColours) > 0)
	sc.SetMorphTime(*at)

	fmt.Printf("Vertices:      %d\n", f.VertexCount())
	fmt.Printf("Triangles:     %d\n", len(f.Faces)/3)
	fmt.Printf("Morph targets: %d\n", len(f.MorphTargets))
	fmt.Printf("Morph colours: %d\n", len(f.MorphColours))
	fmt.Printf("Time:          %.2f / %.2f (%s)\n", g.CurrentTime(), g.Duration(), g.TimeMode())
	if clip != nil {
		fmt.Printf("Influences:    %v\n", clip.Influences())
	}
	if len(f.MorphColours) > 0 && len(mesh.MorphColour0) >= 3 {
		fmt.Printf("Colour 0:      %s\n", swatch(rgbHex(mesh.MorphColour0)))
		fmt.Printf("Colour 1:      %s\n", swatch(rgbHex(mesh.MorphColour1)))
	}
	printBox(sc)
	return nil
}

// loadGlyphScene builds a scene holding one glyphset read from path, with
// the base geometry from geometryPath or a unit cube.
func loadGlyphScene(cfg *config.Config, path, geometryPath string) (*scene.Scene, *object.Glyphset, error) {
	sc := scene.New(filepath.Base(path), cfg.Scene, logger.Named("scene"))
	sc.BeginLoad()
	gs, err := addGlyphset(sc, path, geometryPath)
	if err != nil {
		sc.EndLoad()
		sc.Dispose()
		return nil, nil, err
	}
	sc.EndLoad()
	return sc, gs, nil
}

func addGlyphset(sc *scene.Scene, path, geometryPath string) (*object.Glyphset, error) {
	f, err := formats.ParseGlyphsetFile(path)
	if err != nil {
		return nil, err
	}
	data, err := glyph.FromFormat(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	base := unitCube()
	if geometryPath != "" {
		g, err := formats.ParseGeometryFile(geometryPath)
		if err != nil {
			return nil, err
		}
		base = object.MeshFromFormat(g)
	}

	gs := sc.AddGlyphset(nil, filepath.Base(path), data)
	gs.SetBaseGeometry(base)
	return gs, nil
}

func unitCube() *object.MeshGeometry {
	return &object.MeshGeometry{Positions: []float32{-0.5, -0.5, -0.5, 0.5, 0.5, 0.5}}
}

func printInstances(gs *object.Glyphset, limit int) {
	store := gs.Store()
	n := store.Len()
	if limit > 0 && limit < n {
		n = limit
	}

	var labels []string
	if d, ok := store.(*glyph.DiscreteStore); ok {
		for _, inst := range d.Instances {
			labels = append(labels, inst.Label)
		}
	}

	for i := 0; i < n; i++ {
		m := store.Transform(i)
		point, a1, a2, a3 := m.Axes()
		fmt.Printf("%4d  p=%v  a1=%v  a2=%v  a3=%v  size=(%.3g %.3g %.3g)  det=%.3g",
			i, point, a1, a2, a3, a1.Length(), a2.Length(), a3.Length(), m.Determinant3())
		if c, ok := instanceColour(store, i); ok {
			fmt.Printf("  %s", swatch(c))
		}
		if i < len(labels) && labels[i] != "" {
			fmt.Printf("  %q", labels[i])
		}
		fmt.Println()
	}
	if n < store.Len() {
		fmt.Printf("... %d more\n", store.Len()-n)
	}
	if s := gs.Skipped(); s > 0 {
		fmt.Printf("Skipped points: %d\n", s)
	}
}

func printBox(sc *scene.Scene) {
	box, ok := sc.BoundingBox()
	if !ok {
		fmt.Println("Bounds:        (empty)")
		return
	}
	fmt.Printf("Bounds:        %v .. %v (size %v)\n", box.Min, box.Max, box.Size())
}
