package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/zincmorph/internal/config"
	"github.com/Faultbox/zincmorph/internal/logger"
	"github.com/Faultbox/zincmorph/pkg/colour"
)

const arrows = `{
	"positions": {"0": [0,0,0, 5,0,0], "1": [0,5,0, 5,5,0]},
	"axis1": {"0": [1,0,0, 1,0,0], "1": [1,0,0, 1,0,0]},
	"axis2": {"0": [0,1,0, 0,1,0], "1": [0,1,0, 0,1,0]},
	"axis3": {"0": [0,0,1, 0,0,1], "1": [0,0,1, 0,0,1]},
	"scale": {"0": [1,1,1, 1,1,1], "1": [1,1,1, 1,1,1]},
	"colors": {"0": [16711680, 255], "1": [65280, 65280]},
	"metadata": {
		"MorphColours": true, "MorphVertices": true, "number_of_time_steps": 2,
		"repeat_mode": "AXES_2D", "number_of_vertices": 2,
		"base_size": [0, 0, 0], "offset": [0, 0, 0], "scale_factors": [1, 1, 1]
	}
}`

const cube = `{
	"vertices": [0,0,0, 1,0,0, 0,1,0, 0,0,1],
	"faces": [0,1,2, 0,1,3],
	"morphTargets": [
		{"name": "t0", "vertices": [0,0,0, 1,0,0, 0,1,0, 0,0,1]},
		{"name": "t1", "vertices": [0,0,0, 3,0,0, 0,3,0, 0,0,3]}
	],
	"morphColors": [
		{"name": "c0", "colors": [16711680, 16711680, 16711680, 16711680]},
		{"name": "c1", "colors": [255, 255, 255, 255]}
	]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestCommands(t *testing.T) {
	cfg := config.Default()
	glyphs := writeFile(t, "arrows.json", arrows)
	mesh := writeFile(t, "cube.json", cube)

	tests := []struct {
		name string
		run  func() error
	}{
		{"info", func() error { return cmdInfo([]string{glyphs}) }},
		{"sample", func() error { return cmdSample(cfg, []string{"-t", "1500", glyphs}) }},
		{"sample with geometry", func() error { return cmdSample(cfg, []string{"-geometry", mesh, "-n", "1", glyphs}) }},
		{"play", func() error { return cmdPlay(cfg, []string{"-frames", "3", "-delta", "0.5", glyphs}) }},
		{"mesh", func() error { return cmdMesh(cfg, []string{"-t", "2000", mesh}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); err != nil {
				t.Errorf("%s failed: %v", tt.name, err)
			}
		})
	}
}

func TestCommandsRequireFile(t *testing.T) {
	cfg := config.Default()
	if err := cmdInfo(nil); err == nil {
		t.Error("info without a file should fail")
	}
	if err := cmdSample(cfg, nil); err == nil {
		t.Error("sample without a file should fail")
	}
	if err := cmdPlay(cfg, []string{filepath.Join(t.TempDir(), "missing.json")}); err == nil {
		t.Error("play with a missing file should fail")
	}
}

func TestLoadGlyphScene(t *testing.T) {
	cfg := config.Default()
	sc, gs, err := loadGlyphScene(cfg, writeFile(t, "arrows.json", arrows), "")
	if err != nil {
		t.Fatalf("loadGlyphScene failed: %v", err)
	}
	defer sc.Dispose()

	if !sc.IsReady() || sc.Pending() != 0 {
		t.Error("scene should be ready once the glyphset is loaded")
	}
	if n := gs.Store().Len(); n != 4 {
		t.Errorf("expected 4 instances for 2 AXES_2D points, got %d", n)
	}
	if c, ok := instanceColour(gs.Store(), 0); !ok || c != 0xFF0000 {
		t.Errorf("instance 0 colour = %s, %v; want #ff0000", c, ok)
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		rgb  []float32
		want colour.Hex
	}{
		{[]float32{1, 0, 0}, 0xFF0000},
		{[]float32{0, 0.5, 1}, 0x0080FF},
		{[]float32{-1, 2, 0}, 0x00FF00},
	}
	for _, tt := range tests {
		if got := rgbHex(tt.rgb); got != tt.want {
			t.Errorf("rgbHex(%v) = %s, want %s", tt.rgb, got, tt.want)
		}
	}
}

func TestLoadGlyphSceneDisposesOnError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger.Log = zap.New(core)
	defer func() { logger.Log = logger.Nop() }()

	glyphs := writeFile(t, "arrows.json", arrows)
	missing := filepath.Join(t.TempDir(), "missing.json")
	sc, gs, err := loadGlyphScene(config.Default(), glyphs, missing)
	if err == nil {
		t.Fatal("expected error for a missing base geometry")
	}
	if sc != nil || gs != nil {
		t.Error("failed load should not return a scene")
	}
	if n := logs.FilterMessage("scene disposed").Len(); n != 1 {
		t.Errorf("scene disposed %d times, want 1", n)
	}
}
