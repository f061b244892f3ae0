package object

import (
	"testing"

	"github.com/Faultbox/zincmorph/internal/engine/glyph"
	"github.com/Faultbox/zincmorph/pkg/colour"
	"github.com/Faultbox/zincmorph/pkg/math"
)

// steppedData builds a field of points whose x coordinate equals the frame
// index, with identity axes and unit glyphs.
func steppedData(frames int, xs ...float64) *glyph.Data {
	spec := glyph.NewFieldSpec(glyph.RepeatNone, len(xs), frames, [3]float64{1, 1, 1}, [3]float64{}, [3]float64{})
	spec.MorphVertices = true
	spec.MorphColours = true
	d := &glyph.Data{Spec: spec}
	for f := 0; f < frames; f++ {
		var fr glyph.Frame
		for _, x := range xs {
			fr.Positions = append(fr.Positions, x+float64(f), 0, 0)
			fr.Axis1 = append(fr.Axis1, 1, 0, 0)
			fr.Axis2 = append(fr.Axis2, 0, 1, 0)
			fr.Axis3 = append(fr.Axis3, 0, 0, 1)
			fr.Scale = append(fr.Scale, 1, 1, 1)
			fr.Colours = append(fr.Colours, colour.Hex(0x010101*uint32(f)))
		}
		d.Frames = append(d.Frames, fr)
	}
	return d
}

func unitCube() *MeshGeometry {
	return &MeshGeometry{Positions: []float32{-1, -1, -1, 1, 1, 1}}
}

func readyGlyphset(t *testing.T, data *glyph.Data) (*Glyphset, *glyph.InstancedStore) {
	t.Helper()
	g := NewGlyphset(7, data, defaultOptions(), nil)
	if g.IsReady() {
		t.Fatal("glyphset ready before base geometry")
	}
	g.SetBaseGeometry(unitCube())
	store, ok := g.Store().(*glyph.InstancedStore)
	if !ok {
		t.Fatalf("Store() = %T, want *glyph.InstancedStore", g.Store())
	}
	return g, store
}

func TestGlyphsetLastFrameBoundary(t *testing.T) {
	g, store := readyGlyphset(t, steppedData(10, 0))

	g.SetMorphTime(3000)
	if m := store.Transform(0); m[12] != 9 {
		t.Errorf("translation x at end = %v, want 9 (last frame)", m[12])
	}
	if got := store.Colour(0); got != 0x090909 {
		t.Errorf("colour at end = %v, want #090909", got)
	}
}

func TestGlyphsetSetMorphTimeIdempotent(t *testing.T) {
	g, store := readyGlyphset(t, steppedData(4, 0, 5))

	g.SetMorphTime(1500)
	version := store.Version
	first := store.Transform(1)

	g.SetMorphTime(1500)
	if store.Version != version {
		t.Errorf("second SetMorphTime wrote to the store (version %d -> %d)", version, store.Version)
	}
	if store.Transform(1) != first {
		t.Error("transform changed on repeated SetMorphTime")
	}
	// 1500/3000 of 3 intervals is frame 1.5
	if first[12] != 6.5 {
		t.Errorf("translation x = %v, want 6.5", first[12])
	}
}

func TestGlyphsetRenderWrapsOnce(t *testing.T) {
	g, store := readyGlyphset(t, steppedData(4, 0))

	g.SetMorphTime(2900)
	g.Render(200, true)
	if got := g.CurrentTime(); got != 100 {
		t.Errorf("CurrentTime() = %v, want 100", got)
	}
	// 100/3000 of 3 intervals
	if m := store.Transform(0); m[12] != 0.1 {
		t.Errorf("translation x = %v, want 0.1", m[12])
	}

	version := store.Version
	g.Render(200, false)
	if store.Version != version || g.CurrentTime() != 100 {
		t.Error("Render without play changed state")
	}
}

func TestGlyphsetTimeBeforeReady(t *testing.T) {
	g := NewGlyphset(1, steppedData(4, 0), defaultOptions(), nil)
	g.SetMorphTime(3000)
	g.SetBaseGeometry(unitCube())

	if m := g.Store().Transform(0); m[12] != 3 {
		t.Errorf("translation x = %v, want 3", m[12])
	}
}

func TestGlyphsetBoundingBox(t *testing.T) {
	g, _ := readyGlyphset(t, steppedData(1, 0, 10))

	box, ok := g.BoundingBox()
	if !ok {
		t.Fatal("BoundingBox() reported nothing")
	}
	wantMin := math.Vec3{X: -1, Y: -1, Z: -1}
	wantMax := math.Vec3{X: 11, Y: 1, Z: 1}
	if box.Min != wantMin || box.Max != wantMax {
		t.Errorf("BoundingBox() = %v..%v, want %v..%v", box.Min, box.Max, wantMin, wantMax)
	}

	g.SetVisible(false)
	if _, ok := g.BoundingBox(); ok {
		t.Error("hidden glyphset reported a bounding box")
	}
}

func TestGlyphsetDiscreteStoreLabels(t *testing.T) {
	data := steppedData(1, 0, 1)
	data.Labels = []string{"first", "second"}
	opts := defaultOptions()
	opts.Instancing = false

	g := NewGlyphset(1, data, opts, nil)
	g.SetBaseGeometry(unitCube())

	store, ok := g.Store().(*glyph.DiscreteStore)
	if !ok {
		t.Fatalf("Store() = %T, want *glyph.DiscreteStore", g.Store())
	}
	if store.Instances[1].Label != "second" {
		t.Errorf("label = %q, want second", store.Instances[1].Label)
	}
	if store.Instances[1].Transform[12] != 1 {
		t.Errorf("translation x = %v, want 1", store.Instances[1].Transform[12])
	}
}

func TestGlyphsetStaticFieldIsNotTimeVarying(t *testing.T) {
	data := steppedData(1, 0)
	data.Spec.NumberOfTimeSteps = 0
	g := NewGlyphset(1, data, defaultOptions(), nil)
	if g.IsTimeVarying() {
		t.Error("field without time steps reported time varying")
	}
}

func TestGlyphsetSkipsUnknownMode(t *testing.T) {
	data := steppedData(1, 0, 1)
	data.Spec.RepeatMode = glyph.RepeatMode(9)
	g := NewGlyphset(1, data, defaultOptions(), nil)
	g.SetBaseGeometry(unitCube())

	if g.Skipped() != 2 {
		t.Errorf("Skipped() = %d, want 2", g.Skipped())
	}
}

func TestGlyphsetDispose(t *testing.T) {
	g, _ := readyGlyphset(t, steppedData(2, 0))
	g.Dispose()
	if g.IsReady() || g.Store() != nil {
		t.Error("disposed glyphset still holds its store")
	}
	// no panic after dispose
	g.SetMorphTime(10)
	g.Render(10, true)
	if _, ok := g.BoundingBox(); ok {
		t.Error("disposed glyphset reported a bounding box")
	}
}
