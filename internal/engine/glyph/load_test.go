package glyph

import (
	"errors"
	"testing"

	"github.com/Faultbox/zincmorph/pkg/colour"
	"github.com/Faultbox/zincmorph/pkg/formats"
)

func TestFromFormat(t *testing.T) {
	frame := formats.GlyphsetFrame{
		Positions: []float64{0, 0, 0},
		Axis1:     []float64{1, 0, 0},
		Axis2:     []float64{0, 1, 0},
		Axis3:     []float64{0, 0, 1},
		Scale:     []float64{1, 1, 1},
		Colours:   []uint32{0x336699},
	}
	f := &formats.Glyphset{
		Metadata: formats.GlyphsetMetadata{
			MorphVertices:     true,
			NumberOfTimeSteps: 2,
			RepeatMode:        formats.RepeatAxes3D,
			NumberOfVertices:  1,
			BaseSize:          [3]float64{1, 2, 3},
		},
		Frames: []formats.GlyphsetFrame{frame, frame},
		Labels: []string{"a"},
	}

	d, err := FromFormat(f)
	if err != nil {
		t.Fatalf("FromFormat failed: %v", err)
	}
	if d.Spec.RepeatMode != RepeatAxes3D || d.Spec.NumberOfVertices != 3 {
		t.Errorf("spec = %+v, want AXES_3D with 3 instances", d.Spec)
	}
	if !d.Spec.IsTimeVarying() {
		t.Error("expected a time-varying field")
	}
	if d.Frames[0].Colours[0] != colour.Hex(0x336699) {
		t.Errorf("colour = %v, want #336699", d.Frames[0].Colours[0])
	}
	// colours do not morph, so frame 1 shares frame 0's slice
	if &d.Frames[1].Colours[0] != &d.Frames[0].Colours[0] {
		t.Error("static colours should be shared between frames")
	}
}

func TestFromFormatUnknownMode(t *testing.T) {
	f := &formats.Glyphset{Metadata: formats.GlyphsetMetadata{RepeatMode: "BOGUS"}}
	if _, err := FromFormat(f); !errors.Is(err, formats.ErrUnknownRepeatMode) {
		t.Errorf("FromFormat() error = %v, want ErrUnknownRepeatMode", err)
	}
}
