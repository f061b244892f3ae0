// Package glyph resolves per-instance rigid-body transforms for glyph fields
// and writes them into instance stores.
package glyph

import (
	"fmt"

	"github.com/Faultbox/zincmorph/internal/engine/interp"
	"github.com/Faultbox/zincmorph/internal/engine/morph"
	"github.com/Faultbox/zincmorph/internal/engine/timeline"
	"github.com/Faultbox/zincmorph/pkg/colour"
)

// RepeatMode controls how many oriented glyphs one source point produces.
type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatMirror
	RepeatAxes2D
	RepeatAxes3D
)

var repeatModeNames = [...]string{"NONE", "MIRROR", "AXES_2D", "AXES_3D"}

// ParseRepeatMode converts the metadata spelling of a repeat mode.
func ParseRepeatMode(s string) (RepeatMode, error) {
	for i, name := range repeatModeNames {
		if s == name {
			return RepeatMode(i), nil
		}
	}
	return RepeatNone, fmt.Errorf("unknown repeat mode %q", s)
}

// String returns the metadata spelling.
func (m RepeatMode) String() string {
	if m < 0 || int(m) >= len(repeatModeNames) {
		return fmt.Sprintf("RepeatMode(%d)", int(m))
	}
	return repeatModeNames[m]
}

// Multiplicity returns the number of glyphs per source point.
func (m RepeatMode) Multiplicity() int {
	switch m {
	case RepeatMirror, RepeatAxes2D:
		return 2
	case RepeatAxes3D:
		return 3
	default:
		return 1
	}
}

// FieldSpec is the glyph-field-wide configuration read from metadata. It is
// not modified after load.
type FieldSpec struct {
	RepeatMode   RepeatMode
	BaseSize     [3]float64
	Offset       [3]float64
	ScaleFactors [3]float64
	// NumberOfVertices is the instance count, already multiplied by the
	// repeat multiplicity.
	NumberOfVertices  int
	NumberOfTimeSteps int
	MorphColours      bool
	MorphVertices     bool
}

// NewFieldSpec builds a spec from the per-point vertex count in metadata.
func NewFieldSpec(mode RepeatMode, sourcePoints, timeSteps int, baseSize, offset, scaleFactors [3]float64) FieldSpec {
	return FieldSpec{
		RepeatMode:        mode,
		BaseSize:          baseSize,
		Offset:            offset,
		ScaleFactors:      scaleFactors,
		NumberOfVertices:  sourcePoints * mode.Multiplicity(),
		NumberOfTimeSteps: timeSteps,
	}
}

// IsTimeVarying reports whether any attribute changes with time.
func (s *FieldSpec) IsTimeVarying() bool {
	return s.NumberOfTimeSteps > 0 && (s.MorphColours || s.MorphVertices)
}

// Frame holds the source data of one keyframe as flat xyz arrays, one entry
// per source point. Colours is nil when the field has no colours.
type Frame struct {
	Positions []float64
	Axis1     []float64
	Axis2     []float64
	Axis3     []float64
	Scale     []float64
	Colours   []colour.Hex
}

// NumberOfPoints returns the number of source points.
func (f *Frame) NumberOfPoints() int {
	return len(f.Positions) / 3
}

// Data is a loaded glyph field: its spec, one Frame per time step and
// optional per-instance labels.
type Data struct {
	Spec   FieldSpec
	Frames []Frame
	Labels []string
}

// Sample blends the keyframes selected by sel into dst, reusing dst's
// slices. Geometry comes from frame 0 unless MorphVertices is set; colours
// from frame 0 unless MorphColours is set.
func (d *Data) Sample(sel timeline.Selection, dst *Frame) {
	first := &d.Frames[0]
	if d.Spec.MorphVertices {
		bottom, top := &d.Frames[sel.Bottom], &d.Frames[sel.Top]
		dst.Positions = interp.ArrayTo(resize(dst.Positions, len(bottom.Positions)), bottom.Positions, top.Positions, sel.Proportion)
		dst.Axis1 = interp.ArrayTo(resize(dst.Axis1, len(bottom.Axis1)), bottom.Axis1, top.Axis1, sel.Proportion)
		dst.Axis2 = interp.ArrayTo(resize(dst.Axis2, len(bottom.Axis2)), bottom.Axis2, top.Axis2, sel.Proportion)
		dst.Axis3 = interp.ArrayTo(resize(dst.Axis3, len(bottom.Axis3)), bottom.Axis3, top.Axis3, sel.Proportion)
		dst.Scale = interp.ArrayTo(resize(dst.Scale, len(bottom.Scale)), bottom.Scale, top.Scale, sel.Proportion)
	} else {
		dst.Positions = first.Positions
		dst.Axis1 = first.Axis1
		dst.Axis2 = first.Axis2
		dst.Axis3 = first.Axis3
		dst.Scale = first.Scale
	}

	switch {
	case first.Colours == nil:
		dst.Colours = nil
	case d.Spec.MorphColours:
		bottom, top := d.Frames[sel.Bottom].Colours, d.Frames[sel.Top].Colours
		dst.Colours = morph.BlendFrameColoursTo(dst.Colours[:0], bottom, top, sel.Proportion)
	default:
		dst.Colours = first.Colours
	}
}

// resize returns a slice of length n, reusing buf when it is large enough.
func resize(buf []float64, n int) []float64 {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}
