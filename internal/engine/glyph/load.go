package glyph

import (
	"fmt"

	"github.com/Faultbox/zincmorph/pkg/colour"
	"github.com/Faultbox/zincmorph/pkg/formats"
)

// FromFormat converts a parsed glyphset file into field data.
func FromFormat(f *formats.Glyphset) (*Data, error) {
	meta := f.Metadata
	mode, err := ParseRepeatMode(meta.RepeatMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", formats.ErrUnknownRepeatMode, err)
	}

	spec := NewFieldSpec(mode, meta.NumberOfVertices, meta.NumberOfTimeSteps, meta.BaseSize, meta.Offset, meta.ScaleFactors)
	spec.MorphColours = meta.MorphColours
	spec.MorphVertices = meta.MorphVertices

	d := &Data{Spec: spec, Frames: make([]Frame, len(f.Frames)), Labels: f.Labels}
	for i, src := range f.Frames {
		d.Frames[i] = Frame{
			Positions: src.Positions,
			Axis1:     src.Axis1,
			Axis2:     src.Axis2,
			Axis3:     src.Axis3,
			Scale:     src.Scale,
		}
		if src.Colours == nil {
			continue
		}
		if i > 0 && !spec.MorphColours {
			d.Frames[i].Colours = d.Frames[0].Colours
			continue
		}
		colours := make([]colour.Hex, len(src.Colours))
		for j, c := range src.Colours {
			colours[j] = colour.Hex(c)
		}
		d.Frames[i].Colours = colours
	}
	return d, nil
}
