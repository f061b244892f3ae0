package formats

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// GlyphsetMetadata is the field-wide configuration block of a glyphset file.
type GlyphsetMetadata struct {
	MorphColours      bool       `json:"MorphColours"`
	MorphVertices     bool       `json:"MorphVertices"`
	NumberOfTimeSteps int        `json:"number_of_time_steps"`
	RepeatMode        string     `json:"repeat_mode"`
	NumberOfVertices  int        `json:"number_of_vertices"`
	BaseSize          [3]float64 `json:"base_size"`
	Offset            [3]float64 `json:"offset"`
	ScaleFactors      [3]float64 `json:"scale_factors"`
}

// GlyphsetFrame holds one keyframe as flat xyz arrays plus one packed
// 0xRRGGBB colour per point. Colours is nil when the file has none.
type GlyphsetFrame struct {
	Positions []float64
	Axis1     []float64
	Axis2     []float64
	Axis3     []float64
	Scale     []float64
	Colours   []uint32
}

// Glyphset is a parsed glyphset keyframe file. Frames has one entry per time
// step (at least one). Attributes that do not morph alias frame 0.
type Glyphset struct {
	Metadata GlyphsetMetadata
	Frames   []GlyphsetFrame
	Labels   []string
}

type glyphsetFile struct {
	Axis1     map[string][]float64 `json:"axis1"`
	Axis2     map[string][]float64 `json:"axis2"`
	Axis3     map[string][]float64 `json:"axis3"`
	Positions map[string][]float64 `json:"positions"`
	Scale     map[string][]float64 `json:"scale"`
	Colors    map[string][]float64 `json:"colors"`
	Label     []string             `json:"label"`
	Metadata  GlyphsetMetadata     `json:"metadata"`
}

// ParseGlyphset parses and validates glyphset keyframe JSON.
func ParseGlyphset(data []byte) (*Glyphset, error) {
	var f glyphsetFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding glyphset JSON: %w", err)
	}

	meta := f.Metadata
	switch meta.RepeatMode {
	case RepeatNone, RepeatMirror, RepeatAxes2D, RepeatAxes3D:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRepeatMode, meta.RepeatMode)
	}
	if meta.NumberOfTimeSteps < 0 || meta.NumberOfVertices < 0 {
		return nil, fmt.Errorf("invalid glyphset metadata: %d time steps, %d vertices",
			meta.NumberOfTimeSteps, meta.NumberOfVertices)
	}

	frameCount := meta.NumberOfTimeSteps
	if frameCount < 1 {
		frameCount = 1
	}
	points := meta.NumberOfVertices

	g := &Glyphset{
		Metadata: meta,
		Frames:   make([]GlyphsetFrame, frameCount),
		Labels:   f.Label,
	}

	geometry := []struct {
		name string
		src  map[string][]float64
		dst  func(*GlyphsetFrame) *[]float64
	}{
		{"positions", f.Positions, func(fr *GlyphsetFrame) *[]float64 { return &fr.Positions }},
		{"axis1", f.Axis1, func(fr *GlyphsetFrame) *[]float64 { return &fr.Axis1 }},
		{"axis2", f.Axis2, func(fr *GlyphsetFrame) *[]float64 { return &fr.Axis2 }},
		{"axis3", f.Axis3, func(fr *GlyphsetFrame) *[]float64 { return &fr.Axis3 }},
		{"scale", f.Scale, func(fr *GlyphsetFrame) *[]float64 { return &fr.Scale }},
	}
	for _, attr := range geometry {
		for i := range g.Frames {
			if i > 0 && !meta.MorphVertices {
				*attr.dst(&g.Frames[i]) = *attr.dst(&g.Frames[0])
				continue
			}
			values, err := frameValues(attr.src, attr.name, i, 3*points)
			if err != nil {
				return nil, err
			}
			*attr.dst(&g.Frames[i]) = values
		}
	}

	if f.Colors != nil {
		for i := range g.Frames {
			if i > 0 && !meta.MorphColours {
				g.Frames[i].Colours = g.Frames[0].Colours
				continue
			}
			values, err := frameValues(f.Colors, "colors", i, points)
			if err != nil {
				return nil, err
			}
			colours := make([]uint32, len(values))
			for j, v := range values {
				colours[j] = uint32(v) & 0xFFFFFF
			}
			g.Frames[i].Colours = colours
		}
	}

	return g, nil
}

// frameValues returns frame i of a keyed attribute, checking its length.
func frameValues(src map[string][]float64, name string, i, want int) ([]float64, error) {
	values, ok := src[strconv.Itoa(i)]
	if !ok {
		return nil, fmt.Errorf("%w: %s frame %d", ErrMissingFrame, name, i)
	}
	if len(values) != want {
		return nil, fmt.Errorf("%w: %s frame %d has %d values, want %d",
			ErrLengthMismatch, name, i, len(values), want)
	}
	return values, nil
}

// ParseGlyphsetFile parses a glyphset file from disk.
func ParseGlyphsetFile(path string) (*Glyphset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading glyphset file: %w", err)
	}
	return ParseGlyphset(data)
}
