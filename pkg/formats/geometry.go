package formats

import (
	"encoding/json"
	"fmt"
	"os"
)

// Geometry is a parsed base mesh: flat xyz vertices, flat triangle indices
// and optional per-target morph positions and per-vertex colours.
type Geometry struct {
	Vertices     []float32
	Faces        []uint32
	MorphTargets []MorphTarget
	MorphColours []MorphColours
}

// MorphTarget is one alternative vertex array.
type MorphTarget struct {
	Name     string    `json:"name"`
	Vertices []float32 `json:"vertices"`
}

// MorphColours is one time step of packed 0xRRGGBB vertex colours.
type MorphColours struct {
	Name    string   `json:"name"`
	Colours []uint32 `json:"colors"`
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Vertices) / 3
}

type geometryFile struct {
	Vertices     []float32      `json:"vertices"`
	Faces        []uint32       `json:"faces"`
	MorphTargets []MorphTarget  `json:"morphTargets"`
	MorphColors  []MorphColours `json:"morphColors"`
}

// ParseGeometry parses and validates base geometry JSON.
func ParseGeometry(data []byte) (*Geometry, error) {
	var f geometryFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding geometry JSON: %w", err)
	}

	if len(f.Vertices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d vertex values is not a multiple of 3", ErrLengthMismatch, len(f.Vertices))
	}
	if len(f.Faces)%3 != 0 {
		return nil, fmt.Errorf("%w: %d face indices is not a multiple of 3", ErrLengthMismatch, len(f.Faces))
	}
	vertices := len(f.Vertices) / 3
	for i, idx := range f.Faces {
		if int(idx) >= vertices {
			return nil, fmt.Errorf("face index %d at %d out of range (%d vertices)", idx, i, vertices)
		}
	}
	for _, t := range f.MorphTargets {
		if len(t.Vertices) != len(f.Vertices) {
			return nil, fmt.Errorf("%w: morph target %q has %d values, want %d",
				ErrLengthMismatch, t.Name, len(t.Vertices), len(f.Vertices))
		}
	}
	for _, c := range f.MorphColors {
		if len(c.Colours) != vertices {
			return nil, fmt.Errorf("%w: morph colours %q has %d values, want %d",
				ErrLengthMismatch, c.Name, len(c.Colours), vertices)
		}
	}

	return &Geometry{
		Vertices:     f.Vertices,
		Faces:        f.Faces,
		MorphTargets: f.MorphTargets,
		MorphColours: f.MorphColors,
	}, nil
}

// ParseGeometryFile parses a geometry file from disk.
func ParseGeometryFile(path string) (*Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading geometry file: %w", err)
	}
	return ParseGeometry(data)
}
