package object

import (
	"github.com/Faultbox/zincmorph/internal/engine/morph"
	"github.com/Faultbox/zincmorph/pkg/colour"
	"github.com/Faultbox/zincmorph/pkg/formats"
	"github.com/Faultbox/zincmorph/pkg/math"
)

// MeshGeometry is the host-side buffer set of a primitive. Positions and
// morph attributes are flat xyz / rgb float arrays.
type MeshGeometry struct {
	Positions []float32
	Indices   []uint32

	// MorphPositions holds one position array per morph target.
	MorphPositions [][]float32
	// MorphColours holds one vertex colour array per morph target.
	MorphColours [][]float32
	// MorphColour0 and MorphColour1 are the two colour attributes bound for
	// rendering, republished from MorphColours.
	MorphColour0 []float32
	MorphColour1 []float32

	// Faces and FaceColourKeys drive legacy per-face vertex colours: one
	// packed colour map per time step.
	Faces          []morph.Face
	FaceColourKeys []morph.ColourMap
	VertexColours  bool

	// ColourVersion increases whenever any colour attribute is rewritten.
	ColourVersion uint64
}

// BoundingBox returns the box of the base positions.
func (g *MeshGeometry) BoundingBox() math.Box3 {
	return math.BoxFromPositions(g.Positions)
}

// MorphedBoundingBox returns the box of the positions blended by the given
// influences, falling back to the base positions when no target is active.
func (g *MeshGeometry) MorphedBoundingBox(influences []float64) math.Box3 {
	active := false
	for i, w := range influences {
		if w != 0 && i < len(g.MorphPositions) {
			active = true
			break
		}
	}
	if !active {
		return g.BoundingBox()
	}

	var box math.Box3
	for v := 0; v+2 < len(g.Positions); v += 3 {
		p := math.Vec3{X: g.Positions[v], Y: g.Positions[v+1], Z: g.Positions[v+2]}
		morphed := p
		for i, w := range influences {
			if w == 0 || i >= len(g.MorphPositions) {
				continue
			}
			target := g.MorphPositions[i]
			t := math.Vec3{X: target[v], Y: target[v+1], Z: target[v+2]}
			morphed = morphed.Add(t.Sub(p).Scale(float32(w)))
		}
		box = box.ExpandByPoint(morphed)
	}
	return box
}

// MeshFromFormat converts a parsed geometry file into mesh buffers. Morph
// colours feed both the per-target colour attributes and the legacy face
// colour keys.
func MeshFromFormat(f *formats.Geometry) *MeshGeometry {
	g := &MeshGeometry{
		Positions: f.Vertices,
		Indices:   f.Faces,
	}
	for _, t := range f.MorphTargets {
		g.MorphPositions = append(g.MorphPositions, t.Vertices)
	}
	if len(f.MorphColours) == 0 {
		return g
	}

	for i := 0; i+2 < len(f.Faces); i += 3 {
		g.Faces = append(g.Faces, morph.Face{A: int(f.Faces[i]), B: int(f.Faces[i+1]), C: int(f.Faces[i+2])})
	}
	for _, mc := range f.MorphColours {
		rgb := make([]float32, 0, 3*len(mc.Colours))
		keys := make(morph.ColourMap, (len(mc.Colours)+2)/3)
		for v, c := range mc.Colours {
			hex := colour.Hex(c)
			col := hex.Color()
			rgb = append(rgb, float32(col.R), float32(col.G), float32(col.B))
			keys[v/3][v%3] = hex
		}
		g.MorphColours = append(g.MorphColours, rgb)
		g.FaceColourKeys = append(g.FaceColourKeys, keys)
	}
	return g
}
