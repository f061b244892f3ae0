// Package morph blends per-time-step colour keyframes for mesh, line and
// point primitives.
package morph

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/zincmorph/internal/engine/interp"
	"github.com/Faultbox/zincmorph/pkg/colour"
)

// BlendFrameColours blends two equally sized colour frames element-wise.
func BlendFrameColours(bottom, top []colour.Hex, proportion float64) []colour.Hex {
	return BlendFrameColoursTo(make([]colour.Hex, 0, len(bottom)), bottom, top, proportion)
}

// BlendFrameColoursTo appends the blended colours to dst.
func BlendFrameColoursTo(dst, bottom, top []colour.Hex, proportion float64) []colour.Hex {
	for i := range bottom {
		dst = append(dst, interp.Colour(bottom[i], top[i], proportion))
	}
	return dst
}

// ColourMap is one keyframe of legacy vertex colours, packed three vertices
// per slot: vertex v is channel v%3 of slot v/3.
type ColourMap [][3]colour.Hex

// VertexColour returns the colour of vertex v.
func (m ColourMap) VertexColour(v int) colorful.Color {
	return m[v/3][v%3].Color()
}

// Face is a triangle with one colour per corner.
type Face struct {
	A, B, C       int
	VertexColours [3]colorful.Color
}

// UpdateVertexColours rewrites every face's corner colours by blending the
// corresponding vertex colour of the bottom and top maps.
func UpdateVertexColours(faces []Face, bottom, top ColourMap, proportion float64) {
	for i := range faces {
		f := &faces[i]
		for corner, v := range [3]int{f.A, f.B, f.C} {
			f.VertexColours[corner] = blend(bottom.VertexColour(v), top.VertexColour(v), proportion)
		}
	}
}

func blend(bottom, top colorful.Color, proportion float64) colorful.Color {
	return colorful.Color{
		R: bottom.R*proportion + top.R*(1-proportion),
		G: bottom.G*proportion + top.G*(1-proportion),
		B: bottom.B*proportion + top.B*(1-proportion),
	}
}

// Slots names the morph colour attributes republished for rendering.
type Slots struct {
	Colour0 int
	Colour1 int
}

// SelectSlots picks the morph targets with non-zero influence, ordered by
// descending absolute influence. The strongest two become slots 0 and 1; a
// single active target fills both slots. ok is false when nothing is active.
func SelectSlots(influences []float64) (s Slots, ok bool) {
	type weighted struct {
		index     int
		influence float64
	}
	var active []weighted
	for i, w := range influences {
		if w != 0 {
			active = append(active, weighted{i, w})
		}
	}
	if len(active) == 0 {
		return Slots{}, false
	}
	sort.SliceStable(active, func(i, j int) bool {
		return abs(active[i].influence) > abs(active[j].influence)
	})
	if len(active) == 1 {
		return Slots{Colour0: active[0].index, Colour1: active[0].index}, true
	}
	return Slots{Colour0: active[0].index, Colour1: active[1].index}, true
}

// Republish returns the two colour attributes to bind as morph colour 0 and
// 1 for the given influences.
func Republish(attributes [][]float32, influences []float64) (colour0, colour1 []float32, ok bool) {
	s, ok := SelectSlots(influences)
	if !ok {
		return nil, nil, false
	}
	return attributes[s.Colour0], attributes[s.Colour1], true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
