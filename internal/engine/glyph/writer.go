package glyph

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/zincmorph/pkg/colour"
	"github.com/Faultbox/zincmorph/pkg/math"
)

// Writer resolves every source point of a frame and writes the resulting
// transforms into consecutive instance slots: point 0 spoke 0, point 0
// spoke 1, ..., point 1 spoke 0, and so on.
type Writer struct {
	spec    *FieldSpec
	scratch []Tuple
}

// NewWriter returns a writer for the given field.
func NewWriter(spec *FieldSpec) *Writer {
	return &Writer{spec: spec, scratch: make([]Tuple, 0, 3)}
}

// UpdateTransforms writes one transform per resolved tuple. A point whose
// tuple count differs from the repeat multiplicity is skipped without
// advancing the slot index; the number of such points is returned. Slots past
// the end of the store are ignored.
func (w *Writer) UpdateTransforms(frame *Frame, store InstanceStore) (written, skipped int) {
	expected := w.spec.RepeatMode.Multiplicity()
	n := store.Len()
	index := 0
	for i := 0; i < frame.NumberOfPoints(); i++ {
		c := i * 3
		w.scratch = ResolveTo(w.scratch[:0],
			vec(frame.Positions, c),
			vec(frame.Axis1, c),
			vec(frame.Axis2, c),
			vec(frame.Axis3, c),
			vec(frame.Scale, c),
			w.spec)
		if len(w.scratch) != expected {
			skipped++
			continue
		}
		for _, t := range w.scratch {
			if index < n {
				store.SetTransform(index, pack(t))
				written++
			}
			index++
		}
	}
	return written, skipped
}

// UpdateColours writes each source colour to every instance of its point.
func (w *Writer) UpdateColours(colours []colour.Hex, store InstanceStore) {
	repeat := w.spec.RepeatMode.Multiplicity()
	n := store.Len()
	index := 0
	for _, c := range colours {
		for j := 0; j < repeat; j++ {
			if index < n {
				store.SetColour(index, c)
			}
			index++
		}
	}
}

func vec(a []float64, i int) r3.Vec {
	return r3.Vec{X: a[i], Y: a[i+1], Z: a[i+2]}
}

func toVec3(v r3.Vec) math.Vec3 {
	return math.V3(v.X, v.Y, v.Z)
}

func pack(t Tuple) math.Mat4 {
	return math.FromAxes(toVec3(t.Point), toVec3(t.Axis1), toVec3(t.Axis2), toVec3(t.Axis3))
}
