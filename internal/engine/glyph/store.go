package glyph

import (
	"github.com/Faultbox/zincmorph/pkg/colour"
	"github.com/Faultbox/zincmorph/pkg/math"
)

// InstanceStore is the host-side destination for glyph transforms and
// colours. Only these per-instance values are ever written; the shared base
// geometry is never touched.
type InstanceStore interface {
	// Len returns the number of instance slots.
	Len() int
	SetTransform(i int, m math.Mat4)
	SetColour(i int, c colour.Hex)
	Transform(i int) math.Mat4
}

// Instance is one rigid-body copy of the shared glyph geometry.
type Instance struct {
	Index     int
	Transform math.Mat4
	Colour    colour.Hex
	Label     string
}

// DiscreteStore keeps one Instance per glyph object, for hosts without
// instanced drawing.
type DiscreteStore struct {
	Instances []Instance
}

// NewDiscreteStore allocates n identity instances. Labels are assigned in
// order where present.
func NewDiscreteStore(n int, labels []string) *DiscreteStore {
	s := &DiscreteStore{Instances: make([]Instance, n)}
	for i := range s.Instances {
		s.Instances[i] = Instance{Index: i, Transform: math.Identity(), Colour: colour.White}
		if i < len(labels) {
			s.Instances[i].Label = labels[i]
		}
	}
	return s
}

func (s *DiscreteStore) Len() int { return len(s.Instances) }

func (s *DiscreteStore) SetTransform(i int, m math.Mat4) { s.Instances[i].Transform = m }

func (s *DiscreteStore) SetColour(i int, c colour.Hex) { s.Instances[i].Colour = c }

func (s *DiscreteStore) Transform(i int) math.Mat4 { return s.Instances[i].Transform }

// InstancedStore mirrors an instanced mesh: a flat float32 array of 4x4
// matrices and a flat RGB float32 array, ready for upload as instance
// attributes.
type InstancedStore struct {
	Matrices []float32
	Colours  []float32

	// Version increases on every write; hosts compare it to decide whether
	// the buffers need re-uploading.
	Version uint64
}

// NewInstancedStore allocates n identity matrices and white colours.
func NewInstancedStore(n int) *InstancedStore {
	s := &InstancedStore{
		Matrices: make([]float32, n*16),
		Colours:  make([]float32, n*3),
	}
	id := math.Identity()
	for i := 0; i < n; i++ {
		copy(s.Matrices[i*16:], id[:])
		s.Colours[i*3], s.Colours[i*3+1], s.Colours[i*3+2] = 1, 1, 1
	}
	return s
}

func (s *InstancedStore) Len() int { return len(s.Matrices) / 16 }

func (s *InstancedStore) SetTransform(i int, m math.Mat4) {
	copy(s.Matrices[i*16:i*16+16], m[:])
	s.Version++
}

func (s *InstancedStore) SetColour(i int, c colour.Hex) {
	rgb := c.Color()
	s.Colours[i*3] = float32(rgb.R)
	s.Colours[i*3+1] = float32(rgb.G)
	s.Colours[i*3+2] = float32(rgb.B)
	s.Version++
}

func (s *InstancedStore) Transform(i int) math.Mat4 {
	var m math.Mat4
	copy(m[:], s.Matrices[i*16:i*16+16])
	return m
}

// Colour returns the colour of instance i.
func (s *InstancedStore) Colour(i int) colour.Hex {
	r, g, b := s.Colours[i*3], s.Colours[i*3+1], s.Colours[i*3+2]
	return colour.FromRGB255(uint8(r*255+0.5), uint8(g*255+0.5), uint8(b*255+0.5))
}
