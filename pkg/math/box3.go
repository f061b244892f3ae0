package math

// Box3 is an axis-aligned bounding box. The zero value is empty.
type Box3 struct {
	Min, Max Vec3
	valid    bool
}

// NewBox3 returns a box spanning min..max.
func NewBox3(min, max Vec3) Box3 {
	return Box3{Min: min, Max: max, valid: true}
}

// BoxFromPositions computes the box of a flat xyz position array.
func BoxFromPositions(positions []float32) Box3 {
	var b Box3
	for i := 0; i+2 < len(positions); i += 3 {
		b = b.ExpandByPoint(Vec3{positions[i], positions[i+1], positions[i+2]})
	}
	return b
}

// IsEmpty reports whether no point has been added to the box.
func (b Box3) IsEmpty() bool {
	return !b.valid
}

// ExpandByPoint returns the box grown to contain p.
func (b Box3) ExpandByPoint(p Vec3) Box3 {
	if !b.valid {
		return NewBox3(p, p)
	}
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
	return b
}

// Union returns the smallest box containing both boxes.
func (b Box3) Union(other Box3) Box3 {
	if !other.valid {
		return b
	}
	if !b.valid {
		return other
	}
	return NewBox3(b.Min.Min(other.Min), b.Max.Max(other.Max))
}

// Center returns the midpoint of the box.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Corners returns the eight corners of the box.
func (b Box3) Corners() [8]Vec3 {
	lo, hi := b.Min, b.Max
	return [8]Vec3{
		{lo.X, lo.Y, lo.Z}, {hi.X, lo.Y, lo.Z},
		{lo.X, hi.Y, lo.Z}, {hi.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z}, {hi.X, lo.Y, hi.Z},
		{lo.X, hi.Y, hi.Z}, {hi.X, hi.Y, hi.Z},
	}
}

// Transform returns the box enclosing the eight transformed corners.
func (b Box3) Transform(m Mat4) Box3 {
	if !b.valid {
		return b
	}
	var out Box3
	for _, c := range b.Corners() {
		out = out.ExpandByPoint(m.TransformVec3(c))
	}
	return out
}
