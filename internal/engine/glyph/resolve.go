package glyph

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Tuple is one resolved glyph frame: origin and three scaled axes.
type Tuple struct {
	Point r3.Vec
	Axis1 r3.Vec
	Axis2 r3.Vec
	Axis3 r3.Vec
}

// Resolve computes the glyph frames for one source point. It returns one
// tuple for RepeatNone, two for RepeatMirror and RepeatAxes2D, three for
// RepeatAxes3D and none for an unknown mode.
func Resolve(point, axis1, axis2, axis3, scale r3.Vec, spec *FieldSpec) []Tuple {
	return ResolveTo(nil, point, axis1, axis2, axis3, scale, spec)
}

// ResolveTo is Resolve appending into dst.
func ResolveTo(dst []Tuple, point, axis1, axis2, axis3, scale r3.Vec, spec *FieldSpec) []Tuple {
	switch spec.RepeatMode {
	case RepeatNone, RepeatMirror:
		return resolveScaled(dst, point, axis1, axis2, axis3, scale, spec)
	case RepeatAxes2D, RepeatAxes3D:
		return resolveSpokes(dst, point, axis1, axis2, axis3, scale, spec)
	}
	return dst
}

func resolveScaled(dst []Tuple, point, axis1, axis2, axis3, scale r3.Vec, spec *FieldSpec) []Tuple {
	s := components(scale)
	var axisScale [3]float64
	for j := 0; j < 3; j++ {
		axisScale[j] = sign(s[j])*spec.BaseSize[j] + s[j]*spec.ScaleFactors[j]
	}

	final := Tuple{
		Axis1: r3.Scale(axisScale[0], axis1),
		Axis2: r3.Scale(axisScale[1], axis2),
		Axis3: r3.Scale(axisScale[2], axis3),
	}
	final.Point = offsetPoint(point, spec.Offset, final.Axis1, final.Axis2, final.Axis3)

	if spec.RepeatMode != RepeatMirror {
		rightHanded(&final)
		return append(dst, final)
	}

	mirrored := Tuple{
		Axis1: r3.Scale(-1, final.Axis1),
		Axis2: r3.Scale(-1, final.Axis2),
		Axis3: r3.Scale(-1, final.Axis3),
	}
	mirrored.Point = offsetPoint(point, spec.Offset, mirrored.Axis1, mirrored.Axis2, mirrored.Axis3)
	if s[0] < 0 {
		// shift glyph origin to end of axis1
		final.Point = r3.Sub(final.Point, final.Axis1)
		mirrored.Point = r3.Sub(mirrored.Point, mirrored.Axis1)
	}

	rightHanded(&final)
	rightHanded(&mirrored)
	return append(dst, final, mirrored)
}

func resolveSpokes(dst []Tuple, point, axis1, axis2, axis3, scale r3.Vec, spec *FieldSpec) []Tuple {
	s := components(scale)
	base, factors := spec.BaseSize, spec.ScaleFactors

	var axisScale [3]float64
	for j := 0; j < 3; j++ {
		axisScale[j] = sign(s[j])*base[0] + s[j]*factors[0]
	}
	finalPoint := offsetPoint(point, spec.Offset,
		r3.Scale(axisScale[0], axis1),
		r3.Scale(axisScale[1], axis2),
		r3.Scale(axisScale[2], axis3))

	is2D := spec.RepeatMode == RepeatAxes2D
	spokes := spec.RepeatMode.Multiplicity()
	for k := 0; k < spokes; k++ {
		var useAxis1, useAxis2 r3.Vec
		switch k {
		case 0:
			useAxis1, useAxis2 = axis1, axis2
		case 1:
			useAxis1, useAxis2 = axis2, axis3
			if is2D {
				useAxis2 = axis1
			}
		default:
			useAxis1, useAxis2 = axis3, axis1
		}
		useScale := s[k]

		t := Tuple{Point: finalPoint}
		t.Axis1 = r3.Scale(base[0]+useScale*factors[0], useAxis1)

		t.Axis3 = r3.Cross(t.Axis1, useAxis2)
		if magnitude := r3.Norm(t.Axis3); magnitude > 0 {
			scaling := (base[2] + useScale*factors[2]) / magnitude
			if is2D && k > 0 {
				scaling = -scaling
			}
			t.Axis3 = r3.Scale(scaling, t.Axis3)
		}

		t.Axis2 = r3.Cross(t.Axis3, t.Axis1)
		if magnitude := r3.Norm(t.Axis2); magnitude > 0 {
			t.Axis2 = r3.Scale((base[1]+useScale*factors[1])/magnitude, t.Axis2)
		}
		dst = append(dst, t)
	}
	return dst
}

// offsetPoint returns point + offset[0]*a1 + offset[1]*a2 + offset[2]*a3.
func offsetPoint(point r3.Vec, offset [3]float64, a1, a2, a3 r3.Vec) r3.Vec {
	p := r3.Add(point, r3.Scale(offset[0], a1))
	p = r3.Add(p, r3.Scale(offset[1], a2))
	return r3.Add(p, r3.Scale(offset[2], a3))
}

// rightHanded negates Axis3 when the frame's triple product is negative.
func rightHanded(t *Tuple) {
	if r3.Dot(t.Axis3, r3.Cross(t.Axis1, t.Axis2)) < 0 {
		t.Axis3 = r3.Scale(-1, t.Axis3)
	}
}

func components(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
