// Package interp blends keyframe attributes. The same law applies to
// positions, axes, scales and colour channels:
//
//	result = proportion*bottom + (1-proportion)*top
package interp

import (
	"gonum.org/v1/gonum/floats"

	"github.com/Faultbox/zincmorph/pkg/colour"
)

// Array returns a new slice blending bottom and top.
// The slices must have equal length.
func Array(bottom, top []float64, proportion float64) []float64 {
	return ArrayTo(make([]float64, len(bottom)), bottom, top, proportion)
}

// ArrayTo blends bottom and top into dst and returns dst.
// All three slices must have equal length.
func ArrayTo(dst, bottom, top []float64, proportion float64) []float64 {
	floats.ScaleTo(dst, proportion, bottom)
	floats.AddScaled(dst, 1-proportion, top)
	return dst
}

// Colour blends two hex colours channel by channel in linear [0,1] RGB.
func Colour(bottom, top colour.Hex, proportion float64) colour.Hex {
	if proportion == 1 {
		return bottom
	}
	if proportion == 0 {
		return top
	}
	return colour.FromColor(top.Color().BlendRgb(bottom.Color(), proportion))
}
