package main

import (
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/Faultbox/zincmorph/internal/engine/glyph"
	"github.com/Faultbox/zincmorph/pkg/colour"
)

// out degrades to plain text when stdout is not a terminal.
var out = termenv.NewOutput(os.Stdout)

// swatch renders a colour block followed by its hex code.
func swatch(c colour.Hex) string {
	block := out.String("██").Foreground(out.Color(c.String()))
	return block.String() + " " + c.String()
}

func instanceColour(s glyph.InstanceStore, i int) (colour.Hex, bool) {
	switch st := s.(type) {
	case *glyph.InstancedStore:
		return st.Colour(i), true
	case *glyph.DiscreteStore:
		return st.Instances[i].Colour, true
	}
	return 0, false
}

// rgbHex packs the first RGB triple of a float colour attribute.
func rgbHex(rgb []float32) colour.Hex {
	return colour.FromColor(colorful.Color{R: float64(rgb[0]), G: float64(rgb[1]), B: float64(rgb[2])})
}
