// Package colour provides the packed 0xRRGGBB colour type used by keyframe
// data and instance stores, with conversions to linear RGB floats.
package colour

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex is a 24-bit 0xRRGGBB colour.
type Hex uint32

// White is the default material colour.
const White Hex = 0xFFFFFF

// FromRGB255 packs 8-bit channels.
func FromRGB255(r, g, b uint8) Hex {
	return Hex(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromColor encodes a float RGB colour, clamping each channel to [0,1].
func FromColor(c colorful.Color) Hex {
	return FromRGB255(c.Clamped().RGB255())
}

// RGB255 returns the 8-bit channels.
func (h Hex) RGB255() (r, g, b uint8) {
	return uint8(h >> 16), uint8(h >> 8), uint8(h)
}

// Color decomposes the hex value into [0,1] RGB floats. No gamma is applied.
func (h Hex) Color() colorful.Color {
	r, g, b := h.RGB255()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// String returns the colour as #rrggbb.
func (h Hex) String() string {
	return fmt.Sprintf("#%06x", uint32(h)&0xFFFFFF)
}

// Parse accepts "#rrggbb", "#rgb", "0xrrggbb" or a bare decimal integer.
func Parse(s string) (Hex, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return 0, fmt.Errorf("parse colour %q: %w", s, err)
		}
		return FromColor(c), nil
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("parse colour %q: %w", s, err)
		}
		return Hex(v & 0xFFFFFF), nil
	default:
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("parse colour %q: %w", s, err)
		}
		return Hex(v & 0xFFFFFF), nil
	}
}

// MarshalText implements encoding.TextMarshaler.
func (h Hex) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hex) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
