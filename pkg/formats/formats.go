// Package formats parses the keyframe and glyph geometry JSON files that
// feed the animation engine.
package formats

import "errors"

// Load-time validation errors.
var (
	ErrMissingFrame      = errors.New("missing keyframe")
	ErrLengthMismatch    = errors.New("array length mismatch")
	ErrUnknownRepeatMode = errors.New("unknown repeat mode")
)

// Repeat mode spellings accepted in glyphset metadata.
const (
	RepeatNone   = "NONE"
	RepeatMirror = "MIRROR"
	RepeatAxes2D = "AXES_2D"
	RepeatAxes3D = "AXES_3D"
)
