// Package object implements the animatable scene objects: morphing meshes,
// lines, point sets and glyph fields. Every object keeps its own local time
// through a timeline.Cursor and is driven by Render and SetMorphTime.
package object

import (
	"fmt"

	"github.com/Faultbox/zincmorph/internal/config"
	"github.com/Faultbox/zincmorph/pkg/colour"
	"github.com/Faultbox/zincmorph/pkg/math"
)

// ID identifies an object within its scene. Scenes allocate IDs; objects
// never generate their own.
type ID int64

// Kind tells the concrete type behind an Animatable.
type Kind int

const (
	KindGeometry Kind = iota
	KindLines
	KindPoints
	KindGlyphset
)

var kindNames = [...]string{"geometry", "lines", "points", "glyphset"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Animatable is the capability every scene object offers to the scene.
type Animatable interface {
	ID() ID
	Name() string
	Kind() Kind

	// Render advances the object's time by delta when play is set.
	Render(delta float64, play bool)
	// SetMorphTime moves the object to time t in [0, Duration()].
	SetMorphTime(t float64)
	CurrentTime() float64
	Duration() float64
	SetDuration(d float64)

	IsReady() bool
	IsTimeVarying() bool
	Visible() bool
	Dispose()
}

// BoundingBoxProvider is implemented by objects that can report their world
// extent. ok is false when the object has nothing to report.
type BoundingBoxProvider interface {
	BoundingBox() (box math.Box3, ok bool)
}

// Options carries the per-object settings that would otherwise come from
// global defaults.
type Options struct {
	Name     string
	Duration float64
	Colour   colour.Hex
	Opacity  float64
	// TimeEnabled marks the object as time varying. Morph clips are only
	// attached to time-enabled objects.
	TimeEnabled bool
	MorphColour bool
	// Instancing selects an instanced store for glyphsets.
	Instancing bool
}

// OptionsFromConfig returns the defaults configured for a scene.
func OptionsFromConfig(cfg config.SceneConfig) Options {
	return Options{
		Duration:   cfg.Duration,
		Colour:     cfg.DefaultColour,
		Opacity:    cfg.DefaultOpacity,
		Instancing: cfg.Instancing,
	}
}
