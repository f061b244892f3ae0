package object

import (
	stdmath "math"

	"github.com/Faultbox/zincmorph/internal/engine/timeline"
)

// MorphClip is a host clip that also exposes the morph target influences it
// produces.
type MorphClip interface {
	timeline.Clip
	Influences() []float64
}

// LinearMorphClip blends a sequence of morph targets linearly over its
// duration: at any time at most two neighbouring targets have non-zero
// influence and the influences sum to one. Advance loops.
type LinearMorphClip struct {
	duration   float64
	time       float64
	influences []float64
}

// NewLinearMorphClip returns a clip over targets morph targets lasting
// duration native units.
func NewLinearMorphClip(targets int, duration float64) *LinearMorphClip {
	c := &LinearMorphClip{duration: duration, influences: make([]float64, targets)}
	c.apply()
	return c
}

func (c *LinearMorphClip) Time() float64 { return c.time }

func (c *LinearMorphClip) Duration() float64 { return c.duration }

func (c *LinearMorphClip) SetTime(t float64) {
	c.time = timeline.Clamp(t, c.duration)
	c.apply()
}

func (c *LinearMorphClip) Advance(delta float64) {
	if c.duration <= 0 {
		return
	}
	c.time = stdmath.Mod(c.time+delta, c.duration)
	if c.time < 0 {
		c.time += c.duration
	}
	c.apply()
}

// Influences returns the current weight of every target. The slice is
// reused between calls.
func (c *LinearMorphClip) Influences() []float64 {
	return c.influences
}

func (c *LinearMorphClip) apply() {
	for i := range c.influences {
		c.influences[i] = 0
	}
	n := len(c.influences)
	switch {
	case n == 0:
		return
	case n == 1 || c.duration <= 0:
		c.influences[0] = 1
		return
	}
	sel := timeline.Select(c.time, c.duration, n)
	c.influences[sel.Bottom] += sel.Proportion
	c.influences[sel.Top] += 1 - sel.Proportion
}
