// Package timeline maps a local animation time onto discrete keyframes.
package timeline

import gomath "math"

// Selection is the pair of keyframes bracketing a time and the weight of the
// bottom frame: value = Proportion*bottom + (1-Proportion)*top.
type Selection struct {
	Bottom     int
	Top        int
	Proportion float64
}

// Clamp limits raw to [0, duration].
func Clamp(raw, duration float64) float64 {
	if raw > duration {
		return duration
	}
	if raw < 0 {
		return 0
	}
	return raw
}

// Advance moves current forward by delta. A result past duration is wrapped
// by subtracting duration once; large deltas are not reduced modulo duration.
func Advance(current, delta, duration float64) float64 {
	target := current + delta
	if target > duration {
		target -= duration
	}
	return target
}

// Select returns the keyframes bracketing current for an animation of
// frameCount frames spread evenly over duration.
//
// When current falls exactly on a frame the window is widened so that Top is
// always a valid index: the last frame becomes (last-1, last, 0), any other
// frame f becomes (f, f+1, 1).
func Select(current, duration float64, frameCount int) Selection {
	if frameCount <= 1 {
		return Selection{}
	}
	t := current / duration * float64(frameCount-1)
	bottom := int(gomath.Floor(t))
	top := int(gomath.Ceil(t))
	proportion := 1 - (t - float64(bottom))

	if bottom == top {
		if bottom >= frameCount-1 {
			return Selection{Bottom: bottom - 1, Top: bottom, Proportion: 0}
		}
		return Selection{Bottom: bottom, Top: bottom + 1, Proportion: 1}
	}
	return Selection{Bottom: bottom, Top: top, Proportion: proportion}
}
