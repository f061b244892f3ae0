package timeline

// Mode tells where a Cursor keeps its time.
type Mode int

const (
	// Internal keeps the time in the cursor itself.
	Internal Mode = iota
	// DelegatedClip keeps the time in a host clip with its own duration.
	DelegatedClip
)

// String returns the mode name.
func (m Mode) String() string {
	if m == DelegatedClip {
		return "delegated-clip"
	}
	return "internal"
}

// Clip is a host animation clip with its own native duration, e.g. a morph
// target mixer action.
type Clip interface {
	// Time returns the clip's current time in its own units.
	Time() float64
	// SetTime moves the clip and applies the resulting state.
	SetTime(t float64)
	// Duration returns the clip's native duration.
	Duration() float64
	// Advance moves the clip forward by delta, looping as the clip defines.
	Advance(delta float64)
}

// Cursor owns the local time of one animatable object. All conversions
// between the object's duration and a clip's native duration happen here.
type Cursor struct {
	duration float64
	time     float64
	clip     Clip
}

// NewCursor returns a cursor at time zero. A nil clip selects Internal mode.
func NewCursor(duration float64, clip Clip) *Cursor {
	return &Cursor{duration: duration, clip: clip}
}

// Mode returns the cursor's time representation.
func (c *Cursor) Mode() Mode {
	if c.clip != nil {
		return DelegatedClip
	}
	return Internal
}

// Clip returns the delegated clip, or nil in Internal mode.
func (c *Cursor) Clip() Clip {
	return c.clip
}

// Duration returns the local duration.
func (c *Cursor) Duration() float64 {
	return c.duration
}

// SetDuration changes the local duration. The internal time is clamped into
// the new range.
func (c *Cursor) SetDuration(d float64) {
	c.duration = d
	c.time = Clamp(c.time, d)
}

// Current returns the local time in [0, Duration()].
func (c *Cursor) Current() float64 {
	if c.clip != nil {
		d := c.clip.Duration()
		if d == 0 {
			return 0
		}
		return c.duration * (c.clip.Time() / d)
	}
	return c.time
}

// Set moves the cursor to t, clamped to the valid range, and reports whether
// the time actually changed.
func (c *Cursor) Set(t float64) bool {
	if c.clip != nil {
		clipDuration := c.clip.Duration()
		newTime := Clamp(t/c.duration*clipDuration, clipDuration)
		if newTime == c.clip.Time() {
			return false
		}
		c.clip.SetTime(newTime)
		return true
	}
	newTime := Clamp(t, c.duration)
	if newTime == c.time {
		return false
	}
	c.time = newTime
	return true
}

// Advance moves the cursor forward by delta. Internal time wraps once past
// the duration; a delegated clip loops by its own rules.
func (c *Cursor) Advance(delta float64) {
	if c.clip != nil {
		c.clip.Advance(delta)
		return
	}
	c.time = Advance(c.time, delta, c.duration)
}

// Selection returns the keyframe window for frameCount frames at the current
// time.
func (c *Cursor) Selection(frameCount int) Selection {
	return Select(c.Current(), c.duration, frameCount)
}
