package object

import (
	"go.uber.org/zap"

	"github.com/Faultbox/zincmorph/internal/engine/timeline"
	"github.com/Faultbox/zincmorph/internal/logger"
	"github.com/Faultbox/zincmorph/pkg/colour"
)

// Core is the state shared by every object kind. Concrete objects embed it
// by value.
type Core struct {
	id   ID
	name string
	kind Kind

	cursor      *timeline.Cursor
	timeVarying bool
	morphColour bool

	ready    bool
	visible  bool
	disposed bool

	// Material state
	colour      colour.Hex
	opacity     float64
	transparent bool

	boxStale bool

	log *zap.Logger
}

func newCore(id ID, kind Kind, opts Options, clip timeline.Clip, log *zap.Logger) Core {
	log = logger.OrNop(log).With(
		zap.Int64("id", int64(id)),
		zap.Stringer("kind", kind),
	)
	c := Core{
		id:          id,
		name:        opts.Name,
		kind:        kind,
		cursor:      timeline.NewCursor(opts.Duration, clip),
		timeVarying: opts.TimeEnabled,
		morphColour: opts.MorphColour,
		visible:     true,
		colour:      opts.Colour,
		boxStale:    true,
		log:         log,
	}
	c.SetAlpha(opts.Opacity)
	return c
}

func (c *Core) ID() ID { return c.id }

func (c *Core) Name() string { return c.name }

// SetName renames the object.
func (c *Core) SetName(name string) { c.name = name }

func (c *Core) Kind() Kind { return c.kind }

// IsReady reports whether the object's geometry has been attached and it has
// not been disposed.
func (c *Core) IsReady() bool { return c.ready && !c.disposed }

// IsTimeVarying reports whether the object animates, either through time or
// through morphed colours. It is fixed at creation.
func (c *Core) IsTimeVarying() bool { return c.timeVarying || c.morphColour }

// CurrentTime returns the local time in [0, Duration()].
func (c *Core) CurrentTime() float64 { return c.cursor.Current() }

func (c *Core) Duration() float64 { return c.cursor.Duration() }

// SetDuration changes the local duration; the current time is clamped.
func (c *Core) SetDuration(d float64) {
	c.cursor.SetDuration(d)
	c.boxStale = true
}

// TimeMode reports where the object keeps its time.
func (c *Core) TimeMode() timeline.Mode { return c.cursor.Mode() }

func (c *Core) Visible() bool { return c.visible }

// SetVisible shows or hides the object. Hidden objects report no bounding
// box.
func (c *Core) SetVisible(v bool) { c.visible = v }

// MorphColour reports whether colours are driven by time.
func (c *Core) MorphColour() bool { return c.morphColour }

// ColourHex returns the material colour. ok is false while colours are
// morphed, since there is no single colour then.
func (c *Core) ColourHex() (hex colour.Hex, ok bool) {
	if c.morphColour {
		return 0, false
	}
	return c.colour, true
}

// SetColourHex sets the material colour.
func (c *Core) SetColourHex(hex colour.Hex) { c.colour = hex }

func (c *Core) Opacity() float64 { return c.opacity }

// Transparent reports whether the material needs blending.
func (c *Core) Transparent() bool { return c.transparent }

// SetAlpha sets the opacity; anything below one turns transparency on.
func (c *Core) SetAlpha(alpha float64) {
	c.opacity = alpha
	c.transparent = alpha < 1
}

// Dispose releases the object. It is no longer ready afterwards.
func (c *Core) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.log.Debug("object disposed", zap.String("name", c.name))
}

// setTime moves the cursor and reports whether the time changed.
func (c *Core) setTime(t float64) bool {
	if !c.cursor.Set(t) {
		return false
	}
	c.boxStale = true
	return true
}

// advance moves time forward for one render tick. It reports false when
// nothing moved.
func (c *Core) advance(delta float64, play bool) bool {
	if !play {
		return false
	}
	c.cursor.Advance(delta)
	if delta == 0 {
		return false
	}
	c.boxStale = true
	return true
}
