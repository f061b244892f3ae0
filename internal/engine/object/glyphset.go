package object

import (
	"go.uber.org/zap"

	"github.com/Faultbox/zincmorph/internal/engine/glyph"
	"github.com/Faultbox/zincmorph/pkg/math"
)

// Glyphset is a field of oriented glyphs sharing one base geometry. Each
// source point yields one to three instances depending on the repeat mode.
type Glyphset struct {
	Core

	data   *glyph.Data
	writer *glyph.Writer
	frame  glyph.Frame
	store  glyph.InstanceStore

	base       *MeshGeometry
	baseBox    math.Box3
	box        math.Box3
	instancing bool
	skipped    int
}

// NewGlyphset returns a glyphset over data. It becomes ready once a base
// geometry is attached with SetBaseGeometry.
func NewGlyphset(id ID, data *glyph.Data, opts Options, log *zap.Logger) *Glyphset {
	opts.TimeEnabled = data.Spec.IsTimeVarying()
	opts.MorphColour = data.Spec.MorphColours
	g := &Glyphset{
		Core:       newCore(id, KindGlyphset, opts, nil, log),
		data:       data,
		writer:     glyph.NewWriter(&data.Spec),
		instancing: opts.Instancing,
	}
	return g
}

// IsTimeVarying reports whether the field has keyframes that morph. Colour
// morphing without time steps does not count.
func (g *Glyphset) IsTimeVarying() bool { return g.timeVarying }

// Spec returns the field configuration.
func (g *Glyphset) Spec() *glyph.FieldSpec { return &g.data.Spec }

// Store returns the instance store, or nil before SetBaseGeometry.
func (g *Glyphset) Store() glyph.InstanceStore { return g.store }

// Skipped returns the number of source points dropped by the last update.
func (g *Glyphset) Skipped() int { return g.skipped }

// SetBaseGeometry attaches the shared glyph geometry, allocates the instance
// store and writes the transforms and colours for the current time.
func (g *Glyphset) SetBaseGeometry(base *MeshGeometry) {
	if g.disposed {
		return
	}
	n := g.data.Spec.NumberOfVertices
	if g.instancing {
		g.store = glyph.NewInstancedStore(n)
	} else {
		g.store = glyph.NewDiscreteStore(n, g.data.Labels)
	}
	g.base = base
	g.baseBox = base.BoundingBox()
	g.ready = true
	g.update(true)

	g.log.Info("glyphset ready",
		zap.String("name", g.name),
		zap.Stringer("repeat_mode", g.data.Spec.RepeatMode),
		zap.Int("instances", n),
		zap.Int("time_steps", len(g.data.Frames)),
		zap.Bool("instancing", g.instancing))
}

// SetMorphTime moves the glyphset to t and rewrites instances if the time
// actually changed.
func (g *Glyphset) SetMorphTime(t float64) {
	if !g.setTime(t) {
		return
	}
	if g.IsReady() && g.timeVarying {
		g.update(false)
	}
}

// Render advances time by delta while play is set.
func (g *Glyphset) Render(delta float64, play bool) {
	if !g.advance(delta, play) {
		return
	}
	if g.IsReady() && g.timeVarying {
		g.update(false)
	}
}

// update samples the keyframes at the current time and writes the changed
// attributes. all forces geometry and colours to be written.
func (g *Glyphset) update(all bool) {
	spec := &g.data.Spec
	g.data.Sample(g.cursor.Selection(len(g.data.Frames)), &g.frame)

	if all || spec.MorphVertices {
		_, skipped := g.writer.UpdateTransforms(&g.frame, g.store)
		if skipped != g.skipped {
			if skipped > 0 {
				g.log.Warn("glyph points skipped",
					zap.Int("skipped", skipped),
					zap.Stringer("repeat_mode", spec.RepeatMode))
			}
			g.skipped = skipped
		}
		g.boxStale = true
	}
	if g.frame.Colours != nil && (all || spec.MorphColours) {
		g.writer.UpdateColours(g.frame.Colours, g.store)
	}
}

// BoundingBox returns the union of the base geometry box placed at every
// instance.
func (g *Glyphset) BoundingBox() (math.Box3, bool) {
	if !g.visible || !g.IsReady() {
		return math.Box3{}, false
	}
	if g.boxStale {
		var box math.Box3
		for i := 0; i < g.store.Len(); i++ {
			box = box.Union(g.baseBox.Transform(g.store.Transform(i)))
		}
		g.box = box
		g.boxStale = false
	}
	return g.box, !g.box.IsEmpty()
}

// Dispose drops the instance store.
func (g *Glyphset) Dispose() {
	if g.disposed {
		return
	}
	g.store = nil
	g.frame = glyph.Frame{}
	g.Core.Dispose()
}

var (
	_ Animatable          = (*Glyphset)(nil)
	_ BoundingBoxProvider = (*Glyphset)(nil)
)
