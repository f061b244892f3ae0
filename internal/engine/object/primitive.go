package object

import (
	"go.uber.org/zap"

	"github.com/Faultbox/zincmorph/internal/engine/morph"
	"github.com/Faultbox/zincmorph/pkg/math"
)

// primitive is a mesh-backed object, optionally animated by a morph clip.
type primitive struct {
	Core

	geometry *MeshGeometry
	clip     MorphClip
	box      math.Box3
}

func newPrimitive(id ID, kind Kind, g *MeshGeometry, clip MorphClip, opts Options, log *zap.Logger) primitive {
	p := primitive{geometry: g, clip: clip}
	// The clip owns the object's time only when time is enabled. Otherwise
	// it just supplies influences for colour and bounds.
	if clip != nil && opts.TimeEnabled {
		p.Core = newCore(id, kind, opts, clip, log)
	} else {
		// keep the cursor's clip a true nil interface
		p.Core = newCore(id, kind, opts, nil, log)
	}
	p.ready = g != nil
	if p.ready {
		p.log.Debug("primitive ready",
			zap.Int("vertices", len(g.Positions)/3),
			zap.Int("morph_targets", len(g.MorphPositions)),
			zap.Stringer("time_mode", p.TimeMode()))
		p.updateColours()
	}
	return p
}

// Geometry returns the attached buffers.
func (p *primitive) Geometry() *MeshGeometry { return p.geometry }

// Clip returns the morph clip, or nil.
func (p *primitive) Clip() MorphClip { return p.clip }

// SetMorphTime moves the object to t and refreshes morphed colours if the
// time actually changed.
func (p *primitive) SetMorphTime(t float64) {
	if !p.setTime(t) {
		return
	}
	p.updateColours()
}

// Render advances time by delta while play is set.
func (p *primitive) Render(delta float64, play bool) {
	if !p.advance(delta, play) {
		return
	}
	p.updateColours()
}

// BoundingBox returns the world box of the current morphed positions.
func (p *primitive) BoundingBox() (math.Box3, bool) {
	if !p.visible || !p.IsReady() {
		return math.Box3{}, false
	}
	if p.boxStale {
		var influences []float64
		if p.clip != nil {
			influences = p.clip.Influences()
		}
		p.box = p.geometry.MorphedBoundingBox(influences)
		p.boxStale = false
	}
	return p.box, !p.box.IsEmpty()
}

// updateColours republishes the morph colour attributes, or the legacy face
// colours, for the current time.
func (p *primitive) updateColours() {
	if !p.morphColour || !p.IsReady() {
		return
	}
	g := p.geometry
	switch {
	case len(g.MorphColours) > 0 && p.clip != nil:
		c0, c1, ok := morph.Republish(g.MorphColours, p.clip.Influences())
		if !ok {
			return
		}
		g.MorphColour0, g.MorphColour1 = c0, c1
		g.ColourVersion++
	case len(g.FaceColourKeys) > 0 && len(g.Faces) > 0:
		sel := p.cursor.Selection(len(g.FaceColourKeys))
		morph.UpdateVertexColours(g.Faces, g.FaceColourKeys[sel.Bottom], g.FaceColourKeys[sel.Top], sel.Proportion)
		g.VertexColours = true
		g.ColourVersion++
	}
}

// Geometry is a morphing triangle mesh.
type Geometry struct {
	primitive
	wireframe bool
}

// NewGeometry wraps g. clip may be nil; it drives time only when
// opts.TimeEnabled is set.
func NewGeometry(id ID, g *MeshGeometry, clip MorphClip, opts Options, log *zap.Logger) *Geometry {
	return &Geometry{primitive: newPrimitive(id, KindGeometry, g, clip, opts, log)}
}

func (g *Geometry) Wireframe() bool { return g.wireframe }

// SetWireframe toggles wireframe display.
func (g *Geometry) SetWireframe(on bool) { g.wireframe = on }

// Lines is a line-segment primitive.
type Lines struct {
	primitive
	width float64
}

// NewLines wraps g as a line set of width one.
func NewLines(id ID, g *MeshGeometry, clip MorphClip, opts Options, log *zap.Logger) *Lines {
	return &Lines{primitive: newPrimitive(id, KindLines, g, clip, opts, log), width: 1}
}

func (l *Lines) Width() float64 { return l.width }

// SetWidth sets the line width in pixels.
func (l *Lines) SetWidth(w float64) { l.width = w }

// Points is a point-cloud primitive.
type Points struct {
	primitive
	size            float64
	sizeAttenuation bool
}

// NewPoints wraps g as a point set of size one.
func NewPoints(id ID, g *MeshGeometry, clip MorphClip, opts Options, log *zap.Logger) *Points {
	return &Points{primitive: newPrimitive(id, KindPoints, g, clip, opts, log), size: 1}
}

func (p *Points) Size() float64 { return p.size }

// SetSize sets the point size.
func (p *Points) SetSize(s float64) { p.size = s }

func (p *Points) SizeAttenuation() bool { return p.sizeAttenuation }

// SetSizeAttenuation makes point size shrink with distance.
func (p *Points) SetSizeAttenuation(on bool) { p.sizeAttenuation = on }

var (
	_ Animatable          = (*Geometry)(nil)
	_ Animatable          = (*Lines)(nil)
	_ Animatable          = (*Points)(nil)
	_ BoundingBoxProvider = (*Geometry)(nil)
)
