// Package scene groups animatable objects into a region tree and drives
// their time from a render loop.
package scene

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/zincmorph/internal/config"
	"github.com/Faultbox/zincmorph/internal/engine/glyph"
	"github.com/Faultbox/zincmorph/internal/engine/object"
	"github.com/Faultbox/zincmorph/internal/logger"
	"github.com/Faultbox/zincmorph/pkg/math"
)

// Scene owns a region tree, the defaults new objects are created with and
// the identifiers handed to them.
type Scene struct {
	name   string
	config config.SceneConfig
	root   *Region

	nextID  object.ID
	pending int

	metadata map[string]string
	log      *zap.Logger
}

// New creates an empty scene. log may be nil.
func New(name string, cfg config.SceneConfig, log *zap.Logger) *Scene {
	s := &Scene{
		name:     name,
		config:   cfg,
		root:     newRegion("", nil, cfg.Duration),
		metadata: make(map[string]string),
		log:      logger.OrNop(log).With(zap.String("scene", name)),
	}
	s.log.Debug("scene created",
		zap.Float64("duration", cfg.Duration),
		zap.Float64("play_rate", cfg.PlayRate))
	return s
}

func (s *Scene) Name() string { return s.name }

// RootRegion returns the top of the region tree.
func (s *Scene) RootRegion() *Region { return s.root }

// Config returns the scene settings.
func (s *Scene) Config() config.SceneConfig { return s.config }

// NextID allocates a fresh object identifier.
func (s *Scene) NextID() object.ID {
	s.nextID++
	return s.nextID
}

// Options returns the object options for a new object with the given name.
// The duration follows the scene's current duration.
func (s *Scene) Options(name string) object.Options {
	opts := object.OptionsFromConfig(s.config)
	opts.Name = name
	return opts
}

// Logger returns the scene logger, for objects created on its behalf.
func (s *Scene) Logger() *zap.Logger { return s.log }

// AddGeometry creates a mesh object in region r (the root when nil).
func (s *Scene) AddGeometry(r *Region, name string, g *object.MeshGeometry, clip object.MorphClip, timeEnabled, morphColour bool) *object.Geometry {
	opts := s.Options(name)
	opts.TimeEnabled, opts.MorphColour = timeEnabled, morphColour
	obj := object.NewGeometry(s.NextID(), g, clip, opts, s.log)
	s.add(r, obj)
	return obj
}

// AddLines creates a line object in region r (the root when nil).
func (s *Scene) AddLines(r *Region, name string, g *object.MeshGeometry, clip object.MorphClip, timeEnabled, morphColour bool) *object.Lines {
	opts := s.Options(name)
	opts.TimeEnabled, opts.MorphColour = timeEnabled, morphColour
	obj := object.NewLines(s.NextID(), g, clip, opts, s.log)
	s.add(r, obj)
	return obj
}

// AddPoints creates a point set in region r (the root when nil).
func (s *Scene) AddPoints(r *Region, name string, g *object.MeshGeometry, clip object.MorphClip, timeEnabled, morphColour bool) *object.Points {
	opts := s.Options(name)
	opts.TimeEnabled, opts.MorphColour = timeEnabled, morphColour
	obj := object.NewPoints(s.NextID(), g, clip, opts, s.log)
	s.add(r, obj)
	return obj
}

// AddGlyphset creates a glyphset in region r (the root when nil). It is not
// ready until its base geometry is attached.
func (s *Scene) AddGlyphset(r *Region, name string, data *glyph.Data) *object.Glyphset {
	obj := object.NewGlyphset(s.NextID(), data, s.Options(name), s.log)
	s.add(r, obj)
	return obj
}

func (s *Scene) add(r *Region, obj object.Animatable) {
	if r == nil {
		r = s.root
	}
	r.AddObject(obj)
	s.log.Debug("object added",
		zap.Int64("id", int64(obj.ID())),
		zap.String("name", obj.Name()),
		zap.Stringer("kind", obj.Kind()),
		zap.String("region", r.Path()))
}

// BeginLoad records an outstanding download. Rendering is suspended until
// every BeginLoad is matched by EndLoad.
func (s *Scene) BeginLoad() { s.pending++ }

// EndLoad records a finished download.
func (s *Scene) EndLoad() {
	if s.pending > 0 {
		s.pending--
	}
	if s.pending == 0 {
		s.log.Debug("downloads complete")
	}
}

// Pending returns the number of outstanding downloads.
func (s *Scene) Pending() int { return s.pending }

// RenderGeometries advances every ready object by the scene's play rate
// times delta seconds. Nothing happens while downloads are pending.
func (s *Scene) RenderGeometries(delta float64, play bool) {
	s.RenderGeometriesAt(s.config.PlayRate, delta, play)
}

// RenderGeometriesAt is RenderGeometries with an explicit play rate.
func (s *Scene) RenderGeometriesAt(playRate, delta float64, play bool) {
	if s.pending > 0 {
		return
	}
	scaled := playRate * delta
	s.root.Walk(true, func(obj object.Animatable) bool {
		if obj.IsReady() {
			obj.Render(scaled, play)
		}
		return true
	})
}

// SetMorphTime moves every object in the scene to t.
func (s *Scene) SetMorphTime(t float64) {
	s.root.SetMorphTime(t, true)
}

// CurrentTime returns the time of the first object in the scene, or zero
// for an empty scene.
func (s *Scene) CurrentTime() float64 {
	if t, ok := s.root.CurrentTime(); ok {
		return t
	}
	return 0
}

// IsTimeVarying reports whether any object animates.
func (s *Scene) IsTimeVarying() bool {
	return s.root.IsTimeVarying()
}

// IsReady reports whether all downloads finished and every object is ready.
func (s *Scene) IsReady() bool {
	if s.pending > 0 {
		return false
	}
	return s.root.Walk(true, func(obj object.Animatable) bool {
		return obj.IsReady()
	})
}

// Duration returns the scene duration.
func (s *Scene) Duration() float64 { return s.config.Duration }

// SetDuration changes the duration of the scene and every object in it.
func (s *Scene) SetDuration(d float64) {
	s.config.Duration = d
	s.root.SetDuration(d)
	s.SetMetadataTag("Duration", formatDuration(d))
}

// BoundingBox returns the world box of every visible object.
func (s *Scene) BoundingBox() (math.Box3, bool) {
	return s.root.BoundingBox(true)
}

// ForEach calls fn for every object of the given kind.
func (s *Scene) ForEach(kind object.Kind, fn func(object.Animatable)) {
	s.root.Walk(true, func(obj object.Animatable) bool {
		if obj.Kind() == kind {
			fn(obj)
		}
		return true
	})
}

// FindByName returns every object with the given name.
func (s *Scene) FindByName(name string) []object.Animatable {
	var found []object.Animatable
	s.root.Walk(true, func(obj object.Animatable) bool {
		if obj.Name() == name {
			found = append(found, obj)
		}
		return true
	})
	return found
}

// SetMetadataTag records a descriptive tag on the scene.
func (s *Scene) SetMetadataTag(key, value string) {
	s.metadata[key] = value
}

// Metadata returns the tag stored under key.
func (s *Scene) Metadata(key string) (string, bool) {
	v, ok := s.metadata[key]
	return v, ok
}

// Dispose disposes every object and empties the region tree.
func (s *Scene) Dispose() {
	n := 0
	s.root.Walk(true, func(object.Animatable) bool {
		n++
		return true
	})
	s.root.dispose()
	s.log.Info("scene disposed", zap.Int("objects", n))
}

// formatDuration renders a millisecond duration for the Duration tag.
func formatDuration(ms float64) string {
	return time.Duration(ms * float64(time.Millisecond)).String()
}
