package scene

import (
	"github.com/Faultbox/zincmorph/internal/engine/object"
	"github.com/Faultbox/zincmorph/pkg/math"
)

// Region is a named node of the scene hierarchy. It owns objects and child
// regions and carries a local transform applied to everything below it.
type Region struct {
	name     string
	parent   *Region
	children []*Region
	objects  []object.Animatable

	transform math.Mat4
	duration  float64
}

func newRegion(name string, parent *Region, duration float64) *Region {
	return &Region{
		name:      name,
		parent:    parent,
		transform: math.Identity(),
		duration:  duration,
	}
}

func (r *Region) Name() string { return r.name }

// Parent returns the enclosing region, or nil for the root.
func (r *Region) Parent() *Region { return r.parent }

// Children returns the direct child regions.
func (r *Region) Children() []*Region { return r.children }

// Child returns the direct child with the given name.
func (r *Region) Child(name string) (*Region, bool) {
	for _, c := range r.children {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// CreateChild returns the named child, creating it if needed. New regions
// inherit the parent's duration.
func (r *Region) CreateChild(name string) *Region {
	if c, ok := r.Child(name); ok {
		return c
	}
	c := newRegion(name, r, r.duration)
	r.children = append(r.children, c)
	return c
}

// Path returns the slash separated names from the root, e.g. "/heart/left".
func (r *Region) Path() string {
	if r.parent == nil {
		return "/"
	}
	parent := r.parent.Path()
	if parent == "/" {
		return "/" + r.name
	}
	return parent + "/" + r.name
}

// Transform returns the local transform.
func (r *Region) Transform() math.Mat4 { return r.transform }

// SetTransform replaces the local transform.
func (r *Region) SetTransform(m math.Mat4) { r.transform = m }

// WorldTransform composes the transforms from the root down to r.
func (r *Region) WorldTransform() math.Mat4 {
	if r.parent == nil {
		return r.transform
	}
	return r.parent.WorldTransform().Mul(r.transform)
}

// Objects returns the objects directly in r.
func (r *Region) Objects() []object.Animatable { return r.objects }

// AddObject places obj in r.
func (r *Region) AddObject(obj object.Animatable) {
	r.objects = append(r.objects, obj)
}

// RemoveObject detaches the object with the given ID from r without
// disposing it.
func (r *Region) RemoveObject(id object.ID) (object.Animatable, bool) {
	for i, obj := range r.objects {
		if obj.ID() == id {
			r.objects = append(r.objects[:i], r.objects[i+1:]...)
			return obj, true
		}
	}
	return nil, false
}

// Walk calls fn for every object in r, then, when transverse is set, in
// every descendant region depth first. Returning false stops the walk.
func (r *Region) Walk(transverse bool, fn func(object.Animatable) bool) bool {
	for _, obj := range r.objects {
		if !fn(obj) {
			return false
		}
	}
	if !transverse {
		return true
	}
	for _, c := range r.children {
		if !c.Walk(true, fn) {
			return false
		}
	}
	return true
}

// Duration returns the region's default duration.
func (r *Region) Duration() float64 { return r.duration }

// SetDuration sets the duration of r, its objects and all descendants.
func (r *Region) SetDuration(d float64) {
	r.duration = d
	for _, obj := range r.objects {
		obj.SetDuration(d)
	}
	for _, c := range r.children {
		c.SetDuration(d)
	}
}

// SetMorphTime moves every object in r, and in its descendants when
// transverse is set, to t.
func (r *Region) SetMorphTime(t float64, transverse bool) {
	r.Walk(transverse, func(obj object.Animatable) bool {
		obj.SetMorphTime(t)
		return true
	})
}

// CurrentTime returns the time of the first object found depth first. ok is
// false when the subtree holds no objects.
func (r *Region) CurrentTime() (t float64, ok bool) {
	if len(r.objects) > 0 {
		return r.objects[0].CurrentTime(), true
	}
	for _, c := range r.children {
		if t, ok := c.CurrentTime(); ok {
			return t, true
		}
	}
	return 0, false
}

// IsTimeVarying reports whether any object in the subtree animates.
func (r *Region) IsTimeVarying() bool {
	varying := false
	r.Walk(true, func(obj object.Animatable) bool {
		varying = obj.IsTimeVarying()
		return !varying
	})
	return varying
}

// BoundingBox returns the world box of the objects in r, and of its
// descendants when transverse is set.
func (r *Region) BoundingBox(transverse bool) (math.Box3, bool) {
	var box math.Box3
	for _, obj := range r.objects {
		p, ok := obj.(object.BoundingBoxProvider)
		if !ok {
			continue
		}
		if b, ok := p.BoundingBox(); ok {
			box = box.Union(b)
		}
	}
	box = box.Transform(r.WorldTransform())
	if transverse {
		for _, c := range r.children {
			if b, ok := c.BoundingBox(true); ok {
				box = box.Union(b)
			}
		}
	}
	return box, !box.IsEmpty()
}

// dispose disposes every object in the subtree and forgets them.
func (r *Region) dispose() {
	for _, obj := range r.objects {
		obj.Dispose()
	}
	r.objects = nil
	for _, c := range r.children {
		c.dispose()
	}
	r.children = nil
}
