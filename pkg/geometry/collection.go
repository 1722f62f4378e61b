package geometry

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// boxPadding widens cached child boxes so that rounding in the slab test
// never rejects a grazing hit
const boxPadding = 1e-7

// Collection groups child nodes; a ray hits the closest of them.
// Children are fixed at construction; their boxes are cached then.
type Collection struct {
	id      core.ID
	objects []Hittable

	boxes   []core.AABB // padded child boxes over the shutter interval
	bounded []bool
}

// NewCollection creates a collection over the given children
func NewCollection(id core.ID, objects ...Hittable) *Collection {
	c := &Collection{
		id:      id,
		objects: make([]Hittable, len(objects)),
		boxes:   make([]core.AABB, len(objects)),
		bounded: make([]bool, len(objects)),
	}
	copy(c.objects, objects)

	for i, object := range c.objects {
		if object == nil {
			continue
		}
		if box, ok := object.BoundingBox(ShutterOpen, ShutterClose); ok {
			c.boxes[i] = box.Expand(boxPadding)
			c.bounded[i] = true
		}
	}
	return c
}

func (c *Collection) ID() core.ID { return c.id }

// Children returns the child nodes in order. The slice must not be modified.
func (c *Collection) Children() []Hittable { return c.objects }

// Hit returns the closest hit among all children. Children whose cached box
// the ray misses are skipped; boxes are only trusted for ray times inside the
// shutter interval they were computed for.
func (c *Collection) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestT := tMax
	prune := ray.Time >= ShutterOpen && ray.Time <= ShutterClose

	for i, object := range c.objects {
		if prune && c.bounded[i] && !c.boxes[i].Hit(ray, tMin, closestT) {
			continue
		}
		if hit, isHit := object.Hit(ray, tMin, closestT); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox merges the children's boxes. An empty collection, or one with
// an unbounded child, has no box.
func (c *Collection) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if len(c.objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range c.objects {
		childBox, ok := object.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = childBox
		} else {
			box = box.Union(childBox)
		}
	}
	return box, true
}

// PDFValue averages the children's densities, matching Random's uniform choice of child
func (c *Collection) PDFValue(origin, direction core.Vec3) float64 {
	if len(c.objects) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, object := range c.objects {
		sum += object.PDFValue(origin, direction)
	}
	return sum / float64(len(c.objects))
}

// Random picks a child uniformly and samples a direction toward it
func (c *Collection) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	n := len(c.objects)
	if n == 0 {
		return fallbackDirection
	}

	index := int(sampler.Get1D() * float64(n))
	if index >= n {
		index = n - 1
	}
	return c.objects[index].Random(origin, sampler)
}

func (c *Collection) Accept(v Visitor) error {
	return v.VisitCollection(c)
}
