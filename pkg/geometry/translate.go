package geometry

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// Translate moves its child by Offset. Offset and Node are read-only after
// construction.
type Translate struct {
	id     core.ID
	Offset core.Vec3
	Node   Hittable
}

// NewTranslate wraps child so that it appears shifted by offset
func NewTranslate(id core.ID, offset core.Vec3, child Hittable) *Translate {
	return &Translate{id: id, Offset: offset, Node: child}
}

func (t *Translate) ID() core.ID { return t.id }

func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	local := ray.WithOriginDirection(ray.Origin.Subtract(t.Offset), ray.Direction)

	hit, ok := t.Node.Hit(local, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

func (t *Translate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := t.Node.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return t.Node.PDFValue(origin.Subtract(t.Offset), direction)
}

func (t *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return t.Node.Random(origin.Subtract(t.Offset), sampler)
}

func (t *Translate) Accept(v Visitor) error {
	return v.VisitTranslate(t)
}
