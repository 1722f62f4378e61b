package geometry

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// FlipNormals turns its child inside out: every hit reports the opposite
// outward normal. Geometry, boxes and sampling are unchanged. Node is
// read-only after construction.
type FlipNormals struct {
	id   core.ID
	Node Hittable
}

// NewFlipNormals wraps child so that its normals point the other way
func NewFlipNormals(id core.ID, child Hittable) *FlipNormals {
	return &FlipNormals{id: id, Node: child}
}

func (f *FlipNormals) ID() core.ID { return f.id }

func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := f.Node.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Normal = hit.Normal.Negate()
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

func (f *FlipNormals) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return f.Node.BoundingBox(t0, t1)
}

func (f *FlipNormals) PDFValue(origin, direction core.Vec3) float64 {
	return f.Node.PDFValue(origin, direction)
}

func (f *FlipNormals) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return f.Node.Random(origin, sampler)
}

func (f *FlipNormals) Accept(v Visitor) error {
	return v.VisitFlipNormals(f)
}
