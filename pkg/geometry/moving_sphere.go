package geometry

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0
// to Center1 at Time1
type MovingSphere struct {
	id       core.ID
	Center0  core.Vec3
	Center1  core.Vec3
	Time0    float64
	Time1    float64
	Radius   float64
	Material material.Material
}

// NewMovingSphere creates a new moving sphere
func NewMovingSphere(id core.ID, center0, center1 core.Vec3, time0, time1, radius float64, material material.Material) *MovingSphere {
	return &MovingSphere{
		id:       id,
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

func (s *MovingSphere) ID() core.ID { return s.id }

// CenterAt returns the center of the sphere at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	f := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(f))
}

// Hit intersects the sphere at the position it has at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(ray, tMin, tMax, s.CenterAt(ray.Time), s.Radius, s.Material)
}

// BoundingBox encloses the sphere at both ends of the time range
func (s *MovingSphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return sphereBox(s.CenterAt(t0), s.Radius).Union(sphereBox(s.CenterAt(t1), s.Radius)), true
}

// PDFValue is zero: moving spheres are not light sampling targets
func (s *MovingSphere) PDFValue(origin, direction core.Vec3) float64 {
	return 0.0
}

func (s *MovingSphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return fallbackDirection
}

func (s *MovingSphere) Accept(v Visitor) error {
	return v.VisitMovingSphere(s)
}
