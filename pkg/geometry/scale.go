package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// Scale stretches its child by per-axis Factors around the origin.
// Negative factors mirror the child. Factors and Node are read-only after
// construction; the cached box is derived from them.
type Scale struct {
	id      core.ID
	Factors core.Vec3
	Node    Hittable

	bbox    core.AABB
	hasBBox bool
}

// NewScale wraps child in a per-axis scale. Every factor must be non-zero.
func NewScale(id core.ID, factors core.Vec3, child Hittable) (*Scale, error) {
	if factors.X == 0 || factors.Y == 0 || factors.Z == 0 {
		return nil, fmt.Errorf("scale %v: %w", factors, ErrZeroScale)
	}

	s := &Scale{id: id, Factors: factors, Node: child}
	if childBox, ok := child.BoundingBox(ShutterOpen, ShutterClose); ok {
		corners := childBox.Corners()
		for i := range corners {
			corners[i] = corners[i].MultiplyVec(factors)
		}
		s.bbox = core.NewAABBFromPoints(corners[:]...)
		s.hasBBox = true
	}
	return s, nil
}

func (s *Scale) ID() core.ID { return s.id }

func (s *Scale) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	local := ray.WithOriginDirection(ray.Origin.DivideVec(s.Factors), ray.Direction.DivideVec(s.Factors))

	hit, ok := s.Node.Hit(local, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.MultiplyVec(s.Factors)
	hit.Normal = hit.Normal.DivideVec(s.Factors).Normalize()
	return hit, true
}

// BoundingBox returns the box cached at construction; the time range is ignored
func (s *Scale) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return s.bbox, s.hasBBox
}

// PDFValue converts the child's solid-angle density through the change of
// variables ω' = M⁻¹ω / |M⁻¹ω|, whose Jacobian is |det M⁻¹| / |M⁻¹ω|³
func (s *Scale) PDFValue(origin, direction core.Vec3) float64 {
	if direction.LengthSquared() == 0 {
		return 0.0
	}
	localDirection := direction.Normalize().DivideVec(s.Factors)
	length := localDirection.Length()

	pdf := s.Node.PDFValue(origin.DivideVec(s.Factors), localDirection.Multiply(1.0/length))
	if pdf == 0 {
		return 0.0
	}

	invDet := 1.0 / math.Abs(s.Factors.X*s.Factors.Y*s.Factors.Z)
	return pdf * invDet / (length * length * length)
}

func (s *Scale) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return s.Node.Random(origin.DivideVec(s.Factors), sampler).MultiplyVec(s.Factors)
}

func (s *Scale) Accept(v Visitor) error {
	return v.VisitScale(s)
}
