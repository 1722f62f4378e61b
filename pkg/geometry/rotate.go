package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// Axis selects the coordinate axis a Rotate turns around
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Rotate turns its child by Angle radians around one coordinate axis.
// For the axis a, the two other axes u = a+1 and v = a+2 (mod 3) map as
//
//	u' =  cos*u + sin*v
//	v' = -sin*u + cos*v
//
// Rays are taken into the child's frame with the inverse rotation and hits
// are brought back with the forward one.
//
// Axis, Angle and Node are read-only after construction; the cached sine,
// cosine and box are derived from them.
type Rotate struct {
	id    core.ID
	Axis  Axis
	Angle float64
	Node  Hittable

	sin, cos float64
	bbox     core.AABB
	hasBBox  bool
}

// NewRotate wraps child in a rotation of angle radians around axis.
// The bounding box is computed once from the child's box over the shutter
// interval. Only the rotation axes u and v mix, so four corners covering
// every (u, v) combination of the box bound the rotated box exactly.
func NewRotate(id core.ID, axis Axis, angle float64, child Hittable) *Rotate {
	r := &Rotate{
		id:    id,
		Axis:  axis,
		Angle: angle,
		Node:  child,
		sin:   math.Sin(angle),
		cos:   math.Cos(angle),
	}

	if childBox, ok := child.BoundingBox(ShutterOpen, ShutterClose); ok {
		_, v := r.axes()
		min, max := childBox.Min, childBox.Max
		corners := []core.Vec3{
			min,
			max,
			min.WithComponent(v, max.Component(v)),
			max.WithComponent(v, min.Component(v)),
		}
		for i := range corners {
			corners[i] = r.rotate(corners[i])
		}
		r.bbox = core.NewAABBFromPoints(corners...)
		r.hasBBox = true
	}

	return r
}

// NewRotateX rotates child around the X axis
func NewRotateX(id core.ID, angle float64, child Hittable) *Rotate {
	return NewRotate(id, AxisX, angle, child)
}

// NewRotateY rotates child around the Y axis
func NewRotateY(id core.ID, angle float64, child Hittable) *Rotate {
	return NewRotate(id, AxisY, angle, child)
}

// NewRotateZ rotates child around the Z axis
func NewRotateZ(id core.ID, angle float64, child Hittable) *Rotate {
	return NewRotate(id, AxisZ, angle, child)
}

func (r *Rotate) axes() (int, int) {
	a := int(r.Axis)
	return (a + 1) % 3, (a + 2) % 3
}

func (r *Rotate) rotate(p core.Vec3) core.Vec3 {
	u, v := r.axes()
	pu, pv := p.Component(u), p.Component(v)
	return p.WithComponent(u, r.cos*pu+r.sin*pv).
		WithComponent(v, -r.sin*pu+r.cos*pv)
}

func (r *Rotate) rotateInverse(p core.Vec3) core.Vec3 {
	u, v := r.axes()
	pu, pv := p.Component(u), p.Component(v)
	return p.WithComponent(u, r.cos*pu-r.sin*pv).
		WithComponent(v, r.sin*pu+r.cos*pv)
}

func (r *Rotate) ID() core.ID { return r.id }

func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	local := ray.WithOriginDirection(r.rotateInverse(ray.Origin), r.rotateInverse(ray.Direction))

	hit, ok := r.Node.Hit(local, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = r.rotate(hit.Point)
	hit.Normal = r.rotate(hit.Normal)
	return hit, true
}

// BoundingBox returns the box cached at construction; the time range is ignored
func (r *Rotate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return r.bbox, r.hasBBox
}

func (r *Rotate) PDFValue(origin, direction core.Vec3) float64 {
	return r.Node.PDFValue(r.rotateInverse(origin), r.rotateInverse(direction))
}

func (r *Rotate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.rotate(r.Node.Random(r.rotateInverse(origin), sampler))
}

func (r *Rotate) Accept(v Visitor) error {
	return v.VisitRotate(r)
}
