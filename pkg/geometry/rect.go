package geometry

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// rectThickness pads the flat axis of a rectangle's bounding box
const rectThickness = 0.0001

// rectFrame describes an axis-aligned rectangle spanning [a0,a1]x[b0,b1]
// on the plane where axis k equals the constant K
type rectFrame struct {
	a, b, k        int
	a0, a1, b0, b1 float64
	K              float64
}

func (f rectFrame) hit(ray core.Ray, tMin, tMax float64, mat material.Material) (*material.HitRecord, bool) {
	direction := ray.Direction.Component(f.k)
	if math.Abs(direction) < 1e-8 {
		return nil, false
	}

	t := (f.K - ray.Origin.Component(f.k)) / direction
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	pa := point.Component(f.a)
	pb := point.Component(f.b)
	if pa < f.a0 || pa > f.a1 || pb < f.b0 || pb > f.b1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    point,
		UV:       core.NewVec2((pa-f.a0)/(f.a1-f.a0), (pb-f.b0)/(f.b1-f.b0)),
		Material: mat,
	}
	hitRecord.SetOutwardNormal(ray, core.Vec3{}.WithComponent(f.k, 1))

	return hitRecord, true
}

func (f rectFrame) boundingBox() core.AABB {
	min := core.Vec3{}.WithComponent(f.a, f.a0).WithComponent(f.b, f.b0).WithComponent(f.k, f.K-rectThickness)
	max := core.Vec3{}.WithComponent(f.a, f.a1).WithComponent(f.b, f.b1).WithComponent(f.k, f.K+rectThickness)
	return core.NewAABB(min, max)
}

func (f rectFrame) area() float64 {
	return (f.a1 - f.a0) * (f.b1 - f.b0)
}

// pdfValue converts the uniform area density of the rectangle to solid angle at origin
func (f rectFrame) pdfValue(origin, direction core.Vec3) float64 {
	hit, ok := f.hit(core.NewRay(origin, direction), 0.001, math.Inf(1), nil)
	if !ok {
		return 0.0
	}

	area := f.area()
	if area <= 0 {
		return 0.0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Component(f.k)) / direction.Length()
	if cosine < 1e-12 {
		return 0.0
	}
	return distanceSquared / (cosine * area)
}

func (f rectFrame) random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	point := core.Vec3{}.
		WithComponent(f.a, f.a0+sample.X*(f.a1-f.a0)).
		WithComponent(f.b, f.b0+sample.Y*(f.b1-f.b0)).
		WithComponent(f.k, f.K)
	return point.Subtract(origin)
}

// XYRect is a rectangle in the plane z = K with outward normal +Z
type XYRect struct {
	id             core.ID
	X0, X1, Y0, Y1 float64
	K              float64
	Material       material.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]x[y0,y1] at z = k
func NewXYRect(id core.ID, x0, x1, y0, y1, k float64, material material.Material) *XYRect {
	return &XYRect{id: id, X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

func (r *XYRect) frame() rectFrame {
	return rectFrame{a: 0, b: 1, k: 2, a0: r.X0, a1: r.X1, b0: r.Y0, b1: r.Y1, K: r.K}
}

func (r *XYRect) ID() core.ID { return r.id }

func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return r.frame().hit(ray, tMin, tMax, r.Material)
}

func (r *XYRect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return r.frame().boundingBox(), true
}

func (r *XYRect) PDFValue(origin, direction core.Vec3) float64 {
	return r.frame().pdfValue(origin, direction)
}

func (r *XYRect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.frame().random(origin, sampler)
}

func (r *XYRect) Accept(v Visitor) error {
	return v.VisitXYRect(r)
}

// XZRect is a rectangle in the plane y = K with outward normal +Y
type XZRect struct {
	id             core.ID
	X0, X1, Z0, Z1 float64
	K              float64
	Material       material.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]x[z0,z1] at y = k
func NewXZRect(id core.ID, x0, x1, z0, z1, k float64, material material.Material) *XZRect {
	return &XZRect{id: id, X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

func (r *XZRect) frame() rectFrame {
	return rectFrame{a: 0, b: 2, k: 1, a0: r.X0, a1: r.X1, b0: r.Z0, b1: r.Z1, K: r.K}
}

func (r *XZRect) ID() core.ID { return r.id }

func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return r.frame().hit(ray, tMin, tMax, r.Material)
}

func (r *XZRect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return r.frame().boundingBox(), true
}

func (r *XZRect) PDFValue(origin, direction core.Vec3) float64 {
	return r.frame().pdfValue(origin, direction)
}

func (r *XZRect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.frame().random(origin, sampler)
}

func (r *XZRect) Accept(v Visitor) error {
	return v.VisitXZRect(r)
}

// YZRect is a rectangle in the plane x = K with outward normal +X
type YZRect struct {
	id             core.ID
	Y0, Y1, Z0, Z1 float64
	K              float64
	Material       material.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]x[z0,z1] at x = k
func NewYZRect(id core.ID, y0, y1, z0, z1, k float64, material material.Material) *YZRect {
	return &YZRect{id: id, Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

func (r *YZRect) frame() rectFrame {
	return rectFrame{a: 1, b: 2, k: 0, a0: r.Y0, a1: r.Y1, b0: r.Z0, b1: r.Z1, K: r.K}
}

func (r *YZRect) ID() core.ID { return r.id }

func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return r.frame().hit(ray, tMin, tMax, r.Material)
}

func (r *YZRect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return r.frame().boundingBox(), true
}

func (r *YZRect) PDFValue(origin, direction core.Vec3) float64 {
	return r.frame().pdfValue(origin, direction)
}

func (r *YZRect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.frame().random(origin, sampler)
}

func (r *YZRect) Accept(v Visitor) error {
	return v.VisitYZRect(r)
}
