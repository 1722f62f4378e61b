package geometry

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// Cuboid is an axis-aligned box made of six rectangles. The faces on the
// minimum side of each axis are flipped so every face normal points outward.
// The faces are private to the cuboid and are not nodes of the scene graph.
type Cuboid struct {
	id       core.ID
	Min      core.Vec3
	Max      core.Vec3
	Material material.Material
	faces    *Collection
}

// NewCuboid creates a box spanning min to max
func NewCuboid(id core.ID, min, max core.Vec3, material material.Material) *Cuboid {
	faces := NewCollection(core.NoID,
		NewXYRect(core.NoID, min.X, max.X, min.Y, max.Y, max.Z, material),
		NewFlipNormals(core.NoID, NewXYRect(core.NoID, min.X, max.X, min.Y, max.Y, min.Z, material)),
		NewXZRect(core.NoID, min.X, max.X, min.Z, max.Z, max.Y, material),
		NewFlipNormals(core.NoID, NewXZRect(core.NoID, min.X, max.X, min.Z, max.Z, min.Y, material)),
		NewYZRect(core.NoID, min.Y, max.Y, min.Z, max.Z, max.X, material),
		NewFlipNormals(core.NoID, NewYZRect(core.NoID, min.Y, max.Y, min.Z, max.Z, min.X, material)),
	)

	return &Cuboid{
		id:       id,
		Min:      min,
		Max:      max,
		Material: material,
		faces:    faces,
	}
}

func (c *Cuboid) ID() core.ID { return c.id }

// Hit tests if a ray intersects with any face of the box
func (c *Cuboid) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return c.faces.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box itself
func (c *Cuboid) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(c.Min, c.Max), true
}

func (c *Cuboid) PDFValue(origin, direction core.Vec3) float64 {
	return c.faces.PDFValue(origin, direction)
}

func (c *Cuboid) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return c.faces.Random(origin, sampler)
}

func (c *Cuboid) Accept(v Visitor) error {
	return v.VisitCuboid(c)
}
