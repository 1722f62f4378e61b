package material

import (
	"github.com/df07/go-raytracer-core/pkg/core"
)

// Material interface for objects that can scatter or emit light
type Material interface {
	// ID returns the identifier of this material in its scene graph
	ID() core.ID

	// Scatter generates a scattered ray for an incoming ray at a hit
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the light emitted at the hit point (zero for non-emitters)
	Emitted(hit *HitRecord) core.Vec3

	// Accept dispatches to the visitor method for the concrete material kind
	Accept(v Visitor) error
}

// Visitor has one method per concrete material kind
type Visitor interface {
	VisitNoMaterial(m *NoMaterial) error
	VisitLambertian(m *Lambertian) error
	VisitMetal(m *Metal) error
	VisitDielectric(m *Dielectric) error
	VisitDiffuseLight(m *DiffuseLight) error
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Incoming    core.Ray  // The incoming ray
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
	PDF         float64   // Probability density function (0 for specular materials)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// HitRecord contains information about a ray-object intersection.
// Normal is the outward geometric normal; it is not turned toward the ray.
type HitRecord struct {
	T         float64   // Parameter t along the ray
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Outward surface normal at intersection
	FrontFace bool      // Whether the ray arrived from the outward side
	UV        core.Vec2 // Surface texture coordinates
	Material  Material  // Material of the hit object
}

// SetOutwardNormal stores the outward normal and determines front/back face
func (h *HitRecord) SetOutwardNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.Normal = outwardNormal
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
}

// ShadingNormal returns the normal on the side the ray arrived from
func (h *HitRecord) ShadingNormal() core.Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}
