package material

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/texture"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	id     core.ID
	Albedo texture.Texture // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(id core.ID, albedo texture.Texture) *Lambertian {
	return &Lambertian{id: id, Albedo: albedo}
}

func (l *Lambertian) ID() core.ID { return l.id }

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	normal := hit.ShadingNormal()

	// Generate cosine-weighted random direction in hemisphere around normal
	scatterDirection := core.SampleCosineHemisphere(normal, sampler.Get2D())
	scattered := core.NewRayAtTime(hit.Point, scatterDirection, rayIn.Time)

	// PDF: cos(θ) / π where θ is angle from normal
	cosTheta := math.Max(0, scatterDirection.Normalize().Dot(normal))
	pdf := cosTheta / math.Pi

	// BRDF: albedo / π
	albedo := l.Albedo.Value(hit.UV, hit.Point)
	attenuation := albedo.Multiply(1.0 / math.Pi)

	return ScatterResult{
		Incoming:    rayIn,
		Scattered:   scattered,
		Attenuation: attenuation,
		PDF:         pdf,
	}, true
}

func (l *Lambertian) Emitted(hit *HitRecord) core.Vec3 {
	return core.Vec3{}
}

func (l *Lambertian) Accept(v Visitor) error {
	return v.VisitLambertian(l)
}
