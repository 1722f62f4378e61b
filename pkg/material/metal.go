package material

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/texture"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	id     core.ID
	Albedo texture.Texture // Metal color
	Fuzz   float64         // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material; fuzz is clamped to [0, 1]
func NewMetal(id core.ID, albedo texture.Texture, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{id: id, Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) ID() core.ID { return m.id }

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	normal := hit.ShadingNormal()
	reflected := reflect(rayIn.Direction.Normalize(), normal)

	if m.Fuzz > 0 {
		reflected = reflected.Add(core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzz))
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)

	// Rays perturbed below the surface are absorbed
	scatters := scattered.Direction.Dot(normal) > 0

	return ScatterResult{
		Incoming:    rayIn,
		Scattered:   scattered,
		Attenuation: m.Albedo.Value(hit.UV, hit.Point),
		PDF:         0,
	}, scatters
}

func (m *Metal) Emitted(hit *HitRecord) core.Vec3 {
	return core.Vec3{}
}

func (m *Metal) Accept(v Visitor) error {
	return v.VisitMetal(m)
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
