package material

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/texture"
)

// DiffuseLight represents a light-emitting material. It emits from its front face only.
type DiffuseLight struct {
	id   core.ID
	Emit texture.Texture // Emitted light color/intensity
}

// NewDiffuseLight creates a new emissive material
func NewDiffuseLight(id core.ID, emit texture.Texture) *DiffuseLight {
	return &DiffuseLight{id: id, Emit: emit}
}

func (d *DiffuseLight) ID() core.ID { return d.id }

// Scatter absorbs all incoming rays; lights only emit
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

func (d *DiffuseLight) Emitted(hit *HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emit.Value(hit.UV, hit.Point)
}

func (d *DiffuseLight) Accept(v Visitor) error {
	return v.VisitDiffuseLight(d)
}
