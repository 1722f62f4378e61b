package material

import "github.com/df07/go-raytracer-core/pkg/core"

// NoMaterial absorbs everything and emits nothing. It is used for geometry
// that only matters as a sampling target or a bounding volume.
type NoMaterial struct {
	id core.ID
}

// NewNoMaterial creates a new absorbing placeholder material
func NewNoMaterial(id core.ID) *NoMaterial {
	return &NoMaterial{id: id}
}

func (n *NoMaterial) ID() core.ID { return n.id }

func (n *NoMaterial) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

func (n *NoMaterial) Emitted(hit *HitRecord) core.Vec3 {
	return core.Vec3{}
}

func (n *NoMaterial) Accept(v Visitor) error {
	return v.VisitNoMaterial(n)
}
