package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/texture"
)

type kindVisitor struct {
	kinds []string
}

func (k *kindVisitor) VisitNoMaterial(m *NoMaterial) error {
	k.kinds = append(k.kinds, "NoMaterial")
	return nil
}

func (k *kindVisitor) VisitLambertian(m *Lambertian) error {
	k.kinds = append(k.kinds, "Lambertian")
	return nil
}

func (k *kindVisitor) VisitMetal(m *Metal) error {
	k.kinds = append(k.kinds, "Metal")
	return nil
}

func (k *kindVisitor) VisitDielectric(m *Dielectric) error {
	k.kinds = append(k.kinds, "Dielectric")
	return nil
}

func (k *kindVisitor) VisitDiffuseLight(m *DiffuseLight) error {
	k.kinds = append(k.kinds, "DiffuseLight")
	return nil
}

func TestDiffuseLight_EmitsFromFrontFaceOnly(t *testing.T) {
	emit := texture.NewConstantTexture(1, core.NewVec3(15, 15, 15))
	light := NewDiffuseLight(2, emit)

	down := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	front := &HitRecord{}
	front.SetOutwardNormal(down, core.NewVec3(0, 1, 0))
	if got := light.Emitted(front); got != emit.Color {
		t.Errorf("Expected emission %v, got %v", emit.Color, got)
	}

	back := &HitRecord{}
	back.SetOutwardNormal(down, core.NewVec3(0, -1, 0))
	if got := light.Emitted(back); got != (core.Vec3{}) {
		t.Errorf("Expected no emission from back face, got %v", got)
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))
	if _, scattered := light.Scatter(down, front, sampler); scattered {
		t.Error("Lights should not scatter")
	}
}

func TestNoMaterial(t *testing.T) {
	m := NewNoMaterial(5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))
	hit := &HitRecord{}

	if _, scattered := m.Scatter(core.Ray{}, hit, sampler); scattered {
		t.Error("NoMaterial should not scatter")
	}
	if m.Emitted(hit) != (core.Vec3{}) {
		t.Error("NoMaterial should not emit")
	}
	if m.ID() != 5 {
		t.Errorf("Expected id 5, got %d", m.ID())
	}
}

func TestMaterial_Accept(t *testing.T) {
	tex := texture.NewConstantTexture(1, core.Vec3{})
	materials := []Material{
		NewNoMaterial(2),
		NewLambertian(3, tex),
		NewMetal(4, tex, 0),
		NewDielectric(5, 1.5),
		NewDiffuseLight(6, tex),
	}

	visitor := &kindVisitor{}
	for _, m := range materials {
		if err := m.Accept(visitor); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	expected := []string{"NoMaterial", "Lambertian", "Metal", "Dielectric", "DiffuseLight"}
	for i, kind := range expected {
		if visitor.kinds[i] != kind {
			t.Errorf("Expected %s at %d, got %s", kind, i, visitor.kinds[i])
		}
	}
}
