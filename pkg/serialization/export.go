package serialization

import (
	"fmt"
	"reflect"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/df07/go-raytracer-core/pkg/scene"
	"github.com/df07/go-raytracer-core/pkg/texture"
)

// exporter writes one record per distinct object, children before parents
type exporter struct {
	objects []Object
	seen    map[core.ID]any
}

// FromScene flattens a live scene into records. Shared objects are written
// once and referenced by ID everywhere they are used.
func FromScene(s *scene.Scene) (*Scene, error) {
	if err := s.Validate(); err != nil {
		return nil, encodingFailure(core.NoID, err)
	}

	e := &exporter{seen: make(map[core.ID]any)}

	if done, err := e.enter(s.Configuration.ID(), s.Configuration, "Configuration"); err != nil {
		return nil, err
	} else if !done {
		e.objects = append(e.objects, Object{Configuration: &Configuration{
			ID:           single(s.Configuration.ID()),
			MaximumDepth: s.Configuration.MaximumDepth,
		}})
	}

	if done, err := e.enter(s.Camera.ID(), s.Camera, "Camera"); err != nil {
		return nil, err
	} else if !done {
		c := s.Camera
		e.objects = append(e.objects, Object{Camera: &Camera{
			ID:              single(c.ID()),
			LowerLeftCorner: vec(c.LowerLeftCorner),
			Horizontal:      vec(c.Horizontal),
			Vertical:        vec(c.Vertical),
			Origin:          vec(c.Origin),
			LenseRadius:     c.LensRadius,
			TimeFrom:        c.TimeFrom,
			TimeTo:          c.TimeTo,
		}})
	}

	if done, err := e.enter(s.Sky.ID(), s.Sky, "Sky"); err != nil {
		return nil, err
	} else if !done {
		e.objects = append(e.objects, Object{Sky: &Sky{
			ID:          single(s.Sky.ID()),
			NadirColor:  vec(s.Sky.NadirColor),
			ZenithColor: vec(s.Sky.ZenithColor),
		}})
	}

	if err := s.Root.Accept(e); err != nil {
		return nil, err
	}

	logger.Debugf("exported %d records", len(e.objects))

	return &Scene{
		ConfigurationID: s.Configuration.ID(),
		CameraID:        s.Camera.ID(),
		SkyID:           s.Sky.ID(),
		RootNodeID:      s.Root.ID(),
		Objects:         e.objects,
	}, nil
}

// enter claims id for obj. It reports true when obj was already written.
func (e *exporter) enter(id core.ID, obj any, kind string) (bool, error) {
	if id == core.NoID {
		return true, &Error{Kind: ErrEncodingFailure, Actual: kind, Err: ErrReservedID}
	}
	if prev, ok := e.seen[id]; ok {
		if prev == obj {
			return true, nil
		}
		return true, &Error{Kind: ErrEncodingFailure, ID: id, Actual: kind, Err: ErrDuplicateID}
	}
	e.seen[id] = obj
	return false, nil
}

// isNil also catches a nil pointer stored in an interface
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (e *exporter) node(referrer core.ID, n geometry.Hittable) (core.ID, error) {
	if isNil(n) {
		return core.NoID, &Error{Kind: ErrEncodingFailure, Referrer: referrer, Role: string(roleNode), Err: ErrNilReference}
	}
	if err := n.Accept(e); err != nil {
		return core.NoID, err
	}
	return n.ID(), nil
}

func (e *exporter) material(referrer core.ID, m material.Material) (core.ID, error) {
	if isNil(m) {
		return core.NoID, &Error{Kind: ErrEncodingFailure, Referrer: referrer, Role: string(roleMaterial), Err: ErrNilReference}
	}
	if err := m.Accept(e); err != nil {
		return core.NoID, err
	}
	return m.ID(), nil
}

func (e *exporter) texture(referrer core.ID, t texture.Texture) (core.ID, error) {
	if isNil(t) {
		return core.NoID, &Error{Kind: ErrEncodingFailure, Referrer: referrer, Role: string(roleTexture), Err: ErrNilReference}
	}
	if err := t.Accept(e); err != nil {
		return core.NoID, err
	}
	return t.ID(), nil
}

// Textures

func (e *exporter) VisitConstantTexture(t *texture.ConstantTexture) error {
	if done, err := e.enter(t.ID(), t, "ConstantTexture"); done || err != nil {
		return err
	}
	e.objects = append(e.objects, Object{ConstantTexture: &ConstantTexture{ID: single(t.ID()), Color: vec(t.Color)}})
	return nil
}

func (e *exporter) VisitCheckerTexture(t *texture.CheckerTexture) error {
	if done, err := e.enter(t.ID(), t, "CheckerTexture"); done || err != nil {
		return err
	}
	odd, err := e.texture(t.ID(), t.Odd)
	if err != nil {
		return err
	}
	even, err := e.texture(t.ID(), t.Even)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{CheckerTexture: &CheckerTexture{
		ID:    single(t.ID()),
		Scale: t.Scale,
		Odd:   ref(odd),
		Even:  ref(even),
	}})
	return nil
}

// Materials

func (e *exporter) VisitNoMaterial(m *material.NoMaterial) error {
	if done, err := e.enter(m.ID(), m, "NoMaterial"); done || err != nil {
		return err
	}
	e.objects = append(e.objects, Object{NoMaterial: &NoMaterial{ID: single(m.ID())}})
	return nil
}

func (e *exporter) VisitLambertian(m *material.Lambertian) error {
	if done, err := e.enter(m.ID(), m, "Lambertian"); done || err != nil {
		return err
	}
	albedo, err := e.texture(m.ID(), m.Albedo)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{Lambertian: &Lambertian{ID: single(m.ID()), Albedo: ref(albedo)}})
	return nil
}

func (e *exporter) VisitMetal(m *material.Metal) error {
	if done, err := e.enter(m.ID(), m, "Metal"); done || err != nil {
		return err
	}
	albedo, err := e.texture(m.ID(), m.Albedo)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{Metal: &Metal{ID: single(m.ID()), Albedo: ref(albedo), Fuzz: m.Fuzz}})
	return nil
}

func (e *exporter) VisitDielectric(m *material.Dielectric) error {
	if done, err := e.enter(m.ID(), m, "Dielectric"); done || err != nil {
		return err
	}
	e.objects = append(e.objects, Object{Dielectric: &Dielectric{ID: single(m.ID()), RefIdx: m.RefractiveIndex}})
	return nil
}

func (e *exporter) VisitDiffuseLight(m *material.DiffuseLight) error {
	if done, err := e.enter(m.ID(), m, "DiffuseLight"); done || err != nil {
		return err
	}
	emit, err := e.texture(m.ID(), m.Emit)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{DiffuseLight: &DiffuseLight{ID: single(m.ID()), Emit: ref(emit)}})
	return nil
}

// Shapes

func (e *exporter) VisitSphere(s *geometry.Sphere) error {
	if done, err := e.enter(s.ID(), s, "Sphere"); done || err != nil {
		return err
	}
	mat, err := e.material(s.ID(), s.Material)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{Sphere: &Sphere{
		ID:       single(s.ID()),
		Center:   vec(s.Center),
		Radius:   s.Radius,
		Material: ref(mat),
	}})
	return nil
}

func (e *exporter) VisitMovingSphere(s *geometry.MovingSphere) error {
	if done, err := e.enter(s.ID(), s, "MovingSphere"); done || err != nil {
		return err
	}
	mat, err := e.material(s.ID(), s.Material)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{MovingSphere: &MovingSphere{
		ID:       single(s.ID()),
		Center0:  vec(s.Center0),
		Center1:  vec(s.Center1),
		Time0:    s.Time0,
		Time1:    s.Time1,
		Radius:   s.Radius,
		Material: ref(mat),
	}})
	return nil
}

func (e *exporter) VisitXYRect(r *geometry.XYRect) error {
	if done, err := e.enter(r.ID(), r, "XYRect"); done || err != nil {
		return err
	}
	mat, err := e.material(r.ID(), r.Material)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{XYRect: &XYRect{
		ID: single(r.ID()), X0: r.X0, X1: r.X1, Y0: r.Y0, Y1: r.Y1, K: r.K, Material: ref(mat),
	}})
	return nil
}

func (e *exporter) VisitXZRect(r *geometry.XZRect) error {
	if done, err := e.enter(r.ID(), r, "XZRect"); done || err != nil {
		return err
	}
	mat, err := e.material(r.ID(), r.Material)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{XZRect: &XZRect{
		ID: single(r.ID()), X0: r.X0, X1: r.X1, Z0: r.Z0, Z1: r.Z1, K: r.K, Material: ref(mat),
	}})
	return nil
}

func (e *exporter) VisitYZRect(r *geometry.YZRect) error {
	if done, err := e.enter(r.ID(), r, "YZRect"); done || err != nil {
		return err
	}
	mat, err := e.material(r.ID(), r.Material)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{YZRect: &YZRect{
		ID: single(r.ID()), Y0: r.Y0, Y1: r.Y1, Z0: r.Z0, Z1: r.Z1, K: r.K, Material: ref(mat),
	}})
	return nil
}

func (e *exporter) VisitCuboid(c *geometry.Cuboid) error {
	if done, err := e.enter(c.ID(), c, "Cuboid"); done || err != nil {
		return err
	}
	mat, err := e.material(c.ID(), c.Material)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{Cuboid: &Cuboid{
		ID:       single(c.ID()),
		Min:      vec(c.Min),
		Max:      vec(c.Max),
		Material: ref(mat),
	}})
	return nil
}

func (e *exporter) VisitCollection(c *geometry.Collection) error {
	if done, err := e.enter(c.ID(), c, "Collection"); done || err != nil {
		return err
	}
	children := make([]core.ID, 0, len(c.Children()))
	for i, child := range c.Children() {
		id, err := e.node(c.ID(), child)
		if err != nil {
			return fmt.Errorf("collection %d child %d: %w", c.ID(), i, err)
		}
		children = append(children, id)
	}
	e.objects = append(e.objects, Object{Collection: &Collection{ID: single(c.ID()), ObjectIDList: children}})
	return nil
}

// Instancing wrappers

func (e *exporter) VisitFlipNormals(f *geometry.FlipNormals) error {
	if done, err := e.enter(f.ID(), f, "FlipNormals"); done || err != nil {
		return err
	}
	child, err := e.node(f.ID(), f.Node)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{FlipNormals: &FlipNormals{ID: single(f.ID()), Node: ref(child)}})
	return nil
}

func (e *exporter) VisitRotate(r *geometry.Rotate) error {
	kind := "Rotate" + r.Axis.String()
	if done, err := e.enter(r.ID(), r, kind); done || err != nil {
		return err
	}
	child, err := e.node(r.ID(), r.Node)
	if err != nil {
		return err
	}

	body := Rotate{ID: single(r.ID()), Angle: r.Angle, Node: ref(child)}
	switch r.Axis {
	case geometry.AxisX:
		e.objects = append(e.objects, Object{RotateX: &RotateX{body}})
	case geometry.AxisY:
		e.objects = append(e.objects, Object{RotateY: &RotateY{body}})
	case geometry.AxisZ:
		e.objects = append(e.objects, Object{RotateZ: &RotateZ{body}})
	default:
		return &Error{Kind: ErrEncodingFailure, ID: r.ID(), Actual: kind, Err: fmt.Errorf("unsupported axis %s", r.Axis)}
	}
	return nil
}

func (e *exporter) VisitTranslate(t *geometry.Translate) error {
	if done, err := e.enter(t.ID(), t, "Translate"); done || err != nil {
		return err
	}
	child, err := e.node(t.ID(), t.Node)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{Translate: &Translate{ID: single(t.ID()), Offset: vec(t.Offset), Node: ref(child)}})
	return nil
}

func (e *exporter) VisitScale(s *geometry.Scale) error {
	if done, err := e.enter(s.ID(), s, "Scale"); done || err != nil {
		return err
	}
	child, err := e.node(s.ID(), s.Node)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{Scale: &Scale{ID: single(s.ID()), Factors: vec(s.Factors), Node: ref(child)}})
	return nil
}

func (e *exporter) VisitTransform(t *geometry.Transform) error {
	if done, err := e.enter(t.ID(), t, "Transform"); done || err != nil {
		return err
	}
	child, err := e.node(t.ID(), t.Node)
	if err != nil {
		return err
	}
	e.objects = append(e.objects, Object{Transform: &Transform{ID: single(t.ID()), Matrix: t.Matrix, Node: ref(child)}})
	return nil
}
