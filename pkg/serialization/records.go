package serialization

import (
	"errors"
	"fmt"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/df07/go-raytracer-core/pkg/scene"
	"github.com/df07/go-raytracer-core/pkg/texture"
	"github.com/go-gl/mathgl/mgl64"
)

// role is what a reference expects the referenced record to build
type role string

const (
	roleNode          role = "node"
	roleMaterial      role = "material"
	roleTexture       role = "texture"
	roleCamera        role = "camera"
	roleSky           role = "sky"
	roleConfiguration role = "configuration"
)

// Vec is a 3-vector written as a JSON array
type Vec [3]float64

func vec(v core.Vec3) Vec { return Vec{v.X, v.Y, v.Z} }

func (v Vec) toVec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

type record interface {
	kind() string
	role() role
	ids() IDConstructor
	// build creates the index-th object of the record, with the given ID
	build(im *importer, id core.ID, index int) (any, error)
}

// Scene is the persisted form of a scene: its entry points and a flat list
// of records referring to each other by ID
type Scene struct {
	ConfigurationID core.ID  `json:"configuration_id"`
	CameraID        core.ID  `json:"camera_id"`
	SkyID           core.ID  `json:"sky_id"`
	RootNodeID      core.ID  `json:"root_node_id"`
	Objects         []Object `json:"objects"`
}

// Object holds exactly one record, keyed by its kind
type Object struct {
	ConstantTexture *ConstantTexture `json:"ConstantTexture,omitempty"`
	CheckerTexture  *CheckerTexture  `json:"CheckerTexture,omitempty"`
	NoMaterial      *NoMaterial      `json:"NoMaterial,omitempty"`
	Lambertian      *Lambertian      `json:"Lambertian,omitempty"`
	Metal           *Metal           `json:"Metal,omitempty"`
	Dielectric      *Dielectric      `json:"Dielectric,omitempty"`
	DiffuseLight    *DiffuseLight    `json:"DiffuseLight,omitempty"`
	Sphere          *Sphere          `json:"Sphere,omitempty"`
	MovingSphere    *MovingSphere    `json:"MovingSphere,omitempty"`
	XYRect          *XYRect          `json:"XYRect,omitempty"`
	XZRect          *XZRect          `json:"XZRect,omitempty"`
	YZRect          *YZRect          `json:"YZRect,omitempty"`
	Cuboid          *Cuboid          `json:"Cuboid,omitempty"`
	Collection      *Collection      `json:"Collection,omitempty"`
	FlipNormals     *FlipNormals     `json:"FlipNormals,omitempty"`
	RotateX         *RotateX         `json:"RotateX,omitempty"`
	RotateY         *RotateY         `json:"RotateY,omitempty"`
	RotateZ         *RotateZ         `json:"RotateZ,omitempty"`
	Translate       *Translate       `json:"Translate,omitempty"`
	Scale           *Scale           `json:"Scale,omitempty"`
	Transform       *Transform       `json:"Transform,omitempty"`
	Camera          *Camera          `json:"Camera,omitempty"`
	Sky             *Sky             `json:"Sky,omitempty"`
	Configuration   *Configuration   `json:"Configuration,omitempty"`
}

var (
	errNoKind = errors.New("object names no known record kind")
	errNoID   = errors.New("record has no id")
)

// record returns the single record held by o
func (o *Object) record() (record, error) {
	var found []record
	add := func(r record, set bool) {
		if set {
			found = append(found, r)
		}
	}
	add(o.ConstantTexture, o.ConstantTexture != nil)
	add(o.CheckerTexture, o.CheckerTexture != nil)
	add(o.NoMaterial, o.NoMaterial != nil)
	add(o.Lambertian, o.Lambertian != nil)
	add(o.Metal, o.Metal != nil)
	add(o.Dielectric, o.Dielectric != nil)
	add(o.DiffuseLight, o.DiffuseLight != nil)
	add(o.Sphere, o.Sphere != nil)
	add(o.MovingSphere, o.MovingSphere != nil)
	add(o.XYRect, o.XYRect != nil)
	add(o.XZRect, o.XZRect != nil)
	add(o.YZRect, o.YZRect != nil)
	add(o.Cuboid, o.Cuboid != nil)
	add(o.Collection, o.Collection != nil)
	add(o.FlipNormals, o.FlipNormals != nil)
	add(o.RotateX, o.RotateX != nil)
	add(o.RotateY, o.RotateY != nil)
	add(o.RotateZ, o.RotateZ != nil)
	add(o.Translate, o.Translate != nil)
	add(o.Scale, o.Scale != nil)
	add(o.Transform, o.Transform != nil)
	add(o.Camera, o.Camera != nil)
	add(o.Sky, o.Sky != nil)
	add(o.Configuration, o.Configuration != nil)

	switch len(found) {
	case 0:
		return nil, errNoKind
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("object names %d record kinds (%s, %s, ...)", len(found), found[0].kind(), found[1].kind())
	}
}

// Textures

type ConstantTexture struct {
	ID    IDConstructor `json:"id"`
	Color Vec           `json:"color"`
}

func (r *ConstantTexture) kind() string       { return "ConstantTexture" }
func (r *ConstantTexture) role() role         { return roleTexture }
func (r *ConstantTexture) ids() IDConstructor { return r.ID }

func (r *ConstantTexture) build(im *importer, id core.ID, index int) (any, error) {
	return texture.NewConstantTexture(id, r.Color.toVec3()), nil
}

type CheckerTexture struct {
	ID    IDConstructor `json:"id"`
	Scale float64       `json:"scale"`
	Odd   IDReference   `json:"odd"`
	Even  IDReference   `json:"even"`
}

func (r *CheckerTexture) kind() string       { return "CheckerTexture" }
func (r *CheckerTexture) role() role         { return roleTexture }
func (r *CheckerTexture) ids() IDConstructor { return r.ID }

func (r *CheckerTexture) build(im *importer, id core.ID, index int) (any, error) {
	odd, err := im.texture(r.Odd, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	even, err := im.texture(r.Even, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return texture.NewCheckerTexture(id, odd, even, r.Scale), nil
}

// Materials

type NoMaterial struct {
	ID IDConstructor `json:"id"`
}

func (r *NoMaterial) kind() string       { return "NoMaterial" }
func (r *NoMaterial) role() role         { return roleMaterial }
func (r *NoMaterial) ids() IDConstructor { return r.ID }

func (r *NoMaterial) build(im *importer, id core.ID, index int) (any, error) {
	return material.NewNoMaterial(id), nil
}

type Lambertian struct {
	ID     IDConstructor `json:"id"`
	Albedo IDReference   `json:"albedo"`
}

func (r *Lambertian) kind() string       { return "Lambertian" }
func (r *Lambertian) role() role         { return roleMaterial }
func (r *Lambertian) ids() IDConstructor { return r.ID }

func (r *Lambertian) build(im *importer, id core.ID, index int) (any, error) {
	albedo, err := im.texture(r.Albedo, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return material.NewLambertian(id, albedo), nil
}

type Metal struct {
	ID     IDConstructor `json:"id"`
	Albedo IDReference   `json:"albedo"`
	Fuzz   float64       `json:"fuzz"`
}

func (r *Metal) kind() string       { return "Metal" }
func (r *Metal) role() role         { return roleMaterial }
func (r *Metal) ids() IDConstructor { return r.ID }

func (r *Metal) build(im *importer, id core.ID, index int) (any, error) {
	albedo, err := im.texture(r.Albedo, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return material.NewMetal(id, albedo, r.Fuzz), nil
}

type Dielectric struct {
	ID     IDConstructor `json:"id"`
	RefIdx float64       `json:"ref_idx"`
}

func (r *Dielectric) kind() string       { return "Dielectric" }
func (r *Dielectric) role() role         { return roleMaterial }
func (r *Dielectric) ids() IDConstructor { return r.ID }

func (r *Dielectric) build(im *importer, id core.ID, index int) (any, error) {
	return material.NewDielectric(id, r.RefIdx), nil
}

type DiffuseLight struct {
	ID   IDConstructor `json:"id"`
	Emit IDReference   `json:"emit"`
}

func (r *DiffuseLight) kind() string       { return "DiffuseLight" }
func (r *DiffuseLight) role() role         { return roleMaterial }
func (r *DiffuseLight) ids() IDConstructor { return r.ID }

func (r *DiffuseLight) build(im *importer, id core.ID, index int) (any, error) {
	emit, err := im.texture(r.Emit, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return material.NewDiffuseLight(id, emit), nil
}

// Shapes

type Sphere struct {
	ID       IDConstructor `json:"id"`
	Center   Vec           `json:"center"`
	Radius   float64       `json:"radius"`
	Material IDReference   `json:"material"`
}

func (r *Sphere) kind() string       { return "Sphere" }
func (r *Sphere) role() role         { return roleNode }
func (r *Sphere) ids() IDConstructor { return r.ID }

func (r *Sphere) build(im *importer, id core.ID, index int) (any, error) {
	mat, err := im.material(r.Material, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return geometry.NewSphere(id, r.Center.toVec3(), r.Radius, mat), nil
}

type MovingSphere struct {
	ID       IDConstructor `json:"id"`
	Center0  Vec           `json:"center0"`
	Center1  Vec           `json:"center1"`
	Time0    float64       `json:"time0"`
	Time1    float64       `json:"time1"`
	Radius   float64       `json:"radius"`
	Material IDReference   `json:"material"`
}

func (r *MovingSphere) kind() string       { return "MovingSphere" }
func (r *MovingSphere) role() role         { return roleNode }
func (r *MovingSphere) ids() IDConstructor { return r.ID }

func (r *MovingSphere) build(im *importer, id core.ID, index int) (any, error) {
	mat, err := im.material(r.Material, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return geometry.NewMovingSphere(id, r.Center0.toVec3(), r.Center1.toVec3(), r.Time0, r.Time1, r.Radius, mat), nil
}

type XYRect struct {
	ID       IDConstructor `json:"id"`
	X0       float64       `json:"x0"`
	X1       float64       `json:"x1"`
	Y0       float64       `json:"y0"`
	Y1       float64       `json:"y1"`
	K        float64       `json:"k"`
	Material IDReference   `json:"material"`
}

func (r *XYRect) kind() string       { return "XYRect" }
func (r *XYRect) role() role         { return roleNode }
func (r *XYRect) ids() IDConstructor { return r.ID }

func (r *XYRect) build(im *importer, id core.ID, index int) (any, error) {
	mat, err := im.material(r.Material, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return geometry.NewXYRect(id, r.X0, r.X1, r.Y0, r.Y1, r.K, mat), nil
}

type XZRect struct {
	ID       IDConstructor `json:"id"`
	X0       float64       `json:"x0"`
	X1       float64       `json:"x1"`
	Z0       float64       `json:"z0"`
	Z1       float64       `json:"z1"`
	K        float64       `json:"k"`
	Material IDReference   `json:"material"`
}

func (r *XZRect) kind() string       { return "XZRect" }
func (r *XZRect) role() role         { return roleNode }
func (r *XZRect) ids() IDConstructor { return r.ID }

func (r *XZRect) build(im *importer, id core.ID, index int) (any, error) {
	mat, err := im.material(r.Material, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return geometry.NewXZRect(id, r.X0, r.X1, r.Z0, r.Z1, r.K, mat), nil
}

type YZRect struct {
	ID       IDConstructor `json:"id"`
	Y0       float64       `json:"y0"`
	Y1       float64       `json:"y1"`
	Z0       float64       `json:"z0"`
	Z1       float64       `json:"z1"`
	K        float64       `json:"k"`
	Material IDReference   `json:"material"`
}

func (r *YZRect) kind() string       { return "YZRect" }
func (r *YZRect) role() role         { return roleNode }
func (r *YZRect) ids() IDConstructor { return r.ID }

func (r *YZRect) build(im *importer, id core.ID, index int) (any, error) {
	mat, err := im.material(r.Material, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return geometry.NewYZRect(id, r.Y0, r.Y1, r.Z0, r.Z1, r.K, mat), nil
}

type Cuboid struct {
	ID       IDConstructor `json:"id"`
	Min      Vec           `json:"min"`
	Max      Vec           `json:"max"`
	Material IDReference   `json:"material"`
}

func (r *Cuboid) kind() string       { return "Cuboid" }
func (r *Cuboid) role() role         { return roleNode }
func (r *Cuboid) ids() IDConstructor { return r.ID }

func (r *Cuboid) build(im *importer, id core.ID, index int) (any, error) {
	mat, err := im.material(r.Material, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return geometry.NewCuboid(id, r.Min.toVec3(), r.Max.toVec3(), mat), nil
}

// Collection lists all of its children; every object built from a
// multi-ID collection record holds the whole list
type Collection struct {
	ID           IDConstructor `json:"id"`
	ObjectIDList []core.ID     `json:"object_id_list"`
}

func (r *Collection) kind() string       { return "Collection" }
func (r *Collection) role() role         { return roleNode }
func (r *Collection) ids() IDConstructor { return r.ID }

func (r *Collection) build(im *importer, id core.ID, index int) (any, error) {
	children := make([]geometry.Hittable, 0, len(r.ObjectIDList))
	for _, childID := range r.ObjectIDList {
		child, err := im.node(IDReference{childID}, id, 0, 1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return geometry.NewCollection(id, children...), nil
}

// Instancing wrappers

type FlipNormals struct {
	ID   IDConstructor `json:"id"`
	Node IDReference   `json:"node"`
}

func (r *FlipNormals) kind() string       { return "FlipNormals" }
func (r *FlipNormals) role() role         { return roleNode }
func (r *FlipNormals) ids() IDConstructor { return r.ID }

func (r *FlipNormals) build(im *importer, id core.ID, index int) (any, error) {
	child, err := im.node(r.Node, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return geometry.NewFlipNormals(id, child), nil
}

// Rotate is the body shared by the RotateX, RotateY and RotateZ records.
// Angle is in radians.
type Rotate struct {
	ID    IDConstructor `json:"id"`
	Angle float64       `json:"angle"`
	Node  IDReference   `json:"node"`
}

func (r *Rotate) ids() IDConstructor { return r.ID }
func (r *Rotate) role() role         { return roleNode }

func (r *Rotate) buildAxis(im *importer, axis geometry.Axis, id core.ID, index int) (any, error) {
	child, err := im.node(r.Node, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return geometry.NewRotate(id, axis, r.Angle, child), nil
}

type RotateX struct{ Rotate }

func (r *RotateX) kind() string { return "RotateX" }

func (r *RotateX) build(im *importer, id core.ID, index int) (any, error) {
	return r.buildAxis(im, geometry.AxisX, id, index)
}

type RotateY struct{ Rotate }

func (r *RotateY) kind() string { return "RotateY" }

func (r *RotateY) build(im *importer, id core.ID, index int) (any, error) {
	return r.buildAxis(im, geometry.AxisY, id, index)
}

type RotateZ struct{ Rotate }

func (r *RotateZ) kind() string { return "RotateZ" }

func (r *RotateZ) build(im *importer, id core.ID, index int) (any, error) {
	return r.buildAxis(im, geometry.AxisZ, id, index)
}

type Translate struct {
	ID     IDConstructor `json:"id"`
	Offset Vec           `json:"offset"`
	Node   IDReference   `json:"node"`
}

func (r *Translate) kind() string       { return "Translate" }
func (r *Translate) role() role         { return roleNode }
func (r *Translate) ids() IDConstructor { return r.ID }

func (r *Translate) build(im *importer, id core.ID, index int) (any, error) {
	child, err := im.node(r.Node, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	return geometry.NewTranslate(id, r.Offset.toVec3(), child), nil
}

type Scale struct {
	ID      IDConstructor `json:"id"`
	Factors Vec           `json:"factors"`
	Node    IDReference   `json:"node"`
}

func (r *Scale) kind() string       { return "Scale" }
func (r *Scale) role() role         { return roleNode }
func (r *Scale) ids() IDConstructor { return r.ID }

func (r *Scale) build(im *importer, id core.ID, index int) (any, error) {
	child, err := im.node(r.Node, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	scaled, err := geometry.NewScale(id, r.Factors.toVec3(), child)
	if err != nil {
		return nil, malformed(id, err)
	}
	return scaled, nil
}

// Transform holds a column-major affine matrix
type Transform struct {
	ID     IDConstructor `json:"id"`
	Matrix [16]float64   `json:"matrix"`
	Node   IDReference   `json:"node"`
}

func (r *Transform) kind() string       { return "Transform" }
func (r *Transform) role() role         { return roleNode }
func (r *Transform) ids() IDConstructor { return r.ID }

func (r *Transform) build(im *importer, id core.ID, index int) (any, error) {
	child, err := im.node(r.Node, id, index, len(r.ID))
	if err != nil {
		return nil, err
	}
	transformed, err := geometry.NewTransform(id, mgl64.Mat4(r.Matrix), child)
	if err != nil {
		return nil, malformed(id, err)
	}
	return transformed, nil
}

// Scene entry points

type Camera struct {
	ID              IDConstructor `json:"id"`
	LowerLeftCorner Vec           `json:"lower_left_corner"`
	Horizontal      Vec           `json:"horizontal"`
	Vertical        Vec           `json:"vertical"`
	Origin          Vec           `json:"origin"`
	LenseRadius     float64       `json:"lense_radius"`
	TimeFrom        float64       `json:"time_from"`
	TimeTo          float64       `json:"time_to"`
}

func (r *Camera) kind() string       { return "Camera" }
func (r *Camera) role() role         { return roleCamera }
func (r *Camera) ids() IDConstructor { return r.ID }

func (r *Camera) build(im *importer, id core.ID, index int) (any, error) {
	return scene.NewCamera(id, r.LowerLeftCorner.toVec3(), r.Horizontal.toVec3(), r.Vertical.toVec3(),
		r.Origin.toVec3(), r.LenseRadius, r.TimeFrom, r.TimeTo), nil
}

type Sky struct {
	ID          IDConstructor `json:"id"`
	NadirColor  Vec           `json:"nadir_color"`
	ZenithColor Vec           `json:"zenith_color"`
}

func (r *Sky) kind() string       { return "Sky" }
func (r *Sky) role() role         { return roleSky }
func (r *Sky) ids() IDConstructor { return r.ID }

func (r *Sky) build(im *importer, id core.ID, index int) (any, error) {
	return scene.NewSky(id, r.NadirColor.toVec3(), r.ZenithColor.toVec3()), nil
}

type Configuration struct {
	ID           IDConstructor `json:"id"`
	MaximumDepth int           `json:"maximum_depth"`
}

func (r *Configuration) kind() string       { return "Configuration" }
func (r *Configuration) role() role         { return roleConfiguration }
func (r *Configuration) ids() IDConstructor { return r.ID }

func (r *Configuration) build(im *importer, id core.ID, index int) (any, error) {
	return scene.NewConfiguration(id, r.MaximumDepth), nil
}
