package server

import (
	"math"
	"math/rand"
	"net/http"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/df07/go-raytracer-core/pkg/scene"
	"github.com/df07/go-raytracer-core/pkg/texture"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	NodeID       core.ID                `json:"nodeId,omitempty"`
	MaterialID   core.ID                `json:"materialId,omitempty"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult contains the hit of an inspection ray and the top-level node it came from
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord
	Node      geometry.Hittable
}

// inspectPixel casts a ray through the center of the given pixel and returns the closest hit
func inspectPixel(sc *scene.Scene, width, height, pixelX, pixelY int) InspectResult {
	s := (float64(pixelX) + 0.5) / float64(width)
	t := 1 - (float64(pixelY)+0.5)/float64(height)

	// Deterministic sampler so the lens and shutter samples are repeatable
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(0)))
	ray := sc.Camera.GetRay(s, t, sampler)

	hit, isHit := sc.Root.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		return InspectResult{Hit: false}
	}

	// Find the child of the root collection responsible for the hit
	node := sc.Root
	if collection, ok := sc.Root.(*geometry.Collection); ok {
		for _, child := range collection.Children() {
			if childHit, childIsHit := child.Hit(ray, 0.001, hit.T+0.001); childIsHit && childHit.T == hit.T {
				node = child
				break
			}
		}
	}

	return InspectResult{Hit: true, HitRecord: hit, Node: node}
}

// extractMaterialInfo describes a material and its textures
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = extractTextureInfo(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = extractTextureInfo(m.Albedo)
		properties["fuzz"] = m.Fuzz
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		return "dielectric", properties

	case *material.DiffuseLight:
		properties["emit"] = extractTextureInfo(m.Emit)
		return "diffuse_light", properties

	case *material.NoMaterial:
		return "none", properties

	default:
		return "unknown", properties
	}
}

func extractTextureInfo(tex texture.Texture) map[string]interface{} {
	switch t := tex.(type) {
	case *texture.ConstantTexture:
		return map[string]interface{}{
			"id":    t.ID(),
			"color": [3]float64{t.Color.X, t.Color.Y, t.Color.Z},
		}
	case *texture.CheckerTexture:
		return map[string]interface{}{
			"id":    t.ID(),
			"scale": t.Scale,
			"odd":   extractTextureInfo(t.Odd),
			"even":  extractTextureInfo(t.Even),
		}
	default:
		return map[string]interface{}{}
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	width, err := parseIntParam(query, "width", 400, 1, 4000)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", 400, 1, 4000)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pixelX, err := parseIntParam(query, "x", -1, 0, width-1)
	if err != nil || pixelX < 0 {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := parseIntParam(query, "y", -1, 0, height-1)
	if err != nil || pixelY < 0 {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sc, err := s.loadScene(sceneParam(query))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := inspectPixel(sc, width, height, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	hit := result.HitRecord
	response := InspectResponse{
		Hit:       true,
		NodeID:    result.Node.ID(),
		Point:     [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z},
		Normal:    [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z},
		Distance:  hit.T,
		FrontFace: hit.FrontFace,
	}
	if hit.Material != nil {
		response.MaterialID = hit.Material.ID()
		response.MaterialType, response.Properties = extractMaterialInfo(hit.Material)
	}

	writeJSON(w, http.StatusOK, response)
}
