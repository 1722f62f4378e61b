package scene

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/df07/go-raytracer-core/pkg/texture"
	"github.com/olekukonko/tablewriter"
)

// Node categories reported by Stats
const (
	CategoryEntry    = "Entry points"
	CategoryShape    = "Shapes"
	CategoryInstance = "Instancing"
	CategoryMaterial = "Materials"
	CategoryTexture  = "Textures"
)

// Stats counts the distinct nodes of a scene graph by kind. A node shared by
// several parents is counted once.
type Stats struct {
	Counts     map[string]int // Distinct nodes per kind
	References int            // Parent to child links, shared children counted per link
	Bounds     core.AABB      // Extent of the bounded part of the scene
	Bounded    bool           // False when no part of the scene has a box

	categories map[string]string
	seen       map[any]bool
}

// CollectStats walks every node reachable from the scene's entry points
func CollectStats(s *Scene) (*Stats, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	stats := &Stats{
		Counts:     make(map[string]int),
		categories: make(map[string]string),
		seen:       make(map[any]bool),
	}
	stats.count(CategoryEntry, "Configuration", s.Configuration)
	stats.count(CategoryEntry, "Camera", s.Camera)
	stats.count(CategoryEntry, "Sky", s.Sky)

	if err := s.Root.Accept(stats); err != nil {
		return nil, err
	}
	stats.Bounds, stats.Bounded = extent(s.Root)
	return stats, nil
}

// extent merges the boxes of bounded nodes and skips unbounded ones, looking
// through collections. A collection's own box is absent as soon as one child
// is unbounded, which is too coarse for reporting.
func extent(node geometry.Hittable) (core.AABB, bool) {
	collection, ok := node.(*geometry.Collection)
	if !ok {
		return node.BoundingBox(geometry.ShutterOpen, geometry.ShutterClose)
	}

	var bounds core.AABB
	found := false
	for _, child := range collection.Children() {
		box, ok := extent(child)
		bounds, found = core.Merge(bounds, found, box, ok)
	}
	return bounds, found
}

// Total returns the number of distinct nodes
func (s *Stats) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// Table renders the counts grouped by category
func (s *Stats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Category", "Kind", "Count"})

	separate := false
	for _, category := range []string{CategoryEntry, CategoryShape, CategoryInstance, CategoryMaterial, CategoryTexture} {
		kinds := s.kindsIn(category)
		if len(kinds) == 0 {
			continue
		}
		if separate {
			table.Append([]string{" ", " ", " "})
		}
		separate = true
		for j, kind := range kinds {
			label := ""
			if j == 0 {
				label = category
			}
			table.Append([]string{label, kind, fmt.Sprintf("%d", s.Counts[kind])})
		}
	}
	table.Append([]string{" ", " ", " "})
	if s.Bounded {
		table.Append([]string{"Bounds", "min", formatVec(s.Bounds.Min)})
		table.Append([]string{"", "max", formatVec(s.Bounds.Max)})
		table.Append([]string{"", "size", formatVec(s.Bounds.Size())})
	} else {
		table.Append([]string{"Bounds", "unbounded", "-"})
	}
	table.SetFooter([]string{"Total", fmt.Sprintf("%d links", s.References), fmt.Sprintf("%d", s.Total())})

	table.Render()
	return buf.String()
}

func formatVec(v core.Vec3) string {
	return fmt.Sprintf("%.4g %.4g %.4g", v.X, v.Y, v.Z)
}

func (s *Stats) kindsIn(category string) []string {
	var kinds []string
	for kind, c := range s.categories {
		if c == category {
			kinds = append(kinds, kind)
		}
	}
	sort.Strings(kinds)
	return kinds
}

// count records node once and reports whether it was new
func (s *Stats) count(category, kind string, node any) bool {
	if s.seen[node] {
		return false
	}
	s.seen[node] = true
	s.Counts[kind]++
	s.categories[kind] = category
	return true
}

func (s *Stats) shape(kind string, node geometry.Hittable, m material.Material) error {
	if !s.count(CategoryShape, kind, node) {
		return nil
	}
	return s.visitMaterial(m)
}

func (s *Stats) wrapper(kind string, node, child geometry.Hittable) error {
	if !s.count(CategoryInstance, kind, node) {
		return nil
	}
	s.References++
	return child.Accept(s)
}

func (s *Stats) visitMaterial(m material.Material) error {
	if m == nil {
		return nil
	}
	s.References++
	return m.Accept(s)
}

func (s *Stats) visitTexture(t texture.Texture) error {
	s.References++
	return t.Accept(s)
}

func (s *Stats) VisitSphere(n *geometry.Sphere) error { return s.shape("Sphere", n, n.Material) }
func (s *Stats) VisitMovingSphere(n *geometry.MovingSphere) error {
	return s.shape("MovingSphere", n, n.Material)
}
func (s *Stats) VisitXYRect(n *geometry.XYRect) error { return s.shape("XYRect", n, n.Material) }
func (s *Stats) VisitXZRect(n *geometry.XZRect) error { return s.shape("XZRect", n, n.Material) }
func (s *Stats) VisitYZRect(n *geometry.YZRect) error { return s.shape("YZRect", n, n.Material) }
func (s *Stats) VisitCuboid(n *geometry.Cuboid) error { return s.shape("Cuboid", n, n.Material) }

func (s *Stats) VisitCollection(n *geometry.Collection) error {
	if !s.count(CategoryShape, "Collection", n) {
		return nil
	}
	for _, child := range n.Children() {
		s.References++
		if err := child.Accept(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stats) VisitFlipNormals(n *geometry.FlipNormals) error {
	return s.wrapper("FlipNormals", n, n.Node)
}
func (s *Stats) VisitRotate(n *geometry.Rotate) error {
	return s.wrapper("Rotate"+n.Axis.String(), n, n.Node)
}
func (s *Stats) VisitTranslate(n *geometry.Translate) error { return s.wrapper("Translate", n, n.Node) }
func (s *Stats) VisitScale(n *geometry.Scale) error         { return s.wrapper("Scale", n, n.Node) }
func (s *Stats) VisitTransform(n *geometry.Transform) error { return s.wrapper("Transform", n, n.Node) }

func (s *Stats) VisitNoMaterial(m *material.NoMaterial) error {
	s.count(CategoryMaterial, "NoMaterial", m)
	return nil
}

func (s *Stats) VisitLambertian(m *material.Lambertian) error {
	if !s.count(CategoryMaterial, "Lambertian", m) {
		return nil
	}
	return s.visitTexture(m.Albedo)
}

func (s *Stats) VisitMetal(m *material.Metal) error {
	if !s.count(CategoryMaterial, "Metal", m) {
		return nil
	}
	return s.visitTexture(m.Albedo)
}

func (s *Stats) VisitDielectric(m *material.Dielectric) error {
	s.count(CategoryMaterial, "Dielectric", m)
	return nil
}

func (s *Stats) VisitDiffuseLight(m *material.DiffuseLight) error {
	if !s.count(CategoryMaterial, "DiffuseLight", m) {
		return nil
	}
	return s.visitTexture(m.Emit)
}

func (s *Stats) VisitConstantTexture(t *texture.ConstantTexture) error {
	s.count(CategoryTexture, "ConstantTexture", t)
	return nil
}

func (s *Stats) VisitCheckerTexture(t *texture.CheckerTexture) error {
	if !s.count(CategoryTexture, "CheckerTexture", t) {
		return nil
	}
	if err := s.visitTexture(t.Odd); err != nil {
		return err
	}
	return s.visitTexture(t.Even)
}
