package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// ErrUnknownScene is returned for a built-in scene ID that does not exist
var ErrUnknownScene = errors.New("scene: unknown built-in scene")

const (
	builtinGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the JSON file (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

type builtinScene struct {
	info  SceneInfo
	build func(ids *core.IDGenerator) *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "cornell-box",
			Name:        "Cornell Box",
			Description: "Cornell box with a rotated block and a metal sphere",
		},
		build: NewCornellScene,
	},
	{
		info: SceneInfo{
			ID:          "basic",
			Name:        "Default Scene",
			Description: "Spheres of every material on a checkered ground",
		},
		build: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "simple",
			Name:        "Simple",
			Description: "Two diffuse spheres under a gradient sky",
		},
		build: NewSimpleScene,
	},
}

// BuiltinScenes lists the scenes that can be built with NewBuiltinScene
func BuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		info := b.info
		info.Group = builtinGroup
		info.Type = "builtin"
		scenes = append(scenes, info)
	}
	return scenes
}

// NewBuiltinScene builds the built-in scene with the given ID
func NewBuiltinScene(id string, ids *core.IDGenerator) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(ids), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// ListSceneFiles scans dir for serialized scenes. A missing directory yields
// an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return []SceneInfo{}, nil
		}
		return nil, fmt.Errorf("failed to access scenes directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		filename := filepath.Base(filePath)
		nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))
		scenes = append(scenes, SceneInfo{
			ID:       fmt.Sprintf("json:%s", nameWithoutExt),
			Name:     titleCase(nameWithoutExt),
			Group:    fileGroup,
			Type:     "json",
			FilePath: filePath,
		})
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ListAllScenes returns built-in scenes followed by the scene files found in dir
func ListAllScenes(dir string) ([]SceneGroup, error) {
	groups := []SceneGroup{{Name: builtinGroup, Scenes: BuiltinScenes()}}

	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	if len(files) > 0 {
		groups = append(groups, SceneGroup{Name: fileGroup, Scenes: files})
	}

	return groups, nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
