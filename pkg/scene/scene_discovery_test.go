package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"dragon_gold", "Dragon Gold"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestNewBuiltinScene(t *testing.T) {
	for _, info := range BuiltinScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := NewBuiltinScene(info.ID, core.NewIDGenerator())
			if err != nil {
				t.Fatalf("NewBuiltinScene(%q) error: %v", info.ID, err)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Built-in scene is incomplete: %v", err)
			}
			if info.Group != builtinGroup || info.Type != "builtin" {
				t.Errorf("Unexpected metadata %+v", info)
			}
		})
	}

	if _, err := NewBuiltinScene("no-such-scene", core.NewIDGenerator()); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zebra-room.json", "cornell_copy.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scene files, got %d", len(scenes))
	}
	if scenes[0].Name != "Cornell Copy" || scenes[1].Name != "Zebra Room" {
		t.Errorf("Unexpected order or names: %q, %q", scenes[0].Name, scenes[1].Name)
	}
	if scenes[0].ID != "json:cornell_copy" || scenes[0].Type != "json" {
		t.Errorf("Unexpected metadata %+v", scenes[0])
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty slice, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "saved.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	groups, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("Expected built-in and file groups, got %d", len(groups))
	}
	if groups[0].Name != builtinGroup || len(groups[0].Scenes) != len(builtinScenes) {
		t.Errorf("Unexpected built-in group %+v", groups[0])
	}
	if groups[1].Name != fileGroup || groups[1].Scenes[0].Name != "Saved" {
		t.Errorf("Unexpected file group %+v", groups[1])
	}
}
