package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/log"
	"github.com/df07/go-raytracer-core/pkg/serialization"
)

// run executes the app with args and returns what it wrote
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"raytracer-core"}, args...))
	return out.String(), err
}

func TestNewApp_VerboseAndVersionFlags(t *testing.T) {
	defer log.SetLevel(log.Notice)

	if _, err := run(t, "-v", "example"); err != nil {
		t.Fatalf("example with -v failed: %v", err)
	}
	if _, err := run(t, "-vv", "example"); err != nil {
		t.Fatalf("example with -vv failed: %v", err)
	}

	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out, "0.1.0") {
		t.Errorf("Expected version in output, got %q", out)
	}

	if _, err := run(t, "--log-level", "warning", "example"); err != nil {
		t.Fatalf("example with --log-level failed: %v", err)
	}
	if log.IsEnabled(log.Notice) {
		t.Error("Expected --log-level warning to silence notices")
	}
	if _, err := run(t, "--log-level", "loud", "example"); err == nil {
		t.Error("Expected an error for an unknown log level")
	}
}

func TestExample_WritesLoadableScene(t *testing.T) {
	for _, name := range []string{"simple", "basic", "cornell-box"} {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, "example", "--scene", name)
			if err != nil {
				t.Fatalf("example failed: %v", err)
			}
			if _, err := serialization.DeserializeWithOptions(out, serialization.StrictDeserializeOptions()); err != nil {
				t.Errorf("Output does not load: %v", err)
			}
		})
	}

	if _, err := run(t, "example", "--scene", "missing"); err == nil {
		t.Error("Expected an error for an unknown scene")
	}
}

func TestNormalize_DropsUnreferencedRecords(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.json")
	document := `{
  "configuration_id": 14, "camera_id": 12, "sky_id": 13, "root_node_id": 3,
  "objects": [
    { "Sphere": { "id": 3, "center": [0, 0, -1], "radius": 0.5, "material": 2 } },
    { "Lambertian": { "id": 2, "albedo": 1 } },
    { "ConstantTexture": { "id": 1, "color": [0.5, 0.1, 0.1] } },
    { "Dielectric": { "id": 9, "ref_idx": 1.5 } },
    { "Camera": { "id": 12, "lower_left_corner": [-2, -1, -1], "horizontal": [4, 0, 0], "vertical": [0, 2, 0], "origin": [0, 0, 0], "lense_radius": 0, "time_from": 0, "time_to": 0 } },
    { "Sky": { "id": 13, "nadir_color": [1, 1, 1], "zenith_color": [0.5, 0.7, 1] } },
    { "Configuration": { "id": 14, "maximum_depth": 50 } }
  ]
}`
	if err := os.WriteFile(in, []byte(document), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "normalize", "--strict", in); err == nil {
		t.Error("Expected strict normalize to reject the unreferenced record")
	}

	out := filepath.Join(dir, "normalized.json")
	if _, err := run(t, "normalize", "--out", out, in); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Dielectric") {
		t.Error("Expected the unreferenced record to be dropped")
	}
	// Children are written before their parents
	if strings.Index(string(data), "ConstantTexture") > strings.Index(string(data), "Sphere") {
		t.Errorf("Expected post-order records:\n%s", data)
	}
	if _, err := serialization.DeserializeWithOptions(string(data), serialization.StrictDeserializeOptions()); err != nil {
		t.Errorf("Normalized scene does not load strictly: %v", err)
	}
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "cornell-box")
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	for _, want := range []string{"Cuboid", "RotateY", "FlipNormals", "DiffuseLight"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in:\n%s", want, out)
		}
	}

	if _, err := run(t, "info"); err == nil {
		t.Error("Expected an error without a scene argument")
	}
}

func TestProbe(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"hit", []string{"probe", "simple"}, "hit t=0.5"},
		{"miss", []string{"probe", "--direction", "0,1,0", "simple"}, "miss"},
		{"outside range", []string{"probe", "--tmax", "0.25", "simple"}, "miss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("probe failed: %v", err)
			}
			if !strings.HasPrefix(out, tt.expected) {
				t.Errorf("Expected output starting with %q, got %q", tt.expected, out)
			}
		})
	}

	out, err := run(t, "probe", "simple")
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if !strings.Contains(out, "\ndiffuse scatter toward") {
		t.Errorf("Expected a diffuse scatter line for the lambertian sphere, got %q", out)
	}

	if _, err := run(t, "probe", "--origin", "1,2", "simple"); err == nil {
		t.Error("Expected an error for a malformed origin")
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "my-room.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "list", "--dir", dir)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"cornell-box", "json:my-room", "My Room"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in:\n%s", want, out)
		}
	}
}

func TestParseVec3(t *testing.T) {
	v, err := parseVec3(" 1, -2.5,3e2")
	if err != nil {
		t.Fatal(err)
	}
	if v != core.NewVec3(1, -2.5, 300) {
		t.Errorf("Expected (1, -2.5, 300), got %v", v)
	}

	for _, bad := range []string{"", "1,2", "1,2,x", "1,2,3,4"} {
		if _, err := parseVec3(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}
