package batch

import (
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"vmod-renderer/internal/camera"
	"vmod-renderer/internal/vmod"
)

// triangleModel is a single untextured triangle facing the default camera.
func triangleModel() *vmod.Model {
	return &vmod.Model{
		Positions: []mgl32.Vec3{
			{-0.5, -0.5, 0},
			{0.5, -0.5, 0},
			{0, 0.5, 0},
		},
		Meshes: []vmod.Mesh{{
			Faces:    []vmod.Face{{Position: [3]int{0, 1, 2}}},
			Material: vmod.NoIndex,
		}},
	}
}

func TestRenderFrameCoversModel(t *testing.T) {
	img := RenderFrame(triangleModel(), camera.Default(), 32, 1)

	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("bounds = %v, want 32x32", b)
	}

	// An unbound material renders magenta; the triangle must land somewhere.
	magenta := color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	var hits int
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if img.NRGBAAt(x, y) == magenta {
				hits++
			}
		}
	}
	if hits == 0 {
		t.Error("no magenta pixels, model not rendered")
	}
	if hits == 32*32 {
		t.Error("entire frame magenta, background overwritten")
	}
}

func TestRenderFrameSupersampled(t *testing.T) {
	img := RenderFrame(triangleModel(), camera.Default(), 16, 4)
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("bounds = %v, want 16x16 after downsampling", b)
	}
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()

	raw, err := vmod.Encode(triangleModel())
	if err != nil {
		t.Fatal(err)
	}
	good := filepath.Join(dir, "good.vmod")
	if err := os.WriteFile(good, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.vmod")
	if err := os.WriteFile(bad, []byte("not a model"), 0o644); err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(dir, "out")
	cfg := Config{
		OutputDir:   outDir,
		RenderSize:  16,
		Supersample: 1,
		Workers:     2,
		Camera:      camera.Default(),
	}
	results := Run(cfg, []string{good, bad})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if !results[0].Success || results[0].Error != "" {
		t.Errorf("good model failed: %+v", results[0])
	}
	if _, err := os.Stat(results[0].Output); err != nil {
		t.Errorf("output image missing: %v", err)
	}
	if results[1].Success || results[1].Error == "" {
		t.Errorf("bad model succeeded: %+v", results[1])
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{Input: "/models/a.vmod", Output: "/out/a.webp", Success: true},
		{Input: "/models/b.vmod", Error: "vmod: truncated header"},
	}
	if err := WriteManifest(path, results); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Model != "a.vmod" || entries[0].Image != "a.webp" || entries[0].Error != "" {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1].Model != "b.vmod" || entries[1].Image != "" || entries[1].Error == "" {
		t.Errorf("entry 1 = %+v", entries[1])
	}
}
