package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	path := filepath.Join(dir, "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPNG(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())

	img, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 2 || img.Height != 2 || img.Channels != 4 {
		t.Fatalf("shape = %dx%dx%d, want 2x2x4", img.Width, img.Height, img.Channels)
	}
	if got := img.At(0, 0); got[0] != 255 || got[1] != 0 || got[2] != 0 || got[3] != 255 {
		t.Errorf("pixel (0,0) = %v, want opaque red", got)
	}
	if got := img.At(1, 1); got[0] != 255 || got[1] != 255 || got[2] != 255 {
		t.Errorf("pixel (1,1) = %v, want white", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("loading missing file succeeded, want error")
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	// Non-zero origin must not shift pixels.
	src := image.NewNRGBA(image.Rect(3, 5, 5, 7))
	src.SetNRGBA(3, 5, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	img := FromImage(src)
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", img.Width, img.Height)
	}
	if got := img.At(0, 0); got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 40 {
		t.Errorf("pixel (0,0) = %v, want (10,20,30,40)", got)
	}
}

func TestCacheReturnsSameImage(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir)

	c := NewCache()
	a, err := c.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Deleting the file proves the second load is served from the cache.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	b, err := c.Load(path)
	if err != nil {
		t.Fatalf("cached load failed: %v", err)
	}
	if a.Width != b.Width || a.Height != b.Height || &a.Pix[0] != &b.Pix[0] {
		t.Error("second load did not come from the cache")
	}
}

func TestCacheCachesFailures(t *testing.T) {
	c := NewCache()
	path := filepath.Join(t.TempDir(), "missing.png")

	_, err1 := c.Load(path)
	if err1 == nil {
		t.Fatal("loading missing file succeeded, want error")
	}
	_, err2 := c.Load(path)
	if err2 != err1 {
		t.Errorf("second failure %v is not the cached %v", err2, err1)
	}
}
