// Package batch renders many vmod files in parallel, one worker per whole
// model. The raster core is single-writer, so parallelism never splits a
// framebuffer: every worker owns the buffers for its model.
package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"vmod-renderer/internal/camera"
	"vmod-renderer/internal/postprocess"
	"vmod-renderer/internal/raster"
	"vmod-renderer/internal/vmod"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	RenderSize  int
	Supersample int
	Workers     int
	Camera      camera.Params
}

// Result holds the outcome of processing one model file.
type Result struct {
	Input   string
	Output  string
	Success bool
	Error   string
}

// Run processes all model files using a worker pool.
func Run(cfg Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter.
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f models/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool.
	pathChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range pathChan {
				results[idx] = processModel(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		pathChan <- i
	}
	close(pathChan)

	wg.Wait()
	close(done)

	return results
}

// RenderFrame renders a single framed view of a model at size×size, rendering
// at size*supersample and downsampling.
func RenderFrame(m *vmod.Model, cam camera.Params, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	cb := raster.NewColorBuffer(renderSize, renderSize)
	db := raster.NewDepthBuffer(renderSize, renderSize)

	model := camera.FitTransform(m)
	mvp := cam.ViewProjection(model)
	normal := camera.NormalMatrix(model)

	raster.RenderModel(cb, db, m, mvp, normal, raster.DefaultModelShader, raster.DefaultColorBlend)

	img := cb.ToNRGBA()
	if supersample > 1 {
		img = postprocess.Downsample(img, size)
	}
	return img
}

func processModel(cfg Config, path string) Result {
	m, err := vmod.Parse(path)
	if err != nil {
		return Result{Input: path, Error: err.Error()}
	}

	img := RenderFrame(m, cfg.Camera, cfg.RenderSize, cfg.Supersample)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(cfg.OutputDir, base+".webp")

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Input: path, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Input: path, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Input: path, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Input: path, Output: outPath, Success: true}
}
