package raster

import (
	"image"
	"image/color"
	"math"
)

// ColorBuffer holds packed RGBA pixels as a flat slice for cache locality.
// The rasterizer never allocates or frees buffers; they are owned by the
// caller. Out-of-range coordinates panic via slice indexing, they are never
// clamped.
type ColorBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, len = W*H*4
}

// NewColorBuffer allocates a zeroed color buffer.
func NewColorBuffer(w, h int) *ColorBuffer {
	return &ColorBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}
}

func (b *ColorBuffer) At(x, y int) color.NRGBA {
	i := (y*b.Width + x) * 4
	return color.NRGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

func (b *ColorBuffer) Set(x, y int, c color.NRGBA) {
	i := (y*b.Width + x) * 4
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	b.Pix[i+3] = c.A
}

// Clear fills the whole buffer with one color.
func (b *ColorBuffer) Clear(c color.NRGBA) {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i] = c.R
		b.Pix[i+1] = c.G
		b.Pix[i+2] = c.B
		b.Pix[i+3] = c.A
	}
}

// ToNRGBA copies the buffer into a stdlib image for encoding.
func (b *ColorBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Pix)
	return img
}

// DepthBuffer holds one float32 depth value per pixel.
type DepthBuffer struct {
	Width  int
	Height int
	Depth  []float32 // len = W*H
}

// NewDepthBuffer allocates a depth buffer cleared to +Inf (everything is
// farther than nothing).
func NewDepthBuffer(w, h int) *DepthBuffer {
	b := &DepthBuffer{
		Width:  w,
		Height: h,
		Depth:  make([]float32, w*h),
	}
	b.Clear(float32(math.Inf(1)))
	return b
}

func (b *DepthBuffer) At(x, y int) float32 {
	return b.Depth[y*b.Width+x]
}

func (b *DepthBuffer) Set(x, y int, z float32) {
	b.Depth[y*b.Width+x] = z
}

// Clear fills the whole buffer with one depth value.
func (b *DepthBuffer) Clear(z float32) {
	for i := range b.Depth {
		b.Depth[i] = z
	}
}
