// Package texture imports external image files into the vmod image
// representation used by the renderer.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"

	"vmod-renderer/internal/vmod"
)

// Load reads a TGA, BMP, PNG or JPEG file and converts it into a 4-channel
// vmod image.
func Load(path string) (vmod.Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return vmod.Image{}, fmt.Errorf("texture: read %s: %w", path, err)
	}

	var img image.Image
	// TGA has no magic bytes, so sniffing cannot find it.
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = tga.Decode(bytes.NewReader(raw))
	} else {
		img, _, err = image.Decode(bytes.NewReader(raw))
	}
	if err != nil {
		return vmod.Image{}, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return FromImage(img), nil
}

// FromImage converts any image into a 4-channel interleaved vmod image.
func FromImage(src image.Image) vmod.Image {
	b := src.Bounds()
	n, ok := src.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		n = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(n, n.Bounds(), src, b.Min, draw.Src)
	}

	out := vmod.Image{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: 4,
		Pix:      make([]uint8, b.Dx()*b.Dy()*4),
	}
	rowLen := out.Width * 4
	for y := 0; y < out.Height; y++ {
		copy(out.Pix[y*rowLen:(y+1)*rowLen], n.Pix[y*n.Stride:y*n.Stride+rowLen])
	}
	return out
}
