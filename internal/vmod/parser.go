package vmod

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// headerSize is the unused fixed header at the start of every vmod file.
const headerSize = 16

// Parse reads and decodes a .vmod file.
func Parse(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vmod: read %s: %w", path, err)
	}
	m, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("vmod: parse %s: %w", path, err)
	}
	return m, nil
}

// Decode parses a vmod byte buffer into a Model. Truncated or inconsistent
// buffers fail with an error, they are never read past the end.
func Decode(buf []byte) (*Model, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("vmod: empty buffer")
	}
	if len(buf) < headerSize {
		return nil, fmt.Errorf("vmod: truncated header")
	}

	r := &reader{data: buf, off: headerSize}

	// Positions: count + 3 floats each.
	npos := r.readCount("position", 12)
	positions := make([]mgl32.Vec3, npos)
	for i := range positions {
		positions[i] = mgl32.Vec3{r.readF32(), r.readF32(), r.readF32()}
	}

	// Texture coordinates: count + 2 floats each.
	nuv := r.readCount("texcoord", 8)
	texCoords := make([]mgl32.Vec2, nuv)
	for i := range texCoords {
		texCoords[i] = mgl32.Vec2{r.readF32(), r.readF32()}
	}

	// Normals: count + 3 floats each.
	nnorm := r.readCount("normal", 12)
	normals := make([]mgl32.Vec3, nnorm)
	for i := range normals {
		normals[i] = mgl32.Vec3{r.readF32(), r.readF32(), r.readF32()}
	}

	// Images: count, then per image width/height/channels + raw pixels.
	nimg := r.readCount("image", 3)
	images := make([]Image, 0, nimg)
	for i := 0; i < nimg && r.err == nil; i++ {
		w := r.readUvarint()
		h := r.readUvarint()
		c := r.readUvarint()
		if r.err != nil {
			break
		}
		if w <= 0 || h <= 0 || c <= 0 || c > 4 {
			return nil, fmt.Errorf("vmod: image %d has invalid shape %dx%dx%d", i, w, h, c)
		}
		pix := r.readBytes(w * h * c)
		if r.err != nil {
			break
		}
		images = append(images, Image{
			Width:    w,
			Height:   h,
			Channels: c,
			Pix:      append([]uint8(nil), pix...),
		})
	}

	// Materials: count, then per material albedo+1 and normal+1 (0 = absent).
	nmat := r.readCount("material", 2)
	materials := make([]Material, 0, nmat)
	for i := 0; i < nmat && r.err == nil; i++ {
		albedo := r.readUvarint() - 1
		normal := r.readUvarint() - 1
		if r.err != nil {
			break
		}
		if albedo >= len(images) || normal >= len(images) {
			return nil, fmt.Errorf("vmod: material %d references image out of range", i)
		}
		materials = append(materials, Material{Albedo: albedo, Normal: normal})
	}

	// Mesh material binding, then faces.
	meshMaterial := r.readUvarint() - 1
	if r.err == nil && meshMaterial >= len(materials) {
		return nil, fmt.Errorf("vmod: mesh material %d out of range", meshMaterial)
	}

	hasUV := nuv > 0
	hasNormals := nnorm > 0

	nface := r.readCount("face", 3)
	faces := make([]Face, 0, nface)
	for i := 0; i < nface && r.err == nil; i++ {
		var f Face
		for k := 0; k < 3; k++ {
			f.Position[k] = r.readUvarint()
		}
		if hasUV {
			for k := 0; k < 3; k++ {
				f.TexCoord[k] = r.readUvarint()
			}
		}
		if hasNormals {
			for k := 0; k < 3; k++ {
				f.Normal[k] = r.readUvarint()
			}
		}
		if r.err != nil {
			break
		}
		for k := 0; k < 3; k++ {
			if f.Position[k] >= npos {
				return nil, fmt.Errorf("vmod: face %d position index %d out of range", i, f.Position[k])
			}
			if hasUV && f.TexCoord[k] >= nuv {
				return nil, fmt.Errorf("vmod: face %d texcoord index %d out of range", i, f.TexCoord[k])
			}
			if hasNormals && f.Normal[k] >= nnorm {
				return nil, fmt.Errorf("vmod: face %d normal index %d out of range", i, f.Normal[k])
			}
		}
		faces = append(faces, f)
	}

	if r.err != nil {
		return nil, r.err
	}

	return &Model{
		Positions: positions,
		TexCoords: texCoords,
		Normals:   normals,
		Meshes: []Mesh{{
			Faces:        faces,
			HasTexCoords: hasUV,
			HasNormals:   hasNormals,
			Material:     meshMaterial,
		}},
		Materials: materials,
		Images:    images,
	}, nil
}

// reader tracks an offset into the buffer and latches the first error; all
// reads after a failure are no-ops returning zero values.
type reader struct {
	data []byte
	off  int
	err  error
}

func (r *reader) fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf(format, args...)
	}
}

func (r *reader) readUvarint() int {
	if r.err != nil {
		return 0
	}
	v, n, err := readUvarint(r.data[r.off:])
	if err != nil {
		r.err = err
		return 0
	}
	r.off += n
	return v
}

// readCount reads a section count and rejects counts that could not possibly
// fit in the remaining bytes, so section loops never allocate for garbage.
func (r *reader) readCount(what string, minBytesPer int) int {
	n := r.readUvarint()
	if r.err != nil {
		return 0
	}
	if n*minBytesPer > len(r.data)-r.off {
		r.fail("vmod: %s count %d exceeds remaining data", what, n)
		return 0
	}
	return n
}

func (r *reader) readF32() float32 {
	if r.err != nil {
		return 0
	}
	if r.off+4 > len(r.data) {
		r.fail("vmod: truncated float at offset %d", r.off)
		return 0
	}
	v := math.Float32frombits(binary.LittleEndian.Uint32(r.data[r.off:]))
	r.off += 4
	return v
}

func (r *reader) readBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.data) {
		r.fail("vmod: truncated section, need %d bytes at offset %d", n, r.off)
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}
