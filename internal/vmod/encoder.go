package vmod

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode serializes a model into the vmod byte format, the exact inverse of
// Decode. The format carries a single mesh.
func Encode(m *Model) ([]byte, error) {
	if len(m.Meshes) != 1 {
		return nil, fmt.Errorf("vmod: format encodes exactly one mesh, got %d", len(m.Meshes))
	}
	mesh := &m.Meshes[0]
	if mesh.HasTexCoords != (len(m.TexCoords) > 0) {
		return nil, fmt.Errorf("vmod: mesh texcoord flag does not match texcoord data")
	}
	if mesh.HasNormals != (len(m.Normals) > 0) {
		return nil, fmt.Errorf("vmod: mesh normal flag does not match normal data")
	}

	// Unused fixed header, zeroed.
	buf := make([]byte, headerSize)

	var err error
	putInt := func(v int) {
		if err == nil {
			buf, err = appendUvarint(buf, v)
		}
	}
	putF32 := func(v float32) {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}

	putInt(len(m.Positions))
	for _, p := range m.Positions {
		putF32(p.X())
		putF32(p.Y())
		putF32(p.Z())
	}

	putInt(len(m.TexCoords))
	for _, uv := range m.TexCoords {
		putF32(uv.X())
		putF32(uv.Y())
	}

	putInt(len(m.Normals))
	for _, n := range m.Normals {
		putF32(n.X())
		putF32(n.Y())
		putF32(n.Z())
	}

	putInt(len(m.Images))
	for i := range m.Images {
		im := &m.Images[i]
		if len(im.Pix) != im.Width*im.Height*im.Channels {
			return nil, fmt.Errorf("vmod: image %d pixel data length %d does not match %dx%dx%d",
				i, len(im.Pix), im.Width, im.Height, im.Channels)
		}
		putInt(im.Width)
		putInt(im.Height)
		putInt(im.Channels)
		if err == nil {
			buf = append(buf, im.Pix...)
		}
	}

	putInt(len(m.Materials))
	for _, mat := range m.Materials {
		putInt(mat.Albedo + 1)
		putInt(mat.Normal + 1)
	}

	putInt(mesh.Material + 1)

	putInt(len(mesh.Faces))
	for _, f := range mesh.Faces {
		for k := 0; k < 3; k++ {
			putInt(f.Position[k])
		}
		if mesh.HasTexCoords {
			for k := 0; k < 3; k++ {
				putInt(f.TexCoord[k])
			}
		}
		if mesh.HasNormals {
			for k := 0; k < 3; k++ {
				putInt(f.Normal[k])
			}
		}
	}

	if err != nil {
		return nil, err
	}
	return buf, nil
}
