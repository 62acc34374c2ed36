package vmod

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NoIndex marks an absent optional reference: a mesh without a material, or a
// material without a map.
const NoIndex = -1

// Model is the decoded form of a vmod file. Built once by the parser,
// read-only during rendering.
type Model struct {
	Positions []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Normals   []mgl32.Vec3

	Meshes    []Mesh
	Materials []Material
	Images    []Image
}

// Mesh is an ordered list of faces indexing into the model's shared
// position/texcoord/normal arrays.
type Mesh struct {
	Faces        []Face
	HasTexCoords bool
	HasNormals   bool
	Material     int // index into Model.Materials, NoIndex if unbound
}

// Face references three vertices by index. TexCoord and Normal are only
// meaningful when the owning mesh declares them.
type Face struct {
	Position [3]int
	TexCoord [3]int
	Normal   [3]int
}

// Material optionally references an albedo and/or normal image.
type Material struct {
	Albedo int // image index, NoIndex if absent
	Normal int // image index, NoIndex if absent
}

// Image is channel-interleaved raw pixel data.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8 // len = Width*Height*Channels
}

// At returns the pixel at (x, y). Out-of-range coordinates panic via slice
// indexing.
func (im *Image) At(x, y int) []uint8 {
	i := (y*im.Width + x) * im.Channels
	return im.Pix[i : i+im.Channels]
}

// Sample reads the nearest pixel for a normalized UV in [0,1]x[0,1].
func (im *Image) Sample(u, v float32) []uint8 {
	x := int(math.Round(float64(u) * float64(im.Width-1)))
	y := int(math.Round(float64(v) * float64(im.Height-1)))
	return im.At(x, y)
}
