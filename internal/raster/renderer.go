package raster

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"vmod-renderer/internal/vmod"
)

// ModelShader resolves a pixel color for an interpolated vertex of a model
// face, given the material bound to the face's mesh.
type ModelShader func(v Vertex, m *vmod.Model, material int) (color.NRGBA, bool)

// RenderModel rasterizes every face of every mesh. Positions become
// homogeneous vertices (w=1) transformed by mvp; texcoord and normal
// attributes are attached per the mesh's flags, normals transformed by the
// normal matrix.
func RenderModel(cb *ColorBuffer, db *DepthBuffer, m *vmod.Model, mvp mgl32.Mat4, normal mgl32.Mat3, shader ModelShader, blend BlendFunc) {
	for mi := range m.Meshes {
		mesh := &m.Meshes[mi]
		material := mesh.Material

		ps := func(v Vertex) (color.NRGBA, bool) {
			return shader(v, m, material)
		}

		for _, face := range mesh.Faces {
			var verts [3]Vertex
			for i := 0; i < 3; i++ {
				p := m.Positions[face.Position[i]]
				verts[i].Pos = mvp.Mul4x1(p.Vec4(1))

				if mesh.HasTexCoords {
					uv := m.TexCoords[face.TexCoord[i]]
					verts[i].PushAttribute(Attr2(uv.X(), uv.Y()))
				}
				if mesh.HasNormals {
					n := normal.Mul3x1(m.Normals[face.Normal[i]])
					verts[i].PushAttribute(Attr3(n.X(), n.Y(), n.Z()))
				}
			}

			RenderTriangle(cb, db, verts, ps, blend)
		}
	}
}

// DefaultModelShader samples the material's albedo map by the vertex texcoord
// and adds the normal map on top, component-wise. Unbound materials render
// magenta.
func DefaultModelShader(v Vertex, m *vmod.Model, material int) (color.NRGBA, bool) {
	out := color.NRGBA{R: 255, G: 0, B: 255, A: 255}

	if material == vmod.NoIndex {
		return out, true
	}
	mat := &m.Materials[material]

	u := v.Attrs[0].Data[0]
	vv := v.Attrs[0].Data[1]

	if mat.Albedo != vmod.NoIndex {
		im := &m.Images[mat.Albedo]
		px := im.Sample(u, vv)
		switch im.Channels {
		case 1, 2:
			out.R, out.G, out.B = px[0], px[0], px[0]
		case 3:
			out.R, out.G, out.B = px[0], px[1], px[2]
		default:
			out.R, out.G, out.B, out.A = px[0], px[1], px[2], px[3]
		}
	}
	if mat.Normal != vmod.NoIndex {
		im := &m.Images[mat.Normal]
		px := im.Sample(u, vv)
		if im.Channels >= 3 {
			out.R += px[0]
			out.G += px[1]
			out.B += px[2]
		}
	}

	return out, true
}
