package raster

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// PixelShader maps an interpolated vertex to a color. ok=false means the
// pixel is left untouched.
type PixelShader func(v Vertex) (c color.NRGBA, ok bool)

// BlendFunc combines the previously stored color with the shader output into
// the final stored color.
type BlendFunc func(old, new color.NRGBA) color.NRGBA

// DefaultColorBlend overwrites the destination with the new color.
func DefaultColorBlend(_, new color.NRGBA) color.NRGBA {
	return new
}

// RenderTriangle rasterizes one triangle given in homogeneous clip space.
// At least one of cb, db must be non-nil. Triangles partly outside the view
// volume are clipped; triangles fully outside are discarded.
//
// This is the HOT PATH of the renderer; a single triangle always runs to
// completion on the calling goroutine.
func RenderTriangle(cb *ColorBuffer, db *DepthBuffer, verts [3]Vertex, shader PixelShader, blend BlendFunc) {
	if cb == nil && db == nil {
		panic("raster: need a color buffer, a depth buffer or both")
	}

	v0 := pointVisible(verts[0].Pos)
	v1 := pointVisible(verts[1].Pos)
	v2 := pointVisible(verts[2].Pos)

	// All vertices inside: skip clipping.
	if v0 && v1 && v2 {
		fillTriangle(cb, db, verts, shader, blend)
		return
	}
	// No vertex inside: discard.
	if !v0 && !v1 && !v2 {
		return
	}

	ring := clipTriangle(verts)
	for i := 1; i+1 < len(ring); i++ {
		fillTriangle(cb, db, [3]Vertex{ring[0], ring[i], ring[i+1]}, shader, blend)
	}
}

func pointVisible(p mgl32.Vec4) bool {
	w := p.W()
	return p.X() >= -w && p.X() <= w &&
		p.Y() >= -w && p.Y() <= w &&
		p.Z() >= -w && p.Z() <= w
}

// fillTriangle assumes the triangle is entirely inside the view volume.
func fillTriangle(cb *ColorBuffer, db *DepthBuffer, verts [3]Vertex, shader PixelShader, blend BlendFunc) {
	// Perspective divide (clip space -> NDC).
	for i := range verts {
		w := verts[i].Pos.W()
		if w == 0 {
			panic("raster: homogeneous w is zero")
		}
		verts[i].Pos[0] /= w
		verts[i].Pos[1] /= w
		verts[i].Pos[2] /= w
	}

	var fbW, fbH int
	if cb != nil {
		fbW, fbH = cb.Width, cb.Height
	} else {
		fbW, fbH = db.Width, db.Height
	}

	// Viewport transform: [-1, 1] to pixel coordinates, rounded.
	for i := range verts {
		verts[i].Pos[0] = roundf((verts[i].Pos.X() + 1) / 2 * float32(fbW-1))
		verts[i].Pos[1] = roundf((verts[i].Pos.Y() + 1) / 2 * float32(fbH-1))
	}

	// Sort vertices by ascending Y.
	if verts[0].Pos.Y() > verts[1].Pos.Y() {
		verts[0], verts[1] = verts[1], verts[0]
	}
	if verts[0].Pos.Y() > verts[2].Pos.Y() {
		verts[0], verts[2] = verts[2], verts[0]
	}
	if verts[1].Pos.Y() > verts[2].Pos.Y() {
		verts[1], verts[2] = verts[2], verts[1]
	}

	y0, y1, y2 := verts[0].Pos.Y(), verts[1].Pos.Y(), verts[2].Pos.Y()

	switch {
	case y0 == y1: // flat top
		scanTriangle(cb, db,
			line{verts[0], verts[2]},
			line{verts[1], verts[2]},
			shader, blend)
	case y1 == y2: // flat bottom
		scanTriangle(cb, db,
			line{verts[0], verts[1]},
			line{verts[0], verts[2]},
			shader, blend)
	default:
		// Split on the middle vertex: interpolate a new vertex on the
		// long edge at its Y.
		t := (y1 - y0) / (y2 - y0)
		mid := verts[0].Lerp(verts[2], t)

		// Top half (flat bottom).
		scanTriangle(cb, db,
			line{verts[0], verts[1]},
			line{verts[0], mid},
			shader, blend)
		// Bottom half (flat top).
		scanTriangle(cb, db,
			line{verts[1], verts[2]},
			line{mid, verts[2]},
			shader, blend)
	}
}

// scanTriangle sweeps a flat-top or flat-bottom triangle row by row, stepping
// both non-horizontal edges in lockstep and walking every pixel in between.
func scanTriangle(cb *ColorBuffer, db *DepthBuffer, a, b line, shader PixelShader, blend BlendFunc) {
	// Left edge first.
	if a.start.Pos.X() > b.start.Pos.X() {
		a, b = b, a
	}

	edgeA := newLineStepper(a, stepsByYDelta)
	edgeB := newLineStepper(b, stepsByYDelta)

	for ok := true; ok; ok = edgeA.step() && edgeB.step() {
		span := newLineStepper(line{edgeA.current, edgeB.current}, stepsByXDelta)

		for sok := true; sok; sok = span.step() {
			x := int(span.current.Pos.X())
			y := int(span.current.Pos.Y())

			if db != nil {
				z := span.current.Pos.Z()
				// Strictly closer wins; ties lose.
				if z < db.At(x, y) {
					db.Set(x, y, z)
				} else {
					continue
				}
			}

			if cb != nil {
				if c, ok := shader(span.current); ok {
					cb.Set(x, y, blend(cb.At(x, y), c))
				}
			}
		}
	}
}
