package raster

// clipHalfSpace clips the polygon ring against one half-space of a clip-space
// axis: sign*component <= w. Crossing edges emit an interpolated vertex at the
// exact plane intersection, computed from the signed distances w - component.
func clipHalfSpace(ring []Vertex, axis int, sign float32) []Vertex {
	out := make([]Vertex, 0, len(ring)+1)
	n := len(ring)

	for i := 0; i < n; i++ {
		curr := &ring[i]
		prev := &ring[(i-1+n)%n]

		currC := sign * curr.Pos[axis]
		prevC := sign * prev.Pos[axis]

		currInside := currC <= curr.Pos.W()
		prevInside := prevC <= prev.Pos.W()

		if currInside != prevInside {
			t := (prev.Pos.W() - prevC) /
				((prev.Pos.W() - prevC) - (curr.Pos.W() - currC))
			out = append(out, prev.Lerp(*curr, t))
		}
		if currInside {
			out = append(out, *curr)
		}
	}

	return out
}

func clipAxis(ring []Vertex, axis int) []Vertex {
	ring = clipHalfSpace(ring, axis, 1)
	if len(ring) == 0 {
		return ring
	}
	return clipHalfSpace(ring, axis, -1)
}

// clipTriangle clips a triangle against the six faces of the canonical view
// volume (|x|,|y|,|z| <= w) and returns the resulting convex ring, ordered and
// suitable for fan triangulation. The ring is empty or has >= 3 vertices.
func clipTriangle(verts [3]Vertex) []Vertex {
	ring := []Vertex{verts[0], verts[1], verts[2]}
	for axis := 0; axis < 3; axis++ {
		ring = clipAxis(ring, axis)
		if len(ring) == 0 {
			return nil
		}
	}
	return ring
}
