package raster

import "github.com/go-gl/mathgl/mgl32"

const (
	// MaxAttributeSize is the component capacity of a single attribute.
	MaxAttributeSize = 4
	// MaxAttributes is the per-vertex attribute capacity.
	MaxAttributes = 8
)

// Attribute is one interpolatable per-vertex quantity (a texcoord, a normal).
// Only the first Size components are meaningful.
type Attribute struct {
	Data [MaxAttributeSize]float32
	Size int
}

// Attr2 builds a 2-component attribute.
func Attr2(x, y float32) Attribute {
	return Attribute{Data: [MaxAttributeSize]float32{x, y}, Size: 2}
}

// Attr3 builds a 3-component attribute.
func Attr3(x, y, z float32) Attribute {
	return Attribute{Data: [MaxAttributeSize]float32{x, y, z}, Size: 3}
}

// Lerp interpolates component-wise between a and b.
// Mismatched sizes indicate a caller bug.
func (a Attribute) Lerp(b Attribute, t float32) Attribute {
	if a.Size != b.Size {
		panic("raster: attribute size mismatch")
	}
	out := Attribute{Size: a.Size}
	for i := 0; i < a.Size; i++ {
		out.Data[i] = lerp(a.Data[i], b.Data[i], t)
	}
	return out
}

// Add accumulates b into a in place.
func (a *Attribute) Add(b Attribute) {
	if a.Size != b.Size {
		panic("raster: attribute size mismatch")
	}
	for i := 0; i < a.Size; i++ {
		a.Data[i] += b.Data[i]
	}
}

// Vertex is a homogeneous clip-space position plus a bounded list of
// attributes. Count says how many attribute slots are populated.
type Vertex struct {
	Pos   mgl32.Vec4
	Attrs [MaxAttributes]Attribute
	Count int
}

// PushAttribute appends an attribute to the next free slot.
func (v *Vertex) PushAttribute(a Attribute) {
	v.Attrs[v.Count] = a
	v.Count++
}

// Lerp interpolates position and every attribute slot index-wise.
// The two vertices must carry the same attribute layout.
func (v Vertex) Lerp(o Vertex, t float32) Vertex {
	if v.Count != o.Count {
		panic("raster: vertex attribute count mismatch")
	}
	out := Vertex{Count: v.Count}
	for i := 0; i < 4; i++ {
		out.Pos[i] = lerp(v.Pos[i], o.Pos[i], t)
	}
	for i := 0; i < v.Count; i++ {
		out.Attrs[i] = v.Attrs[i].Lerp(o.Attrs[i], t)
	}
	return out
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
