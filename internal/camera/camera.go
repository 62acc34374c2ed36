// Package camera builds the matrices fed to the rasterizer: a perspective
// model-view-projection for vertex positions and an inverse-transpose normal
// matrix for normal attributes.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"vmod-renderer/internal/vmod"
)

// Params describes an orbiting camera looking at the origin.
type Params struct {
	OrbitDeg float64 // azimuth around +Y
	PitchDeg float64 // elevation above the XZ plane
	Distance float64 // eye distance from the origin
	FOVDeg   float64
	Near     float64
	Far      float64
	Aspect   float64
}

// Default returns a three-quarter view that frames a unit-sized model.
func Default() Params {
	return Params{
		OrbitDeg: 30,
		PitchDeg: 20,
		Distance: 2.5,
		FOVDeg:   60,
		Near:     0.1,
		Far:      100,
		Aspect:   1,
	}
}

// Eye returns the camera position in world space.
func (p Params) Eye() mgl32.Vec3 {
	az := float64(mgl32.DegToRad(float32(p.OrbitDeg)))
	el := float64(mgl32.DegToRad(float32(p.PitchDeg)))
	d := float32(p.Distance)
	return mgl32.Vec3{
		d * float32(math.Cos(el)*math.Sin(az)),
		d * float32(math.Sin(el)),
		d * float32(math.Cos(el)*math.Cos(az)),
	}
}

// ViewProjection combines projection, view and the given model transform.
func (p Params) ViewProjection(model mgl32.Mat4) mgl32.Mat4 {
	proj := mgl32.Perspective(
		mgl32.DegToRad(float32(p.FOVDeg)),
		float32(p.Aspect),
		float32(p.Near),
		float32(p.Far),
	)
	view := mgl32.LookAtV(p.Eye(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view).Mul4(model)
}

// NormalMatrix returns the inverse-transpose of the upper 3x3 of the model
// matrix, the transform for normal attributes.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}

// FitTransform returns a model matrix that centers the model's bounding box at
// the origin and scales its largest extent to one, so any model fills the same
// view.
func FitTransform(m *vmod.Model) mgl32.Mat4 {
	if len(m.Positions) == 0 {
		return mgl32.Ident4()
	}

	min := m.Positions[0]
	max := m.Positions[0]
	for _, p := range m.Positions {
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}

	center := min.Add(max).Mul(0.5)
	span := max.Sub(min)
	s := max32(span.X(), max32(span.Y(), span.Z()))
	if s < 1e-3 {
		s = 1e-3
	}

	return mgl32.Scale3D(1/s, 1/s, 1/s).
		Mul4(mgl32.Translate3D(-center.X(), -center.Y(), -center.Z()))
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
