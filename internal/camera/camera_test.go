package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"vmod-renderer/internal/vmod"
)

func TestEyeDistance(t *testing.T) {
	cases := []Params{
		Default(),
		{OrbitDeg: 0, PitchDeg: 0, Distance: 1},
		{OrbitDeg: 90, PitchDeg: 45, Distance: 10},
		{OrbitDeg: -120, PitchDeg: -30, Distance: 3},
	}
	for _, p := range cases {
		if got := float64(p.Eye().Len()); math.Abs(got-p.Distance) > 1e-4 {
			t.Errorf("Eye(%+v).Len() = %v, want %v", p, got, p.Distance)
		}
	}
}

func TestEyeAxes(t *testing.T) {
	// Zero orbit and pitch looks down -Z, so the eye sits on +Z.
	p := Params{OrbitDeg: 0, PitchDeg: 0, Distance: 2}
	if got := p.Eye(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, 2}, 1e-5) {
		t.Errorf("Eye = %v, want (0,0,2)", got)
	}

	// Straight up.
	p = Params{OrbitDeg: 0, PitchDeg: 90, Distance: 2}
	if got := p.Eye(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 2, 0}, 1e-5) {
		t.Errorf("Eye = %v, want (0,2,0)", got)
	}
}

func TestViewProjectionOriginVisible(t *testing.T) {
	p := Default()
	clip := p.ViewProjection(mgl32.Ident4()).Mul4x1(mgl32.Vec4{0, 0, 0, 1})

	w := clip.W()
	if w <= 0 {
		t.Fatalf("origin behind the camera, w = %v", w)
	}
	for k := 0; k < 3; k++ {
		if c := clip[k]; c < -w || c > w {
			t.Errorf("origin clip component %d = %v outside [-w, w], w = %v", k, c, w)
		}
	}
}

func TestNormalMatrixIdentity(t *testing.T) {
	got := NormalMatrix(mgl32.Ident4())
	if !got.ApproxEqualThreshold(mgl32.Ident3(), 1e-5) {
		t.Errorf("NormalMatrix(I) = %v, want identity", got)
	}
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	// Scaling by (2,1,1) maps the inverse-transpose to diag(0.5,1,1), which
	// keeps scaled surface normals perpendicular.
	nm := NormalMatrix(mgl32.Scale3D(2, 1, 1))
	got := nm.Mul3x1(mgl32.Vec3{1, 0, 0})
	if !got.ApproxEqualThreshold(mgl32.Vec3{0.5, 0, 0}, 1e-5) {
		t.Errorf("normal transform = %v, want (0.5,0,0)", got)
	}
}

func TestFitTransformCentersAndScales(t *testing.T) {
	m := &vmod.Model{
		Positions: []mgl32.Vec3{
			{2, 2, 2},
			{6, 4, 3},
		},
	}
	fit := FitTransform(m)

	// The box center maps to the origin.
	center := fit.Mul4x1(mgl32.Vec4{4, 3, 2.5, 1})
	if !center.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-5) {
		t.Errorf("center maps to %v, want origin", center.Vec3())
	}

	// The largest extent (x, span 4) maps to length one.
	a := fit.Mul4x1(mgl32.Vec4{2, 2, 2, 1}).Vec3()
	b := fit.Mul4x1(mgl32.Vec4{6, 2, 2, 1}).Vec3()
	if got := b.Sub(a).Len(); math.Abs(float64(got)-1) > 1e-5 {
		t.Errorf("largest extent maps to %v, want 1", got)
	}
}

func TestFitTransformDegenerate(t *testing.T) {
	if got := FitTransform(&vmod.Model{}); got != mgl32.Ident4() {
		t.Errorf("FitTransform(empty) = %v, want identity", got)
	}

	// A single point must not divide by zero.
	m := &vmod.Model{Positions: []mgl32.Vec3{{1, 1, 1}}}
	fit := FitTransform(m)
	out := fit.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	for k := 0; k < 3; k++ {
		if math.IsNaN(float64(out[k])) || math.IsInf(float64(out[k]), 0) {
			t.Fatalf("degenerate fit produced %v", out)
		}
	}
}
