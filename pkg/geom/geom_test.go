package geom

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

func TestVertexLerp(t *testing.T) {
	a := Vertex{
		Pos:    r3.Vector{X: 0, Y: 0, Z: 0},
		Normal: r3.Vector{X: 1, Y: 0, Z: 0},
		UV:     r2.Point{X: 0, Y: 0},
	}
	b := Vertex{
		Pos:    r3.Vector{X: 10, Y: 20, Z: 30},
		Normal: r3.Vector{X: 0, Y: 1, Z: 0},
		UV:     r2.Point{X: 1, Y: 1},
	}

	tests := []struct {
		name string
		t    float64
		want Vertex
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"midpoint", 0.5, Vertex{
			Pos:    r3.Vector{X: 5, Y: 10, Z: 15},
			Normal: r3.Vector{X: 0.5, Y: 0.5, Z: 0},
			UV:     r2.Point{X: 0.5, Y: 0.5},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Lerp(b, tt.t)
			if !got.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("Lerp(%g) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestVertexFlipped(t *testing.T) {
	v := Vertex{Normal: r3.Vector{X: 0, Y: 0, Z: 1}}
	f := v.Flipped()
	if f.Normal.Z != -1 {
		t.Errorf("Flipped normal = %v, want Z=-1", f.Normal)
	}
	// Position is untouched.
	if f.Pos != v.Pos {
		t.Errorf("Flipped moved the position: %v", f.Pos)
	}
}

func TestPlaneFromPoints(t *testing.T) {
	// Counter-clockwise triangle in the XY plane, normal must point +Z.
	p := PlaneFromPoints(
		r3.Vector{X: 0, Y: 0, Z: 5},
		r3.Vector{X: 1, Y: 0, Z: 5},
		r3.Vector{X: 0, Y: 1, Z: 5},
	)
	if !VecApproxEqual(p.Normal, r3.Vector{Z: 1}, 1e-12) {
		t.Errorf("normal = %v, want +Z", p.Normal)
	}
	if math.Abs(p.W-5) > 1e-12 {
		t.Errorf("W = %g, want 5", p.W)
	}
}

func TestPlaneClassifyPoint(t *testing.T) {
	// The z=0 plane with normal +Z.
	p := NewPlane(r3.Vector{Z: 1}, 0)
	const tol = DefaultTolerance

	tests := []struct {
		name  string
		point r3.Vector
		want  PointClass
	}{
		{"above", r3.Vector{Z: 5}, InFront},
		{"below", r3.Vector{Z: -5}, Behind},
		{"on plane", r3.Vector{}, OnPlane},
		{"within tolerance above", r3.Vector{Z: tol / 2}, OnPlane},
		{"within tolerance below", r3.Vector{Z: -tol / 2}, OnPlane},
		{"just outside tolerance", r3.Vector{Z: tol * 2}, InFront},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ClassifyPoint(tt.point, tol); got != tt.want {
				t.Errorf("ClassifyPoint(%v) = %s, want %s", tt.point, got, tt.want)
			}
		})
	}
}

func TestPlaneFlipped(t *testing.T) {
	p := NewPlane(r3.Vector{Z: 1}, 3)
	f := p.Flipped()
	if !VecApproxEqual(f.Normal, r3.Vector{Z: -1}, 1e-12) {
		t.Errorf("flipped normal = %v", f.Normal)
	}
	if f.W != -3 {
		t.Errorf("flipped W = %g, want -3", f.W)
	}

	// Flipping swaps front and back.
	pt := r3.Vector{Z: 10}
	if p.ClassifyPoint(pt, DefaultTolerance) != InFront {
		t.Fatal("point should be in front of original plane")
	}
	if f.ClassifyPoint(pt, DefaultTolerance) != Behind {
		t.Error("point should be behind flipped plane")
	}
}

func TestPlaneDistance(t *testing.T) {
	p := NewPlane(r3.Vector{X: 1}, 2)
	if d := p.Distance(r3.Vector{X: 7}); math.Abs(d-5) > 1e-12 {
		t.Errorf("Distance = %g, want 5", d)
	}
	if d := p.Distance(r3.Vector{X: -1}); math.Abs(d+3) > 1e-12 {
		t.Errorf("Distance = %g, want -3", d)
	}
}

func TestRotateZ(t *testing.T) {
	v := r3.Vector{X: 1}
	got := RotateZ(v, math.Pi/2)
	if !VecApproxEqual(got, r3.Vector{Y: 1}, 1e-12) {
		t.Errorf("RotateZ(+X, 90deg) = %v, want +Y", got)
	}
}

func TestRotateXYZOrder(t *testing.T) {
	// X rotation first, then Y, then Z. Starting from +Z:
	// RotX(90): +Z -> -Y. RotY(90): -Y stays. RotZ(90): -Y -> +X.
	got := RotateXYZ(r3.Vector{Z: 1}, math.Pi/2, math.Pi/2, math.Pi/2)
	if !VecApproxEqual(got, r3.Vector{X: 1}, 1e-12) {
		t.Errorf("RotateXYZ(+Z, 90,90,90) = %v, want +X", got)
	}
}

func TestVecApproxEqual(t *testing.T) {
	a := r3.Vector{X: 1, Y: 2, Z: 3}
	if !VecApproxEqual(a, r3.Vector{X: 1 + 1e-9, Y: 2, Z: 3}, 1e-6) {
		t.Error("expected vectors within tolerance to compare equal")
	}
	if VecApproxEqual(a, r3.Vector{X: 1.1, Y: 2, Z: 3}, 1e-6) {
		t.Error("expected vectors outside tolerance to compare unequal")
	}
}
