package primitive

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func square2(side float64) []r2.Point {
	return []r2.Point{{}, {X: side}, {X: side, Y: side}, {Y: side}}
}

// lProfile is a concave hexagon of area 3.
func lProfile() []r2.Point {
	return []r2.Point{
		{}, {X: 2}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {Y: 2},
	}
}

func TestTriangulateProfile(t *testing.T) {
	tests := []struct {
		name     string
		pts      []r2.Point
		wantTris int
		wantArea float64
	}{
		{"square", square2(2), 2, 4},
		{"l shape", lProfile(), 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tris, err := triangulateProfile(tt.pts)
			if err != nil {
				t.Fatalf("triangulateProfile failed: %v", err)
			}
			if len(tris) != tt.wantTris {
				t.Fatalf("got %d triangles, want %d", len(tris), tt.wantTris)
			}
			var area float64
			for i, f := range tris {
				a, b, c := tt.pts[f[0]], tt.pts[f[1]], tt.pts[f[2]]
				twice := b.Sub(a).Cross(c.Sub(a))
				if twice <= 0 {
					t.Errorf("triangle %d winds clockwise", i)
				}
				area += twice / 2
			}
			if math.Abs(area-tt.wantArea) > 1e-9 {
				t.Errorf("triangulated area = %g, want %g", area, tt.wantArea)
			}
		})
	}
}

func TestLinearExtrudeSquare(t *testing.T) {
	s, err := LinearExtrude(square2(2), 5)
	if err != nil {
		t.Fatalf("LinearExtrude failed: %v", err)
	}

	// Two triangles per cap plus four side quads.
	if got := s.NumPolygons(); got != 8 {
		t.Errorf("NumPolygons() = %d, want 8", got)
	}
	min, max := s.BoundingBox()
	if min.Z != 0 || max.Z != 5 {
		t.Errorf("Z bounds = [%g, %g], want [0, 5]", min.Z, max.Z)
	}
	if got := s.Volume(); math.Abs(got-20) > 1e-9 {
		t.Errorf("Volume() = %g, want 20", got)
	}
	if got := s.SurfaceArea(); math.Abs(got-48) > 1e-9 {
		t.Errorf("SurfaceArea() = %g, want 48", got)
	}
}

func TestLinearExtrudeConcaveProfile(t *testing.T) {
	s, err := LinearExtrude(lProfile(), 4)
	if err != nil {
		t.Fatalf("LinearExtrude failed: %v", err)
	}
	if got := s.NumPolygons(); got != 2*4+6 {
		t.Errorf("NumPolygons() = %d, want 14", got)
	}
	if got := s.Volume(); math.Abs(got-12) > 1e-9 {
		t.Errorf("Volume() = %g, want 12", got)
	}
}

func TestLinearExtrudeNormalizesWinding(t *testing.T) {
	cw := []r2.Point{{}, {Y: 2}, {X: 2, Y: 2}, {X: 2}}
	s, err := LinearExtrude(cw, 5)
	if err != nil {
		t.Fatalf("LinearExtrude failed: %v", err)
	}
	// A positive volume means outward winding survived the reversal.
	if got := s.Volume(); math.Abs(got-20) > 1e-9 {
		t.Errorf("Volume() = %g, want 20", got)
	}
}

func TestLinearExtrudeRejections(t *testing.T) {
	tests := []struct {
		name    string
		profile []r2.Point
		height  float64
	}{
		{"zero height", square2(2), 0},
		{"negative height", square2(2), -1},
		{"too few points", []r2.Point{{}, {X: 1}}, 5},
		{"collinear profile", []r2.Point{{}, {X: 1, Y: 1}, {X: 2, Y: 2}}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LinearExtrude(tt.profile, tt.height); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRevolveCylinder(t *testing.T) {
	const segments = 64
	profile := []r2.Point{{}, {X: 2}, {X: 2, Y: 5}, {Y: 5}}

	s, err := Revolve(profile, segments)
	if err != nil {
		t.Fatalf("Revolve failed: %v", err)
	}

	// Triangle fans for the two edges touching the axis, quads for the
	// wall; the on-axis edge emits nothing.
	if got := s.NumPolygons(); got != 3*segments {
		t.Errorf("NumPolygons() = %d, want %d", got, 3*segments)
	}
	min, max := s.BoundingBox()
	if min.Z != 0 || max.Z != 5 {
		t.Errorf("Z bounds = [%g, %g], want [0, 5]", min.Z, max.Z)
	}

	// Inscribed prism volume for the faceted wall.
	exact := float64(segments) / 2 * 4 * math.Sin(2*math.Pi/segments) * 5
	if got := s.Volume(); math.Abs(got-exact) > 1e-9 {
		t.Errorf("Volume() = %g, want %g", got, exact)
	}
}

func TestRevolveWasher(t *testing.T) {
	const segments = 128
	profile := []r2.Point{{X: 2}, {X: 3}, {X: 3, Y: 1}, {X: 2, Y: 1}}

	s, err := Revolve(profile, segments)
	if err != nil {
		t.Fatalf("Revolve failed: %v", err)
	}

	// Four quad rings, no caps: the profile never touches the axis.
	if got := s.NumPolygons(); got != 4*segments {
		t.Errorf("NumPolygons() = %d, want %d", got, 4*segments)
	}

	// Pappus: cross-section area 1 swept at centroid radius 2.5.
	pappus := 2 * math.Pi * 2.5
	if got := s.Volume(); math.Abs(got-pappus)/pappus > 0.01 {
		t.Errorf("Volume() = %g, more than 1%% from %g", got, pappus)
	}
}

func TestRevolveDefaultSegments(t *testing.T) {
	profile := []r2.Point{{X: 1}, {X: 2}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	s, err := Revolve(profile, 0)
	if err != nil {
		t.Fatalf("Revolve failed: %v", err)
	}
	if got := s.NumPolygons(); got != 4*DefaultSegments {
		t.Errorf("NumPolygons() = %d, want %d", got, 4*DefaultSegments)
	}
}

func TestRevolveRejectsNegativeRadius(t *testing.T) {
	profile := []r2.Point{{X: -1}, {X: 1}, {X: 1, Y: 1}}
	if _, err := Revolve(profile, 16); err == nil {
		t.Error("expected error for profile crossing the axis")
	}
}
