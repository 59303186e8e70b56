package bsp

import (
	"math"
	"testing"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCubeBoundingBox(t *testing.T) {
	k := New()
	c := k.Cube(100, 50, 25)

	min, max := c.BoundingBox()
	if min != [3]float64{0, 0, 0} {
		t.Errorf("min = %v, want origin", min)
	}
	if max != [3]float64{100, 50, 25} {
		t.Errorf("max = %v, want [100 50 25]", max)
	}
}

func TestSphereBoundingBox(t *testing.T) {
	k := New()
	s := k.Sphere(10, 16)

	min, max := s.BoundingBox()
	for axis := 0; axis < 3; axis++ {
		if min[axis] < -10-1e-9 || max[axis] > 10+1e-9 {
			t.Errorf("axis %d bounds [%g, %g] exceed radius", axis, min[axis], max[axis])
		}
	}
	// The equator touches the full radius on X and Y.
	if !approx(max[0], 10, 1e-9) || !approx(max[1], 10, 1e-9) {
		t.Errorf("equator max = [%g %g], want 10 on both", max[0], max[1])
	}
}

func TestCylinderIsCentered(t *testing.T) {
	k := New()
	c := k.Cylinder(20, 5, 32)

	min, max := c.BoundingBox()
	if !approx(min[2], -10, 1e-9) || !approx(max[2], 10, 1e-9) {
		t.Errorf("Z bounds [%g, %g], want [-10, 10]", min[2], max[2])
	}
}

func TestUnion(t *testing.T) {
	k := New()
	a := k.Cube(10, 10, 10)
	b := k.Translate(k.Cube(10, 10, 10), 5, 0, 0)

	u := k.Union(a, b)
	min, max := u.BoundingBox()
	if !approx(min[0], 0, 1e-9) || !approx(max[0], 15, 1e-9) {
		t.Errorf("X bounds [%g, %g], want [0, 15]", min[0], max[0])
	}
	if got := Solid(u).Volume(); !approx(got, 1500, 1e-6) {
		t.Errorf("Volume() = %g, want 1500", got)
	}
}

func TestDifference(t *testing.T) {
	k := New()
	outer := k.Cube(10, 10, 10)
	inner := k.Translate(k.Cube(10, 10, 5), 0, 0, 5)

	d := k.Difference(outer, inner)
	min, max := d.BoundingBox()
	if !approx(min[2], 0, 1e-9) || !approx(max[2], 5, 1e-9) {
		t.Errorf("Z bounds [%g, %g], want [0, 5]", min[2], max[2])
	}
	if got := Solid(d).Volume(); !approx(got, 500, 1e-6) {
		t.Errorf("Volume() = %g, want 500", got)
	}
}

func TestIntersection(t *testing.T) {
	k := New()
	a := k.Cube(10, 10, 10)
	b := k.Translate(k.Cube(10, 10, 10), 6, 0, 0)

	i := k.Intersection(a, b)
	min, max := i.BoundingBox()
	if !approx(min[0], 6, 1e-9) || !approx(max[0], 10, 1e-9) {
		t.Errorf("X bounds [%g, %g], want [6, 10]", min[0], max[0])
	}
	if got := Solid(i).Volume(); !approx(got, 400, 1e-6) {
		t.Errorf("Volume() = %g, want 400", got)
	}
}

func TestTranslate(t *testing.T) {
	k := New()
	c := k.Translate(k.Cube(10, 10, 10), 100, 200, 300)

	min, max := c.BoundingBox()
	if min != [3]float64{100, 200, 300} {
		t.Errorf("min = %v, want [100 200 300]", min)
	}
	if max != [3]float64{110, 210, 310} {
		t.Errorf("max = %v, want [110 210 310]", max)
	}
}

func TestRotate(t *testing.T) {
	k := New()
	// A long bar rotated a quarter turn about Z swaps its X and Y extents.
	bar := k.Translate(k.Cube(100, 10, 10), -50, -5, -5)
	r := k.Rotate(bar, 0, 0, 90)

	min, max := r.BoundingBox()
	if !approx(max[0]-min[0], 10, 1e-9) {
		t.Errorf("X extent = %g, want 10", max[0]-min[0])
	}
	if !approx(max[1]-min[1], 100, 1e-9) {
		t.Errorf("Y extent = %g, want 100", max[1]-min[1])
	}
}

func TestToMesh(t *testing.T) {
	k := New()
	mesh, err := k.ToMesh(k.Cube(10, 10, 10))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.TriangleCount() != 12 {
		t.Errorf("TriangleCount() = %d, want 12", mesh.TriangleCount())
	}
	if mesh.VertexCount() != 36 {
		t.Errorf("VertexCount() = %d, want 36", mesh.VertexCount())
	}
}

func TestToMeshNormals(t *testing.T) {
	k := New()
	mesh, _ := k.ToMesh(k.Cube(2, 2, 2))

	for i := 0; i < mesh.TriangleCount(); i++ {
		_, _, _, n := mesh.Triangle(i)
		length := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		if !approx(length, 1, 1e-6) {
			t.Errorf("triangle %d normal length = %g, want 1", i, length)
		}
	}
}

func TestSolidAccessor(t *testing.T) {
	k := New()
	c := k.Cube(1, 1, 1)
	if got := Solid(c).NumPolygons(); got != 6 {
		t.Errorf("NumPolygons() = %d, want 6", got)
	}
}

func TestToleranceFlowsIntoSolids(t *testing.T) {
	k := NewWithTolerance(1e-3)
	c := k.Cube(1, 1, 1)
	if got := Solid(c).Tolerance(); got != 1e-3 {
		t.Errorf("Tolerance() = %g, want 1e-3", got)
	}

	u := k.Union(c, k.Translate(k.Cube(1, 1, 1), 2, 0, 0))
	if got := Solid(u).Tolerance(); got != 1e-3 {
		t.Errorf("union Tolerance() = %g, want 1e-3", got)
	}
}
