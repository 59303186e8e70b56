package csg

import (
	"github.com/golang/geo/r3"

	"github.com/chazu/facet/pkg/geom"
)

// Polygon is a planar, convex polygon with at least three vertices. The
// winding order of Vertices defines the outward-facing side; Plane is
// derived from the first three vertices and kept consistent with the
// winding by every transform in this package.
//
// Polygons are treated as immutable values. Operations that would change a
// polygon (flipping, splitting) return new ones.
type Polygon struct {
	Vertices []geom.Vertex
	Plane    geom.Plane
}

// NewPolygon builds a polygon from vertices in winding order, deriving its
// plane from the first three. The caller must supply at least three
// vertices that are not collinear.
func NewPolygon(vertices []geom.Vertex) Polygon {
	return Polygon{
		Vertices: vertices,
		Plane:    geom.PlaneFromPoints(vertices[0].Pos, vertices[1].Pos, vertices[2].Pos),
	}
}

// Clone returns a deep copy. Polygons held by two different containers must
// never share a vertex slice.
func (p Polygon) Clone() Polygon {
	verts := make([]geom.Vertex, len(p.Vertices))
	copy(verts, p.Vertices)
	return Polygon{Vertices: verts, Plane: p.Plane}
}

// Flipped returns the polygon facing the other way: vertex order reversed,
// every vertex normal negated, plane flipped. Flipping twice reproduces the
// original exactly.
func (p Polygon) Flipped() Polygon {
	n := len(p.Vertices)
	verts := make([]geom.Vertex, n)
	for i := 0; i < n; i++ {
		verts[i] = p.Vertices[n-1-i].Flipped()
	}
	return Polygon{Vertices: verts, Plane: p.Plane.Flipped()}
}

// Area returns the polygon's area, computed by fan triangulation from the
// first vertex.
func (p Polygon) Area() float64 {
	var area float64
	for i := 1; i < len(p.Vertices)-1; i++ {
		ab := p.Vertices[i].Pos.Sub(p.Vertices[0].Pos)
		ac := p.Vertices[i+1].Pos.Sub(p.Vertices[0].Pos)
		area += ab.Cross(ac).Norm() / 2
	}
	return area
}

// Triangle is a single triangle with outward winding a→b→c.
type Triangle struct {
	A, B, C r3.Vector
}

// Normal returns the triangle's unit face normal.
func (t Triangle) Normal() r3.Vector {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

// Triangles fan-triangulates the polygon. Winding is preserved.
func (p Polygon) Triangles() []Triangle {
	tris := make([]Triangle, 0, len(p.Vertices)-2)
	for i := 1; i < len(p.Vertices)-1; i++ {
		tris = append(tris, Triangle{
			A: p.Vertices[0].Pos,
			B: p.Vertices[i].Pos,
			C: p.Vertices[i+1].Pos,
		})
	}
	return tris
}

// clonePolygons deep-copies a polygon list.
func clonePolygons(polys []Polygon) []Polygon {
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.Clone()
	}
	return out
}
