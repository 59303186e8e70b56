package csg

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/chazu/facet/pkg/geom"
)

// Solid is one polygonal solid: a flat, ordered list of polygons plus the
// tolerance its boolean operations use. Solids are immutable values; every
// operation returns a fresh Solid sharing no mutable state with its
// operands. The BSP tree for a solid is built lazily and cached, so a
// Solid is not safe for concurrent use.
type Solid struct {
	polygons []Polygon
	tol      float64
	tree     *Node
}

// Option configures a Solid at construction.
type Option func(*Solid)

// WithTolerance sets the epsilon used by plane classification during
// boolean operations on this solid. The default is geom.DefaultTolerance.
// When two operands carry different tolerances, the left operand's wins.
func WithTolerance(tol float64) Option {
	return func(s *Solid) {
		if tol > 0 {
			s.tol = tol
		}
	}
}

// FromPolygons constructs a solid from a polygon list. The list is
// deep-copied; the caller keeps ownership of its polygons.
func FromPolygons(polygons []Polygon, opts ...Option) *Solid {
	s := &Solid{
		polygons: clonePolygons(polygons),
		tol:      geom.DefaultTolerance,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromTriangles constructs a solid from triangles, one polygon each, with
// vertex normals set to the face normal.
func FromTriangles(triangles []Triangle, opts ...Option) *Solid {
	polygons := make([]Polygon, 0, len(triangles))
	for _, t := range triangles {
		n := t.Normal()
		polygons = append(polygons, NewPolygon([]geom.Vertex{
			{Pos: t.A, Normal: n},
			{Pos: t.B, Normal: n},
			{Pos: t.C, Normal: n},
		}))
	}
	s := &Solid{polygons: polygons, tol: geom.DefaultTolerance}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Empty returns the empty solid.
func Empty(opts ...Option) *Solid {
	return FromPolygons(nil, opts...)
}

// IsEmpty reports whether the solid has no polygons.
func (s *Solid) IsEmpty() bool {
	return len(s.polygons) == 0
}

// NumPolygons returns the polygon count.
func (s *Solid) NumPolygons() int {
	return len(s.polygons)
}

// Tolerance returns the epsilon this solid's boolean operations use.
func (s *Solid) Tolerance() float64 {
	return s.tol
}

// Polygons returns a deep copy of the solid's polygon list.
func (s *Solid) Polygons() []Polygon {
	return clonePolygons(s.polygons)
}

// Triangles fan-triangulates every polygon.
func (s *Solid) Triangles() []Triangle {
	var tris []Triangle
	for _, p := range s.polygons {
		tris = append(tris, p.Triangles()...)
	}
	return tris
}

// bspTree returns the solid's BSP tree, building and caching it on first
// use. The cached tree is immutable, so later boolean operations may read
// it freely without copying.
func (s *Solid) bspTree() *Node {
	if s.tree == nil {
		s.tree = Build(s.polygons, s.tol)
	}
	return s.tree
}

// fromTree wraps a result tree as a Solid, keeping the tree cached.
func fromTree(tree *Node, tol float64) *Solid {
	return &Solid{polygons: tree.AllPolygons(), tol: tol, tree: tree}
}

// clone returns a deep copy without the cached tree.
func (s *Solid) clone() *Solid {
	return &Solid{polygons: clonePolygons(s.polygons), tol: s.tol}
}

// Union returns the solid covering every point inside s or other. Coplanar
// faces shared by both operands appear once in the result: the
// invert/clip/invert pass over other's tree removes its copy of any face
// already present in s.
//
// The operand trees are clipped against each other in a fixed sequence;
// the order of the clip and invert steps is load-bearing and must not be
// rearranged.
func (s *Solid) Union(other *Solid) *Solid {
	// Identity laws for empty operands, resolved before any tree work.
	if s.IsEmpty() {
		return other.clone()
	}
	if other.IsEmpty() {
		return s.clone()
	}
	tol := s.tol
	a := s.bspTree()
	b := other.bspTree()
	a = a.ClipTo(b, tol)
	b = b.ClipTo(a, tol)
	b = b.Invert()
	b = b.ClipTo(a, tol)
	b = b.Invert()
	a = a.Merge(b.AllPolygons(), tol)
	return fromTree(a, tol)
}

// Subtract returns s minus other. Subtracting an empty solid changes
// nothing; subtracting from an empty solid yields the empty solid. The
// fixed invert/clip sequence must not be rearranged.
func (s *Solid) Subtract(other *Solid) *Solid {
	if s.IsEmpty() {
		return Empty(WithTolerance(s.tol))
	}
	if other.IsEmpty() {
		return s.clone()
	}
	tol := s.tol
	a := s.bspTree()
	b := other.bspTree()
	a = a.Invert()
	a = a.ClipTo(b, tol)
	b = b.ClipTo(a, tol)
	b = b.Invert()
	b = b.ClipTo(a, tol)
	b = b.Invert()
	a = a.Merge(b.AllPolygons(), tol)
	a = a.Invert()
	return fromTree(a, tol)
}

// Intersect returns the solid covering every point inside both s and
// other, via the complement identity A∩B = ¬(¬A ∪ ¬B). Intersecting with
// an empty solid yields the empty solid. The fixed invert/clip sequence
// must not be rearranged.
func (s *Solid) Intersect(other *Solid) *Solid {
	if s.IsEmpty() || other.IsEmpty() {
		return Empty(WithTolerance(s.tol))
	}
	tol := s.tol
	a := s.bspTree()
	b := other.bspTree()
	a = a.Invert()
	b = b.ClipTo(a, tol)
	b = b.Invert()
	a = a.ClipTo(b, tol)
	b = b.ClipTo(a, tol)
	a = a.Merge(b.AllPolygons(), tol)
	a = a.Invert()
	return fromTree(a, tol)
}

// Translated returns the solid moved by d.
func (s *Solid) Translated(d r3.Vector) *Solid {
	polygons := make([]Polygon, len(s.polygons))
	for i, p := range s.polygons {
		verts := make([]geom.Vertex, len(p.Vertices))
		for j, v := range p.Vertices {
			v.Pos = v.Pos.Add(d)
			verts[j] = v
		}
		polygons[i] = Polygon{
			Vertices: verts,
			Plane:    geom.NewPlane(p.Plane.Normal, p.Plane.W+p.Plane.Normal.Dot(d)),
		}
	}
	return &Solid{polygons: polygons, tol: s.tol}
}

// Rotated returns the solid rotated by Euler angles in degrees, applied
// around X, then Y, then Z.
func (s *Solid) Rotated(xDeg, yDeg, zDeg float64) *Solid {
	rx := xDeg * math.Pi / 180
	ry := yDeg * math.Pi / 180
	rz := zDeg * math.Pi / 180
	polygons := make([]Polygon, len(s.polygons))
	for i, p := range s.polygons {
		verts := make([]geom.Vertex, len(p.Vertices))
		for j, v := range p.Vertices {
			v.Pos = geom.RotateXYZ(v.Pos, rx, ry, rz)
			v.Normal = geom.RotateXYZ(v.Normal, rx, ry, rz)
			verts[j] = v
		}
		normal := geom.RotateXYZ(p.Plane.Normal, rx, ry, rz)
		polygons[i] = Polygon{
			Vertices: verts,
			Plane:    geom.NewPlane(normal, normal.Dot(verts[0].Pos)),
		}
	}
	return &Solid{polygons: polygons, tol: s.tol}
}

// BoundingBox returns the axis-aligned bounds of the solid. An empty solid
// returns two zero vectors.
func (s *Solid) BoundingBox() (min, max r3.Vector) {
	if s.IsEmpty() {
		return r3.Vector{}, r3.Vector{}
	}
	first := s.polygons[0].Vertices[0].Pos
	min, max = first, first
	for _, p := range s.polygons {
		for _, v := range p.Vertices {
			min = r3.Vector{
				X: math.Min(min.X, v.Pos.X),
				Y: math.Min(min.Y, v.Pos.Y),
				Z: math.Min(min.Z, v.Pos.Z),
			}
			max = r3.Vector{
				X: math.Max(max.X, v.Pos.X),
				Y: math.Max(max.Y, v.Pos.Y),
				Z: math.Max(max.Z, v.Pos.Z),
			}
		}
	}
	return min, max
}

// Volume estimates the enclosed volume by the divergence theorem over the
// fan-triangulated surface. The estimate is only meaningful for closed,
// consistently wound meshes; cracks introduced by clipping bias it by the
// defect area.
func (s *Solid) Volume() float64 {
	var vol float64
	for _, t := range s.Triangles() {
		vol += t.A.Dot(t.B.Cross(t.C)) / 6
	}
	return vol
}

// SurfaceArea returns the total polygon area.
func (s *Solid) SurfaceArea() float64 {
	var area float64
	for _, p := range s.polygons {
		area += p.Area()
	}
	return area
}
