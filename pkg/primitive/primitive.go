// Package primitive generates the polygon lists for basic solids: cubes,
// spheres, cylinders and cones, and arbitrary polyhedra. Every generator
// emits consistent outward winding with per-vertex normals, ready for
// boolean combination by pkg/csg.
package primitive

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/chazu/facet/pkg/csg"
	"github.com/chazu/facet/pkg/geom"
)

// DefaultSegments is the circle resolution used when a caller passes a
// non-positive segment count.
const DefaultSegments = 32

// Cube returns an axis-aligned box of the given dimensions. Its minimum
// corner sits at the origin so placement translations read naturally;
// center moves it to be origin-centered instead.
func Cube(x, y, z float64, center bool, opts ...csg.Option) *csg.Solid {
	var o r3.Vector
	if center {
		o = r3.Vector{X: -x / 2, Y: -y / 2, Z: -z / 2}
	}
	corner := func(cx, cy, cz float64) r3.Vector {
		return r3.Vector{X: o.X + cx, Y: o.Y + cy, Z: o.Z + cz}
	}
	quad := func(n r3.Vector, a, b, c, d r3.Vector) csg.Polygon {
		return csg.NewPolygon([]geom.Vertex{
			{Pos: a, Normal: n},
			{Pos: b, Normal: n},
			{Pos: c, Normal: n},
			{Pos: d, Normal: n},
		})
	}
	polygons := []csg.Polygon{
		quad(r3.Vector{Z: -1}, corner(0, 0, 0), corner(0, y, 0), corner(x, y, 0), corner(x, 0, 0)),
		quad(r3.Vector{Z: 1}, corner(0, 0, z), corner(x, 0, z), corner(x, y, z), corner(0, y, z)),
		quad(r3.Vector{Y: -1}, corner(0, 0, 0), corner(x, 0, 0), corner(x, 0, z), corner(0, 0, z)),
		quad(r3.Vector{Y: 1}, corner(0, y, 0), corner(0, y, z), corner(x, y, z), corner(x, y, 0)),
		quad(r3.Vector{X: -1}, corner(0, 0, 0), corner(0, 0, z), corner(0, y, z), corner(0, y, 0)),
		quad(r3.Vector{X: 1}, corner(x, 0, 0), corner(x, y, 0), corner(x, y, z), corner(x, 0, z)),
	}
	return csg.FromPolygons(polygons, opts...)
}

// Sphere returns an origin-centered sphere of radius r tessellated into
// segments slices around the Z axis and rings stacks from pole to pole.
// Vertex normals are radial.
func Sphere(r float64, segments, rings int, opts ...csg.Option) *csg.Solid {
	if segments < 3 {
		segments = DefaultSegments
	}
	if rings < 2 {
		rings = segments / 2
	}
	vtx := func(i, j int) geom.Vertex {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		phi := math.Pi * float64(j) / float64(rings)
		dir := r3.Vector{
			X: math.Cos(theta) * math.Sin(phi),
			Y: math.Sin(theta) * math.Sin(phi),
			Z: math.Cos(phi),
		}
		return geom.Vertex{Pos: dir.Mul(r), Normal: dir}
	}
	var polygons []csg.Polygon
	for i := 0; i < segments; i++ {
		for j := 0; j < rings; j++ {
			switch {
			case j == 0:
				// North pole cells collapse to triangles.
				polygons = append(polygons, csg.NewPolygon([]geom.Vertex{
					vtx(i, 0), vtx(i, 1), vtx(i+1, 1),
				}))
			case j == rings-1:
				polygons = append(polygons, csg.NewPolygon([]geom.Vertex{
					vtx(i, j), vtx(i, rings), vtx(i+1, j),
				}))
			default:
				polygons = append(polygons, csg.NewPolygon([]geom.Vertex{
					vtx(i, j), vtx(i, j+1), vtx(i+1, j+1), vtx(i+1, j),
				}))
			}
		}
	}
	return csg.FromPolygons(polygons, opts...)
}

// Cylinder returns a cylinder (or cone, when one radius is zero) along the
// Z axis: radius r1 at the bottom, r2 at the top. The base sits at z=0
// unless center puts the midpoint at the origin.
func Cylinder(r1, r2, height float64, segments int, center bool, opts ...csg.Option) *csg.Solid {
	if segments < 3 {
		segments = DefaultSegments
	}
	z0, z1 := 0.0, height
	if center {
		z0, z1 = -height/2, height/2
	}
	ring := func(radius, z float64, i int) r3.Vector {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		return r3.Vector{X: radius * math.Cos(theta), Y: radius * math.Sin(theta), Z: z}
	}
	sideNormal := func(i int) r3.Vector {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		return r3.Vector{
			X: height * math.Cos(theta),
			Y: height * math.Sin(theta),
			Z: r1 - r2,
		}.Normalize()
	}

	var polygons []csg.Polygon

	// Sides. A zero radius collapses one edge of each quad to the apex.
	for i := 0; i < segments; i++ {
		n0, n1 := sideNormal(i), sideNormal(i+1)
		b0, b1 := ring(r1, z0, i), ring(r1, z0, i+1)
		t0, t1 := ring(r2, z1, i), ring(r2, z1, i+1)
		switch {
		case r1 == 0:
			polygons = append(polygons, csg.NewPolygon([]geom.Vertex{
				{Pos: b0, Normal: n0}, {Pos: t1, Normal: n1}, {Pos: t0, Normal: n0},
			}))
		case r2 == 0:
			polygons = append(polygons, csg.NewPolygon([]geom.Vertex{
				{Pos: b0, Normal: n0}, {Pos: b1, Normal: n1}, {Pos: t0, Normal: n0},
			}))
		default:
			polygons = append(polygons, csg.NewPolygon([]geom.Vertex{
				{Pos: b0, Normal: n0}, {Pos: b1, Normal: n1},
				{Pos: t1, Normal: n1}, {Pos: t0, Normal: n0},
			}))
		}
	}

	// Caps, skipped for a zero radius.
	if r1 > 0 {
		down := r3.Vector{Z: -1}
		verts := make([]geom.Vertex, 0, segments)
		for i := segments - 1; i >= 0; i-- {
			verts = append(verts, geom.Vertex{Pos: ring(r1, z0, i), Normal: down})
		}
		polygons = append(polygons, csg.NewPolygon(verts))
	}
	if r2 > 0 {
		up := r3.Vector{Z: 1}
		verts := make([]geom.Vertex, 0, segments)
		for i := 0; i < segments; i++ {
			verts = append(verts, geom.Vertex{Pos: ring(r2, z1, i), Normal: up})
		}
		polygons = append(polygons, csg.NewPolygon(verts))
	}
	return csg.FromPolygons(polygons, opts...)
}

// Polyhedron builds a solid from explicit points and faces, each face an
// index list in outward winding order. Vertex normals are set to the face
// normal.
func Polyhedron(points []r3.Vector, faces [][]int, opts ...csg.Option) (*csg.Solid, error) {
	polygons := make([]csg.Polygon, 0, len(faces))
	for fi, face := range faces {
		if len(face) < 3 {
			return nil, errors.Errorf("polyhedron: face %d has %d vertices, need at least 3", fi, len(face))
		}
		verts := make([]geom.Vertex, len(face))
		for vi, idx := range face {
			if idx < 0 || idx >= len(points) {
				return nil, errors.Errorf("polyhedron: face %d references point %d of %d", fi, idx, len(points))
			}
			verts[vi] = geom.Vertex{Pos: points[idx]}
		}
		p := csg.NewPolygon(verts)
		for vi := range p.Vertices {
			p.Vertices[vi].Normal = p.Plane.Normal
		}
		polygons = append(polygons, p)
	}
	return csg.FromPolygons(polygons, opts...), nil
}
