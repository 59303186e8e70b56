package primitive

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/chazu/facet/pkg/csg"
	"github.com/chazu/facet/pkg/geom"
)

// LinearExtrude extrudes a closed 2-D profile along the positive Z axis
// from z=0 to z=height. The profile may be concave; caps are ear-clip
// triangulated. Winding of the input is normalized, so clockwise profiles
// produce the same solid as counter-clockwise ones.
func LinearExtrude(profile []r2.Point, height float64, opts ...csg.Option) (*csg.Solid, error) {
	if height <= 0 {
		return nil, errors.Errorf("extrude: non-positive height %g", height)
	}
	pts, err := ccwProfile(profile)
	if err != nil {
		return nil, errors.Wrap(err, "extrude")
	}
	tris, err := triangulateProfile(pts)
	if err != nil {
		return nil, errors.Wrap(err, "extrude")
	}

	at := func(p r2.Point, z float64) r3.Vector {
		return r3.Vector{X: p.X, Y: p.Y, Z: z}
	}

	polygons := make([]csg.Polygon, 0, 2*len(tris)+len(pts))
	down, up := r3.Vector{Z: -1}, r3.Vector{Z: 1}
	for _, f := range tris {
		polygons = append(polygons, csg.NewPolygon([]geom.Vertex{
			{Pos: at(pts[f[2]], 0), Normal: down},
			{Pos: at(pts[f[1]], 0), Normal: down},
			{Pos: at(pts[f[0]], 0), Normal: down},
		}))
		polygons = append(polygons, csg.NewPolygon([]geom.Vertex{
			{Pos: at(pts[f[0]], height), Normal: up},
			{Pos: at(pts[f[1]], height), Normal: up},
			{Pos: at(pts[f[2]], height), Normal: up},
		}))
	}
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		d := q.Sub(p)
		n := r3.Vector{X: d.Y, Y: -d.X}.Normalize()
		polygons = append(polygons, csg.NewPolygon([]geom.Vertex{
			{Pos: at(p, 0), Normal: n},
			{Pos: at(q, 0), Normal: n},
			{Pos: at(q, height), Normal: n},
			{Pos: at(p, height), Normal: n},
		}))
	}
	return csg.FromPolygons(polygons, opts...), nil
}

// Revolve spins a closed 2-D profile a full turn around the Z axis. The
// profile lives in a half-plane through the axis: X is the distance from
// the axis and must be non-negative, Y maps to Z. Points on the axis
// collapse their ring to a single point, so a profile touching the axis
// yields capped solids and one clear of it yields a torus-like ring.
func Revolve(profile []r2.Point, segments int, opts ...csg.Option) (*csg.Solid, error) {
	if segments < 3 {
		segments = DefaultSegments
	}
	pts, err := ccwProfile(profile)
	if err != nil {
		return nil, errors.Wrap(err, "revolve")
	}
	for i, p := range pts {
		if p.X < 0 {
			return nil, errors.Errorf("revolve: profile point %d has negative radius %g", i, p.X)
		}
	}

	at := func(p r2.Point, seg int) r3.Vector {
		theta := 2 * math.Pi * float64(seg%segments) / float64(segments)
		return r3.Vector{X: p.X * math.Cos(theta), Y: p.X * math.Sin(theta), Z: p.Y}
	}

	var polygons []csg.Polygon
	add := func(positions ...r3.Vector) {
		verts := make([]geom.Vertex, len(positions))
		for i, pos := range positions {
			verts[i] = geom.Vertex{Pos: pos}
		}
		poly := csg.NewPolygon(verts)
		for i := range poly.Vertices {
			poly.Vertices[i].Normal = poly.Plane.Normal
		}
		polygons = append(polygons, poly)
	}

	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		if p.X == 0 && q.X == 0 {
			continue
		}
		for s := 0; s < segments; s++ {
			a, b := at(p, s), at(p, s+1)
			c, d := at(q, s+1), at(q, s)
			switch {
			case p.X == 0:
				add(a, c, d)
			case q.X == 0:
				add(a, b, c)
			default:
				add(a, b, c, d)
			}
		}
	}
	return csg.FromPolygons(polygons, opts...), nil
}
