package csg

import "github.com/chazu/facet/pkg/geom"

// Classification is the relationship of a whole polygon to a plane.
type Classification int

const (
	CoplanarFront Classification = iota
	CoplanarBack
	Front
	Back
	Spanning
)

func (c Classification) String() string {
	switch c {
	case CoplanarFront:
		return "coplanar-front"
	case CoplanarBack:
		return "coplanar-back"
	case Front:
		return "front"
	case Back:
		return "back"
	case Spanning:
		return "spanning"
	}
	return "unknown"
}

// Per-vertex location bits. ORing them over a polygon's vertices yields the
// polygon's overall relationship to the plane.
const (
	locCoplanar = 0
	locFront    = 1
	locBack     = 2
	locSpanning = locFront | locBack
)

// vertexLocs classifies every vertex of poly against plane and returns the
// per-vertex locations plus the ORed polygon type.
func vertexLocs(plane geom.Plane, poly Polygon, tol float64) ([]int, int) {
	locs := make([]int, len(poly.Vertices))
	polyType := locCoplanar
	for i, v := range poly.Vertices {
		loc := locCoplanar
		switch plane.ClassifyPoint(v.Pos, tol) {
		case geom.InFront:
			loc = locFront
		case geom.Behind:
			loc = locBack
		}
		locs[i] = loc
		polyType |= loc
	}
	return locs, polyType
}

// Classify places a polygon relative to a plane within tolerance tol. A
// fully coplanar polygon resolves to CoplanarFront or CoplanarBack by the
// sign of the dot product between its own normal and the plane's.
func Classify(plane geom.Plane, poly Polygon, tol float64) Classification {
	_, polyType := vertexLocs(plane, poly, tol)
	switch polyType {
	case locCoplanar:
		if plane.Normal.Dot(poly.Plane.Normal) > 0 {
			return CoplanarFront
		}
		return CoplanarBack
	case locFront:
		return Front
	case locBack:
		return Back
	}
	return Spanning
}

// Split cuts poly by plane, appending the pieces to the four buckets. A
// non-spanning polygon lands whole in exactly one bucket; a spanning one is
// walked edge by edge, with a vertex interpolated wherever an edge crosses
// the plane. Interpolated vertices join both fragments, so the two
// fragments share the cut edge exactly and each keeps the original winding.
//
// A fragment left with fewer than three vertices is degenerate and silently
// dropped. Because both endpoints of a coplanar edge classify OnPlane
// within tol, the interpolation denominator is never evaluated for an edge
// parallel to the plane.
func Split(plane geom.Plane, poly Polygon, tol float64,
	coplanarFront, coplanarBack, front, back *[]Polygon,
) {
	locs, polyType := vertexLocs(plane, poly, tol)

	switch polyType {
	case locCoplanar:
		if plane.Normal.Dot(poly.Plane.Normal) > 0 {
			*coplanarFront = append(*coplanarFront, poly)
		} else {
			*coplanarBack = append(*coplanarBack, poly)
		}
		return
	case locFront:
		*front = append(*front, poly)
		return
	case locBack:
		*back = append(*back, poly)
		return
	}

	n := len(poly.Vertices)
	f := make([]geom.Vertex, 0, n+1)
	b := make([]geom.Vertex, 0, n+1)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := poly.Vertices[i], poly.Vertices[j]
		if locs[i] != locBack {
			f = append(f, vi)
		}
		if locs[i] != locFront {
			b = append(b, vi)
		}
		if locs[i]|locs[j] == locSpanning {
			t := (plane.W - plane.Normal.Dot(vi.Pos)) / plane.Normal.Dot(vj.Pos.Sub(vi.Pos))
			v := vi.Lerp(vj, t)
			f = append(f, v)
			b = append(b, v)
		}
	}
	if len(f) >= 3 {
		*front = append(*front, Polygon{Vertices: f, Plane: poly.Plane})
	}
	if len(b) >= 3 {
		*back = append(*back, Polygon{Vertices: b, Plane: poly.Plane})
	}
}
