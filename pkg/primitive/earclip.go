package primitive

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// signedArea returns twice the signed area of a closed 2-D profile,
// positive when the winding is counter-clockwise.
func signedArea(pts []r2.Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

// ccwProfile validates a profile and returns a copy wound
// counter-clockwise.
func ccwProfile(profile []r2.Point) ([]r2.Point, error) {
	if len(profile) < 3 {
		return nil, errors.Errorf("profile has %d points, need at least 3", len(profile))
	}
	area := signedArea(profile)
	if area == 0 {
		return nil, errors.New("profile has no area")
	}
	pts := make([]r2.Point, len(profile))
	copy(pts, profile)
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts, nil
}

// inTriangle reports whether v lies inside or on the triangle (a, b, c),
// by barycentric coordinates. A degenerate triangle counts as containing
// everything so it can never be clipped as an ear.
func inTriangle(v, a, b, c r2.Point) bool {
	denom := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if math.Abs(denom) < 1e-12 {
		return true
	}
	alpha := ((b.Y-c.Y)*(v.X-c.X) + (c.X-b.X)*(v.Y-c.Y)) / denom
	if alpha < 0 {
		return false
	}
	beta := ((c.Y-a.Y)*(v.X-c.X) + (a.X-c.X)*(v.Y-c.Y)) / denom
	if beta < 0 {
		return false
	}
	return alpha+beta <= 1
}

// triangulateProfile ear-clips a simple counter-clockwise polygon into
// triangles, returned as counter-clockwise index triples into pts.
func triangulateProfile(pts []r2.Point) ([][3]int, error) {
	if len(pts) < 3 {
		return nil, errors.Errorf("profile has %d points, need at least 3", len(pts))
	}
	remaining := make([]int, len(pts))
	for i := range remaining {
		remaining[i] = i
	}

	tris := make([][3]int, 0, len(pts)-2)
	for len(remaining) > 3 {
		clipped := false
		for i := range remaining {
			p := remaining[(i+len(remaining)-1)%len(remaining)]
			v := remaining[i]
			n := remaining[(i+1)%len(remaining)]

			a, b, c := pts[p], pts[v], pts[n]
			// Only a convex corner of a counter-clockwise polygon can
			// be an ear.
			if b.Sub(a).Cross(c.Sub(a)) <= 0 {
				continue
			}
			ear := true
			for _, j := range remaining {
				if j == p || j == v || j == n {
					continue
				}
				if inTriangle(pts[j], a, b, c) {
					ear = false
					break
				}
			}
			if !ear {
				continue
			}
			tris = append(tris, [3]int{p, v, n})
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, errors.New("profile is not a simple polygon")
		}
	}
	return append(tris, [3]int{remaining[0], remaining[1], remaining[2]}), nil
}
