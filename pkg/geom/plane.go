package geom

import "github.com/golang/geo/r3"

// PointClass is the side of a plane a single point lies on.
type PointClass int

const (
	OnPlane PointClass = iota
	InFront
	Behind
)

func (c PointClass) String() string {
	switch c {
	case OnPlane:
		return "coplanar"
	case InFront:
		return "front"
	case Behind:
		return "back"
	}
	return "unknown"
}

// Plane is an oriented plane in Hessian normal form: a unit normal N and a
// signed offset W such that a point P lies on the plane when N·P == W.
type Plane struct {
	Normal r3.Vector
	W      float64
}

// NewPlane builds a plane from a unit normal and offset.
func NewPlane(normal r3.Vector, w float64) Plane {
	return Plane{Normal: normal, W: w}
}

// PlaneFromPoints derives the plane containing the three points a, b, c,
// with the normal given by the right-hand rule on a→b→c.
func PlaneFromPoints(a, b, c r3.Vector) Plane {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane{Normal: n, W: n.Dot(a)}
}

// Flipped returns the same plane facing the other way.
func (p Plane) Flipped() Plane {
	return Plane{Normal: p.Normal.Mul(-1), W: -p.W}
}

// Distance returns the signed distance from point to the plane: positive in
// front, negative behind.
func (p Plane) Distance(point r3.Vector) float64 {
	return p.Normal.Dot(point) - p.W
}

// ClassifyPoint places a point relative to the plane within tolerance tol.
// Any point within tol of the plane is OnPlane; the epsilon band is what
// keeps nearly-parallel edges out of split computations.
func (p Plane) ClassifyPoint(point r3.Vector, tol float64) PointClass {
	d := p.Distance(point)
	switch {
	case d < -tol:
		return Behind
	case d > tol:
		return InFront
	}
	return OnPlane
}

// ApproxEqual reports whether two planes coincide with matching orientation
// within tol.
func (p Plane) ApproxEqual(other Plane, tol float64) bool {
	return VecApproxEqual(p.Normal, other.Normal, tol) && abs(p.W-other.W) <= tol
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
