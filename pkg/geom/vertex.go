// Package geom provides the small linear-algebra boundary consumed by the
// CSG core: vertices with interpolated attributes, planes, and epsilon-based
// point classification. Vector math comes from github.com/golang/geo; this
// package defines no numeric primitives of its own beyond the tolerance
// parameter.
package geom

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the epsilon below which a point is considered to lie
// on a plane. Classification and splitting are sensitive to this value, so
// callers that need a different tolerance pass one explicitly.
const DefaultTolerance = 1e-5

// Vertex is a polygon corner. Position and normal are required; UV is an
// optional auxiliary attribute. All attributes are linearly interpolated
// when an edge is split by a plane.
type Vertex struct {
	Pos    r3.Vector
	Normal r3.Vector
	UV     r2.Point
}

// Lerp returns the vertex at parameter t along the edge from v to other,
// with every attribute interpolated.
func (v Vertex) Lerp(other Vertex, t float64) Vertex {
	return Vertex{
		Pos:    v.Pos.Add(other.Pos.Sub(v.Pos).Mul(t)),
		Normal: v.Normal.Add(other.Normal.Sub(v.Normal).Mul(t)),
		UV:     v.UV.Add(other.UV.Sub(v.UV).Mul(t)),
	}
}

// Flipped returns the vertex with its normal negated. Used when a polygon's
// winding is reversed.
func (v Vertex) Flipped() Vertex {
	v.Normal = v.Normal.Mul(-1)
	return v
}

// ApproxEqual reports whether two vertices have the same position and
// normal within tol.
func (v Vertex) ApproxEqual(other Vertex, tol float64) bool {
	return VecApproxEqual(v.Pos, other.Pos, tol) && VecApproxEqual(v.Normal, other.Normal, tol)
}

// VecApproxEqual reports component-wise equality of two vectors within tol.
func VecApproxEqual(a, b r3.Vector, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}
