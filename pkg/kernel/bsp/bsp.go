// Package bsp implements the kernel.Kernel interface with the in-process
// BSP boolean engine from pkg/csg. It is the default backend: pure Go, no
// CGo, exact polygon output. Results are not guaranteed watertight; see
// the pkg/csg package documentation.
package bsp

import (
	"github.com/golang/geo/r3"

	"github.com/chazu/facet/pkg/csg"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/primitive"
)

// Compile-time interface checks.
var _ kernel.Kernel = (*Kernel)(nil)
var _ kernel.Solid = (*bspSolid)(nil)

// bspSolid wraps a csg.Solid to implement kernel.Solid.
type bspSolid struct {
	s *csg.Solid
}

// BoundingBox returns the axis-aligned bounding box.
func (s *bspSolid) BoundingBox() (min, max [3]float64) {
	lo, hi := s.s.BoundingBox()
	return [3]float64{lo.X, lo.Y, lo.Z}, [3]float64{hi.X, hi.Y, hi.Z}
}

// Kernel implements kernel.Kernel on the BSP boolean engine.
type Kernel struct {
	tol float64
}

// New returns a BSP kernel using the default classification tolerance.
func New() *Kernel {
	return &Kernel{}
}

// NewWithTolerance returns a BSP kernel whose boolean operations classify
// points against planes with the given epsilon.
func NewWithTolerance(tol float64) *Kernel {
	return &Kernel{tol: tol}
}

func (k *Kernel) options() []csg.Option {
	if k.tol > 0 {
		return []csg.Option{csg.WithTolerance(k.tol)}
	}
	return nil
}

// unwrap extracts the underlying csg.Solid from a kernel.Solid.
func unwrap(s kernel.Solid) *csg.Solid {
	return s.(*bspSolid).s
}

// wrap creates a kernel.Solid from a csg.Solid.
func wrap(s *csg.Solid) kernel.Solid {
	return &bspSolid{s: s}
}

// Cube creates a box with its minimum corner at the origin.
func (k *Kernel) Cube(x, y, z float64) kernel.Solid {
	return wrap(primitive.Cube(x, y, z, false, k.options()...))
}

// Sphere creates an origin-centered sphere tessellated into the given
// number of segments.
func (k *Kernel) Sphere(radius float64, segments int) kernel.Solid {
	return wrap(primitive.Sphere(radius, segments, segments/2, k.options()...))
}

// Cylinder creates an origin-centered cylinder along the Z axis.
func (k *Kernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	return wrap(primitive.Cylinder(radius, radius, height, segments, true, k.options()...))
}

// Union returns the union of two solids.
func (k *Kernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(unwrap(a).Union(unwrap(b)))
}

// Difference returns the difference a - b.
func (k *Kernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(unwrap(a).Subtract(unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *Kernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(unwrap(a).Intersect(unwrap(b)))
}

// Translate moves a solid by (x, y, z).
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return wrap(unwrap(s).Translated(r3.Vector{X: x, Y: y, Z: z}))
}

// Rotate rotates a solid by Euler angles (degrees) around X, Y, Z axes.
func (k *Kernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return wrap(unwrap(s).Rotated(x, y, z))
}

// ToMesh fan-triangulates the solid's polygons into a flat triangle mesh
// with face normals.
func (k *Kernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	mesh := &kernel.Mesh{}
	for _, tri := range unwrap(s).Triangles() {
		n := tri.Normal()
		mesh.AppendTriangle(
			[3]float64{tri.A.X, tri.A.Y, tri.A.Z},
			[3]float64{tri.B.X, tri.B.Y, tri.B.Z},
			[3]float64{tri.C.X, tri.C.Y, tri.C.Z},
			[3]float64{n.X, n.Y, n.Z},
		)
	}
	return mesh, nil
}

// Solid exposes the underlying csg.Solid of a kernel.Solid produced by
// this backend, for callers that need polygon-level access.
func Solid(s kernel.Solid) *csg.Solid {
	return unwrap(s)
}
