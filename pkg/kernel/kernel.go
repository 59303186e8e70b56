// Package kernel defines the abstract geometry kernel interface.
// Implementations (bsp, sdfx, manifold) provide primitive solids and
// boolean operations behind this interface, so callers can swap the
// in-process BSP engine for an SDF or manifold backend without changing
// the rest of the system.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives. Cube sits with its minimum corner at the origin;
	// Sphere and Cylinder are origin-centered on the Z axis. Backends
	// that represent smooth surfaces may ignore segment counts.
	Cube(x, y, z float64) Solid
	Sphere(radius float64, segments int) Solid
	Cylinder(height, radius float64, segments int) Solid

	// Boolean operations. Operands are never mutated; each call returns
	// a new solid.
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms.
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output.
	ToMesh(s Solid) (*Mesh, error)
}
