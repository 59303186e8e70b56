// Package csg implements boolean set operations on polygonal solids using
// binary space partitioning. A Solid is an immutable flat list of planar
// polygons; Union, Subtract, and Intersect build BSP trees from the
// operands, clip them against each other, and extract a new Solid.
//
// Every tree transform in this package is pure: Build, Merge, Invert,
// ClipTo, and ClipPolygons return fresh structures and never modify their
// receivers, so two solids never share mutable state. Traversals use
// explicit work stacks, keeping goroutine stack usage bounded on inputs
// whose polygon order produces degenerate, deeply unbalanced trees (no
// splitting-plane heuristic is applied; the first polygon's plane is always
// used).
//
// Output meshes are not guaranteed to be watertight. Splitting introduces
// T-vertices along shared edges and the algorithm makes no attempt to
// reconcile them; this is a known property of the BSP approach carried by
// design. Jobs that need a watertight result should export the unevaluated
// expression via the scad exporter and let a downstream geometry engine
// perform the booleans.
package csg
