// Package scad serializes expression trees as OpenSCAD programs. Unlike
// STL export, nothing is tessellated here: booleans and transforms are
// written out symbolically and a downstream OpenSCAD engine performs
// them, which sidesteps the coplanar-face artifacts of BSP clipping.
//
// Evaluated geometry can still be embedded via Polyhedron, which dumps a
// solid's triangles as a polyhedron() call.
package scad

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/chazu/facet/pkg/csg"
	"github.com/chazu/facet/pkg/model"
)

// WriteScene writes each part of the scene as a named module followed by
// one call per module, so the output previews all parts at once.
func WriteScene(w io.Writer, scene *model.Scene) error {
	if err := scene.Validate(); err != nil {
		return errors.Wrap(err, "scad: invalid scene")
	}

	bw := bufio.NewWriter(w)
	for i, part := range scene.Parts {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "module %s() {\n", moduleName(part.Name))
		writeNode(bw, part.Root, 1)
		fmt.Fprintf(bw, "}\n")
	}
	fmt.Fprintln(bw)
	for _, part := range scene.Parts {
		fmt.Fprintf(bw, "%s();\n", moduleName(part.Name))
	}
	return errors.Wrap(bw.Flush(), "scad: flush")
}

// WriteNode writes a single expression tree as a top-level statement.
func WriteNode(w io.Writer, n *model.Node) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, n, 0)
	return errors.Wrap(bw.Flush(), "scad: flush")
}

func writeNode(w *bufio.Writer, n *model.Node, depth int) {
	ind := strings.Repeat("  ", depth)

	switch n.Kind {
	case model.KindPrimitive:
		writePrim(w, n.Prim, ind)

	case model.KindBoolean:
		fmt.Fprintf(w, "%s%s() {\n", ind, n.Op)
		for _, c := range n.Children {
			writeNode(w, c, depth+1)
		}
		fmt.Fprintf(w, "%s}\n", ind)

	case model.KindTransform:
		// The child is rotated in place and then moved, so translate
		// wraps rotate.
		child := n.Children[0]
		if n.Translation != (r3.Vector{}) {
			fmt.Fprintf(w, "%stranslate([%s, %s, %s])\n", ind,
				num(n.Translation.X), num(n.Translation.Y), num(n.Translation.Z))
		}
		if n.Rotation != (r3.Vector{}) {
			fmt.Fprintf(w, "%srotate([%s, %s, %s])\n", ind,
				num(n.Rotation.X), num(n.Rotation.Y), num(n.Rotation.Z))
		}
		writeNode(w, child, depth+1)

	case model.KindGroup:
		fmt.Fprintf(w, "%sunion() {\n", ind)
		for _, c := range n.Children {
			writeNode(w, c, depth+1)
		}
		fmt.Fprintf(w, "%s}\n", ind)
	}
}

func writePrim(w *bufio.Writer, p model.PrimSpec, ind string) {
	switch p.Kind {
	case model.PrimCube:
		fmt.Fprintf(w, "%scube([%s, %s, %s], center = %t);\n", ind,
			num(p.Size.X), num(p.Size.Y), num(p.Size.Z), p.Center)
	case model.PrimSphere:
		fmt.Fprintf(w, "%ssphere(r = %s, $fn = %d);\n", ind, num(p.Radius), p.Segments)
	case model.PrimCylinder:
		fmt.Fprintf(w, "%scylinder(h = %s, r = %s, $fn = %d);\n", ind,
			num(p.Height), num(p.Radius), p.Segments)
	}
}

// Polyhedron writes a solid's triangulation as an OpenSCAD polyhedron()
// call. Vertices are deduplicated by exact position; faces reference them
// by index.
func Polyhedron(w io.Writer, s *csg.Solid) error {
	bw := bufio.NewWriter(w)

	type key struct{ x, y, z float64 }
	index := make(map[key]int)
	var points []key
	var faces [][3]int

	for _, t := range s.Triangles() {
		var face [3]int
		for i, v := range [3]key{
			{t.A.X, t.A.Y, t.A.Z},
			{t.B.X, t.B.Y, t.B.Z},
			{t.C.X, t.C.Y, t.C.Z},
		} {
			idx, ok := index[v]
			if !ok {
				idx = len(points)
				index[v] = idx
				points = append(points, v)
			}
			face[i] = idx
		}
		faces = append(faces, face)
	}

	fmt.Fprintf(bw, "polyhedron(\n  points = [\n")
	for _, p := range points {
		fmt.Fprintf(bw, "    [%s, %s, %s],\n", num(p.x), num(p.y), num(p.z))
	}
	// OpenSCAD wants faces wound clockwise when viewed from outside,
	// the reverse of our counter-clockwise convention.
	fmt.Fprintf(bw, "  ],\n  faces = [\n")
	for _, f := range faces {
		fmt.Fprintf(bw, "    [%d, %d, %d],\n", f[2], f[1], f[0])
	}
	fmt.Fprintf(bw, "  ]\n);\n")
	return errors.Wrap(bw.Flush(), "scad: flush")
}

// num formats a float without trailing zero noise.
func num(f float64) string {
	return fmt.Sprintf("%g", f)
}

// moduleName sanitizes a part name into a valid OpenSCAD identifier.
func moduleName(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_part"
	}
	return b.String()
}
