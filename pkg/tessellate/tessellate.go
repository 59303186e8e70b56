// Package tessellate evaluates a CSG expression scene through a geometry
// kernel and produces triangle meshes. One mesh is produced per part.
package tessellate

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/model"
)

// Tessellate evaluates every part of the scene with the provided kernel.
// The scene is read-only and never modified; a nil scene yields no meshes.
func Tessellate(scene *model.Scene, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if scene == nil {
		return nil, nil
	}
	if err := scene.Validate(); err != nil {
		return nil, errors.Wrap(err, "tessellate")
	}

	var meshes []*kernel.Mesh
	for _, part := range scene.Parts {
		solid, err := evalNode(part.Root, k)
		if err != nil {
			return nil, errors.Wrapf(err, "tessellate: part %q", part.Name)
		}
		mesh, err := k.ToMesh(solid)
		if err != nil {
			return nil, errors.Wrapf(err, "tessellate: part %q: to mesh", part.Name)
		}
		mesh.PartName = part.Name
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// evalNode evaluates one expression subtree bottom-up into a kernel solid.
func evalNode(n *model.Node, k kernel.Kernel) (kernel.Solid, error) {
	switch n.Kind {
	case model.KindPrimitive:
		return evalPrimitive(n.Prim, k), nil

	case model.KindBoolean:
		return evalBoolean(n, k)

	case model.KindTransform:
		child, err := evalNode(n.Children[0], k)
		if err != nil {
			return nil, err
		}
		// Rotation applies before translation, matching script semantics.
		if n.Rotation != (r3.Vector{}) {
			child = k.Rotate(child, n.Rotation.X, n.Rotation.Y, n.Rotation.Z)
		}
		if n.Translation != (r3.Vector{}) {
			child = k.Translate(child, n.Translation.X, n.Translation.Y, n.Translation.Z)
		}
		return child, nil

	case model.KindGroup:
		// A group overlays its children: geometrically a union.
		return foldChildren(n.Children, k, k.Union)

	default:
		return nil, errors.Errorf("unknown node kind: %v", n.Kind)
	}
}

func evalPrimitive(p model.PrimSpec, k kernel.Kernel) kernel.Solid {
	switch p.Kind {
	case model.PrimSphere:
		return k.Sphere(p.Radius, p.Segments)
	case model.PrimCylinder:
		return k.Cylinder(p.Height, p.Radius, p.Segments)
	default:
		s := k.Cube(p.Size.X, p.Size.Y, p.Size.Z)
		if p.Center {
			s = k.Translate(s, -p.Size.X/2, -p.Size.Y/2, -p.Size.Z/2)
		}
		return s
	}
}

func evalBoolean(n *model.Node, k kernel.Kernel) (kernel.Solid, error) {
	var op func(a, b kernel.Solid) kernel.Solid
	switch n.Op {
	case model.OpUnion:
		op = k.Union
	case model.OpDifference:
		op = k.Difference
	case model.OpIntersection:
		op = k.Intersection
	default:
		return nil, errors.Errorf("unknown boolean op: %v", n.Op)
	}
	return foldChildren(n.Children, k, op)
}

// foldChildren evaluates children and folds them left through a binary
// operator: ((a op b) op c).
func foldChildren(children []*model.Node, k kernel.Kernel, op func(a, b kernel.Solid) kernel.Solid) (kernel.Solid, error) {
	acc, err := evalNode(children[0], k)
	if err != nil {
		return nil, err
	}
	for _, child := range children[1:] {
		s, err := evalNode(child, k)
		if err != nil {
			return nil, err
		}
		acc = op(acc, s)
	}
	return acc, nil
}
