// Package model defines the CSG expression tree produced by script
// evaluation. A Scene is a set of named parts, each the root of a tree of
// primitive, boolean, and transform nodes. The tree is the common input
// for both output paths: tessellation evaluates it through a geometry
// kernel, while the scad exporter serializes it verbatim so a downstream
// engine can perform the booleans instead.
package model

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Kind discriminates node types.
type Kind int

const (
	KindPrimitive Kind = iota
	KindBoolean
	KindTransform
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindBoolean:
		return "boolean"
	case KindTransform:
		return "transform"
	case KindGroup:
		return "group"
	}
	return "unknown"
}

// Op is a boolean operator.
type Op int

const (
	OpUnion Op = iota
	OpDifference
	OpIntersection
)

func (o Op) String() string {
	switch o {
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	case OpIntersection:
		return "intersection"
	}
	return "unknown"
}

// PrimKind discriminates primitive shapes.
type PrimKind int

const (
	PrimCube PrimKind = iota
	PrimSphere
	PrimCylinder
)

func (p PrimKind) String() string {
	switch p {
	case PrimCube:
		return "cube"
	case PrimSphere:
		return "sphere"
	case PrimCylinder:
		return "cylinder"
	}
	return "unknown"
}

// PrimSpec holds primitive parameters. Size is used by cubes; Radius,
// Height, and Segments by spheres and cylinders.
type PrimSpec struct {
	Kind     PrimKind
	Size     r3.Vector
	Radius   float64
	Height   float64
	Segments int
	Center   bool
}

// Node is one expression node. Exactly one of the kind-specific field
// groups is meaningful, selected by Kind.
type Node struct {
	Kind Kind

	Prim PrimSpec // KindPrimitive

	Op Op // KindBoolean

	Translation r3.Vector // KindTransform
	Rotation    r3.Vector // KindTransform, Euler degrees

	Children []*Node // KindBoolean, KindTransform, KindGroup
}

// Primitive node constructors.

func NewCube(size r3.Vector, center bool) *Node {
	return &Node{Kind: KindPrimitive, Prim: PrimSpec{Kind: PrimCube, Size: size, Center: center}}
}

func NewSphere(radius float64, segments int) *Node {
	return &Node{Kind: KindPrimitive, Prim: PrimSpec{Kind: PrimSphere, Radius: radius, Segments: segments}}
}

func NewCylinder(radius, height float64, segments int) *Node {
	return &Node{Kind: KindPrimitive, Prim: PrimSpec{Kind: PrimCylinder, Radius: radius, Height: height, Segments: segments}}
}

// NewBoolean combines two or more children under a boolean operator. For
// difference and the binary kernels, children beyond the first are folded
// left: ((a op b) op c).
func NewBoolean(op Op, children ...*Node) *Node {
	return &Node{Kind: KindBoolean, Op: op, Children: children}
}

// NewTranslate moves child by d.
func NewTranslate(d r3.Vector, child *Node) *Node {
	return &Node{Kind: KindTransform, Translation: d, Children: []*Node{child}}
}

// NewRotate rotates child by Euler angles in degrees around X, Y, Z.
func NewRotate(angles r3.Vector, child *Node) *Node {
	return &Node{Kind: KindTransform, Rotation: angles, Children: []*Node{child}}
}

// NewGroup collects children without combining them geometrically.
func NewGroup(children ...*Node) *Node {
	return &Node{Kind: KindGroup, Children: children}
}

// Part is a named expression root; one part yields one output mesh.
type Part struct {
	Name string
	Root *Node
}

// Scene is the complete result of evaluating a script.
type Scene struct {
	Parts []*Part
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddPart appends a named part.
func (s *Scene) AddPart(name string, root *Node) {
	s.Parts = append(s.Parts, &Part{Name: name, Root: root})
}

// Lookup returns the part with the given name, or nil.
func (s *Scene) Lookup(name string) *Part {
	for _, p := range s.Parts {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Validate walks every part and reports the first structural defect:
// boolean nodes need at least two children, transforms exactly one,
// primitives positive dimensions.
func (s *Scene) Validate() error {
	for _, part := range s.Parts {
		if part.Root == nil {
			return errors.Errorf("part %q has no expression", part.Name)
		}
		if err := validateNode(part.Root); err != nil {
			return errors.Wrapf(err, "part %q", part.Name)
		}
	}
	return nil
}

func validateNode(n *Node) error {
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch node.Kind {
		case KindPrimitive:
			if err := validatePrim(node.Prim); err != nil {
				return err
			}
		case KindBoolean:
			if len(node.Children) < 2 {
				return errors.Errorf("%s node has %d children, need at least 2", node.Op, len(node.Children))
			}
		case KindTransform:
			if len(node.Children) != 1 {
				return errors.Errorf("transform node has %d children, need exactly 1", len(node.Children))
			}
		case KindGroup:
			if len(node.Children) == 0 {
				return errors.New("group node has no children")
			}
		default:
			return errors.Errorf("unknown node kind %d", node.Kind)
		}
		stack = append(stack, node.Children...)
	}
	return nil
}

func validatePrim(p PrimSpec) error {
	switch p.Kind {
	case PrimCube:
		if p.Size.X <= 0 || p.Size.Y <= 0 || p.Size.Z <= 0 {
			return errors.Errorf("cube has non-positive size %v", p.Size)
		}
	case PrimSphere:
		if p.Radius <= 0 {
			return errors.Errorf("sphere has non-positive radius %g", p.Radius)
		}
	case PrimCylinder:
		if p.Radius <= 0 || p.Height <= 0 {
			return errors.Errorf("cylinder has non-positive dimensions r=%g h=%g", p.Radius, p.Height)
		}
	default:
		return errors.Errorf("unknown primitive kind %d", p.Kind)
	}
	return nil
}
