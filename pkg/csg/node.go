package csg

import "github.com/chazu/facet/pkg/geom"

// Node is one node of a BSP tree. It holds a splitting plane, the polygons
// coplanar with that plane, and owned front/back subtrees. A node with no
// plane is the empty solid and has no polygons and no children.
//
// Nodes are immutable once returned: Build, Merge, Invert, and ClipTo
// construct new trees rather than modifying existing ones. The splitting
// plane of each subtree is always the plane of the first polygon routed to
// it; no selection heuristic is applied, so tree depth depends on input
// order rather than geometry. All methods traverse with explicit work
// stacks.
type Node struct {
	plane    *geom.Plane
	polygons []Polygon
	front    *Node
	back     *Node
}

// Build constructs a BSP tree from a polygon list. An empty list yields the
// empty node. The input is deep-copied; the caller keeps ownership of its
// polygons.
func Build(polygons []Polygon, tol float64) *Node {
	return (&Node{}).Merge(polygons, tol)
}

// mergeTask carries one pending subtree construction: combine the existing
// subtree src (may be nil) with polys, hanging the result on *dst.
type mergeTask struct {
	src   *Node
	polys []Polygon
	dst   **Node
}

// Merge returns a new tree containing every polygon of n plus the given
// polygons, partitioned by n's existing planes where they exist. n itself
// is not modified.
func (n *Node) Merge(polygons []Polygon, tol float64) *Node {
	var root *Node
	stack := []mergeTask{{src: n, polys: clonePolygons(polygons), dst: &root}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &Node{}
		var plane geom.Plane
		switch {
		case t.src != nil && t.src.plane != nil:
			plane = *t.src.plane
			node.polygons = clonePolygons(t.src.polygons)
		case len(t.polys) > 0:
			plane = t.polys[0].Plane
		default:
			// Nothing to partition: an empty subtree copies as an empty
			// node, an absent one stays absent.
			if t.src != nil {
				*t.dst = node
			}
			continue
		}
		node.plane = &plane

		var frontPolys, backPolys []Polygon
		for _, p := range t.polys {
			// Coplanar polygons, front- or back-facing, stay on this node.
			Split(plane, p, tol, &node.polygons, &node.polygons, &frontPolys, &backPolys)
		}
		*t.dst = node

		var srcFront, srcBack *Node
		if t.src != nil {
			srcFront, srcBack = t.src.front, t.src.back
		}
		if srcFront != nil || len(frontPolys) > 0 {
			stack = append(stack, mergeTask{src: srcFront, polys: frontPolys, dst: &node.front})
		}
		if srcBack != nil || len(backPolys) > 0 {
			stack = append(stack, mergeTask{src: srcBack, polys: backPolys, dst: &node.back})
		}
	}
	return root
}

// Invert returns the complement tree: every polygon flipped, every plane
// negated, front and back swapped throughout. Inverting twice reproduces
// the original polygon set exactly.
func (n *Node) Invert() *Node {
	type task struct {
		src *Node
		dst **Node
	}
	var root *Node
	stack := []task{{src: n, dst: &root}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &Node{}
		if t.src.plane != nil {
			fp := t.src.plane.Flipped()
			node.plane = &fp
		}
		node.polygons = make([]Polygon, len(t.src.polygons))
		for i, p := range t.src.polygons {
			node.polygons[i] = p.Flipped()
		}
		*t.dst = node

		if t.src.front != nil {
			stack = append(stack, task{src: t.src.front, dst: &node.back})
		}
		if t.src.back != nil {
			stack = append(stack, task{src: t.src.back, dst: &node.front})
		}
	}
	return root
}

// ClipPolygons returns the fragments of polygons that lie outside the solid
// represented by this tree. Fragments routed behind a node with no back
// subtree are inside the solid and are discarded; that discard is the whole
// clipping mechanism. The result preserves depth-first front-then-back
// order and shares no storage with the input.
func (n *Node) ClipPolygons(polygons []Polygon, tol float64) []Polygon {
	type task struct {
		node  *Node
		polys []Polygon
	}
	var out []Polygon
	stack := []task{{node: n, polys: clonePolygons(polygons)}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.node.plane == nil {
			// Empty tree: nothing to clip against.
			out = append(out, t.polys...)
			continue
		}

		var f, b []Polygon
		for _, p := range t.polys {
			Split(*t.node.plane, p, tol, &f, &b, &f, &b)
		}

		// Back is pushed first so the whole front subtree resolves before
		// any of back's fragments reach the output.
		if t.node.back != nil {
			stack = append(stack, task{node: t.node.back, polys: b})
		}
		if t.node.front != nil {
			stack = append(stack, task{node: t.node.front, polys: f})
		} else {
			out = append(out, f...)
		}
	}
	return out
}

// ClipTo returns a tree with the same shape as n in which every node's
// polygon list has been clipped against other. Neither tree is modified.
func (n *Node) ClipTo(other *Node, tol float64) *Node {
	type task struct {
		src *Node
		dst **Node
	}
	var root *Node
	stack := []task{{src: n, dst: &root}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &Node{}
		if t.src.plane != nil {
			pl := *t.src.plane
			node.plane = &pl
		}
		node.polygons = other.ClipPolygons(t.src.polygons, tol)
		*t.dst = node

		if t.src.front != nil {
			stack = append(stack, task{src: t.src.front, dst: &node.front})
		}
		if t.src.back != nil {
			stack = append(stack, task{src: t.src.back, dst: &node.back})
		}
	}
	return root
}

// AllPolygons flattens the tree into a polygon list: each node's own
// polygons, then the front subtree, then the back subtree. The order is a
// stable pre-order, deterministic for identical trees, and the returned
// polygons are copies.
func (n *Node) AllPolygons() []Polygon {
	var out []Polygon
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, p := range node.polygons {
			out = append(out, p.Clone())
		}
		if node.back != nil {
			stack = append(stack, node.back)
		}
		if node.front != nil {
			stack = append(stack, node.front)
		}
	}
	return out
}

// NumPolygons returns the total polygon count stored in the tree.
func (n *Node) NumPolygons() int {
	count := 0
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count += len(node.polygons)
		if node.back != nil {
			stack = append(stack, node.back)
		}
		if node.front != nil {
			stack = append(stack, node.front)
		}
	}
	return count
}
