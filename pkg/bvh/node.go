package bvh

import (
	"github.com/arclight-rt/qrt/pkg/geom"
	"github.com/arclight-rt/qrt/pkg/vecmath"
)

// DefaultEpsilon is the degenerate-AABB padding (ε_BVH) used when a tree
// is built without an explicit override.
const DefaultEpsilon = 0.2

// Node is either an internal node (Left and Right set, Surfaces empty) or
// a leaf (no children, one or more surfaces).
type Node struct {
	Left, Right *Node
	Box         AABB
	Surfaces    []geom.Surface
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Tree is a built BVH together with the epsilon it was built and must be
// traversed with.
type Tree struct {
	Root    *Node
	Epsilon float64
}

// Build constructs a BVH over surfaces by top-down midpoint split on the
// longest axis. Returns a Tree with a nil Root if surfaces is empty.
func Build(surfaces []geom.Surface, epsilon float64) Tree {
	if len(surfaces) == 0 {
		return Tree{Epsilon: epsilon}
	}
	return Tree{Root: buildNode(surfaces, extrema(surfaces), epsilon), Epsilon: epsilon}
}

func chooseAxis(d vecmath.Vec3) vecmath.Axis {
	if d.X >= d.Y && d.X >= d.Z {
		return vecmath.AxisX
	}
	if d.Y >= d.Z && d.Y >= d.X {
		return vecmath.AxisY
	}
	return vecmath.AxisZ
}

func buildNode(surfaces []geom.Surface, box AABB, eps float64) *Node {
	if len(surfaces) == 1 {
		return &Node{Box: extrema(surfaces), Surfaces: surfaces}
	}

	d := box.extent()
	axis := chooseAxis(d)
	if d.Component(axis) < eps/2 {
		return &Node{Box: box, Surfaces: surfaces}
	}

	mid := box.Min.Component(axis) + 0.5*d.Component(axis)
	leftBox, rightBox := box, box
	leftBox.Max = leftBox.Max.WithComponent(axis, mid)
	rightBox.Min = rightBox.Min.WithComponent(axis, mid)

	var left, right []geom.Surface
	for _, s := range surfaces {
		p := s.ClassifyPoint()
		if leftBox.Contains(p) {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	switch {
	case len(left) == 0:
		return buildNode(surfaces, rightBox, eps)
	case len(right) == 0:
		return buildNode(surfaces, leftBox, eps)
	default:
		return &Node{
			Box:   box,
			Left:  buildNode(left, extrema(left), eps),
			Right: buildNode(right, extrema(right), eps),
		}
	}
}
