package bvh

import (
	"math"

	"github.com/arclight-rt/qrt/pkg/geom"
)

// Hit is the result of a BVH nearest-hit query: Surface is nil on a miss,
// in which case T is strictly greater than the query's tMax.
type Hit struct {
	Surface geom.Surface
	T       float64
}

// Nearest finds the nearest surface hit by r within (tMin, tMax),
// excluding the surface `exclude` (pass nil for no exclusion). Both
// children of every internal node are always visited; the slab test is
// relied upon to prune cheaply.
func (tr Tree) Nearest(r geom.Ray, exclude geom.Surface, tMin, tMax float64) Hit {
	miss := Hit{T: geom.MissSentinel(tMax)}
	if tr.Root == nil {
		return miss
	}
	return nearest(tr.Root, r, exclude, tMin, tMax, tr.Epsilon)
}

func nearest(n *Node, r geom.Ray, exclude geom.Surface, tMin, tMax, eps float64) Hit {
	best := Hit{T: geom.MissSentinel(tMax)}

	if !slabTest(n.Box, r, eps) {
		return best
	}

	if n.IsLeaf() {
		for _, s := range n.Surfaces {
			t := s.Intersect(r, tMin, tMax)
			if t < best.T && s != exclude {
				best = Hit{Surface: s, T: t}
			}
		}
		return best
	}

	left := nearest(n.Left, r, exclude, tMin, tMax, eps)
	right := nearest(n.Right, r, exclude, tMin, tMax, eps)
	if left.T < right.T {
		return left
	}
	return right
}

// slabTest is the standard ray/AABB slab test, padded by ±eps on every
// axis to keep thin or axis-aligned boxes from falsely culling rays.
func slabTest(box AABB, r geom.Ray, eps float64) bool {
	inv := r.Dir.Inv()

	near, far := 0.0, math.Inf(1)

	t0 := (box.Min.X - eps - r.Origin.X) * inv.X
	t1 := (box.Max.X + eps - r.Origin.X) * inv.X
	near, far = updateInterval(near, far, t0, t1)

	t0 = (box.Min.Y - eps - r.Origin.Y) * inv.Y
	t1 = (box.Max.Y + eps - r.Origin.Y) * inv.Y
	near, far = updateInterval(near, far, t0, t1)

	t0 = (box.Min.Z - eps - r.Origin.Z) * inv.Z
	t1 = (box.Max.Z + eps - r.Origin.Z) * inv.Z
	near, far = updateInterval(near, far, t0, t1)

	return near < far
}

func updateInterval(near, far, t0, t1 float64) (float64, float64) {
	lo, hi := t0, t1
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(near, lo), math.Min(far, hi)
}
