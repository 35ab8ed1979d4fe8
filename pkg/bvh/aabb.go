// Package bvh implements the bounding volume hierarchy that accelerates
// nearest-hit queries over a static population of surfaces.
package bvh

import (
	"math"

	"github.com/arclight-rt/qrt/pkg/geom"
	"github.com/arclight-rt/qrt/pkg/vecmath"
)

// AABB is an axis-aligned bounding box with Min.k <= Max.k for every axis
// (it may be degenerate when a node has been collapsed).
type AABB struct {
	Min, Max vecmath.Vec3
}

func emptyAABB() AABB {
	return AABB{
		Min: vecmath.Splat(math.Inf(1)),
		Max: vecmath.Splat(math.Inf(-1)),
	}
}

func (b AABB) extend(p vecmath.Vec3) AABB {
	return AABB{Min: vecmath.Min(b.Min, p), Max: vecmath.Max(b.Max, p)}
}

// extrema computes the tight AABB over a set of surfaces' own extrema.
func extrema(surfaces []geom.Surface) AABB {
	box := emptyAABB()
	for _, s := range surfaces {
		mn, mx := s.Extrema()
		box = box.extend(mn).extend(mx)
	}
	return box
}

// Contains reports whether p lies within [min, max] inclusive on every
// axis.
func (b AABB) Contains(p vecmath.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// extent returns Max - Min.
func (b AABB) extent() vecmath.Vec3 { return b.Max.Sub(b.Min) }
