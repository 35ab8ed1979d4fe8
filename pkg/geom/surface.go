package geom

import "github.com/arclight-rt/qrt/pkg/vecmath"

// Surface is a tagged reference to a triangle or sphere. Identity is by
// Go interface equality, which compares the dynamic type and the
// underlying pointer — exactly the (kind, storage-identity) pair spec'd
// for self-exclusion, with no hand-rolled identity struct required.
type Surface interface {
	// Intersect returns the smallest valid ray parameter in (tMin, tMax),
	// or a value strictly greater than tMax (MissSentinel(tMax)) on a miss.
	Intersect(r Ray, tMin, tMax float64) float64

	// Extrema returns the AABB corners covering this surface.
	Extrema() (min, max vecmath.Vec3)

	// ClassifyPoint is the sole point used by the BVH to classify this
	// surface into a child AABB (triangle centroid, sphere center).
	ClassifyPoint() vecmath.Vec3

	// NormalAt returns the surface normal at the given hit point.
	NormalAt(hit vecmath.Vec3) vecmath.Vec3

	// MaterialRef returns the surface's material.
	MaterialRef() *Material
}

// MissSentinel is the "no intersection" return value for a given tMax: a
// value strictly greater than tMax, so callers comparing along a single
// axis never need an optional result.
func MissSentinel(tMax float64) float64 { return tMax + 1 }
