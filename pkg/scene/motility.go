// Package scene owns materials, lights, meshes and spheres, partitions
// drawable primitives into BVH-accelerated static and linearly scanned
// dynamic sets, and answers nearest-hit intersection queries against both.
package scene

// Motility classifies a primitive as static (BVH-accelerated) or dynamic
// (linearly scanned every ray).
type Motility int

const (
	Static Motility = iota
	Dynamic
)
