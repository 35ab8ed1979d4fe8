package geom

import "github.com/arclight-rt/qrt/pkg/vecmath"

// Ray is a parametric ray: points along it are Origin + t*Dir. Dir need
// not be unit length; intersection kernels normalize internally where
// required but report t in the caller's units.
type Ray struct {
	Origin vecmath.Vec3
	Dir    vecmath.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) vecmath.Vec3 { return r.Origin.Add(r.Dir.Mul(t)) }
