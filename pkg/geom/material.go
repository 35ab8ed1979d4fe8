package geom

import "github.com/arclight-rt/qrt/pkg/vecmath"

// Material is the Phong surface description shared by triangles and
// spheres. Metallicity is the specular exponent; Luster the specular
// coefficient.
type Material struct {
	Name        string
	Ambient     vecmath.Vec3
	Diffuse     vecmath.Vec3
	Spec        vecmath.Vec3
	Luster      float64
	Metallicity float64
}

// Light is a point light with no attenuation.
type Light struct {
	Pos      vecmath.Vec3
	Strength float64
}
