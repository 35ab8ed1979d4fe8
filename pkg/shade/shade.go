// Package shade generates primary camera rays and evaluates Phong
// shading with shadow rays against a scene.
package shade

import (
	"math"

	"github.com/arclight-rt/qrt/pkg/geom"
	"github.com/arclight-rt/qrt/pkg/scene"
	"github.com/arclight-rt/qrt/pkg/vecmath"
)

// up is fixed per spec: (0,-1,0), which flips y in image space.
var up = vecmath.V3(0, -1, 0)

// Params bundles the render-time knobs shading needs, independent of the
// wider rtconfig.Config so this package stays decoupled from CLI/config
// concerns.
type Params struct {
	TMin     float64
	TMax     float64
	FOV      float64 // horizontal field of view, radians
	Ambience float64
}

// CameraRay builds the primary ray through pixel (x, y) of a w×h image.
func CameraRay(cam scene.Camera, w, h, x, y int, fov float64) geom.Ray {
	forward := cam.At.Sub(cam.Pos).Norm()
	right := forward.Cross(up)

	nx := (float64(x)/float64(w) - 0.5) * math.Tan(fov/2)
	ny := (float64(y)/float64(h) - 0.5) * math.Tan(fov/2)

	imgPt := right.Mul(nx).Add(up.Mul(ny)).Add(cam.Pos).Add(forward)

	return geom.Ray{
		Origin: cam.Pos,
		Dir:    imgPt.Sub(cam.Pos).Norm(),
	}
}

// Cast traces ray r through s and returns the shaded color: black on a
// miss, else ambient + per-light diffuse/specular Phong contributions
// from lights not in shadow.
func Cast(s *scene.Scene, p Params, r geom.Ray) vecmath.Vec3 {
	hit := s.Intersect(r, p.TMin, p.TMax)
	if hit.Surface == nil {
		return vecmath.Zero
	}

	point := r.At(hit.T)
	normal := hit.Surface.NormalAt(point)
	material := hit.Surface.MaterialRef()

	color := material.Ambient.Mul(p.Ambience)

	for _, light := range s.Lights() {
		toLightVec := light.Pos.Sub(point)
		distToLight := toLightVec.Length()
		toLight := toLightVec.Div(distToLight)
		shadowRay := geom.Ray{Origin: point, Dir: toLight}

		shadow := s.IntersectExcluding(shadowRay, hit.Surface, p.TMin, distToLight)
		if shadow.Surface != nil {
			continue
		}

		diffuse := math.Max(0, normal.Dot(toLight)*light.Strength)
		color = color.Add(material.Diffuse.Mul(diffuse))

		refl := r.Dir.Reflect(normal)
		spec := math.Max(0, material.Luster*math.Pow(refl.Dot(toLight), material.Metallicity))
		color = color.Add(material.Spec.Mul(spec))
	}

	return color.Clamp(0, 1)
}
