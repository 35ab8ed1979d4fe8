package geom

import (
	"math"

	"github.com/arclight-rt/qrt/pkg/vecmath"
)

// Sphere is a surface primitive.
type Sphere struct {
	Center   vecmath.Vec3
	Radius   float64
	Material *Material
}

var _ Surface = (*Sphere)(nil)

// Intersect solves |origin + t*dir - center|^2 = radius^2. The direction
// is normalized internally; the returned t is in the caller's (possibly
// non-unit-direction) units.
func (s *Sphere) Intersect(r Ray, tMin, tMax float64) float64 {
	miss := MissSentinel(tMax)

	l := s.Center.Sub(r.Origin)
	dirNorm := r.Dir.Norm()
	tca := l.Dot(dirNorm)
	dSq := l.Dot(l) - tca*tca
	radSq := s.Radius * s.Radius
	if dSq > radSq {
		return miss
	}
	thc := math.Sqrt(radSq - dSq)
	length := r.Dir.Length()

	t1 := (tca - thc) / length
	t2 := (tca + thc) / length

	best := miss
	if t1 > tMin && t1 < tMax {
		best = t1
	}
	if t2 > tMin && t2 < tMax && t2 < best {
		best = t2
	}
	return best
}

// Extrema returns center ± (radius, radius, radius).
func (s *Sphere) Extrema() (min, max vecmath.Vec3) {
	r := vecmath.Splat(s.Radius)
	return s.Center.Sub(r), s.Center.Add(r)
}

func (s *Sphere) ClassifyPoint() vecmath.Vec3 { return s.Center }

func (s *Sphere) NormalAt(hit vecmath.Vec3) vecmath.Vec3 { return hit.Sub(s.Center).Norm() }

func (s *Sphere) MaterialRef() *Material { return s.Material }
