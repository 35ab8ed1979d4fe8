package geom

import "github.com/arclight-rt/qrt/pkg/vecmath"

// epsTri is the determinant threshold below which a triangle is treated
// as edge-on to the ray (degenerate hit, reported as a miss).
const epsTri = 1e-7

// Vertex is a point with an interpolated shading normal.
type Vertex struct {
	Point  vecmath.Vec3
	Normal vecmath.Vec3
}

// Triangle is a surface primitive with per-vertex normals. Centroid is
// cached and is the sole datum the BVH uses to classify this triangle.
type Triangle struct {
	A, B, C  Vertex
	Centroid vecmath.Vec3
	Material *Material
}

var _ Surface = (*Triangle)(nil)

func triangleCentroid(a, b, c Vertex) vecmath.Vec3 {
	return a.Point.Add(b.Point).Add(c.Point).Div(3)
}

// NewTriangle builds a triangle and caches its centroid.
func NewTriangle(a, b, c Vertex, material *Material) *Triangle {
	return &Triangle{A: a, B: b, C: c, Centroid: triangleCentroid(a, b, c), Material: material}
}

// RecomputeCentroid recomputes Centroid from the current vertex points;
// called after a transform moves the vertices.
func (t *Triangle) RecomputeCentroid() {
	t.Centroid = triangleCentroid(t.A, t.B, t.C)
}

// Intersect implements the Möller–Trumbore ray-triangle test. The branch
// on the sign of det preserves back-face handling.
func (t *Triangle) Intersect(r Ray, tMin, tMax float64) float64 {
	miss := MissSentinel(tMax)

	e1 := t.B.Point.Sub(t.A.Point)
	e2 := t.C.Point.Sub(t.A.Point)

	pVec := r.Dir.Cross(e2)
	tVec := r.Origin.Sub(t.A.Point)
	qVec := tVec.Cross(e1)

	det := e1.Dot(pVec)

	var u, v float64
	switch {
	case det > epsTri:
		u = tVec.Dot(pVec)
		if u < 0 || u > det {
			return miss
		}
		v = r.Dir.Dot(qVec)
		if v < 0 || u+v > det {
			return miss
		}
	case det < -epsTri:
		u = tVec.Dot(pVec)
		if u > 0 || u < det {
			return miss
		}
		v = r.Dir.Dot(qVec)
		if v > 0 || u+v < det {
			return miss
		}
	default:
		return miss
	}

	w := e2.Dot(qVec) / det
	if w >= tMax || w <= tMin {
		return miss
	}
	return w
}

// Extrema returns the bounding corners of the three vertex points.
func (t *Triangle) Extrema() (min, max vecmath.Vec3) {
	min = vecmath.Min(vecmath.Min(t.A.Point, t.B.Point), t.C.Point)
	max = vecmath.Max(vecmath.Max(t.A.Point, t.B.Point), t.C.Point)
	return min, max
}

func (t *Triangle) ClassifyPoint() vecmath.Vec3 { return t.Centroid }

// NormalAt interpolates the per-vertex normals using the barycentric
// coordinates of hit with respect to (A, B, C).
func (t *Triangle) NormalAt(hit vecmath.Vec3) vecmath.Vec3 {
	v0 := t.B.Point.Sub(t.A.Point)
	v1 := t.C.Point.Sub(t.A.Point)
	v2 := hit.Sub(t.A.Point)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01

	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1 - v - w

	return t.A.Normal.Mul(u).Add(t.B.Normal.Mul(v)).Add(t.C.Normal.Mul(w))
}

func (t *Triangle) MaterialRef() *Material { return t.Material }
