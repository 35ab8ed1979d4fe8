package geom

import "github.com/arclight-rt/qrt/pkg/vecmath"

// TransformKind tags a Transform's variant.
type TransformKind int

const (
	TransformRotate TransformKind = iota
	TransformScale
	TransformTranslate
)

// Transform is applied to a mesh (iterates its triangles, recomputing
// centroids) or a sphere (translates the center). A Rotate transform turns
// by Angle radians about the principal axis Axis.
type Transform struct {
	Kind   TransformKind
	Axis   vecmath.Axis  // meaningful for TransformRotate
	Vector vecmath.Vec3  // meaningful for TransformScale, TransformTranslate
	Angle  float64       // meaningful for TransformRotate
}

func Rotate(axis vecmath.Axis, angle float64) Transform {
	return Transform{Kind: TransformRotate, Axis: axis, Angle: angle}
}

func ScaleBy(factor vecmath.Vec3) Transform {
	return Transform{Kind: TransformScale, Vector: factor}
}

func TranslateBy(offset vecmath.Vec3) Transform {
	return Transform{Kind: TransformTranslate, Vector: offset}
}

func (t Transform) matrix() vecmath.Mat4 {
	switch t.Kind {
	case TransformRotate:
		return vecmath.RotateAxis(t.Axis, t.Angle)
	case TransformScale:
		return vecmath.Scale(t.Vector)
	default:
		return vecmath.Translate(t.Vector)
	}
}

// ApplyToMesh transforms every triangle vertex point of mesh in place and
// recomputes each triangle's centroid.
func ApplyToMesh(mesh *Mesh, t Transform) {
	m := t.matrix()
	for i := range mesh.Tris {
		tri := &mesh.Tris[i]
		tri.A.Point = m.ApplyPoint(tri.A.Point)
		tri.B.Point = m.ApplyPoint(tri.B.Point)
		tri.C.Point = m.ApplyPoint(tri.C.Point)
		tri.RecomputeCentroid()
	}
}

// ApplyToSphere translates a sphere's center. Rotate/Scale are accepted
// for interface symmetry with ApplyToMesh but only Translate has a
// meaningful effect on a sphere (a uniform radius has no orientation and
// spec.md does not define ellipsoid scaling).
func ApplyToSphere(s *Sphere, t Transform) {
	if t.Kind == TransformTranslate {
		s.Center = s.Center.Add(t.Vector)
	}
}
