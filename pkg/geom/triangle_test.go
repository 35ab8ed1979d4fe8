package geom

import (
	"math"
	"testing"

	"github.com/arclight-rt/qrt/pkg/vecmath"
)

func flatTriangle(a, b, c vecmath.Vec3, mat *Material) *Triangle {
	n := b.Sub(a).Cross(c.Sub(a)).Norm()
	v := func(p vecmath.Vec3) Vertex { return Vertex{Point: p, Normal: n} }
	return NewTriangle(v(a), v(b), v(c), mat)
}

func TestTriangleCentroid(t *testing.T) {
	tri := flatTriangle(vecmath.V3(0, 0, 0), vecmath.V3(3, 0, 0), vecmath.V3(0, 3, 0), nil)
	want := vecmath.V3(1, 1, 0)
	if !tri.Centroid.Aeq(want, 1e-9) {
		t.Errorf("centroid: got %v, want %v", tri.Centroid, want)
	}
}

func TestTriangleHitCenter(t *testing.T) {
	tri := flatTriangle(vecmath.V3(-1, -1, 0), vecmath.V3(1, -1, 0), vecmath.V3(0, 1, 0), nil)
	r := Ray{Origin: vecmath.V3(0, -0.3, -5), Dir: vecmath.V3(0, 0, 1)}
	got := tri.Intersect(r, 0.001, 1000)
	if got > 1000 {
		t.Fatalf("expected a hit, got miss")
	}
	if math.Abs(got-5) > 1e-6 {
		t.Errorf("t: got %v, want 5", got)
	}
}

func TestTriangleMissOutsideEdges(t *testing.T) {
	tri := flatTriangle(vecmath.V3(-1, -1, 0), vecmath.V3(1, -1, 0), vecmath.V3(0, 1, 0), nil)
	r := Ray{Origin: vecmath.V3(5, 5, -5), Dir: vecmath.V3(0, 0, 1)}
	got := tri.Intersect(r, 0.001, 1000)
	if got <= 1000 {
		t.Errorf("expected miss, got hit at t=%v", got)
	}
}

func TestTriangleHitThroughVertex(t *testing.T) {
	tri := flatTriangle(vecmath.V3(-1, -1, 0), vecmath.V3(1, -1, 0), vecmath.V3(0, 1, 0), nil)
	r := Ray{Origin: vecmath.V3(0, 1, -5), Dir: vecmath.V3(0, 0, 1)}
	got := tri.Intersect(r, 0.001, 1000)
	if got > 1000 {
		t.Errorf("expected ray through apex vertex to be accepted, got miss")
	}
}

func TestTriangleBackfaceStillHits(t *testing.T) {
	// The kernel branches on the sign of det to preserve back-face
	// handling, not to cull back faces outright.
	tri := flatTriangle(vecmath.V3(-1, -1, 0), vecmath.V3(0, 1, 0), vecmath.V3(1, -1, 0), nil)
	r := Ray{Origin: vecmath.V3(0, -0.3, -5), Dir: vecmath.V3(0, 0, 1)}
	got := tri.Intersect(r, 0.001, 1000)
	if got > 1000 {
		t.Errorf("expected hit regardless of winding, got miss")
	}
}

func TestTriangleNormalInterpolation(t *testing.T) {
	mat := &Material{}
	a := Vertex{Point: vecmath.V3(0, 0, 0), Normal: vecmath.V3(1, 0, 0)}
	b := Vertex{Point: vecmath.V3(1, 0, 0), Normal: vecmath.V3(0, 1, 0)}
	c := Vertex{Point: vecmath.V3(0, 1, 0), Normal: vecmath.V3(0, 0, 1)}
	tri := NewTriangle(a, b, c, mat)

	// At vertex A itself the interpolated normal should equal A's normal.
	n := tri.NormalAt(a.Point)
	if !n.Aeq(a.Normal, 1e-6) {
		t.Errorf("normal at vertex A: got %v, want %v", n, a.Normal)
	}
}

func TestApplyToMeshRecomputesCentroid(t *testing.T) {
	tri := flatTriangle(vecmath.V3(0, 0, 0), vecmath.V3(2, 0, 0), vecmath.V3(0, 2, 0), nil)
	mesh := NewMesh("m", []Triangle{*tri})
	ApplyToMesh(mesh, TranslateBy(vecmath.V3(10, 0, 0)))
	want := vecmath.V3(10+2.0/3.0, 2.0/3.0, 0)
	if !mesh.Tris[0].Centroid.Aeq(want, 1e-6) {
		t.Errorf("centroid after translate: got %v, want %v", mesh.Tris[0].Centroid, want)
	}
}
