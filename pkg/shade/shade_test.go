package shade

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-rt/qrt/pkg/bvh"
	"github.com/arclight-rt/qrt/pkg/geom"
	"github.com/arclight-rt/qrt/pkg/scene"
	"github.com/arclight-rt/qrt/pkg/vecmath"
)

func buildShadowScene() *scene.Scene {
	s := scene.New(scene.Camera{
		Pos: vecmath.V3(0, 10, -15),
		At:  vecmath.V3(0, 0, 0),
	}, bvh.DefaultEpsilon)

	blue := s.AddMaterial(geom.Material{
		Ambient: vecmath.V3(0.2, 0.2, 1),
		Diffuse: vecmath.V3(0.2, 0.2, 1),
		Spec:    vecmath.V3(0.2, 0.2, 1),
		Luster:  0.5, Metallicity: 50,
	})
	s.AddSphere(geom.Sphere{Center: vecmath.V3(0, 0, 15), Radius: 10, Material: blue}, scene.Static)
	s.AddLight(geom.Light{Pos: vecmath.V3(0, 10, -10), Strength: 1})
	s.Initialize()
	return s
}

func TestMissIsBlack(t *testing.T) {
	s := scene.New(scene.Camera{Pos: vecmath.V3(0, 0, -10), At: vecmath.Zero}, bvh.DefaultEpsilon)
	s.AddSphere(geom.Sphere{Center: vecmath.V3(1000, 1000, 1000), Radius: 1}, scene.Static)
	s.Initialize()

	p := Params{TMin: 0.01, TMax: 1000, FOV: math.Pi / 2, Ambience: 0.2}
	r := CameraRay(s.Camera, 100, 100, 50, 50, p.FOV)
	color := Cast(s, p, r)
	require.Equal(t, vecmath.Zero, color)
}

func TestLitFaceIsNotBlack(t *testing.T) {
	s := buildShadowScene()
	p := Params{TMin: 0.01, TMax: 1000, FOV: math.Pi / 2, Ambience: 0.2}

	r := geom.Ray{Origin: vecmath.V3(0, 10, -15), Dir: vecmath.V3(0, 0, 1).Add(vecmath.V3(0, -0.2, 0)).Norm()}
	color := Cast(s, p, r)
	require.Greater(t, color.X+color.Y+color.Z, 0.0)
}

func TestBackHemisphereIsAmbientOnly(t *testing.T) {
	s := buildShadowScene()
	p := Params{TMin: 0.01, TMax: 1000, FOV: math.Pi / 2, Ambience: 0.2}

	// A ray from below hitting the bottom of the sphere at (0,-10,15),
	// whose normal (0,-1,0) faces away from the light.
	r := geom.Ray{Origin: vecmath.V3(0, -30, 15), Dir: vecmath.V3(0, 1, 0)}
	color := Cast(s, p, r)
	if color != vecmath.Zero {
		blue := vecmath.V3(0.2, 0.2, 1).Mul(0.2)
		require.InDelta(t, blue.X, color.X, 1e-6)
		require.InDelta(t, blue.Y, color.Y, 1e-6)
		require.InDelta(t, blue.Z, color.Z, 1e-6)
	}
}

func TestDefaultFOVPreservesUnscaledMapping(t *testing.T) {
	// tan(pi/4) == 1, so the default FOV used by the original source
	// reproduces the unscaled nx/ny mapping exactly.
	cam := scene.Camera{Pos: vecmath.V3(0, 0, -5), At: vecmath.Zero}
	withFOV := CameraRay(cam, 100, 100, 70, 30, math.Pi/2)

	forward := cam.At.Sub(cam.Pos).Norm()
	right := forward.Cross(up)
	nx := 70.0/100 - 0.5
	ny := 30.0/100 - 0.5
	imgPt := right.Mul(nx).Add(up.Mul(ny)).Add(cam.Pos).Add(forward)
	want := imgPt.Sub(cam.Pos).Norm()

	require.InDelta(t, want.X, withFOV.Dir.X, 1e-9)
	require.InDelta(t, want.Y, withFOV.Dir.Y, 1e-9)
	require.InDelta(t, want.Z, withFOV.Dir.Z, 1e-9)
}
