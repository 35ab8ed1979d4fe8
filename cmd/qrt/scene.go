package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/arclight-rt/qrt/pkg/bvh"
	"github.com/arclight-rt/qrt/pkg/geom"
	"github.com/arclight-rt/qrt/pkg/scene"
	"github.com/arclight-rt/qrt/pkg/vecmath"
)

// openRelativeTo opens path relative to the directory containing
// sceneFile, so a scene description's raw and obj mesh references are
// resolved relative to the scene file itself rather than the process's
// cwd. gltf/glb references do not pass through here and resolve against
// the cwd.
func openRelativeTo(sceneFile, path string) (io.ReadCloser, error) {
	if filepath.IsAbs(path) {
		return os.Open(path)
	}
	return os.Open(filepath.Join(filepath.Dir(sceneFile), path))
}

// demoScene builds the scene the original source's main() constructed by
// hand: two lights, a static blue sphere, a dynamic muddy-green sphere,
// used whenever no --scene file is given.
func demoScene() *scene.Scene {
	s := scene.New(scene.Camera{
		Pos: vecmath.V3(0, 10, -15),
		At:  vecmath.Zero,
	}, bvh.DefaultEpsilon)

	blue := s.AddMaterial(geom.Material{
		Name:        "blue",
		Ambient:     vecmath.V3(0.2, 0.2, 1),
		Diffuse:     vecmath.V3(0.2, 0.2, 1),
		Spec:        vecmath.V3(0.2, 0.2, 1),
		Luster:      0.5,
		Metallicity: 50,
	})
	muddyGreen := s.AddMaterial(geom.Material{
		Name:        "muddy_green",
		Ambient:     vecmath.V3(0.2, 0.4, 0),
		Diffuse:     vecmath.V3(0.2, 0.4, 0),
		Spec:        vecmath.V3(0.2, 0.4, 0),
		Luster:      1,
		Metallicity: 75,
	})

	s.AddLight(geom.Light{Pos: vecmath.V3(15, 10, 0), Strength: 0.8})
	s.AddLight(geom.Light{Pos: vecmath.V3(-15, 10, 0), Strength: 0.8})

	s.AddSphere(geom.Sphere{Center: vecmath.V3(0, 0, 15), Radius: 10, Material: blue}, scene.Static)
	s.AddSphere(geom.Sphere{Center: vecmath.V3(8, -8, 6), Radius: 4, Material: muddyGreen}, scene.Dynamic)

	s.Initialize()
	return s
}
