// Package sceneconfig loads a YAML scene description and materializes it
// into a *scene.Scene by driving the scene package's own public
// operations, the way a hand-written main() would.
package sceneconfig

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arclight-rt/qrt/pkg/geom"
	"github.com/arclight-rt/qrt/pkg/meshio"
	"github.com/arclight-rt/qrt/pkg/scene"
	"github.com/arclight-rt/qrt/pkg/vecmath"
)

// Document is the on-disk YAML shape.
type Document struct {
	Camera struct {
		Pos [3]float64 `yaml:"pos"`
		At  [3]float64 `yaml:"at"`
	} `yaml:"camera"`

	EpsilonBVH float64 `yaml:"epsilon_bvh"`

	Materials []struct {
		Name        string     `yaml:"name"`
		Ambient     [3]float64 `yaml:"ambient"`
		Diffuse     [3]float64 `yaml:"diffuse"`
		Spec        [3]float64 `yaml:"spec"`
		Luster      float64    `yaml:"luster"`
		Metallicity float64    `yaml:"metallicity"`
	} `yaml:"materials"`

	Lights []struct {
		Pos      [3]float64 `yaml:"pos"`
		Strength float64    `yaml:"strength"`
	} `yaml:"lights"`

	Spheres []struct {
		Center    [3]float64     `yaml:"center"`
		Radius    float64        `yaml:"radius"`
		Material  string         `yaml:"material"`
		Motility  string         `yaml:"motility"`
		Transform []transformDoc `yaml:"transform"`
	} `yaml:"spheres"`

	Meshes []struct {
		Source    string         `yaml:"source"`
		Format    string         `yaml:"format"` // raw, obj, gltf
		Material  string         `yaml:"material"`
		Motility  string         `yaml:"motility"`
		Transform []transformDoc `yaml:"transform"`
	} `yaml:"meshes"`
}

type transformDoc struct {
	Kind   string     `yaml:"kind"` // rotate, scale, translate
	Axis   string     `yaml:"axis"` // x, y, z (rotate only)
	Angle  float64    `yaml:"angle"`
	Vector [3]float64 `yaml:"vector"`
}

// Load parses a YAML scene document and builds a ready-to-render
// *scene.Scene from it, opening raw and obj mesh sources through open.
// gltf and glb sources are not opened through open: their path is handed
// to meshio.FromGLTF as written.
func Load(r io.Reader, open func(path string) (io.ReadCloser, error)) (*scene.Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sceneconfig: read document: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sceneconfig: yaml %w", err)
	}

	eps := doc.EpsilonBVH
	if eps == 0 {
		eps = 0.2
	}

	s := scene.New(scene.Camera{
		Pos: vecOf(doc.Camera.Pos),
		At:  vecOf(doc.Camera.At),
	}, eps)

	materials := make(map[string]*geom.Material, len(doc.Materials))
	for _, m := range doc.Materials {
		handle := s.AddMaterial(geom.Material{
			Name:        m.Name,
			Ambient:     vecOf(m.Ambient),
			Diffuse:     vecOf(m.Diffuse),
			Spec:        vecOf(m.Spec),
			Luster:      m.Luster,
			Metallicity: m.Metallicity,
		})
		materials[m.Name] = handle
	}

	for _, l := range doc.Lights {
		s.AddLight(geom.Light{Pos: vecOf(l.Pos), Strength: l.Strength})
	}

	for _, sp := range doc.Spheres {
		mat, err := lookupMaterial(materials, sp.Material)
		if err != nil {
			return nil, fmt.Errorf("sceneconfig: sphere: %w", err)
		}
		motility, err := parseMotility(sp.Motility)
		if err != nil {
			return nil, fmt.Errorf("sceneconfig: sphere: %w", err)
		}
		handle := s.AddSphere(geom.Sphere{Center: vecOf(sp.Center), Radius: sp.Radius, Material: mat}, motility)
		for _, td := range sp.Transform {
			tr, err := parseTransform(td)
			if err != nil {
				return nil, fmt.Errorf("sceneconfig: sphere transform: %w", err)
			}
			geom.ApplyToSphere(handle, tr)
		}
	}

	for _, md := range doc.Meshes {
		mat, err := lookupMaterial(materials, md.Material)
		if err != nil {
			return nil, fmt.Errorf("sceneconfig: mesh %q: %w", md.Source, err)
		}
		motility, err := parseMotility(md.Motility)
		if err != nil {
			return nil, fmt.Errorf("sceneconfig: mesh %q: %w", md.Source, err)
		}

		mesh, err := loadMesh(md.Source, md.Format, mat, open)
		if err != nil {
			return nil, fmt.Errorf("sceneconfig: mesh %q: %w", md.Source, err)
		}
		s.AddMesh(mesh, motility)

		for _, td := range md.Transform {
			tr, err := parseTransform(td)
			if err != nil {
				return nil, fmt.Errorf("sceneconfig: mesh %q transform: %w", md.Source, err)
			}
			geom.ApplyToMesh(mesh, tr)
		}
	}

	s.Initialize()
	return s, nil
}

func vecOf(a [3]float64) vecmath.Vec3 { return vecmath.V3(a[0], a[1], a[2]) }

func lookupMaterial(materials map[string]*geom.Material, name string) (*geom.Material, error) {
	mat, ok := materials[name]
	if !ok {
		return nil, fmt.Errorf("unknown material %q", name)
	}
	return mat, nil
}

func parseMotility(s string) (scene.Motility, error) {
	switch s {
	case "", "static":
		return scene.Static, nil
	case "dynamic":
		return scene.Dynamic, nil
	default:
		return 0, fmt.Errorf("unknown motility %q", s)
	}
}

func parseTransform(td transformDoc) (geom.Transform, error) {
	switch td.Kind {
	case "rotate":
		axis, err := parseAxis(td.Axis)
		if err != nil {
			return geom.Transform{}, err
		}
		return geom.Rotate(axis, td.Angle), nil
	case "scale":
		return geom.ScaleBy(vecOf(td.Vector)), nil
	case "translate":
		return geom.TranslateBy(vecOf(td.Vector)), nil
	default:
		return geom.Transform{}, fmt.Errorf("unknown transform kind %q", td.Kind)
	}
}

func parseAxis(s string) (vecmath.Axis, error) {
	switch s {
	case "x":
		return vecmath.AxisX, nil
	case "y":
		return vecmath.AxisY, nil
	case "z":
		return vecmath.AxisZ, nil
	default:
		return 0, fmt.Errorf("unknown rotation axis %q", s)
	}
}

func loadMesh(source, format string, material *geom.Material, open func(string) (io.ReadCloser, error)) (*geom.Mesh, error) {
	switch format {
	case "gltf", "glb":
		return meshio.FromGLTF(source, material)
	}

	f, err := open(source)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	switch format {
	case "obj":
		return meshio.FromOBJ(f, material)
	case "raw", "":
		return meshio.FromRaw(f, material)
	default:
		return nil, fmt.Errorf("unknown mesh format %q", format)
	}
}
