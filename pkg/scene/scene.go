package scene

import (
	"fmt"

	"github.com/arclight-rt/qrt/pkg/bvh"
	"github.com/arclight-rt/qrt/pkg/geom"
	"github.com/arclight-rt/qrt/pkg/vecmath"
)

// Camera is the eye position and look-at target; up is fixed per the
// shading component's convention.
type Camera struct {
	Pos vecmath.Vec3
	At  vecmath.Vec3
}

// Scene owns every material, light, mesh, and sphere, and partitions
// drawable primitives by Motility. Callers build a Scene by repeated
// Add* calls, then call Initialize once before rendering.
type Scene struct {
	Camera Camera

	materials []*geom.Material
	lights    []*geom.Light

	staticMeshes  []*geom.Mesh
	dynamicMeshes []*geom.Mesh

	staticSpheres  []*geom.Sphere
	dynamicSpheres []*geom.Sphere

	staticSurfaces  []geom.Surface
	dynamicSurfaces []geom.Surface

	tree        bvh.Tree
	epsilonBVH  float64
	initialized bool
}

// New creates an empty scene for the given camera. epsilonBVH is the BVH
// padding (ε_BVH); pass bvh.DefaultEpsilon for the spec default of 0.2.
func New(camera Camera, epsilonBVH float64) *Scene {
	return &Scene{Camera: camera, epsilonBVH: epsilonBVH}
}

// AddMaterial inserts a copy of template and returns a stable handle to
// it.
func (s *Scene) AddMaterial(template geom.Material) *geom.Material {
	m := new(geom.Material)
	*m = template
	s.materials = append(s.materials, m)
	return m
}

// AddLight inserts a copy of template and returns a stable handle to it.
func (s *Scene) AddLight(template geom.Light) *geom.Light {
	l := new(geom.Light)
	*l = template
	s.lights = append(s.lights, l)
	return l
}

// AddMesh takes ownership of mesh and classifies it by motility. Any
// transform the caller wants applied to a static mesh must be applied
// before Initialize.
func (s *Scene) AddMesh(mesh *geom.Mesh, motility Motility) *geom.Mesh {
	if motility == Dynamic {
		s.dynamicMeshes = append(s.dynamicMeshes, mesh)
	} else {
		s.staticMeshes = append(s.staticMeshes, mesh)
	}
	return mesh
}

// AddSphere inserts a copy of template, classifies it by motility, and
// returns a stable handle to it.
func (s *Scene) AddSphere(template geom.Sphere, motility Motility) *geom.Sphere {
	sp := new(geom.Sphere)
	*sp = template
	if motility == Dynamic {
		s.dynamicSpheres = append(s.dynamicSpheres, sp)
	} else {
		s.staticSpheres = append(s.staticSpheres, sp)
	}
	return sp
}

func flattenSurfaces(meshes []*geom.Mesh, spheres []*geom.Sphere) []geom.Surface {
	count := 0
	for _, m := range meshes {
		count += len(m.Tris)
	}
	count += len(spheres)

	out := make([]geom.Surface, 0, count)
	for _, m := range meshes {
		out = append(out, m.Surfaces()...)
	}
	for _, sp := range spheres {
		out = append(out, sp)
	}
	return out
}

// Initialize partitions all meshes/spheres into flattened static/dynamic
// surface arrays and builds the BVH over the static array. Panics
// (programmer error, per spec) if already initialized or if the scene has
// no drawable objects at all.
func (s *Scene) Initialize() {
	if s.initialized {
		panic("scene: Initialize called twice")
	}
	if len(s.staticMeshes) == 0 && len(s.dynamicMeshes) == 0 &&
		len(s.staticSpheres) == 0 && len(s.dynamicSpheres) == 0 {
		panic("scene: no drawable objects")
	}

	s.staticSurfaces = flattenSurfaces(s.staticMeshes, s.staticSpheres)
	s.dynamicSurfaces = flattenSurfaces(s.dynamicMeshes, s.dynamicSpheres)
	s.tree = bvh.Build(s.staticSurfaces, s.epsilonBVH)
	s.initialized = true
}

// Initialized reports whether Initialize has run.
func (s *Scene) Initialized() bool { return s.initialized }

// DynamicSurfaceCount returns the number of dynamic surfaces, for tests
// and diagnostics.
func (s *Scene) DynamicSurfaceCount() int { return len(s.dynamicSurfaces) }

// Lights returns the scene's lights.
func (s *Scene) Lights() []*geom.Light { return s.lights }

// Intersect queries the static BVH, then linearly scans the dynamic
// surface array with the same kernels, and returns the nearer of the two,
// with no exclusion.
func (s *Scene) Intersect(r geom.Ray, tMin, tMax float64) bvh.Hit {
	return s.IntersectExcluding(r, nil, tMin, tMax)
}

// IntersectExcluding behaves like Intersect but never returns `exclude`
// as a hit, used to avoid self-shadowing on shadow and reflection rays.
func (s *Scene) IntersectExcluding(r geom.Ray, exclude geom.Surface, tMin, tMax float64) bvh.Hit {
	best := s.tree.Nearest(r, exclude, tMin, tMax)

	for _, sf := range s.dynamicSurfaces {
		t := sf.Intersect(r, tMin, tMax)
		if t < best.T && sf != exclude {
			best = bvh.Hit{Surface: sf, T: t}
		}
	}

	return best
}

// String implements a compact human-readable summary, in the spirit of
// the original source's print helpers.
func (s *Scene) String() string {
	return fmt.Sprintf(
		"scene{materials=%d lights=%d staticSurfaces=%d dynamicSurfaces=%d initialized=%v}",
		len(s.materials), len(s.lights), len(s.staticSurfaces), len(s.dynamicSurfaces), s.initialized,
	)
}
