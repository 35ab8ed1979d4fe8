package meshio

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/arclight-rt/qrt/pkg/geom"
	"github.com/arclight-rt/qrt/pkg/vecmath"
)

// FromGLTF loads a glTF or GLB document at path, flattens the first mesh's
// triangle-list primitives into a *geom.Mesh, and interpolates per-vertex
// normals where the accessor supplies them, falling back to a flat face
// normal otherwise. material is attached to every triangle produced.
func FromGLTF(path string, material *geom.Material) (*geom.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: open gltf %q: %w", path, err)
	}
	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("meshio: gltf %q has no meshes", path)
	}

	var tris []geom.Triangle
	for _, prim := range doc.Meshes[0].Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		primTris, err := gltfPrimitiveTriangles(doc, prim, material)
		if err != nil {
			return nil, fmt.Errorf("meshio: gltf %q: %w", path, err)
		}
		tris = append(tris, primTris...)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("meshio: gltf %q produced no triangles", path)
	}

	return geom.NewMesh("gltf", tris), nil
}

func gltfPrimitiveTriangles(doc *gltf.Document, prim *gltf.Primitive, material *geom.Material) ([]geom.Triangle, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("primitive has no POSITION attribute")
	}
	positionsF32, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}
	positions := make([]vecmath.Vec3, len(positionsF32))
	for i, p := range positionsF32 {
		positions[i] = vecmath.V3(float64(p[0]), float64(p[1]), float64(p[2]))
	}

	var normals []vecmath.Vec3
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normalsF32, err := modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("read normals: %w", err)
		}
		normals = make([]vecmath.Vec3, len(normalsF32))
		for i, n := range normalsF32 {
			normals[i] = vecmath.V3(float64(n[0]), float64(n[1]), float64(n[2]))
		}
	}

	indices := []uint32{}
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}
	} else {
		for i := range positions {
			indices = append(indices, uint32(i))
		}
	}

	var tris []geom.Triangle
	for i := 0; i+2 < len(indices); i += 3 {
		ia, ib, ic := indices[i], indices[i+1], indices[i+2]
		a := geom.Vertex{Point: positions[ia]}
		b := geom.Vertex{Point: positions[ib]}
		c := geom.Vertex{Point: positions[ic]}
		if len(normals) > 0 {
			a.Normal, b.Normal, c.Normal = normals[ia], normals[ib], normals[ic]
		}
		fillMissingNormals(&a, &b, &c)
		tris = append(tris, *geom.NewTriangle(a, b, c, material))
	}
	return tris, nil
}
