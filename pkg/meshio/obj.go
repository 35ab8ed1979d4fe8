package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arclight-rt/qrt/pkg/geom"
	"github.com/arclight-rt/qrt/pkg/vecmath"
)

// FromOBJ loads a Wavefront OBJ document, recognizing only "v", "vn" and
// "f" records. Faces with more than three indices are triangulated as a
// fan from the first vertex. Faces missing a normal index fall back to the
// face's flat normal. material is attached to every triangle produced.
func FromOBJ(r io.Reader, material *geom.Material) (*geom.Mesh, error) {
	var positions []vecmath.Vec3
	var normals []vecmath.Vec3
	var tris []geom.Triangle

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("meshio: obj line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("meshio: obj line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, n)
		case "f":
			faceTris, err := parseFace(fields[1:], positions, normals, material, lineNo)
			if err != nil {
				return nil, err
			}
			tris = append(tris, faceTris...)
		default:
			// vt, o, g, s, mtllib, usemtl and anything else are ignored.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("meshio: scan obj stream: %w", err)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("meshio: obj stream produced no triangles")
	}

	return geom.NewMesh("obj", tris), nil
}

func parseVec3(fields []string) (vecmath.Vec3, error) {
	if len(fields) < 3 {
		return vecmath.Zero, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var comp [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return vecmath.Zero, fmt.Errorf("parse float %q: %w", fields[i], err)
		}
		comp[i] = f
	}
	return vecmath.V3(comp[0], comp[1], comp[2]), nil
}

// faceIndex resolves a single "v", "v/t", "v//n" or "v/t/n" face token into
// 1-based vertex and (optional, -1 if absent) normal indices.
func faceIndex(tok string) (v, n int, err error) {
	parts := strings.Split(tok, "/")
	v, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, -1, fmt.Errorf("parse face vertex index %q: %w", tok, err)
	}
	n = -1
	if len(parts) == 3 && parts[2] != "" {
		n, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, -1, fmt.Errorf("parse face normal index %q: %w", tok, err)
		}
	}
	return v, n, nil
}

// parseFace resolves a face record's indices against the vertex/normal
// pools collected so far and fan-triangulates records with more than
// three vertices.
func parseFace(tokens []string, positions, normals []vecmath.Vec3, material *geom.Material, lineNo int) ([]geom.Triangle, error) {
	if len(tokens) < 3 {
		return nil, fmt.Errorf("meshio: obj line %d: face needs at least 3 vertices, got %d", lineNo, len(tokens))
	}

	verts := make([]geom.Vertex, len(tokens))
	for i, tok := range tokens {
		vi, ni, err := faceIndex(tok)
		if err != nil {
			return nil, fmt.Errorf("meshio: obj line %d: %w", lineNo, err)
		}
		if vi < 0 {
			vi = len(positions) + vi + 1
		}
		if vi < 1 || vi > len(positions) {
			return nil, fmt.Errorf("meshio: obj line %d: vertex index %d out of range", lineNo, vi)
		}
		v := geom.Vertex{Point: positions[vi-1]}
		if ni != -1 {
			if ni < 0 {
				ni = len(normals) + ni + 1
			}
			if ni >= 1 && ni <= len(normals) {
				v.Normal = normals[ni-1]
			}
		}
		verts[i] = v
	}

	var tris []geom.Triangle
	for i := 1; i+1 < len(verts); i++ {
		a, b, c := verts[0], verts[i], verts[i+1]
		fillMissingNormals(&a, &b, &c)
		tris = append(tris, *geom.NewTriangle(a, b, c, material))
	}
	return tris, nil
}

// fillMissingNormals assigns the face's flat normal to any vertex whose
// normal was not supplied by the source file.
func fillMissingNormals(a, b, c *geom.Vertex) {
	if a.Normal != vecmath.Zero && b.Normal != vecmath.Zero && c.Normal != vecmath.Zero {
		return
	}
	flat := b.Point.Sub(a.Point).Cross(c.Point.Sub(a.Point)).Norm()
	if a.Normal == vecmath.Zero {
		a.Normal = flat
	}
	if b.Normal == vecmath.Zero {
		b.Normal = flat
	}
	if c.Normal == vecmath.Zero {
		c.Normal = flat
	}
}
