// Package meshio loads triangle meshes from the raw stream format, from
// Wavefront OBJ, and from glTF/GLB, all producing a *geom.Mesh that plugs
// into scene.Scene.AddMesh unchanged.
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

// FromRaw reads the raw mesh stream format: a leading decimal triangle
// count T, then T records of six whitespace-separated doubles per vertex
// (point, then normal) for each of three vertices, with a blank line
// between records. material is attached to every triangle produced.
func FromRaw(r io.Reader, material *geom.Material) (*geom.Mesh, error) {
	tok := newTokenizer(r)

	count, err := tok.next()
	if err != nil {
		return nil, fmt.Errorf("meshio: read triangle count: %w", err)
	}
	t, err := strconv.Atoi(count)
	if err != nil {
		return nil, fmt.Errorf("meshio: parse triangle count %q: %w", count, err)
	}

	tris := make([]geom.Triangle, 0, t)
	for i := 0; i < t; i++ {
		var verts [3]geom.Vertex
		for v := 0; v < 3; v++ {
			point, err := tok.vec3()
			if err != nil {
				return nil, fmt.Errorf("meshio: triangle %d vertex %d point: %w", i, v, err)
			}
			normal, err := tok.vec3()
			if err != nil {
				return nil, fmt.Errorf("meshio: triangle %d vertex %d normal: %w", i, v, err)
			}
			verts[v] = geom.Vertex{Point: point, Normal: normal}
		}
		tris = append(tris, *geom.NewTriangle(verts[0], verts[1], verts[2], material))
	}

	if err := tok.sc.Err(); err != nil {
		return nil, fmt.Errorf("meshio: scan raw stream: %w", err)
	}

	return geom.NewMesh("raw", tris), nil
}

// tokenizer splits an io.Reader into whitespace-separated tokens across
// newline- and blank-line-delimited records, without fmt.Fscanf.
type tokenizer struct {
	sc      *bufio.Scanner
	pending []string
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &tokenizer{sc: sc}
}

// next returns the next whitespace-separated token in the stream, pulling
// and splitting new lines (skipping blank ones) as needed.
func (t *tokenizer) next() (string, error) {
	for len(t.pending) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		line := strings.TrimSpace(t.sc.Text())
		if line == "" {
			continue
		}
		t.pending = strings.Fields(line)
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, nil
}

// vec3 consumes the next three whitespace-separated doubles as a Vec3.
func (t *tokenizer) vec3() (vecmath.Vec3, error) {
	var comp [3]float64
	for i := 0; i < 3; i++ {
		tok, err := t.next()
		if err != nil {
			return vecmath.Zero, err
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return vecmath.Zero, fmt.Errorf("parse float %q: %w", tok, err)
		}
		comp[i] = f
	}
	return vecmath.V3(comp[0], comp[1], comp[2]), nil
}
