package meshio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-rt/qrt/pkg/geom"
)

const oneTriangleRaw = `1
0 0 0
0 0 1

1 0 0
0 0 1

0 1 0
0 0 1
`

func TestFromRawSingleTriangle(t *testing.T) {
	mat := &geom.Material{Name: "m"}
	mesh, err := FromRaw(strings.NewReader(oneTriangleRaw), mat)
	require.NoError(t, err)
	require.Len(t, mesh.Tris, 1)

	tri := mesh.Tris[0]
	require.Same(t, mat, tri.Material)
	require.Equal(t, 0.0, tri.A.Point.X)
	require.Equal(t, 1.0, tri.B.Point.X)
	require.Equal(t, 1.0, tri.C.Point.Y)
	require.Equal(t, 1.0, tri.A.Normal.Z)
}

func TestFromRawTruncatedStreamErrors(t *testing.T) {
	_, err := FromRaw(strings.NewReader("1\n0 0 0\n"), &geom.Material{})
	require.Error(t, err)
}

func TestFromRawBadCountErrors(t *testing.T) {
	_, err := FromRaw(strings.NewReader("not-a-number\n"), &geom.Material{})
	require.Error(t, err)
}

func TestFromRawMultipleTrianglesAndReusableTokenizer(t *testing.T) {
	mat := &geom.Material{}
	body := oneTriangleRaw[strings.Index(oneTriangleRaw, "\n")+1:]
	doubled := "2\n" + body + body
	mesh, err := FromRaw(strings.NewReader(doubled), mat)
	require.NoError(t, err)
	require.Len(t, mesh.Tris, 2)
}
