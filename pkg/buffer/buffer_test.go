package buffer

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-rt/qrt/pkg/vecmath"
)

// readPPMHeader parses the three newline-terminated header lines by hand,
// matching the manual-parsing style the rest of this module's I/O uses.
func readPPMHeader(r *bufio.Reader) (magic string, w, h, maxval int, err error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", 0, 0, 0, err
	}
	magic = strings.TrimSpace(line)

	line, err = r.ReadString('\n')
	if err != nil {
		return "", 0, 0, 0, err
	}
	dims := strings.Fields(line)
	w, _ = strconv.Atoi(dims[0])
	h, _ = strconv.Atoi(dims[1])

	line, err = r.ReadString('\n')
	if err != nil {
		return "", 0, 0, 0, err
	}
	maxval, _ = strconv.Atoi(strings.TrimSpace(line))
	return magic, w, h, maxval, nil
}

func TestSetPixelRGB(t *testing.T) {
	b := New(2, 2, RGB)
	b.SetPixel(1, 0, vecmath.V3(1, 0.5, 0))
	i := 3 * (1 + 0*2)
	require.Equal(t, byte(255), b.Pixels[i])
	require.Equal(t, byte(127), b.Pixels[i+1])
	require.Equal(t, byte(0), b.Pixels[i+2])
}

func TestSetPixelRGBAWritesOpaqueAlpha(t *testing.T) {
	b := New(1, 1, RGBA)
	b.SetPixel(0, 0, vecmath.V3(0, 0, 0))
	require.Equal(t, byte(255), b.Pixels[3])
}

func TestPPMExportRejectsRGBA(t *testing.T) {
	b := New(1, 1, RGBA)
	require.Panics(t, func() { WritePPM(&bytes.Buffer{}, b) })
}

func TestPPMRoundTrip(t *testing.T) {
	w, h := 4, 4
	b := New(w, h, RGB)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.SetPixel(x, y, vecmath.V3(float64(x*64)/255, float64(y*64)/255, 128.0/255))
		}
	}

	var out bytes.Buffer
	require.NoError(t, WritePPM(&out, b))

	reader := bufio.NewReader(&out)
	magic, rw, rh, maxval, err := readPPMHeader(reader)
	require.NoError(t, err)
	require.Equal(t, "P6", magic)
	require.Equal(t, w, rw)
	require.Equal(t, h, rh)
	require.Equal(t, 255, maxval)

	payload := make([]byte, w*h*3)
	_, err = io.ReadFull(reader, payload)
	require.NoError(t, err)
	require.Equal(t, b.Pixels, payload)
}
