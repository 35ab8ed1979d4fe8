// Package buffer implements a fixed-size pixel plane and PPM export.
package buffer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arclight-rt/qrt/pkg/vecmath"
)

// Kind selects the pixel layout.
type Kind int

const (
	RGB Kind = iota
	RGBA
)

func (k Kind) channels() int {
	if k == RGBA {
		return 4
	}
	return 3
}

// Buffer is a w*h pixel plane of the given Kind.
type Buffer struct {
	W, H   int
	Kind   Kind
	Pixels []byte
}

// New allocates a zeroed buffer of the given size and kind.
func New(w, h int, kind Kind) *Buffer {
	return &Buffer{W: w, H: h, Kind: kind, Pixels: make([]byte, w*h*kind.channels())}
}

func toByte(c float64) byte {
	scaled := c * 255
	switch {
	case scaled < 0:
		return 0
	case scaled > 255:
		return 255
	default:
		return byte(scaled)
	}
}

// SetPixel writes color (each component expected in [0,1]) at (x, y).
// Alpha is always 255 for RGBA buffers.
func (b *Buffer) SetPixel(x, y int, color vecmath.Vec3) {
	i := b.Kind.channels() * (x + y*b.W)
	b.Pixels[i+0] = toByte(color.X)
	b.Pixels[i+1] = toByte(color.Y)
	b.Pixels[i+2] = toByte(color.Z)
	if b.Kind == RGBA {
		b.Pixels[i+3] = 255
	}
}

// WritePPM writes b as a binary P6 PPM. Panics if b is not RGB (programmer
// error per spec: PPM export requires RGB).
func WritePPM(w io.Writer, b *Buffer) error {
	if b.Kind != RGB {
		panic("buffer: PPM export requires an RGB buffer")
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.W, b.H); err != nil {
		return fmt.Errorf("buffer: write PPM header: %w", err)
	}
	if _, err := bw.Write(b.Pixels); err != nil {
		return fmt.Errorf("buffer: write PPM pixels: %w", err)
	}
	return bw.Flush()
}
