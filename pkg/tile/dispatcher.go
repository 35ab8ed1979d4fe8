// Package tile partitions an image into fixed-size blocks and hands them
// out under mutual exclusion to a pool of worker goroutines.
package tile

import (
	"fmt"
	"sync"
)

// Block is a half-open pixel range [XStart, XEnd) x [YStart, YEnd).
type Block struct {
	XStart, XEnd int
	YStart, YEnd int
}

// Dispatcher hands out blocks of a w×h image in row-major block order.
// The only synchronization is the single mutex guarding the block
// counter; this is deliberate (spec: "no other synchronization exists
// inside the render").
type Dispatcher struct {
	mu        sync.Mutex
	index     int
	blockW    int
	blockH    int
	blockSize int
}

// NewDispatcher validates that w and h are evenly divisible by blockSize
// (a programmer error otherwise, per spec) and returns a ready Dispatcher.
func NewDispatcher(w, h, blockSize int) *Dispatcher {
	if blockSize <= 0 || w%blockSize != 0 || h%blockSize != 0 {
		panic(fmt.Sprintf("tile: image %dx%d is not evenly divisible by block size %d", w, h, blockSize))
	}
	return &Dispatcher{
		blockW:    w / blockSize,
		blockH:    h / blockSize,
		blockSize: blockSize,
	}
}

// Next atomically reads and increments the shared counter, returning the
// next block in row-major order and true, or the zero Block and false once
// every block has been handed out.
func (d *Dispatcher) Next() (Block, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.index >= d.blockW*d.blockH {
		return Block{}, false
	}

	i := d.index
	d.index++

	xStart := (i % d.blockW) * d.blockSize
	yStart := (i / d.blockW) * d.blockSize

	return Block{
		XStart: xStart, XEnd: xStart + d.blockSize,
		YStart: yStart, YEnd: yStart + d.blockSize,
	}, true
}
