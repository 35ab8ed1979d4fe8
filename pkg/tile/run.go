package tile

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PixelFunc shades a single pixel of the image.
type PixelFunc func(x, y int)

// Run partitions a w×h image into blockSize blocks and shades every pixel
// with fn, fanning the work out across threads goroutines. Block dispatch
// order is always deterministic (row-major); completion order across
// goroutines is not. Each goroutine only ever touches pixels inside the
// block it was handed, so no two goroutines ever write the same pixel.
//
// threads == 1 takes a single-goroutine fast path with no goroutine or
// errgroup overhead at all.
func Run(w, h, blockSize, threads int, fn PixelFunc) {
	d := NewDispatcher(w, h, blockSize)

	if threads <= 1 {
		for {
			b, ok := d.Next()
			if !ok {
				return
			}
			shadeBlock(b, fn)
		}
	}

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			for {
				b, ok := d.Next()
				if !ok {
					return nil
				}
				shadeBlock(b, fn)
			}
		})
	}
	_ = g.Wait()
}

func shadeBlock(b Block, fn PixelFunc) {
	for y := b.YStart; y < b.YEnd; y++ {
		for x := b.XStart; x < b.XEnd; x++ {
			fn(x, y)
		}
	}
}
