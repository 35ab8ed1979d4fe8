package tile

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextCoversEveryBlockExactlyOnce(t *testing.T) {
	d := NewDispatcher(20, 10, 5)

	var blocks []Block
	for {
		b, ok := d.Next()
		if !ok {
			break
		}
		blocks = append(blocks, b)
	}
	require.Len(t, blocks, (20/5)*(10/5))

	seen := make(map[[2]int]bool)
	for _, b := range blocks {
		for y := b.YStart; y < b.YEnd; y++ {
			for x := b.XStart; x < b.XEnd; x++ {
				key := [2]int{x, y}
				require.False(t, seen[key], "pixel %v covered twice", key)
				seen[key] = true
			}
		}
	}
	require.Len(t, seen, 20*10)
}

func TestNextOrderIsDeterministicRowMajor(t *testing.T) {
	d := NewDispatcher(10, 10, 5)
	var starts [][2]int
	for {
		b, ok := d.Next()
		if !ok {
			break
		}
		starts = append(starts, [2]int{b.XStart, b.YStart})
	}
	require.Equal(t, [][2]int{{0, 0}, {5, 0}, {0, 5}, {5, 5}}, starts)
}

func TestNewDispatcherPanicsOnUnevenDivision(t *testing.T) {
	require.Panics(t, func() { NewDispatcher(10, 10, 3) })
}

func TestRunIsByteIdenticalAcrossThreadCounts(t *testing.T) {
	const w, h, block = 640, 360, 10

	shade := func(x, y int) float64 {
		return float64((x*73856093)^(y*19349663)) / 1e9
	}

	single := make([]float64, w*h)
	Run(w, h, block, 1, func(x, y int) {
		single[y*w+x] = shade(x, y)
	})

	multi := make([]float64, w*h)
	Run(w, h, block, 8, func(x, y int) {
		multi[y*w+x] = shade(x, y)
	})

	require.Equal(t, single, multi)
}

func TestRunCoversWholeImageSorted(t *testing.T) {
	const w, h, block = 12, 12, 4
	var mu sync.Mutex
	var touched []int
	Run(w, h, block, 4, func(x, y int) {
		mu.Lock()
		touched = append(touched, y*w+x)
		mu.Unlock()
	})
	sort.Ints(touched)
	require.Len(t, touched, w*h)
	for i, v := range touched {
		require.Equal(t, i, v)
	}
}
