// Package rtconfig binds render configuration to command-line flags and
// validates the invariants the renderer depends on.
package rtconfig

import (
	"fmt"
	"math"

	"github.com/spf13/pflag"
)

// Config is the full set of configuration values of spec.md §6, plus the
// BVH padding and the output and scene paths. EpsilonBVH is validated but
// not passed to scene construction: the demo scene uses bvh.DefaultEpsilon
// and a scene file sets its own epsilon_bvh.
type Config struct {
	Width  int
	Height int

	TMin     float64
	TMax     float64
	FOV      float64
	Ambience float64

	BlockSize int
	Threads   int

	EpsilonBVH float64
	Output     string
	Scene      string
}

// Default returns the configuration the original source's main() used,
// before any flag or scene overrides are applied.
func Default() Config {
	return Config{
		Width:      640,
		Height:     360,
		TMin:       0.001,
		TMax:       1000,
		FOV:        math.Pi / 2,
		Ambience:   0.2,
		BlockSize:  10,
		Threads:    1,
		EpsilonBVH: 0.2,
		Output:     "out.ppm",
	}
}

// BindFlags registers c's fields on fs, using c's current values as
// defaults, so callers can seed fs from Default() (or a scene-loaded
// config) before parsing.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "output image width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "output image height in pixels")
	fs.Float64Var(&c.TMin, "t-min", c.TMin, "lower bound of valid ray parameter")
	fs.Float64Var(&c.TMax, "t-max", c.TMax, "upper bound of valid ray parameter")
	fs.Float64Var(&c.FOV, "fov", c.FOV, "horizontal field of view in radians")
	fs.Float64Var(&c.Ambience, "ambience", c.Ambience, "ambient color multiplier")
	fs.IntVar(&c.BlockSize, "block-size", c.BlockSize, "render tile side length, must divide width and height")
	fs.IntVar(&c.Threads, "threads", c.Threads, "worker count; 1 renders every block on the calling goroutine")
	fs.Float64Var(&c.EpsilonBVH, "epsilon-bvh", c.EpsilonBVH, "BVH leaf bounding-box padding")
	fs.StringVar(&c.Output, "output", c.Output, "PPM output path")
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene description YAML path")
}

// Validate enforces spec.md §7's configuration invariants. Returns a
// descriptive error rather than panicking: malformed configuration comes
// from outside the process (flags, files) and is not a programmer error.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("rtconfig: width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("rtconfig: block_size must be positive, got %d", c.BlockSize)
	}
	if c.Width%c.BlockSize != 0 || c.Height%c.BlockSize != 0 {
		return fmt.Errorf("rtconfig: block_size %d must divide image dimensions %dx%d", c.BlockSize, c.Width, c.Height)
	}
	if c.Threads < 1 {
		return fmt.Errorf("rtconfig: threads must be >= 1, got %d", c.Threads)
	}
	if c.TMin >= c.TMax {
		return fmt.Errorf("rtconfig: t_min (%g) must be less than t_max (%g)", c.TMin, c.TMax)
	}
	if c.EpsilonBVH < 0 {
		return fmt.Errorf("rtconfig: epsilon_bvh must be non-negative, got %g", c.EpsilonBVH)
	}
	return nil
}
