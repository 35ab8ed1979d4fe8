package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/arclight-rt/qrt/pkg/buffer"
	"github.com/arclight-rt/qrt/pkg/rtconfig"
	"github.com/arclight-rt/qrt/pkg/scene"
	"github.com/arclight-rt/qrt/pkg/sceneconfig"
	"github.com/arclight-rt/qrt/pkg/shade"
	"github.com/arclight-rt/qrt/pkg/tile"
)

func run(cfg rtconfig.Config, log *zap.SugaredLogger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	s, err := loadScene(cfg)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	params := shade.Params{TMin: cfg.TMin, TMax: cfg.TMax, FOV: cfg.FOV, Ambience: cfg.Ambience}
	buf := buffer.New(cfg.Width, cfg.Height, buffer.RGB)

	log.Infow("rendering",
		"width", cfg.Width, "height", cfg.Height,
		"threads", cfg.Threads, "block_size", cfg.BlockSize,
	)

	tile.Run(cfg.Width, cfg.Height, cfg.BlockSize, cfg.Threads, func(x, y int) {
		ray := shade.CameraRay(s.Camera, cfg.Width, cfg.Height, x, y, params.FOV)
		color := shade.Cast(s, params, ray)
		buf.SetPixel(x, y, color)
	})

	out, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output %q: %w", cfg.Output, err)
	}
	defer out.Close()

	if err := buffer.WritePPM(out, buf); err != nil {
		return fmt.Errorf("write PPM: %w", err)
	}

	log.Infow("render complete", "output", cfg.Output)
	return nil
}

func loadScene(cfg rtconfig.Config) (*scene.Scene, error) {
	if cfg.Scene == "" {
		return demoScene(), nil
	}

	f, err := os.Open(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("open scene %q: %w", cfg.Scene, err)
	}
	defer f.Close()

	sceneFile := cfg.Scene
	return sceneconfig.Load(f, func(path string) (io.ReadCloser, error) {
		return openRelativeTo(sceneFile, path)
	})
}
