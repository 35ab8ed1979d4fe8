// Command qrt renders a scene to a PPM file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arclight-rt/qrt/pkg/rtconfig"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "qrt: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg := rtconfig.Default()

	root := &cobra.Command{
		Use:   "qrt",
		Short: "A tile-parallel CPU ray tracer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, sugar)
		},
	}
	cfg.BindFlags(root.Flags())

	if err := root.Execute(); err != nil {
		sugar.Errorw("render failed", "error", err)
		os.Exit(1)
	}
}
