package main

import (
	"path/filepath"

	"consoleroom/internal/assets"
	"consoleroom/internal/world"

	"github.com/spf13/cobra"
)

var (
	flagOut   string
	flagSize  int
	flagForce bool
)

var texturesCmd = &cobra.Command{
	Use:   "textures",
	Short: "Generate the placeholder textures",
	Long: `Generate the five room textures procedurally and write them as PNG.

Existing files are left alone unless --force is given, so hand-made
textures dropped into the directory survive.

Examples:
  consoleroom textures
  consoleroom textures --size 1024 --force
  consoleroom textures --out /tmp/textures`,
	SilenceUsage: true,
	RunE:         runTextures,
}

func init() {
	texturesCmd.Flags().StringVar(&flagOut, "out", "", "Output directory (default: <asset root>/textures)")
	texturesCmd.Flags().IntVar(&flagSize, "size", 512, "Texture edge length in pixels")
	texturesCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite existing files")
}

func runTextures(_ *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	out := flagOut
	if out == "" {
		out = filepath.Join(cfg.Assets.Root, "textures")
	}

	written, skipped, err := assets.WriteTextures(out, world.Textures, flagSize, flagForce)
	for _, path := range written {
		logger.Info("generated", "path", path)
	}
	for _, path := range skipped {
		logger.Info("skipping, already exists", "path", path)
	}
	return err
}
