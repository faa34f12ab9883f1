package main

import (
	"consoleroom/internal/game"
	"consoleroom/internal/input"

	"github.com/spf13/cobra"
)

var (
	flagWidth  int32
	flagHeight int32
	flagFPS    int32
	flagAssets string
	flagMute   bool
)

var rootCmd = &cobra.Command{
	Use:   "consoleroom",
	Short: "Walk around a console room",
	Long: `Open a window onto a small sci-fi control room.

Controls:
  click   - capture the mouse
  WASD    - move
  mouse   - look
  E       - activate consoles within reach
  Esc     - release the mouse
  F1      - collider wireframes`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().Int32Var(&flagWidth, "width", 0, "Window width (overrides config)")
	rootCmd.Flags().Int32Var(&flagHeight, "height", 0, "Window height (overrides config)")
	rootCmd.Flags().Int32Var(&flagFPS, "fps", 0, "Target frame rate (overrides config)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Asset root directory (overrides config)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runGame(cmd *cobra.Command, _ []string) error {
	// path flags are relative to where the user ran us, not the binary
	if err := absPaths(&flagConfig, &flagAssets); err != nil {
		return err
	}
	chdirToExecutable()

	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Window.Height = flagHeight
	}
	if flags.Changed("fps") {
		cfg.Window.FPS = flagFPS
	}
	if flags.Changed("assets") {
		cfg.Assets.Root = flagAssets
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := game.New(cfg, logger, input.RaylibWindow{})
	if err != nil {
		logger.Fatal("cannot build room", "error", err)
	}
	if err := g.Run(); err != nil {
		logger.Fatal("game stopped", "error", err)
	}
	return nil
}
