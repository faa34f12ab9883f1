package main

import (
	"sort"
	"time"

	"consoleroom/internal/game"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
)

var (
	flagTicks int
	flagStep  float32
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the room headless with scripted input and report tick timing",
	Long: `Run the game logic without a window. A scripted player walks laps,
turns, and presses the interact key twice a second. Prints tick timings and
where the player ended up.

Examples:
  consoleroom simulate
  consoleroom simulate --ticks 36000 --step 0.008`,
	SilenceUsage: true,
	RunE:         runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to run")
	simulateCmd.Flags().Float32Var(&flagStep, "step", 1.0/60.0, "Seconds per tick")
	rootCmd.AddCommand(simulateCmd)
}

type headlessWindow struct{}

func (headlessWindow) DisableCursor() {}
func (headlessWindow) EnableCursor()  {}

// script sets the input for tick i: grab the mouse, then walk for a second,
// stand for a second, turn now and then, and tap the interact key.
func script(g *game.Game, i int) {
	g.Input.Reset()
	if i == 0 {
		g.Input.PressMouse(rl.MouseButtonLeft)
	}
	g.Input.SetKey(rl.KeyW, (i/60)%2 == 0)
	g.Input.SetKey(g.Settings.InteractKey, i%30 == 0)
	if (i/60)%4 == 3 {
		g.Input.AddMotion(rl.Vector2{X: 25})
	}
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	cfg.Audio.Enabled = false

	g, err := game.New(cfg, logger, headlessWindow{})
	if err != nil {
		return err
	}

	durations := make([]time.Duration, 0, flagTicks)
	start := time.Now()
	for i := 0; i < flagTicks; i++ {
		script(g, i)
		tickStart := time.Now()
		if err := g.Tick(flagStep); err != nil {
			return err
		}
		durations = append(durations, time.Since(tickStart))
	}
	total := time.Since(start)

	if len(durations) == 0 {
		return nil
	}
	sort.Slice(durations, func(a, b int) bool { return durations[a] < durations[b] })
	pos := g.World.Player.Transform.Position

	logger.Info("simulation done",
		"ticks", len(durations),
		"simulated", time.Duration(float64(flagStep)*float64(len(durations))*float64(time.Second)).Round(time.Millisecond),
		"wall", total.Round(time.Millisecond),
		"median", durations[len(durations)/2],
		"p99", durations[len(durations)*99/100],
		"max", durations[len(durations)-1])
	logger.Info("player",
		"x", pos.X, "y", pos.Y, "z", pos.Z,
		"grounded", g.World.Physics.Grounded(g.World.Player),
		"activations", g.Activations(),
		"materials", g.Materials.MaterialCount())
	return nil
}
