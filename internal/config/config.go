package config

import (
	"errors"
	"fmt"

	"consoleroom/internal/assets"
	"consoleroom/internal/input"
	"consoleroom/internal/systems"
	"consoleroom/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Config is the whole consoleroom configuration file.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Controls ControlsConfig `yaml:"controls"`
	Screen   ScreenConfig   `yaml:"screen"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Audio    AudioConfig    `yaml:"audio"`
	Assets   AssetsConfig   `yaml:"assets"`
	Layout   LayoutConfig   `yaml:"layout"`
	Log      LogConfig      `yaml:"log"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	FPS    int32  `yaml:"fps"`
	MSAA   bool   `yaml:"msaa"`
}

type ControlsConfig struct {
	MoveSpeed       float32 `yaml:"move_speed"`
	LookSensitivity float32 `yaml:"look_sensitivity"`
	InteractRange   float32 `yaml:"interact_range"`
	InteractKey     string  `yaml:"interact_key"`
	Highlight       Color   `yaml:"highlight"`
}

type ScreenConfig struct {
	PhaseRate float32 `yaml:"phase_rate"`
	PulseGain float32 `yaml:"pulse_gain"`
}

type PhysicsConfig struct {
	Gravity float32 `yaml:"gravity"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type AssetsConfig struct {
	Root string `yaml:"root"`
}

type LayoutConfig struct {
	PlayerStart Vec3   `yaml:"player_start"`
	LookAt      Vec3   `yaml:"look_at"`
	Consoles    []Vec3 `yaml:"consoles"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Vec3 is written as a three element list.
type Vec3 [3]float32

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Color accepts either a named color ("Red", "SkyBlue") or a list of three
// or four channel values.
type Color rl.Color

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		named, ok := assets.LookupColor(node.Value)
		if !ok {
			return fmt.Errorf("line %d: unknown color %q", node.Line, node.Value)
		}
		*c = Color(named)
		return nil
	case yaml.SequenceNode:
		var channels []uint8
		if err := node.Decode(&channels); err != nil {
			return fmt.Errorf("line %d: color channels: %w", node.Line, err)
		}
		if len(channels) != 3 && len(channels) != 4 {
			return fmt.Errorf("line %d: color needs 3 or 4 channels, got %d", node.Line, len(channels))
		}
		*c = Color{R: channels[0], G: channels[1], B: channels[2], A: 255}
		if len(channels) == 4 {
			c.A = channels[3]
		}
		return nil
	}
	return fmt.Errorf("line %d: color must be a name or a list", node.Line)
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS < 0 {
		errs = append(errs, fmt.Errorf("fps %d must not be negative", c.Window.FPS))
	}
	if c.Controls.InteractRange <= 0 {
		errs = append(errs, fmt.Errorf("interact_range %g must be positive", c.Controls.InteractRange))
	}
	if _, ok := input.KeyByName(c.Controls.InteractKey); !ok {
		errs = append(errs, fmt.Errorf("unknown interact_key %q", c.Controls.InteractKey))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %g outside [0,1]", c.Audio.Volume))
	}
	if len(c.Layout.Consoles) == 0 {
		errs = append(errs, errors.New("layout needs at least one console"))
	}
	return errors.Join(errs...)
}

// Settings converts the controls and screen sections for the tick systems.
func (c Config) Settings() (systems.Settings, error) {
	key, ok := input.KeyByName(c.Controls.InteractKey)
	if !ok {
		return systems.Settings{}, fmt.Errorf("unknown interact_key %q", c.Controls.InteractKey)
	}
	return systems.Settings{
		MoveSpeed:       c.Controls.MoveSpeed,
		LookSensitivity: c.Controls.LookSensitivity,
		InteractRange:   c.Controls.InteractRange,
		InteractKey:     key,
		PhaseRate:       c.Screen.PhaseRate,
		PulseGain:       c.Screen.PulseGain,
		Highlight:       rl.Color(c.Controls.Highlight),
	}, nil
}

func (c Config) WorldLayout() world.Layout {
	layout := world.Layout{
		PlayerStart: c.Layout.PlayerStart.Vector3(),
		LookAt:      c.Layout.LookAt.Vector3(),
	}
	for _, pos := range c.Layout.Consoles {
		layout.Consoles = append(layout.Consoles, pos.Vector3())
	}
	return layout
}
