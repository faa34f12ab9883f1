package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/consoleroom.yaml
var defaultYAML []byte

// LocalPath is checked when no explicit path is given.
var LocalPath = filepath.Join("configs", "consoleroom.yaml")

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads configuration.
// Search order: customPath -> ./configs/consoleroom.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
func Load(customPath string) (Config, string, error) {
	cfg := Default()

	path := customPath
	if path == "" {
		_, err := os.Stat(LocalPath)
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, "embedded", nil
		}
		if err != nil {
			return cfg, LocalPath, fmt.Errorf("failed to read config %s: %w", LocalPath, err)
		}
		path = LocalPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, path, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, path, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, path, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, path, nil
}
