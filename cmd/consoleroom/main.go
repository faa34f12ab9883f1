// consoleroom is a first-person walk around a small control room with three
// interactive consoles.
//
// Usage:
//
//	consoleroom                   - Open the room
//	consoleroom textures          - Generate the placeholder textures
//
// Global flags:
//
//	--config <path>     - Config file (default: ./configs/consoleroom.yaml, then built-in)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"consoleroom/internal/config"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func init() {
	// raylib must stay on the main thread
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(texturesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// chdirToExecutable makes relative asset paths work for deployed builds.
// Skipped for "go run", which puts the binary in a temp build directory.
func chdirToExecutable() {
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			_ = os.Chdir(execDir)
		}
	}
}

// absPaths makes each non-empty path absolute against the current directory.
func absPaths(paths ...*string) error {
	for _, p := range paths {
		if *p == "" {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", *p, err)
		}
		*p = abs
	}
	return nil
}

// setup loads the config and builds the logger shared by every command.
func setup() (config.Config, *log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "consoleroom",
	})

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, logger, err
	}

	levelName := cfg.Log.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return cfg, logger, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	logger.Debug("config loaded", "source", source)
	return cfg, logger, nil
}
