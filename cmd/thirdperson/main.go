package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"thirdperson/internal/config"
	"thirdperson/internal/game"
	"thirdperson/internal/logger"
	"thirdperson/internal/world"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", "configs/thirdperson.yaml", "tuning file, reloaded on change")
	levelPath := flag.String("level", "", "level file, empty for the built-in course")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Invalid config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging)

	level := world.DefaultLevel()
	if *levelPath != "" {
		if level, err = world.LoadLevel(*levelPath); err != nil {
			slog.Error("Invalid level", "path", *levelPath, "error", err)
			os.Exit(1)
		}
	}

	g, err := game.New(cfg, *configPath, level)
	if err != nil {
		slog.Error("Cannot start", "error", err)
		os.Exit(1)
	}
	g.Run()
}
