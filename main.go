package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"spacedemos/game"
)

const (
	screenWidth  = 800
	screenHeight = 800
)

func main() {
	configPath := flag.String("config", "", "TOML file overriding the default tuning")
	seed := flag.Uint64("seed", 1, "seed for the asteroid field")
	verbose := flag.Bool("v", false, "log debug events to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	game.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	sim, err := game.New(cfg, *seed)
	if err != nil {
		log.Fatalf("create simulation: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newApp(sim)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func loadConfig(path string) (game.Config, error) {
	if path == "" {
		return game.DefaultConfig(), nil
	}
	cfg, err := game.LoadConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
