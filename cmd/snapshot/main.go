// Command snapshot runs the asteroids simulation headless and writes the
// final frame to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"spacedemos/game"
	"spacedemos/render"
)

type options struct {
	configPath string
	seed       uint64
	frames     int
	dt         float64
	fire       bool
	thrust     bool
	size       int
	out        string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "TOML file overriding the default tuning")
	flag.Uint64Var(&opts.seed, "seed", 1, "seed for the asteroid field")
	flag.IntVar(&opts.frames, "frames", 120, "number of updates to run")
	flag.Float64Var(&opts.dt, "dt", 1.0/60, "seconds per update")
	flag.BoolVar(&opts.fire, "fire", false, "hold fire for the whole run")
	flag.BoolVar(&opts.thrust, "thrust", false, "hold thrust for the whole run")
	flag.IntVar(&opts.size, "size", 512, "image width and height in pixels")
	flag.StringVar(&opts.out, "out", "snapshot.png", "output PNG path")
	verbose := flag.Bool("v", false, "log debug events to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	game.SetLogger(logger)
	gg.SetLogger(logger)

	stats, err := run(opts)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("snapshot written", "path", opts.out, "frame", stats.Frame,
		"asteroids", stats.Asteroids, "bullets", stats.Bullets)
}

func run(opts options) (game.Stats, error) {
	if opts.frames < 0 {
		return game.Stats{}, fmt.Errorf("frames must not be negative, got %d", opts.frames)
	}

	cfg := game.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = game.LoadConfig(opts.configPath); err != nil {
			return game.Stats{}, fmt.Errorf("load config: %w", err)
		}
	}

	sim, err := game.New(cfg, opts.seed)
	if err != nil {
		return game.Stats{}, fmt.Errorf("create simulation: %w", err)
	}

	var in game.Input
	in = in.With(game.InputFire, opts.fire).With(game.InputThrust, opts.thrust)
	for i := 0; i < opts.frames; i++ {
		sim.Update(opts.dt, in)
	}

	ro := render.DefaultOptions()
	ro.Width, ro.Height = opts.size, opts.size
	ro.TileBound = sim.World().Bound
	if err := render.SavePNG(opts.out, sim.RenderState(), ro); err != nil {
		return game.Stats{}, err
	}
	return sim.Stats(), nil
}
