// Command termroids plays the asteroids simulation in a terminal.
//
// Arrows or WASD steer and thrust, space fires, r restarts, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"spacedemos/game"
	"spacedemos/render"
)

type termGame struct {
	screen tcell.Screen
	sim    *game.Simulation
	keys   *keyState
	style  tcell.Style
}

func newTermGame(sim *game.Simulation) (*termGame, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	return &termGame{
		screen: screen,
		sim:    sim,
		keys:   newKeyState(),
		style:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}, nil
}

func (g *termGame) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.keys.handle(ev, time.Now()) {
					return
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case now := <-ticker.C:
			g.sim.Update(now.Sub(last).Seconds(), g.keys.input(now))
			last = now
			g.draw()
		}
	}
}

func (g *termGame) draw() {
	g.screen.Clear()
	cam := render.TerminalCamera(g.screen, 1)
	render.DrawTerminal(g.screen, cam, g.sim.RenderState(), g.sim.World().Bound)

	for i, line := range render.HUDLines(g.sim.Stats()) {
		render.DrawText(g.screen, 0, i, line, g.style)
	}
	g.screen.Show()
}

func main() {
	configPath := flag.String("config", "", "TOML file overriding the default tuning")
	seed := flag.Uint64("seed", 1, "seed for the asteroid field")
	verbose := flag.Bool("v", false, "log debug events to stderr")
	flag.Parse()

	// The terminal owns stdout and stderr while running, so logs go to a file
	if *verbose {
		f, err := os.Create("termroids.log")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		game.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = game.LoadConfig(*configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	sim, err := game.New(cfg, *seed)
	if err != nil {
		log.Fatalf("create simulation: %v", err)
	}

	g, err := newTermGame(sim)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.screen.Fini()

	g.run()
}
