//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"pineapples/internal/app"
	"pineapples/internal/core"
	_ "pineapples/internal/sims/greenhouse"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	opts, err := cfg.SimOptions(app.ExplicitFlags(flag.CommandLine))
	if err != nil {
		log.Fatal(err)
	}
	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(logger)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.SimNames())
	}

	sim := factory(opts)
	game := app.New(sim, cfg.Scale, cfg.HUDWidth, cfg.Seed)

	ebiten.SetWindowTitle("pineapples — " + sim.Name())
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
