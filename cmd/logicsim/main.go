//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/digumx/LogicSim/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: logicsim [options] <circuit-json>")
		flag.Usage()
		os.Exit(2)
	}

	runner, err := app.NewRunner(flag.Arg(0), cfg, app.NewKeys())
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(runner, cfg.Scale)
	ebiten.SetWindowTitle("logicsim — " + filepath.Base(flag.Arg(0)))
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	if err := game.Err(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", runner.OutPath())
}
