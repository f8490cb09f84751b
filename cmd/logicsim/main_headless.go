//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/digumx/LogicSim/internal/app"
	"github.com/digumx/LogicSim/internal/periph"
	"github.com/digumx/LogicSim/internal/ui"
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

	runner, err := app.NewRunner(flag.Arg(0), cfg, periph.NopKeys{})
	if err != nil {
		log.Fatal(err)
	}

	log.Print("loaded circuit, starting simulation")
	for !runner.Done() {
		runner.Step()
		mirrorConsole(runner.Console)
	}
	if err := runner.Finish(); err != nil {
		log.Fatal(err)
	}
	log.Printf("finished simulation after %d ticks, wrote %s", runner.Ticks(), runner.OutPath())
}

// mirrorConsole forwards peripheral text output to the process log and
// stdout, since there is no window to draw the panel on.
func mirrorConsole(c *ui.Console) {
	for _, ln := range c.Lines() {
		if s, changed := ln.Take(); changed {
			log.Print(s)
		}
	}
	if s := c.TakeStream(); s != "" {
		os.Stdout.WriteString(s)
	}
}
