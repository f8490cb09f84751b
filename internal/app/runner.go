package app

import (
	"github.com/pkg/errors"

	"github.com/digumx/LogicSim/internal/circuit"
	"github.com/digumx/LogicSim/internal/engine"
	"github.com/digumx/LogicSim/internal/periph"
	"github.com/digumx/LogicSim/internal/render"
	"github.com/digumx/LogicSim/internal/ui"
)

// Runner wires a loaded circuit to the tick loop shared by the windowed
// and headless front ends: it owns the engine, the console the
// peripherals print to, and the GIF recorder.
type Runner struct {
	Engine  *engine.Engine
	Console *ui.Console

	renderer *render.FrameRenderer
	recorder *render.Recorder
	outPath  string

	simLength int
	stride    int
	ticks     int
	sinceOut  int
}

// NewRunner loads the circuit JSON at jsonPath and assembles the engine,
// the peripherals, and the GIF recorder according to cfg. keys supplies
// live keyboard state to the input peripherals.
func NewRunner(jsonPath string, cfg *Config, keys periph.Keys) (*Runner, error) {
	ccfg, err := circuit.LoadConfig(jsonPath)
	if err != nil {
		return nil, err
	}
	w, h, desc, err := circuit.LoadImage(ccfg.ImagePath)
	if err != nil {
		return nil, err
	}
	console := ui.NewConsole()
	periphs, err := periph.FromConfigs(ccfg.Peripherals, periph.Env{Keys: keys, Console: console})
	if err != nil {
		return nil, errors.Wrapf(err, "circuit json %s", jsonPath)
	}
	return &Runner{
		Engine:    engine.New(w, h, desc, periphs),
		Console:   console,
		renderer:  render.NewFrameRenderer(w, h, cfg.Scale),
		recorder:  render.NewRecorder(cfg.FrameTime),
		outPath:   jsonPath + ".out.gif",
		simLength: cfg.SimLength,
		stride:    cfg.PrintStride,
	}, nil
}

// Done reports whether the configured tick budget is spent. Unbounded
// runs never finish on their own.
func (r *Runner) Done() bool { return r.simLength >= 0 && r.ticks >= r.simLength }

// Step advances the simulation one tick and records an intermediate frame
// when the print stride comes due.
func (r *Runner) Step() {
	r.Engine.Tick()
	r.ticks++
	if r.stride > 0 {
		r.sinceOut++
		if r.sinceOut == r.stride {
			r.sinceOut = 0
			r.recorder.Add(r.renderer.Render(r.Engine.StatePlane()))
		}
	}
}

// Ticks returns the number of ticks run so far.
func (r *Runner) Ticks() int { return r.ticks }

// OutPath returns the path the animation is written to.
func (r *Runner) OutPath() string { return r.outPath }

// Finish records the final state and writes the animation next to the
// input file.
func (r *Runner) Finish() error {
	r.recorder.Add(r.renderer.Render(r.Engine.StatePlane()))
	return r.recorder.WriteFile(r.outPath)
}
