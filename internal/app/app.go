//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/digumx/LogicSim/internal/render"
	"github.com/digumx/LogicSim/internal/ui"
)

// Text rows on the panel need a readable window even for tiny boards.
const minViewWidth = 320

// Game adapts a Runner to the ebiten front end: the board view on top,
// the console panel underneath, live keys feeding the input peripherals.
// The simulation waits for a first keypress, then runs one tick per
// update until the tick budget is spent.
type Game struct {
	runner  *Runner
	painter *render.GridPainter
	panel   *ui.Panel
	status  *ui.Line

	scale    int
	started  bool
	finished bool
	err      error
}

// NewGame constructs the windowed front end around a loaded runner.
func NewGame(runner *Runner, scale int) *Game {
	if scale < 1 {
		scale = 1
	}
	w, h := runner.Engine.Size()
	g := &Game{
		runner:  runner,
		painter: render.NewGridPainter(w, h),
		panel:   ui.NewPanel(runner.Console),
		status:  runner.Console.Section(),
		scale:   scale,
	}
	g.status.SetText("Press any key to start simulation.")
	return g
}

// Err returns the error, if any, from finalising the output animation.
func (g *Game) Err() error { return g.err }

// WindowSize returns the initial window dimensions.
func (g *Game) WindowSize() (int, int) { return g.Layout(0, 0) }

// Update advances the simulation by one tick per frame.
func (g *Game) Update() error {
	if g.finished {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return g.finish()
	}
	if !g.started {
		if keys := inpututil.AppendJustPressedKeys(nil); len(keys) > 0 {
			g.started = true
			g.status.SetText("Running.")
		}
		return nil
	}
	if g.runner.Done() {
		return g.finish()
	}
	g.runner.Step()
	return nil
}

func (g *Game) finish() error {
	g.finished = true
	g.err = g.runner.Finish()
	return ebiten.Termination
}

// Draw renders the board and the console panel.
func (g *Game) Draw(screen *ebiten.Image) {
	_, h := g.runner.Engine.Size()
	g.painter.Blit(screen, g.runner.Engine.StatePlane(), render.ColorOn, render.ColorOff, g.scale)
	g.panel.Draw(screen, h*g.scale)
}

// Layout returns the logical screen size: the scaled board plus the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.runner.Engine.Size()
	width := w * g.scale
	if width < minViewWidth {
		width = minViewWidth
	}
	return width, h*g.scale + g.panel.Height()
}
