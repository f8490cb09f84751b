package periph

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/digumx/LogicSim/internal/engine"
	"github.com/digumx/LogicSim/internal/ui"
)

// CharStreamPrinter watches a trigger cell and, on its falling edge, reads
// an 8-bit character code off the lane (LSB first) and emits it to the
// console stream. Code 127 erases the previously printed character, unless
// that character is a line break.
// Whatever the lane holds on the edge tick is what prints, so circuits
// should latch the lane through registers to avoid emitting burps.
type CharStreamPrinter struct {
	console *ui.Console
	// ins[0] is the print line, ins[1..8] the character lane.
	ins  []engine.Pin
	prev bool
}

func newCharStreamPrinter(init json.RawMessage, env Env) (engine.Peripheral, error) {
	var cfg struct {
		Line point   `json:"Print line"`
		Lane []point `json:"Character lane"`
	}
	if err := json.Unmarshal(init, &cfg); err != nil {
		return nil, errors.Wrap(err, "CharStreamPrinter initializer")
	}
	if len(cfg.Lane) != 8 {
		return nil, errors.Errorf("CharStreamPrinter initializer: character lane has %d cells, want 8", len(cfg.Lane))
	}
	p := &CharStreamPrinter{console: env.Console, ins: make([]engine.Pin, 9)}
	p.ins[0] = engine.Pin{X: cfg.Line.X, Y: cfg.Line.Y}
	for i, pt := range cfg.Lane {
		p.ins[i+1] = engine.Pin{X: pt.X, Y: pt.Y}
	}
	return p, nil
}

// Inputs returns the print line and the character lane.
func (p *CharStreamPrinter) Inputs() []engine.Pin { return p.ins }

// Outputs returns nil; the printer never drives the board.
func (p *CharStreamPrinter) Outputs() []engine.Pin { return nil }

// Tick emits a character when the print line falls from 1 to 0.
func (p *CharStreamPrinter) Tick() {
	line := p.ins[0].Bit
	if p.prev && !line {
		code := 0
		for i := 0; i < 8; i++ {
			if p.ins[i+1].Bit {
				code |= 1 << uint(i)
			}
		}
		if code == 127 {
			p.console.Backspace()
		} else {
			p.console.Print(rune(code))
		}
	}
	p.prev = line
}
