package periph

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/digumx/LogicSim/internal/engine"
)

type point struct {
	X, Y int
}

// Keyboard publishes an any-key-pressed line plus an 8-bit keycode lane
// (LSB first). While no key is down only the line is driven low; the lane
// cells stay under circuit control. When several keys are down an
// arbitrary one is encoded, so circuits work best expecting one key at a
// time.
type Keyboard struct {
	keys Keys
	// outs[0] is the pressed line, outs[1..8] the code lane.
	outs []engine.Pin
}

func newKeyboard(init json.RawMessage, env Env) (engine.Peripheral, error) {
	var cfg struct {
		Line point   `json:"Key pressed line"`
		Lane []point `json:"Key code lane"`
	}
	if err := json.Unmarshal(init, &cfg); err != nil {
		return nil, errors.Wrap(err, "Keyboard initializer")
	}
	if len(cfg.Lane) != 8 {
		return nil, errors.Errorf("Keyboard initializer: key code lane has %d cells, want 8", len(cfg.Lane))
	}
	k := &Keyboard{keys: env.Keys, outs: make([]engine.Pin, 9)}
	k.outs[0] = engine.Pin{X: cfg.Line.X, Y: cfg.Line.Y}
	for i, p := range cfg.Lane {
		k.outs[i+1] = engine.Pin{X: p.X, Y: p.Y}
	}
	return k, nil
}

// Inputs returns nil; the keyboard only drives the board.
func (k *Keyboard) Inputs() []engine.Pin { return nil }

// Outputs withdraws the code lane while no key is down.
func (k *Keyboard) Outputs() []engine.Pin {
	if !k.outs[0].Bit {
		return k.outs[:1]
	}
	return k.outs
}

// Tick samples the keyboard and encodes the pressed key, if any.
func (k *Keyboard) Tick() {
	code, ok := k.keys.Any()
	k.outs[0].Bit = ok
	if !ok {
		return
	}
	for i := 0; i < 8; i++ {
		k.outs[i+1].Bit = code>>uint(i)&1 == 1
	}
}
