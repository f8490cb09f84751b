package periph

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/digumx/LogicSim/internal/engine"
)

// BitSwitchArray drives each of its cells from the live pressed-state of a
// bound key, like a bank of momentary switches soldered onto the board.
type BitSwitchArray struct {
	keys  Keys
	outs  []engine.Pin
	codes []int
}

func newBitSwitchArray(init json.RawMessage, env Env) (engine.Peripheral, error) {
	var switches []struct {
		X, Y, Key int
	}
	if err := json.Unmarshal(init, &switches); err != nil {
		return nil, errors.Wrap(err, "BitSwitchArray initializer")
	}
	a := &BitSwitchArray{keys: env.Keys}
	for _, sw := range switches {
		a.outs = append(a.outs, engine.Pin{X: sw.X, Y: sw.Y})
		a.codes = append(a.codes, sw.Key)
	}
	return a, nil
}

// Inputs returns nil; switches only drive the board.
func (a *BitSwitchArray) Inputs() []engine.Pin { return nil }

// Outputs returns the driven cells.
func (a *BitSwitchArray) Outputs() []engine.Pin { return a.outs }

// Tick latches each switch to its key's pressed state.
func (a *BitSwitchArray) Tick() {
	for i := range a.outs {
		a.outs[i].Bit = a.keys.Pressed(a.codes[i])
	}
}
