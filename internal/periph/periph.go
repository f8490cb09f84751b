// Package periph implements the peripheral devices that exchange bits
// with a running board: status LEDs, key-driven switches, a wall-clock
// oscillator, a keyboard encoder, and a character printer. Devices reach
// the keyboard and the console only through the Keys and console
// capabilities handed to them at construction, so front ends and tests can
// swap in their own. The clock reads the wall clock directly.
package periph

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/digumx/LogicSim/internal/circuit"
	"github.com/digumx/LogicSim/internal/engine"
	"github.com/digumx/LogicSim/internal/ui"
)

// Keys reports live keyboard state to input peripherals. Key codes follow
// the circuit files' convention: ASCII for printable keys.
type Keys interface {
	// Pressed reports whether the key with the given code is held down.
	Pressed(code int) bool
	// Any returns the code of some currently pressed key, if any. Which
	// key wins when several are down is unspecified.
	Any() (code int, ok bool)
}

// NopKeys is a Keys with no keyboard behind it; every key reads released.
// The headless front end uses it.
type NopKeys struct{}

// Pressed always reports false.
func (NopKeys) Pressed(int) bool { return false }

// Any always reports no key.
func (NopKeys) Any() (int, bool) { return 0, false }

// Env carries the process-level capabilities peripherals attach to.
type Env struct {
	Keys    Keys
	Console *ui.Console
}

type factory func(init json.RawMessage, env Env) (engine.Peripheral, error)

var classes = map[string]factory{
	"LEDArray":          newLEDArray,
	"BitSwitchArray":    newBitSwitchArray,
	"Clock":             newClock,
	"Keyboard":          newKeyboard,
	"CharStreamPrinter": newCharStreamPrinter,
}

// FromConfig builds the peripheral described by cfg.
func FromConfig(cfg circuit.PeripheralConfig, env Env) (engine.Peripheral, error) {
	f, ok := classes[cfg.Class]
	if !ok {
		return nil, errors.Errorf("unknown peripheral class %q", cfg.Class)
	}
	return f(cfg.Initializer, env)
}

// FromConfigs builds every peripheral in cfgs, preserving order. Order
// matters: the engine ticks peripherals in registration order and later
// output writes win.
func FromConfigs(cfgs []circuit.PeripheralConfig, env Env) ([]engine.Peripheral, error) {
	ps := make([]engine.Peripheral, 0, len(cfgs))
	for _, cfg := range cfgs {
		p, err := FromConfig(cfg, env)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}
