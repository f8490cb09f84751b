package periph

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/digumx/LogicSim/internal/engine"
)

// Clock toggles a single cell on a wall-clock period. Circuits could build
// oscillators out of gates, but those cannot track real time and their
// area grows with the period; the clock peripheral gives both for free.
type Clock struct {
	out    []engine.Pin
	period time.Duration
	prev   time.Time
	state  bool
	now    func() time.Time
}

func newClock(init json.RawMessage, _ Env) (engine.Peripheral, error) {
	var cfg struct {
		X, Y   int
		Period int
	}
	if err := json.Unmarshal(init, &cfg); err != nil {
		return nil, errors.Wrap(err, "Clock initializer")
	}
	c := &Clock{
		out:    []engine.Pin{{X: cfg.X, Y: cfg.Y}},
		period: time.Duration(cfg.Period) * time.Millisecond,
		now:    time.Now,
	}
	c.prev = c.now()
	return c, nil
}

// Inputs returns nil; the clock only drives the board.
func (c *Clock) Inputs() []engine.Pin { return nil }

// Outputs returns the single driven cell.
func (c *Clock) Outputs() []engine.Pin { return c.out }

// Tick flips the held level once the period has elapsed and drives the
// cell with it every tick.
func (c *Clock) Tick() {
	if now := c.now(); now.Sub(c.prev) > c.period {
		c.prev = now
		c.state = !c.state
	}
	c.out[0].Bit = c.state
}
